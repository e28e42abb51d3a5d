package telegraph

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Sentinel errors for library operations.
var (
	// ErrParse indicates a response body or node value could not be
	// decoded. HTML input is repaired by the parser rather than
	// rejected, so this surfaces almost exclusively on bad JSON.
	ErrParse = errors.New("malformed content")

	// ErrMissingToken indicates a call that requires authentication
	// was made on a client without an access token.
	ErrMissingToken = errors.New("access token is required")

	// Account validation errors.
	ErrEmptyShortName    = errors.New("short name cannot be empty")
	ErrShortNameTooLong  = errors.New("short name too long")
	ErrAuthorNameTooLong = errors.New("author name too long")
	ErrAuthorURLTooLong  = errors.New("author url too long")

	// Page validation errors.
	ErrEmptyTitle   = errors.New("page title cannot be empty")
	ErrTitleTooLong = errors.New("page title too long")
	ErrEmptyContent = errors.New("page content cannot be empty")
	ErrEmptyPath    = errors.New("page path cannot be empty")

	// List and views validation errors.
	ErrInvalidOffset    = errors.New("invalid offset")
	ErrInvalidLimit     = errors.New("invalid limit")
	ErrInvalidViewsTime = errors.New("invalid views time filter")

	// Upload validation errors.
	ErrNoFiles = errors.New("no files to upload")
)

// floodWaitPrefix starts every rate-limit error code; the suffix is
// the number of seconds to wait.
const floodWaitPrefix = "FLOOD_WAIT"

// Well-known API error codes, usable with errors.Is.
var (
	ErrInvalidToken = &APIError{Code: "ACCESS_TOKEN_INVALID"}
	ErrPageNotFound = &APIError{Code: "PAGE_NOT_FOUND"}

	// ErrFloodWait matches any FLOOD_WAIT_N code. Use
	// APIError.FloodWait to recover the wait duration.
	ErrFloodWait = &APIError{Code: floodWaitPrefix}
)

// APIError is an error reported by the Telegraph API itself, i.e. an
// ok=false envelope. Code is the raw error string, such as
// "ACCESS_TOKEN_INVALID" or "FLOOD_WAIT_5".
type APIError struct {
	Code string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegraph: %s", e.Code)
}

// Is matches well-known sentinel codes. ErrFloodWait matches any
// FLOOD_WAIT_N code; everything else compares exactly.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	if t.Code == floodWaitPrefix {
		return strings.HasPrefix(e.Code, floodWaitPrefix)
	}
	return e.Code == t.Code
}

// FloodWait returns the wait duration encoded in a FLOOD_WAIT_N code.
// The second return is false for any other code.
func (e *APIError) FloodWait() (time.Duration, bool) {
	rest, found := strings.CutPrefix(e.Code, floodWaitPrefix+"_")
	if !found {
		return 0, false
	}
	seconds, err := strconv.Atoi(rest)
	if err != nil || seconds < 0 {
		return 0, false
	}
	return time.Duration(seconds) * time.Second, true
}

// HTTPError is returned when the server responds with a non-2xx
// status outside the normal API envelope, typically a proxy or CDN
// failure. Body holds a bounded prefix of the response for context.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}
