package main

import (
	"errors"
	"os"

	telegraph "github.com/alnah/go-telegraph"
	"github.com/alnah/go-telegraph/internal/assets"
	"github.com/alnah/go-telegraph/internal/config"
	"github.com/alnah/go-telegraph/internal/fileutil"
)

// Exit codes for the telegraph CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful operation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitAPI     = 4 // The Telegraph API rejected the request
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// API errors (exit 4): the server said no, either with an ok=false
	// envelope or a non-2xx status.
	var apiErr *telegraph.APIError
	var httpErr *telegraph.HTTPError
	if errors.As(err, &apiErr) || errors.As(err, &httpErr) {
		return ExitAPI
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadSource) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidWorkers) ||
		errors.Is(err, config.ErrInvalidFormat) ||
		errors.Is(err, telegraph.ErrMissingToken) ||
		errors.Is(err, telegraph.ErrEmptyShortName) ||
		errors.Is(err, telegraph.ErrShortNameTooLong) ||
		errors.Is(err, telegraph.ErrAuthorNameTooLong) ||
		errors.Is(err, telegraph.ErrAuthorURLTooLong) ||
		errors.Is(err, telegraph.ErrEmptyTitle) ||
		errors.Is(err, telegraph.ErrTitleTooLong) ||
		errors.Is(err, telegraph.ErrEmptyContent) ||
		errors.Is(err, telegraph.ErrEmptyPath) ||
		errors.Is(err, telegraph.ErrInvalidOffset) ||
		errors.Is(err, telegraph.ErrInvalidLimit) ||
		errors.Is(err, telegraph.ErrInvalidViewsTime) ||
		errors.Is(err, telegraph.ErrNoFiles) ||
		errors.Is(err, fileutil.ErrUnsupportedSource) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrTitleWithBatch) ||
		errors.Is(err, ErrEditWithBatch) ||
		errors.Is(err, ErrUnknownField) ||
		errors.Is(err, ErrNoChanges) ||
		errors.Is(err, ErrNotMarkdown) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
