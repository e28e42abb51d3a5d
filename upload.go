package telegraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Upload sends media files to the upload endpoint and returns one
// result per file, in input order. Telegraph accepts jpg, jpeg, png,
// gif, and mp4 files up to a few megabytes; anything else comes back
// as an API error. No access token is required.
func (c *Client) Upload(ctx context.Context, paths ...string) ([]UploadResult, error) {
	if len(paths) == 0 {
		return nil, ErrNoFiles
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for i, path := range paths {
		if err := addUploadPart(writer, strconv.Itoa(i), path); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, readHTTPError(resp)
	}
	return parseUploadResponse(resp.Body)
}

// addUploadPart copies one file into the multipart body. Parts are
// named by their index, which is the shape the upload endpoint
// expects.
func addUploadPart(w *multipart.Writer, field, path string) error {
	f, err := os.Open(path) // #nosec G304 -- caller-provided path
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filepath.Base(path)))
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return fmt.Errorf("creating part %s: %w", field, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// parseUploadResponse handles the two shapes the upload endpoint
// produces: a JSON array of sources on success, or an error object.
func parseUploadResponse(r io.Reader) ([]UploadResult, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var failure struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(trimmed, &failure); err != nil {
			return nil, fmt.Errorf("%w: decoding upload response: %v", ErrParse, err)
		}
		return nil, &APIError{Code: failure.Error}
	}

	var results []UploadResult
	if err := json.Unmarshal(trimmed, &results); err != nil {
		return nil, fmt.Errorf("%w: decoding upload response: %v", ErrParse, err)
	}
	return results, nil
}

// SourceURL joins an upload result with the telegra.ph host, turning
// "/file/abc.jpg" into a browsable URL.
func (r UploadResult) SourceURL() string {
	if strings.HasPrefix(r.Src, "http://") || strings.HasPrefix(r.Src, "https://") {
		return r.Src
	}
	return "https://telegra.ph" + r.Src
}
