package telegraph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Default endpoints.
const (
	DefaultBaseURL   = "https://api.telegra.ph"
	DefaultUploadURL = "https://telegra.ph/upload"
)

// defaultTimeout bounds each request when no custom HTTP client is
// supplied.
const defaultTimeout = 30 * time.Second

// defaultUserAgent identifies the library to the API.
const defaultUserAgent = "go-telegraph"

// maxErrorBody caps how much of a non-2xx response body is kept for
// the error message.
const maxErrorBody = 512

// Client is a Telegraph API client. The zero value is not usable;
// use NewClient. A Client is safe for concurrent use: its only
// mutable state is the access token, which CreateAccount and
// RevokeAccessToken replace under a lock.
type Client struct {
	baseURL    string
	uploadURL  string
	httpClient *http.Client
	userAgent  string

	authorName string
	authorURL  string

	mu          sync.RWMutex
	accessToken string
}

// Option configures a Client.
type Option func(*Client)

// NewClient creates a Client for the given access token. An empty
// token is fine for the calls that work without one: CreateAccount,
// GetPage, and Upload.
func NewClient(accessToken string, opts ...Option) *Client {
	c := &Client{
		baseURL:     DefaultBaseURL,
		uploadURL:   DefaultUploadURL,
		httpClient:  &http.Client{Timeout: defaultTimeout},
		userAgent:   defaultUserAgent,
		accessToken: accessToken,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithHTTPClient sets a custom HTTP client, e.g. to control timeouts
// or proxying. Panics if hc is nil (programmer error, similar to
// time.NewTicker).
func WithHTTPClient(hc *http.Client) Option {
	if hc == nil {
		panic("telegraph: WithHTTPClient client must not be nil")
	}
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the API endpoint. Mostly useful for tests.
// Panics if u is empty.
func WithBaseURL(u string) Option {
	if u == "" {
		panic("telegraph: WithBaseURL url must not be empty")
	}
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithUploadURL overrides the media upload endpoint. Panics if u is
// empty.
func WithUploadURL(u string) Option {
	if u == "" {
		panic("telegraph: WithUploadURL url must not be empty")
	}
	return func(c *Client) {
		c.uploadURL = u
	}
}

// WithAuthor sets default author fields applied to CreatePage and
// EditPage whenever PageParams leaves them empty.
func WithAuthor(name, url string) Option {
	return func(c *Client) {
		c.authorName = name
		c.authorURL = url
	}
}

// WithUserAgent overrides the User-Agent header. Panics if ua is
// empty.
func WithUserAgent(ua string) Option {
	if ua == "" {
		panic("telegraph: WithUserAgent value must not be empty")
	}
	return func(c *Client) {
		c.userAgent = ua
	}
}

// AccessToken returns the token the client currently holds. It
// changes after CreateAccount and RevokeAccessToken.
func (c *Client) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// setAccessToken replaces the stored token.
func (c *Client) setAccessToken(token string) {
	c.mu.Lock()
	c.accessToken = token
	c.mu.Unlock()
}

// tokenValues returns url.Values seeded with the stored access token,
// or ErrMissingToken if the client has none.
func (c *Client) tokenValues() (url.Values, error) {
	token := c.AccessToken()
	if token == "" {
		return nil, ErrMissingToken
	}
	return url.Values{"access_token": []string{token}}, nil
}

// apiResponse is the envelope every API method returns: either
// {ok:true, result:...} or {ok:false, error:"CODE"}.
type apiResponse struct {
	OK     bool            `json:"ok"`
	Error  string          `json:"error"`
	Result json.RawMessage `json:"result"`
}

// get performs a GET against an API method with query parameters and
// decodes the result envelope into out.
func (c *Client) get(ctx context.Context, method string, params url.Values, out any) error {
	endpoint := c.baseURL + "/" + method
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	return c.do(req, out)
}

// postForm performs a form-encoded POST against an API method and
// decodes the result envelope into out. Page writes go through here
// because their content can outgrow a query string.
func (c *Client) postForm(ctx context.Context, method string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+method, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

// do executes the request and decodes the API envelope. Transport
// errors are wrapped with %w so callers can reach the underlying
// net and context errors.
func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return readHTTPError(resp)
	}

	var env apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrParse, err)
	}
	if !env.OK {
		return &APIError{Code: env.Error}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return fmt.Errorf("%w: decoding result: %v", ErrParse, err)
	}
	return nil
}

// readHTTPError builds an HTTPError from a non-2xx response, keeping
// a bounded prefix of the body.
func readHTTPError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		body = nil
	}
	return &HTTPError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}
