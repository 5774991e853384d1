package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const maxResponseBytes = 8 << 20

// Client defines a public type used by adminkit APIs.
//
// Client instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	appName string

	Auth           *AuthService
	Users          *UsersService
	Tokens         *TokensService
	Operations     *OperationsService
	Templates      *TemplatesService
	StyleLibraries *StyleLibrariesService
	Hints          *HintsService
}

// NewClient creates a client rooted at baseURL. The given httpClient is used
// as-is; pass an authenticated client to reach protected endpoints. A nil
// httpClient falls back to [http.DefaultClient].
func NewClient(baseURL string, httpClient *http.Client, appName string) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("api: parse base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.New("api: base URL must be absolute")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	c := &Client{
		baseURL: u,
		http:    httpClient,
		appName: appName,
	}
	c.Auth = &AuthService{client: c}
	c.Users = &UsersService{client: c}
	c.Tokens = &TokensService{client: c}
	c.Operations = &OperationsService{client: c}
	c.Templates = &TemplatesService{client: c}
	c.StyleLibraries = &StyleLibrariesService{client: c}
	c.Hints = &HintsService{client: c}
	return c, nil
}

// BaseURL describes the baseurl operation and its observable behavior.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Error is a non-2xx backend response. The message is taken from the
// response envelope when one is present.
type Error struct {
	StatusCode int
	Message    string
}

// Error describes the error operation and its observable behavior.
func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// IsStatus reports whether err is a backend [Error] with the given status
// code.
func IsStatus(err error, code int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// doRaw executes one request and returns the full response body. Non-2xx
// statuses become *Error values.
func (c *Client) doRaw(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("api: encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.appName != "" {
		req.Header.Set("X-App-Name", c.appName)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("api: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data),
		}
	}
	return data, nil
}

// do executes one request and unwraps the response envelope: the "data"
// field when present, the whole body otherwise.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	raw, err := c.doRaw(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	return unwrapData(raw), nil
}

func errorMessage(body []byte) string {
	var env struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &env); err == nil {
		if env.Message != "" {
			return env.Message
		}
		if env.Error != "" {
			return env.Error
		}
	}
	return ""
}
