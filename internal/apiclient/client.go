// Package apiclient is the single egress point to the VaultPass REST API.
//
// A Client carries a fixed base URL, a cookie jar so every request is sent
// with the upstream session cookies, and JSON as the default content type.
// Failed requests are returned as *HTTPError; a 401 additionally publishes a
// LogoutEvent on the client's LogoutBus. Requests are never retried.
//
// A Client is immutable after construction and safe for concurrent use.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

const contentTypeJSON = "application/json"

// Client performs credentialed requests against the upstream API.
type Client struct {
	baseURL string
	name    string
	http    *http.Client
	logout  *LogoutBus
	now     func() time.Time
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithName sets the name reported in LogoutEvent.Client.
func WithName(name string) Option {
	return func(c *Client) { c.name = name }
}

// WithLogoutBus sets the bus that receives forced-logout events.
func WithLogoutBus(bus *LogoutBus) Option {
	return func(c *Client) { c.logout = bus }
}

// WithHTTPClient replaces the underlying transport client. If it has no cookie
// jar one is attached.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a Client rooted at baseURL, e.g. "http://localhost:5000/api".
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("apiclient: base URL is required")
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("apiclient: creating cookie jar: %w", err)
		}
		c.http.Jar = jar
	}
	if c.logout == nil {
		c.logout = NewLogoutBus()
	}

	return c, nil
}

// Name returns the name the client was built with.
func (c *Client) Name() string {
	return c.name
}

// RawResponse is a successful response body kept as bytes.
type RawResponse struct {
	Data        []byte
	ContentType string
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with body and decodes the JSON response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Patch issues a PATCH request with body and decodes the JSON response into out.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

// Delete issues a DELETE request and decodes the JSON response into out.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// GetRaw issues a GET request and returns the body undecoded, e.g. for images.
func (c *Client) GetRaw(ctx context.Context, path string) (*RawResponse, error) {
	resp, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(err)
	}
	return &RawResponse{Data: data, ContentType: resp.Header.Get("Content-Type")}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return transportError(fmt.Errorf("decoding %s %s response: %w", method, path, err))
	}
	return nil
}

// send performs the request and returns the response only for 2xx statuses.
func (c *Client) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	reader, contentType, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return nil, fmt.Errorf("apiclient: building request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", contentTypeJSON)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, transportError(err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	httpErr := MapError(resp.StatusCode, data)

	if httpErr.Kind == KindUnauthorized {
		c.logout.Publish(LogoutEvent{
			Client:  c.name,
			Method:  method,
			Path:    path,
			Message: httpErr.Message,
			At:      c.now(),
		})
	}

	return nil, httpErr
}

func (c *Client) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, contentTypeJSON, nil
	case *MultipartBody:
		return b.encode()
	default:
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			return nil, "", fmt.Errorf("apiclient: encoding request body: %w", err)
		}
		return &buf, contentTypeJSON, nil
	}
}
