package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/shafran-admin/internal/apperrors"
)

// TokenSource yields the current bearer token, or "" when logged out.
type TokenSource interface {
	Token() string
}

// Client is the typed gateway to the remote admin API. Every call is a single
// round trip: no retries, no caching.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client

	mu             sync.RWMutex
	onUnauthorized func()
}

// NewClient builds a Client. The cookie jar keeps server-set cookies across
// calls so credentials are included on every request.
func NewClient(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
	}
}

// OnUnauthorized registers fn to run whenever a protected call answers 401.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

// RequestOpts captures inputs for an admin API call.
type RequestOpts struct {
	Method string
	Path   string
	Query  map[string]string
	Body   any
	// Form, when set, is sent instead of Body as multipart/form-data.
	Form *multipartBody
	// Public skips the Authorization header (login).
	Public bool
	// FailMessage is the user-facing message used for a non-2xx response.
	FailMessage string
}

// Response bundles the HTTP response metadata.
type Response struct {
	Status int
	Body   []byte
	Header http.Header
}

type serverError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Do performs a request and turns any non-2xx answer into *apperrors.RequestError.
func (c *Client) Do(ctx context.Context, opts RequestOpts) (*Response, error) {
	if opts.Method == "" {
		return nil, errors.New("request method is required")
	}
	path := strings.TrimLeft(opts.Path, "/")
	if path == "" {
		return nil, errors.New("request path is required")
	}

	u, err := url.Parse(c.baseURL + "/" + path)
	if err != nil {
		return nil, fmt.Errorf("parse request URL: %w", err)
	}
	if len(opts.Query) > 0 {
		values := u.Query()
		for k, v := range opts.Query {
			values.Set(k, v)
		}
		u.RawQuery = values.Encode()
	}

	var (
		bodyReader  io.Reader
		contentType string
	)
	switch {
	case opts.Form != nil:
		bodyReader = bytes.NewReader(opts.Form.data)
		contentType = opts.Form.contentType
	case opts.Body != nil:
		payload, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, opts.Method, u.String(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	var token string
	if !opts.Public && c.tokens != nil {
		token = c.tokens.Token()
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[API] %s /%s failed (request %s): %v", opts.Method, path, requestID, err)
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	log.Printf("[API] %s /%s -> %d in %s (request %s)", opts.Method, path, resp.StatusCode, time.Since(start).Round(time.Millisecond), requestID)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reqErr := &apperrors.RequestError{
			Status:  resp.StatusCode,
			Message: failureMessage(opts.FailMessage, respBody),
		}
		if reqErr.Unauthorized() && !opts.Public {
			c.notifyUnauthorized(token)
		}
		return nil, reqErr
	}

	return &Response{
		Status: resp.StatusCode,
		Body:   respBody,
		Header: resp.Header.Clone(),
	}, nil
}

// notifyUnauthorized runs the hook unless the session moved on to another
// token while the rejected request was in flight.
func (c *Client) notifyUnauthorized(sent string) {
	if c.tokens != nil && c.tokens.Token() != sent {
		log.Printf("[API] ignoring 401 for a replaced token")
		return
	}
	c.mu.RLock()
	fn := c.onUnauthorized
	c.mu.RUnlock()
	if fn != nil {
		fn()
	}
}

func failureMessage(fallback string, body []byte) string {
	if fallback == "" {
		fallback = "Request failed"
	}

	var se serverError
	if len(body) > 0 && json.Unmarshal(body, &se) == nil {
		detail := strings.TrimSpace(se.Message)
		if detail == "" {
			detail = strings.TrimSpace(se.Error)
		}
		if detail != "" {
			return fallback + ": " + detail
		}
	}
	return fallback
}

// decode unmarshals a JSON response body into T.
func decode[T any](resp *Response) (T, error) {
	var out T
	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return out, fmt.Errorf("unmarshal response: %w", err)
	}
	return out, nil
}

func escape(segment string) string {
	return url.PathEscape(segment)
}
