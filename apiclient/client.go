// Package apiclient is the typed client for the exam service REST
// API. Every call is a single request/response round trip: no retry,
// no backoff, no caching. Failures split into two kinds: the service
// answered with an error body, or it could not be reached at all.
package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"examdesk/config"
)

// ErrUnreachable marks transport-level failures: no response arrived.
var ErrUnreachable = errors.New("exam service unreachable")

// APIError is a structured error the exam service reported.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("exam service: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("exam service: request failed (status %d)", e.StatusCode)
}

// Client talks to the exam service
type Client struct {
	http *resty.Client
}

// New builds a client for the given base URL
func New(baseURL string, timeout time.Duration) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	// Correlate every outbound call for the service-side logs
	httpClient.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		r.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})

	return &Client{http: httpClient}
}

var (
	sharedMu sync.Mutex
	shared   *Client
)

// Configure points the shared client at a base URL. main calls this
// once at startup with the configured API base; tests repoint it at a
// fake service.
func Configure(baseURL string) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	shared = New(baseURL, 30*time.Second)
}

// Shared returns the process-wide client, building it lazily from
// configuration when nothing configured one explicitly.
func Shared() *Client {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared == nil {
		timeout := 30 * time.Second
		base := "http://localhost:5000/api"
		if config.AppConfig != nil {
			base = config.AppConfig.APIBaseURL
			timeout = time.Duration(config.AppConfig.APITimeoutSeconds) * time.Second
		}
		shared = New(base, timeout)
	}
	return shared
}

// do runs one request. A transport failure wraps ErrUnreachable; an
// error status becomes an *APIError carrying the server message.
func (c *Client) do(method, path, token string, configure func(*resty.Request), out interface{}) error {
	req := c.http.R()
	if token != "" {
		req.SetAuthToken(token)
	}
	if out != nil {
		req.SetResult(out)
	}
	if configure != nil {
		configure(req)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	if resp.IsError() {
		return upstreamError(resp)
	}
	return nil
}

func upstreamError(resp *resty.Response) error {
	body := struct {
		Message string `json:"message"`
	}{}
	_ = json.Unmarshal(resp.Body(), &body)
	return &APIError{StatusCode: resp.StatusCode(), Message: body.Message}
}
