// Package generate talks to the generate-script service that turns a
// natural-language prompt into rendered animation media.
package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// StatusCompleted is the only status value that marks a finished generation.
const StatusCompleted = "completed"

// RequestIDHeader carries the submission token to the backend.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of a failed response is kept for diagnostics.
const maxErrorBody = 4 << 10

var (
	// ErrTransport reports that no response body was received.
	ErrTransport = errors.New("transport failure")
	// ErrStatus reports a non-2xx HTTP status.
	ErrStatus = errors.New("unexpected http status")
	// ErrContract reports a response that does not describe completed media.
	ErrContract = errors.New("response does not match contract")
)

// Request is the JSON body sent to the service.
type Request struct {
	UserPrompt string `json:"userPrompt"`
}

// Response is the JSON body returned by the service.
type Response struct {
	Status    string   `json:"status"`
	VideoURLs []string `json:"video_urls"`
	AudioURL  string   `json:"audio_url"`
}

// UnmarshalJSON reads the three fields by their exact key. Keys that
// differ only in case are ignored.
func (r *Response) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var out Response
	for key, dst := range map[string]any{
		"status":     &out.Status,
		"video_urls": &out.VideoURLs,
		"audio_url":  &out.AudioURL,
	} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return fmt.Errorf("field %s: %w", key, err)
		}
	}
	*r = out
	return nil
}

// Result holds the media of a completed generation.
type Result struct {
	VideoURLs []string
	AudioURL  string
}

// StatusError wraps ErrStatus with the response code.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d", ErrStatus, e.Code)
}

func (e *StatusError) Unwrap() error {
	return ErrStatus
}

// Kind names the failure class of err for logging.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrStatus):
		return "status"
	case errors.Is(err, ErrContract):
		return "contract"
	case errors.Is(err, ErrTransport):
		return "transport"
	default:
		return "unknown"
	}
}

// Client calls the generate-script endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a client for the given endpoint URL.
// The default HTTP client sets no timeout.
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the configured endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Generate submits prompt as-is and returns the generated media.
// requestID is sent in the X-Request-ID header when non-empty.
func (c *Client) Generate(ctx context.Context, prompt, requestID string) (*Result, error) {
	body, err := json.Marshal(Request{UserPrompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if requestID != "" {
		req.Header.Set(RequestIDHeader, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{Code: resp.StatusCode, Body: string(snippet)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrTransport, err)
	}

	var parsed Response
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: parsing JSON response: %v", ErrContract, err)
	}

	return parsed.result()
}

// result checks the completed-media contract and returns the media verbatim.
func (r Response) result() (*Result, error) {
	if r.Status != StatusCompleted {
		return nil, fmt.Errorf("%w: status %q", ErrContract, r.Status)
	}
	if r.VideoURLs == nil {
		return nil, fmt.Errorf("%w: missing video_urls", ErrContract)
	}
	if r.AudioURL == "" {
		return nil, fmt.Errorf("%w: missing audio_url", ErrContract)
	}
	return &Result{VideoURLs: r.VideoURLs, AudioURL: r.AudioURL}, nil
}
