// Package chapa is a client for the Chapa payment API. It validates and
// normalizes transaction requests, then talks to the provider's two REST
// endpoints: transaction initialization and transaction verification.
package chapa

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.chapa.co/v1"

const (
	initializePath = "/transaction/initialize"
	verifyPath     = "/transaction/verify/"
)

const defaultTimeout = 10 * time.Second

// Doer issues HTTP requests. *http.Client satisfies it; tests and callers
// with special transport needs can inject their own.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the Chapa API on behalf of a single merchant account.
// It holds no per-call state, so one instance is safe for concurrent use.
type Client struct {
	secret  string
	baseURL string
	http    Doer
}

type ClientOption func(*Client)

// WithBaseURL points the client at a different API root, e.g. a sandbox
// or a test server.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient replaces the default HTTP client. Timeouts and deadlines
// are the injected client's responsibility.
func WithHTTPClient(d Doer) ClientOption {
	return func(c *Client) {
		if d != nil {
			c.http = d
		}
	}
}

// New builds a Client around the merchant's secret key. The key is
// attached to every outbound call as a bearer token.
func New(secretKey string, opts ...ClientOption) *Client {
	c := &Client{
		secret:  secretKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize validates and normalizes req, then submits it to the
// transaction-initialize endpoint. Validation failures surface as a
// *ValidationError before any network traffic.
func (c *Client) Initialize(ctx context.Context, req TransactionRequest, opts Options) (Result, error) {
	if err := validate(req, opts); err != nil {
		return nil, err
	}
	body := normalize(req)
	return c.call(ctx, http.MethodPost, initializePath, body, body["tx_ref"])
}

// Verify fetches the provider's view of a previously initialized
// transaction by its reference.
func (c *Client) Verify(ctx context.Context, txRef string) (Result, error) {
	if txRef == "" {
		return nil, &ValidationError{Violations: []string{"Transaction reference must be a non-empty string."}}
	}
	return c.call(ctx, http.MethodGet, verifyPath+url.PathEscape(txRef), nil, txRef)
}

func (c *Client) call(ctx context.Context, method, path string, body TransactionRequest, txRef any) (Result, error) {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, &TransportError{Op: "encode request", Err: err}
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, &TransportError{Op: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.secret)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	var parsed Result
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &TransportError{Op: "decode response", Err: err}
	}
	if parsed == nil {
		// a JSON null body still decodes cleanly, into a nil map
		parsed = Result{}
	}
	parsed["tx_ref"] = txRef

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Payload: parsed}
	}
	return parsed, nil
}
