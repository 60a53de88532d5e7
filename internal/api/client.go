package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/time/rate"

	"github.com/danialhaz/gigmate/internal/schemas"
)

// DefaultTimeout is the hard per-request timeout.
const DefaultTimeout = 20 * time.Second

// defaultRequestsPerSecond throttles outgoing calls so scroll-triggered bursts
// stay polite toward the backend.
const defaultRequestsPerSecond = 5

// Options configures the API client.
type Options struct {
	BaseURL           string
	Token             string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	// StrictSchemas validates search and recommendation responses against
	// their JSON schemas before decoding.
	StrictSchemas bool
	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

// Client performs authenticated calls against the GigMate backend. It holds
// credentials only; session state lives with the caller.
type Client struct {
	baseURL    *url.URL
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
	strict     bool
}

// NewClient creates a client for the given backend.
func NewClient(opts Options) (*Client, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", opts.BaseURL)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	rps := opts.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = int(rps)
	}

	return &Client{
		baseURL:    base,
		token:      opts.Token,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
		strict:     opts.StrictSchemas,
	}, nil
}

// tokenExpired checks the bearer token's exp claim without verifying the
// signature (verification is the server's job). An unparseable token is left
// for the server to reject.
func tokenExpired(token string) bool {
	if token == "" {
		return false
	}
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// do executes one JSON request and decodes the response into out (which may be
// nil). schemaName, when non-empty and strict mode is on, names the JSON schema
// the raw response must satisfy.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, schemaName string) error {
	if tokenExpired(c.token) {
		return &Error{Kind: KindAuth, Message: "session expired"}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return &Error{Kind: KindNetwork, Message: "request cancelled while rate limited", Cause: err}
	}

	endpoint := *c.baseURL
	endpoint.Path = strings.TrimRight(endpoint.Path, "/") + path
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindDecode, Message: "failed to encode request body", Cause: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: "failed to read response body", Cause: err}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return &Error{Kind: KindAuth, StatusCode: resp.StatusCode, Message: "session expired"}
	case resp.StatusCode >= 500:
		return &Error{Kind: KindServer, StatusCode: resp.StatusCode, Message: "server error"}
	case resp.StatusCode >= 400:
		return decodeErrorBody(resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}

	if c.strict && schemaName != "" {
		if err := schemas.ValidateBytes(schemaName, respBody); err != nil {
			return &Error{Kind: KindDecode, Message: "response failed schema validation", Cause: err}
		}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &Error{Kind: KindDecode, Message: "failed to decode response", Cause: err}
	}
	return nil
}
