package wordnik

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the root of every Wordnik v4 endpoint
	DefaultBaseURL = "https://api.wordnik.com/v4"
	// DefaultTimeout bounds a single API call
	DefaultTimeout = 10 * time.Second
	// DefaultUserAgent identifies the client to the API
	DefaultUserAgent = "wordnik-go"
	// DateFormat is the layout of date parameters such as wordOfTheDay's date
	DateFormat = "2006-01-02"

	placeholderAPIKey = "YOUR_API_KEY"
	redacted          = "REDACTED"
)

var (
	passwordParam = regexp.MustCompile(`(password=)[^&\s"]*`)

	// api_key and auth_token as header lines ("Api_key: x") or query values
	credentialParam = regexp.MustCompile(`(?i)((?:api_key|auth_token)(?:=|:[ \t]*))[^&\s"]*`)

	// the session token in an authenticate response body
	tokenField = regexp.MustCompile(`("token"\s*:\s*")[^"]*`)
)

// JSON is a decoded response body: map[string]any, []any, string, float64,
// bool, or nil when the resource does not exist.
type JSON = any

// Client represents a Wordnik API client
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger

	mu    sync.RWMutex
	token string
}

// New creates a new Wordnik client for apiKey
func New(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" || apiKey == placeholderAPIKey {
		return nil, fmt.Errorf("%w: you need to specify a valid api key", ErrConfiguration)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	baseURL := strings.TrimRight(o.baseURL, "/")
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: invalid base URL %q", ErrConfiguration, o.baseURL)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	c := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		userAgent:  o.userAgent,
		httpClient: httpClient,
		logger:     logger,
		token:      o.sessionToken,
	}

	if o.debug || debugLoggingRequested() {
		// copy so a shared http.Client is left untouched
		wrapped := *httpClient
		base := wrapped.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		wrapped.Transport = &debugTransport{base: base, logger: logger, redact: redact}
		c.httpClient = &wrapped
	}

	return c, nil
}

// BaseURL returns the API endpoint the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SessionToken returns the token stored by Authenticate, or "" before it
func (c *Client) SessionToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Authenticated reports whether a session token is present
func (c *Client) Authenticated() bool {
	return c.SessionToken() != ""
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ensureAuthenticated fails unless Authenticate has stored a session token
func (c *Client) ensureAuthenticated(op string) error {
	if !c.Authenticated() {
		return fmt.Errorf("%s: %w", op, ErrAuthenticationRequired)
	}
	return nil
}

// request describes one API call
type request struct {
	op     string
	method string
	path   string
	params Params
	body   any
}

func (c *Client) get(ctx context.Context, op, path string, params Params) (JSON, error) {
	return c.do(ctx, request{op: op, method: http.MethodGet, path: path, params: params})
}

// do performs a single round trip and classifies the response: 2xx decodes
// the body, 404 yields nil, 401 an *AuthenticationError, anything else an
// *APIError. Transport failures yield a *NetworkError.
func (c *Client) do(ctx context.Context, r request) (JSON, error) {
	endpoint := c.baseURL + r.path
	if query := r.params.Values(); len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	logURL := redactPassword(endpoint)

	var body io.Reader
	if r.method == http.MethodPost || r.method == http.MethodPut {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to encode request body: %w", r.op, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", r.op, err)
	}
	c.setHeaders(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observeRequest(r.op, "error", time.Since(start))
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = logURL
		}
		c.logger.Debug().Err(err).Str("operation", r.op).Str("url", logURL).Msg("Wordnik API request failed")
		return nil, &NetworkError{URL: logURL, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		observeRequest(r.op, "error", time.Since(start))
		return nil, &NetworkError{URL: logURL, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	elapsed := time.Since(start)
	observeRequest(r.op, strconv.Itoa(resp.StatusCode), elapsed)
	c.logger.Debug().
		Str("operation", r.op).
		Str("method", r.method).
		Str("url", logURL).
		Int("status", resp.StatusCode).
		Dur("duration", elapsed).
		Msg("Wordnik API request")

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		result, err := decodeBody(data)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to parse response: %w", r.op, err)
		}
		return result, nil
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, &AuthenticationError{URL: logURL, Message: errorMessage(data)}
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil
	default:
		return nil, &APIError{URL: logURL, StatusCode: resp.StatusCode, Body: string(data)}
	}
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api_key", c.apiKey)
	if token := c.SessionToken(); token != "" {
		req.Header.Set("auth_token", token)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
}

func redactPassword(s string) string {
	return passwordParam.ReplaceAllString(s, "${1}"+redacted)
}

// redact strips the api_key and auth_token values and any password from a
// request or response dump. Other text is left as is, even when it happens
// to contain the key.
func redact(s string) string {
	s = redactPassword(s)
	s = credentialParam.ReplaceAllString(s, "${1}"+redacted)
	return tokenField.ReplaceAllString(s, "${1}"+redacted)
}

func decodeBody(data []byte) (JSON, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// errorMessage extracts the message field of an error body, falling back to
// the raw body text.
func errorMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		return body.Message
	}
	if text := strings.TrimSpace(string(data)); text != "" {
		return text
	}
	return http.StatusText(http.StatusUnauthorized)
}

// segment percent-encodes a single path segment
func segment(s string) string {
	return url.PathEscape(s)
}

func requireString(op, param, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Operation: op, Param: param}
	}
	return nil
}
