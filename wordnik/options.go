package wordnik

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL      string
	timeout      time.Duration
	httpClient   *http.Client
	userAgent    string
	debug        bool
	sessionToken string
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL:   DefaultBaseURL,
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
	}
}

// WithBaseURL overrides the API endpoint (default https://api.wordnik.com/v4).
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTimeout sets the HTTP client timeout. Ignored when WithHTTPClient is used.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient uses a caller-supplied http.Client as-is.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithDebugLogging dumps every request and response at debug level.
// Credentials are redacted, word list contents are not.
func WithDebugLogging(enabled bool) Option {
	return func(o *clientOptions) {
		o.debug = enabled
	}
}

// WithSessionToken restores a session token obtained by an earlier Authenticate.
func WithSessionToken(token string) Option {
	return func(o *clientOptions) {
		o.sessionToken = token
	}
}
