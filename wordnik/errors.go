package wordnik

import (
	"errors"
	"fmt"
	"net"
)

// Common errors
var (
	// ErrConfiguration indicates an invalid client configuration, such as a missing API key
	ErrConfiguration = errors.New("invalid wordnik configuration")
	// ErrValidation indicates a required parameter was missing or blank
	ErrValidation = errors.New("invalid wordnik request parameters")
	// ErrAuthenticationRequired indicates an account operation was attempted before Authenticate
	ErrAuthenticationRequired = errors.New("authentication required: call Authenticate first")
	// ErrAuthentication indicates the API rejected the credentials or session token
	ErrAuthentication = errors.New("wordnik authentication failed")
	// ErrNetwork indicates the API could not be reached or did not answer in time
	ErrNetwork = errors.New("wordnik network error")
	// ErrAPI indicates an unexpected HTTP status from the API
	ErrAPI = errors.New("wordnik API error")
)

// ValidationError reports a missing or blank required parameter.
type ValidationError struct {
	Operation string
	Param     string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s expects %s to be a non-empty value", e.Operation, e.Param)
}

// Is reports whether target is ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// AuthenticationError is returned for 401 responses and for authenticate
// responses that carry no session token.
type AuthenticationError struct {
	URL     string
	Message string
}

// Error implements the error interface
func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("unauthorized API request to %s: %s", e.URL, e.Message)
}

// Is reports whether target is ErrAuthentication
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthentication
}

// NetworkError wraps transport failures: timeouts, refused connections,
// DNS errors and cancelled contexts.
type NetworkError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	if e.Timeout() {
		return fmt.Sprintf("timeout: api call to %s did not complete: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("can't reach the api: %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport error
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrNetwork
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// Timeout reports whether the failure was a timeout
func (e *NetworkError) Timeout() bool {
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

// APIError represents any response status other than 2xx, 401 and 404.
type APIError struct {
	URL        string
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("wordnik API error: %s response code: %d", e.URL, e.StatusCode)
}

// Is reports whether target is ErrAPI
func (e *APIError) Is(target error) bool {
	return target == ErrAPI
}

// IsServerError checks if the API answered with a 5xx status
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// IsRateLimited checks if the API answered with 429 Too Many Requests
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == 429
}
