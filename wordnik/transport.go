package wordnik

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog"
)

// debugTransport dumps each request and response at debug level.
//
// Enable it with WithDebugLogging(true) or WORDNIK_DEBUG=true. The api_key
// and auth_token values and any password parameter are redacted from the
// dumps, but request and response bodies are logged in full.
type debugTransport struct {
	base   http.RoundTripper
	logger zerolog.Logger
	redact func(string) string
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	url := dt.redact(req.URL.String())

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		dt.logger.Debug().Str("method", req.Method).Str("url", url).Str("request_dump", dt.redact(string(reqDump))).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		dt.logger.Error().Err(err).Str("method", req.Method).Str("url", url).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		dt.logger.Debug().Str("method", req.Method).Str("url", url).Int("status_code", resp.StatusCode).Str("response_dump", dt.redact(string(respDump))).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks WORDNIK_DEBUG. Dumps include full bodies, so
// a generic DEBUG flag set for some other tool does not turn them on.
func debugLoggingRequested() bool {
	return os.Getenv("WORDNIK_DEBUG") == "true"
}
