package wordnik

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Params holds the optional query parameters of an operation, keyed by the
// Wordnik parameter name (limit, useCanonical, partOfSpeech, ...).
//
// Supported values are strings, booleans, integers, floats, []string and
// time.Time (sent as YYYY-MM-DD). Nil values are skipped. A []string value
// is sent as a repeated key. Operations never modify the caller's map.
type Params map[string]any

// Set returns p with key set to value, allocating p when nil.
func (p Params) Set(key string, value any) Params {
	if p == nil {
		p = Params{}
	}
	p[key] = value
	return p
}

// clone returns a shallow copy of p that is never nil
func (p Params) clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// withDefaults returns a copy of p where each default fills a key that is
// absent, nil, or a blank string.
func (p Params) withDefaults(defaults Params) Params {
	out := p.clone()
	for k, def := range defaults {
		v, ok := out[k]
		if !ok || v == nil {
			out[k] = def
			continue
		}
		if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
			out[k] = def
		}
	}
	return out
}

// Values encodes p as url.Values.
func (p Params) Values() url.Values {
	values := url.Values{}
	for k, v := range p {
		switch val := v.(type) {
		case nil:
			continue
		case []string:
			for _, s := range val {
				values.Add(k, s)
			}
		default:
			values.Set(k, formatParam(val))
		}
	}
	return values
}

func formatParam(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		return val.Format(DateFormat)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// ParseParam parses a key=value pair as given on a command line.
func ParseParam(pair string) (string, string, error) {
	key, value, ok := strings.Cut(pair, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", "", fmt.Errorf("invalid parameter %q: expected key=value", pair)
	}
	return key, value, nil
}
