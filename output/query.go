package output

import (
	"errors"
	"fmt"

	"github.com/itchyny/gojq"

	"github.com/s0up4200/wordnik/wordnik"
)

// Query projects v with a jq expression. A single output is returned as is,
// several outputs are collected into an array and no output yields nil.
func Query(v wordnik.JSON, expression string) (wordnik.JSON, error) {
	query, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}

	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %w", err)
	}

	var values []any
	iter := code.Run(v)
	for {
		out, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := out.(error); isErr {
			var haltErr *gojq.HaltError
			if errors.As(err, &haltErr) && haltErr.Value() == nil {
				break
			}
			return nil, fmt.Errorf("jq: %w", err)
		}
		values = append(values, out)
	}

	switch len(values) {
	case 0:
		return nil, nil
	case 1:
		return values[0], nil
	default:
		return values, nil
	}
}
