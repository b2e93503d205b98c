package filter

import "github.com/s0up4200/wordnik/wordnik"

// Filter decides whether a single decoded JSON element matches
type Filter interface {
	// Evaluate checks if an element matches the filter criteria
	Evaluate(element wordnik.JSON) (bool, error)
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}
