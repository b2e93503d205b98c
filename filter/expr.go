package filter

import (
	"maps"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/builtin"
	"github.com/expr-lang/expr/parser"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/wordnik/wordnik"
)

// elementKey names the whole element inside an expression
const elementKey = "it"

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) Compiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	// Element fields are only known at run time
	options := []expr.Option{
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	}
	for _, name := range c.shadowedBuiltins(expression) {
		options = append(options, expr.DisableBuiltin(name))
	}

	program, err := expr.Compile(expression, options...)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &exprFilter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}, nil
}

// shadowedBuiltins returns the builtin names used as plain variables in
// expression. Responses carry fields such as count, type and len, which
// would otherwise resolve to the builtin functions. Calls like len(it)
// parse as builtin calls and are left alone.
func (c *exprCompiler) shadowedBuiltins(expression string) []string {
	tree, err := parser.Parse(expression)
	if err != nil {
		// expr.Compile reports the syntax error
		return nil
	}

	v := &identifierCollector{seen: map[string]bool{}}
	ast.Walk(&tree.Node, v)

	var names []string
	for _, name := range v.names {
		if _, isBuiltin := builtin.Index[name]; !isBuiltin {
			continue
		}
		if _, isHelper := c.helperFuncs[name]; isHelper {
			continue
		}
		names = append(names, name)
	}
	return names
}

type identifierCollector struct {
	names []string
	seen  map[string]bool
}

func (v *identifierCollector) Visit(node *ast.Node) {
	if ident, ok := (*node).(*ast.IdentifierNode); ok && !v.seen[ident.Value] {
		v.seen[ident.Value] = true
		v.names = append(v.names, ident.Value)
	}
}

// Compile compiles expression with the default helpers.
func Compile(expression string) (CompiledFilter, error) {
	return NewExprCompiler().Compile(expression)
}

// Evaluate evaluates the filter against one element. Object fields are
// exposed as variables; the element itself is available as `it`.
func (f *exprFilter) Evaluate(element wordnik.JSON) (bool, error) {
	env := createRuntimeEnvironment(f.helpers, element)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, err
	}

	// AsBool guarantees the result type
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// Apply keeps the elements of an array result that match f. A nil result
// (absent resource) stays nil.
func Apply(f Filter, result wordnik.JSON) (wordnik.JSON, error) {
	if result == nil {
		return nil, nil
	}

	elements, ok := result.([]any)
	if !ok {
		return nil, ErrNotArray
	}

	matches := make([]any, 0, len(elements))
	for i, element := range elements {
		ok, err := f.Evaluate(element)
		if err != nil {
			evalErr := &EvaluationError{Index: i, Err: err}
			if cf, isCompiled := f.(CompiledFilter); isCompiled {
				evalErr.Expression = cf.Expression()
			}
			return nil, evalErr
		}
		if ok {
			matches = append(matches, element)
		}
	}

	return matches, nil
}

// createHelperFunctions creates the static helper functions used during compilation
func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 8)
	addHelperFunctions(funcs)
	return funcs
}

// addHelperFunctions adds all helper functions to the provided map
func addHelperFunctions(env map[string]any) {
	env["icontains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["iequals"] = strings.EqualFold
	env["daysSince"] = func(date string) int {
		t, ok := parseDate(date)
		if !ok {
			return -1
		}
		return int(time.Since(t).Hours() / 24)
	}
	// Replaced per element by createRuntimeEnvironment
	env["field"] = func(name string) any { return nil }
}

// parseDate accepts the timestamp layouts found in Wordnik responses
func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05.000-0700", "2006-01-02T15:04:05.000+0000", wordnik.DateFormat} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// createRuntimeEnvironment creates the runtime environment for filter evaluation
func createRuntimeEnvironment(helpers map[string]any, element wordnik.JSON) map[string]any {
	fields, _ := element.(map[string]any)

	env := make(map[string]any, len(helpers)+len(fields)+1)
	maps.Copy(env, fields)
	// Helpers win over element fields of the same name
	maps.Copy(env, helpers)
	env[elementKey] = element

	// field reads keys that are not valid identifiers
	env["field"] = func(name string) any {
		return fields[name]
	}

	return env
}
