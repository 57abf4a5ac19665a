package condition

import (
	"fmt"
	"sync"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"

	"github.com/anish877/Realta-Wealth-sub002/pkg/snapshot"
)

// Evaluator decides whether a rule string holds against a snapshot. Schema
// documents may attach free-form `visible_when` expressions to descriptors;
// this interface keeps the expression dialect pluggable.
type Evaluator interface {
	Eval(fieldID, rule string, snap snapshot.Snapshot) (bool, error)
}

// EvaluatorFunc adapts a function into an Evaluator.
type EvaluatorFunc func(fieldID, rule string, snap snapshot.Snapshot) (bool, error)

// Eval delegates to the underlying function.
func (fn EvaluatorFunc) Eval(fieldID, rule string, snap snapshot.Snapshot) (bool, error) {
	return fn(fieldID, rule, snap)
}

// ExprEvaluator executes rule expressions with github.com/expr-lang/expr.
// Snapshot fields are exposed as top-level identifiers; undefined fields
// evaluate as nil. Compiled programs are cached per expression.
type ExprEvaluator struct {
	mu       sync.Mutex
	programs map[string]*exprvm.Program
}

// NewExprEvaluator constructs an expression evaluator with an empty cache.
func NewExprEvaluator() *ExprEvaluator {
	return &ExprEvaluator{programs: make(map[string]*exprvm.Program)}
}

// Eval compiles (or reuses) the rule and runs it against the snapshot. An
// empty rule holds. Non-boolean results are coerced through the same
// truthiness rules the condition operators use.
func (e *ExprEvaluator) Eval(fieldID, rule string, snap snapshot.Snapshot) (bool, error) {
	_ = fieldID
	if rule == "" {
		return true, nil
	}

	program, err := e.loadOrCompile(rule)
	if err != nil {
		return false, err
	}

	env := make(map[string]any, len(snap))
	for key, value := range snap {
		env[key] = value
	}

	result, err := exprlang.Run(program, env)
	if err != nil {
		return false, fmt.Errorf("condition: evaluate %q: %w", rule, err)
	}

	switch typed := result.(type) {
	case bool:
		return typed, nil
	case nil:
		return false, nil
	default:
		got, ok := snapshot.CoerceBool(typed)
		return ok && got, nil
	}
}

func (e *ExprEvaluator) loadOrCompile(rule string) (*exprvm.Program, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if program, ok := e.programs[rule]; ok {
		return program, nil
	}

	program, err := exprlang.Compile(rule,
		exprlang.Env(map[string]any{}),
		exprlang.AllowUndefinedVariables(),
		exprlang.AsAny(),
	)
	if err != nil {
		return nil, fmt.Errorf("condition: compile %q: %w", rule, err)
	}
	e.programs[rule] = program
	return program, nil
}
