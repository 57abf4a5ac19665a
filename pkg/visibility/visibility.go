// Package visibility resolves whether a field is rendered and whether it is
// conditionally required, as two independent pure functions over the current
// snapshot. The two resolvers are deliberately separate so a visibility
// change never silently changes validation unless the same condition is
// declared in both tables.
package visibility

import (
	"strings"

	"github.com/anish877/Realta-Wealth-sub002/pkg/condition"
	"github.com/anish877/Realta-Wealth-sub002/pkg/snapshot"
)

// Rule governs one or more fields: the fields are visible exactly when every
// condition holds. Rules are consulted in declared order and the first rule
// governing a field wins.
type Rule struct {
	// Fields lists exact field ids this rule governs.
	Fields []string
	// Prefix additionally governs every field id sharing the prefix, used
	// for address sub-field groups.
	Prefix string
	// When must all hold for the governed fields to be visible.
	When []condition.Condition
}

func (r Rule) governs(fieldID string) bool {
	for _, id := range r.Fields {
		if id == fieldID {
			return true
		}
	}
	return r.Prefix != "" && strings.HasPrefix(fieldID, r.Prefix)
}

// Resolver answers Visible(fieldID, snapshot) from an ordered rule table
// plus optional schema-declared expressions. Unknown fields default to
// visible.
type Resolver struct {
	rules       []Rule
	expressions map[string]string
	evaluator   condition.Evaluator
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRules appends rules to the resolver's ordered table.
func WithRules(rules ...Rule) Option {
	return func(r *Resolver) {
		r.rules = append(r.rules, rules...)
	}
}

// WithExpression attaches a schema-declared rule expression to a field,
// consulted when no table rule governs it.
func WithExpression(fieldID, rule string) Option {
	return func(r *Resolver) {
		if strings.TrimSpace(rule) == "" {
			return
		}
		r.expressions[fieldID] = rule
	}
}

// WithEvaluator replaces the expression evaluator. The default uses the
// expr-backed evaluator from pkg/condition.
func WithEvaluator(evaluator condition.Evaluator) Option {
	return func(r *Resolver) {
		if evaluator != nil {
			r.evaluator = evaluator
		}
	}
}

// New builds a Resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		expressions: make(map[string]string),
		evaluator:   condition.NewExprEvaluator(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Visible reports whether the field should currently render. The resolution
// is pure: identical snapshots yield identical answers. Expression errors
// fall back to visible so a bad schema rule never blanks a form.
func (r *Resolver) Visible(fieldID string, snap snapshot.Snapshot) bool {
	if r == nil {
		return true
	}
	for _, rule := range r.rules {
		if rule.governs(fieldID) {
			return condition.All(rule.When, snap)
		}
	}
	if rule, ok := r.expressions[fieldID]; ok {
		visible, err := r.evaluator.Eval(fieldID, rule, snap)
		if err != nil {
			return true
		}
		return visible
	}
	return true
}
