// Package validation evaluates declarative field constraint rules against a
// form snapshot. Rules are tagged variants interpreted by a single Evaluate
// loop; adding a rule kind never touches evaluation call sites. Validation
// failures are returned as data and never as errors.
package validation

import (
	"github.com/anish877/Realta-Wealth-sub002/pkg/condition"
	"github.com/anish877/Realta-Wealth-sub002/pkg/snapshot"
)

// Kind discriminates the rule variants the interpreter understands.
type Kind string

const (
	// KindRequired fails when the field is empty.
	KindRequired Kind = "required"
	// KindRequiredWhen fails when the field is empty and the dependency
	// condition holds.
	KindRequiredWhen Kind = "required-when"
	// KindFormat fails when a non-empty field does not match its format tag.
	KindFormat Kind = "format"
	// KindBounds fails when a non-empty value falls outside length or
	// numeric bounds.
	KindBounds Kind = "bounds"
	// KindSetComplete fails when a group of related fields is partially
	// filled; every empty member of the set is stamped in one pass.
	KindSetComplete Kind = "set-complete"
	// KindSingleChoice fails when a list-valued field carries more than one
	// selection.
	KindSingleChoice Kind = "single-choice"
	// KindCustom fails when the rule's predicate rejects the snapshot.
	KindCustom Kind = "custom"
)

// Predicate inspects a whole snapshot and reports whether the constraint
// holds. Predicates run only when the rule's field is non-empty.
type Predicate func(snap snapshot.Snapshot) bool

// Rule is one declarative constraint. Field names the input that receives
// the error message; the remaining members parameterise the kind.
type Rule struct {
	Field   string
	Kind    Kind
	Message string

	// When is the dependency triple for KindRequiredWhen.
	When condition.Condition

	// Format tags the expected wire format for KindFormat.
	Format Format

	// Bounds for KindBounds. Zero-valued bounds are not enforced.
	MinLen int
	MaxLen int
	Min    *float64
	Max    *float64

	// Set lists every member of a KindSetComplete group, Field included.
	Set []string

	// Predicate backs KindCustom.
	Predicate Predicate
}

// Set is a named, ordered rule collection for one form (or one block of a
// form, such as a signatures schema validated separately from client info).
type Set struct {
	Name  string
	Rules []Rule
}

// Result reports one validation pass. Errors maps field id to the first
// failing message for that field. Results are produced fresh per call.
type Result struct {
	Valid  bool
	Errors map[string]string
}

func newResult() Result {
	return Result{Valid: true, Errors: make(map[string]string)}
}

func (r *Result) stamp(fieldID, message string) {
	if _, taken := r.Errors[fieldID]; taken {
		return
	}
	r.Errors[fieldID] = message
	r.Valid = false
}

// Merge combines results from independently validated schemas in declared
// order; later schemas win per field id.
func Merge(results ...Result) Result {
	out := newResult()
	for _, result := range results {
		for fieldID, message := range result.Errors {
			out.Errors[fieldID] = message
		}
	}
	out.Valid = len(out.Errors) == 0
	return out
}
