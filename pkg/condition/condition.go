// Package condition implements the small interpreter behind conditional
// visibility and conditional requiredness: {field, operator, value} triples
// evaluated against a form snapshot, plus an expression evaluator for
// schema-declared rules.
package condition

import (
	"github.com/anish877/Realta-Wealth-sub002/pkg/snapshot"
)

// Op identifies a comparison operator in a dependency triple.
type Op string

const (
	// OpEquals matches when the dependent field's value equals the
	// comparison value exactly.
	OpEquals Op = "equals"
	// OpIncludes matches when the dependent field is a list containing the
	// comparison value, or intersecting it when the comparison value is
	// itself a list.
	OpIncludes Op = "includes"
	// OpChecked matches when the dependent field strictly equals `true` or
	// `"Yes"`, or strictly equals the literal comparison value when one is
	// given (so `false` can detect an un-checked state).
	OpChecked Op = "checked"
)

// Condition is one dependency triple: "Field, compared via Op against Value".
type Condition struct {
	Field string
	Op    Op
	Value any
}

type predicate func(got any, want any) bool

// predicates maps operator tags to their comparison functions. New operators
// are added here without touching evaluation call sites.
var predicates = map[Op]predicate{
	OpEquals:   equals,
	OpIncludes: includes,
	OpChecked:  checked,
}

// Holds evaluates the condition against a snapshot. Unknown operators never
// match. The evaluation is pure: identical snapshots yield identical results.
func (c Condition) Holds(snap snapshot.Snapshot) bool {
	pred, ok := predicates[c.Op]
	if !ok {
		return false
	}
	got, _ := snap.Get(c.Field)
	return pred(got, c.Value)
}

// All reports whether every condition in the list holds. An empty list holds.
func All(conditions []Condition, snap snapshot.Snapshot) bool {
	for _, c := range conditions {
		if !c.Holds(snap) {
			return false
		}
	}
	return true
}

// Any reports whether at least one condition holds. An empty list does not.
func Any(conditions []Condition, snap snapshot.Snapshot) bool {
	for _, c := range conditions {
		if c.Holds(snap) {
			return true
		}
	}
	return false
}

func equals(got, want any) bool {
	if got == nil {
		return want == nil || snapshot.CoerceString(want) == ""
	}
	if gotBool, ok := got.(bool); ok {
		wantBool, isBool := snapshot.CoerceBool(want)
		return isBool && gotBool == wantBool
	}
	return snapshot.CoerceString(got) == snapshot.CoerceString(want)
}

func includes(got, want any) bool {
	list := snapshot.CoerceList(got)
	if len(list) == 0 {
		return false
	}
	members := make(map[string]struct{}, len(list))
	for _, entry := range list {
		members[entry] = struct{}{}
	}

	switch wanted := want.(type) {
	case []string:
		for _, candidate := range wanted {
			if _, ok := members[candidate]; ok {
				return true
			}
		}
		return false
	case []any:
		for _, candidate := range wanted {
			if _, ok := members[snapshot.CoerceString(candidate)]; ok {
				return true
			}
		}
		return false
	default:
		_, ok := members[snapshot.CoerceString(want)]
		return ok
	}
}

func checked(got, want any) bool {
	if want != nil {
		return got == want
	}
	return got == true || got == "Yes"
}
