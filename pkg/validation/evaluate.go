package validation

import (
	"fmt"

	"github.com/anish877/Realta-Wealth-sub002/pkg/snapshot"
)

// Options scopes and parameterises one validation pass.
type Options struct {
	// Fields restricts evaluation to rules targeting the listed ids, used
	// for page-scoped validation. Nil means the whole form.
	Fields map[string]struct{}

	// Visible reports whether a field is currently rendered. Hidden fields
	// are exempt from presence requirements; nil treats every field as
	// visible.
	Visible func(fieldID string) bool
}

func (o Options) inScope(fieldID string) bool {
	if o.Fields == nil {
		return true
	}
	_, ok := o.Fields[fieldID]
	return ok
}

func (o Options) visible(fieldID string) bool {
	if o.Visible == nil {
		return true
	}
	return o.Visible(fieldID)
}

// FieldScope builds an Options field filter from a list of ids.
func FieldScope(fieldIDs []string) map[string]struct{} {
	if len(fieldIDs) == 0 {
		return nil
	}
	scope := make(map[string]struct{}, len(fieldIDs))
	for _, id := range fieldIDs {
		scope[id] = struct{}{}
	}
	return scope
}

// Evaluate interprets the rule list against a snapshot. Rules run in
// declared order; the first failing rule per field wins, except
// set-completeness rules which stamp every empty member of a partially
// filled group in one pass. Evaluation is pure and never panics on
// malformed values.
func (s Set) Evaluate(snap snapshot.Snapshot, opts Options) Result {
	result := newResult()
	for _, rule := range s.Rules {
		if !opts.inScope(rule.Field) {
			continue
		}
		evaluateRule(rule, snap, opts, &result)
	}
	return result
}

func evaluateRule(rule Rule, snap snapshot.Snapshot, opts Options, result *Result) {
	switch rule.Kind {
	case KindRequired:
		if !opts.visible(rule.Field) {
			return
		}
		if snap.Empty(rule.Field) {
			result.stamp(rule.Field, message(rule, "This field is required"))
		}

	case KindRequiredWhen:
		if !opts.visible(rule.Field) {
			return
		}
		if rule.When.Holds(snap) && snap.Empty(rule.Field) {
			result.stamp(rule.Field, message(rule, "This field is required"))
		}

	case KindFormat:
		if snap.Empty(rule.Field) {
			return
		}
		raw := snap.String(rule.Field)
		if !checkFormat(rule.Format, raw) {
			result.stamp(rule.Field, message(rule, formatMessage(rule.Format)))
		}

	case KindBounds:
		evaluateBounds(rule, snap, result)

	case KindSetComplete:
		evaluateSetComplete(rule, snap, result)

	case KindSingleChoice:
		if len(snap.List(rule.Field)) > 1 {
			result.stamp(rule.Field, message(rule, "Select only one option"))
		}

	case KindCustom:
		if rule.Predicate == nil || snap.Empty(rule.Field) {
			return
		}
		if !rule.Predicate(snap) {
			result.stamp(rule.Field, message(rule, "Invalid value"))
		}
	}
}

func evaluateBounds(rule Rule, snap snapshot.Snapshot, result *Result) {
	if snap.Empty(rule.Field) {
		return
	}
	raw := snap.String(rule.Field)

	if rule.MinLen > 0 && len(raw) < rule.MinLen {
		result.stamp(rule.Field, message(rule, fmt.Sprintf("Must be at least %d characters", rule.MinLen)))
		return
	}
	if rule.MaxLen > 0 && len(raw) > rule.MaxLen {
		result.stamp(rule.Field, message(rule, fmt.Sprintf("Must be at most %d characters", rule.MaxLen)))
		return
	}

	if rule.Min == nil && rule.Max == nil {
		return
	}
	value, ok := ParseCurrency(raw)
	if !ok {
		result.stamp(rule.Field, message(rule, "Enter a valid number"))
		return
	}
	if rule.Min != nil && value < *rule.Min {
		result.stamp(rule.Field, message(rule, fmt.Sprintf("Must be at least %v", *rule.Min)))
		return
	}
	if rule.Max != nil && value > *rule.Max {
		result.stamp(rule.Field, message(rule, fmt.Sprintf("Must be at most %v", *rule.Max)))
	}
}

func evaluateSetComplete(rule Rule, snap snapshot.Snapshot, result *Result) {
	members := rule.Set
	if len(members) == 0 {
		return
	}

	filled := 0
	for _, member := range members {
		if !snap.Empty(member) {
			filled++
		}
	}
	if filled == 0 || filled == len(members) {
		return
	}

	msg := message(rule, "These fields must be completed together")
	for _, member := range members {
		if snap.Empty(member) {
			result.stamp(member, msg)
		}
	}
}

func message(rule Rule, fallback string) string {
	if rule.Message != "" {
		return rule.Message
	}
	return fallback
}
