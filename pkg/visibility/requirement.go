package visibility

import (
	"github.com/anish877/Realta-Wealth-sub002/pkg/condition"
	"github.com/anish877/Realta-Wealth-sub002/pkg/snapshot"
)

// Requirement reports whether a field is conditionally required and the
// message to surface when it is left empty.
type Requirement struct {
	Required bool
	Message  string
}

// RequirementRule marks governed fields required exactly when every
// condition holds.
type RequirementRule struct {
	Fields  []string
	Prefix  string
	When    []condition.Condition
	Message string
}

func (r RequirementRule) governs(fieldID string) bool {
	return Rule{Fields: r.Fields, Prefix: r.Prefix}.governs(fieldID)
}

// RequirementResolver answers Requirement(fieldID, snapshot) from an ordered
// rule table. It mirrors the Resolver's condition language but governs
// requiredness only; fields no rule governs are not conditionally required.
type RequirementResolver struct {
	rules []RequirementRule
}

// NewRequirements builds a RequirementResolver over an ordered table.
func NewRequirements(rules ...RequirementRule) *RequirementResolver {
	return &RequirementResolver{rules: rules}
}

// Requirement resolves the conditional requiredness of a field. Pure:
// identical snapshots yield identical answers, first governing rule wins.
func (r *RequirementResolver) Requirement(fieldID string, snap snapshot.Snapshot) Requirement {
	if r == nil {
		return Requirement{}
	}
	for _, rule := range r.rules {
		if !rule.governs(fieldID) {
			continue
		}
		if !condition.All(rule.When, snap) {
			return Requirement{}
		}
		message := rule.Message
		if message == "" {
			message = "This field is required"
		}
		return Requirement{Required: true, Message: message}
	}
	return Requirement{}
}
