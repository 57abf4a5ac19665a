package disclosures

import (
	"fmt"

	"github.com/anish877/Realta-Wealth-sub002/pkg/condition"
	"github.com/anish877/Realta-Wealth-sub002/pkg/schema"
	"github.com/anish877/Realta-Wealth-sub002/pkg/snapshot"
	"github.com/anish877/Realta-Wealth-sub002/pkg/visibility"
	"github.com/anish877/Realta-Wealth-sub002/pkg/workflow"
)

// Form names as embedded in the schema documents.
const (
	FormAccreditation           = "accreditation"
	FormAdditionalAccountHolder = "additional-account-holder"
	FormOrder                   = "order"
)

// Names lists every form this package defines, in a stable order.
func Names() []string {
	return []string{FormAccreditation, FormAdditionalAccountHolder, FormOrder}
}

// Definition assembles the full workflow definition for a form name.
func Definition(form string) (workflow.Definition, error) {
	docs, err := Documents()
	if err != nil {
		return workflow.Definition{}, err
	}
	doc, ok := docs[form]
	if !ok {
		return workflow.Definition{}, fmt.Errorf("disclosures: unknown form %q", form)
	}

	switch form {
	case FormAccreditation:
		return accreditationDefinition(doc), nil
	case FormAdditionalAccountHolder:
		return holderDefinition(doc), nil
	case FormOrder:
		return orderDefinition(doc), nil
	default:
		return workflow.Definition{}, fmt.Errorf("disclosures: form %q has no definition", form)
	}
}

// jointAccount holds when the selected account type calls for a joint owner
// signature block.
var jointAccount = condition.Condition{Field: "account_type", Op: condition.OpIncludes, Value: "joint"}

// HasJointOwner reports the derived joint-owner flag for a snapshot.
func HasJointOwner(snap snapshot.Snapshot) bool {
	return jointAccount.Holds(snap)
}

// employedStatuses are the employment selections that make the occupation and
// employer fields relevant.
var employedStatuses = []string{"Employed", "Self-Employed"}

func employed() condition.Condition {
	return condition.Condition{Field: "employment_status", Op: condition.OpIncludes, Value: employedStatuses}
}

func holderIsPerson() condition.Condition {
	return condition.Condition{Field: "id_holder_types", Op: condition.OpIncludes, Value: "person"}
}

func holderIsEntity() condition.Condition {
	return condition.Condition{Field: "id_holder_types", Op: condition.OpIncludes, Value: "entity"}
}

// resolverFor builds the visibility resolver from the table rules plus every
// visible_when expression the schema document declares.
func resolverFor(doc *schema.Document, rules ...visibility.Rule) *visibility.Resolver {
	opts := []visibility.Option{visibility.WithRules(rules...)}
	for _, id := range doc.FieldIDs() {
		if desc, ok := doc.Field(id); ok && desc.VisibleWhen != "" {
			opts = append(opts, visibility.WithExpression(id, desc.VisibleWhen))
		}
	}
	return visibility.New(opts...)
}

func minAmount(v float64) *float64 {
	return &v
}
