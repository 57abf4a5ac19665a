package disclosures

import (
	"github.com/anish877/Realta-Wealth-sub002/pkg/condition"
	"github.com/anish877/Realta-Wealth-sub002/pkg/schema"
	"github.com/anish877/Realta-Wealth-sub002/pkg/validation"
	"github.com/anish877/Realta-Wealth-sub002/pkg/visibility"
	"github.com/anish877/Realta-Wealth-sub002/pkg/workflow"
)

func orderDefinition(doc *schema.Document) workflow.Definition {
	liquidation := condition.Condition{Field: "is_liquidation", Op: condition.OpChecked}
	otherFunds := condition.Condition{Field: "funds_source", Op: condition.OpIncludes, Value: "Other"}

	orderDetails := validation.Set{
		Name: "order/details",
		Rules: []validation.Rule{
			{Field: "rr_name", Kind: validation.KindRequired, Message: "Registered representative name is required"},
			{Field: "account_number", Kind: validation.KindRequired, Message: "Account number is required"},
			{Field: "account_type", Kind: validation.KindRequired, Message: "Select an account type"},
			{Field: "account_type", Kind: validation.KindSingleChoice, Message: "Select only one account type"},
			{Field: "investment_name", Kind: validation.KindRequired, Message: "Investment name is required"},
			{Field: "investment_type", Kind: validation.KindRequired, Message: "Select an investment type"},
			{Field: "investment_type", Kind: validation.KindSingleChoice, Message: "Select only one investment type"},
			{Field: "purchase_amount", Kind: validation.KindRequired, Message: "Purchase amount is required"},
			{Field: "purchase_amount", Kind: validation.KindFormat, Format: validation.FormatCurrency},
			{Field: "purchase_amount", Kind: validation.KindBounds, Message: "Purchase amount must be greater than zero",
				Min: minAmount(0.01)},
			{Field: "order_date", Kind: validation.KindRequired, Message: "Order date is required"},
			{Field: "order_date", Kind: validation.KindFormat, Format: validation.FormatDate},
			{Field: "funds_source", Kind: validation.KindRequired, Message: "Select a source of funds"},
			{Field: "funds_source_other_detail", Kind: validation.KindRequiredWhen,
				Message: "Describe the other source of funds", When: otherFunds},
			{Field: "liquidation_detail", Kind: validation.KindRequiredWhen,
				Message: "Identify the position being liquidated", When: liquidation},
		},
	}

	signatures := validation.Set{
		Name: "order/signatures",
		Rules: []validation.Rule{
			{Field: "client_signature", Kind: validation.KindRequired, Message: "Client signature is required"},
			{Field: "client_signature", Kind: validation.KindSetComplete, Message: "Complete the client signature block",
				Set: []string{"client_signature", "client_printed_name", "client_signature_date"}},
			{Field: "client_signature_date", Kind: validation.KindFormat, Format: validation.FormatDate},
			{Field: "joint_owner_signature", Kind: validation.KindRequiredWhen, Message: "Joint owner signature is required", When: jointAccount},
			{Field: "joint_owner_signature", Kind: validation.KindSetComplete, Message: "Complete the joint owner signature block",
				Set: []string{"joint_owner_signature", "joint_owner_printed_name", "joint_owner_signature_date"}},
			{Field: "joint_owner_signature_date", Kind: validation.KindFormat, Format: validation.FormatDate},
			{Field: "rr_signature", Kind: validation.KindRequired, Message: "Representative signature is required"},
			{Field: "rr_signature", Kind: validation.KindSetComplete, Message: "Complete the representative signature block",
				Set: []string{"rr_signature", "rr_signature_date"}},
			{Field: "rr_signature_date", Kind: validation.KindFormat, Format: validation.FormatDate},
		},
	}

	vis := resolverFor(doc,
		visibility.Rule{Fields: []string{"liquidation_detail"}, When: []condition.Condition{liquidation}},
		visibility.Rule{
			Fields: []string{"joint_owner_signature", "joint_owner_printed_name", "joint_owner_signature_date"},
			When:   []condition.Condition{jointAccount},
		},
	)

	reqs := visibility.NewRequirements(
		visibility.RequirementRule{Fields: []string{"funds_source_other_detail"}, When: []condition.Condition{otherFunds},
			Message: "Describe the other source of funds"},
		visibility.RequirementRule{Fields: []string{"liquidation_detail"}, When: []condition.Condition{liquidation},
			Message: "Identify the position being liquidated"},
		visibility.RequirementRule{
			Fields:  []string{"joint_owner_signature", "joint_owner_printed_name", "joint_owner_signature_date"},
			When:    []condition.Condition{jointAccount},
			Message: "Joint accounts require the joint owner signature block",
		},
	)

	return workflow.Definition{
		Doc:          doc,
		Schemas:      []validation.Set{orderDetails, signatures},
		Visibility:   vis,
		Requirements: reqs,
	}
}
