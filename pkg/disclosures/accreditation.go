package disclosures

import (
	"github.com/anish877/Realta-Wealth-sub002/pkg/condition"
	"github.com/anish877/Realta-Wealth-sub002/pkg/schema"
	"github.com/anish877/Realta-Wealth-sub002/pkg/validation"
	"github.com/anish877/Realta-Wealth-sub002/pkg/visibility"
	"github.com/anish877/Realta-Wealth-sub002/pkg/workflow"
)

func accreditationDefinition(doc *schema.Document) workflow.Definition {
	priorRelationship := condition.Condition{Field: "has_prior_relationship", Op: condition.OpChecked}

	clientInfo := validation.Set{
		Name: "accreditation/client-info",
		Rules: []validation.Rule{
			{Field: "rr_name", Kind: validation.KindRequired, Message: "Registered representative name is required"},
			{Field: "account_type", Kind: validation.KindRequired, Message: "Select an account type"},
			{Field: "account_type", Kind: validation.KindSingleChoice, Message: "Select only one account type"},
			{Field: "trust_name", Kind: validation.KindRequiredWhen, Message: "Trust name is required for trust accounts",
				When: condition.Condition{Field: "account_type", Op: condition.OpIncludes, Value: "trust"}},
			{Field: "id_holder_types", Kind: validation.KindRequired, Message: "Indicate who holds the account"},
			{Field: "ssn", Kind: validation.KindRequiredWhen, Message: "Social Security Number is required", When: holderIsPerson()},
			{Field: "ssn", Kind: validation.KindFormat, Format: validation.FormatSSN},
			{Field: "ein", Kind: validation.KindRequiredWhen, Message: "Employer Identification Number is required", When: holderIsEntity()},
			{Field: "ein", Kind: validation.KindFormat, Format: validation.FormatEIN},
			{Field: "date_of_birth", Kind: validation.KindRequiredWhen, Message: "Date of birth is required", When: holderIsPerson()},
			{Field: "date_of_birth", Kind: validation.KindFormat, Format: validation.FormatDate},
			{Field: "date_of_birth", Kind: validation.KindCustom, Message: "Date of birth must be in the past",
				Predicate: validation.DateInPast("date_of_birth")},
			{Field: "email", Kind: validation.KindFormat, Format: validation.FormatEmail},
			{Field: "phone_home_number", Kind: validation.KindFormat, Format: validation.FormatPhone},
			{Field: "phone_mobile_number", Kind: validation.KindFormat, Format: validation.FormatPhone},
			{Field: "employment_status", Kind: validation.KindRequired, Message: "Select an employment status"},
			{Field: "employment_status", Kind: validation.KindSingleChoice, Message: "Select only one employment status"},
			{Field: "occupation", Kind: validation.KindRequiredWhen, Message: "Occupation is required", When: employed()},
			{Field: "employer_name", Kind: validation.KindRequiredWhen, Message: "Employer is required", When: employed()},
			{Field: "annual_income_bracket", Kind: validation.KindRequired, Message: "Select an annual income bracket"},
			{Field: "annual_income_bracket", Kind: validation.KindSingleChoice, Message: "Select only one income bracket"},
			{Field: "net_worth_bracket", Kind: validation.KindRequired, Message: "Select a net worth bracket"},
			{Field: "net_worth_bracket", Kind: validation.KindSingleChoice, Message: "Select only one net worth bracket"},
			{Field: "accreditation_basis", Kind: validation.KindRequired, Message: "Select at least one basis of accreditation"},
			{Field: "prior_relationship_detail", Kind: validation.KindRequiredWhen,
				Message: "Describe the prior relationship", When: priorRelationship},
		},
	}

	signatures := validation.Set{
		Name: "accreditation/signatures",
		Rules: []validation.Rule{
			{Field: "account_owner_signature", Kind: validation.KindRequired, Message: "Account owner signature is required"},
			{Field: "account_owner_signature", Kind: validation.KindSetComplete, Message: "Complete the account owner signature block",
				Set: []string{"account_owner_signature", "account_owner_printed_name", "account_owner_signature_date"}},
			{Field: "account_owner_signature_date", Kind: validation.KindFormat, Format: validation.FormatDate},
			{Field: "joint_owner_signature", Kind: validation.KindRequiredWhen, Message: "Joint owner signature is required", When: jointAccount},
			{Field: "joint_owner_signature", Kind: validation.KindSetComplete, Message: "Complete the joint owner signature block",
				Set: []string{"joint_owner_signature", "joint_owner_printed_name", "joint_owner_signature_date"}},
			{Field: "joint_owner_signature_date", Kind: validation.KindFormat, Format: validation.FormatDate},
		},
	}

	vis := resolverFor(doc,
		visibility.Rule{Fields: []string{"ssn"}, When: []condition.Condition{holderIsPerson()}},
		visibility.Rule{Fields: []string{"ein"}, When: []condition.Condition{holderIsEntity()}},
		visibility.Rule{Fields: []string{"occupation", "employer_name"}, When: []condition.Condition{employed()}},
		visibility.Rule{Fields: []string{"prior_relationship_detail"}, When: []condition.Condition{priorRelationship}},
		visibility.Rule{
			Fields: []string{"joint_owner_signature", "joint_owner_printed_name", "joint_owner_signature_date"},
			When:   []condition.Condition{jointAccount},
		},
	)

	reqs := visibility.NewRequirements(
		visibility.RequirementRule{Fields: []string{"ssn"}, When: []condition.Condition{holderIsPerson()},
			Message: "Social Security Number is required"},
		visibility.RequirementRule{Fields: []string{"ein"}, When: []condition.Condition{holderIsEntity()},
			Message: "Employer Identification Number is required"},
		visibility.RequirementRule{Fields: []string{"occupation", "employer_name"}, When: []condition.Condition{employed()},
			Message: "This field is required while employed"},
		visibility.RequirementRule{Fields: []string{"prior_relationship_detail"}, When: []condition.Condition{priorRelationship},
			Message: "Describe the prior relationship"},
		visibility.RequirementRule{
			Fields:  []string{"joint_owner_signature", "joint_owner_printed_name", "joint_owner_signature_date"},
			When:    []condition.Condition{jointAccount},
			Message: "Joint accounts require the joint owner signature block",
		},
	)

	return workflow.Definition{
		Doc:          doc,
		Schemas:      []validation.Set{clientInfo, signatures},
		Visibility:   vis,
		Requirements: reqs,
		Groups: []workflow.GroupMapping{
			{
				Key:    "phones",
				TagKey: "phoneType",
				Entries: map[string]string{
					"home":   "phone_home_",
					"mobile": "phone_mobile_",
				},
			},
			{
				Key:    "investmentKnowledge",
				TagKey: "investmentType",
				Entries: map[string]string{
					"stocks":       "investment_knowledge_stocks_",
					"bonds":        "investment_knowledge_bonds_",
					"alternatives": "investment_knowledge_alternatives_",
				},
			},
		},
	}
}
