package disclosures

import (
	"github.com/anish877/Realta-Wealth-sub002/pkg/condition"
	"github.com/anish877/Realta-Wealth-sub002/pkg/schema"
	"github.com/anish877/Realta-Wealth-sub002/pkg/validation"
	"github.com/anish877/Realta-Wealth-sub002/pkg/visibility"
	"github.com/anish877/Realta-Wealth-sub002/pkg/workflow"
)

func holderDefinition(doc *schema.Document) workflow.Definition {
	separateMailing := condition.Condition{Field: "mailing_same_as_legal", Op: condition.OpEquals, Value: false}

	governmentIDSet := []string{
		"government_id_type",
		"government_id_number",
		"government_id_state",
		"government_id_issue_date",
		"government_id_expiration_date",
	}
	secondIDSet := []string{
		"government_id_2_type",
		"government_id_2_number",
		"government_id_2_state",
		"government_id_2_issue_date",
		"government_id_2_expiration_date",
	}

	clientInfo := validation.Set{
		Name: "additional-account-holder/client-info",
		Rules: []validation.Rule{
			{Field: "rr_name", Kind: validation.KindRequired, Message: "Registered representative name is required"},
			{Field: "account_number", Kind: validation.KindRequired, Message: "Account number is required"},
			{Field: "holder_name", Kind: validation.KindRequired, Message: "Full legal name is required"},
			{Field: "relationship_to_primary", Kind: validation.KindRequired, Message: "Relationship to the primary holder is required"},
			{Field: "id_holder_types", Kind: validation.KindRequired, Message: "Indicate whether the holder is a person or entity"},
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
			{Field: "phone_business_number", Kind: validation.KindFormat, Format: validation.FormatPhone},
			{Field: "phone_mobile_number", Kind: validation.KindFormat, Format: validation.FormatPhone},

			{Field: "legal_address_street", Kind: validation.KindRequired, Message: "Legal street address is required"},
			{Field: "legal_address_street", Kind: validation.KindCustom, Message: "Legal address cannot be a P.O. Box",
				Predicate: validation.NoPOBox("legal_address_street")},
			{Field: "legal_address_city", Kind: validation.KindRequired, Message: "City is required"},
			{Field: "legal_address_state", Kind: validation.KindRequired, Message: "State is required"},
			{Field: "legal_address_zip", Kind: validation.KindRequired, Message: "ZIP code is required"},
			{Field: "mailing_address_street", Kind: validation.KindRequiredWhen, Message: "Mailing street address is required", When: separateMailing},
			{Field: "mailing_address_city", Kind: validation.KindRequiredWhen, Message: "Mailing city is required", When: separateMailing},
			{Field: "mailing_address_state", Kind: validation.KindRequiredWhen, Message: "Mailing state is required", When: separateMailing},
			{Field: "mailing_address_zip", Kind: validation.KindRequiredWhen, Message: "Mailing ZIP code is required", When: separateMailing},

			{Field: "government_id_type", Kind: validation.KindRequired, Message: "A government ID is required"},
			{Field: "government_id_type", Kind: validation.KindSingleChoice, Message: "Select only one ID type"},
			{Field: "government_id_type", Kind: validation.KindSetComplete, Message: "Complete every field of the government ID",
				Set: governmentIDSet},
			{Field: "government_id_issue_date", Kind: validation.KindFormat, Format: validation.FormatDate},
			{Field: "government_id_expiration_date", Kind: validation.KindFormat, Format: validation.FormatDate},
			{Field: "government_id_expiration_date", Kind: validation.KindCustom, Message: "Expiration date must be after the issue date",
				Predicate: validation.DateAfter("government_id_expiration_date", "government_id_issue_date")},
			{Field: "government_id_2_type", Kind: validation.KindSingleChoice, Message: "Select only one ID type"},
			{Field: "government_id_2_type", Kind: validation.KindSetComplete, Message: "Complete every field of the second government ID",
				Set: secondIDSet},
			{Field: "government_id_2_issue_date", Kind: validation.KindFormat, Format: validation.FormatDate},
			{Field: "government_id_2_expiration_date", Kind: validation.KindFormat, Format: validation.FormatDate},
			{Field: "government_id_2_expiration_date", Kind: validation.KindCustom, Message: "Expiration date must be after the issue date",
				Predicate: validation.DateAfter("government_id_2_expiration_date", "government_id_2_issue_date")},

			{Field: "employment_status", Kind: validation.KindRequired, Message: "Select an employment status"},
			{Field: "employment_status", Kind: validation.KindSingleChoice, Message: "Select only one employment status"},
			{Field: "occupation", Kind: validation.KindRequiredWhen, Message: "Occupation is required", When: employed()},
			{Field: "employer_name", Kind: validation.KindRequiredWhen, Message: "Employer is required", When: employed()},
		},
	}

	signatures := validation.Set{
		Name: "additional-account-holder/signatures",
		Rules: []validation.Rule{
			{Field: "holder_signature", Kind: validation.KindRequired, Message: "Account holder signature is required"},
			{Field: "holder_signature", Kind: validation.KindSetComplete, Message: "Complete the signature block",
				Set: []string{"holder_signature", "holder_printed_name", "holder_signature_date"}},
			{Field: "holder_signature_date", Kind: validation.KindFormat, Format: validation.FormatDate},
		},
	}

	vis := resolverFor(doc,
		visibility.Rule{Fields: []string{"ssn", "date_of_birth"}, When: []condition.Condition{holderIsPerson()}},
		visibility.Rule{Fields: []string{"ein"}, When: []condition.Condition{holderIsEntity()}},
		visibility.Rule{Prefix: "mailing_address_", When: []condition.Condition{separateMailing}},
		visibility.Rule{Fields: []string{"occupation", "employer_name"}, Prefix: "employer_address_",
			When: []condition.Condition{employed()}},
	)

	reqs := visibility.NewRequirements(
		visibility.RequirementRule{Fields: []string{"ssn", "date_of_birth"}, When: []condition.Condition{holderIsPerson()},
			Message: "Required for individual holders"},
		visibility.RequirementRule{Fields: []string{"ein"}, When: []condition.Condition{holderIsEntity()},
			Message: "Required for entity holders"},
		visibility.RequirementRule{Prefix: "mailing_address_", When: []condition.Condition{separateMailing},
			Message: "Required when the mailing address differs"},
		visibility.RequirementRule{Fields: []string{"occupation", "employer_name"}, When: []condition.Condition{employed()},
			Message: "This field is required while employed"},
	)

	return workflow.Definition{
		Doc:          doc,
		Schemas:      []validation.Set{clientInfo, signatures},
		Visibility:   vis,
		Requirements: reqs,
		Groups: []workflow.GroupMapping{
			{
				Key:    "addresses",
				TagKey: "addressType",
				Entries: map[string]string{
					"legal":    "legal_address_",
					"mailing":  "mailing_address_",
					"employer": "employer_address_",
				},
			},
			{
				Key:    "phones",
				TagKey: "phoneType",
				Entries: map[string]string{
					"home":     "phone_home_",
					"business": "phone_business_",
					"mobile":   "phone_mobile_",
				},
			},
		},
		Lists: []workflow.ListMapping{
			{Key: "governmentIds", Prefixes: []string{"government_id_", "government_id_2_"}},
		},
	}
}
