package validation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/anish877/Realta-Wealth-sub002/pkg/condition"
	"github.com/anish877/Realta-Wealth-sub002/pkg/snapshot"
)

var governmentIDFields = []string{
	"government_id_type",
	"government_id_number",
	"government_id_state",
	"government_id_issue_date",
	"government_id_expiration_date",
}

func governmentIDSet() Set {
	return Set{
		Name: "government-id",
		Rules: []Rule{
			{Field: "government_id_type", Kind: KindSetComplete, Set: governmentIDFields},
			{Field: "government_id_issue_date", Kind: KindFormat, Format: FormatDate},
			{Field: "government_id_expiration_date", Kind: KindFormat, Format: FormatDate},
			{
				Field:     "government_id_expiration_date",
				Kind:      KindCustom,
				Predicate: DateAfter("government_id_expiration_date", "government_id_issue_date"),
				Message:   "Expiration date must be after the issue date",
			},
		},
	}
}

func TestRequiredWhenEmployment(t *testing.T) {
	t.Parallel()

	rules := Set{
		Name: "employment",
		Rules: []Rule{
			{
				Field: "occupation",
				Kind:  KindRequiredWhen,
				When: condition.Condition{
					Field: "employment_status",
					Op:    condition.OpIncludes,
					Value: []string{"Employed", "Self-Employed"},
				},
			},
		},
	}

	employed := snapshot.Snapshot{"employment_status": []string{"Employed"}}
	result := rules.Evaluate(employed, Options{})
	if result.Valid {
		t.Fatalf("expected occupation to be required while employed")
	}
	if _, ok := result.Errors["occupation"]; !ok {
		t.Fatalf("missing occupation error: %v", result.Errors)
	}

	unemployed := snapshot.Snapshot{"employment_status": []string{"Unemployed"}}
	result = rules.Evaluate(unemployed, Options{})
	if !result.Valid {
		t.Fatalf("occupation must not be required while unemployed: %v", result.Errors)
	}
}

func TestSetCompletenessStampsEveryEmptyMember(t *testing.T) {
	t.Parallel()

	rules := governmentIDSet()

	partial := snapshot.Snapshot{"government_id_type": "Passport"}
	result := rules.Evaluate(partial, Options{})
	if result.Valid {
		t.Fatalf("partially filled block must fail")
	}
	want := map[string]string{
		"government_id_number":          "These fields must be completed together",
		"government_id_state":           "These fields must be completed together",
		"government_id_issue_date":      "These fields must be completed together",
		"government_id_expiration_date": "These fields must be completed together",
	}
	if diff := cmp.Diff(want, result.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}

	empty := snapshot.New()
	if got := rules.Evaluate(empty, Options{}); !got.Valid {
		t.Fatalf("entirely empty block must pass: %v", got.Errors)
	}
}

func TestExpirationMustFollowIssue(t *testing.T) {
	t.Parallel()

	rules := governmentIDSet()
	snap := snapshot.Snapshot{
		"government_id_type":            "Passport",
		"government_id_number":          "A1234567",
		"government_id_state":           "NY",
		"government_id_issue_date":      "2024-01-01",
		"government_id_expiration_date": "2023-01-01",
	}

	result := rules.Evaluate(snap, Options{})
	if result.Valid {
		t.Fatalf("expected expiration ordering failure")
	}
	if got := result.Errors["government_id_expiration_date"]; got != "Expiration date must be after the issue date" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestFirstFailingConditionWinsPerField(t *testing.T) {
	t.Parallel()

	rules := Set{
		Rules: []Rule{
			{Field: "ssn", Kind: KindRequired, Message: "SSN is required"},
			{Field: "ssn", Kind: KindFormat, Format: FormatSSN},
		},
	}

	result := rules.Evaluate(snapshot.Snapshot{"ssn": "12345678"}, Options{})
	if got := result.Errors["ssn"]; got != "Enter a valid Social Security Number (XXX-XX-XXXX)" {
		t.Fatalf("unexpected message %q", got)
	}

	result = rules.Evaluate(snapshot.New(), Options{})
	if got := result.Errors["ssn"]; got != "SSN is required" {
		t.Fatalf("required must win on empty input, got %q", got)
	}

	valid := snapshot.Snapshot{"ssn": "123456789"}
	if got := rules.Evaluate(valid, Options{}); !got.Valid {
		t.Fatalf("nine digits must validate: %v", got.Errors)
	}
}

func TestSingleChoiceRejectsMultipleSelections(t *testing.T) {
	t.Parallel()

	rules := Set{Rules: []Rule{{Field: "net_worth_bracket", Kind: KindSingleChoice}}}

	result := rules.Evaluate(snapshot.Snapshot{"net_worth_bracket": []string{"a", "b"}}, Options{})
	if got := result.Errors["net_worth_bracket"]; got != "Select only one option" {
		t.Fatalf("unexpected message %q", got)
	}

	single := snapshot.Snapshot{"net_worth_bracket": []string{"a"}}
	if got := rules.Evaluate(single, Options{}); !got.Valid {
		t.Fatalf("single selection must pass: %v", got.Errors)
	}
}

func TestHiddenFieldsAreExemptFromRequiredValidation(t *testing.T) {
	t.Parallel()

	rules := Set{Rules: []Rule{{Field: "spouse_name", Kind: KindRequired}}}
	opts := Options{Visible: func(fieldID string) bool { return fieldID != "spouse_name" }}

	if got := rules.Evaluate(snapshot.New(), opts); !got.Valid {
		t.Fatalf("hidden field must not be required: %v", got.Errors)
	}
}

func TestMalformedValuesFailWithoutPanicking(t *testing.T) {
	t.Parallel()

	rules := Set{Rules: []Rule{{Field: "date_of_birth", Kind: KindFormat, Format: FormatDate}}}
	snap := snapshot.Snapshot{"date_of_birth": map[string]any{"unexpected": "shape"}}

	result := rules.Evaluate(snap, Options{})
	if result.Valid {
		t.Fatalf("wrong-shaped value must fail validation")
	}
}

func TestPageScopeSkipsOutOfScopeRules(t *testing.T) {
	t.Parallel()

	rules := Set{
		Rules: []Rule{
			{Field: "rr_name", Kind: KindRequired},
			{Field: "account_owner_signature", Kind: KindRequired},
		},
	}

	opts := Options{Fields: FieldScope([]string{"rr_name"})}
	result := rules.Evaluate(snapshot.New(), opts)
	if _, ok := result.Errors["account_owner_signature"]; ok {
		t.Fatalf("out-of-scope rule evaluated")
	}
	if _, ok := result.Errors["rr_name"]; !ok {
		t.Fatalf("in-scope rule skipped")
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	t.Parallel()

	rules := governmentIDSet()
	snap := snapshot.Snapshot{"government_id_type": "Passport"}

	first := rules.Evaluate(snap, Options{})
	second := rules.Evaluate(snap, Options{})
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated validation diverged (-first +second):\n%s", diff)
	}
}

func TestMergeIsLastWriteWinsPerField(t *testing.T) {
	t.Parallel()

	clientInfo := Result{Valid: false, Errors: map[string]string{
		"ssn":     "from client info",
		"rr_name": "missing",
	}}
	signatures := Result{Valid: false, Errors: map[string]string{
		"ssn": "from signatures",
	}}

	merged := Merge(clientInfo, signatures)
	if merged.Valid {
		t.Fatalf("merge of failing results must fail")
	}
	if got := merged.Errors["ssn"]; got != "from signatures" {
		t.Fatalf("later schema must win, got %q", got)
	}
	if got := merged.Errors["rr_name"]; got != "missing" {
		t.Fatalf("unrelated errors must survive, got %q", got)
	}

	if got := Merge(Result{Valid: true, Errors: map[string]string{}}); !got.Valid {
		t.Fatalf("merge of clean results must be valid")
	}
}
