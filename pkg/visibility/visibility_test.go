package visibility

import (
	"testing"

	"github.com/anish877/Realta-Wealth-sub002/pkg/condition"
	"github.com/anish877/Realta-Wealth-sub002/pkg/snapshot"
)

func testResolver() *Resolver {
	return New(WithRules(
		Rule{
			Fields: []string{"ssn"},
			When: []condition.Condition{
				{Field: "id_holder_types", Op: condition.OpIncludes, Value: "person"},
			},
		},
		Rule{
			Prefix: "mailing_address_",
			When: []condition.Condition{
				{Field: "mailing_same_as_legal", Op: condition.OpEquals, Value: false},
			},
		},
		Rule{
			Fields: []string{"occupation", "employer_name"},
			When: []condition.Condition{
				{Field: "employment_status", Op: condition.OpIncludes, Value: []string{"Employed", "Self-Employed"}},
			},
		},
		Rule{
			Fields: []string{"joint_owner_signature", "joint_owner_signature_date"},
			When: []condition.Condition{
				{Field: "has_joint_owner", Op: condition.OpChecked},
			},
		},
	))
}

func TestIdentityDocumentVisibility(t *testing.T) {
	t.Parallel()

	resolver := testResolver()

	person := snapshot.Snapshot{"id_holder_types": []string{"person"}}
	if !resolver.Visible("ssn", person) {
		t.Fatalf("ssn must show for person holders")
	}

	entity := snapshot.Snapshot{"id_holder_types": []string{"entity"}}
	if resolver.Visible("ssn", entity) {
		t.Fatalf("ssn must hide for entity-only holders")
	}
}

func TestMailingAddressHiddenUnlessExplicitlyDifferent(t *testing.T) {
	t.Parallel()

	resolver := testResolver()

	cases := []struct {
		name string
		snap snapshot.Snapshot
		want bool
	}{
		{"flag absent", snapshot.New(), false},
		{"flag true", snapshot.Snapshot{"mailing_same_as_legal": true}, false},
		{"flag false", snapshot.Snapshot{"mailing_same_as_legal": false}, true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := resolver.Visible("mailing_address_street", tc.snap); got != tc.want {
				t.Fatalf("Visible = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEmploymentDetailVisibility(t *testing.T) {
	t.Parallel()

	resolver := testResolver()

	employed := snapshot.Snapshot{"employment_status": []string{"Self-Employed"}}
	if !resolver.Visible("occupation", employed) {
		t.Fatalf("occupation must show while self-employed")
	}

	retired := snapshot.Snapshot{"employment_status": []string{"Retired"}}
	if resolver.Visible("employer_name", retired) {
		t.Fatalf("employer must hide while retired")
	}
}

func TestJointOwnerSignatureVisibility(t *testing.T) {
	t.Parallel()

	resolver := testResolver()

	joint := snapshot.Snapshot{"has_joint_owner": true}
	if !resolver.Visible("joint_owner_signature", joint) {
		t.Fatalf("joint signature must show with a joint owner")
	}
	if resolver.Visible("joint_owner_signature", snapshot.New()) {
		t.Fatalf("joint signature must hide without a joint owner")
	}
}

func TestUnknownFieldDefaultsToVisible(t *testing.T) {
	t.Parallel()

	if !testResolver().Visible("unheard_of_field", snapshot.New()) {
		t.Fatalf("unknown fields default to visible")
	}
}

func TestExpressionRules(t *testing.T) {
	t.Parallel()

	resolver := New(
		WithExpression("trust_name", `account_type == "trust"`),
		WithExpression("broken", `account_type ==`),
	)

	trust := snapshot.Snapshot{"account_type": "trust"}
	if !resolver.Visible("trust_name", trust) {
		t.Fatalf("expression rule must show trust_name")
	}
	individual := snapshot.Snapshot{"account_type": "individual"}
	if resolver.Visible("trust_name", individual) {
		t.Fatalf("expression rule must hide trust_name")
	}
	if !resolver.Visible("broken", trust) {
		t.Fatalf("broken expressions fall back to visible")
	}
}

func TestVisibilityIsPure(t *testing.T) {
	t.Parallel()

	resolver := testResolver()
	snap := snapshot.Snapshot{"employment_status": []string{"Employed"}}

	first := resolver.Visible("occupation", snap)
	second := resolver.Visible("occupation", snap)
	if first != second {
		t.Fatalf("repeated resolution diverged: %v then %v", first, second)
	}
}

func TestRequirementResolverIsIndependent(t *testing.T) {
	t.Parallel()

	requirements := NewRequirements(RequirementRule{
		Fields:  []string{"occupation"},
		When:    []condition.Condition{{Field: "employment_status", Op: condition.OpIncludes, Value: []string{"Employed", "Self-Employed"}}},
		Message: "Occupation is required while employed",
	})

	employed := snapshot.Snapshot{"employment_status": []string{"Employed"}}
	req := requirements.Requirement("occupation", employed)
	if !req.Required || req.Message != "Occupation is required while employed" {
		t.Fatalf("unexpected requirement: %+v", req)
	}

	retired := snapshot.Snapshot{"employment_status": []string{"Retired"}}
	if requirements.Requirement("occupation", retired).Required {
		t.Fatalf("occupation must not be required while retired")
	}
	if requirements.Requirement("ssn", employed).Required {
		t.Fatalf("ungoverned fields are not conditionally required")
	}
}
