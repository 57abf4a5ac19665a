package workflow

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/anish877/Realta-Wealth-sub002/pkg/backend"
	"github.com/anish877/Realta-Wealth-sub002/pkg/snapshot"
	"github.com/anish877/Realta-Wealth-sub002/pkg/testsupport"
)

const transformDoc = `
form: additional-account-holder
pages:
  - number: 1
    sections:
      - id: identity
        fields:
          - {id: rr_name, type: text}
          - {id: date_of_birth, type: date}
          - {id: employment_status, type: multicheck, options: [Employed, Self-Employed, Retired, Unemployed]}
          - {id: net_worth_range, type: range-currency}
          - {id: legal_address_street, type: text}
          - {id: legal_address_city, type: text}
          - {id: mailing_address_street, type: text}
          - {id: government_id_type, type: text}
          - {id: government_id_number, type: text}
          - {id: government_id_2_type, type: text}
          - {id: government_id_2_number, type: text}
`

func testTransform(t *testing.T) Transform {
	t.Helper()
	doc := testsupport.MustDocument(t, "additional-account-holder.yaml", transformDoc)
	return Transform{
		Doc: doc,
		Groups: []GroupMapping{
			{
				Key:    "addresses",
				TagKey: "addressType",
				Entries: map[string]string{
					"legal":   "legal_address_",
					"mailing": "mailing_address_",
				},
			},
		},
		Lists: []ListMapping{
			{Key: "governmentIds", Prefixes: []string{"government_id_", "government_id_2_"}},
		},
	}
}

func TestToBackendShapesPayload(t *testing.T) {
	t.Parallel()

	transform := testTransform(t)
	snap := snapshot.Snapshot{
		"rr_name":                "Jordan Mills",
		"date_of_birth":          "1980-06-15",
		"employment_status":      []string{"Employed"},
		"net_worth_range":        snapshot.Range{From: "500000", To: "1000000"},
		"legal_address_street":   "120 Broadway",
		"legal_address_city":     "New York",
		"government_id_type":     "Passport",
		"government_id_number":   "A1234567",
		"government_id_2_type":   "Driver License",
		"government_id_2_number": "D765",
		"mailing_address_street": "", // empty values are omitted
	}

	record := transform.ToBackend(snap)

	if got := record["rrName"]; got != "Jordan Mills" {
		t.Fatalf("camelCase key missing: %v", record)
	}
	if got := record["dateOfBirth"]; got != "1980-06-15T00:00:00Z" {
		t.Fatalf("date must widen to a timestamp, got %v", got)
	}
	if _, present := record["mailingAddressStreet"]; present {
		t.Fatalf("empty fields must be omitted")
	}
	if _, present := record["mailing_address_street"]; present {
		t.Fatalf("snake_case keys must not leak into the payload")
	}

	addresses, _ := record["addresses"].([]map[string]any)
	if len(addresses) != 1 {
		t.Fatalf("expected one address entry, got %v", record["addresses"])
	}
	if addresses[0]["addressType"] != "legal" || addresses[0]["street"] != "120 Broadway" || addresses[0]["city"] != "New York" {
		t.Fatalf("legal address entry malformed: %v", addresses[0])
	}

	ids, _ := record["governmentIds"].([]map[string]any)
	if len(ids) != 2 {
		t.Fatalf("expected two government id entries, got %v", record["governmentIds"])
	}
	if ids[0]["type"] != "Passport" || ids[1]["type"] != "Driver License" {
		t.Fatalf("government ids out of order: %v", ids)
	}
}

func TestFromBackendNarrowsDatesAndUnfoldsGroups(t *testing.T) {
	t.Parallel()

	transform := testTransform(t)
	record := backend.Record{
		"rrName":      "Jordan Mills",
		"dateOfBirth": "1980-06-15T00:00:00Z",
		"addresses": []any{
			map[string]any{"addressType": "legal", "street": "120 Broadway", "city": "New York"},
		},
		"governmentIds": []any{
			map[string]any{"type": "Passport", "number": "A1234567"},
		},
	}

	snap := transform.FromBackend(record)

	if got := snap.String("date_of_birth"); got != "1980-06-15" {
		t.Fatalf("date must narrow for display, got %q", got)
	}
	if got := snap.String("legal_address_street"); got != "120 Broadway" {
		t.Fatalf("address unfold failed: %q", got)
	}
	if got := snap.String("government_id_number"); got != "A1234567" {
		t.Fatalf("government id unfold failed: %q", got)
	}
	if !snap.Empty("mailing_address_street") {
		t.Fatalf("absent backend entries must stay empty")
	}
}

func TestBackendShapeRoundTripIsStable(t *testing.T) {
	t.Parallel()

	transform := testTransform(t)
	original := backend.Record{
		"rrName":           "Jordan Mills",
		"dateOfBirth":      "1980-06-15T00:00:00Z",
		"employmentStatus": []any{"Employed"},
		"netWorthRange":    map[string]any{"from": "500000", "to": "1000000"},
		"addresses":        []any{map[string]any{"addressType": "legal", "street": "120 Broadway", "city": "New York"}},
		"governmentIds":    []any{map[string]any{"type": "Passport", "number": "A1234567"}},
	}

	once := transform.ToBackend(transform.FromBackend(original))
	twice := transform.ToBackend(transform.FromBackend(once))

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("repeated transformation unstable (-once +twice):\n%s", diff)
	}
}

func TestToCamel(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want string }{
		{"rr_name", "rrName"},
		{"account_owner_signature", "accountOwnerSignature"},
		{"ssn", "ssn"},
		{"date_of_birth", "dateOfBirth"},
	}
	for _, tc := range cases {
		if got := toCamel(tc.in); got != tc.want {
			t.Fatalf("toCamel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
