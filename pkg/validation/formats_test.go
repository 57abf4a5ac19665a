package validation

import "testing"

func TestNormalizeSSN(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"123456789", "123-45-6789", true},
		{"123-45-6789", "123-45-6789", true},
		{" 123 45 6789 ", "123-45-6789", true},
		{"12345678", "", false},
		{"1234567890", "", false},
	}

	for _, tc := range cases {
		got, ok := NormalizeSSN(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("NormalizeSSN(%q) = %q, %v; want %q, %v", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNormalizeEIN(t *testing.T) {
	t.Parallel()

	got, ok := NormalizeEIN("123456789")
	if !ok || got != "12-3456789" {
		t.Fatalf("NormalizeEIN = %q, %v", got, ok)
	}
	if _, ok := NormalizeEIN("12-345678"); ok {
		t.Fatalf("eight digits must not normalize")
	}
}

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"(212) 555-0187", "2125550187", true},
		{"1-212-555-0187", "2125550187", true},
		{"555-0187", "", false},
	}

	for _, tc := range cases {
		got, ok := NormalizePhone(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("NormalizePhone(%q) = %q, %v; want %q, %v", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCheckFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		format Format
		raw    string
		want   bool
	}{
		{"email ok", FormatEmail, "client@example.com", true},
		{"email no domain", FormatEmail, "client@", false},
		{"date iso", FormatDate, "1980-06-15", true},
		{"date us", FormatDate, "06/15/1980", true},
		{"date nonsense", FormatDate, "June-ish", false},
		{"currency formatted", FormatCurrency, "$1,250,000.50", true},
		{"currency negative", FormatCurrency, "-100", false},
		{"currency words", FormatCurrency, "one million", false},
		{"unknown tag passes", Format("zip"), "anything", true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := checkFormat(tc.format, tc.raw); got != tc.want {
				t.Fatalf("checkFormat(%q, %q) = %v, want %v", tc.format, tc.raw, got, tc.want)
			}
		})
	}
}

func TestDatePredicates(t *testing.T) {
	t.Parallel()

	past := DateInPast("date_of_birth")
	if !past(map[string]any{"date_of_birth": "1980-06-15"}) {
		t.Fatalf("1980 must be in the past")
	}
	if past(map[string]any{"date_of_birth": "2999-01-01"}) {
		t.Fatalf("2999 must not be in the past")
	}
	if !past(map[string]any{"date_of_birth": "not a date"}) {
		t.Fatalf("unparseable dates are left to the format rule")
	}
}

func TestNoPOBoxPredicate(t *testing.T) {
	t.Parallel()

	pred := NoPOBox("legal_address_street")

	cases := []struct {
		street string
		ok     bool
	}{
		{"120 Broadway, Suite 300", true},
		{"P.O. Box 1234", false},
		{"po box 99", false},
		{"P.O Box 7", false},
		{"POST OFFICE BOX 42", false},
	}

	for _, tc := range cases {
		snap := map[string]any{"legal_address_street": tc.street}
		if got := pred(snap); got != tc.ok {
			t.Fatalf("NoPOBox(%q) = %v, want %v", tc.street, got, tc.ok)
		}
	}
}
