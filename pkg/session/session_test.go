package session

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/anish877/Realta-Wealth-sub002/pkg/snapshot"
	"github.com/anish877/Realta-Wealth-sub002/pkg/validation"
)

func requiredValidator(fields ...string) ValidateFunc {
	return func(snap snapshot.Snapshot, scope map[string]struct{}) validation.Result {
		result := validation.Result{Valid: true, Errors: map[string]string{}}
		for _, field := range fields {
			if scope != nil {
				if _, ok := scope[field]; !ok {
					continue
				}
			}
			if snap.Empty(field) {
				result.Errors[field] = "This field is required"
				result.Valid = false
			}
		}
		return result
	}
}

func TestValidateFieldCommitsOnlyThatField(t *testing.T) {
	t.Parallel()

	sess := New(requiredValidator("rr_name", "occupation"))

	sess.ValidateAll(snapshot.New())
	if sess.IsValid() {
		t.Fatalf("expected both fields to fail")
	}

	sess.ValidateField("rr_name", "Jordan Mills", snapshot.New())

	if got := sess.FieldError("rr_name"); got != "" {
		t.Fatalf("rr_name error should clear, got %q", got)
	}
	if got := sess.FieldError("occupation"); got == "" {
		t.Fatalf("occupation error must survive a single-field pass")
	}
}

func TestValidateAllReplacesErrorsWholesale(t *testing.T) {
	t.Parallel()

	sess := New(requiredValidator("rr_name"))

	sess.ValidateAll(snapshot.New())
	if sess.IsValid() {
		t.Fatalf("expected rr_name failure")
	}

	sess.ValidateAll(snapshot.Snapshot{"rr_name": "Jordan Mills"})
	if !sess.IsValid() {
		t.Fatalf("stale errors survived a full pass: %v", sess.Errors())
	}
	if sess.Status() != StatusSettled {
		t.Fatalf("status = %q, want settled", sess.Status())
	}
}

func TestValidateFieldsScopesToPage(t *testing.T) {
	t.Parallel()

	sess := New(requiredValidator("rr_name", "account_owner_signature"))

	scope := validation.FieldScope([]string{"rr_name"})
	result := sess.ValidateFields(snapshot.New(), scope)

	want := map[string]string{"rr_name": "This field is required"}
	if diff := cmp.Diff(want, result.Errors); diff != "" {
		t.Fatalf("scoped result mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, sess.Errors()); diff != "" {
		t.Fatalf("stored errors mismatch (-want +got):\n%s", diff)
	}
}

func TestTouchedAndClearAreIndependentOfStatus(t *testing.T) {
	t.Parallel()

	sess := New(requiredValidator("rr_name"))

	sess.SetTouched("rr_name", true)
	if !sess.Touched("rr_name") {
		t.Fatalf("touched mark lost")
	}
	if sess.Status() != StatusIdle {
		t.Fatalf("touching a field must not move the state machine")
	}

	sess.ValidateAll(snapshot.New())
	sess.ClearErrors()
	if !sess.IsValid() || sess.Status() != StatusIdle {
		t.Fatalf("clear must reset errors and status")
	}
	if !sess.Touched("rr_name") {
		t.Fatalf("clearing errors must not clear touched marks")
	}

	sess.SetTouched("rr_name", false)
	if sess.Touched("rr_name") {
		t.Fatalf("untouch failed")
	}
}

func TestErrorsReturnsACopy(t *testing.T) {
	t.Parallel()

	sess := New(requiredValidator("rr_name"))
	sess.ValidateAll(snapshot.New())

	leaked := sess.Errors()
	leaked["rr_name"] = "tampered"

	if got := sess.FieldError("rr_name"); got != "This field is required" {
		t.Fatalf("session state mutated through accessor copy: %q", got)
	}
}
