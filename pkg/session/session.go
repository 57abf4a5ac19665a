// Package session holds the per-form-instance validation state: the error
// map, the touched set, and the validating/settled status flag. One Session
// is created per open form; nothing here is process-global.
package session

import (
	"github.com/anish877/Realta-Wealth-sub002/pkg/snapshot"
	"github.com/anish877/Realta-Wealth-sub002/pkg/validation"
)

// Status tracks where the session's validation state machine sits.
type Status string

const (
	// StatusIdle means no validation has run yet, or errors were cleared.
	StatusIdle Status = "idle"
	// StatusValidating means a validation pass is in flight.
	StatusValidating Status = "validating"
	// StatusSettled means the error map reflects the last completed pass.
	StatusSettled Status = "settled"
)

// ValidateFunc runs the form's full rule set against a snapshot, optionally
// scoped to a field subset. The session stays agnostic of which schemas and
// resolvers back it.
type ValidateFunc func(snap snapshot.Snapshot, fields map[string]struct{}) validation.Result

// Session is the validation state controller for one form instance.
// Validation itself is synchronous and pure; the session only stores its
// outcome.
type Session struct {
	validate ValidateFunc
	status   Status
	errors   map[string]string
	touched  map[string]struct{}
}

// New builds an idle session around a validator.
func New(validate ValidateFunc) *Session {
	return &Session{
		validate: validate,
		status:   StatusIdle,
		errors:   make(map[string]string),
		touched:  make(map[string]struct{}),
	}
}

// ValidateField re-runs the full rule set against the snapshot with one
// field overridden, but commits only that field's resulting error. Errors
// previously stored for other fields are untouched.
func (s *Session) ValidateField(fieldID string, value any, snap snapshot.Snapshot) validation.Result {
	s.status = StatusValidating
	result := s.run(snap.With(fieldID, value), nil)

	if message, failed := result.Errors[fieldID]; failed {
		s.errors[fieldID] = message
	} else {
		delete(s.errors, fieldID)
	}
	s.status = StatusSettled
	return result
}

// ValidateFields replaces the stored error map with a fresh result scoped to
// the given fields (one page's worth, typically).
func (s *Session) ValidateFields(snap snapshot.Snapshot, fields map[string]struct{}) validation.Result {
	s.status = StatusValidating
	result := s.run(snap, fields)
	s.errors = copyErrors(result.Errors)
	s.status = StatusSettled
	return result
}

// ValidateAll replaces the stored error map with a fresh whole-form result.
func (s *Session) ValidateAll(snap snapshot.Snapshot) validation.Result {
	return s.ValidateFields(snap, nil)
}

func (s *Session) run(snap snapshot.Snapshot, fields map[string]struct{}) validation.Result {
	if s.validate == nil {
		return validation.Result{Valid: true, Errors: map[string]string{}}
	}
	return s.validate(snap, fields)
}

// SetTouched marks or unmarks a field as touched. Touched bookkeeping is
// independent of the validation status flag.
func (s *Session) SetTouched(fieldID string, touched bool) {
	if touched {
		s.touched[fieldID] = struct{}{}
		return
	}
	delete(s.touched, fieldID)
}

// Touched reports whether the field was touched.
func (s *Session) Touched(fieldID string) bool {
	_, ok := s.touched[fieldID]
	return ok
}

// ClearErrors drops every stored error and returns the session to idle.
func (s *Session) ClearErrors() {
	s.errors = make(map[string]string)
	s.status = StatusIdle
}

// FieldError returns the stored message for a field, empty when clean.
func (s *Session) FieldError(fieldID string) string {
	return s.errors[fieldID]
}

// Errors returns a copy of the stored error map.
func (s *Session) Errors() map[string]string {
	return copyErrors(s.errors)
}

// IsValid reports whether the session currently stores no errors.
func (s *Session) IsValid() bool {
	return len(s.errors) == 0
}

// Status returns the state machine's current position.
func (s *Session) Status() Status {
	return s.status
}

func copyErrors(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for fieldID, message := range src {
		out[fieldID] = message
	}
	return out
}
