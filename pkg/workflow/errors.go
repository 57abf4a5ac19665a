package workflow

import "errors"

// ErrSaveInFlight reports a save triggered while another save for the same
// form instance is still pending. The trigger is dropped, never queued.
var ErrSaveInFlight = errors.New("workflow: a save is already in flight")

// ErrFormSubmitted reports an edit or save attempted after the record
// reached its terminal submitted state.
var ErrFormSubmitted = errors.New("workflow: form already submitted")

// PreconditionReason distinguishes why a submit was refused locally.
type PreconditionReason string

const (
	// ReasonMustSaveFirst means no record identifier has been assigned yet.
	ReasonMustSaveFirst PreconditionReason = "must-save-first"
	// ReasonValidationErrors means whole-form validation failed.
	ReasonValidationErrors PreconditionReason = "validation-errors"
)

// PreconditionError is a submit refusal decided locally, before any network
// call is made.
type PreconditionError struct {
	Reason PreconditionReason
}

func (e *PreconditionError) Error() string {
	switch e.Reason {
	case ReasonMustSaveFirst:
		return "workflow: save the form before submitting"
	case ReasonValidationErrors:
		return "workflow: fix validation errors before submitting"
	default:
		return "workflow: submit precondition failed"
	}
}

// SaveFailure reports a save whose transient-failure retries were
// exhausted. The user may retry manually.
type SaveFailure struct {
	Err error
}

func (e *SaveFailure) Error() string {
	return "workflow: save failed after retries: " + e.Err.Error()
}

func (e *SaveFailure) Unwrap() error {
	return e.Err
}
