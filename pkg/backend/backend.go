// Package backend defines the record persistence contract the workflow
// controller collaborates with, an in-memory implementation used by tests
// and tooling, and an HTTP JSON client. Transport mechanics live entirely
// inside this package; the core only consumes the four-operation API.
package backend

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// Record is the flat backend shape: business fields in the backend's own
// camelCase naming convention, with nested addresses/phones/governmentIds
// arrays and ISO-8601 timestamp strings for dates.
type Record map[string]any

// PageStatus is the server's acknowledgement for one page.
type PageStatus struct {
	Completed bool `json:"completed"`
}

// PageCompletion maps page number to its server-tracked status. The server
// owns this map; clients mirror it wholesale after each successful save.
type PageCompletion map[int]PageStatus

// Completed reports whether a page is acknowledged complete.
func (pc PageCompletion) Completed(page int) bool {
	return pc[page].Completed
}

// Clone copies the completion map.
func (pc PageCompletion) Clone() PageCompletion {
	out := make(PageCompletion, len(pc))
	for page, status := range pc {
		out[page] = status
	}
	return out
}

// PageCompletionFrom extracts the completion map when a fetched record
// embeds it under pageCompletionStatus. Records without one yield nil.
func PageCompletionFrom(record Record) PageCompletion {
	raw, ok := record["pageCompletionStatus"]
	if !ok {
		return nil
	}
	entries, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	out := make(PageCompletion, len(entries))
	for key, value := range entries {
		page, err := strconv.Atoi(key)
		if err != nil || page < 1 {
			continue
		}
		status, ok := value.(map[string]any)
		if !ok {
			continue
		}
		completed, _ := status["completed"].(bool)
		out[page] = PageStatus{Completed: completed}
	}
	return out
}

// CreateResult echoes the server-assigned identifier and initial completion
// tracking for a newly created record.
type CreateResult struct {
	ID    string         `json:"id"`
	Pages PageCompletion `json:"pageCompletionStatus"`
}

// UpdateResult echoes the authoritative completion tracking after a save.
type UpdateResult struct {
	Pages PageCompletion `json:"pageCompletionStatus"`
}

// API is the per-form-type record contract. Implementations are bound to
// one form type at construction. Page 0 on Update means the save is not
// scoped to a single page.
type API interface {
	Create(ctx context.Context, payload Record) (CreateResult, error)
	Get(ctx context.Context, id string) (Record, error)
	Update(ctx context.Context, id string, page int, payload Record) (UpdateResult, error)
	Submit(ctx context.Context, id string) error
}

// ErrNotFound reports a lookup for an unknown record id.
var ErrNotFound = errors.New("backend: record not found")

// ErrSubmitted reports a write against an already-submitted record.
var ErrSubmitted = errors.New("backend: record already submitted")

// TransientError wraps a failure worth retrying: network trouble or a
// server-side fault. Permanent failures (bad request, not found, already
// submitted) are returned bare.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("backend: transient %s failure: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// Transient wraps err as retryable.
func Transient(op string, err error) error {
	if err == nil {
		return nil
	}
	return &TransientError{Op: op, Err: err}
}

// IsTransient reports whether the failure is worth an automatic retry.
func IsTransient(err error) bool {
	var transient *TransientError
	return errors.As(err, &transient)
}
