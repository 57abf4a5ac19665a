// Package workflow orchestrates the incremental save/submit lifecycle of a
// form instance: transforming snapshots to the backend shape, retrying
// transient persistence failures, mirroring server-acknowledged page
// completion, and gating navigation and submission on validation.
package workflow

import (
	"context"
	"time"

	"github.com/anish877/Realta-Wealth-sub002/pkg/backend"
	"github.com/anish877/Realta-Wealth-sub002/pkg/schema"
	"github.com/anish877/Realta-Wealth-sub002/pkg/session"
	"github.com/anish877/Realta-Wealth-sub002/pkg/snapshot"
	"github.com/anish877/Realta-Wealth-sub002/pkg/validation"
	"github.com/anish877/Realta-Wealth-sub002/pkg/visibility"
)

// Definition bundles everything static about one form type: its schema
// document, its validation schemas in declared order, its visibility and
// requirement tables, and the payload mappings.
type Definition struct {
	Doc          *schema.Document
	Schemas      []validation.Set
	Visibility   *visibility.Resolver
	Requirements *visibility.RequirementResolver
	Groups       []GroupMapping
	Lists        []ListMapping
}

// Transform builds the payload transform for this definition.
func (d Definition) Transform() Transform {
	return Transform{Doc: d.Doc, Groups: d.Groups, Lists: d.Lists}
}

// Visible resolves field visibility against a snapshot.
func (d Definition) Visible(fieldID string, snap snapshot.Snapshot) bool {
	return d.Visibility.Visible(fieldID, snap)
}

// Requirement resolves conditional requiredness against a snapshot.
func (d Definition) Requirement(fieldID string, snap snapshot.Snapshot) visibility.Requirement {
	return d.Requirements.Requirement(fieldID, snap)
}

// Validate evaluates every schema against the snapshot and merges the
// results in declared order, later schemas winning per field. Hidden fields
// are exempt from presence requirements.
func (d Definition) Validate(snap snapshot.Snapshot, fields map[string]struct{}) validation.Result {
	opts := validation.Options{
		Fields: fields,
		Visible: func(fieldID string) bool {
			return d.Visible(fieldID, snap)
		},
	}
	results := make([]validation.Result, 0, len(d.Schemas))
	for _, set := range d.Schemas {
		results = append(results, set.Evaluate(snap, opts))
	}
	return validation.Merge(results...)
}

// SaveState is the user-visible persistence indicator.
type SaveState string

const (
	SaveIdle   SaveState = "idle"
	SaveSaving SaveState = "saving"
	SaveSaved  SaveState = "saved"
	SaveError  SaveState = "error"
)

// SaveStatus pairs the indicator with the failure message, if any.
type SaveStatus struct {
	State SaveState
	Error string
}

// Controller drives one form instance. It is single-writer by design: all
// operations run on the caller's event loop, and the only suspension points
// are the backend calls. A save in flight causes further save triggers to
// be dropped, never queued.
type Controller struct {
	def       Definition
	api       backend.API
	transform Transform
	sess      *session.Session

	snap       snapshot.Snapshot
	id         string
	page       int
	completion backend.PageCompletion
	status     SaveStatus
	saving     bool
	submitted  bool

	attempts int
	backoff  time.Duration
	sleep    Sleeper
}

// Option configures a Controller.
type Option func(*Controller)

// WithSleeper replaces the backoff sleeper, used by tests to observe the
// retry schedule without waiting it out.
func WithSleeper(sleep Sleeper) Option {
	return func(c *Controller) {
		if sleep != nil {
			c.sleep = sleep
		}
	}
}

// WithRetryPolicy overrides the attempt budget and initial backoff.
func WithRetryPolicy(attempts int, initial time.Duration) Option {
	return func(c *Controller) {
		if attempts > 0 {
			c.attempts = attempts
		}
		if initial > 0 {
			c.backoff = initial
		}
	}
}

// New builds a controller for a fresh, empty form instance.
func New(api backend.API, def Definition, opts ...Option) *Controller {
	c := &Controller{
		def:        def,
		api:        api,
		transform:  def.Transform(),
		snap:       snapshot.New(),
		page:       1,
		completion: make(backend.PageCompletion),
		status:     SaveStatus{State: SaveIdle},
		attempts:   defaultAttempts,
		backoff:    defaultInitialBackoff,
		sleep:      time.Sleep,
	}
	c.sess = session.New(func(snap snapshot.Snapshot, fields map[string]struct{}) validation.Result {
		return def.Validate(snap, fields)
	})
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Load replaces the controller's state from an existing backend record. On
// failure the previous snapshot and identifier are preserved.
func (c *Controller) Load(ctx context.Context, id string) error {
	record, err := c.api.Get(ctx, id)
	if err != nil {
		return err
	}
	c.snap = c.transform.FromBackend(record)
	c.id = id
	if pages := backend.PageCompletionFrom(record); pages != nil {
		c.completion = pages
	}
	c.sess.ClearErrors()
	return nil
}

// UpdateField stores one edit. Fields the user already touched are
// re-validated immediately; untouched fields wait for their blur.
func (c *Controller) UpdateField(fieldID string, value any) error {
	if c.submitted {
		return ErrFormSubmitted
	}
	c.snap = c.snap.With(fieldID, value)
	if c.sess.Touched(fieldID) {
		c.sess.ValidateField(fieldID, value, c.snap)
	}
	return nil
}

// HandleBlur marks the field touched and validates it in isolation.
func (c *Controller) HandleBlur(fieldID string) {
	c.sess.SetTouched(fieldID, true)
	value, _ := c.snap.Get(fieldID)
	c.sess.ValidateField(fieldID, value, c.snap)
}

// HandleManualSave persists the current snapshot with a visible saving
// indicator. A save already in flight drops the trigger.
func (c *Controller) HandleManualSave(ctx context.Context) error {
	return c.save(ctx, c.page, false)
}

// HandleNext validates the current page, silently saves it, marks it
// completed locally once the server acknowledges, and advances. Validation
// or save failure blocks the advance with a single consolidated error.
func (c *Controller) HandleNext(ctx context.Context) error {
	if c.submitted {
		return ErrFormSubmitted
	}

	scope := validation.FieldScope(c.def.Doc.PageFieldIDs(c.page))
	if result := c.sess.ValidateFields(c.snap, scope); !result.Valid {
		return &PreconditionError{Reason: ReasonValidationErrors}
	}

	if err := c.save(ctx, c.page, true); err != nil {
		return err
	}

	c.completion[c.page] = backend.PageStatus{Completed: true}
	if c.page < c.def.Doc.PageCount() {
		c.page++
	}
	return nil
}

// HandlePrevious steps back one page. No validation or save is required to
// go backwards.
func (c *Controller) HandlePrevious() {
	if c.page > 1 {
		c.page--
	}
}

// HandleSubmit runs the terminal submission: preconditions first (a record
// must exist and the whole form must validate — both checked locally,
// before any network call), then one silent save so the server holds the
// latest snapshot, then the submit operation itself.
func (c *Controller) HandleSubmit(ctx context.Context) error {
	if c.submitted {
		return ErrFormSubmitted
	}
	if c.saving {
		return ErrSaveInFlight
	}
	if c.id == "" {
		return &PreconditionError{Reason: ReasonMustSaveFirst}
	}
	if result := c.sess.ValidateAll(c.snap); !result.Valid {
		return &PreconditionError{Reason: ReasonValidationErrors}
	}

	if err := c.save(ctx, 0, true); err != nil {
		return err
	}

	if err := c.api.Submit(ctx, c.id); err != nil {
		c.status = SaveStatus{State: SaveError, Error: err.Error()}
		return err
	}
	c.submitted = true
	c.status = SaveStatus{State: SaveSaved}
	return nil
}

// save persists the snapshot, creating the record on first save and
// updating it afterwards. The server's completion map replaces the local
// mirror wholesale on success. Silent saves never touch the user-visible
// status indicator.
func (c *Controller) save(ctx context.Context, page int, silent bool) error {
	if c.saving {
		return ErrSaveInFlight
	}
	if c.submitted {
		return ErrFormSubmitted
	}
	c.saving = true
	defer func() { c.saving = false }()

	if !silent {
		c.status = SaveStatus{State: SaveSaving}
	}

	payload := c.transform.ToBackend(c.snap)
	var pages backend.PageCompletion

	err := withRetry(ctx, c.attempts, c.backoff, c.sleep, func() error {
		if c.id == "" {
			created, err := c.api.Create(ctx, payload)
			if err != nil {
				return err
			}
			c.id = created.ID
			pages = created.Pages
			return nil
		}
		updated, err := c.api.Update(ctx, c.id, page, payload)
		if err != nil {
			return err
		}
		pages = updated.Pages
		return nil
	})
	if err != nil {
		if backend.IsTransient(err) {
			err = &SaveFailure{Err: err}
		}
		if !silent {
			c.status = SaveStatus{State: SaveError, Error: err.Error()}
		}
		return err
	}

	if pages != nil {
		c.completion = pages.Clone()
	}
	if !silent {
		c.status = SaveStatus{State: SaveSaved}
	}
	return nil
}

// Snapshot returns a copy of the current field values.
func (c *Controller) Snapshot() snapshot.Snapshot {
	return c.snap.Clone()
}

// ID returns the backend-assigned record identifier, empty before the
// first successful save.
func (c *Controller) ID() string {
	return c.id
}

// Page returns the current 1-based page number.
func (c *Controller) Page() int {
	return c.page
}

// Completion returns a copy of the mirrored per-page completion map.
func (c *Controller) Completion() backend.PageCompletion {
	return c.completion.Clone()
}

// Errors returns the stored validation errors.
func (c *Controller) Errors() map[string]string {
	return c.sess.Errors()
}

// FieldError returns the stored message for one field.
func (c *Controller) FieldError(fieldID string) string {
	return c.sess.FieldError(fieldID)
}

// IsValid reports whether no validation errors are stored.
func (c *Controller) IsValid() bool {
	return c.sess.IsValid()
}

// Status returns the user-visible save indicator.
func (c *Controller) Status() SaveStatus {
	return c.status
}

// Submitted reports whether the record reached its terminal state; the
// controller treats the form as read-only afterwards.
func (c *Controller) Submitted() bool {
	return c.submitted
}

// Visible resolves current visibility for a field.
func (c *Controller) Visible(fieldID string) bool {
	return c.def.Visible(fieldID, c.snap)
}

// Requirement resolves current conditional requiredness for a field.
func (c *Controller) Requirement(fieldID string) visibility.Requirement {
	return c.def.Requirement(fieldID, c.snap)
}
