// Package disclosure is the top-level entry point for the disclosure forms
// toolkit: schema-driven validation, conditional visibility, and the
// incremental save/submit workflow for regulated account paperwork.
//
// The root package re-exports the types callers wire together and offers
// constructors for the built-in form definitions. The heavy lifting lives in
// the pkg/ packages; advanced callers can assemble custom definitions from
// those directly.
package disclosure

import (
	"context"

	"github.com/anish877/Realta-Wealth-sub002/pkg/backend"
	"github.com/anish877/Realta-Wealth-sub002/pkg/disclosures"
	"github.com/anish877/Realta-Wealth-sub002/pkg/workflow"
)

// Definition bundles everything static about one form type.
type Definition = workflow.Definition

// Controller drives one form instance through editing, saving, and submission.
type Controller = workflow.Controller

// Option configures a Controller.
type Option = workflow.Option

// SaveStatus is the user-visible persistence indicator.
type SaveStatus = workflow.SaveStatus

// PreconditionError reports why a submission was refused before any network
// call was made.
type PreconditionError = workflow.PreconditionError

// Save state indicator values.
const (
	SaveIdle   = workflow.SaveIdle
	SaveSaving = workflow.SaveSaving
	SaveSaved  = workflow.SaveSaved
	SaveError  = workflow.SaveError
)

// Forms lists the built-in form types.
func Forms() []string {
	return disclosures.Names()
}

// NewController builds a controller for a fresh instance of a built-in form.
func NewController(api backend.API, form string, opts ...Option) (*Controller, error) {
	def, err := disclosures.Definition(form)
	if err != nil {
		return nil, err
	}
	return workflow.New(api, def, opts...), nil
}

// Open builds a controller and loads an existing record into it.
func Open(ctx context.Context, api backend.API, form, id string, opts ...Option) (*Controller, error) {
	c, err := NewController(api, form, opts...)
	if err != nil {
		return nil, err
	}
	if err := c.Load(ctx, id); err != nil {
		return nil, err
	}
	return c, nil
}

// NewHTTPBackend builds the HTTP record-service client for one form type,
// e.g. NewHTTPBackend("https://api.example.com/v1", "accreditation").
func NewHTTPBackend(baseURL, form string, opts ...backend.ClientOption) *backend.Client {
	return backend.NewClient(baseURL, form, opts...)
}
