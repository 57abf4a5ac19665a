package backend

import (
	"context"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-process API implementation backing tests and the
// formcheck tool. Records merge field-by-field on update the way the real
// service does, and page completion is acknowledged per page-scoped save.
type Memory struct {
	mu        sync.Mutex
	pageCount int
	records   map[string]Record
	pages     map[string]PageCompletion
	submitted map[string]bool
}

// NewMemory builds an empty store for a form type with the given number of
// pages.
func NewMemory(pageCount int) *Memory {
	return &Memory{
		pageCount: pageCount,
		records:   make(map[string]Record),
		pages:     make(map[string]PageCompletion),
		submitted: make(map[string]bool),
	}
}

// Create stores a new record and assigns it an identifier.
func (m *Memory) Create(_ context.Context, payload Record) (CreateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	m.records[id] = cloneRecord(payload)

	completion := make(PageCompletion, m.pageCount)
	for page := 1; page <= m.pageCount; page++ {
		completion[page] = PageStatus{}
	}
	m.pages[id] = completion

	return CreateResult{ID: id, Pages: completion.Clone()}, nil
}

// Get returns a copy of the stored record with the completion tracking
// embedded under pageCompletionStatus, the shape the record service echoes.
func (m *Memory) Get(_ context.Context, id string) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[id]
	if !ok {
		return nil, ErrNotFound
	}

	out := cloneRecord(record)
	if completion := m.pages[id]; len(completion) > 0 {
		embedded := make(map[string]any, len(completion))
		for page, status := range completion {
			embedded[strconv.Itoa(page)] = map[string]any{"completed": status.Completed}
		}
		out["pageCompletionStatus"] = embedded
	}
	return out, nil
}

// Update merges the payload into the stored record and, for page-scoped
// saves, acknowledges the page as completed.
func (m *Memory) Update(_ context.Context, id string, page int, payload Record) (UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[id]
	if !ok {
		return UpdateResult{}, ErrNotFound
	}
	if m.submitted[id] {
		return UpdateResult{}, ErrSubmitted
	}

	for key, value := range payload {
		record[key] = value
	}

	completion := m.pages[id]
	if completion == nil {
		completion = make(PageCompletion)
		m.pages[id] = completion
	}
	if page > 0 {
		completion[page] = PageStatus{Completed: true}
	}

	return UpdateResult{Pages: completion.Clone()}, nil
}

// Submit marks the record terminal; further updates are refused.
func (m *Memory) Submit(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return ErrNotFound
	}
	if m.submitted[id] {
		return ErrSubmitted
	}
	m.submitted[id] = true
	return nil
}

// Submitted reports whether the record reached its terminal state.
func (m *Memory) Submitted(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submitted[id]
}

func cloneRecord(src Record) Record {
	out := make(Record, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}
