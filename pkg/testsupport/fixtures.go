// Package testsupport carries small helpers shared by package tests: parsing
// schema documents and snapshots from inline fixtures without repeating the
// error plumbing in every test.
package testsupport

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/anish877/Realta-Wealth-sub002/pkg/schema"
	"github.com/anish877/Realta-Wealth-sub002/pkg/snapshot"
)

// MustDocument parses an inline schema fixture. Testing helpers fail the test
// on error to keep contract tests concise.
func MustDocument(t *testing.T, name string, data string) *schema.Document {
	t.Helper()

	doc, err := schema.Load(name, []byte(data))
	if err != nil {
		t.Fatalf("load schema fixture %s: %v", name, err)
	}
	return doc
}

// SnapshotFromJSON parses an inline JSON object into a snapshot, the same
// decoding path a persisted record or request body would take.
func SnapshotFromJSON(t *testing.T, data string) snapshot.Snapshot {
	t.Helper()

	snap := snapshot.New()
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		t.Fatalf("parse snapshot fixture: %v", err)
	}
	return snap
}

// Diff returns a human-readable diff between two values, empty when equal.
func Diff(want, got any) string {
	return cmp.Diff(want, got)
}
