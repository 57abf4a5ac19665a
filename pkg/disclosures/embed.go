// Package disclosures carries the concrete disclosure form definitions: the
// embedded schema documents plus the validation schemas, visibility and
// requirement tables, and backend payload mappings for each form type.
package disclosures

import (
	"embed"
	"io/fs"
	"sync"

	"github.com/anish877/Realta-Wealth-sub002/pkg/schema"
)

//go:embed forms/*.yaml
var formsFS embed.FS

var (
	loadOnce sync.Once
	registry map[string]*schema.Document
	loadErr  error
)

// Documents loads the embedded schema documents once and returns the registry
// keyed by form name.
func Documents() (map[string]*schema.Document, error) {
	loadOnce.Do(func() {
		sub, err := fs.Sub(formsFS, "forms")
		if err != nil {
			loadErr = err
			return
		}
		registry, loadErr = schema.LoadFS(sub)
	})
	return registry, loadErr
}
