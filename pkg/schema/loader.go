package schema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load parses a single schema document. JSON and YAML payloads are both
// accepted; name is used for error context and format detection.
func Load(name string, data []byte) (*Document, error) {
	doc := &Document{}
	if strings.EqualFold(filepath.Ext(name), ".json") {
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("schema: parse %s: %w", name, err)
		}
	} else {
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("schema: parse %s: %w", name, err)
		}
	}

	if err := normalize(doc, name); err != nil {
		return nil, err
	}
	doc.buildIndexes()
	return doc, nil
}

// LoadFS walks the provided filesystem and parses every JSON/YAML schema
// file into a registry keyed by form name. Duplicate form names are
// rejected.
func LoadFS(fsys fs.FS) (map[string]*Document, error) {
	registry := make(map[string]*Document)
	if fsys == nil {
		return registry, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("schema: read %s: %w", path, err)
		}
		doc, err := Load(path, data)
		if err != nil {
			return err
		}
		if _, exists := registry[doc.Form]; exists {
			return fmt.Errorf("schema: duplicate form %q (file %s)", doc.Form, path)
		}
		registry[doc.Form] = doc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return registry, nil
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func normalize(doc *Document, name string) error {
	doc.Form = strings.TrimSpace(doc.Form)
	if doc.Form == "" {
		return fmt.Errorf("schema: file %s declares no form name", name)
	}
	if len(doc.Pages) == 0 {
		return fmt.Errorf("schema: form %q declares no pages", doc.Form)
	}

	seen := make(map[string]struct{})
	for pi := range doc.Pages {
		page := &doc.Pages[pi]
		if page.Number == 0 {
			page.Number = pi + 1
		}
		for si := range page.Sections {
			section := &page.Sections[si]
			for fi := range section.Fields {
				if err := normalizeField(&section.Fields[fi], doc.Form, seen); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func normalizeField(field *FieldDescriptor, form string, seen map[string]struct{}) error {
	field.ID = strings.TrimSpace(field.ID)
	if field.ID == "" {
		return fmt.Errorf("schema: form %q declares a field with no id", form)
	}
	if _, dup := seen[field.ID]; dup {
		return fmt.Errorf("schema: form %q declares duplicate field %q", form, field.ID)
	}
	seen[field.ID] = struct{}{}

	if !field.Type.Known() {
		return fmt.Errorf("schema: form %q field %q has unknown type %q", form, field.ID, field.Type)
	}

	switch field.Type {
	case TypeContent:
		field.Content = sanitizeContent(field.Content)
	case TypeYesNo:
		if len(field.Fields) == 0 {
			return fmt.Errorf("schema: form %q field %q is conditional but declares no follow-up fields", form, field.ID)
		}
	}

	for fi := range field.Fields {
		if err := normalizeField(&field.Fields[fi], form, seen); err != nil {
			return err
		}
	}
	return nil
}
