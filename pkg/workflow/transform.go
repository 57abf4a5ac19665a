package workflow

import (
	"strings"
	"time"

	"github.com/anish877/Realta-Wealth-sub002/pkg/backend"
	"github.com/anish877/Realta-Wealth-sub002/pkg/schema"
	"github.com/anish877/Realta-Wealth-sub002/pkg/snapshot"
)

// GroupMapping routes flat prefixed fields into one backend array keyed by a
// discriminator, e.g. legal_address_* and mailing_address_* into
// addresses[] entries tagged by addressType.
type GroupMapping struct {
	// Key is the backend array key, e.g. "addresses".
	Key string
	// TagKey is the per-entry discriminator, e.g. "addressType".
	TagKey string
	// Entries maps discriminator value to the frontend field prefix, e.g.
	// "legal" -> "legal_address_".
	Entries map[string]string
}

// ListMapping routes flat prefixed fields into an ordered backend array
// without a discriminator, e.g. government_id_* and government_id_2_* into
// governmentIds[]. Prefix order is entry order.
type ListMapping struct {
	Key      string
	Prefixes []string
}

// Transform converts between the in-memory snake_case field convention and
// the backend's persisted camelCase shape. Field types come from the schema
// document; empty values are omitted from payloads rather than sent blank.
type Transform struct {
	Doc    *schema.Document
	Groups []GroupMapping
	Lists  []ListMapping
}

// ToBackend builds the persisted payload for the snapshot. Dates widen to
// full ISO-8601 timestamps, empty fields are omitted, and grouped fields
// fold into their arrays. Longer prefixes claim fields first so overlapping
// prefixes route deterministically.
func (t Transform) ToBackend(snap snapshot.Snapshot) backend.Record {
	record := make(backend.Record)
	groups := make(map[string][]map[string]any)

	for _, fieldID := range t.Doc.FieldIDs() {
		desc, _ := t.Doc.Field(fieldID)
		if desc.Type == schema.TypeContent || desc.Type == schema.TypeGroup {
			continue
		}
		if snap.Empty(fieldID) {
			continue
		}

		value := t.backendValue(desc, snap, fieldID)
		if value == nil {
			continue
		}

		if t.routeGrouped(fieldID, value, groups) {
			continue
		}
		record[toCamel(fieldID)] = value
	}

	for key, entries := range groups {
		compact := make([]map[string]any, 0, len(entries))
		for _, entry := range entries {
			if len(entry) > 0 {
				compact = append(compact, entry)
			}
		}
		if len(compact) > 0 {
			record[key] = compact
		}
	}
	return record
}

func (t Transform) backendValue(desc schema.FieldDescriptor, snap snapshot.Snapshot, fieldID string) any {
	switch desc.Type {
	case schema.TypeDate:
		return widenDate(snap.String(fieldID))
	case schema.TypeMultiCheck:
		return snap.List(fieldID)
	case schema.TypeRangeCurrency:
		rng, ok := snap.Range(fieldID)
		if !ok {
			return nil
		}
		return map[string]any{"from": rng.From, "to": rng.To}
	default:
		value, _ := snap.Get(fieldID)
		return value
	}
}

// routeGrouped places the value inside its group or list entry when a
// mapping prefix claims the field. Group entries are created lazily and
// keep their declaration order.
func (t Transform) routeGrouped(fieldID string, value any, groups map[string][]map[string]any) bool {
	type claim struct {
		arrayKey string
		tagKey   string
		tag      string
		index    int
		subKey   string
		prefix   string
	}
	var best *claim

	consider := func(c claim) {
		if best == nil || len(c.prefix) > len(best.prefix) {
			copied := c
			best = &copied
		}
	}

	for _, group := range t.Groups {
		for tag, prefix := range group.Entries {
			if strings.HasPrefix(fieldID, prefix) {
				consider(claim{
					arrayKey: group.Key,
					tagKey:   group.TagKey,
					tag:      tag,
					index:    -1,
					subKey:   toCamel(strings.TrimPrefix(fieldID, prefix)),
					prefix:   prefix,
				})
			}
		}
	}
	for _, list := range t.Lists {
		for index, prefix := range list.Prefixes {
			if strings.HasPrefix(fieldID, prefix) {
				consider(claim{
					arrayKey: list.Key,
					index:    index,
					subKey:   toCamel(strings.TrimPrefix(fieldID, prefix)),
					prefix:   prefix,
				})
			}
		}
	}

	if best == nil {
		return false
	}

	entries := groups[best.arrayKey]
	if best.index >= 0 {
		for len(entries) <= best.index {
			entries = append(entries, nil)
		}
		if entries[best.index] == nil {
			entries[best.index] = make(map[string]any)
		}
		entries[best.index][best.subKey] = value
		groups[best.arrayKey] = entries
		return true
	}

	for _, entry := range entries {
		if entry[best.tagKey] == best.tag {
			entry[best.subKey] = value
			return true
		}
	}
	entry := map[string]any{best.tagKey: best.tag, best.subKey: value}
	groups[best.arrayKey] = append(entries, entry)
	return true
}

// FromBackend rebuilds a snapshot from a persisted record: camelCase keys
// back to the snake_case convention, timestamps narrowed to YYYY-MM-DD for
// display-bound fields, grouped arrays unfolded onto their flat fields.
func (t Transform) FromBackend(record backend.Record) snapshot.Snapshot {
	snap := snapshot.New()

	for _, fieldID := range t.Doc.FieldIDs() {
		desc, _ := t.Doc.Field(fieldID)
		if desc.Type == schema.TypeContent || desc.Type == schema.TypeGroup {
			continue
		}

		raw, ok := t.lookupBackend(record, fieldID)
		if !ok || snapshot.IsEmpty(raw) {
			continue
		}

		switch desc.Type {
		case schema.TypeDate:
			snap[fieldID] = narrowDate(snapshot.CoerceString(raw))
		case schema.TypeMultiCheck:
			snap[fieldID] = snapshot.CoerceList(raw)
		case schema.TypeRangeCurrency:
			if rng, ok := (snapshot.Snapshot{"r": raw}).Range("r"); ok {
				snap[fieldID] = rng
			}
		default:
			snap[fieldID] = raw
		}
	}
	return snap
}

func (t Transform) lookupBackend(record backend.Record, fieldID string) (any, bool) {
	// Longest matching prefix wins, mirroring routeGrouped.
	var (
		bestPrefix string
		lookup     func() (any, bool)
	)
	consider := func(prefix string, fn func() (any, bool)) {
		if len(prefix) > len(bestPrefix) {
			bestPrefix = prefix
			lookup = fn
		}
	}

	for _, group := range t.Groups {
		group := group
		for tag, prefix := range group.Entries {
			tag, prefix := tag, prefix
			if !strings.HasPrefix(fieldID, prefix) {
				continue
			}
			consider(prefix, func() (any, bool) {
				entry, ok := findTagged(record[group.Key], group.TagKey, tag)
				if !ok {
					return nil, false
				}
				value, ok := entry[toCamel(strings.TrimPrefix(fieldID, prefix))]
				return value, ok
			})
		}
	}
	for _, list := range t.Lists {
		list := list
		for index, prefix := range list.Prefixes {
			index, prefix := index, prefix
			if !strings.HasPrefix(fieldID, prefix) {
				continue
			}
			consider(prefix, func() (any, bool) {
				entry, ok := indexEntry(record[list.Key], index)
				if !ok {
					return nil, false
				}
				value, ok := entry[toCamel(strings.TrimPrefix(fieldID, prefix))]
				return value, ok
			})
		}
	}

	if lookup != nil {
		return lookup()
	}
	value, ok := record[toCamel(fieldID)]
	return value, ok
}

func findTagged(raw any, tagKey, tag string) (map[string]any, bool) {
	for _, entry := range asEntries(raw) {
		if snapshot.CoerceString(entry[tagKey]) == tag {
			return entry, true
		}
	}
	return nil, false
}

func indexEntry(raw any, index int) (map[string]any, bool) {
	entries := asEntries(raw)
	if index < 0 || index >= len(entries) || entries[index] == nil {
		return nil, false
	}
	return entries[index], true
}

func asEntries(raw any) []map[string]any {
	switch typed := raw.(type) {
	case []map[string]any:
		return typed
	case []any:
		out := make([]map[string]any, 0, len(typed))
		for _, entry := range typed {
			if record, ok := entry.(map[string]any); ok {
				out = append(out, record)
			}
		}
		return out
	default:
		return nil
	}
}

// widenDate turns a display date into the backend's full timestamp form.
// Values already carrying a timestamp pass through unchanged; unparseable
// values pass through so validation, not persistence, reports them.
func widenDate(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if _, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return trimmed
	}
	if parsed, err := time.Parse("2006-01-02", trimmed); err == nil {
		return parsed.UTC().Format(time.RFC3339)
	}
	return trimmed
}

// narrowDate reduces a backend timestamp to the YYYY-MM-DD display form.
func narrowDate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if parsed, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return parsed.UTC().Format("2006-01-02")
	}
	return trimmed
}

// toCamel converts a snake_case business key to the backend's camelCase
// convention: rr_name -> rrName.
func toCamel(key string) string {
	parts := strings.Split(key, "_")
	if len(parts) == 1 {
		return key
	}
	var b strings.Builder
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 0 {
			b.WriteString(part)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
