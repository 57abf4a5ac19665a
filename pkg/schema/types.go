// Package schema models the static form schema document: ordered pages of
// sections of field descriptors. Documents are loaded once per form type and
// treated as read-only configuration.
package schema

import "strings"

// FieldType is the closed set of field kinds a descriptor may declare.
type FieldType string

const (
	TypeText          FieldType = "text"
	TypeDate          FieldType = "date"
	TypeCurrency      FieldType = "currency"
	TypeMultiCheck    FieldType = "multicheck"
	TypeSignature     FieldType = "signature"
	TypeRangeCurrency FieldType = "range-currency"
	TypeYesNo         FieldType = "conditional-yes-no"
	TypeGroup         FieldType = "group"
	TypeContent       FieldType = "content"
)

var knownTypes = map[FieldType]struct{}{
	TypeText:          {},
	TypeDate:          {},
	TypeCurrency:      {},
	TypeMultiCheck:    {},
	TypeSignature:     {},
	TypeRangeCurrency: {},
	TypeYesNo:         {},
	TypeGroup:         {},
	TypeContent:       {},
}

// Known reports whether the type tag belongs to the closed set.
func (ft FieldType) Known() bool {
	_, ok := knownTypes[ft]
	return ok
}

// FieldDescriptor describes one input in a form schema. Group and
// conditional-yes-no descriptors carry nested sub-fields; content blocks
// carry sanitized read-only markup.
type FieldDescriptor struct {
	ID          string            `json:"id" yaml:"id"`
	Type        FieldType         `json:"type" yaml:"type"`
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	Options     []string          `json:"options,omitempty" yaml:"options,omitempty"`
	Fields      []FieldDescriptor `json:"fields,omitempty" yaml:"fields,omitempty"`
	Content     string            `json:"content,omitempty" yaml:"content,omitempty"`
	VisibleWhen string            `json:"visible_when,omitempty" yaml:"visible_when,omitempty"`
}

// Section is a titled group of descriptors inside a page.
type Section struct {
	ID     string            `json:"id" yaml:"id"`
	Title  string            `json:"title,omitempty" yaml:"title,omitempty"`
	Fields []FieldDescriptor `json:"fields" yaml:"fields"`
}

// Page is a contiguous, independently validated and saved subset of a form.
type Page struct {
	Number   int       `json:"number" yaml:"number"`
	Title    string    `json:"title,omitempty" yaml:"title,omitempty"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// Document is the full schema for one form type.
type Document struct {
	Form  string `json:"form" yaml:"form"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Pages []Page `json:"pages" yaml:"pages"`

	index map[string]FieldDescriptor
	pages map[int][]string
}

// Field looks up a descriptor by id, including nested sub-fields.
func (d *Document) Field(id string) (FieldDescriptor, bool) {
	if d == nil || d.index == nil {
		return FieldDescriptor{}, false
	}
	desc, ok := d.index[strings.TrimSpace(id)]
	return desc, ok
}

// FieldIDs returns every declared field id in page/section/declaration order,
// nested sub-fields immediately after their parent.
func (d *Document) FieldIDs() []string {
	if d == nil {
		return nil
	}
	var out []string
	for _, page := range d.Pages {
		out = append(out, d.PageFieldIDs(page.Number)...)
	}
	return out
}

// PageFieldIDs returns the field ids scoped to one page, nested sub-fields
// included. Unknown page numbers yield nil.
func (d *Document) PageFieldIDs(page int) []string {
	if d == nil || d.pages == nil {
		return nil
	}
	return append([]string(nil), d.pages[page]...)
}

// PageCount returns how many pages the document declares.
func (d *Document) PageCount() int {
	if d == nil {
		return 0
	}
	return len(d.Pages)
}

func (d *Document) buildIndexes() {
	d.index = make(map[string]FieldDescriptor)
	d.pages = make(map[int][]string)
	for _, page := range d.Pages {
		for _, section := range page.Sections {
			for _, field := range section.Fields {
				d.indexField(page.Number, field)
			}
		}
	}
}

func (d *Document) indexField(page int, field FieldDescriptor) {
	if field.ID != "" {
		d.index[field.ID] = field
		d.pages[page] = append(d.pages[page], field.ID)
	}
	for _, nested := range field.Fields {
		d.indexField(page, nested)
	}
}
