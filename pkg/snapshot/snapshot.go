package snapshot

import (
	"fmt"
	"strconv"
	"strings"
)

// Snapshot is the complete in-memory field-value mapping for one form
// instance at a point in time. Keys are business field ids; values are the
// loosely typed shapes produced by form input: strings, numbers, booleans,
// nil, ordered string lists, currency ranges, or structured sub-records.
//
// A snapshot is replaced wholesale on each edit. Use With to derive the next
// snapshot rather than mutating a shared map in place.
type Snapshot map[string]any

// Range holds a from/to currency pair as entered by the user.
type Range struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Sub is a structured sub-record value, such as one government-id block or
// one address entry.
type Sub map[string]any

// New returns an empty snapshot.
func New() Snapshot {
	return make(Snapshot)
}

// Clone deep-copies the snapshot so derived snapshots never alias nested
// maps or lists with their parent.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return New()
	}
	out := make(Snapshot, len(s))
	for key, value := range s {
		out[key] = deepCopy(value)
	}
	return out
}

// With returns a copy of the snapshot with one field overridden.
func (s Snapshot) With(fieldID string, value any) Snapshot {
	out := s.Clone()
	out[fieldID] = value
	return out
}

// Get returns the raw value and whether the field is present.
func (s Snapshot) Get(fieldID string) (any, bool) {
	if s == nil {
		return nil, false
	}
	value, ok := s[fieldID]
	return value, ok
}

// String coerces a field to its string form. Missing and nil fields yield "".
func (s Snapshot) String(fieldID string) string {
	value, ok := s.Get(fieldID)
	if !ok {
		return ""
	}
	return CoerceString(value)
}

// List coerces a field to an ordered string list. Scalars become one-element
// lists; missing, nil, and empty values yield nil.
func (s Snapshot) List(fieldID string) []string {
	value, ok := s.Get(fieldID)
	if !ok {
		return nil
	}
	return CoerceList(value)
}

// Bool coerces a field to a boolean. Missing fields yield false.
func (s Snapshot) Bool(fieldID string) bool {
	value, ok := s.Get(fieldID)
	if !ok {
		return false
	}
	b, _ := CoerceBool(value)
	return b
}

// Range extracts a from/to currency pair. The second return reports whether
// the stored value had a recognisable range shape.
func (s Snapshot) Range(fieldID string) (Range, bool) {
	value, ok := s.Get(fieldID)
	if !ok || value == nil {
		return Range{}, false
	}
	switch typed := value.(type) {
	case Range:
		return typed, true
	case *Range:
		if typed == nil {
			return Range{}, false
		}
		return *typed, true
	case map[string]any:
		return Range{From: CoerceString(typed["from"]), To: CoerceString(typed["to"])}, true
	case map[string]string:
		return Range{From: typed["from"], To: typed["to"]}, true
	default:
		return Range{}, false
	}
}

// Subs extracts a list of structured sub-records, accepting both the typed
// and the decoded-JSON shapes.
func (s Snapshot) Subs(fieldID string) []Sub {
	value, ok := s.Get(fieldID)
	if !ok || value == nil {
		return nil
	}
	switch typed := value.(type) {
	case []Sub:
		return typed
	case Sub:
		return []Sub{typed}
	case map[string]any:
		return []Sub{Sub(typed)}
	case []map[string]any:
		out := make([]Sub, 0, len(typed))
		for _, entry := range typed {
			out = append(out, Sub(entry))
		}
		return out
	case []any:
		out := make([]Sub, 0, len(typed))
		for _, entry := range typed {
			if record, ok := entry.(map[string]any); ok {
				out = append(out, Sub(record))
			}
		}
		return out
	default:
		return nil
	}
}

// Empty reports whether a field holds no user-entered data: missing, nil,
// blank string, empty list, or a range/sub-record with all members blank.
func (s Snapshot) Empty(fieldID string) bool {
	value, ok := s.Get(fieldID)
	if !ok {
		return true
	}
	return IsEmpty(value)
}

// IsEmpty reports whether a raw field value holds no user-entered data.
func IsEmpty(value any) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(typed) == ""
	case bool:
		return false
	case []string:
		return len(typed) == 0
	case []any:
		return len(typed) == 0
	case []Sub:
		return len(typed) == 0
	case Range:
		return strings.TrimSpace(typed.From) == "" && strings.TrimSpace(typed.To) == ""
	case *Range:
		return typed == nil || IsEmpty(*typed)
	case Sub:
		return subEmpty(map[string]any(typed))
	case map[string]any:
		return subEmpty(typed)
	default:
		return false
	}
}

func subEmpty(record map[string]any) bool {
	for _, value := range record {
		if !IsEmpty(value) {
			return false
		}
	}
	return true
}

// CoerceString renders any field value as a display string. Nil becomes "".
func CoerceString(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case []byte:
		return string(typed)
	case bool:
		if typed {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(typed), 'f', -1, 32)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	default:
		return fmt.Sprint(value)
	}
}

// CoerceList normalises list-shaped values into []string. Scalar values
// become one-element lists so `includes` checks work on either shape.
func CoerceList(value any) []string {
	switch typed := value.(type) {
	case nil:
		return nil
	case []string:
		return typed
	case []any:
		out := make([]string, 0, len(typed))
		for _, entry := range typed {
			out = append(out, CoerceString(entry))
		}
		return out
	case string:
		if strings.TrimSpace(typed) == "" {
			return nil
		}
		return []string{typed}
	default:
		return []string{CoerceString(value)}
	}
}

// CoerceBool interprets a field value as a boolean. The second return
// reports whether the value carried a recognisable boolean meaning.
func CoerceBool(value any) (bool, bool) {
	switch typed := value.(type) {
	case nil:
		return false, false
	case bool:
		return typed, true
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(typed))
		if err != nil {
			return false, false
		}
		return parsed, true
	case int:
		return typed != 0, true
	case float64:
		return typed != 0, true
	default:
		return false, false
	}
}

// CoerceNumber interprets a field value as a float64.
func CoerceNumber(value any) (float64, bool) {
	switch typed := value.(type) {
	case nil:
		return 0, false
	case float64:
		return typed, true
	case float32:
		return float64(typed), true
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func deepCopy(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		clone := make(map[string]any, len(typed))
		for k, v := range typed {
			clone[k] = deepCopy(v)
		}
		return clone
	case Sub:
		clone := make(Sub, len(typed))
		for k, v := range typed {
			clone[k] = deepCopy(v)
		}
		return clone
	case []any:
		clone := make([]any, len(typed))
		for i, v := range typed {
			clone[i] = deepCopy(v)
		}
		return clone
	case []string:
		return append([]string(nil), typed...)
	case []Sub:
		clone := make([]Sub, len(typed))
		for i, v := range typed {
			clone[i] = deepCopy(v).(Sub)
		}
		return clone
	default:
		return typed
	}
}
