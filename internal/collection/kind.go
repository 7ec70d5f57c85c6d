package collection

// Kind is the primitive type a front-matter field must coerce to.
type Kind string

const (
	KindString      Kind = "string"
	KindBoolean     Kind = "boolean"
	KindDate        Kind = "date"
	KindStringArray Kind = "string[]"
	KindURL         Kind = "url"
)

// String returns the kind name as shown in schema listings and errors.
func (k Kind) String() string {
	return string(k)
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindString, KindBoolean, KindDate, KindStringArray, KindURL:
		return true
	default:
		return false
	}
}

// typeName describes the dynamic type of a raw value for mismatch reports.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case float32, float64:
		return "number"
	case []any, []string:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}
