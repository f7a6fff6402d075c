package llm

import (
	"math"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sanitize prepares a decoded BSON/JSON value tree for serialization into a
// prompt: ObjectIds become hex strings, timestamps become RFC3339 strings,
// non-finite floats and literal "nan" strings become nil. Slices map
// element-wise and maps value-wise; ordered documents flatten to plain maps
// so they serialize as JSON objects. Sanitized output contains none of the
// rewritten types, so the function is idempotent.
func Sanitize(v any) any {
	switch val := v.(type) {
	case primitive.ObjectID:
		return val.Hex()
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	case primitive.DateTime:
		return val.Time().UTC().Format(time.RFC3339)
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil
		}
		return val
	case float32:
		f := float64(val)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return val
	case string:
		if strings.EqualFold(val, "nan") {
			return nil
		}
		return val
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Sanitize(item)
		}
		return out
	case primitive.A:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Sanitize(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Sanitize(item)
		}
		return out
	case bson.M:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Sanitize(item)
		}
		return out
	case bson.D:
		// bson.D has no JSON marshaler; keep it as a plain map so documents
		// decoded from Mongo serialize as objects, not Key/Value pairs
		out := make(map[string]any, len(val))
		for _, elem := range val {
			out[elem.Key] = Sanitize(elem.Value)
		}
		return out
	case []map[string]any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Sanitize(item)
		}
		return out
	default:
		return v
	}
}
