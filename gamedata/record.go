package gamedata

// Record is one raw table entry: a loosely typed JSON object. Every accessor
// takes a default so an incomplete record can never abort a batch.
type Record map[string]any

// Table is one raw data document, keyed by string-encoded numeric ID.
type Table map[string]Record

// Has reports whether the record defines the key at all.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Str returns the string value for key, or def when absent or not a string.
func (r Record) Str(key, def string) string {
	if s, ok := r[key].(string); ok {
		return s
	}
	return def
}

// Int returns the numeric value for key as an int, or def.
func (r Record) Int(key string, def int) int {
	if n, ok := toFloat(r[key]); ok {
		return int(n)
	}
	return def
}

// Float returns the numeric value for key, or def.
func (r Record) Float(key string, def float64) float64 {
	if n, ok := toFloat(r[key]); ok {
		return n
	}
	return def
}

// Ints returns the value for key as an int slice. A bare number becomes a
// single-element slice; non-numeric elements are dropped.
func (r Record) Ints(key string) []int {
	floats := r.Floats(key)
	out := make([]int, 0, len(floats))
	for _, f := range floats {
		out = append(out, int(f))
	}
	return out
}

// Floats returns the value for key as a float slice, same coercion as Ints.
func (r Record) Floats(key string) []float64 {
	switch v := r[key].(type) {
	case []any:
		out := make([]float64, 0, len(v))
		for _, elem := range v {
			if f, ok := toFloat(elem); ok {
				out = append(out, f)
			}
		}
		return out
	default:
		if f, ok := toFloat(v); ok {
			return []float64{f}
		}
		return []float64{}
	}
}

// Map returns the value for key as a nested object, or an empty map.
func (r Record) Map(key string) map[string]any {
	if m, ok := r[key].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// intAt reads s[i], returning 0 when the index is out of range. Stat vectors
// shorter than expected must resolve to 0, never panic.
func intAt(s []int, i int) int {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
