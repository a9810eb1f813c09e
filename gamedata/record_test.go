package gamedata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordDefaults(t *testing.T) {
	rec := Record{
		"name":   "Twin 127mm",
		"type":   float64(1),
		"rate":   1.5,
		"ids":    []any{float64(10), float64(20), "bad", float64(30)},
		"nested": map[string]any{"a": float64(1)},
	}

	assert.Equal(t, "Twin 127mm", rec.Str("name", "fallback"))
	assert.Equal(t, "fallback", rec.Str("missing", "fallback"))
	assert.Equal(t, "fallback", rec.Str("type", "fallback"), "non-string value falls back")

	assert.Equal(t, 1, rec.Int("type", 0))
	assert.Equal(t, 7, rec.Int("missing", 7))
	assert.Equal(t, 1.5, rec.Float("rate", 0))

	assert.Equal(t, []int{10, 20, 30}, rec.Ints("ids"), "non-numeric elements dropped")
	assert.Empty(t, rec.Ints("missing"))
	assert.Equal(t, map[string]any{"a": float64(1)}, rec.Map("nested"))
	assert.Empty(t, rec.Map("name"))
}

func TestRecordScalarBecomesSlice(t *testing.T) {
	rec := Record{"weapon_id": float64(42)}
	assert.Equal(t, []int{42}, rec.Ints("weapon_id"))
}

func TestIntAtOutOfRange(t *testing.T) {
	stats := []int{5000, 100}

	assert.Equal(t, 5000, intAt(stats, 0))
	assert.Equal(t, 100, intAt(stats, 1))
	assert.Equal(t, 0, intAt(stats, 2))
	assert.Equal(t, 0, intAt(stats, 11))
	assert.Equal(t, 0, intAt(stats, -1))
}
