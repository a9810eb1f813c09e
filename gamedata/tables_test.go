package gamedata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupNames(t *testing.T) {
	assert.Equal(t, "DD Gun", EquipTypeName(1))
	assert.Equal(t, "Goods", EquipTypeName(18))
	assert.Equal(t, "Destroyer", ShipTypeName(1))
	assert.Equal(t, "Heavy Cruiser", ShipTypeName(3))
	assert.Equal(t, "Eagle Union", NationName(1))
	assert.Equal(t, "Decisive", RarityName(6))
}

func TestLookupUnmappedCodeIsUnknown(t *testing.T) {
	// Unmapped codes must resolve to the sentinel, never an empty string.
	for _, name := range []string{
		EquipTypeName(16),
		EquipTypeName(999),
		ShipTypeName(14),
		NationName(-1),
		RarityName(0),
		RarityName(7),
	} {
		assert.Equal(t, Unknown, name)
	}
}

func TestNameEnumerationsAreCodeOrdered(t *testing.T) {
	rarities := RarityNames()
	assert.Equal(t, []string{"Common", "Rare", "Elite", "Super Rare", "Ultra Rare", "Decisive"}, rarities)

	nations := NationNames()
	assert.Len(t, nations, len(Nations))
	assert.Equal(t, "Universal", nations[0])
	assert.Equal(t, "Unknown", nations[len(nations)-1])
}
