package analyze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Coldaine/AzurKnowledge/gamedata"
)

func TestEquipmentReportContent(t *testing.T) {
	c := testCatalog()
	c.Equipment[2].WeaponIDs = []int{1000}
	c.Weapons[1000] = &gamedata.Weapon{ID: 1000, Damage: 25, Range: 60}

	report := EquipmentReport(c)

	assert.Contains(t, report, "EQUIPMENT ANALYSIS")
	assert.Contains(t, report, "DD Gun (3 items)")
	assert.Contains(t, report, "[Super Rare] Twin 127mm")
	assert.Contains(t, report, "Damage: 25, Range: 60")
	assert.True(t, strings.Index(report, "DD Gun") < strings.Index(report, "Torpedo"),
		"type sections appear in alphabetical order")
}

func TestEquipmentReportDanglingWeaponOmitted(t *testing.T) {
	c := testCatalog()
	c.Equipment[2].WeaponIDs = []int{424242}

	report := EquipmentReport(c)
	assert.NotContains(t, report, "Damage:")
}

func TestShipReportContent(t *testing.T) {
	report := ShipReport(testCatalog())

	assert.Contains(t, report, "SHIP ANALYSIS")
	assert.Contains(t, report, "Destroyer (2 ships)")
	assert.Contains(t, report, "HP: 1300")
	assert.Contains(t, report, "Firepower: 110")
	assert.Contains(t, report, "[Elite] Laffey")
}

func TestReportsOnEmptyCatalog(t *testing.T) {
	c := gamedata.NewCatalog()

	assert.Contains(t, EquipmentReport(c), "EQUIPMENT ANALYSIS")
	assert.Contains(t, ShipReport(c), "SHIP ANALYSIS")
}
