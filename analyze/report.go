package analyze

import (
	"fmt"
	"strings"

	"github.com/Coldaine/AzurKnowledge/gamedata"
)

const (
	headerRule  = "============================================================"
	sectionRule = "----------------------------------------"
)

// EquipmentReport renders the per-type equipment summary: item counts and
// the top five entries with their linked weapon's damage and range.
func EquipmentReport(c *gamedata.Catalog) string {
	var b strings.Builder
	b.WriteString(headerRule + "\n")
	b.WriteString("EQUIPMENT ANALYSIS\n")
	b.WriteString(headerRule + "\n")

	groups := GroupEquipmentByType(c)
	for _, typeName := range sortedNames(groups) {
		items := groups[typeName]
		fmt.Fprintf(&b, "\n%s (%d items)\n%s\n", typeName, len(items), sectionRule)

		for _, eq := range TopEquipment(items, 5) {
			fmt.Fprintf(&b, "  [%s] %s\n", gamedata.RarityName(eq.Rarity), eq.Name)
			fmt.Fprintf(&b, "    Nation: %s, Tech: T%d\n", gamedata.NationName(eq.Nationality), eq.Tech)
			if len(eq.WeaponIDs) > 0 {
				// Dangling weapon references are valid and simply omitted.
				if weapon, ok := c.Weapons[eq.WeaponIDs[0]]; ok {
					fmt.Fprintf(&b, "    Damage: %d, Range: %d\n", weapon.Damage, weapon.Range)
				}
			}
		}
	}
	return b.String()
}

// ShipReport renders per-hull-type averages and the top three ships.
func ShipReport(c *gamedata.Catalog) string {
	var b strings.Builder
	b.WriteString(headerRule + "\n")
	b.WriteString("SHIP ANALYSIS\n")
	b.WriteString(headerRule + "\n")

	groups := GroupShipsByType(c)
	for _, typeName := range sortedNames(groups) {
		ships := groups[typeName]
		fmt.Fprintf(&b, "\n%s (%d ships)\n%s\n", typeName, len(ships), sectionRule)
		if len(ships) == 0 {
			continue
		}

		b.WriteString("  Average Stats:\n")
		fmt.Fprintf(&b, "    HP: %.0f\n", Mean(stat(ships, func(s *gamedata.Ship) int { return s.HP })))
		fmt.Fprintf(&b, "    Firepower: %.0f\n", Mean(stat(ships, func(s *gamedata.Ship) int { return s.Firepower })))
		fmt.Fprintf(&b, "    Torpedo: %.0f\n", Mean(stat(ships, func(s *gamedata.Ship) int { return s.Torpedo })))
		fmt.Fprintf(&b, "    Anti-Air: %.0f\n", Mean(stat(ships, func(s *gamedata.Ship) int { return s.AntiAir })))

		b.WriteString("  Top Ships:\n")
		for _, s := range TopShips(ships, 3) {
			fmt.Fprintf(&b, "    [%s] %s (%s)\n", gamedata.RarityName(s.Rarity), s.Name, gamedata.NationName(s.Nationality))
			fmt.Fprintf(&b, "      HP:%d FP:%d TRP:%d AA:%d\n", s.HP, s.Firepower, s.Torpedo, s.AntiAir)
		}
	}
	return b.String()
}

func stat(ships []*gamedata.Ship, pick func(*gamedata.Ship) int) []float64 {
	values := make([]float64, 0, len(ships))
	for _, s := range ships {
		values = append(values, float64(pick(s)))
	}
	return values
}
