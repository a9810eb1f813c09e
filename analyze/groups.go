// Package analyze provides read-only grouping and summary reporting over a
// fully parsed catalog.
package analyze

import (
	"sort"

	"github.com/Coldaine/AzurKnowledge/gamedata"
)

// GroupEquipmentByType maps type display names to their members, preserving
// catalog iteration order within each group.
func GroupEquipmentByType(c *gamedata.Catalog) map[string][]*gamedata.Equipment {
	groups := make(map[string][]*gamedata.Equipment)
	for _, eq := range c.EquipmentSorted() {
		groups[eq.TypeName] = append(groups[eq.TypeName], eq)
	}
	return groups
}

// GroupShipsByType maps hull type display names to their members.
func GroupShipsByType(c *gamedata.Catalog) map[string][]*gamedata.Ship {
	groups := make(map[string][]*gamedata.Ship)
	for _, s := range c.ShipsSorted() {
		groups[s.TypeName] = append(groups[s.TypeName], s)
	}
	return groups
}

// Mean returns the arithmetic mean, or 0 for an empty group.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// TopEquipment ranks a group by rarity then tech tier, both descending, and
// returns the first n. The sort is stable so residual ties keep the group's
// insertion order.
func TopEquipment(items []*gamedata.Equipment, n int) []*gamedata.Equipment {
	ranked := make([]*gamedata.Equipment, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Rarity != ranked[j].Rarity {
			return ranked[i].Rarity > ranked[j].Rarity
		}
		return ranked[i].Tech > ranked[j].Tech
	})
	return head(ranked, n)
}

// TopShips ranks a group by rarity then base HP, both descending.
func TopShips(ships []*gamedata.Ship, n int) []*gamedata.Ship {
	ranked := make([]*gamedata.Ship, len(ships))
	copy(ranked, ships)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Rarity != ranked[j].Rarity {
			return ranked[i].Rarity > ranked[j].Rarity
		}
		return ranked[i].HP > ranked[j].HP
	})
	return head(ranked, n)
}

func head[T any](s []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}

func sortedNames[T any](groups map[string][]T) []string {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
