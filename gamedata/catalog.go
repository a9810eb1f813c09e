package gamedata

import "sort"

// Catalog holds every parsed collection, keyed by integer ID. It is built
// once per run and read-only afterwards.
type Catalog struct {
	Equipment   map[int]*Equipment
	Ships       map[int]*Ship
	Weapons     map[int]*Weapon
	WeaponNames map[int]string
}

func NewCatalog() *Catalog {
	return &Catalog{
		Equipment:   make(map[int]*Equipment),
		Ships:       make(map[int]*Ship),
		Weapons:     make(map[int]*Weapon),
		WeaponNames: make(map[int]string),
	}
}

// EquipmentSorted returns all equipment in ascending ID order. Ascending ID
// is the catalog's canonical iteration order; grouping and ranking preserve
// it so repeated runs over the same input stay byte-identical.
func (c *Catalog) EquipmentSorted() []*Equipment {
	out := make([]*Equipment, 0, len(c.Equipment))
	for _, eq := range c.Equipment {
		out = append(out, eq)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ShipsSorted returns all ships in ascending ID order.
func (c *Catalog) ShipsSorted() []*Ship {
	out := make([]*Ship, 0, len(c.Ships))
	for _, s := range c.Ships {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// WeaponsSorted returns all weapons in ascending ID order.
func (c *Catalog) WeaponsSorted() []*Weapon {
	out := make([]*Weapon, 0, len(c.Weapons))
	for _, w := range c.Weapons {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
