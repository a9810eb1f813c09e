package gamedata

import "sort"

// Unknown is returned for any code that has no entry in a lookup table.
const Unknown = "Unknown"

// EquipTypes maps equipment type codes to display names.
var EquipTypes = map[int]string{
	1:  "DD Gun",
	2:  "CL Gun",
	3:  "CA Gun",
	4:  "BB Gun",
	5:  "Torpedo",
	6:  "AA Gun",
	7:  "Fighter",
	8:  "Torpedo Bomber",
	9:  "Dive Bomber",
	10: "Auxiliary",
	11: "CB Gun",
	12: "Seaplane",
	13: "Submarine Torpedo",
	14: "Depth Charge",
	15: "Anti-Submarine Aircraft",
	17: "Helicopter",
	18: "Goods",
}

// ShipTypes maps hull type codes to display names.
var ShipTypes = map[int]string{
	1:  "Destroyer",
	2:  "Light Cruiser",
	3:  "Heavy Cruiser",
	4:  "Battlecruiser",
	5:  "Battleship",
	6:  "Light Carrier",
	7:  "Aircraft Carrier",
	8:  "Submarine",
	9:  "Aviation Cruiser",
	10: "Aviation Battleship",
	11: "Torpedo Cruiser",
	12: "Repair Ship",
	13: "Monitor",
	17: "Submarine Carrier",
	18: "Large Cruiser",
	19: "Munition Ship",
	20: "Missile Destroyer",
	21: "Missile Cruiser",
	22: "Frigate",
}

// Nations maps nationality codes to display names.
var Nations = map[int]string{
	0:  "Universal",
	1:  "Eagle Union",
	2:  "Royal Navy",
	3:  "Sakura Empire",
	4:  "Iron Blood",
	5:  "Dragon Empery",
	6:  "Sardegna Empire",
	7:  "Northern Parliament",
	8:  "Iris Libre",
	9:  "Vichya Dominion",
	10: "Iris Orthodoxy",
	11: "Tempesta",
	12: "META",
	13: "Unknown",
}

// Rarities maps rarity codes to display names.
var Rarities = map[int]string{
	1: "Common",
	2: "Rare",
	3: "Elite",
	4: "Super Rare",
	5: "Ultra Rare",
	6: "Decisive",
}

func EquipTypeName(code int) string { return lookup(EquipTypes, code) }
func ShipTypeName(code int) string  { return lookup(ShipTypes, code) }
func NationName(code int) string    { return lookup(Nations, code) }
func RarityName(code int) string    { return lookup(Rarities, code) }

func lookup(table map[int]string, code int) string {
	if name, ok := table[code]; ok {
		return name
	}
	return Unknown
}

// NationNames returns every nationality display name in code order.
func NationNames() []string { return names(Nations) }

// RarityNames returns every rarity display name in code order.
func RarityNames() []string { return names(Rarities) }

func names(table map[int]string) []string {
	codes := make([]int, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		out = append(out, table[code])
	}
	return out
}
