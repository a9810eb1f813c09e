package gamedata

import "github.com/rs/zerolog/log"

// ParseShips merges the ship statistics and template tables into the
// catalog. Stat vectors are positional: index i always means the same stat,
// and vectors shorter than 12 elements resolve missing stats to 0.
func (p *Parser) ParseShips() int {
	log.Info().Msg("<Parser> parsing ship data")

	stats := p.loader.Load("ship_data_statistics.json")
	templates := p.loader.Load("ship_data_template.json")

	count := 0
	for _, key := range sortedKeys(stats) {
		id, ok := numericKey(key)
		if !ok {
			log.Error().Str("id", key).Msg("<Parser> ship key is not numeric, record skipped")
			continue
		}

		ship := newShip(id, stats[key])
		if tmpl, found := templates[key]; found {
			overlayShip(ship, tmpl)
		}

		if _, dup := p.catalog.Ships[id]; dup {
			log.Warn().Int("id", id).Msg("<Parser> duplicate ship ID, last record wins")
		}
		p.catalog.Ships[id] = ship
		count++
	}

	log.Info().Int("count", count).Msg("<Parser> ships parsed")
	return count
}

func newShip(id int, rec Record) *Ship {
	typeCode := rec.Int("type", 0)
	attrs := rec.Ints("attrs")
	growth := rec.Ints("attrs_growth")

	return &Ship{
		ID:          id,
		Name:        rec.Str("name", Unknown),
		EnglishName: rec.Str("english_name", ""),
		Type:        typeCode,
		TypeName:    ShipTypeName(typeCode),
		Nationality: rec.Int("nationality", 0),
		Rarity:      rec.Int("rarity", 1),
		Star:        rec.Int("star", 1),
		ArmorType:   rec.Int("armor_type", 1),

		HP:        intAt(attrs, 0),
		Firepower: intAt(attrs, 1),
		Torpedo:   intAt(attrs, 2),
		AntiAir:   intAt(attrs, 3),
		Aviation:  intAt(attrs, 4),
		Reload:    intAt(attrs, 5),
		Armor:     intAt(attrs, 6),
		Hit:       intAt(attrs, 7),
		Evasion:   intAt(attrs, 8),
		Speed:     intAt(attrs, 9),
		Luck:      intAt(attrs, 10),
		AntiSub:   intAt(attrs, 11),

		HPGrowth:        intAt(growth, 0),
		FirepowerGrowth: intAt(growth, 1),
		TorpedoGrowth:   intAt(growth, 2),
		AntiAirGrowth:   intAt(growth, 3),
		AviationGrowth:  intAt(growth, 4),
		ReloadGrowth:    intAt(growth, 5),
		ArmorGrowth:     intAt(growth, 6),
		HitGrowth:       intAt(growth, 7),
		EvasionGrowth:   intAt(growth, 8),
		SpeedGrowth:     intAt(growth, 9),
		LuckGrowth:      intAt(growth, 10),
		AntiSubGrowth:   intAt(growth, 11),

		EquipProficiency: rec.Floats("equipment_proficiency"),
		BaseList:         rec.Ints("base_list"),
		PreloadCount:     rec.Ints("preload_count"),
	}
}

// overlayShip applies equipment-slot metadata from the template table when
// the statistics record does not carry it.
func overlayShip(ship *Ship, tmpl Record) {
	if tmpl.Has("equipment_proficiency") {
		ship.EquipProficiency = tmpl.Floats("equipment_proficiency")
	}
	if tmpl.Has("base_list") {
		ship.BaseList = tmpl.Ints("base_list")
	}
	if tmpl.Has("preload_count") {
		ship.PreloadCount = tmpl.Ints("preload_count")
	}
}
