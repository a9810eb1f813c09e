package gamedata

import "github.com/rs/zerolog/log"

// ParseEquipment merges the equipment statistics and template tables into
// the catalog. The statistics table is primary; a template entry sharing the
// ID overlays only the fields it defines.
func (p *Parser) ParseEquipment() int {
	log.Info().Msg("<Parser> parsing equipment data")

	stats := p.loader.Load("equip_data_statistics.json")
	templates := p.loader.Load("equip_data_template.json")

	count := 0
	for _, key := range sortedKeys(stats) {
		id, ok := numericKey(key)
		if !ok {
			log.Error().Str("id", key).Msg("<Parser> equipment key is not numeric, record skipped")
			continue
		}

		eq := newEquipment(id, stats[key])
		if tmpl, found := templates[key]; found {
			overlayEquipment(eq, tmpl)
		}

		if _, dup := p.catalog.Equipment[id]; dup {
			log.Warn().Int("id", id).Msg("<Parser> duplicate equipment ID, last record wins")
		}
		p.catalog.Equipment[id] = eq
		count++
	}

	log.Info().Int("count", count).Msg("<Parser> equipment parsed")
	return count
}

func newEquipment(id int, rec Record) *Equipment {
	typeCode := rec.Int("type", 0)
	return &Equipment{
		ID:           id,
		Name:         rec.Str("name", Unknown),
		Type:         typeCode,
		TypeName:     EquipTypeName(typeCode),
		Rarity:       rec.Int("rarity", 1),
		Nationality:  rec.Int("nationality", 0),
		Tech:         rec.Int("tech", 0),
		WeaponIDs:    rec.Ints("weapon_id"),
		AmmoType:     rec.Int("ammo", 0),
		Value2:       rec.Int("value_2", 0),
		Value3:       rec.Int("value_3", 0),
		Description:  rec.Str("descrip", ""),
		Speciality:   rec.Str("speciality", ""),
		PartMain:     rec.Ints("part_main"),
		PartSub:      rec.Ints("part_sub"),
		PropertyRate: rec.Floats("property_rate"),
		EquipParams:  rec.Map("equip_parameters"),
		Damage:       []float64{},
		Reload:       []float64{},
		ArmorMods:    []float64{},
	}
}

// overlayEquipment applies the template table's combat curves. Fields the
// template does not define keep their primary values.
func overlayEquipment(eq *Equipment, tmpl Record) {
	if tmpl.Has("damage") {
		eq.Damage = tmpl.Floats("damage")
	}
	if tmpl.Has("reload") {
		eq.Reload = tmpl.Floats("reload")
	}
	if tmpl.Has("armor_modifiers") {
		eq.ArmorMods = tmpl.Floats("armor_modifiers")
	}
}
