package gamedata

import "github.com/rs/zerolog/log"

// ParseWeapons builds the weapon collection. The richer weapon_property
// table is preferred; bullet_template is the fallback for snapshots that
// predate it. Names come from a separate table and may be blank.
func (p *Parser) ParseWeapons() int {
	log.Info().Msg("<Parser> parsing weapon data")

	p.catalog.WeaponNames = p.loader.LoadNames("weapon_name.json")

	table := p.loader.Load("weapon_property.json")
	if len(table) == 0 {
		log.Info().Msg("<Parser> weapon_property.json empty or missing, using bullet_template.json")
		table = p.loader.Load("bullet_template.json")
	}

	count := 0
	for _, key := range sortedKeys(table) {
		id, ok := numericKey(key)
		if !ok {
			log.Error().Str("id", key).Msg("<Parser> weapon key is not numeric, record skipped")
			continue
		}

		rec := table[key]
		p.catalog.Weapons[id] = &Weapon{
			ID:         id,
			Name:       p.catalog.WeaponNames[id],
			Damage:     rec.Int("damage", 0),
			ReloadMax:  rec.Int("reload_max", 0),
			BulletID:   rec.Int("bullet_ID", 0),
			BarrageID:  rec.Int("barrage_ID", 0),
			SpawnBound: rec.Str("spawn_bound", ""),
			FireFX:     rec.Str("fire_fx", ""),
			Type:       rec.Int("type", 0),
			Range:      rec.Int("range", 0),
			Angle:      rec.Int("angle", 0),
			MinRange:   rec.Int("min_range", 0),
			AimType:    rec.Int("aim_type", 0),
		}
		count++
	}

	log.Info().Int("count", count).Msg("<Parser> weapons parsed")
	return count
}
