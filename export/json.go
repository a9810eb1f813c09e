package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"

	"github.com/Coldaine/AzurKnowledge/analyze"
	"github.com/Coldaine/AzurKnowledge/gamedata"
)

// Sorted map keys keep repeated runs byte-identical.
var json = sonic.Config{
	SortMapKeys: true,
}.Froze()

type equipmentRecord struct {
	*gamedata.Equipment
	RarityName string `json:"rarity_name"`
	NationName string `json:"nation_name"`
}

type shipRecord struct {
	*gamedata.Ship
	RarityName string `json:"rarity_name"`
	NationName string `json:"nation_name"`
}

type summary struct {
	TotalEquipment int      `json:"total_equipment"`
	TotalShips     int      `json:"total_ships"`
	TotalWeapons   int      `json:"total_weapons"`
	EquipmentTypes []string `json:"equipment_types"`
	ShipTypes      []string `json:"ship_types"`
	Nationalities  []string `json:"nationalities"`
	Rarities       []string `json:"rarities"`
}

// WriteJSON emits the grouped entity documents and the run summary.
func (e *Exporter) WriteJSON(c *gamedata.Catalog) error {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		log.Error().Err(err).Str("dir", e.dir).Msg("<Export> cannot create output directory")
		return fmt.Errorf("create output dir: %w", err)
	}

	equipByType := make(map[string][]equipmentRecord)
	for _, eq := range c.EquipmentSorted() {
		equipByType[eq.TypeName] = append(equipByType[eq.TypeName], equipmentRecord{
			Equipment:  eq,
			RarityName: gamedata.RarityName(eq.Rarity),
			NationName: gamedata.NationName(eq.Nationality),
		})
	}
	if err := e.writeJSONFile("equipment_by_type.json", equipByType); err != nil {
		return err
	}

	shipsByType := make(map[string][]shipRecord)
	for _, s := range c.ShipsSorted() {
		shipsByType[s.TypeName] = append(shipsByType[s.TypeName], shipRecord{
			Ship:       s,
			RarityName: gamedata.RarityName(s.Rarity),
			NationName: gamedata.NationName(s.Nationality),
		})
	}
	if err := e.writeJSONFile("ships_by_type.json", shipsByType); err != nil {
		return err
	}

	return e.writeJSONFile("summary.json", summary{
		TotalEquipment: len(c.Equipment),
		TotalShips:     len(c.Ships),
		TotalWeapons:   len(c.Weapons),
		EquipmentTypes: groupNames(equipByType),
		ShipTypes:      groupNames(shipsByType),
		Nationalities:  gamedata.NationNames(),
		Rarities:       gamedata.RarityNames(),
	})
}

// WriteShipVersionReport persists the duplicate-name analysis alongside the
// structured exports.
func (e *Exporter) WriteShipVersionReport(c *gamedata.Catalog) error {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		log.Error().Err(err).Str("dir", e.dir).Msg("<Export> cannot create output directory")
		return fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(e.dir, "ship_versions.txt")
	if err := os.WriteFile(path, []byte(analyze.ShipVersionReport(c)), 0o644); err != nil {
		log.Error().Err(err).Str("file", "ship_versions.txt").Msg("<Export> report write failed")
		return fmt.Errorf("write ship_versions.txt: %w", err)
	}
	return nil
}

func (e *Exporter) writeJSONFile(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Error().Err(err).Str("file", name).Msg("<Export> JSON encode failed")
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(e.dir, name), data, 0o644); err != nil {
		log.Error().Err(err).Str("file", name).Msg("<Export> JSON write failed")
		return fmt.Errorf("write %s: %w", name, err)
	}
	log.Info().Str("file", name).Msg("<Export> JSON written")
	return nil
}

func groupNames[T any](groups map[string][]T) []string {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
