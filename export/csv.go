// Package export serializes parsed catalogs to CSV and JSON documents.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Coldaine/AzurKnowledge/gamedata"
)

// Exporter writes all output documents under a single directory.
type Exporter struct {
	dir string
}

func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// Sanitize defends against spreadsheet formula injection: a cell starting
// with a formula trigger character gets a leading single quote.
func Sanitize(value string) string {
	if value == "" {
		return value
	}
	switch value[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + value
	}
	return value
}

// WriteCSV emits equipment.csv, ships.csv, and weapons.csv. Each file always
// carries its header row, even for an empty collection. A failing file is
// logged and does not stop the others.
func (e *Exporter) WriteCSV(c *gamedata.Catalog) error {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		log.Error().Err(err).Str("dir", e.dir).Msg("<Export> cannot create output directory")
		return fmt.Errorf("create output dir: %w", err)
	}

	errs := []error{
		e.writeEquipmentCSV(c),
		e.writeShipCSV(c),
		e.writeWeaponCSV(c),
	}
	return errors.Join(errs...)
}

func (e *Exporter) writeEquipmentCSV(c *gamedata.Catalog) error {
	items := c.EquipmentSorted()
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		if a.Rarity != b.Rarity {
			return a.Rarity < b.Rarity
		}
		return a.Tech < b.Tech
	})

	header := []string{"id", "name", "type_name", "rarity", "nationality", "tech", "weapon_ids", "description", "speciality"}
	rows := make([][]string, 0, len(items))
	for _, eq := range items {
		rows = append(rows, []string{
			strconv.Itoa(eq.ID),
			Sanitize(eq.Name),
			Sanitize(eq.TypeName),
			Sanitize(gamedata.RarityName(eq.Rarity)),
			Sanitize(gamedata.NationName(eq.Nationality)),
			strconv.Itoa(eq.Tech),
			Sanitize(joinInts(eq.WeaponIDs)),
			Sanitize(eq.Description),
			Sanitize(eq.Speciality),
		})
	}
	return e.writeCSVFile("equipment.csv", header, rows)
}

func (e *Exporter) writeShipCSV(c *gamedata.Catalog) error {
	ships := c.ShipsSorted()
	sort.SliceStable(ships, func(i, j int) bool {
		a, b := ships[i], ships[j]
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		if a.Rarity != b.Rarity {
			return a.Rarity < b.Rarity
		}
		return a.ID < b.ID
	})

	header := []string{"id", "name", "english_name", "type_name", "rarity", "nationality",
		"hp", "firepower", "torpedo", "antiair", "aviation", "reload",
		"armor", "hit", "evasion", "speed", "luck", "antisub"}
	rows := make([][]string, 0, len(ships))
	for _, s := range ships {
		rows = append(rows, []string{
			strconv.Itoa(s.ID),
			Sanitize(s.Name),
			Sanitize(s.EnglishName),
			Sanitize(s.TypeName),
			Sanitize(gamedata.RarityName(s.Rarity)),
			Sanitize(gamedata.NationName(s.Nationality)),
			strconv.Itoa(s.HP),
			strconv.Itoa(s.Firepower),
			strconv.Itoa(s.Torpedo),
			strconv.Itoa(s.AntiAir),
			strconv.Itoa(s.Aviation),
			strconv.Itoa(s.Reload),
			strconv.Itoa(s.Armor),
			strconv.Itoa(s.Hit),
			strconv.Itoa(s.Evasion),
			strconv.Itoa(s.Speed),
			strconv.Itoa(s.Luck),
			strconv.Itoa(s.AntiSub),
		})
	}
	return e.writeCSVFile("ships.csv", header, rows)
}

func (e *Exporter) writeWeaponCSV(c *gamedata.Catalog) error {
	header := []string{"id", "name", "damage", "reload_max", "range", "angle", "type"}
	weapons := c.WeaponsSorted()
	rows := make([][]string, 0, len(weapons))
	for _, w := range weapons {
		name := w.Name
		if name == "" {
			name = fmt.Sprintf("Weapon_%d", w.ID)
		}
		rows = append(rows, []string{
			strconv.Itoa(w.ID),
			Sanitize(name),
			strconv.Itoa(w.Damage),
			strconv.Itoa(w.ReloadMax),
			strconv.Itoa(w.Range),
			strconv.Itoa(w.Angle),
			strconv.Itoa(w.Type),
		})
	}
	return e.writeCSVFile("weapons.csv", header, rows)
}

func (e *Exporter) writeCSVFile(name string, header []string, rows [][]string) error {
	path := filepath.Join(e.dir, name)
	f, err := os.Create(path)
	if err != nil {
		log.Error().Err(err).Str("file", name).Msg("<Export> cannot create CSV file")
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s header: %w", name, err)
	}
	if err := w.WriteAll(rows); err != nil {
		log.Error().Err(err).Str("file", name).Msg("<Export> CSV write failed")
		return fmt.Errorf("write %s: %w", name, err)
	}
	log.Info().Int("rows", len(rows)).Str("file", name).Msg("<Export> CSV written")
	return nil
}

func joinInts(ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, ",")
}
