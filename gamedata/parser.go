package gamedata

import (
	"sort"
	"strconv"
)

// Parser builds a Catalog from a data snapshot directory. Each Parse method
// reports the number of successfully parsed records; a bad record is logged
// and skipped, never failing the batch.
type Parser struct {
	loader  *Loader
	catalog *Catalog
}

func NewParser(dataDir string) *Parser {
	return &Parser{
		loader:  NewLoader(dataDir),
		catalog: NewCatalog(),
	}
}

// Catalog returns the collections parsed so far.
func (p *Parser) Catalog() *Catalog {
	return p.catalog
}

// ParseAll runs every parser in dependency order (weapons first so equipment
// reports can resolve weapon references).
func (p *Parser) ParseAll() (weapons, equipment, ships int) {
	weapons = p.ParseWeapons()
	equipment = p.ParseEquipment()
	ships = p.ParseShips()
	return weapons, equipment, ships
}

// numericKey parses a string-encoded numeric table key.
func numericKey(key string) (int, bool) {
	id, err := strconv.Atoi(key)
	if err != nil {
		return 0, false
	}
	return id, true
}

// sortedKeys returns the table's keys in ascending numeric order; the rare
// non-numeric key sorts last so its per-record diagnostic still fires.
func sortedKeys(t Table) []string {
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aok := numericKey(keys[i])
		b, bok := numericKey(keys[j])
		if aok && bok {
			return a < b
		}
		if aok != bok {
			return aok
		}
		return keys[i] < keys[j]
	})
	return keys
}
