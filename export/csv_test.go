package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Coldaine/AzurKnowledge/gamedata"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"=SUM(A1)", "'=SUM(A1)"},
		{"+1d6", "'+1d6"},
		{"-30mm", "'-30mm"},
		{"@mention", "'@mention"},
		{"\tlead tab", "'\tlead tab"},
		{"\rlead cr", "'\rlead cr"},
		{"Twin 127mm", "Twin 127mm"},
		{"a=b", "a=b"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Sanitize(tc.in), "input %q", tc.in)
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteCSVEmptyCatalogWritesHeaders(t *testing.T) {
	dir := t.TempDir()
	exporter := NewExporter(dir)

	require.NoError(t, exporter.WriteCSV(gamedata.NewCatalog()))

	for _, name := range []string{"equipment.csv", "ships.csv", "weapons.csv"} {
		rows := readCSV(t, filepath.Join(dir, name))
		require.Len(t, rows, 1, "%s carries exactly the header row", name)
		assert.Equal(t, "id", rows[0][0])
	}
}

func TestWriteCSVEquipmentSortAndCells(t *testing.T) {
	c := gamedata.NewCatalog()
	c.Equipment[1] = &gamedata.Equipment{ID: 1, Name: "=Formula", Type: 2, TypeName: "CL Gun", Rarity: 3, Tech: 1, WeaponIDs: []int{10, 20}}
	c.Equipment[2] = &gamedata.Equipment{ID: 2, Name: "Plain", Type: 1, TypeName: "DD Gun", Rarity: 2, Tech: 2}
	c.Equipment[3] = &gamedata.Equipment{ID: 3, Name: "Later", Type: 1, TypeName: "DD Gun", Rarity: 4, Tech: 1}

	dir := t.TempDir()
	require.NoError(t, NewExporter(dir).WriteCSV(c))

	rows := readCSV(t, filepath.Join(dir, "equipment.csv"))
	require.Len(t, rows, 4)
	// Sorted by type, then rarity, then tech tier.
	assert.Equal(t, "2", rows[1][0])
	assert.Equal(t, "3", rows[2][0])
	assert.Equal(t, "1", rows[3][0])
	assert.Equal(t, "'=Formula", rows[3][1])
	assert.Equal(t, "10,20", rows[3][6])
	assert.Equal(t, "Elite", rows[3][3])
}

func TestWriteCSVWeaponNameFallback(t *testing.T) {
	c := gamedata.NewCatalog()
	c.Weapons[77] = &gamedata.Weapon{ID: 77, Damage: 12}

	dir := t.TempDir()
	require.NoError(t, NewExporter(dir).WriteCSV(c))

	rows := readCSV(t, filepath.Join(dir, "weapons.csv"))
	require.Len(t, rows, 2)
	assert.Equal(t, "Weapon_77", rows[1][1])
}

func TestWriteCSVShipRow(t *testing.T) {
	c := gamedata.NewCatalog()
	c.Ships[30708] = &gamedata.Ship{
		ID: 30708, Name: "Example", Type: 3, TypeName: "Light Cruiser",
		Rarity: 3, Nationality: 1, HP: 5000, Firepower: 100,
	}

	dir := t.TempDir()
	require.NoError(t, NewExporter(dir).WriteCSV(c))

	rows := readCSV(t, filepath.Join(dir, "ships.csv"))
	require.Len(t, rows, 2)
	row := rows[1]
	assert.Equal(t, "30708", row[0])
	assert.Equal(t, "Example", row[1])
	assert.Equal(t, "Elite", row[4])
	assert.Equal(t, "Eagle Union", row[5])
	assert.Equal(t, "5000", row[6])
	assert.Equal(t, "0", row[17], "missing stats export as zero")
}

func TestWriteCSVIdempotent(t *testing.T) {
	c := gamedata.NewCatalog()
	c.Equipment[1] = &gamedata.Equipment{ID: 1, Name: "Gun", Type: 1, TypeName: "DD Gun", Rarity: 2}
	c.Ships[2] = &gamedata.Ship{ID: 2, Name: "Ship", Type: 1, TypeName: "Destroyer", Rarity: 2}
	c.Weapons[3] = &gamedata.Weapon{ID: 3, Name: "W"}

	dir := t.TempDir()
	exporter := NewExporter(dir)
	require.NoError(t, exporter.WriteCSV(c))

	first := map[string]string{}
	for _, name := range []string{"equipment.csv", "ships.csv", "weapons.csv"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		first[name] = string(data)
	}

	require.NoError(t, exporter.WriteCSV(c))
	for name, want := range first {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, want, string(data), "%s changed between identical runs", name)
	}
}

func TestJoinInts(t *testing.T) {
	assert.Equal(t, "", joinInts(nil))
	assert.Equal(t, "1", joinInts([]int{1}))
	assert.False(t, strings.HasSuffix(joinInts([]int{1, 2, 3}), ","))
	assert.Equal(t, "1,2,3", joinInts([]int{1, 2, 3}))
}
