package scraper

import (
	"os"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"

	"github.com/Coldaine/AzurKnowledge/progress"
)

// CollectionEntry names one item to collect and its type slug.
type CollectionEntry struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// One representative item per equipment category, used when no collection
// list file is supplied.
var defaultCollection = []CollectionEntry{
	{Name: `Twin 127mm (5"/38 Mk 38)`, Type: "destroyer_guns"},
	{Name: "Triple 152mm Main Gun", Type: "light_cruiser_guns"},
	{Name: "203mm/53 Twin Gun Mount", Type: "heavy_cruiser_guns"},
	{Name: "305mm/50 Twin Gun Mount", Type: "large_cruiser_guns"},
	{Name: "410mm/45 Triple Gun Mount", Type: "battleship_guns"},
	{Name: "Type 96 25mm AA Gun", Type: "anti_air_guns"},
	{Name: "Type 93 Torpedo", Type: "ship_torpedoes"},
	{Name: "Type 95 Torpedo", Type: "submarine_torpedoes"},
	{Name: "A6M Zero Fighter", Type: "fighters"},
	{Name: "D3A1 Val Dive Bomber", Type: "dive_bombers"},
	{Name: "B5N2 Kate Torpedo Bomber", Type: "torpedo_bombers"},
	{Name: "F1M Pete Seaplane", Type: "seaplanes"},
	{Name: "Radar Type 0", Type: "auxiliary_equipment"},
	{Name: "Fire Control System", Type: "augment_modules"},
	{Name: "Depth Charge", Type: "anti_submarine_equipment"},
}

// LoadCollectionList reads the item list file, falling back to the built-in
// list when the file is missing or unreadable.
func LoadCollectionList(path string) []CollectionEntry {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Info().Str("file", path).Msg("<Scraper> no collection list file, using built-in list")
		return defaultCollection
	}
	var entries []CollectionEntry
	if err := sonic.Unmarshal(data, &entries); err != nil {
		log.Error().Err(err).Str("file", path).Msg("<Scraper> invalid collection list, using built-in list")
		return defaultCollection
	}
	return entries
}

const commitBatchSize = 5

// RunCollection scrapes and stores every entry, committing a snapshot every
// few items. Returns the number of items processed.
func (c *Collector) RunCollection(entries []CollectionEntry, dir string, tracker *progress.Tracker, commitPaths []string) int {
	var batch, statuses []string

	flush := func() {
		if len(batch) == 0 {
			return
		}
		progress.Commit(commitPaths, batch, batchStatus(statuses))
		batch = nil
		statuses = nil
	}

	for _, entry := range entries {
		log.Info().Str("item", entry.Name).Msg("<Scraper> processing")
		item := c.ScrapeItem(entry.Name, entry.Type)
		status := SaveItem(item, dir, tracker)

		batch = append(batch, entry.Name)
		statuses = append(statuses, status)
		if len(batch) >= commitBatchSize {
			flush()
		}
	}
	flush()

	return len(entries)
}

// batchStatus collapses a batch's statuses into one commit label.
func batchStatus(statuses []string) string {
	for _, s := range statuses {
		if s != statuses[0] {
			return "Mixed"
		}
	}
	if len(statuses) == 0 {
		return "Mixed"
	}
	return statuses[0]
}
