package scraper

import (
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"

	"github.com/Coldaine/AzurKnowledge/progress"
)

// SaveItem writes the item into its per-type store file, replacing an
// existing record with the same name or appending a new one, then records
// the resulting completeness in the tracker. Returns the item's bucket.
func SaveItem(item *Item, dir string, tracker *progress.Tracker) string {
	path := filepath.Join(dir, item.Identity.Type+".json")
	items := loadItems(path)

	replaced := false
	for i := range items {
		if items[i].Identity.ItemName == item.Identity.ItemName {
			items[i] = *item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, *item)
	}

	status := item.Metadata.DataCompleteness
	if err := writeItems(path, items); err != nil {
		log.Error().Err(err).Str("file", path).Msg("<Scraper> store write failed")
		status = "failed"
	}

	if tracker != nil {
		if err := tracker.Update(item.Identity.ItemName, status); err != nil {
			log.Error().Err(err).Str("item", item.Identity.ItemName).Msg("<Scraper> progress update failed")
		}
	}
	return status
}

func loadItems(path string) []Item {
	data, err := os.ReadFile(path)
	if err != nil {
		return []Item{}
	}
	var items []Item
	if err := sonic.Unmarshal(data, &items); err != nil {
		log.Warn().Err(err).Str("file", path).Msg("<Scraper> invalid store file, starting fresh")
		return []Item{}
	}
	return items
}

func writeItems(path string, items []Item) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := sonic.ConfigDefault.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
