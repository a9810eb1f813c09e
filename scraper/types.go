// Package scraper collects equipment records from community sources,
// best-effort: every source is optional and a failure only degrades the
// item's completeness.
package scraper

import "time"

// Item is one collected equipment document as stored in the per-type files.
type Item struct {
	Identity         Identity       `json:"identity"`
	Source           map[string]any `json:"source"`
	StatsNumerical   map[string]any `json:"stats_numerical"`
	StatsQualitative map[string]any `json:"stats_qualitative_visual"`
	DerivedAnalysis  map[string]any `json:"derived_analysis"`
	Metadata         Metadata       `json:"metadata"`
}

// Identity names the item and the canonical type slug matching the store
// file names (e.g. "destroyer_guns").
type Identity struct {
	ItemName string `json:"itemName"`
	Type     string `json:"type"`
}

// Metadata records when and how completely an item was gathered.
type Metadata struct {
	LastUpdated      string   `json:"lastUpdated"`
	DataCompleteness string   `json:"dataCompleteness"`
	Sources          []string `json:"sources"`
}

// NewItem returns an empty document in the basic completeness bucket.
func NewItem(name, typeSlug string) *Item {
	return &Item{
		Identity:         Identity{ItemName: name, Type: typeSlug},
		Source:           map[string]any{},
		StatsNumerical:   map[string]any{},
		StatsQualitative: map[string]any{},
		DerivedAnalysis:  map[string]any{},
		Metadata: Metadata{
			LastUpdated:      time.Now().Format(time.RFC3339),
			DataCompleteness: "basic",
			Sources:          []string{},
		},
	}
}

// SourceData is what one source contributes to an item: section maps that
// overlay the item's sections, plus the URL it came from.
type SourceData struct {
	Source           map[string]any
	StatsNumerical   map[string]any
	StatsQualitative map[string]any
	DerivedAnalysis  map[string]any
	URL              string
}
