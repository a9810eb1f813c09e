package scraper

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

const (
	defaultWikiAPI = "https://azurlane.koumakan.jp/w/api.php"
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// Collector gathers item data from remote sources with a request timeout
// and an inter-request delay, to stay polite to the upstream servers.
type Collector struct {
	client    *http.Client
	delay     time.Duration
	wikiAPI   string
	guidesURL string
}

func NewCollector() *Collector {
	return &Collector{
		client:  &http.Client{Timeout: 10 * time.Second},
		delay:   time.Second,
		wikiAPI: defaultWikiAPI,
	}
}

type source struct {
	name  string
	fetch func(itemName string) (*SourceData, error)
}

func (c *Collector) sources() []source {
	return []source{
		{name: "wiki", fetch: c.scrapeWiki},
		{name: "community", fetch: c.scrapeCommunityGuides},
	}
}

// ScrapeItem queries every source in order and merges whatever each one
// returns. A failing source is logged and skipped; the item's completeness
// reflects how much data survived.
func (c *Collector) ScrapeItem(name, typeSlug string) *Item {
	log.Info().Str("item", name).Str("type", typeSlug).Msg("<Scraper> starting scrape")
	item := NewItem(name, typeSlug)

	for _, src := range c.sources() {
		data, err := src.fetch(name)
		if err != nil {
			log.Error().Err(err).Str("source", src.name).Str("item", name).Msg("<Scraper> source failed")
			continue
		}
		if data == nil {
			continue
		}
		mergeSections(item, data)
		if data.URL != "" {
			item.Metadata.Sources = append(item.Metadata.Sources, data.URL)
		} else {
			item.Metadata.Sources = append(item.Metadata.Sources, src.name)
		}
		log.Info().Str("source", src.name).Str("item", name).Msg("<Scraper> source scraped")
	}

	item.Metadata.DataCompleteness = classify(item)
	item.Metadata.LastUpdated = time.Now().Format(time.RFC3339)
	return item
}

func mergeSections(item *Item, data *SourceData) {
	update(item.Source, data.Source)
	update(item.StatsNumerical, data.StatsNumerical)
	update(item.StatsQualitative, data.StatsQualitative)
	update(item.DerivedAnalysis, data.DerivedAnalysis)
}

func update(dst map[string]any, src map[string]any) {
	for k, v := range src {
		dst[k] = v
	}
}

func classify(item *Item) string {
	switch {
	case len(item.StatsNumerical) > 0 && len(item.DerivedAnalysis) > 0:
		return "completed"
	case len(item.StatsNumerical) > 0:
		return "partial"
	default:
		return "basic"
	}
}

// scrapeWiki asks the wiki's JSON API whether a page exists for the item
// and records its identifying metadata. A missing page is not an error.
func (c *Collector) scrapeWiki(itemName string) (*SourceData, error) {
	query := url.Values{
		"action": {"query"},
		"format": {"json"},
		"prop":   {"info"},
		"titles": {itemName},
	}
	body, err := c.get(c.wikiAPI + "?" + query.Encode())
	if err != nil {
		return nil, err
	}

	var resp struct {
		Query struct {
			Pages map[string]struct {
				PageID  int    `json:"pageid"`
				Title   string `json:"title"`
				Touched string `json:"touched"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := sonic.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode wiki response: %w", err)
	}

	for key, page := range resp.Query.Pages {
		if key == "-1" || page.PageID == 0 {
			continue
		}
		return &SourceData{
			Source: map[string]any{
				"wiki_pageid":  page.PageID,
				"wiki_title":   page.Title,
				"wiki_touched": page.Touched,
			},
			URL: c.wikiAPI + "?" + query.Encode(),
		}, nil
	}
	log.Warn().Str("item", itemName).Msg("<Scraper> no wiki page found")
	return nil, nil
}

// scrapeCommunityGuides pulls pre-structured section data from a community
// endpoint when one is configured; without one the source contributes
// nothing.
func (c *Collector) scrapeCommunityGuides(itemName string) (*SourceData, error) {
	if c.guidesURL == "" {
		log.Debug().Str("item", itemName).Msg("<Scraper> no community guide endpoint configured")
		return nil, nil
	}

	target := c.guidesURL + "?item=" + url.QueryEscape(itemName)
	body, err := c.get(target)
	if err != nil {
		return nil, err
	}

	var resp struct {
		StatsNumerical   map[string]any `json:"stats_numerical"`
		StatsQualitative map[string]any `json:"stats_qualitative_visual"`
		DerivedAnalysis  map[string]any `json:"derived_analysis"`
	}
	if err := sonic.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode community response: %w", err)
	}
	return &SourceData{
		StatsNumerical:   resp.StatsNumerical,
		StatsQualitative: resp.StatsQualitative,
		DerivedAnalysis:  resp.DerivedAnalysis,
		URL:              target,
	}, nil
}

func (c *Collector) get(target string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, target)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	time.Sleep(c.delay)
	return body, nil
}
