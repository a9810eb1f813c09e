package analyze

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Coldaine/AzurKnowledge/gamedata"
)

// GroupShipsByName maps display names to their records. Distinct IDs under
// one name are limit-break/retrofit instances of the same ship.
func GroupShipsByName(c *gamedata.Catalog) map[string][]*gamedata.Ship {
	groups := make(map[string][]*gamedata.Ship)
	for _, s := range c.ShipsSorted() {
		groups[s.Name] = append(groups[s.Name], s)
	}
	return groups
}

// ShipVersionReport summarizes how many upgrade instances share each display
// name, plus the distribution of ID suffixes that encode upgrade states.
func ShipVersionReport(c *gamedata.Catalog) string {
	var b strings.Builder
	b.WriteString("=== Ships with Multiple Entries ===\n")

	groups := GroupShipsByName(c)
	multiEntry := 0
	shown := 0
	for _, name := range sortedNames(groups) {
		entries := groups[name]
		if len(entries) < 2 {
			continue
		}
		multiEntry++
		if shown >= 5 {
			continue
		}
		shown++
		fmt.Fprintf(&b, "\n%s: %d entries\n", name, len(entries))
		for _, s := range head(entries, 4) {
			fmt.Fprintf(&b, "  ID: %d, Star: %d, Rarity: %d\n", s.ID, s.Star, s.Rarity)
		}
	}

	b.WriteString("\n=== Summary ===\n")
	fmt.Fprintf(&b, "Total ship entries: %d\n", len(c.Ships))
	fmt.Fprintf(&b, "Unique ship names: %d\n", len(groups))
	fmt.Fprintf(&b, "Ships with multiple entries: %d\n", multiEntry)

	b.WriteString("\n=== ID Pattern Analysis ===\n")
	endings := idEndingCounts(c)
	b.WriteString("Most common ID endings (likely indicating ship states):\n")
	for _, e := range head(endings, 10) {
		fmt.Fprintf(&b, "  ...%s: %d ships\n", e.suffix, e.count)
	}
	return b.String()
}

type ending struct {
	suffix string
	count  int
}

func idEndingCounts(c *gamedata.Catalog) []ending {
	counts := make(map[string]int)
	for id := range c.Ships {
		s := strconv.Itoa(id)
		if len(s) > 2 {
			s = s[len(s)-2:]
		}
		counts[s]++
	}

	out := make([]ending, 0, len(counts))
	for suffix, count := range counts {
		out = append(out, ending{suffix: suffix, count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].suffix < out[j].suffix
	})
	return out
}
