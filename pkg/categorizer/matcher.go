// Package categorizer suggests a category for a transaction based on its
// free-text description. Matching is deterministic rule-based substring
// containment: no tokenization, no word boundaries. Partial-word overlaps
// ("alat" inside "peralatan") are an accepted limitation of the table.
package categorizer

import (
	"sort"
	"strings"
)

type entry struct {
	keyword    string
	categoryID string
}

// Matcher holds the flattened keyword table, sorted once by keyword length
// descending so that a longer, more specific keyword ("airpam") always wins
// over a shorter one that is its substring ("air"). The sort is stable, so
// ties keep the table's source order.
type Matcher struct {
	entries []entry
}

func NewMatcher() *Matcher {
	var entries []entry
	for _, group := range rawKeywords {
		for _, kw := range group.keywords {
			entries = append(entries, entry{keyword: kw, categoryID: group.categoryID})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].keyword) > len(entries[j].keyword)
	})
	return &Matcher{entries: entries}
}

// Suggest scans the table in order and returns the category id of the first
// keyword contained in the lower-cased description. A hit whose category no
// longer exists (known reports false) yields no suggestion, so a dangling id
// is never proposed. Absence of a match is a normal outcome, not an error.
func (m *Matcher) Suggest(description string, known func(categoryID string) bool) (string, bool) {
	lower := strings.ToLower(description)
	for _, e := range m.entries {
		if !strings.Contains(lower, e.keyword) {
			continue
		}
		if known != nil && !known(e.categoryID) {
			return "", false
		}
		return e.categoryID, true
	}
	return "", false
}
