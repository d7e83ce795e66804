package autosuggest

import (
	"tourism-server/models"
	"tourism-server/util/textutil"
)

// Rank filters pool by query, putting label prefix matches ahead of other
// substring matches. Input order is kept within each group, duplicate labels
// are dropped and at most limit items are returned. An empty query yields nothing.
func Rank(pool []models.SuggestionItem, query string, limit int) []models.SuggestionItem {
	q := textutil.Fold(query)
	if q == "" || limit <= 0 {
		return nil
	}

	var prefix, contains []models.SuggestionItem
	seen := make(map[string]struct{})
	for _, item := range pool {
		label := textutil.Fold(item.Label)
		if _, dup := seen[label]; dup {
			continue
		}
		switch {
		case textutil.HasPrefixFold(label, q):
			prefix = append(prefix, item)
		case textutil.ContainsFold(label, q):
			contains = append(contains, item)
		default:
			continue
		}
		seen[label] = struct{}{}
	}

	out := append(prefix, contains...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
