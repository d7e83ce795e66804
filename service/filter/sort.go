package filter

import (
	"sort"

	"tourism-server/util/textutil"
)

// Sort keys accepted by Sort.
const (
	SortNone       = ""
	SortRatingDesc = "rating_desc"
	SortPriceAsc   = "price_asc"
	SortPriceDesc  = "price_desc"
	SortNameAsc    = "name_asc"
)

// Sorters reads the fields a sort key needs.
type Sorters[E any] struct {
	Name   func(E) string
	Price  func(E) (float64, bool)
	Rating func(E) (float64, bool)
}

// Sort returns a sorted copy of entities. It is stable, entities without the
// sorted value go last, and unknown keys return the input unchanged.
func Sort[E any](entities []E, key string, s Sorters[E]) []E {
	var less func(a, b E) bool
	switch key {
	case SortRatingDesc:
		if s.Rating != nil {
			less = byValue(s.Rating, true)
		}
	case SortPriceAsc:
		if s.Price != nil {
			less = byValue(s.Price, false)
		}
	case SortPriceDesc:
		if s.Price != nil {
			less = byValue(s.Price, true)
		}
	case SortNameAsc:
		if s.Name != nil {
			less = func(a, b E) bool { return textutil.Fold(s.Name(a)) < textutil.Fold(s.Name(b)) }
		}
	}
	if less == nil {
		return entities
	}

	out := append([]E(nil), entities...)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// ValidSortKey reports whether key is understood by Sort.
func ValidSortKey(key string) bool {
	switch key {
	case SortNone, SortRatingDesc, SortPriceAsc, SortPriceDesc, SortNameAsc:
		return true
	}
	return false
}

func byValue[E any](get func(E) (float64, bool), desc bool) func(a, b E) bool {
	return func(a, b E) bool {
		va, oka := get(a)
		vb, okb := get(b)
		if oka != okb {
			return oka
		}
		if !oka {
			return false
		}
		if desc {
			return va > vb
		}
		return va < vb
	}
}
