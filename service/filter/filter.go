// Package filter applies a FilterState to an in-memory entity list.
//
// Apply is pure and keeps the input order. Sorting is a separate step (see
// Sort) so that callers opt into it explicitly.
package filter

import (
	"tourism-server/models"
	"tourism-server/util/textutil"
)

// Accessors tells the engine how to read each filterable field of E.
// A nil accessor means the entity kind has no such field and the matching
// filter dimension is ignored.
type Accessors[E any] struct {
	// Text returns the fields searched by the free-text query.
	Text        func(E) []string
	District    func(E) string
	Type        func(E) string
	PriceBucket func(E) string
	// Price and Rating report ok=false when the entity has no value; such an
	// entity never satisfies an active bound on that dimension.
	Price  func(E) (float64, bool)
	Rating func(E) (float64, bool)
	Tags   func(E) []string
}

type predicate[E any] func(E) bool

// Apply returns the entities that satisfy every active dimension of state.
// An empty state returns the input unchanged.
func Apply[E any](entities []E, state models.FilterState, acc Accessors[E]) []E {
	if state.IsEmpty() {
		return entities
	}
	preds := predicates(state, acc)
	if len(preds) == 0 {
		return entities
	}

	out := make([]E, 0, len(entities))
	for _, e := range entities {
		if matchAll(e, preds) {
			out = append(out, e)
		}
	}
	return out
}

func matchAll[E any](e E, preds []predicate[E]) bool {
	for _, p := range preds {
		if !p(e) {
			return false
		}
	}
	return true
}

func predicates[E any](s models.FilterState, acc Accessors[E]) []predicate[E] {
	var preds []predicate[E]

	if q := textutil.Fold(s.Query); q != "" && acc.Text != nil {
		preds = append(preds, func(e E) bool {
			for _, field := range acc.Text(e) {
				if textutil.ContainsFold(field, q) {
					return true
				}
			}
			return false
		})
	}

	preds = appendCategorical(preds, s.District, acc.District)
	preds = appendCategorical(preds, s.Type, acc.Type)
	preds = appendCategorical(preds, s.PriceBucket, acc.PriceBucket)

	if s.MinPrice != nil && acc.Price != nil {
		min := *s.MinPrice
		preds = append(preds, func(e E) bool {
			v, ok := acc.Price(e)
			return ok && v >= min
		})
	}
	if s.MaxPrice != nil && acc.Price != nil {
		max := *s.MaxPrice
		preds = append(preds, func(e E) bool {
			v, ok := acc.Price(e)
			return ok && v <= max
		})
	}
	if s.MinRating != nil && acc.Rating != nil {
		min := *s.MinRating
		preds = append(preds, func(e E) bool {
			v, ok := acc.Rating(e)
			return ok && v >= min
		})
	}

	if len(s.Tags) > 0 && acc.Tags != nil {
		want := make([]string, 0, len(s.Tags))
		for _, t := range s.Tags {
			if f := textutil.Fold(t); f != "" {
				want = append(want, f)
			}
		}
		if len(want) > 0 {
			preds = append(preds, func(e E) bool {
				return hasAllTags(acc.Tags(e), want)
			})
		}
	}

	return preds
}

func appendCategorical[E any](preds []predicate[E], selected *string, get func(E) string) []predicate[E] {
	if selected == nil || get == nil {
		return preds
	}
	want := textutil.Fold(*selected)
	if want == "" {
		return preds
	}
	return append(preds, func(e E) bool {
		return textutil.Fold(get(e)) == want
	})
}

// hasAllTags reports whether every folded tag in want is among have.
func hasAllTags(have []string, want []string) bool {
	set := make(map[string]struct{}, len(have))
	for _, h := range have {
		set[textutil.Fold(h)] = struct{}{}
	}
	for _, w := range want {
		if _, ok := set[w]; !ok {
			return false
		}
	}
	return true
}
