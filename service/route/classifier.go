// Package route classifies trips against the home region and looks up known
// transport options between places.
package route

import (
	"tourism-server/models"
	"tourism-server/util/textutil"
)

// Classifier decides a RouteCategory from home-region membership.
// Matching is case-insensitive and ignores surrounding whitespace.
type Classifier struct {
	home map[string]struct{}
}

// NewClassifier builds a Classifier for the given home region place names.
func NewClassifier(homeRegion []models.Place) *Classifier {
	home := make(map[string]struct{}, len(homeRegion))
	for _, p := range homeRegion {
		if k := textutil.Fold(p); k != "" {
			home[k] = struct{}{}
		}
	}
	return &Classifier{home: home}
}

// InHome reports whether p is a home-region place. Empty names never are.
func (c *Classifier) InHome(p models.Place) bool {
	k := textutil.Fold(p)
	if k == "" {
		return false
	}
	_, ok := c.home[k]
	return ok
}

// Classify maps (from, to) membership onto a RouteCategory.
func (c *Classifier) Classify(from, to models.Place) models.RouteCategory {
	fromIn, toIn := c.InHome(from), c.InHome(to)
	switch {
	case fromIn && toIn:
		return models.RouteIntraHome
	case !fromIn && toIn:
		return models.RouteComingToHome
	case fromIn && !toIn:
		return models.RouteLeavingHome
	default:
		return models.RouteUnknown
	}
}
