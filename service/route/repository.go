package route

import (
	"log/slog"
	"sort"

	"tourism-server/models"
	"tourism-server/util/textutil"
)

type pairKey struct{ from, to string }

// Repository answers route lookups from a static dataset loaded at startup.
// Records are never mutated after construction.
type Repository struct {
	classifier *Classifier
	records    map[pairKey]models.RouteRecord
	logger     *slog.Logger
}

// NewRepository indexes records by case-folded (from, to). When the dataset
// holds the same pair twice, the first record wins.
func NewRepository(classifier *Classifier, records []models.RouteRecord, logger *slog.Logger) *Repository {
	r := &Repository{
		classifier: classifier,
		records:    make(map[pairKey]models.RouteRecord, len(records)),
		logger:     logger.With("component", "route_repository"),
	}
	for _, rec := range records {
		k := key(rec.From, rec.To)
		if _, dup := r.records[k]; dup {
			r.logger.Warn("duplicate route record ignored", "from", rec.From, "to", rec.To)
			continue
		}
		r.records[k] = rec
	}
	r.logger.Info("route dataset loaded", "records", len(r.records))
	return r
}

// Len returns the number of distinct routes in the dataset.
func (r *Repository) Len() int { return len(r.records) }

// Lookup returns the record for (from, to), falling back to the reversed pair
// and finally to a synthetic record with no options. It never fails.
func (r *Repository) Lookup(from, to models.Place) models.RouteRecord {
	if rec, ok := r.records[key(from, to)]; ok {
		return clone(rec)
	}

	if rec, ok := r.records[key(to, from)]; ok {
		out := clone(rec)
		out.From, out.To = from, to
		// the stored category describes the opposite direction
		out.Type = r.classifier.Classify(from, to)
		reverse(out.Polyline)
		return out
	}

	return models.RouteRecord{
		From:    from,
		To:      to,
		Type:    r.classifier.Classify(from, to),
		Options: []models.TransportOption{},
	}
}

// Places returns every distinct place name mentioned in the dataset, sorted.
func (r *Repository) Places() []models.Place {
	seen := make(map[string]struct{})
	var out []models.Place
	add := func(p models.Place) {
		k := textutil.Fold(p)
		if k == "" {
			return
		}
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}
	for _, rec := range r.records {
		add(rec.From)
		add(rec.To)
	}
	sort.Strings(out)
	return out
}

func key(from, to models.Place) pairKey {
	return pairKey{from: textutil.Fold(from), to: textutil.Fold(to)}
}

func clone(rec models.RouteRecord) models.RouteRecord {
	out := rec
	out.Options = append([]models.TransportOption{}, rec.Options...)
	if rec.Polyline != nil {
		out.Polyline = append([]models.LatLon(nil), rec.Polyline...)
	}
	return out
}

func reverse(points []models.LatLon) {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}
