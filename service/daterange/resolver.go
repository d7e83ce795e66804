// Package daterange turns named presets into concrete date ranges and
// remembers the last preset the user picked.
package daterange

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tourism-server/config"
	"tourism-server/models"
)

const isoDate = "2006-01-02"

const (
	Preset7d     = "7d"
	Preset30d    = "30d"
	Preset90d    = "90d"
	Preset3m     = "3m"
	Preset6m     = "6m"
	Preset12m    = "12m"
	PresetYTD    = "ytd"
	PresetCustom = "custom"
)

var (
	ErrUnknownPreset = errors.New("unknown date range preset")
	ErrInvalidRange  = errors.New("invalid date range")
)

var dayPresets = map[string]int{Preset7d: 7, Preset30d: 30, Preset90d: 90}
var monthPresets = map[string]int{Preset3m: 3, Preset6m: 6, Preset12m: 12}

// Presets lists every preset key in display order.
var Presets = []string{Preset7d, Preset30d, Preset90d, Preset3m, Preset6m, Preset12m, PresetYTD, PresetCustom}

// KnownPreset reports whether key is one of Presets.
func KnownPreset(key string) bool {
	for _, p := range Presets {
		if p == key {
			return true
		}
	}
	return false
}

// PresetStore persists the last chosen preset key.
type PresetStore interface {
	GetPreset(ctx context.Context) (string, error)
	SetPreset(ctx context.Context, key string) error
}

// Resolver computes date ranges relative to "today" in its location.
type Resolver struct {
	now    func() time.Time
	loc    *time.Location
	store  PresetStore
	logger *slog.Logger
}

// NewResolver builds a Resolver. A nil now uses time.Now; a nil loc uses time.Local.
func NewResolver(now func() time.Time, loc *time.Location, store PresetStore, logger *slog.Logger) *Resolver {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &Resolver{
		now:    now,
		loc:    loc,
		store:  store,
		logger: logger.With("component", "date_range_resolver"),
	}
}

// Today returns the current local date truncated to midnight.
func (r *Resolver) Today() time.Time {
	n := r.now().In(r.loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, r.loc)
}

// Resolve maps a preset onto {from, to}. customFrom and customTo are only
// read for the custom preset. Invalid ranges are returned as ErrInvalidRange
// and must be treated by callers as "no range selected yet".
func (r *Resolver) Resolve(presetKey, customFrom, customTo string) (models.DateRangeSelection, error) {
	today := r.Today()
	var from, to time.Time

	switch {
	case dayPresets[presetKey] > 0:
		from, to = today.AddDate(0, 0, -(dayPresets[presetKey] - 1)), today
	case monthPresets[presetKey] > 0:
		from, to = monthsBack(today, monthPresets[presetKey]), today
	case presetKey == PresetYTD:
		from, to = time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, r.loc), today
	case presetKey == PresetCustom:
		return resolveCustom(customFrom, customTo)
	default:
		return models.DateRangeSelection{}, fmt.Errorf("%w: %q", ErrUnknownPreset, presetKey)
	}

	return validate(models.DateRangeSelection{
		From:      from.Format(isoDate),
		To:        to.Format(isoDate),
		PresetKey: presetKey,
	})
}

func resolveCustom(from, to string) (models.DateRangeSelection, error) {
	if _, err := time.Parse(isoDate, from); err != nil {
		return models.DateRangeSelection{}, fmt.Errorf("%w: bad from date %q", ErrInvalidRange, from)
	}
	if _, err := time.Parse(isoDate, to); err != nil {
		return models.DateRangeSelection{}, fmt.Errorf("%w: bad to date %q", ErrInvalidRange, to)
	}
	return validate(models.DateRangeSelection{From: from, To: to, PresetKey: PresetCustom})
}

// validate relies on zero-padded ISO dates comparing lexicographically.
func validate(sel models.DateRangeSelection) (models.DateRangeSelection, error) {
	if sel.To < sel.From {
		return models.DateRangeSelection{}, fmt.Errorf("%w: %s is before %s", ErrInvalidRange, sel.To, sel.From)
	}
	return sel, nil
}

// monthsBack keeps the day of month, clamped to the last day of the target month.
func monthsBack(t time.Time, n int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month()-time.Month(n), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, t.Location())
}

// LoadPreset returns the persisted preset key, or the default when nothing
// usable is stored.
func (r *Resolver) LoadPreset(ctx context.Context) string {
	if r.store == nil {
		return config.DEFAULT_DATE_RANGE_PRESET
	}
	key, err := r.store.GetPreset(ctx)
	if err != nil {
		r.logger.Warn("failed to read stored preset, using default", "error", err)
		return config.DEFAULT_DATE_RANGE_PRESET
	}
	if !KnownPreset(key) {
		if key != "" {
			r.logger.Warn("stored preset is not recognised, using default", "preset", key)
		}
		return config.DEFAULT_DATE_RANGE_PRESET
	}
	return key
}

// SavePreset persists key. Unknown keys are rejected with ErrUnknownPreset.
func (r *Resolver) SavePreset(ctx context.Context, key string) error {
	if !KnownPreset(key) {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, key)
	}
	if r.store == nil {
		return nil
	}
	if err := r.store.SetPreset(ctx, key); err != nil {
		return fmt.Errorf("failed to save preset: %w", err)
	}
	return nil
}
