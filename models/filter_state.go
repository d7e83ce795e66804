package models

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"tourism-server/util/textutil"
)

const maxRating = 5.0

// FilterState is the user's current filter selection for a directory page.
// A nil pointer, an empty query or an empty tag list means "no constraint".
type FilterState struct {
	Query       string
	District    *string
	Type        *string
	PriceBucket *string
	MinPrice    *float64
	MaxPrice    *float64
	MinRating   *float64
	Tags        []string
	Sort        string
}

// FilterStateFromValues reads query args into a FilterState. Empty,
// unparseable or out-of-range values become "no constraint" instead of errors.
func FilterStateFromValues(vals url.Values) FilterState {
	s := FilterState{
		Query:       strings.TrimSpace(vals.Get("q")),
		District:    optionalString(vals.Get("district")),
		Type:        optionalString(vals.Get("type")),
		PriceBucket: optionalString(vals.Get("price_bucket")),
		MinPrice:    optionalFloat(vals.Get("min_price"), 0, math.MaxFloat64),
		MaxPrice:    optionalFloat(vals.Get("max_price"), 0, math.MaxFloat64),
		MinRating:   optionalFloat(vals.Get("min_rating"), 0, maxRating),
		Sort:        strings.TrimSpace(vals.Get("sort")),
	}
	for _, raw := range vals["amenities"] {
		for _, tag := range strings.Split(raw, ",") {
			s = s.AddTag(tag)
		}
	}
	return s
}

// ToValues is the inverse of FilterStateFromValues.
func (s FilterState) ToValues() url.Values {
	q := url.Values{}
	if s.Query != "" {
		q.Set("q", s.Query)
	}
	if s.District != nil {
		q.Set("district", *s.District)
	}
	if s.Type != nil {
		q.Set("type", *s.Type)
	}
	if s.PriceBucket != nil {
		q.Set("price_bucket", *s.PriceBucket)
	}
	if s.MinPrice != nil {
		q.Set("min_price", ftoa(*s.MinPrice))
	}
	if s.MaxPrice != nil {
		q.Set("max_price", ftoa(*s.MaxPrice))
	}
	if s.MinRating != nil {
		q.Set("min_rating", ftoa(*s.MinRating))
	}
	if len(s.Tags) > 0 {
		q.Set("amenities", strings.Join(s.Tags, ","))
	}
	if s.Sort != "" {
		q.Set("sort", s.Sort)
	}
	return q
}

// IsEmpty reports whether no dimension is constrained.
func (s FilterState) IsEmpty() bool {
	return strings.TrimSpace(s.Query) == "" &&
		s.District == nil && s.Type == nil && s.PriceBucket == nil &&
		s.MinPrice == nil && s.MaxPrice == nil && s.MinRating == nil &&
		len(s.Tags) == 0
}

func (s FilterState) WithQuery(q string) FilterState {
	s.Query = q
	return s
}

func (s FilterState) WithDistrict(v string) FilterState {
	s.District = optionalString(v)
	return s
}

func (s FilterState) WithType(v string) FilterState {
	s.Type = optionalString(v)
	return s
}

func (s FilterState) WithPriceBucket(v string) FilterState {
	s.PriceBucket = optionalString(v)
	return s
}

func (s FilterState) WithMinPrice(v *float64) FilterState {
	s.MinPrice = copyFloat(v)
	return s
}

func (s FilterState) WithMaxPrice(v *float64) FilterState {
	s.MaxPrice = copyFloat(v)
	return s
}

func (s FilterState) WithMinRating(v *float64) FilterState {
	s.MinRating = copyFloat(v)
	return s
}

func (s FilterState) WithSort(key string) FilterState {
	s.Sort = key
	return s
}

// AddTag adds the tag unless an equal one (ignoring case) is already selected.
func (s FilterState) AddTag(tag string) FilterState {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return s
	}
	for _, t := range s.Tags {
		if textutil.EqualFold(t, tag) {
			return s
		}
	}
	tags := make([]string, 0, len(s.Tags)+1)
	s.Tags = append(append(tags, s.Tags...), tag)
	return s
}

// ToggleTag adds the tag if absent and removes it if present.
func (s FilterState) ToggleTag(tag string) FilterState {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return s
	}
	tags := make([]string, 0, len(s.Tags)+1)
	found := false
	for _, t := range s.Tags {
		if textutil.EqualFold(t, tag) {
			found = true
			continue
		}
		tags = append(tags, t)
	}
	if !found {
		tags = append(tags, tag)
	}
	s.Tags = tags
	return s
}

// Reset clears every dimension but keeps the sort key.
func (s FilterState) Reset() FilterState {
	return FilterState{Sort: s.Sort}
}

// Float is a helper for building optional numeric bounds.
func Float(v float64) *float64 { return &v }

func optionalString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func optionalFloat(raw string, min, max float64) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < min || f > max {
		return nil
	}
	return &f
}

func copyFloat(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	c := *v
	return &c
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
