package models

// SuggestionKind tags where a suggestion came from.
type SuggestionKind string

const (
	KindDistrict SuggestionKind = "district"
	KindCategory SuggestionKind = "category"
	KindTitle    SuggestionKind = "title"
	KindPlace    SuggestionKind = "place"
	KindEntity   SuggestionKind = "entity"
)

// SuggestionItem is one row of an autosuggest list. Value is whatever the
// caller needs back on selection (an id, a place name, an entity).
type SuggestionItem struct {
	Label string         `json:"label"`
	Value interface{}    `json:"value"`
	Kind  SuggestionKind `json:"kind"`
}
