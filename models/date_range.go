package models

// DateRangeSelection is a resolved, valid date range. From and To are
// zero-padded YYYY-MM-DD dates and To >= From.
type DateRangeSelection struct {
	From      string `json:"from"`
	To        string `json:"to"`
	PresetKey string `json:"presetKey"`
}
