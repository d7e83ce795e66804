package catalog

import (
	"encoding/json"
	"fmt"
)

// OpeningHours describes when a vendor is open on one weekday.
type OpeningHours struct {
	Day    int    `json:"day"`
	Opens  string `json:"opens"`
	Closes string `json:"closes"`
}

// UnmarshalJSON accepts opens/closes as either "HH:MM" strings or bare hour numbers.
func (o *OpeningHours) UnmarshalJSON(data []byte) error {
	type Alias OpeningHours
	aux := &struct {
		Opens  interface{} `json:"opens"`
		Closes interface{} `json:"closes"`
		*Alias
	}{
		Alias: (*Alias)(o),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	o.Opens = hourString(aux.Opens)
	o.Closes = hourString(aux.Closes)
	return nil
}

func hourString(v interface{}) string {
	switch val := v.(type) {
	case float64:
		return fmt.Sprintf("%02d:00", int(val))
	case string:
		return val
	default:
		return ""
	}
}
