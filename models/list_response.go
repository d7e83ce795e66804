package models

import "encoding/json"

// ListResponse is the envelope returned by the upstream list endpoints.
// Some endpoints use "results", others "items"; Next is set when more
// pages are available.
type ListResponse struct {
	Results []json.RawMessage `json:"results"`
	Items   []json.RawMessage `json:"items"`
	Next    string            `json:"next"`
	Count   int               `json:"count,omitempty"`
}

// Rows returns whichever of Results or Items the endpoint populated.
func (r ListResponse) Rows() []json.RawMessage {
	if len(r.Results) > 0 {
		return r.Results
	}
	return r.Items
}
