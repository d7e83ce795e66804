package util

import (
	"encoding/json"
	"fmt"
	"os"

	"tourism-server/models"
	"tourism-server/models/catalog"
)

// ReadJSON loads a value of type T from JSON on disk.
func ReadJSON[T any](filePath string) (T, error) {
	var v T
	data, err := os.ReadFile(filePath)
	if err != nil {
		return v, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("failed to unmarshal %q: %w", filePath, err)
	}
	return v, nil
}

// ReadRoutesFromJSON loads the static route dataset.
func ReadRoutesFromJSON(filePath string) ([]models.RouteRecord, error) {
	return ReadJSON[[]models.RouteRecord](filePath)
}

// ReadVendorsFromJSON loads a vendor catalog fixture.
func ReadVendorsFromJSON(filePath string) ([]catalog.Vendor, error) {
	return ReadJSON[[]catalog.Vendor](filePath)
}

// ReadStaysFromJSON loads a stay catalog fixture.
func ReadStaysFromJSON(filePath string) ([]catalog.Stay, error) {
	return ReadJSON[[]catalog.Stay](filePath)
}

// ReadEventsFromJSON loads an event catalog fixture.
func ReadEventsFromJSON(filePath string) ([]catalog.Event, error) {
	return ReadJSON[[]catalog.Event](filePath)
}

// ReadPlacesFromJSON loads the points-of-interest fixture.
func ReadPlacesFromJSON(filePath string) ([]catalog.Place, error) {
	return ReadJSON[[]catalog.Place](filePath)
}
