package store

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/jdamcd/trip-map/internal/model"
)

// Export is the JSON envelope written by the export command.
type Export struct {
	ExportDate time.Time            `json:"exportDate"`
	Visits     []model.CountryVisit `json:"visits"`
}

// MarshalExport renders a travel history as indented export JSON.
func MarshalExport(visits []model.CountryVisit) ([]byte, error) {
	return json.MarshalIndent(Export{
		ExportDate: time.Now().UTC(),
		Visits:     visits,
	}, "", "  ")
}

// ParseExport reads visits back from export JSON. Accepts both the
// envelope form and a bare visit array.
func ParseExport(data []byte) ([]model.CountryVisit, error) {
	var env Export
	if err := json.Unmarshal(data, &env); err == nil && env.Visits != nil {
		return env.Visits, nil
	}

	var visits []model.CountryVisit
	if err := json.Unmarshal(data, &visits); err == nil && visits != nil {
		return visits, nil
	}

	return nil, errors.New("unrecognized export format")
}
