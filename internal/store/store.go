// Package store persists the travel history in SQLite.
package store

import (
	"context"
	"time"

	"github.com/jdamcd/trip-map/internal/model"
)

// ImportRecord logs one calendar import batch.
type ImportRecord struct {
	ID         string    `json:"id"`
	ImportedAt time.Time `json:"imported_at"`
	Events     int       `json:"events"`
	Visits     int       `json:"visits"`
}

// Store defines travel history persistence. The stored representation is
// the same CountryVisit array handed to presentation, held as rows rather
// than a JSON blob.
type Store interface {
	// SaveVisits replaces the stored travel history with the given one.
	SaveVisits(ctx context.Context, visits []model.CountryVisit) error

	// LoadVisits returns the stored travel history sorted by country name.
	LoadVisits(ctx context.Context) ([]model.CountryVisit, error)

	// DeleteCountry removes a country's visit and all its entries.
	DeleteCountry(ctx context.Context, countryCode string) error

	// DeleteEntry removes a single entry and drops its visit when that
	// was the last entry.
	DeleteEntry(ctx context.Context, entryID string) error

	// HomeCountry returns the configured home country (default "GB").
	HomeCountry(ctx context.Context) (string, error)

	// SetHomeCountry updates the home country setting.
	SetHomeCountry(ctx context.Context, countryCode string) error

	// RecordImport logs an import batch and returns its record.
	RecordImport(ctx context.Context, events, visits int) (*ImportRecord, error)

	// Imports lists import batches, newest first.
	Imports(ctx context.Context) ([]ImportRecord, error)

	// Close closes the store.
	Close() error
}
