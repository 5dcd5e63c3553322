package store

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/jdamcd/trip-map/internal/model"
)

// defaultHomeCountry is used until the user configures one.
const defaultHomeCountry = "GB"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS visits (
		id           TEXT PRIMARY KEY,
		country_code TEXT NOT NULL UNIQUE,
		country_name TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_visits_name ON visits(country_name);

	CREATE TABLE IF NOT EXISTS entries (
		id          TEXT PRIMARY KEY,
		visit_id    TEXT NOT NULL REFERENCES visits(id) ON DELETE CASCADE,
		start_date  TEXT NOT NULL,
		end_date    TEXT,
		source      TEXT NOT NULL,
		event_title TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_entries_visit ON entries(visit_id);
	CREATE INDEX IF NOT EXISTS idx_entries_start ON entries(start_date);

	CREATE TABLE IF NOT EXISTS imports (
		id          TEXT PRIMARY KEY,
		imported_at TEXT NOT NULL,
		events      INTEGER NOT NULL,
		visits      INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) SaveVisits(ctx context.Context, visits []model.CountryVisit) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM visits`); err != nil {
		return fmt.Errorf("clear visits: %w", err)
	}

	for _, visit := range visits {
		// Visits arrive from the aggregator non-empty; an emptied visit
		// is dropped rather than stored.
		if len(visit.Entries) == 0 {
			continue
		}
		id := visit.ID
		if id == "" {
			id = s.newID()
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO visits (id, country_code, country_name) VALUES (?, ?, ?)`,
			id, visit.CountryCode, visit.CountryName); err != nil {
			return fmt.Errorf("insert visit %s: %w", visit.CountryCode, err)
		}
		for _, entry := range visit.Entries {
			entryID := entry.ID
			if entryID == "" {
				entryID = s.newID()
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO entries (id, visit_id, start_date, end_date, source, event_title)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				entryID, id, entry.StartDate, nullable(entry.EndDate),
				string(entry.Source), nullable(entry.EventTitle)); err != nil {
				return fmt.Errorf("insert entry: %w", err)
			}
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) LoadVisits(ctx context.Context) ([]model.CountryVisit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.id, v.country_code, v.country_name,
		       e.id, e.start_date, e.end_date, e.source, e.event_title
		FROM visits v
		JOIN entries e ON e.visit_id = v.id
		ORDER BY v.country_name, v.id, e.start_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var visits []model.CountryVisit
	var current *model.CountryVisit
	for rows.Next() {
		var visitID, code, name string
		var entry model.VisitEntry
		var endDate, title sql.NullString
		var source string
		if err := rows.Scan(&visitID, &code, &name,
			&entry.ID, &entry.StartDate, &endDate, &source, &title); err != nil {
			return nil, err
		}
		entry.EndDate = endDate.String
		entry.EventTitle = title.String
		entry.Source = model.Source(source)

		if current == nil || current.ID != visitID {
			visits = append(visits, model.CountryVisit{
				ID: visitID, CountryCode: code, CountryName: name,
			})
			current = &visits[len(visits)-1]
		}
		current.Entries = append(current.Entries, entry)
	}
	return visits, rows.Err()
}

func (s *SQLiteStore) DeleteCountry(ctx context.Context, countryCode string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM visits WHERE country_code = ?`, countryCode)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no visit for country %s", countryCode)
	}
	return nil
}

func (s *SQLiteStore) DeleteEntry(ctx context.Context, entryID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var visitID string
	if err := tx.QueryRowContext(ctx,
		`SELECT visit_id FROM entries WHERE id = ?`, entryID).Scan(&visitID); err != nil {
		return fmt.Errorf("entry not found: %s", entryID)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, entryID); err != nil {
		return err
	}

	// A visit with no entries left no longer exists.
	var remaining int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM entries WHERE visit_id = ?`, visitID).Scan(&remaining); err != nil {
		return err
	}
	if remaining == 0 {
		if _, err := tx.ExecContext(ctx, `DELETE FROM visits WHERE id = ?`, visitID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) HomeCountry(ctx context.Context) (string, error) {
	var code string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = 'home_country'`).Scan(&code)
	if err == sql.ErrNoRows {
		return defaultHomeCountry, nil
	}
	if err != nil {
		return "", err
	}
	return code, nil
}

func (s *SQLiteStore) SetHomeCountry(ctx context.Context, countryCode string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES ('home_country', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, countryCode)
	return err
}

func (s *SQLiteStore) RecordImport(ctx context.Context, events, visits int) (*ImportRecord, error) {
	rec := &ImportRecord{
		ID:         s.newID(),
		ImportedAt: time.Now().UTC(),
		Events:     events,
		Visits:     visits,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO imports (id, imported_at, events, visits) VALUES (?, ?, ?, ?)`,
		rec.ID, rec.ImportedAt.Format(time.RFC3339), rec.Events, rec.Visits)
	if err != nil {
		return nil, fmt.Errorf("record import: %w", err)
	}
	return rec, nil
}

func (s *SQLiteStore) Imports(ctx context.Context) ([]ImportRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, imported_at, events, visits FROM imports ORDER BY imported_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ImportRecord
	for rows.Next() {
		var rec ImportRecord
		var at string
		if err := rows.Scan(&rec.ID, &at, &rec.Events, &rec.Visits); err != nil {
			return nil, err
		}
		rec.ImportedAt, _ = time.Parse(time.RFC3339, at)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
