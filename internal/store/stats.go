package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath      string `json:"db_path"`
	DBSizeBytes int64  `json:"db_size_bytes"`
	Countries   int    `json:"countries"`
	Entries     int    `json:"entries"`
	Imports     int    `json:"imports"`
	HomeCountry string `json:"home_country"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM visits`).Scan(&st.Countries)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&st.Entries)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM imports`).Scan(&st.Imports)

	home, err := s.HomeCountry(ctx)
	if err != nil {
		return st, err
	}
	st.HomeCountry = home

	return st, nil
}
