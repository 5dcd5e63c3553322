package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jdamcd/trip-map/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "visits.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleVisits() []model.CountryVisit {
	return []model.CountryVisit{
		{
			ID: "v-fr", CountryCode: "FR", CountryName: "France",
			Entries: []model.VisitEntry{
				{ID: "e-1", StartDate: "2024-01-10T00:00:00Z", EndDate: "2024-01-15T00:00:00Z",
					Source: model.SourceCalendar, EventTitle: "Paris trip"},
				{ID: "e-2", StartDate: "2024-03-01T00:00:00Z",
					Source: model.SourceManual, EventTitle: "Weekend"},
			},
		},
		{
			ID: "v-jp", CountryCode: "JP", CountryName: "Japan",
			Entries: []model.VisitEntry{
				{ID: "e-3", StartDate: "2024-04-01T00:00:00Z", EndDate: "2024-04-10T00:00:00Z",
					Source: model.SourceCalendar, EventTitle: "Tokyo"},
			},
		},
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SaveVisits(ctx, sampleVisits()); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.LoadVisits(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d visits, want 2", len(got))
	}
	if got[0].CountryName != "France" || got[1].CountryName != "Japan" {
		t.Errorf("order: %s, %s", got[0].CountryName, got[1].CountryName)
	}
	if len(got[0].Entries) != 2 {
		t.Fatalf("France has %d entries, want 2", len(got[0].Entries))
	}
	e := got[0].Entries[0]
	if e.ID != "e-1" || e.EndDate != "2024-01-15T00:00:00Z" || e.EventTitle != "Paris trip" {
		t.Errorf("entry: %+v", e)
	}
	if got[0].Entries[1].EndDate != "" {
		t.Errorf("open-ended entry got end %q", got[0].Entries[1].EndDate)
	}
	if got[0].Entries[1].Source != model.SourceManual {
		t.Errorf("source: %s", got[0].Entries[1].Source)
	}
}

func TestSaveVisits_ReplacesPreviousState(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SaveVisits(ctx, sampleVisits()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.SaveVisits(ctx, sampleVisits()[:1]); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, err := s.LoadVisits(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].CountryCode != "FR" {
		t.Errorf("got %d visits, want only France after replace", len(got))
	}
}

func TestSaveVisits_GeneratesMissingIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	visits := []model.CountryVisit{{
		CountryCode: "DE", CountryName: "Germany",
		Entries: []model.VisitEntry{{StartDate: "2024-06-01T00:00:00Z", Source: model.SourceManual}},
	}}
	if err := s.SaveVisits(ctx, visits); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.LoadVisits(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got[0].ID == "" || got[0].Entries[0].ID == "" {
		t.Errorf("expected generated IDs, got %+v", got[0])
	}
}

func TestSaveVisits_SkipsEmptyVisits(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	visits := append(sampleVisits(), model.CountryVisit{
		ID: "v-empty", CountryCode: "IT", CountryName: "Italy",
	})
	if err := s.SaveVisits(ctx, visits); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.LoadVisits(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, v := range got {
		if v.CountryCode == "IT" {
			t.Error("entry-less visit should not be stored")
		}
	}
}

func TestDeleteCountry(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SaveVisits(ctx, sampleVisits()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.DeleteCountry(ctx, "FR"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err := s.LoadVisits(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].CountryCode != "JP" {
		t.Errorf("got %+v after deleting France", got)
	}

	if err := s.DeleteCountry(ctx, "FR"); err == nil {
		t.Error("deleting an absent country should fail")
	}
}

func TestDeleteEntry(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SaveVisits(ctx, sampleVisits()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.DeleteEntry(ctx, "e-1"); err != nil {
		t.Fatalf("delete entry: %v", err)
	}
	got, err := s.LoadVisits(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || len(got[0].Entries) != 1 {
		t.Errorf("got %+v", got)
	}

	// Removing a visit's last entry removes the visit itself.
	if err := s.DeleteEntry(ctx, "e-3"); err != nil {
		t.Fatalf("delete last entry: %v", err)
	}
	got, err = s.LoadVisits(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, v := range got {
		if v.CountryCode == "JP" {
			t.Error("visit should be gone once its last entry is deleted")
		}
	}

	if err := s.DeleteEntry(ctx, "nope"); err == nil {
		t.Error("deleting an unknown entry should fail")
	}
}

func TestHomeCountry(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	got, err := s.HomeCountry(ctx)
	if err != nil {
		t.Fatalf("home country: %v", err)
	}
	if got != "GB" {
		t.Errorf("default home country = %s, want GB", got)
	}

	if err := s.SetHomeCountry(ctx, "JP"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.SetHomeCountry(ctx, "FR"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err = s.HomeCountry(ctx)
	if err != nil {
		t.Fatalf("home country: %v", err)
	}
	if got != "FR" {
		t.Errorf("got %s, want FR", got)
	}
}

func TestImports(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec, err := s.RecordImport(ctx, 120, 4)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if rec.ID == "" || rec.Events != 120 || rec.Visits != 4 {
		t.Errorf("record: %+v", rec)
	}

	got, err := s.Imports(ctx)
	if err != nil {
		t.Fatalf("imports: %v", err)
	}
	if len(got) != 1 || got[0].ID != rec.ID {
		t.Errorf("got %+v", got)
	}
	if got[0].ImportedAt.IsZero() {
		t.Error("imported_at not round-tripped")
	}
}

func TestExportRoundtrip(t *testing.T) {
	visits := sampleVisits()
	data, err := MarshalExport(visits)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"exportDate"`) {
		t.Error("export envelope missing exportDate")
	}

	got, err := ParseExport(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 2 || got[0].CountryCode != "FR" {
		t.Errorf("got %+v", got)
	}
}

func TestParseExport_BareArray(t *testing.T) {
	data := []byte(`[{"id":"v1","countryCode":"JP","countryName":"Japan","entries":[]}]`)
	got, err := ParseExport(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 1 || got[0].CountryCode != "JP" {
		t.Errorf("got %+v", got)
	}
}

func TestParseExport_Invalid(t *testing.T) {
	if _, err := ParseExport([]byte(`{"something":"else"}`)); err == nil {
		t.Error("expected an error for unrecognized JSON")
	}
}
