package stats

import (
	"testing"

	"github.com/jdamcd/trip-map/internal/model"
)

func visit(code, name string, starts ...string) model.CountryVisit {
	v := model.CountryVisit{ID: "v-" + code, CountryCode: code, CountryName: name}
	for i, start := range starts {
		v.Entries = append(v.Entries, model.VisitEntry{
			ID:        "e-" + code + string(rune('a'+i)),
			StartDate: start,
			Source:    model.SourceCalendar,
		})
	}
	return v
}

func TestTripsPerYear(t *testing.T) {
	visits := []model.CountryVisit{
		visit("FR", "France", "2023-05-01T00:00:00Z", "2024-02-01T00:00:00Z"),
		visit("JP", "Japan", "2024-04-01T00:00:00Z"),
	}

	years := TripsPerYear(visits, 2023, 2025)
	if len(years) != 3 {
		t.Fatalf("got %d years, want 3", len(years))
	}
	if years[0].Year != 2023 || years[0].Trips != 1 {
		t.Errorf("2023: %+v", years[0])
	}
	if years[1].Year != 2024 || years[1].Trips != 2 {
		t.Errorf("2024: %+v", years[1])
	}
	if years[2].Year != 2025 || years[2].Trips != 0 || len(years[2].Countries) != 0 {
		t.Errorf("2025 should be zero-filled: %+v", years[2])
	}

	got := years[1].Countries
	if len(got) != 2 {
		t.Fatalf("2024 countries: %+v", got)
	}
	// Equal counts fall back to name order.
	if got[0].Name != "France" || got[1].Name != "Japan" {
		t.Errorf("2024 country order: %+v", got)
	}
}

func TestTripsPerYear_CountOrdering(t *testing.T) {
	visits := []model.CountryVisit{
		visit("FR", "France", "2024-02-01T00:00:00Z"),
		visit("JP", "Japan", "2024-03-01T00:00:00Z", "2024-08-01T00:00:00Z"),
	}
	years := TripsPerYear(visits, 2024, 2024)
	if len(years) != 1 {
		t.Fatalf("got %d years, want 1", len(years))
	}
	got := years[0].Countries
	if got[0].Code != "JP" || got[0].Count != 2 {
		t.Errorf("most-visited country should come first: %+v", got)
	}
}

func TestTripsPerYear_DefaultRangeStartsAtEarliestEntry(t *testing.T) {
	visits := []model.CountryVisit{
		visit("FR", "France", "2022-06-01T00:00:00Z"),
	}
	years := TripsPerYear(visits, 0, 0)
	if len(years) == 0 || years[0].Year != 2022 {
		t.Fatalf("range should start at 2022: %+v", years)
	}
	if len(years) < 2 {
		t.Errorf("range should extend to the current year, got %d years", len(years))
	}
}

func TestTripsPerYear_Empty(t *testing.T) {
	if got := TripsPerYear(nil, 0, 0); got != nil {
		t.Errorf("got %+v, want nil for an empty history", got)
	}
}

func TestContinentCoverage(t *testing.T) {
	visits := []model.CountryVisit{
		visit("FR", "France", "2024-02-01T00:00:00Z"),
		visit("DE", "Germany", "2024-03-01T00:00:00Z", "2024-07-01T00:00:00Z"),
		visit("JP", "Japan", "2024-04-01T00:00:00Z"),
	}

	got := ContinentCoverage(visits)
	if len(got) != 2 {
		t.Fatalf("got %d continents, want 2", len(got))
	}
	if got[0].Continent != "Europe" || got[0].Visited != 2 || got[0].Trips != 3 {
		t.Errorf("Europe: %+v", got[0])
	}
	// Germany has more trips than France, so it leads the code list.
	if got[0].CountryCodes[0] != "DE" {
		t.Errorf("code order: %v", got[0].CountryCodes)
	}
	if got[1].Continent != "Asia" || got[1].Visited != 1 {
		t.Errorf("Asia: %+v", got[1])
	}
}

func TestContinentCoverage_Empty(t *testing.T) {
	if got := ContinentCoverage(nil); len(got) != 0 {
		t.Errorf("got %+v, want empty", got)
	}
}
