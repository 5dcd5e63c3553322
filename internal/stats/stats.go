// Package stats aggregates a travel history into per-year and per-continent
// summaries for display.
package stats

import (
	"sort"
	"time"

	"github.com/jdamcd/trip-map/internal/geo"
	"github.com/jdamcd/trip-map/internal/model"
)

// CountryCount is the number of trips to one country within a year.
type CountryCount struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// YearTrips summarizes one calendar year.
type YearTrips struct {
	Year      int            `json:"year"`
	Trips     int            `json:"trips"`
	Countries []CountryCount `json:"countries"`
}

// ContinentStats summarizes coverage of one continent.
type ContinentStats struct {
	Continent    string   `json:"continent"`
	Visited      int      `json:"visited"`
	Trips        int      `json:"trips"`
	CountryCodes []string `json:"countryCodes"`
}

// TripsPerYear counts visit entries by the year of their start date and
// returns one element per year in the covered range, zero-filled for years
// without trips. startYear/endYear override the range bounds when non-zero;
// the default range runs from the earliest entry to the current year.
func TripsPerYear(visits []model.CountryVisit, startYear, endYear int) []YearTrips {
	type yearData struct {
		trips      int
		perCountry map[string]int
	}
	byYear := make(map[int]*yearData)

	for _, visit := range visits {
		for _, entry := range visit.Entries {
			year := entry.Start().Year()
			data, ok := byYear[year]
			if !ok {
				data = &yearData{perCountry: make(map[string]int)}
				byYear[year] = data
			}
			data.trips++
			data.perCountry[visit.CountryCode]++
		}
	}

	if len(byYear) == 0 {
		return nil
	}

	codeToName := make(map[string]string, len(visits))
	for _, v := range visits {
		codeToName[v.CountryCode] = v.CountryName
	}

	minYear, maxYear := 0, time.Now().Year()
	for year := range byYear {
		if minYear == 0 || year < minYear {
			minYear = year
		}
		if year > maxYear {
			maxYear = year
		}
	}
	if startYear != 0 {
		minYear = startYear
	}
	if endYear != 0 {
		maxYear = endYear
	}

	var out []YearTrips
	for year := minYear; year <= maxYear; year++ {
		yt := YearTrips{Year: year}
		if data, ok := byYear[year]; ok {
			yt.Trips = data.trips
			for code, count := range data.perCountry {
				name, ok := codeToName[code]
				if !ok {
					name = code
				}
				yt.Countries = append(yt.Countries, CountryCount{Code: code, Name: name, Count: count})
			}
			sort.Slice(yt.Countries, func(i, j int) bool {
				if yt.Countries[i].Count != yt.Countries[j].Count {
					return yt.Countries[i].Count > yt.Countries[j].Count
				}
				return yt.Countries[i].Name < yt.Countries[j].Name
			})
		}
		out = append(out, yt)
	}
	return out
}

// ContinentCoverage groups visited countries by continent. Continents are
// ordered by countries visited, descending; within a continent, codes are
// ordered by trip count, descending.
func ContinentCoverage(visits []model.CountryVisit) []ContinentStats {
	tripsByCode := make(map[string]int, len(visits))
	for _, v := range visits {
		tripsByCode[v.CountryCode] = len(v.Entries)
	}

	byContinent := make(map[string]*ContinentStats)
	for _, visit := range visits {
		continent := geo.Continent(visit.CountryCode)
		if continent == "" {
			continue
		}
		cs, ok := byContinent[continent]
		if !ok {
			cs = &ContinentStats{Continent: continent}
			byContinent[continent] = cs
		}
		cs.Visited++
		cs.Trips += len(visit.Entries)
		cs.CountryCodes = append(cs.CountryCodes, visit.CountryCode)
	}

	var out []ContinentStats
	for _, name := range geo.ContinentNames {
		cs, ok := byContinent[name]
		if !ok {
			continue
		}
		sort.SliceStable(cs.CountryCodes, func(i, j int) bool {
			return tripsByCode[cs.CountryCodes[i]] > tripsByCode[cs.CountryCodes[j]]
		})
		out = append(out, *cs)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Visited > out[j].Visited })
	return out
}
