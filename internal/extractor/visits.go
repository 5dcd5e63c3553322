package extractor

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jdamcd/trip-map/internal/geo"
	"github.com/jdamcd/trip-map/internal/model"
)

// ProgressFunc receives (processed, total) during a batch extraction.
// Callbacks fire synchronously from the batch loop but are throttled, so a
// large import cannot flood the caller; treat them as advisory.
type ProgressFunc func(processed, total int)

// progressInterval is the minimum wall-clock gap between two progress
// callbacks within one extraction run.
const progressInterval = 100 * time.Millisecond

// ExtractVisits runs the full inference pass over a batch of events:
// classification, country extraction, per-country accumulation and interval
// merging. The result is sorted by country display name. onProgress may be
// nil; when supplied it is invoked at most once per progressInterval and
// exactly once with processed == total at the end, even for an empty batch.
func ExtractVisits(events []model.CalendarEvent, onProgress ProgressFunc) []model.CountryVisit {
	total := len(events)
	report := func(processed int) {
		if onProgress != nil {
			onProgress(processed, total)
		}
	}
	if total > 0 {
		report(0)
	}

	// Throttle state is local to this run so concurrent or repeated runs
	// cannot interfere with each other.
	lastReport := time.Now()

	byCountry := make(map[string]*model.CountryVisit)
	for i, ev := range events {
		// Events without a start date violate the decoding layer's
		// contract; skip them rather than crash.
		if !ev.Start.IsZero() && IsTravelEvent(ev) {
			for _, cc := range ExtractCountries(ev) {
				name, ok := geo.CountryName(cc)
				if !ok {
					continue
				}
				visit, exists := byCountry[cc]
				if !exists {
					visit = &model.CountryVisit{
						ID:          uuid.NewString(),
						CountryCode: cc,
						CountryName: name,
					}
					byCountry[cc] = visit
				}
				visit.Entries = append(visit.Entries, newCalendarEntry(ev))
			}
		}

		processed := i + 1
		if processed < total && time.Since(lastReport) >= progressInterval {
			report(processed)
			lastReport = time.Now()
		}
	}

	visits := make([]model.CountryVisit, 0, len(byCountry))
	for _, visit := range byCountry {
		visit.Entries = MergeOverlapping(visit.Entries)
		visits = append(visits, *visit)
	}
	sortVisits(visits)

	report(total)
	return visits
}

// MergeVisitSets unions a freshly extracted batch into an existing travel
// history by country code. Entries whose (eventTitle, startDate) pair
// already exists are skipped, so re-importing the same batch is idempotent;
// surviving entries are re-consolidated per country. Inputs are not
// mutated.
func MergeVisitSets(existing, incoming []model.CountryVisit) []model.CountryVisit {
	merged := make(map[string]*model.CountryVisit, len(existing))
	for _, visit := range existing {
		v := visit
		v.Entries = append([]model.VisitEntry(nil), visit.Entries...)
		merged[visit.CountryCode] = &v
	}

	for _, visit := range incoming {
		target, ok := merged[visit.CountryCode]
		if !ok {
			v := visit
			v.Entries = append([]model.VisitEntry(nil), visit.Entries...)
			merged[visit.CountryCode] = &v
			continue
		}
		for _, entry := range visit.Entries {
			if hasDuplicate(target.Entries, entry) {
				continue
			}
			target.Entries = append(target.Entries, entry)
		}
		target.Entries = MergeOverlapping(target.Entries)
	}

	out := make([]model.CountryVisit, 0, len(merged))
	for _, visit := range merged {
		out = append(out, *visit)
	}
	sortVisits(out)
	return out
}

func hasDuplicate(entries []model.VisitEntry, entry model.VisitEntry) bool {
	for _, e := range entries {
		if e.EventTitle == entry.EventTitle && e.StartDate == entry.StartDate {
			return true
		}
	}
	return false
}

// NewManualVisit constructs a single-entry visit for a hand-entered stay.
// Returns nil when the country code is not in the register or the end date
// precedes the start date; callers should surface that as a validation
// message, not a failure. The optional note becomes the entry title.
func NewManualVisit(countryCode, startDate, endDate, note string) *model.CountryVisit {
	name, ok := geo.CountryName(countryCode)
	if !ok {
		return nil
	}
	entry := model.VisitEntry{StartDate: startDate, EndDate: endDate}
	if endDate != "" && entry.End().Before(entry.Start()) {
		return nil
	}
	return &model.CountryVisit{
		ID:          uuid.NewString(),
		CountryCode: countryCode,
		CountryName: name,
		Entries: []model.VisitEntry{{
			ID:         uuid.NewString(),
			StartDate:  startDate,
			EndDate:    endDate,
			Source:     model.SourceManual,
			EventTitle: note,
		}},
	}
}

func newCalendarEntry(ev model.CalendarEvent) model.VisitEntry {
	entry := model.VisitEntry{
		ID:         uuid.NewString(),
		StartDate:  ev.Start.UTC().Format(time.RFC3339),
		Source:     model.SourceCalendar,
		EventTitle: ev.Summary,
	}
	if !ev.End.IsZero() {
		entry.EndDate = ev.End.UTC().Format(time.RFC3339)
	}
	return entry
}

// sortVisits orders visits by country display name using locale-aware
// collation, matching how the list is presented.
func sortVisits(visits []model.CountryVisit) {
	c := collate.New(language.English)
	sort.SliceStable(visits, func(i, j int) bool {
		return c.CompareString(visits[i].CountryName, visits[j].CountryName) < 0
	})
}
