package extractor

import (
	"reflect"
	"testing"

	"github.com/jdamcd/trip-map/internal/model"
)

func entry(start, end, title string) model.VisitEntry {
	return model.VisitEntry{
		ID:         "test-" + start,
		StartDate:  start,
		EndDate:    end,
		Source:     model.SourceCalendar,
		EventTitle: title,
	}
}

func TestMergeOverlapping_Overlap(t *testing.T) {
	got := MergeOverlapping([]model.VisitEntry{
		entry("2024-01-10T00:00:00Z", "2024-01-15T00:00:00Z", "Trip to Paris"),
		entry("2024-01-13T00:00:00Z", "2024-01-20T00:00:00Z", "Conference"),
	})
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if got[0].StartDate != "2024-01-10T00:00:00Z" || got[0].EndDate != "2024-01-20T00:00:00Z" {
		t.Errorf("merged span %s..%s, want 2024-01-10..2024-01-20", got[0].StartDate, got[0].EndDate)
	}
	if got[0].EventTitle != "Trip to Paris; Conference" {
		t.Errorf("got title %q", got[0].EventTitle)
	}
}

func TestMergeOverlapping_WithinBuffer(t *testing.T) {
	// Gap of exactly seven days still merges.
	got := MergeOverlapping([]model.VisitEntry{
		entry("2024-01-01T00:00:00Z", "2024-01-02T00:00:00Z", "Outbound"),
		entry("2024-01-09T00:00:00Z", "2024-01-10T00:00:00Z", "Return"),
	})
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if got[0].EndDate != "2024-01-10T00:00:00Z" {
		t.Errorf("got end %s, want 2024-01-10", got[0].EndDate)
	}
}

func TestMergeOverlapping_BeyondBuffer(t *testing.T) {
	got := MergeOverlapping([]model.VisitEntry{
		entry("2024-01-01T00:00:00Z", "2024-01-02T00:00:00Z", "First"),
		entry("2024-01-10T00:00:00Z", "2024-01-11T00:00:00Z", "Second"),
	})
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2 separate visits", len(got))
	}
}

func TestMergeOverlapping_UnsortedInput(t *testing.T) {
	got := MergeOverlapping([]model.VisitEntry{
		entry("2024-01-13T00:00:00Z", "2024-01-20T00:00:00Z", "Later"),
		entry("2024-01-10T00:00:00Z", "2024-01-15T00:00:00Z", "Earlier"),
	})
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if got[0].EventTitle != "Earlier; Later" {
		t.Errorf("got title %q, want titles in chronological order", got[0].EventTitle)
	}
}

func TestMergeOverlapping_OpenEndedEntry(t *testing.T) {
	// A single-day entry has no end date; merging extends using its start.
	got := MergeOverlapping([]model.VisitEntry{
		entry("2024-01-10T00:00:00Z", "2024-01-12T00:00:00Z", "Stay"),
		entry("2024-01-14T00:00:00Z", "", "Day trip"),
	})
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if got[0].EndDate != "2024-01-14T00:00:00Z" {
		t.Errorf("got end %s, want the later entry's start date", got[0].EndDate)
	}
}

func TestMergeOverlapping_DuplicateTitles(t *testing.T) {
	got := MergeOverlapping([]model.VisitEntry{
		entry("2024-01-10T00:00:00Z", "2024-01-12T00:00:00Z", "Standup in Oslo"),
		entry("2024-01-11T00:00:00Z", "2024-01-13T00:00:00Z", "Standup in Oslo"),
	})
	if got[0].EventTitle != "Standup in Oslo" {
		t.Errorf("got title %q, want duplicate collapsed", got[0].EventTitle)
	}
}

func TestMergeOverlapping_Idempotent(t *testing.T) {
	once := MergeOverlapping([]model.VisitEntry{
		entry("2024-01-10T00:00:00Z", "2024-01-15T00:00:00Z", "A"),
		entry("2024-01-13T00:00:00Z", "2024-01-20T00:00:00Z", "B"),
		entry("2024-03-01T00:00:00Z", "2024-03-05T00:00:00Z", "C"),
	})
	twice := MergeOverlapping(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second merge changed the result: %v vs %v", once, twice)
	}
}

func TestMergeOverlapping_Empty(t *testing.T) {
	if got := MergeOverlapping(nil); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
