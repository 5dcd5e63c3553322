package extractor

import (
	"sort"
	"strings"
	"time"

	"github.com/jdamcd/trip-map/internal/model"
)

// overlapBuffer is the grace period within which two date ranges for the
// same country count as one continuous visit.
const overlapBuffer = 7 * 24 * time.Hour

// MergeOverlapping consolidates a country's visit entries: entries whose
// ranges overlap or fall within the one-week buffer of each other collapse
// into a single entry spanning their union, with titles joined and
// de-duplicated in order of first appearance. A single left-to-right sweep
// over the start-sorted input; no entry's span or title is ever dropped.
// Merging an already-merged list returns it unchanged.
func MergeOverlapping(entries []model.VisitEntry) []model.VisitEntry {
	if len(entries) <= 1 {
		return entries
	}

	sorted := make([]model.VisitEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start().Before(sorted[j].Start())
	})

	merged := make([]model.VisitEntry, 0, len(sorted))
	current := sorted[0]

	for _, next := range sorted[1:] {
		if next.Start().After(current.End().Add(overlapBuffer)) {
			merged = append(merged, current)
			current = next
			continue
		}
		if next.End().After(current.End()) {
			if next.EndDate != "" {
				current.EndDate = next.EndDate
			} else {
				current.EndDate = next.StartDate
			}
		}
		current.EventTitle = joinTitles(current.EventTitle, next.EventTitle)
	}

	return append(merged, current)
}

// joinTitles appends next to the semicolon-joined title list unless it is
// already present.
func joinTitles(current, next string) string {
	if next == "" {
		return current
	}
	if current == "" {
		return next
	}
	for _, t := range strings.Split(current, "; ") {
		if t == next {
			return current
		}
	}
	return current + "; " + next
}
