// Package merge combines per-source record lists into one deduplicated,
// ordered feed.
//
// Two records are considered the same hackathon when they share a URL, or
// when their normalized titles match and their date ranges overlap (an
// unknown range counts as overlapping). Conflicts resolve by source
// priority: curated > devpost > mlh. Merge is idempotent.
package merge

import (
	"sort"

	"github.com/hackeroos/hackfeed/internal/event"
)

// Merge collapses duplicates across the given per-source lists and returns
// one ordered list.
func Merge(lists ...[]event.HackathonEvent) []event.HackathonEvent {
	var all []event.HackathonEvent
	for _, list := range lists {
		all = append(all, list...)
	}

	// Highest-priority records go first so that the keep-first rules below
	// naturally prefer them. The sort is stable to keep input order within
	// one source.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Source.Priority() > all[j].Source.Priority()
	})

	byURL := make(map[string]int)
	byKey := make(map[string][]int)
	var kept []event.HackathonEvent

	for _, candidate := range all {
		if candidate.URL == "" {
			continue
		}

		// Exact URL match always collapses, whatever the dates say.
		if _, seen := byURL[candidate.URL]; seen {
			continue
		}

		// Fuzzy match: same normalized title with an overlapping (or
		// unknown) date range.
		key := candidate.Key()
		if idx, dup := findDuplicate(kept, byKey[key], candidate); dup {
			// The kept record has equal or higher priority. On equal
			// priority, a candidate with more complete dates replaces it.
			existing := kept[idx]
			if existing.Source.Priority() == candidate.Source.Priority() &&
				candidate.DateCompleteness() > existing.DateCompleteness() {
				delete(byURL, existing.URL)
				byURL[candidate.URL] = idx
				kept[idx] = candidate
			}
			continue
		}

		byURL[candidate.URL] = len(kept)
		byKey[key] = append(byKey[key], len(kept))
		kept = append(kept, candidate)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return event.Less(kept[i], kept[j])
	})

	return kept
}

// findDuplicate looks among the kept records sharing the candidate's title
// key for one whose date range overlaps.
func findDuplicate(kept []event.HackathonEvent, indices []int, candidate event.HackathonEvent) (int, bool) {
	for _, idx := range indices {
		if event.Overlaps(kept[idx], candidate) {
			return idx, true
		}
	}
	return 0, false
}
