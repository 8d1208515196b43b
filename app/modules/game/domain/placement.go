package gamedomain

import "sort"

// PlacedEntry is an Entry with its derived finishing place.
type PlacedEntry struct {
	Entry
	Place int
}

// AssignPlaces ranks entries by point descending. Equal points keep input
// order, so the earlier entry gets the better place. The result is in ranking
// order.
func AssignPlaces(entries []Entry) []PlacedEntry {
	placed := make([]PlacedEntry, len(entries))
	for i, e := range entries {
		placed[i] = PlacedEntry{Entry: e}
	}
	sort.SliceStable(placed, func(i, j int) bool {
		return placed[i].Point > placed[j].Point
	})
	for i := range placed {
		placed[i].Place = i + 1
	}
	return placed
}
