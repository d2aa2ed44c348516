// Package history keeps the recent-search list.
package history

// MaxEntries bounds the recent-search list.
const MaxEntries = 5

// Record returns a new list with city first, any earlier occurrence removed
// and the tail cut to MaxEntries. Matching is exact and case-sensitive. The
// input slice is not modified.
func Record(history []string, city string) []string {
	updated := make([]string, 0, MaxEntries)
	updated = append(updated, city)

	for _, c := range history {
		if len(updated) == MaxEntries {
			break
		}
		if c == city {
			continue
		}
		updated = append(updated, c)
	}

	return updated
}
