package recent

// MaxEntries is the fixed capacity of the recent list.
const MaxEntries = 10

// Promote returns the list that results from using entry: every earlier
// occurrence of entry is dropped, entry moves to the front, and the tail
// beyond MaxEntries is evicted.
//
// The result never aliases current. Any other duplicates in current are
// collapsed to their most recent occurrence, so a single call restores the
// list invariants even when the stored list was damaged.
func Promote(current []string, entry string) []string {
	result := make([]string, 0, min(len(current)+1, MaxEntries))
	result = append(result, entry)

	seen := map[string]bool{entry: true}
	for _, existing := range current {
		if len(result) == MaxEntries {
			break
		}
		if seen[existing] {
			continue
		}
		seen[existing] = true
		result = append(result, existing)
	}

	return result
}
