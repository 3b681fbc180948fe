package domain

// NormalizeSlots removes duplicates keeping first-occurrence order
func NormalizeSlots(slots []string) []string {
	out := make([]string, 0, len(slots))
	seen := make(map[string]struct{}, len(slots))
	for _, slot := range slots {
		if _, ok := seen[slot]; ok {
			continue
		}
		seen[slot] = struct{}{}
		out = append(out, slot)
	}
	return out
}

// FindConflicts returns the requested slots that are already reserved,
// in request order and without duplicates. An empty slice means no conflict.
func FindConflicts(requested, reserved []string) []string {
	taken := make(map[string]struct{}, len(reserved))
	for _, slot := range reserved {
		taken[slot] = struct{}{}
	}

	conflicts := make([]string, 0)
	for _, slot := range NormalizeSlots(requested) {
		if _, ok := taken[slot]; ok {
			conflicts = append(conflicts, slot)
		}
	}
	return conflicts
}
