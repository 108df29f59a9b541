package zdd

// Equal reports whether f and other represent the same family of sets.
// Forests sharing a Universe (the common case — a Catalog's forest and
// every Forest it derives via restriction or select all share one) are
// compared by node id, which canonicity makes exact. Forests from
// different Universes fall back to comparing their Trees() enumerations,
// since nothing guarantees their tables agree on node ids.
func (f Forest) Equal(other Forest) bool {
	if f.u == other.u {
		return f.root == other.root
	}
	return sameSequences(f.Trees(), other.Trees())
}

func sameSequences(a, b [][]string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
