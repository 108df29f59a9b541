package zdd

// Union, Intersect, and Product are implemented as the classic ZDD "apply"
// recursion: walk both operands together, expanding whichever side has
// the lower-ranked (nearer the root) top item while holding the other
// side fixed so the two diagrams stay aligned, and memoize on the operand pair so each distinct pair of
// sub-diagrams is combined once — the cost is bounded by the product of
// the two DAGs' sizes, not by the (possibly exponential) cardinality of
// either family.

type pairKey struct{ a, b nodeID }

// Union returns the family containing every set in f or other (or both).
func (f Forest) Union(other Forest) Forest {
	memo := make(map[pairKey]nodeID)
	var rec func(a, b nodeID) nodeID
	rec = func(a, b nodeID) nodeID {
		switch {
		case a == emptyID:
			return b
		case b == emptyID:
			return a
		case a == b:
			return a
		}
		if id, ok := memo[pairKey{a, b}]; ok {
			return id
		}

		var result nodeID
		switch {
		case a == unitID:
			bn := f.u.t.node(b)
			result = f.u.t.mkNode(bn.item, bn.then, rec(a, bn.els))
		case b == unitID:
			an := f.u.t.node(a)
			result = f.u.t.mkNode(an.item, an.then, rec(an.els, b))
		default:
			an, bn := f.u.t.node(a), f.u.t.node(b)
			switch compareRank(f.u, an.item, bn.item) {
			case 0:
				result = f.u.t.mkNode(an.item, rec(an.then, bn.then), rec(an.els, bn.els))
			case -1:
				result = f.u.t.mkNode(an.item, an.then, rec(an.els, b))
			default:
				result = f.u.t.mkNode(bn.item, bn.then, rec(a, bn.els))
			}
		}
		memo[pairKey{a, b}] = result
		return result
	}
	return Forest{u: f.u, root: rec(f.root, other.root)}
}

// Intersect returns the family containing every set that belongs to both
// f and other.
func (f Forest) Intersect(other Forest) Forest {
	memo := make(map[pairKey]nodeID)
	var rec func(a, b nodeID) nodeID
	rec = func(a, b nodeID) nodeID {
		switch {
		case a == emptyID || b == emptyID:
			return emptyID
		case a == b:
			return a
		}
		if id, ok := memo[pairKey{a, b}]; ok {
			return id
		}

		var result nodeID
		switch {
		case a == unitID:
			bn := f.u.t.node(b)
			result = rec(a, bn.els)
		case b == unitID:
			an := f.u.t.node(a)
			result = rec(an.els, b)
		default:
			an, bn := f.u.t.node(a), f.u.t.node(b)
			switch compareRank(f.u, an.item, bn.item) {
			case 0:
				result = f.u.t.mkNode(an.item, rec(an.then, bn.then), rec(an.els, bn.els))
			case -1:
				result = rec(an.els, b)
			default:
				result = rec(a, bn.els)
			}
		}
		memo[pairKey{a, b}] = result
		return result
	}
	return Forest{u: f.u, root: rec(f.root, other.root)}
}

// Product returns the Cartesian union of f and other: {sa ∪ sb : sa ∈ f,
// sb ∈ other}, with duplicate resulting sets collapsed by canonicity.
//
// In this engine's own usage Product is always applied to Forests built
// over disjoint item sets (one family's items never appear in another
// family's Forest), so the equal-item branch below is exercised only by
// generic law tests; it is still defined so Product stays commutative and
// associative for any two Forests sharing a Universe.
func (f Forest) Product(other Forest) Forest {
	memo := make(map[pairKey]nodeID)
	var rec func(a, b nodeID) nodeID
	rec = func(a, b nodeID) nodeID {
		switch {
		case a == emptyID || b == emptyID:
			return emptyID
		case a == unitID:
			return b
		case b == unitID:
			return a
		}
		if id, ok := memo[pairKey{a, b}]; ok {
			return id
		}

		var result nodeID
		an, bn := f.u.t.node(a), f.u.t.node(b)
		switch compareRank(f.u, an.item, bn.item) {
		case 0:
			thenBranch := rec(an.then, bn.then)
			thenBranch = f.u.t.union2(thenBranch, rec(an.then, bn.els))
			thenBranch = f.u.t.union2(thenBranch, rec(an.els, bn.then))
			elseBranch := rec(an.els, bn.els)
			result = f.u.t.mkNode(an.item, thenBranch, elseBranch)
		case -1:
			result = f.u.t.mkNode(an.item, rec(an.then, b), rec(an.els, b))
		default:
			result = f.u.t.mkNode(bn.item, rec(a, bn.then), rec(a, bn.els))
		}
		memo[pairKey{a, b}] = result
		return result
	}
	return Forest{u: f.u, root: rec(f.root, other.root)}
}

// union2 is a bare, uncached union over two node ids in the same table,
// used internally by Product's equal-item branch where the ids being
// combined aren't full Forest values.
func (t *table) union2(a, b nodeID) nodeID {
	if a == emptyID {
		return b
	}
	if b == emptyID {
		return a
	}
	if a == b {
		return a
	}
	switch {
	case a == unitID:
		bn := t.node(b)
		return t.mkNode(bn.item, bn.then, t.union2(a, bn.els))
	case b == unitID:
		an := t.node(a)
		return t.mkNode(an.item, an.then, t.union2(an.els, b))
	default:
		an, bn := t.node(a), t.node(b)
		if an.item == bn.item {
			return t.mkNode(an.item, t.union2(an.then, bn.then), t.union2(an.els, bn.els))
		}
		// Universe rank is always assigned by sorting items as strings
		// (see NewUniverse), so plain string order agrees with rank
		// order here without needing the Universe itself.
		if an.item < bn.item {
			return t.mkNode(an.item, an.then, t.union2(an.els, b))
		}
		return t.mkNode(bn.item, bn.then, t.union2(a, bn.els))
	}
}

// compareRank orders two items by their Universe rank, returning -1, 0,
// or 1.
func compareRank(u *Universe, a, b string) int {
	if a == b {
		return 0
	}
	if u.rankOf(a) < u.rankOf(b) {
		return -1
	}
	return 1
}

// SubsetAll keeps only sets containing every item in items.
//
// Whether a path satisfies "every item in items is present" depends on
// which of those items have already been matched further up the path, not
// just on the current node — unlike SubsetNone, where "none of these
// items" is a path-independent constraint. So unlike every other op in
// this file, the memo key here must include the remaining unmatched
// items, not just the node id.
func (f Forest) SubsetAll(items []string) Forest {
	remaining := dedupSorted(items)
	type state struct {
		a   nodeID
		rem string
	}
	memo := make(map[state]nodeID)
	var rec func(a nodeID, rem []string) nodeID
	rec = func(a nodeID, rem []string) nodeID {
		if a == emptyID {
			return emptyID
		}
		if a == unitID {
			if len(rem) == 0 {
				return unitID
			}
			return emptyID
		}
		key := state{a, remainingKey(rem)}
		if id, ok := memo[key]; ok {
			return id
		}
		n := f.u.t.node(a)
		var result nodeID
		if i := indexOf(rem, n.item); i >= 0 {
			// item is required and present here: keep it in the result
			// (else-branch paths lack it and are dropped), then keep
			// matching whatever of rem is still unmatched further down.
			result = f.u.t.mkNode(n.item, rec(n.then, without(rem, i)), emptyID)
		} else {
			result = f.u.t.mkNode(n.item, rec(n.then, rem), rec(n.els, rem))
		}
		memo[key] = result
		return result
	}
	return Forest{u: f.u, root: rec(f.root, remaining)}
}

func remainingKey(rem []string) string {
	key := ""
	for _, it := range rem {
		key += it + "\x00"
	}
	return key
}

func indexOf(items []string, item string) int {
	for i, it := range items {
		if it == item {
			return i
		}
	}
	return -1
}

func without(items []string, i int) []string {
	out := make([]string, 0, len(items)-1)
	out = append(out, items[:i]...)
	out = append(out, items[i+1:]...)
	return out
}

// SubsetNone keeps only sets containing no item in items.
func (f Forest) SubsetNone(items []string) Forest {
	forbidden := toSet(items)
	memo := make(map[nodeID]nodeID)
	var rec func(a nodeID) nodeID
	rec = func(a nodeID) nodeID {
		if a == emptyID {
			return emptyID
		}
		if a == unitID {
			return unitID
		}
		if id, ok := memo[a]; ok {
			return id
		}
		n := f.u.t.node(a)
		var result nodeID
		if forbidden[n.item] {
			result = rec(n.els)
		} else {
			result = f.u.t.mkNode(n.item, rec(n.then), rec(n.els))
		}
		memo[a] = result
		return result
	}
	return Forest{u: f.u, root: rec(f.root)}
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[it] = true
	}
	return set
}
