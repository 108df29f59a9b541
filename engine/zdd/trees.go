package zdd

import "sort"

// Trees enumerates the Forest's member sets as a deterministic sequence.
// Each set is returned with its items in Universe order; the sequence of
// sets itself is sorted lexicographically by that same order, so two
// Forests representing the same family always yield identical output —
// test fixtures rely on this (spec §8).
//
// Cost is linear in the size of the produced sequence, which may itself
// be exponential in the Forest's DAG size; that tradeoff is inherent to
// enumerating a potentially-exponential family and is why the set-algebra
// operations never call this internally (only Equal does, when comparing
// Forests from different Universes).
func (f Forest) Trees() [][]string {
	var collect func(id nodeID) [][]string
	collect = func(id nodeID) [][]string {
		if id == emptyID {
			return nil
		}
		if id == unitID {
			return [][]string{{}}
		}
		n := f.u.t.node(id)
		thenSets := collect(n.then)
		elseSets := collect(n.els)
		out := make([][]string, 0, len(thenSets)+len(elseSets))
		for _, s := range thenSets {
			with := make([]string, 0, len(s)+1)
			with = append(with, n.item)
			with = append(with, s...)
			out = append(out, with)
		}
		out = append(out, elseSets...)
		return out
	}

	result := collect(f.root)
	sort.Slice(result, func(i, j int) bool { return lessSequence(result[i], result[j]) })
	return result
}

func lessSequence(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// Len returns the number of member sets, computed in time proportional to
// the DAG size via memoized counting rather than by enumerating Trees.
func (f Forest) Len() int {
	memo := make(map[nodeID]int)
	return f.u.t.countSets(f.root, memo)
}

func (t *table) countSets(id nodeID, memo map[nodeID]int) int {
	if id == emptyID {
		return 0
	}
	if id == unitID {
		return 1
	}
	if n, ok := memo[id]; ok {
		return n
	}
	n := t.node(id)
	count := t.countSets(n.then, memo) + t.countSets(n.els, memo)
	memo[id] = count
	return count
}

// Occurrences returns, for each item reachable in the Forest, the number
// of member sets that contain it. Items with no member sets containing
// them (including items absent from the Forest entirely) are simply
// absent from the result; callers that need an entry for every item in
// some external universe (as Catalog.ItemOccurrences does) fill in zero
// themselves.
//
// The count for an item's node is the number of root-to-node paths
// through the shared DAG times the size of that node's then-subtree —
// both computable with one bottom-up and one top-down pass over the
// reachable nodes, so the whole operation is linear in DAG size rather
// than in cardinality.
func (f Forest) Occurrences() map[string]int {
	lenMemo := make(map[nodeID]int)

	reachable := f.reachableByRank()

	pathCount := map[nodeID]int{f.root: 1}
	for _, id := range reachable {
		if id == emptyID || id == unitID {
			continue
		}
		pc := pathCount[id]
		if pc == 0 {
			continue
		}
		n := f.u.t.node(id)
		pathCount[n.then] += pc
		pathCount[n.els] += pc
	}

	occurrences := make(map[string]int)
	for _, id := range reachable {
		if id == emptyID || id == unitID {
			continue
		}
		n := f.u.t.node(id)
		thenSize := f.u.t.countSets(n.then, lenMemo)
		occurrences[n.item] += pathCount[id] * thenSize
	}
	return occurrences
}

// reachableByRank returns every node id reachable from the Forest's root
// (terminals included), ordered so that every node appears after every
// node that can reach it. Since edges only ever move to a strictly
// higher-ranked item or a terminal, ascending item rank (empty first,
// unit last) is exactly that order — which lets Occurrences accumulate
// path counts top-down in a single pass.
func (f Forest) reachableByRank() []nodeID {
	visited := map[nodeID]bool{}
	var ids []nodeID
	var visit func(id nodeID)
	visit = func(id nodeID) {
		if visited[id] {
			return
		}
		visited[id] = true
		ids = append(ids, id)
		if id == emptyID || id == unitID {
			return
		}
		n := f.u.t.node(id)
		visit(n.then)
		visit(n.els)
	}
	visit(f.root)

	rankKey := func(id nodeID) int {
		switch id {
		case emptyID:
			return -1
		case unitID:
			return len(f.u.items)
		default:
			return f.u.rankOf(f.u.t.node(id).item)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return rankKey(ids[i]) < rankKey(ids[j]) })
	return ids
}
