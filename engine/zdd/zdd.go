// Package zdd implements the Forest family-of-sets kernel: a canonical,
// persistent representation of a family of finite sets over a totally
// ordered universe of items, backed by a reduced, zero-suppressed binary
// decision diagram (ZDD) with hash-consed nodes.
//
// Two terminal nodes anchor every diagram built from a Universe:
//
//   - the empty family (no member sets at all) — id 0
//   - the unit family, containing exactly the empty set {∅} — id 1
//
// A non-terminal node (item, then, else) reads: "sets formed by taking the
// then-subtree's sets and adding item, union the else-subtree's sets
// unchanged". The zero-suppression rule collapses a node whose then-child
// is the empty family into its else-child, since such a node can never
// contribute a set containing item.
//
// All operations are pure functions of their Forest arguments; Forest
// values themselves are small (a Universe pointer and a node id) and safe to
// copy and compare.
package zdd

import "sort"

type nodeID int32

const (
	emptyID nodeID = 0
	unitID  nodeID = 1
)

type node struct {
	item string
	then nodeID
	els  nodeID
}

// table is the hash-consing store shared by every Forest built from the
// same Universe. Canonicity — equal families produce structurally equal
// values — follows directly from interning: two constructions that reach
// the same (item, then, else) triple are given the same id.
type table struct {
	nodes []node
	index map[node]nodeID
}

func newTable() *table {
	return &table{
		nodes: []node{{}, {}}, // ids 0 and 1 are reserved terminals, never looked up by key
		index: make(map[node]nodeID),
	}
}

func (t *table) mkNode(item string, then, els nodeID) nodeID {
	if then == emptyID {
		// zero-suppression: no set reachable through this node would ever
		// contain item, so the node is redundant.
		return els
	}
	key := node{item, then, els}
	if id, ok := t.index[key]; ok {
		return id
	}
	id := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, key)
	t.index[key] = id
	return id
}

// Universe fixes the totally ordered set of items every Forest built from
// it ranges over. Items are ordered by their identifier (spec §3); that
// order also fixes ZDD variable order, which every operation on Forests
// sharing this Universe must agree on to stay canonical.
//
// A Universe owns a single hash-consing table (see the design note on
// table scope in DESIGN.md): every Forest derived from it — via Empty,
// Unit, Single, Unique, Many, or any operation combining two such
// Forests — shares that table, so equal families collapse to equal node
// ids instead of merely equal shapes.
type Universe struct {
	items []string
	rank  map[string]int
	t     *table
}

// NewUniverse builds a Universe over the given items, deduplicated and
// sorted by identifier. Every Forest operation that names an item expects
// it to be a member of the Universe it was built from; passing an unknown
// item is a programmer error (the catalog layer validates user input
// before it ever reaches zdd). Single, Unique, and Many panic on an
// unknown item rather than return an error, per the pure-operations
// failure model (spec §4.1); SubsetAll and SubsetNone do not check
// membership, so an unknown item there simply matches no set.
func NewUniverse(items []string) *Universe {
	seen := make(map[string]bool, len(items))
	unique := make([]string, 0, len(items))
	for _, it := range items {
		if !seen[it] {
			seen[it] = true
			unique = append(unique, it)
		}
	}
	sort.Strings(unique)

	rank := make(map[string]int, len(unique))
	for i, it := range unique {
		rank[it] = i
	}

	return &Universe{items: unique, rank: rank, t: newTable()}
}

// Items returns the Universe's items in their canonical order.
func (u *Universe) Items() []string {
	out := make([]string, len(u.items))
	copy(out, u.items)
	return out
}

func (u *Universe) rankOf(item string) int {
	r, ok := u.rank[item]
	if !ok {
		panic("zdd: item " + item + " is not a member of this Universe")
	}
	return r
}

// Forest is a persistent, value-typed family of finite sets over its
// Universe. The zero value is not meaningful; construct one via a
// Universe's Empty, Unit, Single, Unique, or Many, or by combining
// existing Forests with Union, Intersect, Product, SubsetAll, or
// SubsetNone.
type Forest struct {
	u    *Universe
	root nodeID
}

// Universe returns the Forest's owning Universe.
func (f Forest) Universe() *Universe { return f.u }

// Empty returns the family with no member sets.
func (u *Universe) Empty() Forest { return Forest{u: u, root: emptyID} }

// Unit returns the family {∅}, containing only the empty set.
func (u *Universe) Unit() Forest { return Forest{u: u, root: unitID} }

// Single returns the family {{item}}.
func (u *Universe) Single(item string) Forest {
	u.rankOf(item) // validate membership
	return Forest{u: u, root: u.t.mkNode(item, unitID, emptyID)}
}

// Unique returns the family of all singletons over items: {{i} : i ∈
// items}.
func (u *Universe) Unique(items []string) Forest {
	sorted := dedupSorted(items)
	root := emptyID
	for i := len(sorted) - 1; i >= 0; i-- {
		u.rankOf(sorted[i])
		root = u.t.mkNode(sorted[i], unitID, root)
	}
	return Forest{u: u, root: root}
}

// Many returns the family equal to the given collection of sets.
func (u *Universe) Many(sets [][]string) Forest {
	result := u.Empty()
	for _, s := range sets {
		result = result.Union(u.path(s))
	}
	return result
}

// path builds the Forest containing exactly the single set s.
func (u *Universe) path(s []string) Forest {
	sorted := sortedCopy(s)
	root := unitID
	for i := len(sorted) - 1; i >= 0; i-- {
		u.rankOf(sorted[i])
		root = u.t.mkNode(sorted[i], root, emptyID)
	}
	return Forest{u: u, root: root}
}

func sortedCopy(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	sort.Strings(out)
	return out
}

func dedupSorted(items []string) []string {
	sorted := sortedCopy(items)
	out := sorted[:0:0]
	for i, it := range sorted {
		if i == 0 || it != sorted[i-1] {
			out = append(out, it)
		}
	}
	return out
}

func (t *table) node(id nodeID) node { return t.nodes[id] }
