// Package catalog implements the compiled-catalog half of the
// configurator engine: it validates and compiles an Assembly (families
// plus exclusion/inclusion rules) into a Catalog backed by a
// github.com/tchupp/weave/engine/zdd Forest, and answers combinations and
// options queries against it.
//
// The package has no dependencies beyond the standard library and the
// sibling zdd package — it performs no I/O and holds no global state;
// every exported type other than CatalogBuilder (whose Add* methods
// extend it in place) is an immutable value once constructed.
package catalog

import "sort"

// Item is an opaque item identifier. Items are totally ordered by value.
type Item = string

// Family is an opaque family identifier.
type Family = string

// Assembly is the input specification a CatalogBuilder compiles:
// families partitioning the item universe, plus the exclusion and
// inclusion rules that narrow the family-wise Cartesian product down to
// valid outfits.
type Assembly struct {
	Families   []FamilySpec
	Exclusions []ExclusionRule
	Inclusions []InclusionRule
}

// FamilySpec names one family and the items that belong to it, in the
// order they should be registered.
type FamilySpec struct {
	Family Family
	Items  []Item
}

// ExclusionRule fires on an outfit iff every item in Conditions is
// present and at least one item in Exclusions is present; a firing rule
// forbids the outfit.
type ExclusionRule struct {
	Conditions []Item
	Exclusions []Item
}

// InclusionRule fires on an outfit iff every item in Conditions is
// present and at least one item in Inclusions is absent; a firing rule
// forbids the outfit. Read as: "if all conditions are chosen, every
// inclusion item must also be chosen."
type InclusionRule struct {
	Conditions []Item
	Inclusions []Item
}

// StatusKind classifies an item relative to a restricted catalog.
type StatusKind int

const (
	// Required items appear in every remaining outfit.
	Required StatusKind = iota
	// Excluded items appear in none: count is zero after restriction.
	Excluded
	// Available items appear in some but not all remaining outfits.
	Available
	// Selected items were named in the effective selection history.
	Selected
)

// String renders the StatusKind's name, as the CLI's text output shows
// it. StatusKind has no JSON marshaler, so JSON output carries its
// integer value instead.
func (k StatusKind) String() string {
	switch k {
	case Required:
		return "Required"
	case Excluded:
		return "Excluded"
	case Available:
		return "Available"
	case Selected:
		return "Selected"
	default:
		return "Unknown"
	}
}

// ItemStatus pairs an item with its classification.
type ItemStatus struct {
	Kind StatusKind
	Item Item
}

// Outfit is a set of items containing at most one item per family. Order
// is irrelevant; two outfits with the same items are the same outfit.
type Outfit []Item

func sortedUniqueStrings(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	sort.Strings(out)
	return out
}
