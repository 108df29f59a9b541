package catalog

import (
	"sort"

	"github.com/tchupp/weave/engine/zdd"
)

// Catalog is the compiled, immutable result of a CatalogBuilder's Build:
// the family-of-valid-outfits ZDD plus the item-to-family index needed to
// restrict and classify against it. Build a Catalog via NewCatalogBuilder;
// query it directly, or wrap it in a CatalogState to track a selection
// and exclusion history across calls.
type Catalog struct {
	combinations zdd.Forest
	items        map[Item]Family
	familyOrder  []Family
}

// Combinations returns every valid outfit, as a deterministic sequence
// (spec §8).
func (c *Catalog) Combinations() []Outfit {
	sets := c.combinations.Trees()
	out := make([]Outfit, len(sets))
	for i, s := range sets {
		out[i] = Outfit(s)
	}
	return out
}

// Family returns the family an item belongs to, and whether it was
// recognized at all.
func (c *Catalog) Family(item Item) (Family, bool) {
	family, ok := c.items[item]
	return family, ok
}

// NotRecognized filters items down to those absent from the catalog's
// item index.
func (c *Catalog) NotRecognized(items []Item) []Item {
	var unknown []Item
	for _, item := range items {
		if _, ok := c.items[item]; !ok {
			unknown = append(unknown, item)
		}
	}
	return unknown
}

// Restrict returns a new Catalog containing only the outfits that
// contain every item in selections and none of the items in exclusions.
// The item index and family order are unchanged; only the member outfits
// narrow.
func (c *Catalog) Restrict(selections, exclusions []Item) *Catalog {
	combinations := c.combinations
	if len(selections) > 0 {
		combinations = combinations.SubsetAll(selections)
	}
	if len(exclusions) > 0 {
		combinations = combinations.SubsetNone(exclusions)
	}
	return &Catalog{combinations: combinations, items: c.items, familyOrder: c.familyOrder}
}

// ItemOccurrences returns, for every recognized item, the number of
// currently valid outfits that contain it. Items with zero valid outfits
// still get an entry — Occurrences on the underlying Forest omits items
// it never reaches, but Catalog's callers (Options, in particular) need
// to distinguish "excluded" from "unrecognized".
func (c *Catalog) ItemOccurrences() map[Item]int {
	occ := c.combinations.Occurrences()
	out := make(map[Item]int, len(c.items))
	for item := range c.items {
		out[item] = occ[item]
	}
	return out
}

// Total returns the number of currently valid outfits.
func (c *Catalog) Total() int { return c.combinations.Len() }

// Families returns the catalog's families in registration order.
func (c *Catalog) Families() []Family {
	return append([]Family(nil), c.familyOrder...)
}

// itemsByFamily partitions the catalog's recognized items by family, with
// each family's items sorted by identifier; used by Options to group its
// result. The returned map carries no family order.
func (c *Catalog) itemsByFamily() map[Family][]Item {
	byFamily := make(map[Family][]Item, len(c.familyOrder))
	for item, family := range c.items {
		byFamily[family] = append(byFamily[family], item)
	}
	for family, items := range byFamily {
		sort.Strings(items)
		byFamily[family] = items
	}
	return byFamily
}
