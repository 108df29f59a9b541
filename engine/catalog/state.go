package catalog

// CatalogState wraps a Catalog with the selection and exclusion history
// that has been applied to it so far, so a caller can drive a multi-step
// configuration session (select an item, see what's still available,
// select another) without re-validating or re-deriving history on every
// call. CatalogState values are immutable: every method returns a new
// CatalogState rather than mutating the receiver, in the same pattern
// Catalog.Restrict uses for the Forest underneath it.
type CatalogState struct {
	catalog    *Catalog
	selections []Item
	exclusions []Item
}

// NewCatalogState returns a CatalogState over catalog with no selection
// or exclusion history.
func NewCatalogState(catalog *Catalog) *CatalogState {
	return &CatalogState{catalog: catalog}
}

// Select validates selections and exclusions against the catalog's item
// index and returns the state with them merged into history, without
// computing outfits or options — the pure narrowing step Combinations and
// Options both build on (the Rust original's Catalog::select plays the
// same role, narrowing the stored state without forcing a query).
func (s *CatalogState) Select(selections, exclusions []Item) (*CatalogState, error) {
	return s.chain(selections, exclusions)
}

// Combinations validates selections and exclusions against the
// catalog's item index, then returns the outfits consistent with both
// the new state's full history, and the new state itself for chaining.
// Validation failures leave the receiver's state untouched; the returned
// CatalogState is nil in that case.
func (s *CatalogState) Combinations(selections, exclusions []Item) ([]Outfit, *CatalogState, error) {
	next, err := s.chain(selections, exclusions)
	if err != nil {
		return nil, nil, err
	}
	restricted := s.catalog.Restrict(next.selections, next.exclusions)
	return restricted.Combinations(), next, nil
}

// Options validates selections and exclusions, then classifies every
// recognized item against the resulting restricted catalog:
//
//   - Excluded: zero valid outfits contain the item
//   - Selected: the item is part of the effective selection history
//   - Required: every valid outfit contains the item
//   - Available: otherwise
//
// Excluded takes precedence over Selected, which takes precedence over
// Required, matching the conflict-tolerant reading of a history that may
// itself have selected an item the rules now rule out (spec §4.3.2).
func (s *CatalogState) Options(selections, exclusions []Item) (map[Family][]ItemStatus, *CatalogState, error) {
	next, err := s.chain(selections, exclusions)
	if err != nil {
		return nil, nil, err
	}
	restricted := s.catalog.Restrict(next.selections, next.exclusions)

	total := restricted.Total()
	occurrences := restricted.ItemOccurrences()
	selected := toSet(next.selections)

	byFamily := restricted.itemsByFamily()
	result := make(map[Family][]ItemStatus, len(byFamily))
	for family, items := range byFamily {
		statuses := make([]ItemStatus, 0, len(items))
		for _, item := range items {
			statuses = append(statuses, ItemStatus{Item: item, Kind: classify(item, occurrences[item], total, selected)})
		}
		result[family] = statuses
	}
	return result, next, nil
}

func classify(item Item, count, total int, selected map[Item]bool) StatusKind {
	switch {
	case count == 0:
		return Excluded
	case selected[item]:
		return Selected
	case total > 0 && count == total:
		return Required
	default:
		return Available
	}
}

// chain validates selections/exclusions against the catalog's item
// index, then returns a new CatalogState with them merged into the
// existing, deduplicated, sorted history.
func (s *CatalogState) chain(selections, exclusions []Item) (*CatalogState, error) {
	unknownSel := s.catalog.NotRecognized(selections)
	unknownExcl := s.catalog.NotRecognized(exclusions)
	if err := unknownItemsError(unknownSel, unknownExcl); err != nil {
		return nil, err
	}

	return &CatalogState{
		catalog:    s.catalog,
		selections: sortedUniqueStrings(append(append([]Item{}, s.selections...), selections...)),
		exclusions: sortedUniqueStrings(append(append([]Item{}, s.exclusions...), exclusions...)),
	}, nil
}

// Selections returns the state's accumulated selection history.
func (s *CatalogState) Selections() []Item { return append([]Item(nil), s.selections...) }

// Exclusions returns the state's accumulated exclusion history.
func (s *CatalogState) Exclusions() []Item { return append([]Item(nil), s.exclusions...) }
