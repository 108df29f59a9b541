package catalog_test

import (
	"testing"

	"github.com/tchupp/weave/engine/catalog"
)

func TestOptionsClassifiesBeforeAnySelection(t *testing.T) {
	c := shirtsAndPants(t)
	state := catalog.NewCatalogState(c)

	options, _, err := state.Options(nil, nil)
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}

	for _, status := range options["shirts"] {
		if status.Kind != catalog.Available {
			t.Errorf("shirts/%s classified %s, want Available", status.Item, status.Kind)
		}
	}
	for _, status := range options["pants"] {
		if status.Kind != catalog.Available {
			t.Errorf("pants/%s classified %s, want Available", status.Item, status.Kind)
		}
	}
}

func TestSelectingFullOutfitExcludesAlternatives(t *testing.T) {
	c, err := catalog.NewCatalogBuilder().
		AddItems("shirts", "red-shirt", "blue-shirt").
		AddItems("pants", "jeans", "slacks").
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	state := catalog.NewCatalogState(c)

	options, next, err := state.Options([]string{"red-shirt", "jeans"}, nil)
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	for _, status := range options["shirts"] {
		if status.Item == "red-shirt" && status.Kind != catalog.Selected {
			t.Errorf("red-shirt classified %s, want Selected", status.Kind)
		}
		if status.Item == "blue-shirt" && status.Kind != catalog.Excluded {
			t.Errorf("blue-shirt classified %s, want Excluded", status.Kind)
		}
	}
	if got := next.Selections(); len(got) != 2 {
		t.Errorf("Selections() = %v, want 2 items", got)
	}
}

func TestExclusionTakesPrecedenceOverSelected(t *testing.T) {
	c, err := catalog.NewCatalogBuilder().
		AddItems("shirts", "red-shirt", "blue-shirt").
		AddItems("pants", "jeans", "slacks").
		AddExclusionRule([]string{"red-shirt"}, []string{"jeans"}).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	state := catalog.NewCatalogState(c)

	// Selecting both red-shirt and jeans puts the state in a contradictory
	// history: jeans was named as a selection, but the exclusion rule
	// rules out every remaining outfit containing it once red-shirt is
	// also selected. Excluded must win.
	options, _, err := state.Options([]string{"red-shirt", "jeans"}, nil)
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	for _, status := range options["pants"] {
		if status.Item == "jeans" && status.Kind != catalog.Excluded {
			t.Errorf("jeans classified %s, want Excluded", status.Kind)
		}
	}
}

func TestCombinationsNarrowAsSelectionsAccumulate(t *testing.T) {
	c := shirtsAndPants(t)
	state := catalog.NewCatalogState(c)

	all, state, err := state.Combinations(nil, nil)
	if err != nil {
		t.Fatalf("Combinations() error = %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("Combinations() = %d outfits, want 4", len(all))
	}

	narrowed, _, err := state.Combinations([]string{"red-shirt"}, nil)
	if err != nil {
		t.Fatalf("Combinations() error = %v", err)
	}
	if len(narrowed) != 2 {
		t.Fatalf("Combinations() after selecting red-shirt = %d outfits, want 2", len(narrowed))
	}
	for _, o := range narrowed {
		found := false
		for _, it := range o {
			if it == "red-shirt" {
				found = true
			}
		}
		if !found {
			t.Errorf("outfit %v missing selected item red-shirt", o)
		}
	}
}

func TestUnknownSelectionReturnsError(t *testing.T) {
	c := shirtsAndPants(t)
	state := catalog.NewCatalogState(c)

	_, _, err := state.Combinations([]string{"ghost-item"}, nil)
	if !catalog.IsUnknownSelectionsErr(err) {
		t.Fatalf("Combinations() error = %v, want UnknownSelectionsError", err)
	}
}

func TestUnknownExclusionReturnsError(t *testing.T) {
	c := shirtsAndPants(t)
	state := catalog.NewCatalogState(c)

	_, _, err := state.Combinations(nil, []string{"ghost-item"})
	if !catalog.IsUnknownExclusionsErr(err) {
		t.Fatalf("Combinations() error = %v, want UnknownExclusionsError", err)
	}
}

func TestUnknownSelectionAndExclusionReturnsCombinedError(t *testing.T) {
	c := shirtsAndPants(t)
	state := catalog.NewCatalogState(c)

	_, _, err := state.Combinations([]string{"ghost-shirt"}, []string{"ghost-pants"})
	if !catalog.IsUnknownItemsErr(err) {
		t.Fatalf("Combinations() error = %v, want UnknownItemsError", err)
	}
}

func TestSelectIsIdempotent(t *testing.T) {
	c := shirtsAndPants(t)
	state := catalog.NewCatalogState(c)

	once, onceState, err := state.Combinations([]string{"red-shirt"}, nil)
	if err != nil {
		t.Fatalf("Combinations() error = %v", err)
	}
	twice, _, err := onceState.Combinations([]string{"red-shirt"}, nil)
	if err != nil {
		t.Fatalf("Combinations() error = %v", err)
	}
	if len(once) != len(twice) {
		t.Errorf("selecting red-shirt twice changed outfit count: %d vs %d", len(once), len(twice))
	}
}

func TestSelectNarrowsHistoryWithoutQuerying(t *testing.T) {
	c := shirtsAndPants(t)
	state := catalog.NewCatalogState(c)

	next, err := state.Select([]string{"red-shirt"}, nil)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if got := next.Selections(); len(got) != 1 || got[0] != "red-shirt" {
		t.Errorf("Selections() = %v, want [red-shirt]", got)
	}

	narrowed, _, err := next.Combinations(nil, nil)
	if err != nil {
		t.Fatalf("Combinations() error = %v", err)
	}
	if len(narrowed) != 2 {
		t.Fatalf("Combinations() after Select(red-shirt) = %d outfits, want 2", len(narrowed))
	}
}

func TestSelectRejectsUnknownItems(t *testing.T) {
	c := shirtsAndPants(t)
	state := catalog.NewCatalogState(c)

	_, err := state.Select([]string{"ghost-item"}, nil)
	if !catalog.IsUnknownSelectionsErr(err) {
		t.Fatalf("Select() error = %v, want UnknownSelectionsError", err)
	}
}

func TestOccurrenceConservationAcrossFamily(t *testing.T) {
	c := shirtsAndPants(t)
	occ := c.ItemOccurrences()
	total := c.Total()

	if sum := occ["red-shirt"] + occ["blue-shirt"]; sum != total {
		t.Errorf("shirts occurrence sum = %d, want %d", sum, total)
	}
	if sum := occ["jeans"] + occ["slacks"]; sum != total {
		t.Errorf("pants occurrence sum = %d, want %d", sum, total)
	}
}
