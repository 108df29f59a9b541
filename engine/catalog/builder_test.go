package catalog_test

import (
	"sort"
	"testing"

	"github.com/tchupp/weave/engine/catalog"
)

func shirtsAndPants(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.NewCatalogBuilder().
		AddItems("shirts", "red-shirt", "blue-shirt").
		AddItems("pants", "jeans", "slacks").
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return c
}

func outfitStrings(outfits []catalog.Outfit) []string {
	out := make([]string, len(outfits))
	for i, o := range outfits {
		items := append([]string(nil), o...)
		sort.Strings(items)
		out[i] = join(items)
	}
	sort.Strings(out)
	return out
}

func join(items []string) string {
	s := ""
	for i, it := range items {
		if i > 0 {
			s += ","
		}
		s += it
	}
	return s
}

func TestBuildProducesFullCartesianProduct(t *testing.T) {
	c := shirtsAndPants(t)

	got := outfitStrings(c.Combinations())
	want := []string{
		"blue-shirt,jeans",
		"blue-shirt,slacks",
		"jeans,red-shirt",
		"red-shirt,slacks",
	}
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("Combinations() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Combinations()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExclusionRuleRemovesViolatingOutfits(t *testing.T) {
	c, err := catalog.NewCatalogBuilder().
		AddItems("shirts", "red-shirt", "blue-shirt").
		AddItems("pants", "jeans", "slacks").
		AddExclusionRule([]string{"red-shirt"}, []string{"jeans"}).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	for _, o := range c.Combinations() {
		has := map[string]bool{}
		for _, it := range o {
			has[it] = true
		}
		if has["red-shirt"] && has["jeans"] {
			t.Errorf("Combinations() still contains forbidden outfit %v", o)
		}
	}
	if got, want := c.Total(), 3; got != want {
		t.Errorf("Total() = %d, want %d", got, want)
	}
}

func TestInclusionRuleRemovesViolatingOutfits(t *testing.T) {
	c, err := catalog.NewCatalogBuilder().
		AddItems("shirts", "red-shirt", "blue-shirt").
		AddItems("pants", "jeans", "slacks").
		AddInclusionRule([]string{"red-shirt"}, []string{"slacks"}).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	for _, o := range c.Combinations() {
		has := map[string]bool{}
		for _, it := range o {
			has[it] = true
		}
		if has["red-shirt"] && !has["slacks"] {
			t.Errorf("Combinations() still contains forbidden outfit %v", o)
		}
	}
	if got, want := c.Total(), 3; got != want {
		t.Errorf("Total() = %d, want %d", got, want)
	}
}

func TestEmptyCatalogError(t *testing.T) {
	_, err := catalog.NewCatalogBuilder().Build()
	if !catalog.IsEmptyCatalogErr(err) {
		t.Fatalf("Build() error = %v, want EmptyCatalogError", err)
	}
}

func TestMultipleFamiliesRegisteredError(t *testing.T) {
	_, err := catalog.NewCatalogBuilder().
		AddItems("shirts", "red-shirt").
		AddItems("pants", "red-shirt").
		Build()
	if !catalog.IsMultipleFamiliesRegisteredErr(err) {
		t.Fatalf("Build() error = %v, want MultipleFamiliesRegisteredError", err)
	}
}

func TestExclusionMissingConditionError(t *testing.T) {
	_, err := catalog.NewCatalogBuilder().
		AddItems("shirts", "red-shirt").
		AddExclusionRule(nil, []string{"red-shirt"}).
		Build()
	if !catalog.IsExclusionMissingConditionErr(err) {
		t.Fatalf("Build() error = %v, want ExclusionMissingConditionError", err)
	}
}

func TestExclusionMissingFamilyError(t *testing.T) {
	_, err := catalog.NewCatalogBuilder().
		AddItems("shirts", "red-shirt").
		AddExclusionRule([]string{"red-shirt"}, []string{"ghost-item"}).
		Build()
	if !catalog.IsExclusionMissingFamilyErr(err) {
		t.Fatalf("Build() error = %v, want ExclusionMissingFamilyError", err)
	}
}

func TestExclusionFamilyConflictError(t *testing.T) {
	_, err := catalog.NewCatalogBuilder().
		AddItems("shirts", "red-shirt", "blue-shirt").
		AddExclusionRule([]string{"red-shirt"}, []string{"blue-shirt"}).
		Build()
	if !catalog.IsExclusionFamilyConflictErr(err) {
		t.Fatalf("Build() error = %v, want ExclusionFamilyConflictError", err)
	}
}

func TestCompoundBuilderErrorWhenMultipleViolations(t *testing.T) {
	_, err := catalog.NewCatalogBuilder().
		AddItems("shirts", "red-shirt").
		AddItems("pants", "red-shirt").
		AddExclusionRule(nil, []string{"ghost-item"}).
		Build()
	if !catalog.IsCompoundBuilderErr(err) {
		t.Fatalf("Build() error = %v, want CompoundBuilderError", err)
	}
}

func TestValidationErrorsAreDeterministic(t *testing.T) {
	build := func() error {
		_, err := catalog.NewCatalogBuilder().
			AddItems("shirts", "red-shirt").
			AddItems("pants", "red-shirt").
			AddExclusionRule(nil, []string{"ghost-item"}).
			Build()
		return err
	}

	first := build().Error()
	for i := 0; i < 5; i++ {
		if got := build().Error(); got != first {
			t.Fatalf("Build() error message is nondeterministic: %q vs %q", got, first)
		}
	}
}
