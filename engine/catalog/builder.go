package catalog

import "github.com/tchupp/weave/engine/zdd"

// CatalogBuilder accumulates an Assembly's families and rules, validates
// them, and compiles the result into a Catalog. Use NewCatalogBuilder and
// the fluent Add* methods, then Build.
type CatalogBuilder struct {
	familyOrder []Family
	familyItems map[Family][]Item

	// registrations records every (item, family) pairing in the order
	// seen, duplicates included — needed to report every family an item
	// was mistakenly registered under, not just the first.
	registrations map[Item][]Family
	// itemIndex is first-family-wins, for everything downstream of
	// validation that just needs to look an item's family up once.
	itemIndex map[Item]Family

	exclusions []ExclusionRule
	inclusions []InclusionRule
}

// NewCatalogBuilder returns an empty builder.
func NewCatalogBuilder() *CatalogBuilder {
	return &CatalogBuilder{
		familyItems:   make(map[Family][]Item),
		registrations: make(map[Item][]Family),
		itemIndex:     make(map[Item]Family),
	}
}

// AddItems registers a family and its items. Calling AddItems twice with
// the same family appends to that family's item list.
func (b *CatalogBuilder) AddItems(family Family, items ...Item) *CatalogBuilder {
	if _, ok := b.familyItems[family]; !ok {
		b.familyOrder = append(b.familyOrder, family)
	}
	for _, item := range items {
		b.familyItems[family] = append(b.familyItems[family], item)
		b.registrations[item] = append(b.registrations[item], family)
		if _, ok := b.itemIndex[item]; !ok {
			b.itemIndex[item] = family
		}
	}
	return b
}

// AddExclusionRule adds a rule forbidding any outfit that contains every
// item in conditions together with at least one item in exclusions.
func (b *CatalogBuilder) AddExclusionRule(conditions, exclusions []Item) *CatalogBuilder {
	b.exclusions = append(b.exclusions, ExclusionRule{Conditions: conditions, Exclusions: exclusions})
	return b
}

// AddInclusionRule adds a rule forbidding any outfit that contains every
// item in conditions without also containing every item in inclusions.
func (b *CatalogBuilder) AddInclusionRule(conditions, inclusions []Item) *CatalogBuilder {
	b.inclusions = append(b.inclusions, InclusionRule{Conditions: conditions, Inclusions: inclusions})
	return b
}

// Build validates the accumulated families and rules and, if valid,
// compiles them into a Catalog. Validation failures are returned as a
// bare BuilderError variant when there is exactly one, or a
// CompoundBuilderError when there are several (spec §7).
func (b *CatalogBuilder) Build() (*Catalog, error) {
	violations := b.validate()
	if err := accumulate(violations); err != nil {
		return nil, err
	}

	allItems := make([]Item, 0, len(b.itemIndex))
	for _, family := range b.familyOrder {
		allItems = append(allItems, b.familyItems[family]...)
	}
	universe := zdd.NewUniverse(allItems)

	combinations := universe.Unit()
	for _, family := range b.familyOrder {
		combinations = combinations.Product(universe.Unique(b.familyItems[family]))
	}

	sets := combinations.Trees()
	filtered := make([][]string, 0, len(sets))
	for _, set := range sets {
		if ruleViolated(set, b.exclusions, b.inclusions) {
			continue
		}
		filtered = append(filtered, set)
	}
	combinations = universe.Many(filtered)

	itemIndex := make(map[Item]Family, len(b.itemIndex))
	for item, family := range b.itemIndex {
		itemIndex[item] = family
	}

	return &Catalog{
		combinations: combinations,
		items:        itemIndex,
		familyOrder:  append([]Family(nil), b.familyOrder...),
	}, nil
}

// ruleViolated reports whether outfit (an Outfit's items, already sorted
// by Trees) violates any exclusion or inclusion rule.
func ruleViolated(outfit []string, exclusions []ExclusionRule, inclusions []InclusionRule) bool {
	has := toSet(outfit)
	for _, rule := range exclusions {
		if allPresent(has, rule.Conditions) && anyPresent(has, rule.Exclusions) {
			return true
		}
	}
	for _, rule := range inclusions {
		if allPresent(has, rule.Conditions) && !allPresent(has, rule.Inclusions) {
			return true
		}
	}
	return false
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[it] = true
	}
	return set
}

func allPresent(has map[string]bool, items []Item) bool {
	for _, it := range items {
		if !has[it] {
			return false
		}
	}
	return true
}

func anyPresent(has map[string]bool, items []Item) bool {
	for _, it := range items {
		if has[it] {
			return true
		}
	}
	return false
}

// validate runs every BuilderError check against the accumulated
// families and rules, returning every violation found rather than
// stopping at the first (spec §7).
func (b *CatalogBuilder) validate() []error {
	var violations []error

	if len(b.familyOrder) == 0 {
		violations = append(violations, EmptyCatalogError{})
	}

	for item, families := range b.registrations {
		if distinct := sortedUniqueStrings(families); len(distinct) > 1 {
			violations = append(violations, &MultipleFamiliesRegisteredError{
				Item:     item,
				Families: distinct,
			})
		}
	}

	for _, rule := range b.exclusions {
		violations = append(violations, b.validateExclusion(rule)...)
	}
	for _, rule := range b.inclusions {
		violations = append(violations, b.validateInclusion(rule)...)
	}

	return violations
}

func (b *CatalogBuilder) validateExclusion(rule ExclusionRule) []error {
	var violations []error
	if len(rule.Conditions) == 0 {
		violations = append(violations, ExclusionMissingConditionError{})
	}
	for _, item := range rule.Conditions {
		if _, ok := b.itemIndex[item]; !ok {
			violations = append(violations, &ExclusionMissingFamilyError{Item: item})
		}
	}
	for _, item := range rule.Exclusions {
		if _, ok := b.itemIndex[item]; !ok {
			violations = append(violations, &ExclusionMissingFamilyError{Item: item})
		}
	}
	violations = append(violations, b.conflicts(rule.Conditions, rule.Exclusions, true)...)
	return violations
}

func (b *CatalogBuilder) validateInclusion(rule InclusionRule) []error {
	var violations []error
	if len(rule.Conditions) == 0 {
		violations = append(violations, InclusionMissingConditionError{})
	}
	for _, item := range rule.Conditions {
		if _, ok := b.itemIndex[item]; !ok {
			violations = append(violations, &InclusionMissingFamilyError{Item: item})
		}
	}
	for _, item := range rule.Inclusions {
		if _, ok := b.itemIndex[item]; !ok {
			violations = append(violations, &InclusionMissingFamilyError{Item: item})
		}
	}
	violations = append(violations, b.conflicts(rule.Conditions, rule.Inclusions, false)...)
	return violations
}

// conflicts reports a family shared between a rule's conditions and its
// effect items — such a rule can never fire usefully, since a single
// outfit can never contain two items from the same family.
func (b *CatalogBuilder) conflicts(conditions, effects []Item, exclusion bool) []error {
	var violations []error
	byFamily := make(map[Family][]Item)
	for _, item := range conditions {
		family, ok := b.itemIndex[item]
		if !ok {
			continue
		}
		byFamily[family] = append(byFamily[family], item)
	}
	for _, item := range effects {
		family, ok := b.itemIndex[item]
		if !ok {
			continue
		}
		if existing, ok := byFamily[family]; ok {
			items := sortedUniqueStrings(append(append([]Item{}, existing...), item))
			if exclusion {
				violations = append(violations, &ExclusionFamilyConflictError{Family: family, Items: items})
			} else {
				violations = append(violations, &InclusionFamilyConflictError{Family: family, Items: items})
			}
		}
	}
	return violations
}
