package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// BuilderError variants, returned by CatalogBuilder.Build. Each is a
// distinct error type rather than a single enum with string matching, in
// the teacher's sentinel-error idiom: check for a specific variant with
// the matching Is*Err helper (built on errors.As), not by comparing
// messages.

// EmptyCatalogError is returned when an Assembly has no families.
type EmptyCatalogError struct{}

func (EmptyCatalogError) Error() string { return "catalog: no families registered" }

// IsEmptyCatalogErr returns true if err is or wraps EmptyCatalogError.
func IsEmptyCatalogErr(err error) bool {
	var e EmptyCatalogError
	return errors.As(err, &e)
}

// MultipleFamiliesRegisteredError is returned when the same item is
// registered under more than one family.
type MultipleFamiliesRegisteredError struct {
	Item     Item
	Families []Family
}

func (e *MultipleFamiliesRegisteredError) Error() string {
	return fmt.Sprintf("catalog: item %q registered under multiple families: %s", e.Item, strings.Join(e.Families, ", "))
}

// IsMultipleFamiliesRegisteredErr returns true if err is or wraps
// MultipleFamiliesRegisteredError.
func IsMultipleFamiliesRegisteredErr(err error) bool {
	var e *MultipleFamiliesRegisteredError
	return errors.As(err, &e)
}

// ExclusionMissingConditionError is returned when an ExclusionRule has no
// conditions.
type ExclusionMissingConditionError struct{}

func (ExclusionMissingConditionError) Error() string {
	return "catalog: exclusion rule has no conditions"
}

// IsExclusionMissingConditionErr returns true if err is or wraps
// ExclusionMissingConditionError.
func IsExclusionMissingConditionErr(err error) bool {
	var e ExclusionMissingConditionError
	return errors.As(err, &e)
}

// InclusionMissingConditionError is returned when an InclusionRule has no
// conditions.
type InclusionMissingConditionError struct{}

func (InclusionMissingConditionError) Error() string {
	return "catalog: inclusion rule has no conditions"
}

// IsInclusionMissingConditionErr returns true if err is or wraps
// InclusionMissingConditionError.
func IsInclusionMissingConditionErr(err error) bool {
	var e InclusionMissingConditionError
	return errors.As(err, &e)
}

// ExclusionMissingFamilyError is returned when a rule references an item
// not registered under any family.
type ExclusionMissingFamilyError struct{ Item Item }

func (e *ExclusionMissingFamilyError) Error() string {
	return fmt.Sprintf("catalog: exclusion rule references unregistered item %q", e.Item)
}

// IsExclusionMissingFamilyErr returns true if err is or wraps
// ExclusionMissingFamilyError.
func IsExclusionMissingFamilyErr(err error) bool {
	var e *ExclusionMissingFamilyError
	return errors.As(err, &e)
}

// InclusionMissingFamilyError is returned when a rule references an item
// not registered under any family.
type InclusionMissingFamilyError struct{ Item Item }

func (e *InclusionMissingFamilyError) Error() string {
	return fmt.Sprintf("catalog: inclusion rule references unregistered item %q", e.Item)
}

// IsInclusionMissingFamilyErr returns true if err is or wraps
// InclusionMissingFamilyError.
func IsInclusionMissingFamilyErr(err error) bool {
	var e *InclusionMissingFamilyError
	return errors.As(err, &e)
}

// ExclusionFamilyConflictError is returned when a condition item and an
// effect item of the same exclusion rule share a family.
type ExclusionFamilyConflictError struct {
	Family Family
	Items  []Item
}

func (e *ExclusionFamilyConflictError) Error() string {
	return fmt.Sprintf("catalog: exclusion rule conflicts within family %q: %s", e.Family, strings.Join(e.Items, ", "))
}

// IsExclusionFamilyConflictErr returns true if err is or wraps
// ExclusionFamilyConflictError.
func IsExclusionFamilyConflictErr(err error) bool {
	var e *ExclusionFamilyConflictError
	return errors.As(err, &e)
}

// InclusionFamilyConflictError is returned when a condition item and an
// effect item of the same inclusion rule share a family.
type InclusionFamilyConflictError struct {
	Family Family
	Items  []Item
}

func (e *InclusionFamilyConflictError) Error() string {
	return fmt.Sprintf("catalog: inclusion rule conflicts within family %q: %s", e.Family, strings.Join(e.Items, ", "))
}

// IsInclusionFamilyConflictErr returns true if err is or wraps
// InclusionFamilyConflictError.
func IsInclusionFamilyConflictErr(err error) bool {
	var e *InclusionFamilyConflictError
	return errors.As(err, &e)
}

// CompoundBuilderError wraps more than one distinct BuilderError found
// during validation. Build returns the bare variant when exactly one
// violation was found, and a CompoundBuilderError only when there were
// several (spec §7).
type CompoundBuilderError struct {
	Errors []error
}

func (e *CompoundBuilderError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("catalog: %d validation errors: %s", len(msgs), strings.Join(msgs, "; "))
}

// IsCompoundBuilderErr returns true if err is or wraps
// CompoundBuilderError.
func IsCompoundBuilderErr(err error) bool {
	var e *CompoundBuilderError
	return errors.As(err, &e)
}

// accumulate de-duplicates violations (by message, since several variants
// carry slices and so aren't comparable with ==), sorts them for
// determinism regardless of validation order (spec §8 property 8), and
// returns nil, the bare error, or a CompoundBuilderError.
func accumulate(violations []error) error {
	seen := make(map[string]bool, len(violations))
	unique := make([]error, 0, len(violations))
	for _, v := range violations {
		key := v.Error()
		if !seen[key] {
			seen[key] = true
			unique = append(unique, v)
		}
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i].Error() < unique[j].Error() })

	switch len(unique) {
	case 0:
		return nil
	case 1:
		return unique[0]
	default:
		return &CompoundBuilderError{Errors: unique}
	}
}

// CatalogError variants, returned by Catalog and CatalogState query
// methods when selections or exclusions reference unknown items, or (for
// a binding that persists CatalogState between calls) when a persisted
// token can't be decoded.

// UnknownSelectionsError is returned when selections reference items not
// in the catalog's item index.
type UnknownSelectionsError struct{ Items []Item }

func (e *UnknownSelectionsError) Error() string {
	return fmt.Sprintf("catalog: unknown selections: %s", strings.Join(e.Items, ", "))
}

// IsUnknownSelectionsErr returns true if err is or wraps
// UnknownSelectionsError.
func IsUnknownSelectionsErr(err error) bool {
	var e *UnknownSelectionsError
	return errors.As(err, &e)
}

// UnknownExclusionsError is returned when exclusions reference items not
// in the catalog's item index.
type UnknownExclusionsError struct{ Items []Item }

func (e *UnknownExclusionsError) Error() string {
	return fmt.Sprintf("catalog: unknown exclusions: %s", strings.Join(e.Items, ", "))
}

// IsUnknownExclusionsErr returns true if err is or wraps
// UnknownExclusionsError.
func IsUnknownExclusionsErr(err error) bool {
	var e *UnknownExclusionsError
	return errors.As(err, &e)
}

// UnknownItemsError is returned instead of the narrower
// UnknownSelectionsError/UnknownExclusionsError when both selections and
// exclusions reference unknown items.
type UnknownItemsError struct {
	Selections []Item
	Exclusions []Item
}

func (e *UnknownItemsError) Error() string {
	return fmt.Sprintf("catalog: unknown items in selections [%s] and exclusions [%s]",
		strings.Join(e.Selections, ", "), strings.Join(e.Exclusions, ", "))
}

// IsUnknownItemsErr returns true if err is or wraps UnknownItemsError.
func IsUnknownItemsErr(err error) bool {
	var e *UnknownItemsError
	return errors.As(err, &e)
}

// BadStateError indicates a persisted CatalogState token could not be
// decoded. It is never produced by this package directly — CatalogState
// has no serialized form of its own — but a binding that persists state
// between calls (see internal/statetoken) surfaces decode failures
// through this type so callers can handle it alongside the other
// CatalogError variants uniformly.
type BadStateError struct{ Reason string }

func (e *BadStateError) Error() string { return "catalog: bad state: " + e.Reason }

// IsBadStateErr returns true if err is or wraps BadStateError.
func IsBadStateErr(err error) bool {
	var e *BadStateError
	return errors.As(err, &e)
}

// unknownItemsError builds the right CatalogError variant for a set of
// unrecognized selections/exclusions, per spec §7's precedence: both
// present yields UnknownItemsError, otherwise the narrower variant.
func unknownItemsError(selections, exclusions []Item) error {
	switch {
	case len(selections) > 0 && len(exclusions) > 0:
		return &UnknownItemsError{Selections: selections, Exclusions: exclusions}
	case len(selections) > 0:
		return &UnknownSelectionsError{Items: selections}
	case len(exclusions) > 0:
		return &UnknownExclusionsError{Items: exclusions}
	default:
		return nil
	}
}
