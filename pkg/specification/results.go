package specification

import (
	"reflect"
	"slices"
)

// Results is the evaluation outcome for a collection of candidates.
//
// Per-candidate lookups resolve candidates by equality: a candidate type with an
// Equal(T) bool method is compared with it, any other type with reflect.DeepEqual.
// When the collection holds several equal candidates, lookups return the first.
type Results[T any] struct {
	valid    []T
	invalid  []T
	all      []T
	results  []*Result[T]
	errors   []string
	warnings []string
}

func newResults[T any](results []*Result[T]) *Results[T] {
	rs := &Results[T]{results: results}
	for _, r := range results {
		if r.IsValid() {
			rs.valid = append(rs.valid, r.candidate)
		} else {
			rs.invalid = append(rs.invalid, r.candidate)
			rs.errors = append(rs.errors, r.errorMessage)
		}
		if r.warningMessage != "" {
			rs.warnings = append(rs.warnings, r.warningMessage)
		}
		rs.all = append(rs.all, r.candidate)
	}
	return rs
}

// AllValid reports whether no candidate is invalid.
func (rs *Results[T]) AllValid() bool {
	return len(rs.invalid) == 0
}

// Valid returns the valid candidates in input order.
func (rs *Results[T]) Valid() []T {
	return slices.Clone(rs.valid)
}

// Invalid returns the invalid candidates in input order.
func (rs *Results[T]) Invalid() []T {
	return slices.Clone(rs.invalid)
}

// All returns every candidate in input order.
func (rs *Results[T]) All() []T {
	return slices.Clone(rs.all)
}

// Results returns the per-candidate results in input order.
func (rs *Results[T]) Results() []*Result[T] {
	return slices.Clone(rs.results)
}

// ErrorMessages returns the error text of the invalid candidates joined by a newline.
func (rs *Results[T]) ErrorMessages() string {
	return joinMessages(rs.errors)
}

// WarningMessages returns the warning text of every candidate joined by a newline.
func (rs *Results[T]) WarningMessages() string {
	return joinMessages(rs.warnings)
}

func (rs *Results[T]) TotalErrors() int {
	var n int
	for _, r := range rs.results {
		n += r.TotalErrors()
	}
	return n
}

func (rs *Results[T]) TotalWarnings() int {
	var n int
	for _, r := range rs.results {
		n += r.TotalWarnings()
	}
	return n
}

// HasError reports whether any candidate failed spec with error severity.
func (rs *Results[T]) HasError(spec any) bool {
	return slices.ContainsFunc(rs.results, func(r *Result[T]) bool { return r.HasError(spec) })
}

// HasWarning reports whether any candidate failed spec with warning severity.
func (rs *Results[T]) HasWarning(spec any) bool {
	return slices.ContainsFunc(rs.results, func(r *Result[T]) bool { return r.HasWarning(spec) })
}

// HasErrorFor reports whether candidate failed spec with error severity.
// It returns false for a candidate that is not part of the results.
func (rs *Results[T]) HasErrorFor(spec any, candidate T) bool {
	r, ok := rs.ResultFor(candidate)
	if !ok {
		return false
	}
	return r.HasError(spec)
}

// HasWarningFor reports whether candidate failed spec with warning severity.
// It returns false for a candidate that is not part of the results.
func (rs *Results[T]) HasWarningFor(spec any, candidate T) bool {
	r, ok := rs.ResultFor(candidate)
	if !ok {
		return false
	}
	return r.HasWarning(spec)
}

// ResultFor returns the result of the first candidate equal to candidate.
func (rs *Results[T]) ResultFor(candidate T) (*Result[T], bool) {
	for _, r := range rs.results {
		if equal(r.candidate, candidate) {
			return r, true
		}
	}
	return nil, false
}

// Err returns nil when every candidate is valid, otherwise the error failures
// of the invalid candidates deduplicated by specification type.
func (rs *Results[T]) Err() error {
	if rs.AllValid() {
		return nil
	}
	var fs Failures
	for _, r := range rs.results {
		fs = fs.merge(r.errors...)
	}
	return fs
}

func equal[T any](a, b T) bool {
	if eq, ok := any(a).(interface{ Equal(T) bool }); ok {
		return eq.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}
