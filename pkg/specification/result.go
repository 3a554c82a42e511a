package specification

import "slices"

// Result is the evaluation outcome for a single candidate. It is immutable.
type Result[T any] struct {
	candidate      T
	valid          bool
	errors         Failures
	warnings       Failures
	errorMessage   string
	warningMessage string
}

func newResult[T any](candidate T, valid bool, errs, warnings Failures) *Result[T] {
	return &Result[T]{
		candidate:      candidate,
		valid:          valid,
		errors:         errs,
		warnings:       warnings,
		errorMessage:   errs.text(),
		warningMessage: warnings.text(),
	}
}

// Candidate returns the evaluated candidate.
func (r *Result[T]) Candidate() T {
	return r.candidate
}

func (r *Result[T]) IsValid() bool {
	return r.valid
}

// ErrorMessage returns the non-empty error messages joined by a newline.
func (r *Result[T]) ErrorMessage() string {
	return r.errorMessage
}

// WarningMessage returns the non-empty warning messages joined by a newline.
// Warnings are reported regardless of validity.
func (r *Result[T]) WarningMessage() string {
	return r.warningMessage
}

// TotalErrors returns the number of distinct specification types that failed
// with error severity.
func (r *Result[T]) TotalErrors() int {
	return len(r.errors)
}

func (r *Result[T]) TotalWarnings() int {
	return len(r.warnings)
}

// Errors returns a copy of the error failures.
func (r *Result[T]) Errors() Failures {
	return slices.Clone(r.errors)
}

// Warnings returns a copy of the warning failures.
func (r *Result[T]) Warnings() Failures {
	return slices.Clone(r.warnings)
}

// HasError reports whether a specification of the type of spec failed with
// error severity.
func (r *Result[T]) HasError(spec any) bool {
	return r.errors.Has(spec)
}

// HasWarning reports whether a specification of the type of spec failed with
// warning severity.
func (r *Result[T]) HasWarning(spec any) bool {
	return r.warnings.Has(spec)
}

// Err returns nil for a valid candidate and the error Failures otherwise.
func (r *Result[T]) Err() error {
	if r.valid {
		return nil
	}
	return r.Errors()
}
