package specification

import (
	"reflect"
)

// Specification is a reusable predicate over a candidate.
//
// Implementations must be stateless with respect to evaluation: the same
// instance is shared by every candidate evaluated against a chain.
type Specification[T any] interface {
	Validate(candidate T) bool
}

// ExpectingTrueMessager is implemented by specifications that describe the
// failure of a rule attached with Is, AndIs or OrIs.
type ExpectingTrueMessager[T any] interface {
	MessageWhenExpectingTrue(candidate T) string
}

// ExpectingFalseMessager is implemented by specifications that describe the
// failure of a rule attached with IsNot, AndIsNot or OrIsNot.
type ExpectingFalseMessager[T any] interface {
	MessageWhenExpectingFalse(candidate T) string
}

// Severity classifies a failure.
type Severity int

const (
	// SeverityError blocks validity. It is the default severity of every rule.
	SeverityError Severity = iota
	// SeverityWarning is informational and never affects validity.
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// TypeOf returns the identity used to compare specifications: the runtime type
// with pointer indirection removed, so Expired{} and &Expired{} are the same.
// It returns nil for a nil value.
func TypeOf(spec any) reflect.Type {
	t := reflect.TypeOf(spec)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// IsNil reports whether spec is nil or an interface holding a nil pointer,
// map, slice, func or channel.
func IsNil(spec any) bool {
	if spec == nil {
		return true
	}
	v := reflect.ValueOf(spec)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
