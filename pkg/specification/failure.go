package specification

import (
	"errors"
	"reflect"
	"strings"
)

// messageSeparator joins failure messages in aggregated text.
const messageSeparator = "\n"

// Failure is the outcome of one unsatisfied rule for one candidate.
type Failure struct {
	// Spec is the identity of the specification that failed, see TypeOf.
	Spec     reflect.Type
	Message  string
	Severity Severity
}

// Is reports whether the failure was produced by a specification of the same
// type as spec.
func (f Failure) Is(spec any) bool {
	t := TypeOf(spec)
	return t != nil && f.Spec == t
}

// Name returns the specification type name, or an empty string.
func (f Failure) Name() string {
	if f.Spec == nil {
		return ""
	}
	return f.Spec.Name()
}

// Failures is an ordered collection of failures, deduplicated by specification type.
type Failures []Failure

func (fs Failures) Error() string {
	if len(fs) == 0 {
		return "specification not satisfied"
	}

	parts := make([]string, 0, len(fs))
	for _, f := range fs {
		if f.Message == "" {
			parts = append(parts, f.Name())
			continue
		}
		parts = append(parts, f.Name()+": "+f.Message)
	}
	return "specification not satisfied: " + strings.Join(parts, "; ")
}

// Has reports whether a failure of the specification type of spec is present.
func (fs Failures) Has(spec any) bool {
	t := TypeOf(spec)
	if t == nil {
		return false
	}
	return fs.hasType(t)
}

func (fs Failures) hasType(t reflect.Type) bool {
	for _, f := range fs {
		if f.Spec == t {
			return true
		}
	}
	return false
}

// Messages returns the non-empty failure messages in order.
func (fs Failures) Messages() []string {
	var messages []string
	for _, f := range fs {
		if f.Message != "" {
			messages = append(messages, f.Message)
		}
	}
	return messages
}

// Types returns the specification types in order.
func (fs Failures) Types() []reflect.Type {
	types := make([]reflect.Type, 0, len(fs))
	for _, f := range fs {
		types = append(types, f.Spec)
	}
	return types
}

func (fs Failures) IsEmpty() bool {
	return len(fs) == 0
}

// merge appends every failure whose specification type is not yet present.
func (fs Failures) merge(others ...Failure) Failures {
	for _, f := range others {
		if !fs.hasType(f.Spec) {
			fs = append(fs, f)
		}
	}
	return fs
}

func (fs Failures) text() string {
	return joinMessages(fs.Messages())
}

func joinMessages(messages []string) string {
	var sb strings.Builder
	for _, m := range messages {
		if m == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(messageSeparator)
		}
		sb.WriteString(m)
	}
	return sb.String()
}

// ExtractFailures extracts Failures from an error.
func ExtractFailures(err error) Failures {
	if err == nil {
		return nil
	}

	var fs Failures
	if errors.As(err, &fs) {
		return fs
	}

	return nil
}

func IsFailure(err error) bool {
	if err == nil {
		return false
	}

	var fs Failures
	return errors.As(err, &fs)
}
