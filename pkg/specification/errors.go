package specification

import "errors"

var (
	// ErrMisuse is wrapped by every panic raised for an invalid builder call.
	ErrMisuse = errors.New("specification: invalid chain construction")

	// ErrNilSpecification is raised when a nil specification is attached to a chain.
	ErrNilSpecification = errors.New("specification must not be nil")

	// ErrNoDecorator is raised when a modifier is applied before any rule was attached.
	ErrNoDecorator = errors.New("no rule attached to the chain")

	// ErrMessageAlreadySet is raised when WithMessage is called twice for one rule.
	ErrMessageAlreadySet = errors.New("custom message already set for the last rule")

	// ErrAlreadyWarning is raised when AsWarning is called twice for one rule.
	ErrAlreadyWarning = errors.New("last rule is already a warning")

	// ErrNoCandidate is raised when Evaluate is called on a chain without candidates.
	ErrNoCandidate = errors.New("no candidate to evaluate")

	// ErrInvalidWorkers is returned when a concurrent evaluation is given less than one worker.
	ErrInvalidWorkers = errors.New("number of workers must be at least 1")
)

func misuse(err error) {
	panic(errors.Join(ErrMisuse, err))
}
