package ruleset

import "errors"

var (
	ErrEmptyName              = errors.New("specification name cannot be empty")
	ErrNilSpecification       = errors.New("specification cannot be nil")
	ErrDuplicateSpecification = errors.New("specification already registered")
	ErrUnknownSpecification   = errors.New("unknown specification")

	ErrEmptyRuleset     = errors.New("ruleset has no rules")
	ErrInvalidOperator  = errors.New("invalid rule operator")
	ErrParsingRuleset   = errors.New("failed to parse ruleset")
	ErrReadingFile      = errors.New("failed to read ruleset file")
	ErrLoadingCancelled = errors.New("ruleset loading cancelled")
)
