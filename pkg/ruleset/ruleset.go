package ruleset

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Operator joins a rule to the previous ones.
type Operator string

const (
	// OpAnd adds the rule to the current group. It is the default.
	OpAnd Operator = "and"
	// OpOr opens a new group with the rule.
	OpOr Operator = "or"
)

// Rule is one entry of a ruleset document.
type Rule struct {
	Spec    string   `yaml:"spec"`
	Op      Operator `yaml:"op,omitempty"`
	Expect  *bool    `yaml:"expect,omitempty"`
	Message string   `yaml:"message,omitempty"`
	Warning bool     `yaml:"warning,omitempty"`
}

// Expected returns the expected polarity of the rule, true unless set otherwise.
func (r Rule) Expected() bool {
	return r.Expect == nil || *r.Expect
}

func (r Rule) operator() Operator {
	if r.Op == "" {
		return OpAnd
	}
	return r.Op
}

// Ruleset is a named, ordered list of rules.
type Ruleset struct {
	Name  string `yaml:"name"`
	Rules []Rule `yaml:"rules"`
}

// Parse decodes a YAML or JSON ruleset document and checks its structure.
func Parse(data []byte) (*Ruleset, error) {
	var rs Ruleset
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, errors.Join(ErrParsingRuleset, err)
	}
	if err := rs.check(); err != nil {
		return nil, err
	}
	return &rs, nil
}

// LoadFile reads and parses the ruleset stored at path.
func LoadFile(ctx context.Context, path string) (*Ruleset, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		content, readErr = os.ReadFile(path)
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, errors.Join(ErrReadingFile, readErr)
	}
	if len(content) == 0 {
		return nil, errors.Join(ErrEmptyRuleset, fmt.Errorf("file %q is empty", path))
	}

	return Parse(content)
}

// Catalog lists the specification names known to a registry.
type Catalog interface {
	Names() []string
}

// Validate checks the document structure and that every rule names a
// specification listed by catalog.
func (rs *Ruleset) Validate(catalog Catalog) error {
	if err := rs.check(); err != nil {
		return err
	}

	known := make(map[string]bool)
	for _, name := range catalog.Names() {
		known[name] = true
	}

	var errs []error
	for i, rule := range rs.Rules {
		if !known[rule.Spec] {
			errs = append(errs, fmt.Errorf("rule %d: %q", i, rule.Spec))
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrUnknownSpecification}, errs...)...)
	}
	return nil
}

func (rs *Ruleset) check() error {
	if len(rs.Rules) == 0 {
		return ErrEmptyRuleset
	}
	for i, rule := range rs.Rules {
		if rule.Spec == "" {
			return errors.Join(ErrEmptyName, fmt.Errorf("rule %d", i))
		}
		switch rule.operator() {
		case OpAnd:
		case OpOr:
			if i == 0 {
				return errors.Join(ErrInvalidOperator, errors.New("first rule cannot use \"or\""))
			}
		default:
			return errors.Join(ErrInvalidOperator, fmt.Errorf("rule %d: %q", i, rule.Op))
		}
	}
	return nil
}
