package ruleset

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/speckit/pkg/specification"
)

type step[T any] struct {
	rule Rule
	spec specification.Specification[T]
}

// Compiled is a ruleset bound to the specifications of a registry. It is
// immutable and safe for concurrent use.
type Compiled[T any] struct {
	name  string
	steps []step[T]
}

// Compile resolves every rule of rs through registry.
func Compile[T any](rs *Ruleset, registry *Registry[T]) (*Compiled[T], error) {
	if rs == nil {
		return nil, ErrEmptyRuleset
	}
	if err := rs.Validate(registry); err != nil {
		return nil, err
	}

	steps := make([]step[T], 0, len(rs.Rules))
	for i, rule := range rs.Rules {
		spec, ok := registry.Lookup(rule.Spec)
		if !ok {
			return nil, errors.Join(ErrUnknownSpecification, fmt.Errorf("rule %d: %q", i, rule.Spec))
		}
		steps = append(steps, step[T]{rule: rule, spec: spec})
	}

	return &Compiled[T]{name: rs.Name, steps: steps}, nil
}

// Name returns the ruleset name.
func (c *Compiled[T]) Name() string {
	return c.name
}

// Filter returns the candidates accepted by the ruleset, in input order.
func (c *Compiled[T]) Filter(candidates []T) []T {
	return c.chain(specification.ForAll(candidates)).Filter()
}

// Evaluate evaluates a single candidate.
func (c *Compiled[T]) Evaluate(candidate T) *specification.Result[T] {
	return c.chain(specification.For(candidate)).Evaluate()
}

// EvaluateAll evaluates every candidate in input order.
func (c *Compiled[T]) EvaluateAll(candidates []T) *specification.Results[T] {
	return c.chain(specification.ForAll(candidates)).EvaluateAll()
}

// EvaluateAllConcurrently evaluates every candidate with at most workers goroutines.
func (c *Compiled[T]) EvaluateAllConcurrently(ctx context.Context, candidates []T, workers int) (*specification.Results[T], error) {
	return c.chain(specification.ForAll(candidates)).EvaluateAllConcurrently(ctx, workers)
}

// chain replays the compiled rules onto the fluent builder.
func (c *Compiled[T]) chain(subject *specification.Subject[T]) *specification.Chain[T] {
	var ch *specification.Chain[T]
	for i, s := range c.steps {
		expected := s.rule.Expected()
		switch {
		case i == 0 && expected:
			ch = subject.Is(s.spec)
		case i == 0:
			ch = subject.IsNot(s.spec)
		case s.rule.operator() == OpOr && expected:
			ch.OrIs(s.spec)
		case s.rule.operator() == OpOr:
			ch.OrIsNot(s.spec)
		case expected:
			ch.AndIs(s.spec)
		default:
			ch.AndIsNot(s.spec)
		}

		if s.rule.Message != "" {
			ch.WithMessage(s.rule.Message)
		}
		if s.rule.Warning {
			ch.AsWarning()
		}
	}
	return ch
}
