package specification

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Subject is the entry point of a chain: it holds the candidates a chain is
// started for until the first rule is attached.
type Subject[T any] struct {
	candidates []T
}

// For starts a chain for a single candidate.
func For[T any](candidate T) *Subject[T] {
	return &Subject[T]{candidates: []T{candidate}}
}

// ForAll starts a chain for a collection of candidates. The slice is copied.
func ForAll[T any](candidates []T) *Subject[T] {
	return &Subject[T]{candidates: slices.Clone(candidates)}
}

// Is starts the chain with a rule expecting spec to be satisfied.
func (s *Subject[T]) Is(spec Specification[T]) *Chain[T] {
	return s.start(spec, true)
}

// IsNot starts the chain with a rule expecting spec not to be satisfied.
func (s *Subject[T]) IsNot(spec Specification[T]) *Chain[T] {
	return s.start(spec, false)
}

func (s *Subject[T]) start(spec Specification[T], expected bool) *Chain[T] {
	c := &Chain[T]{candidates: s.candidates}
	c.or(spec, expected)
	return c
}

// Chain is an OR-combination of AND-groups of rules bound to its candidates.
//
// Rule methods mutate and return the receiver. WithMessage and AsWarning always
// target the most recently attached rule, so call them right after the rule they
// modify. A chain is owned by a single goroutine while it is built; terminal
// operations never mutate it.
type Chain[T any] struct {
	candidates []T
	groups     []*group[T]
}

// AndIs adds a rule expecting spec to be satisfied to the current group.
func (c *Chain[T]) AndIs(spec Specification[T]) *Chain[T] {
	c.and(spec, true)
	return c
}

// AndIsNot adds a rule expecting spec not to be satisfied to the current group.
func (c *Chain[T]) AndIsNot(spec Specification[T]) *Chain[T] {
	c.and(spec, false)
	return c
}

// OrIs opens a new group with a rule expecting spec to be satisfied.
func (c *Chain[T]) OrIs(spec Specification[T]) *Chain[T] {
	c.or(spec, true)
	return c
}

// OrIsNot opens a new group with a rule expecting spec not to be satisfied.
func (c *Chain[T]) OrIsNot(spec Specification[T]) *Chain[T] {
	c.or(spec, false)
	return c
}

// WithMessage overrides the failure message of the most recently added rule,
// whatever its polarity. It panics if the rule already has a custom message.
func (c *Chain[T]) WithMessage(message string) *Chain[T] {
	d := c.lastDecorator()
	if d.hasCustom {
		misuse(ErrMessageAlreadySet)
	}
	d.message = message
	d.hasCustom = true
	return c
}

// AsWarning turns the most recently added rule into a warning. It panics if the
// rule is already a warning.
func (c *Chain[T]) AsWarning() *Chain[T] {
	d := c.lastDecorator()
	if d.severity == SeverityWarning {
		misuse(ErrAlreadyWarning)
	}
	d.severity = SeverityWarning
	return c
}

func (c *Chain[T]) and(spec Specification[T], expected bool) {
	d := newDecorator(spec, expected)
	if len(c.groups) == 0 {
		c.groups = append(c.groups, &group[T]{})
	}
	c.groups[len(c.groups)-1].add(d)
}

func (c *Chain[T]) or(spec Specification[T], expected bool) {
	d := newDecorator(spec, expected)
	g := &group[T]{}
	g.add(d)
	c.groups = append(c.groups, g)
}

func (c *Chain[T]) lastDecorator() *decorator[T] {
	if len(c.groups) == 0 {
		misuse(ErrNoDecorator)
	}
	d := c.groups[len(c.groups)-1].last()
	if d == nil {
		misuse(ErrNoDecorator)
	}
	return d
}

// Groups returns the number of OR-groups of the chain.
func (c *Chain[T]) Groups() int {
	return len(c.groups)
}

// Filter returns the candidates accepted by at least one group, in input order.
// Messages and warnings are not computed.
func (c *Chain[T]) Filter() []T {
	var matched []T
	for _, candidate := range c.candidates {
		if matches(c.groups, candidate) {
			matched = append(matched, candidate)
		}
	}
	return matched
}

// Evaluate evaluates the candidate the chain was started for. On a chain
// started with ForAll it evaluates the first candidate, and panics when there
// is none.
func (c *Chain[T]) Evaluate() *Result[T] {
	if len(c.candidates) == 0 {
		misuse(ErrNoCandidate)
	}
	return evaluate(c.groups, c.candidates[0])
}

// EvaluateAll evaluates every candidate in input order.
func (c *Chain[T]) EvaluateAll() *Results[T] {
	results := make([]*Result[T], 0, len(c.candidates))
	for _, candidate := range c.candidates {
		results = append(results, evaluate(c.groups, candidate))
	}
	return newResults(results)
}

// EvaluateAllConcurrently produces the same Results as EvaluateAll using at most
// workers goroutines. It stops early and returns the context error when ctx is
// canceled.
func (c *Chain[T]) EvaluateAllConcurrently(ctx context.Context, workers int) (*Results[T], error) {
	if workers < 1 {
		return nil, ErrInvalidWorkers
	}

	results := make([]*Result[T], len(c.candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, candidate := range c.candidates {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = evaluate(c.groups, candidate)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return newResults(results), nil
}
