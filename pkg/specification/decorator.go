package specification

// decorator binds a specification to an expected polarity, a severity and an
// optional custom message.
type decorator[T any] struct {
	spec      Specification[T]
	expected  bool
	message   string
	hasCustom bool
	severity  Severity
}

func newDecorator[T any](spec Specification[T], expected bool) *decorator[T] {
	if IsNil(spec) {
		misuse(ErrNilSpecification)
	}
	return &decorator[T]{spec: spec, expected: expected}
}

func (d *decorator[T]) satisfied(candidate T) bool {
	return d.spec.Validate(candidate) == d.expected
}

// failureFor builds the failure record for candidate. It does not check
// whether the decorator is actually unsatisfied.
func (d *decorator[T]) failureFor(candidate T) Failure {
	return Failure{
		Spec:     TypeOf(d.spec),
		Message:  d.messageFor(candidate),
		Severity: d.severity,
	}
}

func (d *decorator[T]) messageFor(candidate T) string {
	if d.hasCustom {
		return d.message
	}
	if d.expected {
		if m, ok := d.spec.(ExpectingTrueMessager[T]); ok {
			return m.MessageWhenExpectingTrue(candidate)
		}
		return ""
	}
	if m, ok := d.spec.(ExpectingFalseMessager[T]); ok {
		return m.MessageWhenExpectingFalse(candidate)
	}
	return ""
}

// group is an AND-combination of decorators.
type group[T any] struct {
	decorators []*decorator[T]
}

func (g *group[T]) add(d *decorator[T]) {
	g.decorators = append(g.decorators, d)
}

func (g *group[T]) last() *decorator[T] {
	if len(g.decorators) == 0 {
		return nil
	}
	return g.decorators[len(g.decorators)-1]
}

// unsatisfied returns the failing decorators in declaration order.
func (g *group[T]) unsatisfied(candidate T) []*decorator[T] {
	var failed []*decorator[T]
	for _, d := range g.decorators {
		if !d.satisfied(candidate) {
			failed = append(failed, d)
		}
	}
	return failed
}

// acceptable reports whether no error-severity decorator of the group fails.
func (g *group[T]) acceptable(candidate T) bool {
	for _, d := range g.decorators {
		if d.severity == SeverityError && !d.satisfied(candidate) {
			return false
		}
	}
	return true
}
