package specification

// evaluate runs the OR-of-AND-groups algorithm for one candidate.
//
// Groups are visited in order. Warnings of every visited group are merged
// unconditionally. The first group without error-level failures makes the
// candidate valid, discards the errors gathered so far and stops the walk.
func evaluate[T any](groups []*group[T], candidate T) *Result[T] {
	var (
		errs     Failures
		warnings Failures
		valid    = true
	)

	for _, g := range groups {
		var groupErrs, groupWarnings Failures
		for _, d := range g.unsatisfied(candidate) {
			if d.severity == SeverityWarning {
				groupWarnings = append(groupWarnings, d.failureFor(candidate))
				continue
			}
			groupErrs = append(groupErrs, d.failureFor(candidate))
		}

		warnings = warnings.merge(groupWarnings...)

		valid = groupErrs.IsEmpty()
		if valid {
			errs = nil
			break
		}
		errs = errs.merge(groupErrs...)
	}

	return newResult(candidate, valid, errs, warnings)
}

// matches reports whether any group accepts candidate.
func matches[T any](groups []*group[T], candidate T) bool {
	for _, g := range groups {
		if g.acceptable(candidate) {
			return true
		}
	}
	return false
}
