// Package specification provides a composable, generic rule-evaluation engine
// built around the specification pattern.
//
// A Specification is a small, stateless predicate over a candidate value. The
// package lets you combine specifications into an OR-chain of AND-groups through
// a fluent builder, and evaluates that chain against one or many candidates
// producing structured results: validity, error and warning failures, and
// human-readable aggregated messages.
//
// # Architecture
//
// Every rule attached to a chain is wrapped in a decorator that binds the
// specification to an expected polarity (Is / IsNot), an optional custom message
// and a Severity. Decorators added with AndIs / AndIsNot join the current group;
// OrIs / OrIsNot open a new group.
//
// Evaluation walks the groups in order. The first group without error-level
// objections wins: errors collected from earlier groups are discarded and the
// candidate is valid. When every group fails, the result carries one Failure per
// distinct specification type across all groups. Warnings never affect validity and
// are collected from every group that was evaluated.
//
// Failures are identified by the runtime type of the specification that produced
// them, so HasError(lot.Expired{}) asks whether any Expired specification failed,
// regardless of the message it produced.
//
// # Usage
//
//	result := specification.For(l).
//	    IsNot(lot.Expired{}).
//	    AndIsNot(lot.Interdicted{}).
//	    AndIs(lot.AvailableOnStock{}).AsWarning().
//	    Evaluate()
//
//	if !result.IsValid() {
//	    fmt.Println(result.ErrorMessage())
//	}
//
// Bulk evaluation partitions a collection:
//
//	results := specification.ForAll(lots).
//	    IsNot(lot.Expired{}).
//	    EvaluateAll()
//
//	usable := results.Valid()
//
// Filter is a cheaper membership test that ignores messages and severity
// bookkeeping:
//
//	usable := specification.ForAll(lots).IsNot(lot.Expired{}).Filter()
//
// # Error Handling
//
// An unsatisfied rule is data, not a fault. Result.Err and Results.Err return a
// Failures value implementing the error interface so failures can be bubbled up
// and recovered with ExtractFailures. Misusing the builder, such as passing a nil
// specification or setting a custom message twice, panics with an error wrapping
// ErrMisuse.
//
// # Concurrency
//
// Chains are single-owner builders and must not be mutated concurrently. Terminal
// operations do not mutate the chain, and EvaluateAllConcurrently spreads bulk
// evaluation over a bounded worker pool when specifications are expensive.
package specification
