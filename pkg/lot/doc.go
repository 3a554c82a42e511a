// Package lot is a small inventory domain used to exercise the specification
// engine: stock lots and the specifications that decide whether a lot can be
// consumed.
//
//	l := lot.New("L-001", lot.WithExpiration(time.Now().AddDate(0, 1, 0)), lot.WithQuantity(10))
//
//	result := specification.For(l).
//	    IsNot(lot.Expired{}).
//	    AndIsNot(lot.Interdicted{}).
//	    AndIs(lot.AvailableOnStock{}).
//	    Evaluate()
//
// Register adds the specifications to a ruleset registry under the names
// "expired", "interdicted" and "available_on_stock".
package lot
