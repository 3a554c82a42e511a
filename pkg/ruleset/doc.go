// Package ruleset describes specification chains declaratively.
//
// A Registry maps names to specification prototypes. A Ruleset is a YAML (or
// JSON) document listing rules in chain order; Compile resolves the names
// through a registry and replays the rules onto the specification builder, so a
// compiled ruleset evaluates exactly like the equivalent fluent chain.
//
// # Document format
//
//	name: usable-lot
//	rules:
//	  - spec: expired
//	    expect: false
//	  - spec: interdicted
//	    op: and
//	    expect: false
//	    message: "lot is blocked"
//	  - spec: available_on_stock
//	    op: and
//	    warning: true
//	  - spec: interdicted
//	    op: or
//
// The op field is "and" (the default) to extend the current group or "or" to
// open a new one. The first rule always opens the chain and may not use "or".
// expect defaults to true.
//
// # Usage
//
//	registry := ruleset.NewRegistry[lot.Lot]()
//	_ = lot.Register(registry)
//
//	rs, err := ruleset.LoadFile(ctx, "usable-lot.yaml")
//	if err != nil {
//	    return err
//	}
//	compiled, err := ruleset.Compile(rs, registry)
//	if err != nil {
//	    return err
//	}
//	results := compiled.EvaluateAll(lots)
package ruleset
