// Package environment names the deployment environments the application runs in
// and carries the current one through context.Context.
//
//	env := environment.Parse(os.Getenv("SPECCHECK_ENV"))
//	ctx = environment.WithContext(ctx, env)
//
//	if environment.FromContext(ctx).IsProduction() {
//	    // ...
//	}
package environment
