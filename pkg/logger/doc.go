// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers that keep key names consistent across the project.
//
// New picks a text or JSON handler, applies static attributes and, when context
// extractors are registered, wraps the handler with ContextHandler so values
// carried by context.Context are added to every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Development, "speccheck"),
//	    logger.WithContextValue("ruleset", rulesetKey{}),
//	)
//	ctx = environment.WithContext(ctx, environment.Development)
//	log.InfoContext(ctx, "lot evaluated",
//	    logger.Candidate(l.Number),
//	    logger.Valid(result.IsValid()),
//	    logger.Failures(result.Errors()),
//	)
//
// WithEnvironment registers EnvironmentFromContext, so the "env" attribute comes
// from the context passed to the *Context logging methods.
//
// Error, Errors, Candidate and Failures return an empty slog.Attr for empty
// input, which slog drops, so they can be passed without nil checks.
package logger
