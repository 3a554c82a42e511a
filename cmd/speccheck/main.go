package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/dmitrymomot/speckit/pkg/config"
	"github.com/dmitrymomot/speckit/pkg/environment"
	"github.com/dmitrymomot/speckit/pkg/logger"
	"github.com/dmitrymomot/speckit/pkg/lot"
	"github.com/dmitrymomot/speckit/pkg/ruleset"
	"github.com/dmitrymomot/speckit/pkg/specification"
)

const service = "speccheck"

// Config is read from SPECCHECK_* environment variables.
type Config struct {
	Env       string `env:"ENV" envDefault:"development"`
	LogFormat string `env:"LOG_FORMAT"`
	LogLevel  string `env:"LOG_LEVEL"`
	Workers   int    `env:"WORKERS" envDefault:"1"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "filter", "evaluate":
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}

	cfg, err := config.Load[Config](config.WithPrefix("SPECCHECK_"))
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}

	log, err := newLogger(cfg, errOut)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}

	fs := flag.NewFlagSet(service+" "+args[0], flag.ContinueOnError)
	fs.SetOutput(errOut)
	rulesPath := fs.String("rules", "", "path to the ruleset document")
	lotsPath := fs.String("lots", "", "path to the lots document")
	workers := fs.Int("workers", cfg.Workers, "number of concurrent evaluation workers")
	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}
	if *rulesPath == "" || *lotsPath == "" {
		fmt.Fprintln(errOut, "--rules and --lots are required")
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = environment.WithContext(ctx, environment.Parse(cfg.Env))

	compiled, lots, err := load(ctx, *rulesPath, *lotsPath)
	if err != nil {
		log.ErrorContext(ctx, "failed to load input", logger.Error(err))
		return 2
	}
	log = log.With(logger.Component(args[0]), logger.Ruleset(compiled.Name()))

	if args[0] == "filter" {
		return cmdFilter(ctx, compiled, lots, out, log)
	}
	return cmdEvaluate(ctx, compiled, lots, *workers, out, log)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "speccheck: evaluate inventory lots against a ruleset")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  speccheck filter --rules <ruleset.yaml> --lots <lots.yaml>")
	fmt.Fprintln(w, "  speccheck evaluate --rules <ruleset.yaml> --lots <lots.yaml> [--workers N]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SPECCHECK_ENV         development|staging|production")
	fmt.Fprintln(w, "  SPECCHECK_LOG_FORMAT  json|text")
	fmt.Fprintln(w, "  SPECCHECK_LOG_LEVEL   debug|info|warn|error")
	fmt.Fprintln(w, "  SPECCHECK_WORKERS     default for --workers")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 all lots valid, 1 some lots invalid, 2 usage or input error")
}

func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(environment.Parse(cfg.Env), service),
		logger.WithOutput(w),
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(format))
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...), nil
}

func load(ctx context.Context, rulesPath, lotsPath string) (*ruleset.Compiled[lot.Lot], []lot.Lot, error) {
	rs, err := ruleset.LoadFile(ctx, rulesPath)
	if err != nil {
		return nil, nil, err
	}
	compiled, err := ruleset.Compile(rs, lot.NewRegistry())
	if err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(lotsPath)
	if err != nil {
		return nil, nil, errors.Join(ruleset.ErrReadingFile, err)
	}
	lots, err := lot.Decode(data)
	if err != nil {
		return nil, nil, err
	}
	return compiled, lots, nil
}

func cmdFilter(ctx context.Context, compiled *ruleset.Compiled[lot.Lot], lots []lot.Lot, out io.Writer, log *slog.Logger) int {
	accepted := compiled.Filter(lots)
	for _, l := range accepted {
		fmt.Fprintln(out, l.Number)
	}

	log.InfoContext(ctx, "lots filtered",
		slog.Int("total", len(lots)),
		slog.Int("accepted", len(accepted)),
	)
	if len(accepted) != len(lots) {
		return 1
	}
	return 0
}

func cmdEvaluate(ctx context.Context, compiled *ruleset.Compiled[lot.Lot], lots []lot.Lot, workers int, out io.Writer, log *slog.Logger) int {
	start := time.Now()

	var results *specification.Results[lot.Lot]
	if workers > 1 {
		var err error
		results, err = compiled.EvaluateAllConcurrently(ctx, lots, workers)
		if err != nil {
			log.ErrorContext(ctx, "evaluation failed", logger.Error(err))
			return 2
		}
	} else {
		results = compiled.EvaluateAll(lots)
	}

	for _, r := range results.Results() {
		l := r.Candidate()
		status := "valid"
		if !r.IsValid() {
			status = "invalid"
		}
		fmt.Fprintf(out, "%s\t%s\n", l.Number, status)
		writeIndented(out, "error", r.ErrorMessage())
		writeIndented(out, "warning", r.WarningMessage())

		log.DebugContext(ctx, "lot evaluated",
			logger.Candidate(l.ID),
			logger.Valid(r.IsValid()),
			logger.Failures(append(r.Errors(), r.Warnings()...)),
		)
	}

	log.InfoContext(ctx, "lots evaluated",
		slog.Int("total", len(lots)),
		slog.Int("valid", len(results.Valid())),
		logger.ErrorCount(results.TotalErrors()),
		logger.WarningCount(results.TotalWarnings()),
		logger.Duration(time.Since(start)),
	)

	if !results.AllValid() {
		return 1
	}
	return 0
}

func writeIndented(w io.Writer, label, text string) {
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintf(w, "  %s: %s\n", label, line)
	}
}
