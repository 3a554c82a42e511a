package logger

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/dmitrymomot/speckit/pkg/specification"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Ruleset(name string) slog.Attr {
	return slog.String("ruleset", name)
}

// Candidate records a candidate identifier under the key "candidate".
// If id is nil, it returns an empty Attr.
func Candidate(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("candidate", id)
}

func Valid(v bool) slog.Attr {
	return slog.Bool("valid", v)
}

func ErrorCount(n int) slog.Attr {
	return slog.Int("error_count", n)
}

func WarningCount(n int) slog.Attr {
	return slog.Int("warning_count", n)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Failures groups failures by package-qualified specification type, such as
// "lot.Expired", under the key "failures".
// Each entry holds the failure message and severity.
// If fs is empty, it returns an empty Attr.
func Failures(fs specification.Failures) slog.Attr {
	if len(fs) == 0 {
		return slog.Attr{}
	}
	as := make([]slog.Attr, 0, len(fs))
	for _, f := range fs {
		as = append(as, slog.Group(failureKey(f),
			slog.String("message", f.Message),
			slog.String("severity", f.Severity.String()),
		))
	}
	return slog.Attr{Key: "failures", Value: slog.GroupValue(as...)}
}

func failureKey(f specification.Failure) string {
	if f.Spec == nil {
		return "unknown"
	}
	return f.Spec.String()
}
