// Package telemetry provides the logging, tracing and metrics hooks used when
// generated code is written to disk.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type (
	// Logger captures structured logging. Implementations typically delegate
	// to Clue; tests provide lightweight stubs.
	Logger interface {
		Debug(ctx context.Context, msg string, keyvals ...any)
		Info(ctx context.Context, msg string, keyvals ...any)
		Error(ctx context.Context, err error, msg string, keyvals ...any)
	}

	// Metrics records counters and timers.
	Metrics interface {
		IncCounter(name string, value float64, tags ...string)
		RecordTimer(name string, duration time.Duration, tags ...string)
	}

	// Tracer starts spans.
	Tracer interface {
		Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, Span)
	}

	// Span is an in-flight tracing span.
	Span interface {
		End(opts ...trace.SpanEndOption)
		SetStatus(code codes.Code, description string)
		RecordError(err error, opts ...trace.EventOption)
	}
)

// instrumentationName is the OTEL scope of the meters and tracers created by
// this package.
const instrumentationName = "goa.design/jscodegen"
