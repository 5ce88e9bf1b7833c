package emit

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"goa.design/goa/v3/codegen"

	"goa.design/jscodegen/telemetry"
)

type (
	// Renderer writes generated files to disk.
	Renderer struct {
		logger  telemetry.Logger
		tracer  telemetry.Tracer
		metrics telemetry.Metrics
	}

	// Option configures a Renderer.
	Option func(*Renderer)
)

const (
	metricFiles    = "jscodegen.emit.files"
	metricDuration = "jscodegen.emit.duration"
)

// WithLogger sets the logger used to report rendered files.
func WithLogger(l telemetry.Logger) Option {
	return func(r *Renderer) {
		r.logger = l
	}
}

// WithTracer sets the tracer used to create one span per Render call.
func WithTracer(t telemetry.Tracer) Option {
	return func(r *Renderer) {
		r.tracer = t
	}
}

// WithMetrics sets the recorder counting rendered files.
func WithMetrics(m telemetry.Metrics) Option {
	return func(r *Renderer) {
		r.metrics = m
	}
}

// NewRenderer returns a Renderer. Unless overridden with options it logs with
// Clue and traces and records metrics with the global OTEL providers.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		logger:  telemetry.NewClueLogger(),
		tracer:  telemetry.NewOtelTracer(),
		metrics: telemetry.NewOtelMetrics(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Render writes files under dir and returns the paths of the written files.
// Files are rendered in order; Render stops at the first error or when ctx is
// canceled, returning the paths written so far.
func (r *Renderer) Render(ctx context.Context, dir string, files []*codegen.File) ([]string, error) {
	ctx, span := r.tracer.Start(ctx, "emit.render",
		trace.WithAttributes(attribute.String("dir", dir), attribute.Int("files", len(files))))
	defer span.End()

	start := time.Now()
	paths := make([]string, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "canceled")
			return paths, err
		}
		p, err := f.Render(dir)
		if err != nil {
			err = fmt.Errorf("render %s: %w", f.Path, err)
			r.logger.Error(ctx, err, "render failed", "path", f.Path)
			span.RecordError(err)
			span.SetStatus(codes.Error, "render failed")
			return paths, err
		}
		r.logger.Debug(ctx, "rendered", "path", p)
		r.metrics.IncCounter(metricFiles, 1, "dir", dir)
		paths = append(paths, p)
	}
	r.metrics.RecordTimer(metricDuration, time.Since(start), "dir", dir)
	r.logger.Info(ctx, "render complete", "dir", dir, "files", len(paths))
	span.SetStatus(codes.Ok, "")
	return paths, nil
}
