package dataset

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for dataset store spans.
const defaultTracerName = "eastui/dataset"

// TracedStore wraps a Store so every operation runs inside an
// OpenTelemetry span carrying workspace and path attributes.
type TracedStore struct {
	inner  Store
	tracer trace.Tracer
}

// TraceOption configures a TracedStore.
type TraceOption func(*TracedStore)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TraceOption {
	return func(t *TracedStore) {
		t.tracer = otel.Tracer(name)
	}
}

// NewTracedStore wraps a store with tracing.
func NewTracedStore(inner Store, opts ...TraceOption) *TracedStore {
	t := &TracedStore{
		inner:  inner,
		tracer: otel.Tracer(defaultTracerName),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *TracedStore) span(ctx context.Context, op, workspace, path string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "dataset."+op, trace.WithAttributes(
		attribute.String("dataset.workspace", workspace),
		attribute.String("dataset.path", path),
	))
}

// Read implements Store.
func (t *TracedStore) Read(ctx context.Context, workspace, path string) ([]byte, error) {
	ctx, span := t.span(ctx, "read", workspace, path)
	defer span.End()

	data, err := t.inner.Read(ctx, workspace, path)
	if err != nil && !IsNotFound(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.Int("dataset.bytes", len(data)))
	return data, err
}

// Write implements Store.
func (t *TracedStore) Write(ctx context.Context, workspace, path string, data []byte) error {
	ctx, span := t.span(ctx, "write", workspace, path)
	defer span.End()

	span.SetAttributes(attribute.Int("dataset.bytes", len(data)))
	if err := t.inner.Write(ctx, workspace, path, data); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Delete implements Store.
func (t *TracedStore) Delete(ctx context.Context, workspace, path string) error {
	ctx, span := t.span(ctx, "delete", workspace, path)
	defer span.End()

	if err := t.inner.Delete(ctx, workspace, path); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Hashes implements Store.
func (t *TracedStore) Hashes(ctx context.Context, workspace string) (map[string]string, error) {
	ctx, span := t.tracer.Start(ctx, "dataset.hashes", trace.WithAttributes(
		attribute.String("dataset.workspace", workspace),
	))
	defer span.End()

	hashes, err := t.inner.Hashes(ctx, workspace)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("dataset.count", len(hashes)))
	return hashes, nil
}

// Close implements Store.
func (t *TracedStore) Close() error {
	return t.inner.Close()
}
