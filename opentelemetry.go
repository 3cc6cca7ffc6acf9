package nest

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/nestmap/nest-go"
)

var tracer trace.Tracer

func getTracer() trace.Tracer {
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return tracer
}

// LMapTraced is LMap wrapped in an OpenTelemetry span recording the
// requested level and the number of elements mapped. The core mapping
// functions stay context-free; use this wrapper when the call should show up
// in a trace.
func LMapTraced[T any, U any](ctx context.Context, n Nested[T], level int, fn func(Nested[T]) Nested[U]) (Nested[U], error) {
	_, span := getTracer().Start(ctx, "nest.lmap",
		trace.WithAttributes(
			attribute.Int("nest.level", level),
		))
	defer span.End()

	elements := 0
	out, err := LMapErr(n, level, func(x Nested[T]) (Nested[U], error) {
		elements++
		return fn(x), nil
	})
	span.SetAttributes(attribute.Int("nest.elements", elements))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Nested[U]{}, err
	}
	return out, nil
}
