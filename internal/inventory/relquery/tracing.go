package relquery

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("relquery")

// RunnerWithTracing decorates a Runner with a span per executed query.
type RunnerWithTracing struct {
	next Runner
}

func NewRunnerWithTracing(next Runner) *RunnerWithTracing {
	return &RunnerWithTracing{next: next}
}

func (r *RunnerWithTracing) Run(ctx context.Context, q Query) (Result, error) {
	ctx, span := tracer.Start(ctx, "relquery.Run",
		trace.WithAttributes(
			attribute.String("query.root", string(q.Root)),
			attribute.Int("query.eager_paths", len(q.Plan.Eager)),
			attribute.Int("query.batched_paths", len(q.Plan.Batched)),
			attribute.Int("query.predicates", len(q.Predicates)),
			attribute.Bool("query.distinct", q.Distinct),
			attribute.Int("query.limit", q.Limit),
		),
	)
	defer span.End()

	result, err := r.next.Run(ctx, q)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}

	span.SetAttributes(attribute.Int("result.count", len(result.Rows)))
	return result, nil
}
