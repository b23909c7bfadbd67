package calculator

import (
	"context"
	"time"

	"go.opencensus.io/plugin/ocgrpc"
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
	"go.uber.org/zap"
	"google.golang.org/grpc/status"
)

var (
	KeyMethod, _  = tag.NewKey("exactcalc_method")
	KeyOutcome, _ = tag.NewKey("exactcalc_outcome")
)

var (
	Evaluations       = stats.Int64("exactcalc/evaluations", "Number of evaluations handled", "1")
	EvaluationLatency = stats.Float64("exactcalc/evaluation_latency", "Time spent evaluating an expression", "ms")
)

var (
	EvaluationCountView = &view.View{
		Name:        "exactcalc/evaluations",
		Description: "Count of evaluations by method and outcome",
		Measure:     Evaluations,
		TagKeys:     []tag.Key{KeyMethod, KeyOutcome},
		Aggregation: view.Count(),
	}

	EvaluationLatencyView = &view.View{
		Name:        "exactcalc/evaluation_latency",
		Description: "Distribution of evaluation latency by method",
		Measure:     EvaluationLatency,
		TagKeys:     []tag.Key{KeyMethod},
		Aggregation: ocgrpc.DefaultMillisecondsDistribution,
	}
)

// DefaultViews are the views the server registers next to ocgrpc.DefaultServerViews.
var DefaultViews = []*view.View{EvaluationCountView, EvaluationLatencyView}

// recordEvaluation records one evaluation. The outcome is the gRPC status
// code the caller sees.
func recordEvaluation(ctx context.Context, method string, start time.Time, err error) {
	ctx, tagErr := tag.New(ctx,
		tag.Upsert(KeyMethod, method),
		tag.Upsert(KeyOutcome, status.Code(err).String()),
	)
	if tagErr != nil {
		zap.S().Warnw("Failed to tag evaluation metrics", "error", tagErr)
		return
	}

	elapsed := float64(time.Since(start)) / float64(time.Millisecond)
	stats.Record(ctx, Evaluations.M(1), EvaluationLatency.M(elapsed))
}
