// Package compare runs the three knapsack strategies on one instance and
// collects their results side by side.
//
// The instance is validated once against Options.Limits; on any violation the
// whole run is rejected and no solver executes. Each solver then receives its
// own copy of the items, so the reordering done by greedy and bnb never leaks
// into DP (which needs the original order) or into each other.
package compare

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/knapsack/bnb"
	"github.com/katalvlaran/knapsack/dp"
	"github.com/katalvlaran/knapsack/greedy"
	"github.com/katalvlaran/knapsack/item"
)

// TracerName is the instrumentation scope of the comparison spans.
const TracerName = "knapsack/compare"

// fracTol absorbs float rounding when comparing the relaxation with integers.
const fracTol = 1e-9

// ErrInconsistent is returned by Report.Consistent when the solvers disagree.
var ErrInconsistent = errors.New("compare: solver results are inconsistent")

// Problem is one knapsack instance.
type Problem struct {
	Capacity int
	Items    []item.Item
}

// Options configures Run.
type Options struct {
	Limits item.Limits
	DP     dp.Options
	BB     bnb.Options

	// Logger receives one record per solver; nil discards.
	Logger *slog.Logger

	// Tracer overrides the global otel tracer; nil uses otel.Tracer(TracerName).
	Tracer trace.Tracer
}

// DefaultOptions uses the exact-search limits and each solver's defaults.
func DefaultOptions() Options {
	return Options{
		Limits: item.DefaultLimits(),
		DP:     dp.DefaultOptions(),
		BB:     bnb.DefaultOptions(),
	}
}

// Durations holds wall-clock time per solver.
type Durations struct {
	DP             time.Duration
	Fractional     time.Duration
	BranchAndBound time.Duration
}

// Report gathers the three results.
type Report struct {
	Items    int `json:"items"`
	Capacity int `json:"capacity"`

	DP      int   `json:"dp"`
	DPItems []int `json:"dp_items,omitempty"`

	Fractional      float64          `json:"fractional"`
	FractionalTaken []greedy.Portion `json:"fractional_taken,omitempty"`

	BranchAndBound int       `json:"branch_and_bound"`
	BBItems        []int     `json:"bb_items"`
	BBStats        bnb.Stats `json:"bb_stats"`

	Durations Durations `json:"-"`
}

// Consistent checks the cross-solver invariants: both exact solvers agree and
// the fractional relaxation is not below them.
func (r Report) Consistent() error {
	if r.DP != r.BranchAndBound {
		return fmt.Errorf("%w: dp=%d bnb=%d", ErrInconsistent, r.DP, r.BranchAndBound)
	}
	if r.Fractional+fracTol < float64(r.DP) {
		return fmt.Errorf("%w: fractional=%.4f < dp=%d", ErrInconsistent, r.Fractional, r.DP)
	}

	return nil
}

// Run validates p and executes DP, greedy and Branch-and-Bound in that order.
func Run(ctx context.Context, p Problem, opts Options) (Report, error) {
	if err := item.Validate(p.Items, p.Capacity, opts.Limits); err != nil {
		return Report{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = otel.Tracer(TracerName)
	}

	ctx, span := tracer.Start(ctx, "Compare.Run", trace.WithAttributes(
		attribute.Int("knapsack.items", len(p.Items)),
		attribute.Int("knapsack.capacity", p.Capacity),
	))
	defer span.End()

	rep := Report{Items: len(p.Items), Capacity: p.Capacity}
	r := runner{ctx: ctx, tracer: tracer, logger: logger, problem: p}

	// DP: original order, item recovery whenever the table is kept.
	dpOpts := opts.DP
	dpOpts.ReturnItems = dpOpts.MemoryMode == dp.FullTable
	err := r.step("dp", &rep.Durations.DP, func(items []item.Item) (float64, error) {
		res, err := dp.Solve(items, p.Capacity, &dpOpts)
		rep.DP, rep.DPItems = res.Value, res.Items

		return float64(res.Value), err
	})
	if err != nil {
		return fail(span, err)
	}

	err = r.step("fractional", &rep.Durations.Fractional, func(items []item.Item) (float64, error) {
		res, err := greedy.Solve(items, p.Capacity)
		rep.Fractional, rep.FractionalTaken = res.Value, res.Taken

		return res.Value, err
	})
	if err != nil {
		return fail(span, err)
	}

	err = r.step("branch_and_bound", &rep.Durations.BranchAndBound, func(items []item.Item) (float64, error) {
		res, err := bnb.Solve(items, p.Capacity, opts.BB)
		rep.BranchAndBound, rep.BBItems, rep.BBStats = res.Value, res.Items, res.Stats
		span.SetAttributes(
			attribute.Int("bnb.nodes", res.Stats.Nodes),
			attribute.Int("bnb.pruned", res.Stats.Pruned),
		)

		return float64(res.Value), err
	})
	if err != nil {
		return fail(span, err)
	}

	return rep, nil
}

// runner wraps each solver call with a private item copy, a span, a timer and a log line.
type runner struct {
	ctx     context.Context
	tracer  trace.Tracer
	logger  *slog.Logger
	problem Problem
}

func (r runner) step(name string, took *time.Duration, solve func([]item.Item) (float64, error)) error {
	_, span := r.tracer.Start(r.ctx, "Solver."+name)
	defer span.End()

	start := time.Now()
	value, err := solve(item.Clone(r.problem.Items))
	*took = time.Since(start)

	span.SetAttributes(
		attribute.String("solver", name),
		attribute.Float64("value", value),
		attribute.Int64("duration_us", took.Microseconds()),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.Error("solver failed", "solver", name, "error", err)

		return fmt.Errorf("%s: %w", name, err)
	}
	r.logger.Debug("solver finished", "solver", name, "value", value, "duration", *took)

	return nil
}

func fail(span trace.Span, err error) (Report, error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return Report{}, err
}
