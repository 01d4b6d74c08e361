// Package engine runs one carbon footprint reporting cycle: it collects
// input, computes the emission breakdown, selects advice and hands the
// finished report to a sink.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/gulievsadigg/carbon-emission/internal/advice"
	"github.com/gulievsadigg/carbon-emission/internal/emissions"
	"github.com/gulievsadigg/carbon-emission/internal/greenops"
	"github.com/gulievsadigg/carbon-emission/internal/input"
	"github.com/gulievsadigg/carbon-emission/internal/logging"
	"github.com/gulievsadigg/carbon-emission/internal/report"
)

// ReportWriter persists a finished report and returns the written paths.
// report.Sink implements it.
type ReportWriter interface {
	Write(ctx context.Context, r report.Report) ([]string, error)
}

// Engine evaluates submissions with a fixed set of emission factors.
type Engine struct {
	factors       emissions.Factors
	equivalencies bool
	now           func() time.Time
}

// New returns an Engine using factors. Equivalencies are off until enabled
// with WithEquivalencies.
func New(factors emissions.Factors) *Engine {
	return &Engine{
		factors: factors,
		now:     time.Now,
	}
}

// WithEquivalencies toggles the EPA equivalency section and returns e.
func (e *Engine) WithEquivalencies(enabled bool) *Engine {
	e.equivalencies = enabled
	return e
}

// WithClock replaces the time source used for GeneratedAt and returns e.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	if now != nil {
		e.now = now
	}
	return e
}

// Factors returns the factors the engine computes with.
func (e *Engine) Factors() emissions.Factors {
	return e.factors
}

// Evaluate computes the breakdown and advice for a validated submission.
// It does no I/O.
func (e *Engine) Evaluate(ctx context.Context, sub input.Submission) *Result {
	log := logging.FromContext(ctx)

	b := emissions.Compute(sub.Record, e.factors)
	res := &Result{
		Organization: sub.Organization,
		Record:       sub.Record,
		Breakdown:    b,
		Branch:       advice.SelectBranch(b),
		Advice:       advice.Select(b),
	}

	if e.equivalencies {
		eq, err := greenops.Calculate(b.TotalCO2)
		switch {
		case err != nil:
			log.Debug().Ctx(ctx).Str("component", "engine").Err(err).
				Msg("skipping equivalencies")
		case !eq.IsEmpty:
			res.Equivalencies = &eq
		}
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("organization", sub.Organization).
		Float64("energy_co2", b.EnergyCO2).
		Float64("waste_co2", b.WasteCO2).
		Float64("travel_co2", b.TravelCO2).
		Float64("total_co2", b.TotalCO2).
		Str("advice_branch", res.Branch.String()).
		Msg("emissions evaluated")

	return res
}

// Calculate collects one submission from p and evaluates it. A breakdown that
// overflowed float64 is rejected as invalid input.
func (e *Engine) Calculate(ctx context.Context, p input.Provider) (*Result, error) {
	if p == nil {
		return nil, errors.New("input provider cannot be nil")
	}

	sub, err := input.Collect(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("collecting input: %w", err)
	}

	res := e.Evaluate(ctx, sub)
	if err := res.Breakdown.CheckFinite(); err != nil {
		return nil, &input.InvalidInputError{Field: "emissions", Err: err}
	}
	return res, nil
}

// Generate collects input from p, evaluates it, builds the report and
// writes it with w. It returns the evaluation and the written paths.
func (e *Engine) Generate(ctx context.Context, p input.Provider, w ReportWriter) (*Result, []string, error) {
	if w == nil {
		return nil, nil, errors.New("report writer cannot be nil")
	}
	log := logging.FromContext(ctx)
	start := time.Now()

	res, err := e.Calculate(ctx, p)
	if err != nil {
		return nil, nil, err
	}

	rep := BuildReport(res, ulid.Make().String(), e.now())
	paths, err := w.Write(ctx, rep)
	if err != nil {
		return res, nil, fmt.Errorf("writing report: %w", err)
	}

	log.Info().
		Ctx(ctx).
		Str("component", "engine").
		Str("report_id", rep.ID).
		Strs("paths", paths).
		Dur("duration_ms", time.Since(start)).
		Msg("report generated")

	return res, paths, nil
}
