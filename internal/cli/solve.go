package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/lvpack/codec"
	"github.com/katalvlaran/lvpack/internal/config"
	"github.com/katalvlaran/lvpack/internal/logging"
	"github.com/katalvlaran/lvpack/internal/metrics"
	"github.com/katalvlaran/lvpack/knapsack"
)

// verifyTolerance is the largest accepted gap between the solver's value and
// the exact re-evaluation, relative to max(1, |value|). float64 spacing grows
// with magnitude, so a fixed absolute gap rejects correct large totals.
var verifyTolerance = decimal.New(1, -9)

// runSolve decodes the problem, solves it and writes the solution.
func runSolve(ctx context.Context, cfg config.Config, s Streams) error {
	log := logging.NewLogger(s.Err, cfg.Verbose, cfg.Quiet).WithValues("run", uuid.NewString())
	ctx = logr.NewContext(ctx, log)
	log.V(logging.DEBUG).Info("Resolved configuration", "config", fmt.Sprintf("%+v", cfg))

	inFmt := codec.Detect(cfg.Input, cfg.InputFormat, codec.TOML)
	problem, err := readProblem(cfg.Input, inFmt, s.In)
	if err != nil {
		log.Error(err, "Failed to read problem", "input", cfg.Input)
		return err
	}
	log.Info("Problem loaded", "format", inFmt, "dimensions", len(problem.Bounds), "items", len(problem.Items))

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return err
	}

	sol, err := knapsack.Solve(ctx, problem,
		knapsack.WithMaxStates(cfg.MaxStates),
		knapsack.WithObserver(rec),
	)
	if err != nil {
		log.Error(err, "Solve failed")
		return err
	}

	if cfg.Verify {
		if err = verify(problem, sol); err != nil {
			log.Error(err, "Verification failed")
			return err
		}
		log.V(logging.DEBUG).Info("Solution verified")
	}

	outFmt := codec.Detect(cfg.Output, cfg.OutputFormat, inFmt)
	if err = writeSolution(cfg.Output, outFmt, s.Out, sol); err != nil {
		log.Error(err, "Failed to write solution", "output", cfg.Output)
		return err
	}

	if cfg.Metrics {
		return metrics.WriteText(s.Err, reg)
	}

	return nil
}

func readProblem(path string, f codec.Format, stdin io.Reader) (knapsack.Problem, error) {
	if path == "" {
		return codec.DecodeProblem(stdin, f)
	}

	file, err := os.Open(path)
	if err != nil {
		return knapsack.Problem{}, fmt.Errorf("open problem: %w", err)
	}
	defer file.Close()

	return codec.DecodeProblem(file, f)
}

func writeSolution(path string, f codec.Format, stdout io.Writer, sol knapsack.Solution) error {
	if path == "" {
		return codec.EncodeSolution(stdout, f, sol)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create solution: %w", err)
	}
	if err = codec.EncodeSolution(file, f, sol); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}

// verify re-evaluates sol with exact arithmetic.
func verify(p knapsack.Problem, sol knapsack.Solution) error {
	rep, err := knapsack.Evaluate(p, sol.Quantities)
	if err != nil {
		return err
	}
	if !rep.Feasible {
		return fmt.Errorf("verify: quantities %v use %v, bounds %v", sol.Quantities, rep.Usage, p.Bounds)
	}
	limit := verifyTolerance.Mul(decimal.Max(decimal.NewFromInt(1), rep.Value.Abs()))
	if gap := rep.Value.Sub(decimal.NewFromFloat(sol.Value)).Abs(); gap.GreaterThan(limit) {
		return fmt.Errorf("verify: value %v differs from re-evaluated %s", sol.Value, rep.Value)
	}

	return nil
}
