package algorithms

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mihai-snyk/moea/pkg/framework"
	"github.com/mihai-snyk/moea/pkg/pareto"
)

// Evaluator turns decision vectors into evaluated individuals.
type Evaluator interface {
	Evaluate(ctx context.Context, problem framework.Problem, solutions []framework.Solution) ([]*pareto.Individual, error)
}

// Evaluate computes the objectives and the aggregated constraint violation
// of one solution. A NaN objective or constraint value is an error.
func Evaluate(problem framework.Problem, sol framework.Solution) (*pareto.Individual, error) {
	objectives := problem.ObjectiveFuncs()
	values := make(framework.ObjectiveSpacePoint, len(objectives))
	for i, objFunc := range objectives {
		values[i] = objFunc(sol)
		if math.IsNaN(values[i]) {
			return nil, fmt.Errorf("%s objective %d: %w", problem.Name(), i, pareto.ErrNaNObjective)
		}
	}

	ind := pareto.NewIndividual(sol, values)
	for i, c := range problem.Constraints() {
		v := c(sol)
		if math.IsNaN(v) {
			return nil, fmt.Errorf("%s constraint %d: %w", problem.Name(), i, pareto.ErrNaNObjective)
		}
		if v < 0 {
			ind.ConstraintViolation += v
			ind.ViolatedConstraints++
		}
	}
	return ind, nil
}

// SequentialEvaluator evaluates in the calling goroutine.
type SequentialEvaluator struct{}

func (SequentialEvaluator) Evaluate(ctx context.Context, problem framework.Problem, solutions []framework.Solution) ([]*pareto.Individual, error) {
	out := make([]*pareto.Individual, len(solutions))
	for i, sol := range solutions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ind, err := Evaluate(problem, sol)
		if err != nil {
			return nil, err
		}
		out[i] = ind
	}
	return out, nil
}

// ParallelEvaluator spreads evaluation over a bounded number of goroutines.
// Objective and constraint functions must be safe for concurrent use.
// Results keep the order of the input.
type ParallelEvaluator struct {
	// Workers defaults to the number of CPUs.
	Workers int
}

func (p ParallelEvaluator) Evaluate(ctx context.Context, problem framework.Problem, solutions []framework.Solution) ([]*pareto.Individual, error) {
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	out := make([]*pareto.Individual, len(solutions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, sol := range solutions {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ind, err := Evaluate(problem, sol)
			if err != nil {
				return err
			}
			out[i] = ind
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// NewEvaluator picks the parallel evaluator when more than one worker is requested.
func NewEvaluator(workers int) Evaluator {
	if workers == 1 {
		return SequentialEvaluator{}
	}
	return ParallelEvaluator{Workers: workers}
}
