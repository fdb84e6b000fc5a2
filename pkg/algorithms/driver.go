package algorithms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"
	"k8s.io/utils/clock"

	"github.com/mihai-snyk/moea/pkg/framework"
	"github.com/mihai-snyk/moea/pkg/operators"
	"github.com/mihai-snyk/moea/pkg/pareto"
)

var tracer = otel.Tracer("github.com/mihai-snyk/moea/pkg/algorithms")

// Config sizes a run of the generational loop.
type Config struct {
	PopulationSize int
	// OffspringSize defaults to PopulationSize; 1 gives a steady-state run.
	OffspringSize  int
	MaxGenerations int
}

// Driver runs a generational evolutionary loop assembled from
// interchangeable strategies.
type Driver struct {
	name    string
	problem framework.Problem
	config  Config
	rng     *rand.Rand

	selection   operators.SelectionFunc
	variation   operators.VariationFunc
	replacement pareto.Replacement
	evaluator   Evaluator
	archive     pareto.Archive
	observers   []Observer
	seeds       []framework.Solution
	clock       clock.PassiveClock
}

// Option customises a Driver.
type Option func(*Driver)

// WithEvaluator replaces the default sequential evaluator.
func WithEvaluator(e Evaluator) Option {
	return func(d *Driver) { d.evaluator = e }
}

// WithArchive feeds every evaluated individual to the archive. The
// archive's members become the run's reported front.
func WithArchive(a pareto.Archive) Option {
	return func(d *Driver) { d.archive = a }
}

// WithObserver registers a per-generation observer.
func WithObserver(o Observer) Option {
	return func(d *Driver) { d.observers = append(d.observers, o) }
}

// WithVariation overrides the variation operator chosen by the constructor.
func WithVariation(v operators.VariationFunc) Option {
	return func(d *Driver) { d.variation = v }
}

// WithSelection overrides the parent selection chosen by the constructor.
func WithSelection(s operators.SelectionFunc) Option {
	return func(d *Driver) { d.selection = s }
}

// WithInitialSolutions places the given solutions first in the initial
// population. The problem fills the remaining slots.
func WithInitialSolutions(seeds []framework.Solution) Option {
	return func(d *Driver) { d.seeds = seeds }
}

// WithClock sets the clock used for elapsed-time accounting.
func WithClock(c clock.PassiveClock) Option {
	return func(d *Driver) { d.clock = c }
}

// NewDriver assembles a driver. rng drives every stochastic step of the
// run; the same seed reproduces the same run.
func NewDriver(name string, problem framework.Problem, config Config, rng *rand.Rand,
	selection operators.SelectionFunc, variation operators.VariationFunc, replacement pareto.Replacement, opts ...Option) (*Driver, error) {
	if config.PopulationSize < 1 {
		return nil, fmt.Errorf("population size must be positive, got %d", config.PopulationSize)
	}
	if config.MaxGenerations < 0 {
		return nil, fmt.Errorf("generations must not be negative, got %d", config.MaxGenerations)
	}
	if config.OffspringSize == 0 {
		config.OffspringSize = config.PopulationSize
	}
	if config.OffspringSize < 0 {
		return nil, fmt.Errorf("offspring size must not be negative, got %d", config.OffspringSize)
	}
	if rng == nil {
		return nil, errors.New("a random source is required")
	}

	d := &Driver{
		name:        name,
		problem:     problem,
		config:      config,
		rng:         rng,
		selection:   selection,
		variation:   variation,
		replacement: replacement,
		evaluator:   SequentialEvaluator{},
		clock:       clock.RealClock{},
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.selection == nil || d.variation == nil || d.replacement == nil {
		return nil, errors.New("selection, variation and replacement strategies are required")
	}
	return d, nil
}

func (d *Driver) Name() string {
	return d.name
}

// Result is the outcome of a run.
type Result struct {
	// Population is the final population, PopulationSize individuals.
	Population []*pareto.Individual
	// Front is the archive content when the run has an archive and the
	// rank 0 members of the population otherwise.
	Front       []*pareto.Individual
	Generations int
	Evaluations int
	Elapsed     time.Duration
}

// Run executes the loop until the generation budget is spent or ctx is
// cancelled, in which case the context error is returned.
func (d *Driver) Run(ctx context.Context) (*Result, error) {
	ctx, span := tracer.Start(ctx, d.name+".Run", trace.WithAttributes(
		attribute.String("moea.algorithm", d.name),
		attribute.String("moea.problem", d.problem.Name()),
		attribute.Int("moea.population_size", d.config.PopulationSize),
		attribute.Int("moea.generations", d.config.MaxGenerations),
	))
	defer span.End()

	res, err := d.run(ctx, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("moea.evaluations", res.Evaluations),
		attribute.Int("moea.front_size", len(res.Front)),
	)
	return res, nil
}

func (d *Driver) run(ctx context.Context, span trace.Span) (*Result, error) {
	logger := klog.FromContext(ctx).WithValues("algorithm", d.name, "problem", d.problem.Name())
	start := d.clock.Now()
	logger.V(1).Info("Starting run",
		"populationSize", d.config.PopulationSize,
		"offspringSize", d.config.OffspringSize,
		"generations", d.config.MaxGenerations)

	initial := d.initialSolutions()
	evaluated, err := d.evaluator.Evaluate(ctx, d.problem, initial)
	if err != nil {
		return nil, fmt.Errorf("evaluating initial population: %w", err)
	}
	evaluations := len(evaluated)

	// Ranking the initial population gives tournament selection its keys.
	population, err := d.replacement.Replace(evaluated, nil, d.config.PopulationSize)
	if err != nil {
		return nil, fmt.Errorf("ranking initial population: %w", err)
	}
	if err := d.updateArchive(population); err != nil {
		return nil, err
	}
	logger.V(2).Info("Initial population evaluated", "feasible", countFeasible(population))

	gen := 0
	for ; gen < d.config.MaxGenerations; gen++ {
		if err := ctx.Err(); err != nil {
			logger.V(1).Info("Run cancelled", "generation", gen)
			return nil, err
		}
		genStart := d.clock.Now()

		children := d.breed(population)
		offspring, err := d.evaluator.Evaluate(ctx, d.problem, children)
		if err != nil {
			return nil, fmt.Errorf("generation %d: evaluating offspring: %w", gen, err)
		}
		evaluations += len(offspring)

		population, err = d.replacement.Replace(population, offspring, d.config.PopulationSize)
		if err != nil {
			return nil, fmt.Errorf("generation %d: replacement: %w", gen, err)
		}
		if err := d.updateArchive(offspring); err != nil {
			return nil, fmt.Errorf("generation %d: %w", gen, err)
		}

		stats := GenerationStats{
			Algorithm:      d.name,
			Problem:        d.problem.Name(),
			Generation:     gen + 1,
			Evaluations:    evaluations,
			FirstFrontSize: countRank(population, 0),
			Feasible:       countFeasible(population),
			Duration:       d.clock.Since(genStart),
			Elapsed:        d.clock.Since(start),
		}
		if d.archive != nil {
			stats.ArchiveSize = d.archive.Len()
		}
		for _, o := range d.observers {
			o.ObserveGeneration(stats)
		}
		if gen < 5 || (gen+1)%10 == 0 {
			logger.V(4).Info("Generation complete",
				"generation", stats.Generation,
				"evaluations", stats.Evaluations,
				"firstFront", stats.FirstFrontSize,
				"archive", stats.ArchiveSize)
		}
		span.AddEvent("generation", trace.WithAttributes(attribute.Int("moea.generation", gen+1)))
	}

	res := &Result{
		Population:  population,
		Generations: gen,
		Evaluations: evaluations,
		Elapsed:     d.clock.Since(start),
	}
	if d.archive != nil {
		res.Front = d.archive.Members()
	} else {
		for _, ind := range population {
			if ind.Rank == 0 {
				res.Front = append(res.Front, ind)
			}
		}
	}
	logger.V(1).Info("Run complete",
		"evaluations", res.Evaluations,
		"frontSize", len(res.Front),
		"elapsed", res.Elapsed)
	return res, nil
}

func (d *Driver) initialSolutions() []framework.Solution {
	n := d.config.PopulationSize
	solutions := make([]framework.Solution, 0, n)
	for _, s := range d.seeds {
		if len(solutions) == n {
			break
		}
		solutions = append(solutions, s.Clone())
	}
	if missing := n - len(solutions); missing > 0 {
		solutions = append(solutions, d.problem.Initialize(missing, d.rng)...)
	}
	return solutions
}

// breed produces OffspringSize children from tournament-selected pairs.
func (d *Driver) breed(population []*pareto.Individual) []framework.Solution {
	children := make([]framework.Solution, 0, d.config.OffspringSize+1)
	for len(children) < d.config.OffspringSize {
		p1 := d.selection(d.rng, population)
		p2 := d.selection(d.rng, population)
		c1, c2 := d.variation(d.rng, p1.Solution, p2.Solution)
		children = append(children, c1, c2)
	}
	return children[:d.config.OffspringSize]
}

func (d *Driver) updateArchive(individuals []*pareto.Individual) error {
	if d.archive == nil {
		return nil
	}
	for _, ind := range individuals {
		if _, err := d.archive.Add(ind); err != nil {
			return fmt.Errorf("updating archive: %w", err)
		}
	}
	return nil
}

func countRank(population []*pareto.Individual, rank int) int {
	n := 0
	for _, ind := range population {
		if ind.Rank == rank {
			n++
		}
	}
	return n
}

func countFeasible(population []*pareto.Individual) int {
	n := 0
	for _, ind := range population {
		if ind.Feasible() {
			n++
		}
	}
	return n
}
