package placement_test

import (
	"context"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/moea/pkg/algorithms"
	"github.com/mihai-snyk/moea/pkg/benchmarks/placement"
	"github.com/mihai-snyk/moea/pkg/framework"
	"github.com/mihai-snyk/moea/pkg/operators"
)

var twoMachines = []placement.Machine{
	{Name: "m0", CPUCapacity: 1000, MemCapacity: 1e9, HourlyCost: 0.2},
	{Name: "m1", CPUCapacity: 1000, MemCapacity: 1e9, HourlyCost: 0.5},
}

func TestCost(t *testing.T) {
	tests := []struct {
		name       string
		assignment []int
		want       float64
	}{
		{name: "one machine", assignment: []int{0, 0}, want: 0.2},
		{name: "both machines", assignment: []int{0, 1}, want: 0.7},
		{name: "unassigned ignored", assignment: []int{-1, 1}, want: 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := placement.Cost(tt.assignment, twoMachines); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Cost() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestImbalance(t *testing.T) {
	tasks := []placement.Task{
		{Name: "a", CPURequest: 500, MemRequest: 5e8},
		{Name: "b", CPURequest: 500, MemRequest: 5e8},
	}
	config := placement.DefaultBalanceConfig()

	if got := placement.Imbalance([]int{0, 1}, tasks, twoMachines, config); got != 0 {
		t.Errorf("Imbalance() of an even spread = %v, want 0", got)
	}
	got := placement.ImbalanceWithDetails([]int{0, 0}, tasks, twoMachines, config)
	if math.Abs(got.Total-1) > 1e-12 || math.Abs(got.CPUStdDev-50) > 1e-12 {
		t.Errorf("Imbalance() of a stacked placement = %+v, want total 1 and std-dev 50", got)
	}
	want := []placement.Utilization{{Machine: 0, CPU: 100, Mem: 100}, {Machine: 1}}
	if diff := cmp.Diff(want, got.Utilizations); diff != "" {
		t.Errorf("Utilizations mismatch (-want +got):\n%s", diff)
	}
}

func TestCapacityConstraint(t *testing.T) {
	tasks := []placement.Task{
		{Name: "a", CPURequest: 800, MemRequest: 8e8},
		{Name: "b", CPURequest: 800, MemRequest: 8e8},
	}
	c := placement.CapacityConstraint(tasks, twoMachines)
	tests := []struct {
		name       string
		assignment []int
		want       float64
	}{
		{name: "fits", assignment: []int{0, 1}, want: 0},
		{name: "overflow", assignment: []int{1, 1}, want: -1.2},
		{name: "unknown machine", assignment: []int{0, 2}, want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c(framework.NewIntegerSolution(tt.assignment, nil))
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("CapacityConstraint() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewValidation(t *testing.T) {
	task := []placement.Task{{Name: "a", CPURequest: 1, MemRequest: 1}}
	tests := map[string]struct {
		tasks    []placement.Task
		machines []placement.Machine
	}{
		"no tasks":        {machines: twoMachines},
		"no machines":     {tasks: task},
		"zero capacity":   {tasks: task, machines: []placement.Machine{{Name: "broken"}}},
		"unknown current": {tasks: []placement.Task{{Name: "a", Current: 5}}, machines: twoMachines},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := placement.New(tt.tasks, tt.machines, placement.DefaultBalanceConfig()); err == nil {
				t.Error("New() succeeded on an invalid instance")
			}
		})
	}
}

func TestSynthetic(t *testing.T) {
	p, err := placement.Synthetic(20)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Tasks()) != 20 || len(p.Machines()) != 6 {
		t.Fatalf("Synthetic(20) has %d tasks and %d machines", len(p.Tasks()), len(p.Machines()))
	}
	population := p.Initialize(10, rand.New(rand.NewSource(1)))
	for _, s := range population {
		for _, m := range s.(*framework.IntegerSolution).Variables {
			if m < 0 || m >= 6 {
				t.Fatalf("machine index %d out of range", m)
			}
		}
	}
	if _, err := placement.Synthetic(0); err == nil {
		t.Error("Synthetic(0) succeeded")
	}
}

func TestWeightVectors(t *testing.T) {
	want := [][2]float64{{1, 0}, {0.5, 0.5}, {0, 1}}
	if diff := cmp.Diff(want, placement.WeightVectors(3)); diff != "" {
		t.Errorf("WeightVectors() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][2]float64{{0.5, 0.5}}, placement.WeightVectors(1)); diff != "" {
		t.Errorf("WeightVectors(1) mismatch (-want +got):\n%s", diff)
	}
}

func violation(p framework.Problem, s framework.Solution) float64 {
	v := 0.0
	for _, c := range p.Constraints() {
		v += c(s)
	}
	return v
}

func TestSeeder(t *testing.T) {
	p, err := placement.Synthetic(20)
	if err != nil {
		t.Fatal(err)
	}
	seeder := placement.NewSeeder(p)
	seeder.IncludeCurrent = true
	seeds := seeder.Seeds(8, rand.New(rand.NewSource(3)))
	if len(seeds) != 8 {
		t.Fatalf("Seeds() returned %d solutions, want 8", len(seeds))
	}

	current := seeds[0].(*framework.IntegerSolution).Variables
	for i, task := range p.Tasks() {
		if current[i] != task.Current {
			t.Fatalf("first seed is not the current placement: task %d on %d, want %d", i, current[i], task.Current)
		}
	}
	for i, s := range seeds[1:] {
		if v := violation(p, s); v != 0 {
			t.Errorf("seed %d violates capacity by %v", i+1, v)
		}
	}

	costFocused := seeds[1].(*framework.IntegerSolution).Variables
	if got := placement.Cost(costFocused, p.Machines()); got >= placement.MaxCost(p.Machines()) {
		t.Errorf("cost-focused seed uses every machine (cost %v)", got)
	}
}

func TestSeededRunStaysFeasible(t *testing.T) {
	p, err := placement.Synthetic(24)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(11))
	seeds := placement.NewSeeder(p).Seeds(20, rng)

	driver, err := algorithms.NewNSGAII(algorithms.NSGA2Config{
		PopulationSize:       20,
		MaxGenerations:       10,
		CrossoverProbability: 0.9,
		MutationProbability:  1.0 / 24.0,
		TournamentSize:       2,
	}, p, rng,
		algorithms.WithInitialSolutions(seeds),
		algorithms.WithVariation(operators.ConstraintAware(p.Constraints(), 0.9, 1.0/24.0)),
	)
	if err != nil {
		t.Fatal(err)
	}
	res, err := driver.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	for _, ind := range res.Population {
		if !ind.Feasible() {
			t.Errorf("infeasible member %v with violation %v", ind.Solution, ind.ConstraintViolation)
		}
	}
}

func TestMigration(t *testing.T) {
	tasks := []placement.Task{{Name: "a", Current: 0}, {Name: "b", Current: 1}, {Name: "c", Current: -1}}
	tests := []struct {
		name       string
		assignment []int
		want       float64
	}{
		{name: "unchanged", assignment: []int{0, 1, 0}, want: 0},
		{name: "one moved", assignment: []int{1, 1, 1}, want: 0.5},
		{name: "all moved", assignment: []int{1, 0, 0}, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := placement.Migration(tt.assignment, tasks); got != tt.want {
				t.Errorf("Migration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMigrationObjective(t *testing.T) {
	p, err := placement.Synthetic(8, placement.WithMigrationObjective())
	if err != nil {
		t.Fatal(err)
	}
	funcs := p.ObjectiveFuncs()
	if len(funcs) != 3 {
		t.Fatalf("got %d objectives, want 3", len(funcs))
	}
	current := placement.NewSeeder(p)
	current.IncludeCurrent = true
	seed := current.Seeds(1, rand.New(rand.NewSource(1)))[0]
	if got := funcs[2](seed); got != 0 {
		t.Errorf("migration of the current placement = %v, want 0", got)
	}
}
