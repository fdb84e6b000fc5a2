package placement

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/moea/pkg/framework"
)

// Problem places tasks on machines. A solution is a
// *framework.IntegerSolution with one gene per task holding a machine index.
type Problem struct {
	tasks     []Task
	machines  []Machine
	balance   BalanceConfig
	migration bool
}

// Option customises a Problem.
type Option func(*Problem)

// WithMigrationObjective adds Migration as a third objective, trading
// cost and balance against the number of tasks moved.
func WithMigrationObjective() Option {
	return func(p *Problem) { p.migration = true }
}

// New validates the instance. Every machine needs positive capacities.
func New(tasks []Task, machines []Machine, balance BalanceConfig, opts ...Option) (*Problem, error) {
	if len(tasks) == 0 {
		return nil, errors.New("placement needs at least one task")
	}
	if len(machines) == 0 {
		return nil, errors.New("placement needs at least one machine")
	}
	for i, m := range machines {
		if m.CPUCapacity <= 0 || m.MemCapacity <= 0 {
			return nil, fmt.Errorf("machine %d (%s) has no capacity", i, m.Name)
		}
	}
	for i, t := range tasks {
		if t.Current >= len(machines) {
			return nil, fmt.Errorf("task %d (%s) runs on unknown machine %d", i, t.Name, t.Current)
		}
	}
	p := &Problem{tasks: tasks, machines: machines, balance: balance}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Problem) Name() string {
	return "Placement"
}

func (p *Problem) Tasks() []Task {
	return p.tasks
}

func (p *Problem) Machines() []Machine {
	return p.machines
}

// ObjectiveFuncs returns the hourly cost, the utilisation imbalance and,
// when enabled, the migration fraction.
func (p *Problem) ObjectiveFuncs() []framework.ObjectiveFunc {
	funcs := []framework.ObjectiveFunc{
		func(sol framework.Solution) float64 {
			return Cost(sol.(*framework.IntegerSolution).Variables, p.machines)
		},
		func(sol framework.Solution) float64 {
			return Imbalance(sol.(*framework.IntegerSolution).Variables, p.tasks, p.machines, p.balance)
		},
	}
	if p.migration {
		funcs = append(funcs, func(sol framework.Solution) float64 {
			return Migration(sol.(*framework.IntegerSolution).Variables, p.tasks)
		})
	}
	return funcs
}

func (p *Problem) Constraints() []framework.Constraint {
	return []framework.Constraint{CapacityConstraint(p.tasks, p.machines)}
}

// Initialize assigns every task to a uniformly random machine.
func (p *Problem) Initialize(popSize int, rng *rand.Rand) []framework.Solution {
	population := make([]framework.Solution, popSize)
	for i := range population {
		vars := make([]int, len(p.tasks))
		for j := range vars {
			vars[j] = rng.Intn(len(p.machines))
		}
		population[i] = framework.NewIntegerSolution(vars, p.bounds())
	}
	return population
}

// TrueParetoFront is unknown for placement instances.
func (p *Problem) TrueParetoFront(int) []framework.ObjectiveSpacePoint {
	return nil
}

func (p *Problem) bounds() []framework.IntBounds {
	b := make([]framework.IntBounds, len(p.tasks))
	for i := range b {
		b[i] = framework.IntBounds{L: 0, H: len(p.machines) - 1}
	}
	return b
}

var machineTypes = []Machine{
	{Name: "small", CPUCapacity: 4000, MemCapacity: 8e9, HourlyCost: 0.2},
	{Name: "medium", CPUCapacity: 8000, MemCapacity: 16e9, HourlyCost: 0.38},
	{Name: "large", CPUCapacity: 16000, MemCapacity: 32e9, HourlyCost: 0.7},
}

// Synthetic builds a deterministic instance with numTasks tasks and one
// machine per four tasks, cycling through small, medium and large types.
// Total capacity always exceeds total demand.
func Synthetic(numTasks int, opts ...Option) (*Problem, error) {
	if numTasks < 1 {
		return nil, fmt.Errorf("synthetic placement needs at least one task, got %d", numTasks)
	}
	numMachines := numTasks/4 + 1
	machines := make([]Machine, numMachines)
	for i := range machines {
		m := machineTypes[i%len(machineTypes)]
		m.Name = fmt.Sprintf("%s-%d", m.Name, i)
		machines[i] = m
	}
	tasks := make([]Task, numTasks)
	for i := range tasks {
		tasks[i] = Task{
			Name:       fmt.Sprintf("task-%d", i),
			CPURequest: float64(250 * (1 + i%4)),
			MemRequest: 5e8 * float64(1+i%3),
			Current:    i % numMachines,
		}
	}
	return New(tasks, machines, DefaultBalanceConfig(), opts...)
}
