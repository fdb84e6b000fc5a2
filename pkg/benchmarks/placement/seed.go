package placement

import (
	"math"
	"sort"

	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/moea/pkg/framework"
)

// Seeder builds good initial placements by greedy construction. Each seed
// minimises a different weighting of the two objectives, sweeping from
// cost-focused to balance-focused, so the seeds start spread along the front.
type Seeder struct {
	problem *Problem
	// IncludeCurrent adds the current placement as the first seed when
	// every task has one.
	IncludeCurrent bool
}

func NewSeeder(problem *Problem) *Seeder {
	return &Seeder{problem: problem}
}

// WeightVectors interpolates linearly between (1, 0) and (0, 1).
func WeightVectors(count int) [][2]float64 {
	weights := make([][2]float64, count)
	for i := range weights {
		if count == 1 {
			weights[i] = [2]float64{0.5, 0.5}
			continue
		}
		t := float64(i) / float64(count-1)
		weights[i] = [2]float64{1 - t, t}
	}
	return weights
}

// Seeds returns n solutions. rng perturbs the placement order so seeds
// with close weights still differ.
func (s *Seeder) Seeds(n int, rng *rand.Rand) []framework.Solution {
	seeds := make([]framework.Solution, 0, n)
	if s.IncludeCurrent && n > 0 {
		if current := s.current(); current != nil {
			seeds = append(seeds, current)
		}
	}
	for _, w := range WeightVectors(n - len(seeds)) {
		seeds = append(seeds, s.construct(w, rng))
	}
	return seeds
}

func (s *Seeder) current() framework.Solution {
	vars := make([]int, len(s.problem.tasks))
	for i, t := range s.problem.tasks {
		if t.Current < 0 {
			return nil
		}
		vars[i] = t.Current
	}
	return framework.NewIntegerSolution(vars, s.problem.bounds())
}

// construct places the largest tasks first, each on the machine with the
// lowest weighted score among those it fits on.
func (s *Seeder) construct(w [2]float64, rng *rand.Rand) framework.Solution {
	tasks, machines := s.problem.tasks, s.problem.machines

	type sized struct {
		index int
		size  float64
	}
	order := make([]sized, len(tasks))
	for i, t := range tasks {
		// up to 20% noise so similarly sized tasks trade places
		order[i] = sized{index: i, size: (t.CPURequest/1000 + t.MemRequest/1e9) * (0.8 + rng.Float64()*0.4)}
	}
	sort.SliceStable(order, func(i, j int) bool { return order[i].size > order[j].size })

	assignment := make([]int, len(tasks))
	for i := range assignment {
		assignment[i] = -1
	}
	cpuFree := make([]float64, len(machines))
	memFree := make([]float64, len(machines))
	for i, m := range machines {
		cpuFree[i], memFree[i] = m.CPUCapacity, m.MemCapacity
	}

	maxCost := MaxCost(machines)
	for _, o := range order {
		task := tasks[o.index]
		best, bestScore := -1, math.Inf(1)
		for m := range machines {
			if !fits(task, cpuFree[m], memFree[m]) {
				continue
			}
			assignment[o.index] = m
			score := w[1] * Imbalance(assignment, tasks, machines, s.problem.balance)
			if maxCost > 0 {
				score += w[0] * Cost(assignment, machines) / maxCost
			}
			if score < bestScore {
				best, bestScore = m, score
			}
		}
		if best == -1 {
			// Nothing fits; the roomiest machine keeps the overflow small.
			best = roomiest(cpuFree, memFree, machines)
		}
		assignment[o.index] = best
		cpuFree[best] -= task.CPURequest
		memFree[best] -= task.MemRequest
	}
	return framework.NewIntegerSolution(assignment, s.problem.bounds())
}

func roomiest(cpuFree, memFree []float64, machines []Machine) int {
	best, bestRoom := 0, math.Inf(-1)
	for i, m := range machines {
		room := cpuFree[i]/m.CPUCapacity + memFree[i]/m.MemCapacity
		if room > bestRoom {
			best, bestRoom = i, room
		}
	}
	return best
}
