package placement

import (
	"github.com/mihai-snyk/moea/pkg/framework"
)

// CapacityConstraint reports how far a placement overflows the machines.
// Each machine contributes its CPU and memory overflow as a fraction of its
// capacity, and each task assigned outside the machine range counts as a
// whole unit, so the result is 0 for a valid placement and negative otherwise.
func CapacityConstraint(tasks []Task, machines []Machine) framework.Constraint {
	return func(sol framework.Solution) float64 {
		intSol, ok := sol.(*framework.IntegerSolution)
		if !ok {
			return -1
		}
		return -overflow(intSol.Variables, tasks, machines)
	}
}

func overflow(assignment []int, tasks []Task, machines []Machine) float64 {
	total := 0.0
	for _, m := range assignment {
		if m < 0 || m >= len(machines) {
			total++
		}
	}
	cpuUsed, memUsed := usage(assignment, tasks, len(machines))
	for i, m := range machines {
		if over := cpuUsed[i] - m.CPUCapacity; over > 0 {
			total += over / m.CPUCapacity
		}
		if over := memUsed[i] - m.MemCapacity; over > 0 {
			total += over / m.MemCapacity
		}
	}
	return total
}

// fits reports whether the task fits in the remaining room of a machine.
func fits(t Task, cpuFree, memFree float64) bool {
	return t.CPURequest <= cpuFree && t.MemRequest <= memFree
}
