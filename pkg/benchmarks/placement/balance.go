package placement

import (
	"gonum.org/v1/gonum/stat"
)

// BalanceConfig contains weights and normalization parameters
type BalanceConfig struct {
	CPUWeight float64
	MemWeight float64

	// MaxStdDev normalises the standard deviation of utilisation
	// percentages. 50 is the theoretical maximum for a 0-100% range.
	MaxStdDev float64
}

// DefaultBalanceConfig returns a balanced configuration
func DefaultBalanceConfig() BalanceConfig {
	return BalanceConfig{
		CPUWeight: 0.5,
		MemWeight: 0.5,
		MaxStdDev: 50.0,
	}
}

// BalanceResult contains detailed balance metrics
type BalanceResult struct {
	CPUStdDev    float64
	MemStdDev    float64
	Total        float64
	Utilizations []Utilization
}

// Utilization tracks the load of one machine in percent.
type Utilization struct {
	Machine int
	CPU     float64
	Mem     float64
}

// Imbalance is the weighted, normalised standard deviation of machine
// utilisation. Unassigned tasks (index out of range) are ignored.
func Imbalance(assignment []int, tasks []Task, machines []Machine, config BalanceConfig) float64 {
	return ImbalanceWithDetails(assignment, tasks, machines, config).Total
}

// ImbalanceWithDetails returns the per-machine utilisation behind Imbalance.
func ImbalanceWithDetails(assignment []int, tasks []Task, machines []Machine, config BalanceConfig) BalanceResult {
	if len(machines) == 0 {
		return BalanceResult{}
	}
	cpuUsed, memUsed := usage(assignment, tasks, len(machines))

	utilizations := make([]Utilization, len(machines))
	cpuUtils := make([]float64, len(machines))
	memUtils := make([]float64, len(machines))
	for i, m := range machines {
		if m.CPUCapacity > 0 {
			cpuUtils[i] = cpuUsed[i] / m.CPUCapacity * 100
		}
		if m.MemCapacity > 0 {
			memUtils[i] = memUsed[i] / m.MemCapacity * 100
		}
		utilizations[i] = Utilization{Machine: i, CPU: cpuUtils[i], Mem: memUtils[i]}
	}

	_, cpuStdDev := stat.PopMeanStdDev(cpuUtils, nil)
	_, memStdDev := stat.PopMeanStdDev(memUtils, nil)

	maxStdDev := config.MaxStdDev
	if maxStdDev <= 0 {
		maxStdDev = DefaultBalanceConfig().MaxStdDev
	}
	return BalanceResult{
		CPUStdDev:    cpuStdDev,
		MemStdDev:    memStdDev,
		Total:        config.CPUWeight*cpuStdDev/maxStdDev + config.MemWeight*memStdDev/maxStdDev,
		Utilizations: utilizations,
	}
}

// usage sums the requests placed on every machine.
func usage(assignment []int, tasks []Task, numMachines int) (cpu, mem []float64) {
	cpu = make([]float64, numMachines)
	mem = make([]float64, numMachines)
	for t, m := range assignment {
		if m >= 0 && m < numMachines {
			cpu[m] += tasks[t].CPURequest
			mem[m] += tasks[t].MemRequest
		}
	}
	return cpu, mem
}
