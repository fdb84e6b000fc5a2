package algorithms

import "time"

// GenerationStats summarises one completed generation.
type GenerationStats struct {
	Algorithm   string
	Problem     string
	Generation  int
	Evaluations int
	// FirstFrontSize counts rank 0 members of the population.
	FirstFrontSize int
	// ArchiveSize is 0 when the run has no archive.
	ArchiveSize int
	// Feasible counts population members violating no constraint.
	Feasible int
	Duration time.Duration
	Elapsed  time.Duration
}

// Observer is notified after every generation. Calls come from the
// goroutine running the driver.
type Observer interface {
	ObserveGeneration(stats GenerationStats)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(GenerationStats)

func (f ObserverFunc) ObserveGeneration(stats GenerationStats) {
	f(stats)
}
