// Package placement is a constrained integer problem: assign tasks to
// machines so that the hourly cost of the machines in use and the
// imbalance of their utilisation are both minimised without exceeding
// any machine's capacity.
package placement

// Machine is a host tasks can be placed on.
type Machine struct {
	Name        string
	CPUCapacity float64 // in millicores
	MemCapacity float64 // in bytes
	HourlyCost  float64
}

// Task is a unit of work with a resource request.
type Task struct {
	Name       string
	CPURequest float64 // in millicores
	MemRequest float64 // in bytes
	// Current is the index of the machine the task runs on today, -1 when
	// it is not placed yet.
	Current int
}
