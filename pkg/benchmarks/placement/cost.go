package placement

// Cost sums the hourly cost of every machine running at least one task.
// Empty machines can be shut down and cost nothing.
func Cost(assignment []int, machines []Machine) float64 {
	active := make([]bool, len(machines))
	for _, m := range assignment {
		if m >= 0 && m < len(machines) {
			active[m] = true
		}
	}
	total := 0.0
	for i, on := range active {
		if on {
			total += machines[i].HourlyCost
		}
	}
	return total
}

// MaxCost is the cost with every machine in use.
func MaxCost(machines []Machine) float64 {
	total := 0.0
	for _, m := range machines {
		total += m.HourlyCost
	}
	return total
}
