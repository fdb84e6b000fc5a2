package placement

// Migration is the fraction of placed tasks that a new assignment moves
// away from their current machine. Tasks without a current machine never
// count as moved.
func Migration(assignment []int, tasks []Task) float64 {
	placed, moved := 0, 0
	for i, t := range tasks {
		if t.Current < 0 {
			continue
		}
		placed++
		if assignment[i] != t.Current {
			moved++
		}
	}
	if placed == 0 {
		return 0
	}
	return float64(moved) / float64(placed)
}
