package pareto

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SpatialSpread scores each member by the Euclidean distance to its
// nearest neighbour in the front, measured after normalising every
// objective to the front's own range. Members at the extreme of any
// objective are +Inf so the archive never loses the front's boundary.
// Fronts of one or two members are all +Inf.
func SpatialSpread(front []*Individual) error {
	if _, err := checkFront(front); err != nil {
		return err
	}
	n := len(front)
	if n <= 2 {
		for _, ind := range front {
			ind.Density = math.Inf(1)
		}
		return nil
	}

	norm := NewNormalizerFromFront(front)
	points := normalizedPoints(norm, front)
	for i, ind := range front {
		if norm.IsExtreme(ind.Objectives) {
			ind.Density = math.Inf(1)
			continue
		}
		nearest := math.Inf(1)
		for j := range points {
			if i == j {
				continue
			}
			if d := floats.Distance(points[i], points[j], 2); d < nearest {
				nearest = d
			}
		}
		ind.Density = nearest
	}
	return nil
}

func normalizedPoints(norm *Normalizer, front []*Individual) [][]float64 {
	points := make([][]float64, len(front))
	for i, ind := range front {
		points[i] = norm.Normalize(ind.Objectives)
	}
	return points
}
