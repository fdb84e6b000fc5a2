package pareto

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// KNearestNeighbor returns a density estimator scoring each member by the
// normalised distance to its k-th nearest neighbour, as in SPEA2. When the
// front has k or fewer other members the farthest one is used.
func KNearestNeighbor(k int) (DensityFunc, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k must be at least 1, got %d", ErrInvalidArgument, k)
	}
	return func(front []*Individual) error {
		if _, err := checkFront(front); err != nil {
			return err
		}
		n := len(front)
		if n == 1 {
			front[0].Density = math.Inf(1)
			return nil
		}

		kth := k
		if kth > n-1 {
			kth = n - 1
		}
		points := normalizedPoints(NewNormalizerFromFront(front), front)
		dist := make([]float64, 0, n-1)
		for i, ind := range front {
			dist = dist[:0]
			for j := range points {
				if i != j {
					dist = append(dist, floats.Distance(points[i], points[j], 2))
				}
			}
			sort.Float64s(dist)
			ind.Density = dist[kth-1]
		}
		return nil
	}, nil
}
