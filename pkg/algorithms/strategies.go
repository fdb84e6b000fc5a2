package algorithms

import (
	"fmt"

	"github.com/mihai-snyk/moea/pkg/pareto"
)

// Names of the pluggable strategies accepted in run configurations.
const (
	RankingNonDominatedSort          = "NonDominatedSort"
	RankingEfficientNonDominatedSort = "EfficientNonDominatedSort"
	RankingStrength                  = "Strength"

	DensityCrowdingDistance = "CrowdingDistance"
	DensitySpatialSpread    = "SpatialSpread"
	DensityKNearestNeighbor = "KNearestNeighbor"
)

// RankingByName resolves a ranking strategy. The empty name yields nil so
// constructors fall back to their own default.
func RankingByName(name string) (pareto.RankingFunc, error) {
	switch name {
	case "":
		return nil, nil
	case RankingNonDominatedSort:
		return pareto.NonDominatedSort, nil
	case RankingEfficientNonDominatedSort:
		return pareto.EfficientNonDominatedSort, nil
	case RankingStrength:
		return pareto.StrengthRanking, nil
	}
	return nil, fmt.Errorf("unknown ranking %q", name)
}

// DensityByName resolves a density estimator; k is only used by the
// nearest neighbour estimator and defaults to 1.
func DensityByName(name string, k int) (pareto.DensityFunc, error) {
	switch name {
	case "":
		return nil, nil
	case DensityCrowdingDistance:
		return pareto.CrowdingDistance, nil
	case DensitySpatialSpread:
		return pareto.SpatialSpread, nil
	case DensityKNearestNeighbor:
		if k == 0 {
			k = 1
		}
		return pareto.KNearestNeighbor(k)
	}
	return nil, fmt.Errorf("unknown density estimator %q", name)
}
