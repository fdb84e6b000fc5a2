package pareto

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Normalizer handles objective value normalization
type Normalizer struct {
	min []float64
	max []float64
}

// NewNormalizer creates a normalizer from per-objective bounds.
func NewNormalizer(min []float64, max []float64) *Normalizer {
	return &Normalizer{
		min: min,
		max: max,
	}
}

// NewNormalizerFromFront takes its bounds from the extremes of the front.
// The front must be non-empty and share one objective count.
func NewNormalizerFromFront(front []*Individual) *Normalizer {
	m := len(front[0].Objectives)
	column := make([]float64, len(front))
	lo, hi := make([]float64, m), make([]float64, m)
	for j := 0; j < m; j++ {
		for i, ind := range front {
			column[i] = ind.Objectives[j]
		}
		lo[j] = floats.Min(column)
		hi[j] = floats.Max(column)
	}
	return NewNormalizer(lo, hi)
}

// Normalize returns normalized objective values in [0,1]. A constant
// dimension maps to 0.
func (n *Normalizer) Normalize(values []float64) []float64 {
	normalized := make([]float64, len(values))
	for i, val := range values {
		span := n.max[i] - n.min[i]
		if span == 0 || math.IsInf(span, 0) || math.IsNaN(span) {
			normalized[i] = 0
			continue
		}
		normalized[i] = (val - n.min[i]) / span
	}
	return normalized
}

// IsExtreme reports whether values hit the lower or upper bound of some
// non-constant objective.
func (n *Normalizer) IsExtreme(values []float64) bool {
	for i, val := range values {
		if n.max[i] == n.min[i] {
			continue
		}
		if val == n.min[i] || val == n.max[i] {
			return true
		}
	}
	return false
}
