// Package indicators measures the quality of an approximation front
// against a reference front or reference point. All objectives are minimised.
package indicators

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/mihai-snyk/moea/pkg/framework"
)

var (
	// ErrEmptySet is returned when the front or the reference is empty.
	ErrEmptySet = errors.New("point set is empty")
	// ErrDimensionMismatch is returned when points differ in objective count.
	ErrDimensionMismatch = errors.New("points differ in dimension")
)

// GenerationalDistance is the mean Euclidean distance from each point of
// the front to its nearest reference point.
func GenerationalDistance(front, reference []framework.ObjectiveSpacePoint) (float64, error) {
	if err := checkSets(front, reference); err != nil {
		return 0, err
	}
	return meanNearest(front, reference), nil
}

// InvertedGenerationalDistance is the mean Euclidean distance from each
// reference point to its nearest point of the front.
func InvertedGenerationalDistance(front, reference []framework.ObjectiveSpacePoint) (float64, error) {
	if err := checkSets(front, reference); err != nil {
		return 0, err
	}
	return meanNearest(reference, front), nil
}

// AdditiveEpsilon is the smallest amount every point of the front must be
// shifted by so that the reference is weakly dominated.
func AdditiveEpsilon(front, reference []framework.ObjectiveSpacePoint) (float64, error) {
	if err := checkSets(front, reference); err != nil {
		return 0, err
	}
	eps := math.Inf(-1)
	for _, r := range reference {
		best := math.Inf(1)
		for _, a := range front {
			worst := math.Inf(-1)
			for i := range r {
				worst = math.Max(worst, a[i]-r[i])
			}
			best = math.Min(best, worst)
		}
		eps = math.Max(eps, best)
	}
	return eps, nil
}

// Hypervolume is the volume dominated by the front and bounded by the
// reference point. Points that do not strictly dominate the reference
// point contribute nothing.
func Hypervolume(front []framework.ObjectiveSpacePoint, referencePoint []float64) (float64, error) {
	if len(front) == 0 {
		return 0, ErrEmptySet
	}
	points := make([][]float64, 0, len(front))
	for _, p := range front {
		if len(p) != len(referencePoint) {
			return 0, fmt.Errorf("%w: point has %d objectives, reference point %d", ErrDimensionMismatch, len(p), len(referencePoint))
		}
		inside := true
		for i := range p {
			if !(p[i] < referencePoint[i]) {
				inside = false
				break
			}
		}
		if inside {
			points = append(points, p)
		}
	}
	return sliceVolume(points, referencePoint), nil
}

// sliceVolume computes the hypervolume by slicing along the last objective
// and recursing on the projection of each slice.
func sliceVolume(points [][]float64, ref []float64) float64 {
	if len(points) == 0 {
		return 0
	}
	m := len(ref)
	if m == 1 {
		column := make([]float64, len(points))
		for i, p := range points {
			column[i] = p[0]
		}
		return ref[0] - floats.Min(column)
	}

	sorted := make([][]float64, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i][m-1] < sorted[j][m-1]
	})

	volume := 0.0
	for i := range sorted {
		upper := ref[m-1]
		if i+1 < len(sorted) {
			upper = sorted[i+1][m-1]
		}
		depth := upper - sorted[i][m-1]
		if depth <= 0 {
			continue
		}
		projection := make([][]float64, i+1)
		for k := 0; k <= i; k++ {
			projection[k] = sorted[k][:m-1]
		}
		volume += depth * sliceVolume(projection, ref[:m-1])
	}
	return volume
}

func meanNearest(from, to []framework.ObjectiveSpacePoint) float64 {
	nearest := make([]float64, len(from))
	for i, a := range from {
		best := math.Inf(1)
		for _, b := range to {
			if d := floats.Distance(a, b, 2); d < best {
				best = d
			}
		}
		nearest[i] = best
	}
	return stat.Mean(nearest, nil)
}

func checkSets(front, reference []framework.ObjectiveSpacePoint) error {
	if len(front) == 0 || len(reference) == 0 {
		return ErrEmptySet
	}
	m := len(reference[0])
	for _, set := range [][]framework.ObjectiveSpacePoint{front, reference} {
		for _, p := range set {
			if len(p) != m {
				return fmt.Errorf("%w: %d and %d objectives", ErrDimensionMismatch, len(p), m)
			}
		}
	}
	return nil
}
