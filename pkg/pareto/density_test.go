package pareto_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/mihai-snyk/moea/pkg/pareto"
)

var inf = math.Inf(1)

func densities(front []*pareto.Individual) []float64 {
	out := make([]float64, len(front))
	for i, ind := range front {
		out[i] = ind.Density
	}
	return out
}

func TestCrowdingDistance(t *testing.T) {
	tests := []struct {
		name  string
		front []*pareto.Individual
		want  []float64
	}{
		{
			name:  "single member",
			front: []*pareto.Individual{newInd(1, 1)},
			want:  []float64{inf},
		},
		{
			name:  "two members",
			front: []*pareto.Individual{newInd(1, 2), newInd(2, 1)},
			want:  []float64{inf, inf},
		},
		{
			name: "evenly spaced line",
			front: []*pareto.Individual{
				newInd(0, 4), newInd(1, 3), newInd(2, 2), newInd(3, 1), newInd(4, 0),
			},
			want: []float64{inf, 1, 1, 1, inf},
		},
		{
			name: "unsorted input keeps its order",
			front: []*pareto.Individual{
				newInd(2, 2), newInd(4, 0), newInd(0, 4), newInd(3, 1), newInd(1, 3),
			},
			want: []float64{1, inf, inf, 1, 1},
		},
		{
			name: "uneven spacing",
			front: []*pareto.Individual{
				newInd(0, 10), newInd(1, 9), newInd(5, 5), newInd(10, 0),
			},
			want: []float64{inf, 1, 1.8, inf},
		},
		{
			name:  "constant objective contributes nothing",
			front: []*pareto.Individual{newInd(0, 5), newInd(1, 5), newInd(2, 5)},
			want:  []float64{inf, 1, inf},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := objectivesOf(tt.front)
			if err := pareto.CrowdingDistance(tt.front); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, densities(tt.front), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("CrowdingDistance() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(before, objectivesOf(tt.front)); diff != "" {
				t.Errorf("CrowdingDistance() reordered the front (-before +after):\n%s", diff)
			}
		})
	}
}

func TestCrowdingDistanceResetsPreviousValues(t *testing.T) {
	front := []*pareto.Individual{newInd(0, 2), newInd(1, 1), newInd(2, 0)}
	for _, ind := range front {
		ind.Density = 100
	}
	if err := pareto.CrowdingDistance(front); err != nil {
		t.Fatal(err)
	}
	if got := front[1].Density; got != 2 {
		t.Errorf("interior density = %v, want 2", got)
	}
	// A second pass over the same front gives the same values.
	if err := pareto.CrowdingDistance(front); err != nil {
		t.Fatal(err)
	}
	if got := front[1].Density; got != 2 {
		t.Errorf("interior density after second pass = %v, want 2", got)
	}
}

func TestCrowdingDistanceWithInfiniteObjectives(t *testing.T) {
	front := []*pareto.Individual{newInd(0, inf), newInd(1, inf), newInd(2, inf)}
	if err := pareto.CrowdingDistance(front); err != nil {
		t.Fatal(err)
	}
	for i, d := range densities(front) {
		if math.IsNaN(d) {
			t.Errorf("density %d is NaN", i)
		}
	}
}

func TestDensityOnEmptyFront(t *testing.T) {
	knn, err := pareto.KNearestNeighbor(1)
	if err != nil {
		t.Fatal(err)
	}
	for name, density := range map[string]pareto.DensityFunc{
		"crowding": pareto.CrowdingDistance,
		"spatial":  pareto.SpatialSpread,
		"knn":      knn,
	} {
		t.Run(name, func(t *testing.T) {
			if err := density(nil); !errors.Is(err, pareto.ErrEmptyFront) {
				t.Errorf("error = %v, want %v", err, pareto.ErrEmptyFront)
			}
		})
	}
}

func TestSpatialSpread(t *testing.T) {
	nearest := math.Sqrt(0.125)
	tests := []struct {
		name  string
		front []*pareto.Individual
		want  []float64
	}{
		{
			name:  "two members",
			front: []*pareto.Individual{newInd(0, 1), newInd(1, 0)},
			want:  []float64{inf, inf},
		},
		{
			name: "extremes are protected",
			front: []*pareto.Individual{
				newInd(0, 4), newInd(1, 3), newInd(3, 1), newInd(4, 0),
			},
			want: []float64{inf, nearest, nearest, inf},
		},
		{
			name: "duplicates are maximally crowded",
			front: []*pareto.Individual{
				newInd(0, 4), newInd(2, 2), newInd(2, 2), newInd(4, 0),
			},
			want: []float64{inf, 0, 0, inf},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := pareto.SpatialSpread(tt.front); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, densities(tt.front), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("SpatialSpread() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestKNearestNeighbor(t *testing.T) {
	front := func() []*pareto.Individual {
		return []*pareto.Individual{newInd(0, 4), newInd(1, 3), newInd(3, 1), newInd(4, 0)}
	}
	near, mid, far := math.Sqrt(0.125), math.Sqrt(1.125), math.Sqrt(2)
	tests := []struct {
		k    int
		want []float64
	}{
		{k: 1, want: []float64{near, near, near, near}},
		{k: 2, want: []float64{mid, math.Sqrt(0.5), math.Sqrt(0.5), mid}},
		{k: 3, want: []float64{far, mid, mid, far}},
		{k: 10, want: []float64{far, mid, mid, far}},
	}
	for _, tt := range tests {
		density, err := pareto.KNearestNeighbor(tt.k)
		if err != nil {
			t.Fatal(err)
		}
		f := front()
		if err := density(f); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(tt.want, densities(f), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
			t.Errorf("k=%d mismatch (-want +got):\n%s", tt.k, diff)
		}
	}

	single := []*pareto.Individual{newInd(1, 1)}
	density, _ := pareto.KNearestNeighbor(1)
	if err := density(single); err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(single[0].Density, 1) {
		t.Errorf("lone member density = %v, want +Inf", single[0].Density)
	}

	if _, err := pareto.KNearestNeighbor(0); !errors.Is(err, pareto.ErrInvalidArgument) {
		t.Errorf("KNearestNeighbor(0) error = %v, want %v", err, pareto.ErrInvalidArgument)
	}
}

func TestNormalizer(t *testing.T) {
	front := []*pareto.Individual{newInd(0, 5, 1), newInd(10, 5, 3), newInd(5, 5, 2)}
	norm := pareto.NewNormalizerFromFront(front)
	got := norm.Normalize([]float64{5, 5, 2.5})
	if diff := cmp.Diff([]float64{0.5, 0, 0.75}, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
	}
	if !norm.IsExtreme([]float64{10, 5, 2}) {
		t.Error("max of first objective not reported as extreme")
	}
	if norm.IsExtreme([]float64{5, 5, 2}) {
		t.Error("interior point reported as extreme")
	}
}
