package pareto

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Archive collects mutually non-dominated individuals across generations.
type Archive interface {
	// Add offers an individual and reports whether it is a member afterwards.
	Add(ind *Individual) (bool, error)
	Members() []*Individual
	Len() int
}

// NonDominatedArchive is an unbounded archive. It keeps its own copy of
// every admitted individual, ranked 0 since members never dominate each other.
type NonDominatedArchive struct {
	members []*Individual
}

func NewNonDominatedArchive() *NonDominatedArchive {
	return &NonDominatedArchive{}
}

// Add rejects individuals dominated by a member or duplicating a member's
// objectives, and evicts the members the newcomer dominates.
func (a *NonDominatedArchive) Add(ind *Individual) (bool, error) {
	c, err := a.insert(ind)
	return c != nil, err
}

func (a *NonDominatedArchive) insert(ind *Individual) (*Individual, error) {
	if err := checkIndividual(ind); err != nil {
		return nil, err
	}
	if len(a.members) > 0 && len(a.members[0].Objectives) != len(ind.Objectives) {
		return nil, fmt.Errorf("%w: archive holds %d objectives, got %d",
			ErrObjectiveMismatch, len(a.members[0].Objectives), len(ind.Objectives))
	}

	// A member dominating the newcomer cannot coexist with one the
	// newcomer dominates, so rejection is decided before anything is dropped.
	kept := make([]*Individual, 0, len(a.members)+1)
	for _, m := range a.members {
		switch constrainedDominance(m, ind) {
		case -1:
			return nil, nil
		case 1:
			continue
		}
		if m.ConstraintViolation == ind.ConstraintViolation && equalObjectives(m.Objectives, ind.Objectives) {
			return nil, nil
		}
		kept = append(kept, m)
	}

	c := ind.Clone()
	c.Rank = 0
	a.members = append(kept, c)
	return c, nil
}

// Members returns the current members in insertion order.
func (a *NonDominatedArchive) Members() []*Individual {
	out := make([]*Individual, len(a.members))
	copy(out, a.members)
	return out
}

func (a *NonDominatedArchive) Len() int {
	return len(a.members)
}

// BoundedArchive is a non-dominated archive holding at most capacity
// members. Member densities are rescored over the archive after every
// change, so selection from Members sees values computed for the archive
// itself. On overflow the least isolated member is evicted. A capacity of
// zero or less is unbounded.
type BoundedArchive struct {
	archive  NonDominatedArchive
	capacity int
	density  DensityFunc
	// rng breaks ties between equally crowded members; nil evicts the
	// first of them.
	rng *rand.Rand
}

func NewBoundedArchive(capacity int, density DensityFunc, rng *rand.Rand) *BoundedArchive {
	return &BoundedArchive{
		capacity: capacity,
		density:  density,
		rng:      rng,
	}
}

// NewCrowdingDistanceArchive bounds the archive with crowding distance.
func NewCrowdingDistanceArchive(capacity int) *BoundedArchive {
	return NewBoundedArchive(capacity, CrowdingDistance, nil)
}

// NewSpatialSpreadArchive bounds the archive with nearest-neighbour spread.
func NewSpatialSpreadArchive(capacity int) *BoundedArchive {
	return NewBoundedArchive(capacity, SpatialSpread, nil)
}

func (a *BoundedArchive) Add(ind *Individual) (bool, error) {
	c, err := a.archive.insert(ind)
	if err != nil || c == nil {
		return false, err
	}
	if err := a.score(); err != nil {
		return false, err
	}
	if a.capacity <= 0 || a.archive.Len() <= a.capacity {
		return true, nil
	}

	members := a.archive.members
	victim := a.mostCrowded(members)
	evicted := members[victim]
	a.archive.members = append(members[:victim], members[victim+1:]...)
	if err := a.score(); err != nil {
		return false, err
	}
	return evicted != c, nil
}

func (a *BoundedArchive) score() error {
	if err := a.density(a.archive.members); err != nil {
		return fmt.Errorf("scoring archive: %w", err)
	}
	return nil
}

func (a *BoundedArchive) mostCrowded(members []*Individual) int {
	var ties []int
	for i, m := range members {
		switch {
		case len(ties) == 0 || m.Density < members[ties[0]].Density:
			ties = append(ties[:0], i)
		case m.Density == members[ties[0]].Density:
			ties = append(ties, i)
		}
	}
	if a.rng == nil || len(ties) == 1 {
		return ties[0]
	}
	return ties[a.rng.Intn(len(ties))]
}

func (a *BoundedArchive) Members() []*Individual {
	return a.archive.Members()
}

func (a *BoundedArchive) Len() int {
	return a.archive.Len()
}

// Capacity returns the configured bound; zero or less means unbounded.
func (a *BoundedArchive) Capacity() int {
	return a.capacity
}
