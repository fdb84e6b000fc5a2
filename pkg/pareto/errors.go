package pareto

import "errors"

var (
	// ErrNoObjectives is returned when an individual carries an empty objective vector.
	ErrNoObjectives = errors.New("individual has no objectives")
	// ErrObjectiveMismatch is returned when two individuals have objective vectors of different length.
	ErrObjectiveMismatch = errors.New("objective vectors differ in length")
	// ErrNaNObjective is returned when an objective or the constraint violation is NaN.
	ErrNaNObjective = errors.New("objective value is NaN")
	// ErrEmptyFront is returned when a density estimator is asked to score an empty front.
	ErrEmptyFront = errors.New("front is empty")
	// ErrPoolTooSmall is returned when replacement cannot select the requested number of survivors.
	ErrPoolTooSmall = errors.New("not enough individuals to select from")
	// ErrInvalidArgument reports a bad constructor argument.
	ErrInvalidArgument = errors.New("invalid argument")
)
