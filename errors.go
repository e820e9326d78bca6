package kmedoids

import "errors"

var (
	// ErrEmptyDataset is returned when the input contains no objects.
	ErrEmptyDataset = errors.New("kmedoids: empty dataset")

	// ErrNoInitialMedoids is returned when Config.InitialMedoids is empty.
	ErrNoInitialMedoids = errors.New("kmedoids: no initial medoids")

	// ErrMedoidOutOfRange is returned when an initial medoid index does not
	// address an object in the dataset.
	ErrMedoidOutOfRange = errors.New("kmedoids: medoid index out of range")

	// ErrDuplicateMedoid is returned when the same index appears twice in
	// the initial medoid set.
	ErrDuplicateMedoid = errors.New("kmedoids: duplicate medoid index")

	// ErrDimensionMismatch is returned when the rows of a point dataset do
	// not all have the same length.
	ErrDimensionMismatch = errors.New("kmedoids: dimension mismatch")

	// ErrInvalidTolerance is returned when Config.Tolerance is negative.
	ErrInvalidTolerance = errors.New("kmedoids: tolerance must not be negative")

	// ErrInvalidMaxIterations is returned when Config.MaxIterations is negative.
	ErrInvalidMaxIterations = errors.New("kmedoids: max iterations must not be negative")

	// ErrInvalidK is returned when a requested cluster count is not usable,
	// e.g. k < 1 or k larger than the number of objects.
	ErrInvalidK = errors.New("kmedoids: invalid cluster count")
)
