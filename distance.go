package kmedoids

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Metric computes the dissimilarity between two points.
// Implementations must be symmetric and return 0 for identical points;
// the triangle inequality is not required.
type Metric interface {
	Distance(a, b []float64) float64
}

// MetricFunc adapts a plain function into a Metric.
type MetricFunc func(a, b []float64) float64

func (f MetricFunc) Distance(a, b []float64) float64 { return f(a, b) }

// SquaredEuclideanMetric computes the squared Euclidean distance.
// It is the default metric: medoid assignment and swap decisions depend
// only on distance ordering, which the square preserves, so the sqrt
// can be skipped.
type SquaredEuclideanMetric struct{}

func (SquaredEuclideanMetric) Distance(a, b []float64) float64 {
	return squaredEuclidean(a, b)
}

func squaredEuclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// EuclideanMetric computes the Euclidean (L2) distance.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// ManhattanMetric computes the Manhattan (L1 / city-block) distance.
type ManhattanMetric struct{}

func (ManhattanMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// ChebyshevMetric computes the Chebyshev (L-infinity) distance.
type ChebyshevMetric struct{}

func (ChebyshevMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

// MinkowskiMetric computes the Minkowski distance parameterized by P.
// P must be >= 1. Panics if P < 1.
type MinkowskiMetric struct {
	P float64
}

func (m MinkowskiMetric) Distance(a, b []float64) float64 {
	if m.P < 1 {
		panic("MinkowskiMetric: P must be >= 1")
	}
	return floats.Distance(a, b, m.P)
}

// CanberraMetric computes the Canberra distance:
// sum(|a[i]-b[i]| / (|a[i]|+|b[i]|)). Terms with a zero denominator
// contribute 0.
type CanberraMetric struct{}

func (CanberraMetric) Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		denom := math.Abs(a[i]) + math.Abs(b[i])
		if denom == 0 {
			continue
		}
		sum += math.Abs(a[i]-b[i]) / denom
	}
	return sum
}

// ChiSquareMetric computes the chi-square distance:
// sum((a[i]-b[i])^2 / (|a[i]|+|b[i]|)). Terms with a zero denominator
// contribute 0.
type ChiSquareMetric struct{}

func (ChiSquareMetric) Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		denom := math.Abs(a[i]) + math.Abs(b[i])
		if denom == 0 {
			continue
		}
		d := a[i] - b[i]
		sum += d * d / denom
	}
	return sum
}

// GowerMetric computes the Gower distance: the mean of per-dimension
// absolute differences, each normalized by that dimension's value range
// across the dataset. Dimensions with a zero range contribute 0.
//
// Ranges must hold max-min per dimension for the dataset the metric is
// applied to; use NewGowerMetric to derive it.
type GowerMetric struct {
	Ranges []float64
}

// NewGowerMetric derives per-dimension value ranges from data and
// returns a GowerMetric normalized by them.
func NewGowerMetric(data [][]float64) GowerMetric {
	if len(data) == 0 {
		return GowerMetric{}
	}
	dims := len(data[0])
	minVals := make([]float64, dims)
	maxVals := make([]float64, dims)
	copy(minVals, data[0])
	copy(maxVals, data[0])
	for _, point := range data[1:] {
		for d, v := range point {
			minVals[d] = min(minVals[d], v)
			maxVals[d] = max(maxVals[d], v)
		}
	}
	ranges := make([]float64, dims)
	floats.SubTo(ranges, maxVals, minVals)
	return GowerMetric{Ranges: ranges}
}

func (m GowerMetric) Distance(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	var sum float64
	for i := range a {
		if m.Ranges[i] == 0 {
			continue
		}
		sum += math.Abs(a[i]-b[i]) / m.Ranges[i]
	}
	return sum / float64(len(a))
}
