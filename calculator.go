package kmedoids

import "gonum.org/v1/gonum/mat"

// distanceFunc returns the dissimilarity between objects i and j,
// hiding whether the input was a point set or a precomputed matrix.
type distanceFunc func(i, j int) float64

func pointsCalculator(data [][]float64, metric Metric) distanceFunc {
	return func(i, j int) float64 {
		return metric.Distance(data[i], data[j])
	}
}

func matrixCalculator(dm mat.Symmetric) distanceFunc {
	return func(i, j int) float64 {
		return dm.At(i, j)
	}
}
