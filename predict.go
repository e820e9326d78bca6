package kmedoids

import (
	"fmt"
	"math"
)

// Predict labels points that were not part of a clustering run: each one
// gets the index of its nearest medoid, matching the assignment rule of
// Cluster (ties keep the earlier medoid). data and medoids are the
// dataset and Result.Medoids of the finished run; metric should be the
// one the run used. A nil metric defaults to SquaredEuclideanMetric.
func Predict(data [][]float64, medoids []int, points [][]float64, metric Metric) ([]int, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDataset
	}
	if len(medoids) == 0 {
		return nil, fmt.Errorf("%w: no medoids", ErrInvalidK)
	}
	if err := validateMedoids(medoids, len(data)); err != nil {
		return nil, err
	}
	if metric == nil {
		metric = SquaredEuclideanMetric{}
	}

	dims := len(data[0])
	labels := make([]int, len(points))
	for i, p := range points {
		if len(p) != dims {
			return nil, fmt.Errorf("%w: point %d has %d dimensions, dataset has %d",
				ErrDimensionMismatch, i, len(p), dims)
		}
		best := math.MaxFloat64
		for c, m := range medoids {
			if d := metric.Distance(p, data[m]); d < best {
				best = d
				labels[i] = c
			}
		}
	}
	return labels, nil
}
