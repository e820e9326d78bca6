package kmedoids

import "gonum.org/v1/gonum/mat"

// PairwiseDistances computes the full symmetric distance matrix for data
// under metric, suitable for ClusterDistanceMatrix. All points must have
// the same dimensionality. Returns nil when data is empty.
func PairwiseDistances(data [][]float64, metric Metric) *mat.SymDense {
	n := len(data)
	if n == 0 {
		return nil
	}

	dm := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dm.SetSym(i, j, metric.Distance(data[i], data[j]))
		}
	}
	return dm
}
