package kmedoids

import (
	"sync"

	"gonum.org/v1/gonum/mat"
)

// PairwiseDistancesParallel computes the full symmetric distance matrix
// using multiple goroutines. numWorkers controls the degree of
// parallelism; if <= 1, it falls back to single-threaded
// PairwiseDistances.
//
// The result is bitwise identical to PairwiseDistances.
func PairwiseDistancesParallel(data [][]float64, metric Metric, numWorkers int) *mat.SymDense {
	n := len(data)
	if numWorkers <= 1 || n <= 1 {
		return PairwiseDistances(data, metric)
	}

	dm := mat.NewSymDense(n, nil)

	// Split rows across workers. Each worker handles a contiguous range
	// of "source" rows and computes dist(i,j) for all j > i in that
	// range. Since row ranges don't overlap, each upper-triangle cell is
	// written by exactly one goroutine and no synchronization is needed.
	var wg sync.WaitGroup

	rowsPerWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := min(startRow+rowsPerWorker, n)
		if startRow >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				for j := i + 1; j < n; j++ {
					dm.SetSym(i, j, metric.Distance(data[i], data[j]))
				}
			}
		}(startRow, endRow)
	}

	wg.Wait()
	return dm
}
