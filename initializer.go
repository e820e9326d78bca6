package kmedoids

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// RandomMedoids picks k distinct object indices uniformly at random from
// a dataset of n objects. Pass a seeded *rand.Rand for reproducible
// seeds; nil uses a randomly seeded source.
func RandomMedoids(n, k int, rng *rand.Rand) ([]int, error) {
	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: k=%d with %d objects", ErrInvalidK, k, n)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return rng.Perm(n)[:k], nil
}

// GreedyMedoids seeds k medoids by dissimilarity-weighted sampling: the
// first medoid is uniform, each further one is drawn with probability
// proportional to its dissimilarity to the nearest already-chosen
// medoid. Spread-out seeds typically need fewer swap passes than
// uniform ones. Pass a seeded *rand.Rand for reproducible seeds; nil
// uses a randomly seeded source.
func GreedyMedoids(data [][]float64, k int, metric Metric, rng *rand.Rand) ([]int, error) {
	n := len(data)
	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: k=%d with %d objects", ErrInvalidK, k, n)
	}
	if metric == nil {
		metric = SquaredEuclideanMetric{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return greedySeed(n, k, pointsCalculator(data, metric), rng), nil
}

// GreedyMedoidsMatrix is GreedyMedoids for a precomputed distance matrix.
func GreedyMedoidsMatrix(dm mat.Symmetric, k int, rng *rand.Rand) ([]int, error) {
	if dm == nil {
		return nil, fmt.Errorf("%w: k=%d with no objects", ErrInvalidK, k)
	}
	n := dm.SymmetricDim()
	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: k=%d with %d objects", ErrInvalidK, k, n)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return greedySeed(n, k, matrixCalculator(dm), rng), nil
}

func greedySeed(n, k int, calc distanceFunc, rng *rand.Rand) []int {
	medoids := make([]int, 0, k)
	chosen := make([]bool, n)

	first := rng.Intn(n)
	medoids = append(medoids, first)
	chosen[first] = true

	// nearest[i] is the dissimilarity from i to its closest chosen medoid.
	nearest := make([]float64, n)
	for i := 0; i < n; i++ {
		nearest[i] = calc(i, first)
	}

	for len(medoids) < k {
		var total float64
		for i, d := range nearest {
			if !chosen[i] {
				total += d
			}
		}

		next := -1
		if total > 0 {
			r := rng.Float64() * total
			var acc float64
			for i, d := range nearest {
				if chosen[i] {
					continue
				}
				acc += d
				if acc >= r {
					next = i
					break
				}
			}
		}
		if next == -1 {
			// Every remaining object coincides with a chosen medoid;
			// fall back to the first unchosen index.
			for i := range chosen {
				if !chosen[i] {
					next = i
					break
				}
			}
		}

		medoids = append(medoids, next)
		chosen[next] = true
		for i := 0; i < n; i++ {
			if d := calc(i, next); d < nearest[i] {
				nearest[i] = d
			}
		}
	}
	return medoids
}
