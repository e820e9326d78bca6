package kmedoids

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// SilhouetteScores computes the silhouette score of every object under a
// labeling, in [-1, 1]. Scores near 1 mean the object sits well inside
// its cluster; near -1 mean a neighboring cluster fits it better.
// Objects in singleton clusters score 0. At least two clusters must be
// non-empty. A nil metric defaults to SquaredEuclideanMetric.
func SilhouetteScores(data [][]float64, labels []int, metric Metric) ([]float64, error) {
	if metric == nil {
		metric = SquaredEuclideanMetric{}
	}
	return silhouette(len(data), labels, pointsCalculator(data, metric))
}

// SilhouetteScoresMatrix is SilhouetteScores for a precomputed distance
// matrix.
func SilhouetteScoresMatrix(dm mat.Symmetric, labels []int) ([]float64, error) {
	if dm == nil {
		return nil, ErrEmptyDataset
	}
	return silhouette(dm.SymmetricDim(), labels, matrixCalculator(dm))
}

func silhouette(n int, labels []int, calc distanceFunc) ([]float64, error) {
	if len(labels) != n {
		return nil, fmt.Errorf("kmedoids: labels length %d does not match %d objects", len(labels), n)
	}

	k := 0
	for i, c := range labels {
		if c < 0 {
			return nil, fmt.Errorf("kmedoids: negative label %d for object %d", c, i)
		}
		k = max(k, c+1)
	}
	sizes := make([]int, k)
	for _, c := range labels {
		sizes[c]++
	}
	nonEmpty := 0
	for _, size := range sizes {
		if size > 0 {
			nonEmpty++
		}
	}
	if nonEmpty < 2 {
		return nil, fmt.Errorf("%w: silhouette requires at least 2 non-empty clusters, got %d", ErrInvalidK, nonEmpty)
	}

	scores := make([]float64, n)
	sums := make([]float64, k)
	for i := 0; i < n; i++ {
		own := labels[i]
		if sizes[own] == 1 {
			continue
		}

		for c := range sums {
			sums[c] = 0
		}
		for j := 0; j < n; j++ {
			if j != i {
				sums[labels[j]] += calc(i, j)
			}
		}

		// a is the mean distance to the rest of the own cluster, b the
		// smallest mean distance to any other non-empty cluster.
		a := sums[own] / float64(sizes[own]-1)
		b := math.MaxFloat64
		for c := 0; c < k; c++ {
			if c == own || sizes[c] == 0 {
				continue
			}
			if m := sums[c] / float64(sizes[c]); m < b {
				b = m
			}
		}

		if denom := max(a, b); denom > 0 {
			scores[i] = (b - a) / denom
		}
	}
	return scores, nil
}

// SearchK clusters the data for every k in [kMin, kMax] and returns the
// k with the highest mean silhouette score, along with the mean score
// per k. Seeds come from GreedyMedoids, so cfg.InitialMedoids is
// ignored. Ties keep the smaller k. Pass a seeded *rand.Rand for
// reproducible seeding; nil uses a randomly seeded source.
func SearchK(data [][]float64, kMin, kMax int, cfg Config, rng *rand.Rand) (int, map[int]float64, error) {
	n := len(data)
	if kMin < 2 || kMax < kMin || kMax > n {
		return 0, nil, fmt.Errorf("%w: range [%d, %d] with %d objects", ErrInvalidK, kMin, kMax, n)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	applyDefaults(&cfg)

	scores := make(map[int]float64, kMax-kMin+1)
	bestK := 0
	bestScore := math.Inf(-1)
	for k := kMin; k <= kMax; k++ {
		seeds, err := GreedyMedoids(data, k, cfg.Metric, rng)
		if err != nil {
			return 0, nil, err
		}
		cfg.InitialMedoids = seeds

		result, err := Cluster(data, cfg)
		if err != nil {
			return 0, nil, err
		}

		perObject, err := SilhouetteScores(data, result.Labels, cfg.Metric)
		if err != nil {
			return 0, nil, err
		}

		mean := stat.Mean(perObject, nil)
		scores[k] = mean
		if mean > bestScore {
			bestScore = mean
			bestK = k
		}
	}
	return bestK, scores, nil
}
