package kmedoids

import "math"

// engine holds the per-run scratch state of the medoid search. Each call
// to Cluster or ClusterDistanceMatrix builds its own engine, so runs never
// share mutable state.
type engine struct {
	n    int
	calc distanceFunc

	// medoids[c] is the object index serving as medoid of cluster c.
	medoids []int
	// medoidAt[i] is the cluster whose medoid is object i, or -1.
	medoidAt []int
	// labels[i] is the cluster object i currently belongs to.
	labels []int
	// dFirst[i] is the distance from object i to its nearest medoid and
	// dSecond[i] the distance to its second-nearest. For a medoid m,
	// dFirst[m] is 0 and dSecond[m] is the distance to the nearest other
	// medoid, which keeps swap cost estimates exact.
	dFirst  []float64
	dSecond []float64
}

func newEngine(n int, calc distanceFunc, initialMedoids []int) *engine {
	e := &engine{
		n:        n,
		calc:     calc,
		medoids:  make([]int, len(initialMedoids)),
		medoidAt: make([]int, n),
		labels:   make([]int, n),
		dFirst:   make([]float64, n),
		dSecond:  make([]float64, n),
	}
	copy(e.medoids, initialMedoids)
	return e
}

// updateClusters assigns every object to its nearest medoid, refreshes the
// first/second nearest distance caches, and returns the largest absolute
// change of any object's nearest-medoid distance since the previous pass.
func (e *engine) updateClusters() float64 {
	for i := range e.medoidAt {
		e.medoidAt[i] = -1
	}
	for c, m := range e.medoids {
		e.medoidAt[m] = c
	}

	var maxChange float64
	for i := 0; i < e.n; i++ {
		prev := e.dFirst[i]

		if c := e.medoidAt[i]; c >= 0 {
			e.labels[i] = c
			e.dFirst[i] = 0
			e.dSecond[i] = e.nearestOtherMedoid(i, c)
		} else {
			e.assign(i)
		}

		if change := math.Abs(e.dFirst[i] - prev); change > maxChange {
			maxChange = change
		}
	}
	return maxChange
}

// assign finds the nearest and second-nearest medoids of a non-medoid
// object. Ties keep the earlier cluster, so results do not depend on
// map iteration or input shuffling.
func (e *engine) assign(i int) {
	best, second := math.MaxFloat64, math.MaxFloat64
	bestCluster := 0
	for c, m := range e.medoids {
		d := e.calc(i, m)
		if d < best {
			second = best
			best = d
			bestCluster = c
		} else if d < second {
			second = d
		}
	}
	e.labels[i] = bestCluster
	e.dFirst[i] = best
	e.dSecond[i] = second
}

func (e *engine) nearestOtherMedoid(i, own int) float64 {
	nearest := math.MaxFloat64
	for c, m := range e.medoids {
		if c == own {
			continue
		}
		if d := e.calc(i, m); d < nearest {
			nearest = d
		}
	}
	return nearest
}

// totalDeviation is the sum of distances from every object to its
// nearest medoid, the quantity the swap search minimizes.
func (e *engine) totalDeviation() float64 {
	var sum float64
	for _, d := range e.dFirst {
		sum += d
	}
	return sum
}

// clusters materializes per-cluster member lists from labels. Members
// appear in ascending object order.
func (e *engine) clusters() [][]int {
	result := make([][]int, len(e.medoids))
	for c := range result {
		result[c] = []int{}
	}
	for i, c := range e.labels {
		result[c] = append(result[c], i)
	}
	return result
}
