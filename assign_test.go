package kmedoids

import (
	"math"
	"reflect"
	"testing"
)

func pairEngine(medoids []int) *engine {
	data := pairData()
	return newEngine(len(data), pointsCalculator(data, SquaredEuclideanMetric{}), medoids)
}

func TestUpdateClustersAssignsNearestMedoid(t *testing.T) {
	e := pairEngine([]int{0, 2})

	maxChange := e.updateClusters()

	if !reflect.DeepEqual(e.labels, []int{0, 0, 1, 1}) {
		t.Errorf("labels: got %v, want [0 0 1 1]", e.labels)
	}
	if !reflect.DeepEqual(e.dFirst, []float64{0, 1, 0, 1}) {
		t.Errorf("dFirst: got %v, want [0 1 0 1]", e.dFirst)
	}
	if !reflect.DeepEqual(e.dSecond, []float64{200, 181, 200, 221}) {
		t.Errorf("dSecond: got %v, want [200 181 200 221]", e.dSecond)
	}
	// largest move off the zeroed cache is object 1 (or 3) at distance 1
	if maxChange != 1 {
		t.Errorf("maxChange: got %v, want 1", maxChange)
	}
}

func TestUpdateClustersMedoidCacheEntries(t *testing.T) {
	e := pairEngine([]int{0, 2})
	e.updateClusters()

	// a medoid is at distance 0 from itself; its second-nearest entry is
	// the nearest other medoid, which keeps swap costs exact
	if e.dFirst[0] != 0 || e.dFirst[2] != 0 {
		t.Errorf("medoid dFirst: got %v and %v, want 0 and 0", e.dFirst[0], e.dFirst[2])
	}
	if e.dSecond[0] != 200 || e.dSecond[2] != 200 {
		t.Errorf("medoid dSecond: got %v and %v, want 200 and 200", e.dSecond[0], e.dSecond[2])
	}
	if e.medoidAt[0] != 0 || e.medoidAt[2] != 1 {
		t.Errorf("medoidAt: got %v, want positions 0 and 1", e.medoidAt)
	}
	if e.medoidAt[1] != -1 || e.medoidAt[3] != -1 {
		t.Errorf("medoidAt: non-medoids should be -1, got %v", e.medoidAt)
	}
}

func TestUpdateClustersSecondPassSettles(t *testing.T) {
	e := pairEngine([]int{0, 2})
	e.updateClusters()

	if maxChange := e.updateClusters(); maxChange != 0 {
		t.Errorf("maxChange on settled assignment: got %v, want 0", maxChange)
	}
}

func TestUpdateClustersSingleMedoid(t *testing.T) {
	data := lineData()
	e := newEngine(len(data), pointsCalculator(data, SquaredEuclideanMetric{}), []int{4})
	e.updateClusters()

	if !reflect.DeepEqual(e.dFirst, []float64{100, 81, 64, 49, 0}) {
		t.Errorf("dFirst: got %v, want [100 81 64 49 0]", e.dFirst)
	}
	// with a single medoid there is no second-nearest
	for i, d := range e.dSecond {
		if d != math.MaxFloat64 {
			t.Errorf("dSecond[%d]: got %v, want MaxFloat64", i, d)
		}
	}
}

func TestUpdateClustersTieKeepsEarlierMedoid(t *testing.T) {
	data := [][]float64{{0}, {2}, {1}}
	e := newEngine(3, pointsCalculator(data, SquaredEuclideanMetric{}), []int{0, 1})
	e.updateClusters()

	if e.labels[2] != 0 {
		t.Errorf("labels[2]: got %d, want 0", e.labels[2])
	}
	if e.dFirst[2] != 1 || e.dSecond[2] != 1 {
		t.Errorf("object 2 distances: got %v and %v, want 1 and 1", e.dFirst[2], e.dSecond[2])
	}
}

func TestTotalDeviation(t *testing.T) {
	e := pairEngine([]int{0, 2})
	e.updateClusters()

	if dev := e.totalDeviation(); !almostEqual(dev, 2.0, floatTol) {
		t.Errorf("total deviation: got %v, want 2.0", dev)
	}
}

func TestClustersMaterialization(t *testing.T) {
	e := pairEngine([]int{0, 2})
	e.updateClusters()

	if got := e.clusters(); !reflect.DeepEqual(got, [][]int{{0, 1}, {2, 3}}) {
		t.Errorf("clusters: got %v, want [[0 1] [2 3]]", got)
	}
}

func TestNewEngineCopiesMedoids(t *testing.T) {
	seeds := []int{0, 1}
	data := pairData()
	e := newEngine(len(data), pointsCalculator(data, SquaredEuclideanMetric{}), seeds)

	e.medoids[0] = 3
	if seeds[0] != 0 {
		t.Errorf("engine shares the caller's medoid slice")
	}
}
