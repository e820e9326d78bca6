package kmedoids

import (
	"container/heap"
	"math"
	"sort"
)

// kdNode is one point of a KDTree. Child and parent links are indices
// into the tree's node arena, -1 when absent.
type kdNode struct {
	point  []float64
	index  int // position of the point in the build data
	disc   int // split dimension at this node's depth
	left   int
	right  int
	parent int
}

// KDTree is a static spatial index over a point set, answering nearest,
// k-nearest and radius queries in squared-Euclidean space. Nodes live in
// a flat arena and reference each other by index, so the structure
// contains no pointer cycles and frees in one step.
//
// The tree is built once over the full point set; it does not support
// insertion or removal. Query ties at equal distance resolve to the
// smaller point index.
type KDTree struct {
	nodes []kdNode
	root  int
	dims  int
}

// NewKDTree builds a balanced KD-tree over data. Point slices are
// referenced, not copied; the split dimension cycles with depth and the
// median point along it becomes the subtree root.
func NewKDTree(data [][]float64) *KDTree {
	t := &KDTree{root: -1}
	if len(data) == 0 {
		return t
	}
	t.dims = len(data[0])
	t.nodes = make([]kdNode, 0, len(data))

	order := make([]int, len(data))
	for i := range order {
		order[i] = i
	}
	t.root = t.build(data, order, 0, -1)
	return t
}

// build creates the subtree holding data[order] at the given depth and
// returns its arena index. Sorting by split value with the point index
// as tie-break keeps the layout independent of input order.
func (t *KDTree) build(data [][]float64, order []int, depth, parent int) int {
	if len(order) == 0 {
		return -1
	}
	disc := depth % t.dims
	sort.Slice(order, func(i, j int) bool {
		a, b := data[order[i]][disc], data[order[j]][disc]
		if a != b {
			return a < b
		}
		return order[i] < order[j]
	})
	mid := len(order) / 2

	id := len(t.nodes)
	t.nodes = append(t.nodes, kdNode{
		point:  data[order[mid]],
		index:  order[mid],
		disc:   disc,
		left:   -1,
		right:  -1,
		parent: parent,
	})
	left := t.build(data, order[:mid], depth+1, id)
	right := t.build(data, order[mid+1:], depth+1, id)
	t.nodes[id].left = left
	t.nodes[id].right = right
	return id
}

// Len returns the number of points in the tree.
func (t *KDTree) Len() int { return len(t.nodes) }

// Nearest returns the index of the point closest to query and the
// squared Euclidean distance to it. An empty tree yields (-1, +Inf).
func (t *KDTree) Nearest(query []float64) (int, float64) {
	best, bestDist := -1, math.Inf(1)
	t.nearest(t.root, query, &best, &bestDist)
	return best, bestDist
}

func (t *KDTree) nearest(id int, query []float64, best *int, bestDist *float64) {
	if id < 0 {
		return
	}
	node := &t.nodes[id]

	d := squaredEuclidean(query, node.point)
	if d < *bestDist || (d == *bestDist && node.index < *best) {
		*best, *bestDist = node.index, d
	}

	diff := query[node.disc] - node.point[node.disc]
	near, far := node.left, node.right
	if diff > 0 {
		near, far = node.right, node.left
	}
	t.nearest(near, query, best, bestDist)

	// The squared gap to the splitting plane bounds everything on the far
	// side from below; equality still needs a visit to honor index
	// tie-breaking.
	if diff*diff <= *bestDist {
		t.nearest(far, query, best, bestDist)
	}
}

// KNearest returns the indices of the k points closest to query and
// their squared Euclidean distances, ascending by distance with the
// point index as tie-break. Fewer results come back when the tree holds
// fewer than k points.
func (t *KDTree) KNearest(query []float64, k int) ([]int, []float64) {
	if k < 1 || t.root < 0 {
		return nil, nil
	}
	h := &knnHeap{}
	heap.Init(h)
	t.knnSearch(t.root, query, k, h)

	// Extract results sorted by distance (ascending).
	nResults := h.Len()
	indices := make([]int, nResults)
	distances := make([]float64, nResults)
	for i := nResults - 1; i >= 0; i-- {
		item := heap.Pop(h).(knnItem)
		indices[i] = item.index
		distances[i] = item.dist
	}
	return indices, distances
}

func (t *KDTree) knnSearch(id int, query []float64, k int, h *knnHeap) {
	if id < 0 {
		return
	}
	node := &t.nodes[id]

	d := squaredEuclidean(query, node.point)
	if h.Len() < k {
		heap.Push(h, knnItem{index: node.index, dist: d})
	} else if top := (*h)[0]; d < top.dist || (d == top.dist && node.index < top.index) {
		(*h)[0] = knnItem{index: node.index, dist: d}
		heap.Fix(h, 0)
	}

	diff := query[node.disc] - node.point[node.disc]
	near, far := node.left, node.right
	if diff > 0 {
		near, far = node.right, node.left
	}
	t.knnSearch(near, query, k, h)

	if h.Len() < k || diff*diff <= (*h)[0].dist {
		t.knnSearch(far, query, k, h)
	}
}

// InRadius returns the indices of all points whose Euclidean distance to
// query is at most radius, with their squared Euclidean distances,
// ascending by distance with the point index as tie-break.
func (t *KDTree) InRadius(query []float64, radius float64) ([]int, []float64) {
	if t.root < 0 || radius < 0 {
		return nil, nil
	}
	var items []knnItem
	t.radiusSearch(t.root, query, radius*radius, &items)

	sort.Slice(items, func(i, j int) bool {
		if items[i].dist != items[j].dist {
			return items[i].dist < items[j].dist
		}
		return items[i].index < items[j].index
	})
	indices := make([]int, len(items))
	distances := make([]float64, len(items))
	for i, item := range items {
		indices[i] = item.index
		distances[i] = item.dist
	}
	return indices, distances
}

func (t *KDTree) radiusSearch(id int, query []float64, r2 float64, items *[]knnItem) {
	if id < 0 {
		return
	}
	node := &t.nodes[id]

	if d := squaredEuclidean(query, node.point); d <= r2 {
		*items = append(*items, knnItem{index: node.index, dist: d})
	}

	diff := query[node.disc] - node.point[node.disc]
	near, far := node.left, node.right
	if diff > 0 {
		near, far = node.right, node.left
	}
	t.radiusSearch(near, query, r2, items)

	if diff*diff <= r2 {
		t.radiusSearch(far, query, r2, items)
	}
}

// --- max-heap for KNN queries ---

type knnItem struct {
	index int
	dist  float64
}

// knnHeap is a max-heap of knnItem (largest distance on top, index as
// tie-break) used as a bounded priority queue for KNN queries.
type knnHeap []knnItem

func (h knnHeap) Len() int { return len(h) }
func (h knnHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist > h[j].dist // max-heap
	}
	return h[i].index > h[j].index
}
func (h knnHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *knnHeap) Push(x interface{}) { *h = append(*h, x.(knnItem)) }
func (h *knnHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
