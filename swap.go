package kmedoids

// swapMedoids searches every (non-medoid candidate, medoid position) pair
// for the swap with the most negative estimated cost and commits it.
// It returns the committed cost and whether a swap happened; cost 0 and
// false mean no strictly improving swap exists.
//
// Candidates and positions are scanned in ascending order and only a
// strictly smaller cost replaces the current best, so the chosen swap is
// deterministic under ties.
func (e *engine) swapMedoids() (float64, bool) {
	bestCost := 0.0
	bestCandidate, bestCluster := -1, -1

	for candidate := 0; candidate < e.n; candidate++ {
		if e.medoidAt[candidate] >= 0 {
			continue
		}
		for cluster := range e.medoids {
			if cost := e.swapCost(candidate, cluster); cost < bestCost {
				bestCost = cost
				bestCandidate = candidate
				bestCluster = cluster
			}
		}
	}

	if bestCandidate < 0 {
		return 0, false
	}
	e.medoidAt[e.medoids[bestCluster]] = -1
	e.medoids[bestCluster] = bestCandidate
	e.medoidAt[bestCandidate] = bestCluster
	return bestCost, true
}

// swapCost estimates the change in total deviation if candidate replaced
// the medoid of cluster. Negative means the swap improves the solution.
//
// For each other object the term depends on where it sits: members of
// cluster either move to the candidate or fall back to their second
// nearest medoid, whichever is closer; objects outside the cluster are
// only affected when the candidate comes closer than their current
// medoid. The candidate itself stops paying its own nearest-medoid
// distance.
func (e *engine) swapCost(candidate, cluster int) float64 {
	var cost float64
	for i := 0; i < e.n; i++ {
		if i == candidate {
			continue
		}
		if e.labels[i] == cluster {
			cost += min(e.calc(i, candidate), e.dSecond[i]) - e.dFirst[i]
		} else if d := e.calc(i, candidate); d < e.dFirst[i] {
			cost += d - e.dFirst[i]
		}
	}
	return cost - e.dFirst[candidate]
}
