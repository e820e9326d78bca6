// Package kmedoids implements K-Medoids clustering with the PAM
// (Partitioning Around Medoids) swap heuristic.
//
// K-Medoids partitions n objects into k clusters, each represented by an
// actual object (the medoid) rather than a synthetic centroid, minimizing
// the total dissimilarity of objects to their cluster's medoid.
// Each iteration reassigns every object to its nearest medoid and then
// applies the single medoid-for-non-medoid exchange that lowers the total
// cost the most, until no improving exchange remains.
//
// Basic usage:
//
//	cfg := kmedoids.DefaultConfig()
//	cfg.InitialMedoids = []int{3, 17, 42}
//	result, err := kmedoids.Cluster(data, cfg)
//	// result.Labels[i] is the cluster index for object i
//	// result.Medoids[c] is the object serving as medoid of cluster c
//	// result.TotalDeviation is the summed distance to assigned medoids
//
// For precomputed distance matrices:
//
//	result, err := kmedoids.ClusterDistanceMatrix(dm, cfg)
//
// # Choosing initial medoids
//
// PAM refines whatever seed it is given; seed quality affects the number
// of swap passes and which local optimum is reached. RandomMedoids draws
// a uniform seed, GreedyMedoids spreads seeds by dissimilarity-weighted
// sampling, and SearchK scans a range of cluster counts and scores each
// with the mean silhouette width:
//
//	seeds, err := kmedoids.GreedyMedoids(data, 3, nil, rng)
//	k, scores, err := kmedoids.SearchK(data, 2, 10, cfg, rng)
package kmedoids
