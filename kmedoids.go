package kmedoids

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/mat"
)

// Default values for Config fields left at zero.
const (
	DefaultTolerance     = 0.001
	DefaultMaxIterations = 100
)

// Config controls K-Medoids clustering behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// InitialMedoids are the object indices seeding the medoid set. Their
	// count fixes k, the number of clusters. Required; RandomMedoids and
	// GreedyMedoids produce seeds when the caller has no preference.
	InitialMedoids []int

	// Tolerance is the convergence threshold on the maximum per-object
	// change of nearest-medoid distance between iterations. The run stops
	// once no improving swap exists and the change is within this bound.
	// Must be >= 0. 0 means default. Default: 0.001.
	Tolerance float64

	// MaxIterations bounds the number of assignment/swap passes. Reaching
	// it is not an error; the best result found so far is returned with
	// StatusMaxIterations. Must be >= 0. 0 means default. Default: 100.
	MaxIterations int

	// Metric is the dissimilarity used to compare points. Built-in:
	// SquaredEuclideanMetric, EuclideanMetric, ManhattanMetric,
	// ChebyshevMetric, MinkowskiMetric, CanberraMetric, ChiSquareMetric,
	// GowerMetric. Use MetricFunc to wrap a custom function. Ignored by
	// ClusterDistanceMatrix. Default: SquaredEuclideanMetric.
	Metric Metric

	// Logger, when set, receives a debug record per iteration (iteration
	// number, max distance change, swap decision, total deviation) and a
	// final one with the terminal status. Default: nil (no logging).
	Logger *slog.Logger
}

// Result contains the output of K-Medoids clustering.
type Result struct {
	// Clusters lists the member object indices of each cluster in
	// ascending order. Cluster order matches Medoids.
	Clusters [][]int

	// Medoids holds the final medoid object index of each cluster.
	Medoids []int

	// Labels assigns each object the index of its cluster in Clusters.
	Labels []int

	// TotalDeviation is the sum over all objects of the distance to their
	// assigned medoid under the configured metric.
	TotalDeviation float64

	// Iterations is the number of assignment/swap passes performed.
	Iterations int

	// Status reports how the run ended: StatusConverged or
	// StatusMaxIterations.
	Status Status
}

// Converged reports whether the run stopped because the medoid set
// stabilized rather than because the iteration budget ran out.
func (r *Result) Converged() bool { return r.Status == StatusConverged }

// DefaultConfig returns a Config with reasonable defaults.
// InitialMedoids is left empty and must be set by the caller.
func DefaultConfig() Config {
	return Config{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Metric:        SquaredEuclideanMetric{},
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Tolerance == 0 {
		cfg.Tolerance = DefaultTolerance
	}
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}
	if cfg.Metric == nil {
		cfg.Metric = SquaredEuclideanMetric{}
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if len(cfg.InitialMedoids) == 0 {
		return ErrNoInitialMedoids
	}
	if cfg.Tolerance < 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidTolerance, cfg.Tolerance)
	}
	if cfg.MaxIterations < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxIterations, cfg.MaxIterations)
	}
	return nil
}

// validateMedoids checks initial medoid indices against the dataset size.
func validateMedoids(medoids []int, n int) error {
	seen := make(map[int]bool, len(medoids))
	for _, m := range medoids {
		if m < 0 || m >= n {
			return fmt.Errorf("%w: index %d with %d objects", ErrMedoidOutOfRange, m, n)
		}
		if seen[m] {
			return fmt.Errorf("%w: index %d", ErrDuplicateMedoid, m)
		}
		seen[m] = true
	}
	return nil
}

// Cluster performs K-Medoids (PAM) clustering on the given points.
// Each element is a point (float64 slice); all points must have the same
// dimensionality. Distances are computed on demand with cfg.Metric.
// Returns an error if the config or data is invalid.
func Cluster(data [][]float64, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	n := len(data)
	if n == 0 {
		return nil, ErrEmptyDataset
	}
	dims := len(data[0])
	for i, row := range data {
		if len(row) != dims {
			return nil, fmt.Errorf("%w: row %d has %d dimensions, row 0 has %d",
				ErrDimensionMismatch, i, len(row), dims)
		}
	}
	if err := validateMedoids(cfg.InitialMedoids, n); err != nil {
		return nil, err
	}

	return run(newEngine(n, pointsCalculator(data, cfg.Metric), cfg.InitialMedoids), cfg), nil
}

// ClusterDistanceMatrix performs K-Medoids clustering on a precomputed
// distance matrix; dm.At(i, j) is the dissimilarity between objects i
// and j. The Config.Metric field is ignored since distances are already
// computed. See PairwiseDistances for building dm from points.
func ClusterDistanceMatrix(dm mat.Symmetric, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	if dm == nil {
		return nil, ErrEmptyDataset
	}
	n := dm.SymmetricDim()
	if n == 0 {
		return nil, ErrEmptyDataset
	}
	if err := validateMedoids(cfg.InitialMedoids, n); err != nil {
		return nil, err
	}

	return run(newEngine(n, matrixCalculator(dm), cfg.InitialMedoids), cfg), nil
}

// run drives the assignment/swap loop to a terminal status and
// materializes the Result.
func run(e *engine, cfg Config) *Result {
	status := transition(StatusInitializing, StatusIterating)

	iterations := 0
	for iterations < cfg.MaxIterations {
		maxChange := e.updateClusters()
		cost, swapped := e.swapMedoids()
		iterations++

		if cfg.Logger != nil {
			cfg.Logger.Debug("kmedoids iteration",
				slog.Int("iteration", iterations),
				slog.Float64("max_change", maxChange),
				slog.Bool("swapped", swapped),
				slog.Float64("swap_cost", cost),
				slog.Float64("total_deviation", e.totalDeviation()))
		}

		if !swapped && maxChange <= cfg.Tolerance {
			status = transition(status, StatusConverged)
			break
		}
	}
	if status != StatusConverged {
		status = transition(status, StatusMaxIterations)
	}

	// Assignments must reflect the final medoid set: the last pass may
	// have committed a swap after its assignment step.
	e.updateClusters()

	if cfg.Logger != nil {
		cfg.Logger.Debug("kmedoids done",
			slog.String("status", status.String()),
			slog.Int("iterations", iterations),
			slog.Float64("total_deviation", e.totalDeviation()))
	}

	return &Result{
		Clusters:       e.clusters(),
		Medoids:        append([]int(nil), e.medoids...),
		Labels:         append([]int(nil), e.labels...),
		TotalDeviation: e.totalDeviation(),
		Iterations:     iterations,
		Status:         status,
	}
}
