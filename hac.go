package hac

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

// ErrCrossCheck is returned when the merge heights of the linkage engine
// disagree with those derived from a minimum spanning tree.
var ErrCrossCheck = errors.New("hac: linkage heights disagree with spanning tree")

// Config controls a clustering run.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// CrossCheck recomputes the merge heights from a minimum spanning tree of
	// the distance matrix and fails the run if they differ from the engine's.
	// Costs an extra O(m²) pass. Default: false.
	CrossCheck bool

	// WarnPoints logs a warning when more points than this survive feature
	// extraction. The edge set is materialized in full, so memory grows as
	// O(m²). 0 disables the warning. Must be >= 0. Default: 1000.
	WarnPoints int

	// Logger receives debug records for dropped series and merges and an
	// info record per run. Default: discard.
	Logger *slog.Logger
}

// Result is the output of a clustering run.
type Result struct {
	// Points holds the usable feature points; leaf id i is Points.At(i).
	Points *PointSet

	// Dropped lists the labels of series without a usable feature point.
	// They appear nowhere in Linkage.
	Dropped []string

	// Linkage is the merge record, at most Points.Len()-1 rows.
	Linkage Linkage
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		WarnPoints: 1000,
		Logger:     slog.New(slog.DiscardHandler),
	}
}

func validateConfig(cfg *Config) error {
	if cfg.WarnPoints < 0 {
		return fmt.Errorf("hac: WarnPoints must be >= 0, got %d", cfg.WarnPoints)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
}

// Cluster runs the full pipeline: feature extraction, filtering, pairwise
// distances and single-linkage merging. It fails only on an invalid config
// or a failed cross-check.
func Cluster(series []Series, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	ps := BuildPointSet(series)
	for _, label := range ps.dropped {
		cfg.Logger.Debug("series dropped: no usable decay point", "series", label)
	}
	return clusterPoints(ps, cfg)
}

// ClusterPoints runs distance computation and merging over an existing
// PointSet.
func ClusterPoints(ps *PointSet, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return clusterPoints(ps, cfg)
}

func clusterPoints(ps *PointSet, cfg Config) (*Result, error) {
	m := ps.Len()
	if cfg.WarnPoints > 0 && m > cfg.WarnPoints {
		cfg.Logger.Warn("point count exceeds quadratic edge budget",
			"points", m, "edges", m*(m-1)/2, "warn_points", cfg.WarnPoints)
	}

	idx := NewDistanceIndex(ps)
	linkage := Link(idx)
	for i, mg := range linkage {
		cfg.Logger.Debug("merge",
			"cluster", m+i, "left", mg.Left, "right", mg.Right,
			"distance", mg.Distance, "size", mg.Size)
	}

	if cfg.CrossCheck {
		if err := crossCheck(idx, linkage); err != nil {
			return nil, err
		}
	}

	cfg.Logger.Info("clustering complete",
		"points", m, "dropped", len(ps.dropped), "merges", len(linkage))

	return &Result{
		Points:  ps,
		Dropped: ps.Dropped(),
		Linkage: linkage,
	}, nil
}

func crossCheck(idx *DistanceIndex, linkage Linkage) error {
	if err := Validate(linkage, idx.m); err != nil {
		return fmt.Errorf("%w: %w", ErrCrossCheck, err)
	}
	ref := Linkage{}
	if idx.m > 1 {
		ref = Label(PrimMST(idx.Matrix()), idx.m)
	}
	got, want := linkage.Heights(), ref.Heights()
	if !slices.Equal(got, want) {
		return fmt.Errorf("%w: got %v, want %v", ErrCrossCheck, got, want)
	}
	return nil
}
