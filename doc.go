// Package hac groups entities by how fast their cumulative counts decay,
// using single-linkage hierarchical agglomerative clustering.
//
// Each entity's cumulative time series (for example an epidemic death toll
// per region) is reduced to a two-dimensional decay point. Reading the
// series from the most recent day backwards, x is the number of days until
// the count first falls to 10% of its latest value, and y is the number of
// further days until it falls to 1%. Series that never fall that far, or
// whose latest value is zero, have no usable point and are left out.
//
// The usable points are then merged bottom-up by Euclidean distance. The
// result is a linkage in the usual scipy layout, ready for a dendrogram
// renderer: row i joins clusters Left and Right at Distance into a cluster
// of Size leaves, which gets id m+i.
//
// Basic usage:
//
//	s, err := hac.NewSeries("", "Italy", dates, counts, hac.DefaultDateLayout)
//	// ... one Series per entity
//	result, err := hac.Cluster(series, hac.DefaultConfig())
//	// result.Linkage[i] is the i-th merge
//	// result.Points.At(j) is leaf j
//	// result.Dropped lists series with no usable point
//
// Flat clusters can be read off a linkage with [CutDistance] or [CutCount].
//
// # Scale
//
// Every pairwise distance is materialized up front, so memory is O(m²) in
// the number of usable points and merging is O(m² log m). This is meant
// for dozens to a few hundred entities.
package hac
