package hac

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Edge is a weighted pair of cluster ids with Lo < Hi.
type Edge struct {
	Dist   float64
	Lo, Hi int
}

// less orders edges by (Dist, Lo, Hi). The index tie-break makes the merge
// order reproducible when distances are equal.
func (e Edge) less(o Edge) bool {
	if e.Dist != o.Dist {
		return e.Dist < o.Dist
	}
	if e.Lo != o.Lo {
		return e.Lo < o.Lo
	}
	return e.Hi < o.Hi
}

// Euclidean returns the Euclidean distance between two points. The squared
// sum is exact in integer arithmetic, so pairs at the same true distance
// always get bit-identical results.
func Euclidean(a, b Point) float64 {
	dx := int64(a.X - b.X)
	dy := int64(a.Y - b.Y)
	return math.Sqrt(float64(dx*dx + dy*dy))
}

// DistanceIndex holds every pairwise distance of a PointSet as edges sorted
// by (Dist, Lo, Hi). It holds m*(m-1)/2 edges.
type DistanceIndex struct {
	m     int
	edges []Edge
}

// NewDistanceIndex computes the complete graph over ps.
func NewDistanceIndex(ps *PointSet) *DistanceIndex {
	m := ps.Len()
	edges := make([]Edge, 0, m*(m-1)/2)
	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			edges = append(edges, Edge{Dist: Euclidean(ps.points[i], ps.points[j]), Lo: i, Hi: j})
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].less(edges[j]) })
	return &DistanceIndex{m: m, edges: edges}
}

// Points returns m, the number of leaves.
func (d *DistanceIndex) Points() int { return d.m }

// Len returns the number of edges.
func (d *DistanceIndex) Len() int { return len(d.edges) }

// Edges returns a copy of the sorted edge list.
func (d *DistanceIndex) Edges() []Edge {
	out := make([]Edge, len(d.edges))
	copy(out, d.edges)
	return out
}

// Matrix returns the dense symmetric m×m distance matrix with a zero
// diagonal. Returns nil when there are no points.
func (d *DistanceIndex) Matrix() *mat.SymDense {
	if d.m == 0 {
		return nil
	}
	sym := mat.NewSymDense(d.m, nil)
	for _, e := range d.edges {
		sym.SetSym(e.Lo, e.Hi, e.Dist)
	}
	return sym
}
