package hac

import "sort"

// Label converts minimum spanning tree edges into a single-linkage Linkage.
// mstEdges is [][3]float64 where each edge is [from, to, weight]; m is the
// number of leaves. Edges are merged in ascending weight order (stable for
// equal weights) and new cluster ids start at m.
//
// The merge heights of Label(PrimMST(...)) always equal those of Link over
// the same points. When no two MST edges share a weight the rows are
// identical too.
func Label(mstEdges [][3]float64, m int) Linkage {
	out := make(Linkage, 0, len(mstEdges))
	if len(mstEdges) == 0 {
		return out
	}

	sorted := make([][3]float64, len(mstEdges))
	copy(sorted, mstEdges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i][2] < sorted[j][2]
	})

	uf := newUnionFind(m)
	for _, edge := range sorted {
		aa := uf.find(int(edge[0]))
		bb := uf.find(int(edge[1]))
		out = append(out, Merge{
			Left:     min(aa, bb),
			Right:    max(aa, bb),
			Distance: edge[2],
			Size:     uf.size[aa] + uf.size[bb],
		})
		uf.merge(aa, bb)
	}
	return out
}
