package hac

// Merge is one row of a linkage: clusters Left and Right (Left < Right)
// joined at Distance into a cluster of Size leaves. Ids below m are leaves;
// the cluster formed by row i has id m+i.
type Merge struct {
	Left     int
	Right    int
	Distance float64
	Size     int
}

// Linkage is the ordered merge record of a clustering run. It has at most
// m-1 rows.
type Linkage []Merge

// Rows returns the linkage in scipy format: [left, right, distance, size].
func (l Linkage) Rows() [][4]float64 {
	rows := make([][4]float64, len(l))
	for i, mg := range l {
		rows[i] = [4]float64{float64(mg.Left), float64(mg.Right), mg.Distance, float64(mg.Size)}
	}
	return rows
}

// Heights returns the merge distances in row order.
func (l Linkage) Heights() []float64 {
	h := make([]float64, len(l))
	for i, mg := range l {
		h[i] = mg.Distance
	}
	return h
}

// Link runs single-linkage agglomerative clustering over idx.
//
// The smallest remaining edge is always merged next. Edges are never
// recomputed, only relabelled onto the new cluster id, so the distance
// between two clusters is the minimum distance between their members.
// The run stops once a cluster holds all m leaves or no edges remain.
func Link(idx *DistanceIndex) Linkage {
	m := idx.m
	out := make(Linkage, 0, max(m-1, 0))
	if m < 2 {
		return out
	}

	size := func(id int) int {
		if id < m {
			return 1
		}
		return out[id-m].Size
	}

	q := newEdgeQueue(idx.edges)
	for q.Len() > 0 {
		e := q.popMin()
		out = append(out, Merge{
			Left:     e.Lo,
			Right:    e.Hi,
			Distance: e.Dist,
			Size:     size(e.Lo) + size(e.Hi),
		})
		if out[len(out)-1].Size == m {
			break
		}
		q.relabel(e.Lo, e.Hi, m+len(out)-1)
	}
	return out
}
