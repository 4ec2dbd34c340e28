package hac

// unionFind is a disjoint-set forest sized for a linkage over m leaves: it
// has 2*m - 1 slots so merged cluster ids (m, m+1, ...) can be roots.
type unionFind struct {
	parent []int
	size   []int
	// nextLabel is the id of the next merged cluster, starting at m.
	nextLabel int
}

func newUnionFind(m int) *unionFind {
	total := 2*m - 1
	if total < 1 {
		total = 1
	}
	parent := make([]int, total)
	size := make([]int, total)
	for i := range parent {
		parent[i] = -1 // -1 means "is a root"
	}
	for i := 0; i < m; i++ {
		size[i] = 1
	}
	return &unionFind{
		parent:    parent,
		size:      size,
		nextLabel: m,
	}
}

// find returns the root of the set containing x, with path compression.
func (uf *unionFind) find(x int) int {
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// merge joins two roots under the next cluster id and returns that id.
// Both arguments must be distinct roots.
func (uf *unionFind) merge(a, b int) int {
	id := uf.nextLabel
	uf.size[id] = uf.size[a] + uf.size[b]
	uf.parent[a] = id
	uf.parent[b] = id
	uf.nextLabel++
	return id
}
