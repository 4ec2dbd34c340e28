package hac

import "fmt"

// CutDistance assigns a flat cluster label to each of the m leaves by
// applying every merge whose distance is at most threshold. Labels are
// numbered from 0 in order of each cluster's first leaf.
func CutDistance(l Linkage, m int, threshold float64) ([]int, error) {
	if err := Validate(l, m); err != nil {
		return nil, err
	}
	n := 0
	for n < len(l) && l[n].Distance <= threshold {
		n++
	}
	return flatLabels(l[:n], m), nil
}

// CutCount assigns flat cluster labels so that k clusters remain. A linkage
// that stopped early leaves more than k clusters when k is smaller than the
// number of components it left.
func CutCount(l Linkage, m, k int) ([]int, error) {
	if k < 1 {
		return nil, fmt.Errorf("hac: cluster count must be >= 1, got %d", k)
	}
	if err := Validate(l, m); err != nil {
		return nil, err
	}
	n := min(max(m-k, 0), len(l))
	return flatLabels(l[:n], m), nil
}

func flatLabels(merges Linkage, m int) []int {
	uf := newUnionFind(m)
	for _, mg := range merges {
		uf.merge(mg.Left, mg.Right)
	}

	labels := make([]int, m)
	byRoot := make(map[int]int)
	for i := 0; i < m; i++ {
		root := uf.find(i)
		id, ok := byRoot[root]
		if !ok {
			id = len(byRoot)
			byRoot[root] = id
		}
		labels[i] = id
	}
	return labels
}
