package hac

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// PrimMST computes a minimum spanning tree of the complete graph described
// by a symmetric distance matrix using Prim's algorithm.
// Returns m-1 edges as [][3]float64 where each edge is [from, to, weight],
// in the order nodes join the tree. Returns nil for fewer than two nodes.
func PrimMST(dist mat.Symmetric) [][3]float64 {
	if dist == nil {
		return nil
	}
	n, _ := dist.Dims()
	if n <= 1 {
		return nil
	}

	inTree := make([]bool, n)
	nearest := make([]float64, n)
	nearestFrom := make([]int, n)

	// Start from node 0: seed distances from its row.
	inTree[0] = true
	nearest[0] = math.Inf(1)
	for j := 1; j < n; j++ {
		nearest[j] = dist.At(0, j)
	}

	edges := make([][3]float64, 0, n-1)

	for i := 0; i < n-1; i++ {
		// Find the nearest node not yet in the tree.
		minDist := math.Inf(1)
		minNode := -1
		for j := 0; j < n; j++ {
			if !inTree[j] && (minNode == -1 || nearest[j] < minDist) {
				minDist = nearest[j]
				minNode = j
			}
		}

		edges = append(edges, [3]float64{
			float64(nearestFrom[minNode]),
			float64(minNode),
			minDist,
		})
		inTree[minNode] = true

		// Update distances for remaining non-tree nodes.
		for k := 0; k < n; k++ {
			if !inTree[k] {
				if d := dist.At(minNode, k); d < nearest[k] {
					nearest[k] = d
					nearestFrom[k] = minNode
				}
			}
		}
	}

	return edges
}
