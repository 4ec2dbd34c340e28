package hac

import "container/heap"

type edgeItem struct {
	Edge
	index int // position in the heap, -1 once removed
}

// edgeHeap is a min-heap of edges ordered by (Dist, Lo, Hi). Items track
// their own position so they can be removed from the middle.
type edgeHeap []*edgeItem

func (h edgeHeap) Len() int           { return len(h) }
func (h edgeHeap) Less(i, j int) bool { return h[i].less(h[j].Edge) }
func (h edgeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *edgeHeap) Push(x interface{}) {
	it := x.(*edgeItem)
	it.index = len(*h)
	*h = append(*h, it)
}
func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]
	return it
}

// edgeQueue is the mutable edge collection of a linkage run. Every live edge
// is listed under both of its endpoints so a merge only touches the edges
// incident to the two merged clusters. Removed items stay in the incidence
// lists with index -1 and are skipped.
type edgeQueue struct {
	heap     edgeHeap
	incident map[int][]*edgeItem
}

func newEdgeQueue(edges []Edge) *edgeQueue {
	q := &edgeQueue{
		heap:     make(edgeHeap, len(edges)),
		incident: make(map[int][]*edgeItem),
	}
	for i, e := range edges {
		it := &edgeItem{Edge: e, index: i}
		q.heap[i] = it
		q.incident[e.Lo] = append(q.incident[e.Lo], it)
		q.incident[e.Hi] = append(q.incident[e.Hi], it)
	}
	heap.Init(&q.heap)
	return q
}

func (q *edgeQueue) Len() int { return q.heap.Len() }

// popMin removes and returns the smallest edge.
func (q *edgeQueue) popMin() Edge {
	return heap.Pop(&q.heap).(*edgeItem).Edge
}

// relabel rewrites every live edge touching a or b so that endpoint becomes
// c. Edges between a and b vanish. When several edges collapse onto the same
// (other, c) pair only the one with the smallest key survives.
func (q *edgeQueue) relabel(a, b, c int) {
	best := make(map[int]*edgeItem)
	for _, id := range [2]int{a, b} {
		for _, it := range q.incident[id] {
			if it.index < 0 {
				continue
			}
			heap.Remove(&q.heap, it.index)

			other := it.Lo
			if other == id {
				other = it.Hi
			}
			if other == a || other == b {
				continue
			}
			if cur, ok := best[other]; ok {
				if it.less(cur.Edge) {
					best[other] = it
				}
				continue
			}
			best[other] = it
		}
		delete(q.incident, id)
	}

	for other, it := range best {
		it.Lo, it.Hi = min(other, c), max(other, c)
		heap.Push(&q.heap, it)
		q.incident[c] = append(q.incident[c], it)
	}
}
