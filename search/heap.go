package search

// openHeap is the open set: a min-heap of *searchNode[S] ordered by the
// (f, h, g, state) tuple, grounded on lvlath's dijkstra.nodePQ — same
// heap.Interface shape, generalized from a scalar distance to the full
// SearchNode ordering.
type openHeap[S State] []*searchNode[S]

func (h openHeap[S]) Len() int { return len(h) }

func (h openHeap[S]) Less(i, j int) bool { return h[i].less(h[j]) }

func (h openHeap[S]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *openHeap[S]) Push(x any) {
	n := x.(*searchNode[S])
	n.index = len(*h)
	*h = append(*h, n)
}

func (h *openHeap[S]) Pop() any {
	old := *h
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	*h = old[:last]
	return n
}
