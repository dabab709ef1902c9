package search

// State is the constraint every searchable domain's state type must
// satisfy: comparable (usable as a closed-map key, as dijkstra uses string
// vertex IDs) and able to render itself deterministically so the search
// loop can break f/h/g ties by state ordering, per §3's
// lexicographic-on-(f,h,g,state) node ordering.
type State interface {
	comparable
	String() string
}

// searchNode is the mutable record tracked per discovered state. f, h,
// inOpen, isValid and parent change over the node's life; state and g are
// effectively immutable after creation, since an improved path produces a
// brand new node rather than mutating g in place (mirrors §9's design
// note on SearchNode mutability).
type searchNode[S State] struct {
	f       priority
	h       int
	g       int
	state   S
	parent  *searchNode[S]
	inOpen  bool
	isValid bool

	index int // heap.Interface bookkeeping, set by openHeap.Swap/Push/Pop
}

// less implements the lexicographic (f, h, g, state) ordering from §3:
// smaller f first; ties broken toward smaller h (favoring larger g,
// i.e. closer to goal); remaining ties broken by state's deterministic
// string rendering for full determinism.
func (n *searchNode[S]) less(other *searchNode[S]) bool {
	if !n.f.equal(other.f) {
		return n.f.less(other.f)
	}
	if n.h != other.h {
		return n.h < other.h
	}
	if n.g != other.g {
		return n.g < other.g
	}
	return n.state.String() < other.state.String()
}
