package tilepuzzle

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/ptsearch/domain"
)

var _ domain.Domain[State] = (*Puzzle)(nil)

// Puzzle is a concrete domain.Domain[State] for the W*H sliding-tile
// puzzle. Construct with New; the zero value is not usable.
type Puzzle struct {
	width, height int
	n             int
	goal          State
	goalPos       [MaxCells]int // goalPos[tile] = row*width+col of tile in goal
	operatorOrder [4]Direction
	ignoreUpTo    int

	// applicableOps[blank] lists, in operatorOrder, the directions legal
	// from that blank position. Recomputed only when operatorOrder or
	// dimensions change (i.e. once, at construction).
	applicableOps [MaxCells][]Direction

	// hIncrement[tile][pos] is the Manhattan distance from pos to tile's
	// goal position. Recomputed whenever the goal changes.
	hIncrement [MaxCells][MaxCells]int
}

// New constructs a W*H Puzzle with the given width and height (both must be
// positive, width*height <= MaxCells) and any functional options applied on
// top of DefaultOptions(width*height).
func New(width, height int, opts ...Option) (*Puzzle, error) {
	if width <= 0 || height <= 0 || width*height > MaxCells {
		return nil, ErrBadDimensions
	}
	n := width * height
	o := DefaultOptions(n)
	for _, opt := range opts {
		opt(&o)
	}
	if o.IgnoreTilesUpTo < 0 {
		return nil, ErrBadIgnoreCount
	}
	if !isDirectionPermutation(o.OperatorOrder) {
		return nil, ErrBadOperatorOrder
	}

	p := &Puzzle{
		width:         width,
		height:        height,
		n:             n,
		operatorOrder: o.OperatorOrder,
		ignoreUpTo:    o.IgnoreTilesUpTo,
	}
	p.precomputeApplicableOps()
	if err := p.SetGoal(o.Goal); err != nil {
		return nil, err
	}
	return p, nil
}

func isDirectionPermutation(order [4]Direction) bool {
	var seen [4]bool
	for _, d := range order {
		if d < Left || d > Right || seen[d] {
			return false
		}
		seen[d] = true
	}
	return true
}

// precomputeApplicableOps fills applicableOps[blank] for every cell,
// following p.operatorOrder. Grounded on spec's applicability rule:
// up needs row>0, down needs row<H-1, left needs col>0, right needs col<W-1.
func (p *Puzzle) precomputeApplicableOps() {
	for cell := 0; cell < p.n; cell++ {
		row, col := cell/p.width, cell%p.width
		var ops []Direction
		for _, d := range p.operatorOrder {
			switch d {
			case Up:
				if row > 0 {
					ops = append(ops, d)
				}
			case Down:
				if row < p.height-1 {
					ops = append(ops, d)
				}
			case Left:
				if col > 0 {
					ops = append(ops, d)
				}
			case Right:
				if col < p.width-1 {
					ops = append(ops, d)
				}
			}
		}
		p.applicableOps[cell] = ops
	}
}

// SetGoal replaces the puzzle's goal and recomputes the Manhattan-distance
// increment table. Per the domain's shared-read-only-during-search
// contract, callers must not invoke SetGoal while a search against this
// Puzzle is in flight.
func (p *Puzzle) SetGoal(goal []int) error {
	s, err := NewState(goal)
	if err != nil {
		return err
	}
	if int(s.N) != p.n {
		return fmt.Errorf("%w: goal has %d tiles, puzzle has %d", ErrBadDimensions, s.N, p.n)
	}
	p.goal = s
	for cell := 0; cell < p.n; cell++ {
		tile := int(s.Cells[cell])
		p.goalPos[tile] = cell
	}
	for tile := 0; tile < p.n; tile++ {
		tr, tc := p.goalPos[tile]/p.width, p.goalPos[tile]%p.width
		for cell := 0; cell < p.n; cell++ {
			cr, cc := cell/p.width, cell%p.width
			p.hIncrement[tile][cell] = absInt(tr-cr) + absInt(tc-cc)
		}
	}
	return nil
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Goal returns the puzzle's current goal state.
func (p *Puzzle) Goal() State { return p.goal }

// Heuristic implements domain.Domain[State]: weighted Manhattan distance,
// skipping tiles whose value is <= IgnoreTilesUpTo (and always skipping the
// blank, tile 0).
func (p *Puzzle) Heuristic(s State) int {
	h := 0
	for cell := 0; cell < p.n; cell++ {
		tile := int(s.Cells[cell])
		if tile == 0 || tile <= p.ignoreUpTo {
			continue
		}
		h += p.hIncrement[tile][cell]
	}
	return h
}

// GoalTest implements domain.Domain[State].
func (p *Puzzle) GoalTest(s State) bool {
	return s.Cells == p.goal.Cells && s.N == p.goal.N
}

// Successors implements domain.Domain[State]: slides each applicable
// neighbor into the blank, in the puzzle's configured operator order. All
// operator costs are 1.
func (p *Puzzle) Successors(s State) []domain.Successor[State] {
	blank := int(s.Blank)
	ops := p.applicableOps[blank]
	out := make([]domain.Successor[State], 0, len(ops))
	for _, d := range ops {
		target := p.neighborCell(blank, d)
		next := s
		next.Cells[blank], next.Cells[target] = next.Cells[target], next.Cells[blank]
		next.Blank = uint8(target)
		out = append(out, domain.Successor[State]{State: next, Cost: 1})
	}
	return out
}

// GenerateInstances implements domain.Domain[State]: a random walk of
// uniformly-chosen length in [minOps, maxOps] from the goal, applying a
// randomly-picked applicable operator at each step.
func (p *Puzzle) GenerateInstances(n, minOps, maxOps int, rng *rand.Rand) []State {
	r := rng
	if r == nil {
		r = domain.DefaultRNG()
	}
	out := make([]State, 0, n)
	for i := 0; i < n; i++ {
		steps := domain.RandomWalkLength(minOps, maxOps, r)
		s := p.goal
		for step := 0; step < steps; step++ {
			succs := p.Successors(s)
			s = succs[r.Intn(len(succs))].State
		}
		out = append(out, s)
	}
	return out
}

// neighborCell returns the cell index reached by sliding in direction d
// from blank, i.e. the cell whose tile moves into the blank.
func (p *Puzzle) neighborCell(blank int, d Direction) int {
	switch d {
	case Up:
		return blank - p.width
	case Down:
		return blank + p.width
	case Left:
		return blank - 1
	case Right:
		return blank + 1
	default:
		panic("tilepuzzle: invalid direction")
	}
}

// Validate reports whether goal is a well-formed permutation of 0..N-1 for
// this puzzle's size, without mutating the puzzle.
func (p *Puzzle) Validate(goal []int) error {
	s, err := NewState(goal)
	if err != nil {
		return err
	}
	if int(s.N) != p.n {
		return fmt.Errorf("%w: goal has %d tiles, puzzle has %d", ErrBadDimensions, s.N, p.n)
	}
	return nil
}
