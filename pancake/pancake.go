package pancake

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/ptsearch/domain"
)

var _ domain.Domain[State] = (*Pancakes)(nil)

// Pancakes is a concrete domain.Domain[State] for the N-pancake
// prefix-reversal puzzle, goal (N-1, N-2, ..., 0).
type Pancakes struct {
	n           int
	goal        State
	degradation float64
}

// New constructs an N-pancake Pancakes domain (N must be positive,
// <= MaxPancakes) with any functional options applied on top of
// DefaultOptions.
func New(n int, opts ...Option) (*Pancakes, error) {
	if n <= 0 || n > MaxPancakes {
		return nil, ErrBadSize
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !validDegradation(o.Degradation) {
		return nil, ErrInvalidDegradation
	}

	goalValues := make([]int, n)
	for i := 0; i < n; i++ {
		goalValues[i] = n - 1 - i
	}
	goal, err := NewState(goalValues)
	if err != nil {
		return nil, err
	}

	return &Pancakes{n: n, goal: goal, degradation: o.Degradation}, nil
}

// Goal returns the domain's goal state.
func (p *Pancakes) Goal() State { return p.goal }

// Degradation returns the configured heuristic-degradation parameter.
func (p *Pancakes) Degradation() float64 { return p.degradation }

// SetDegradation replaces the domain's heuristic-degradation parameter,
// mirroring tilepuzzle.Puzzle.SetGoal's mutate-outside-a-solve contract:
// callers must not invoke SetDegradation while a search against this
// Pancakes value is in flight. Used by experiment.Runner to sweep the
// degradation values named in spec §6 against a single shared domain
// instance rather than reconstructing one per degradation.
func (p *Pancakes) SetDegradation(d float64) error {
	if !validDegradation(d) {
		return ErrInvalidDegradation
	}
	p.degradation = d
	return nil
}

// GoalTest implements domain.Domain[State].
func (p *Pancakes) GoalTest(s State) bool {
	return s.Stack == p.goal.Stack && s.N == p.goal.N
}

// Heuristic implements domain.Domain[State]: the (possibly degraded) Gap
// heuristic. See gap below for the degradation formula.
func (p *Pancakes) Heuristic(s State) int {
	return gap(s, p.degradation)
}

// Successors implements domain.Domain[State]: the N-1 prefix reversals,
// each of cost 1.
func (p *Pancakes) Successors(s State) []domain.Successor[State] {
	n := int(s.N)
	out := make([]domain.Successor[State], 0, n-1)
	for i := 0; i < n-1; i++ {
		next := s
		reverseSuffix(&next, i)
		out = append(out, domain.Successor[State]{State: next, Cost: 1})
	}
	return out
}

// reverseSuffix flips s.Stack[i:n] in place.
func reverseSuffix(s *State, i int) {
	n := int(s.N)
	for l, r := i, n-1; l < r; l, r = l+1, r-1 {
		s.Stack[l], s.Stack[r] = s.Stack[r], s.Stack[l]
	}
}

// GenerateInstances implements domain.Domain[State]: a random walk of
// uniformly-chosen length in [minOps, maxOps] from the goal.
func (p *Pancakes) GenerateInstances(n, minOps, maxOps int, rng *rand.Rand) []State {
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

// gap computes the (possibly degraded) Gap heuristic for s.
//
// Base rule (degradation 0): count indices i where |stack[i]-stack[i+1]|>1,
// plus 1 if the top element is not the largest value.
//
// Degradation d (a non-negative multiple of 0.5) relaxes the count: let
// k = floor(d). For integer d, a gap at (a,b) counts only if
// min(a,b) > k. For half-integer d, a gap counts if min(a,b) > k+1, or if
// min(a,b) == k+1 and max(a,b) > k+1 (i.e. the pair straddles the k+1
// tier rather than sitting flush on it) — this is the precise reading of
// "count gaps whose smaller adjacent value equals ceil(d) as well, but not
// gaps lying entirely below" adopted for this implementation; see
// DESIGN.md.
func gap(s State, d float64) int {
	n := int(s.N)
	k := int(math.Floor(d))
	half := (d - math.Floor(d)) >= 0.5-1e-9 && (d-math.Floor(d)) <= 0.5+1e-9

	count := 0
	for i := 0; i < n-1; i++ {
		a, b := int(s.Stack[i]), int(s.Stack[i+1])
		diff := a - b
		if diff < 0 {
			diff = -diff
		}
		if diff <= 1 {
			continue
		}
		mn, mx := a, b
		if mn > mx {
			mn, mx = mx, mn
		}
		var counted bool
		if half {
			counted = mn > k+1 || (mn == k+1 && mx > k+1)
		} else {
			counted = mn > k
		}
		if counted {
			count++
		}
	}
	if int(s.Stack[0]) != n-1 {
		count++
	}
	return count
}
