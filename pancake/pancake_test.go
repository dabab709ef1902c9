package pancake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ptsearch/domain"
)

func TestNew_BadSize(t *testing.T) {
	_, err := New(0)
	assert.ErrorIs(t, err, ErrBadSize)
}

func TestNew_BadDegradation(t *testing.T) {
	_, err := New(5, WithDegradation(-1))
	assert.ErrorIs(t, err, ErrInvalidDegradation)

	_, err = New(5, WithDegradation(0.3))
	assert.ErrorIs(t, err, ErrInvalidDegradation)
}

func TestGoalTest_Trivial(t *testing.T) {
	p, err := New(5)
	require.NoError(t, err)
	assert.True(t, p.GoalTest(p.Goal()))
	assert.Zero(t, p.Heuristic(p.Goal()))
}

func TestSuccessors_Count(t *testing.T) {
	p, err := New(5)
	require.NoError(t, err)
	succ := p.Successors(p.Goal())
	assert.Len(t, succ, 4)
	for _, sc := range succ {
		assert.Equal(t, 1, sc.Cost)
	}
}

func TestGoal_OneFlipAway(t *testing.T) {
	p, err := New(5)
	require.NoError(t, err)
	succ := p.Successors(p.Goal())
	foundNonGoal := false
	for _, sc := range succ {
		if !p.GoalTest(sc.State) {
			foundNonGoal = true
		}
	}
	assert.True(t, foundNonGoal)
}

func TestHeuristic_DegradationMonotonicity(t *testing.T) {
	p0, err := New(6)
	require.NoError(t, err)
	p2, err := New(6, WithDegradation(2))
	require.NoError(t, err)

	s, err := NewState([]int{2, 5, 0, 4, 1, 3})
	require.NoError(t, err)
	assert.LessOrEqual(t, p2.Heuristic(s), p0.Heuristic(s))
}

func TestSetDegradation(t *testing.T) {
	p, err := New(6)
	require.NoError(t, err)
	s, err := NewState([]int{2, 5, 0, 4, 1, 3})
	require.NoError(t, err)

	base := p.Heuristic(s)
	require.NoError(t, p.SetDegradation(2))
	assert.Equal(t, 2.0, p.Degradation())
	assert.LessOrEqual(t, p.Heuristic(s), base)

	assert.ErrorIs(t, p.SetDegradation(0.3), ErrInvalidDegradation)
}

func TestGap_TopNotMax(t *testing.T) {
	s, err := NewState([]int{0, 1, 2, 3, 4})
	require.NoError(t, err)
	// top (0) is not the max (4): always +1, no internal gaps since
	// consecutive ascending values never differ by >1.
	assert.Equal(t, 1, gap(s, 0))
}

// bfsDistances computes the true (optimal) flip count from start to every
// state reachable from it, by breadth-first search over Successors. Prefix
// reversal is its own inverse, so distances from the goal equal distances
// to the goal from any reachable state.
func bfsDistances(p *Pancakes, start State) map[State]int {
	dist := map[State]int{start: 0}
	queue := []State{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, sc := range p.Successors(cur) {
			if _, seen := dist[sc.State]; !seen {
				dist[sc.State] = dist[cur] + sc.Cost
				queue = append(queue, sc.State)
			}
		}
	}
	return dist
}

// TestHeuristic_Admissible is the non-degraded Gap admissibility property:
// the reported heuristic never overestimates the true flip count, checked
// against a brute-force BFS oracle over random instances.
func TestHeuristic_Admissible(t *testing.T) {
	p, err := New(6)
	require.NoError(t, err)

	dist := bfsDistances(p, p.Goal())

	rng := domain.DefaultRNG()
	instances := p.GenerateInstances(50, 1, 12, rng)
	for _, s := range instances {
		trueCost, ok := dist[s]
		require.True(t, ok, "generated instance not reachable in BFS oracle")
		assert.LessOrEqual(t, p.Heuristic(s), trueCost)
	}
}
