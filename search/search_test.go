package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ptsearch/pancake"
	"github.com/katalvlaran/ptsearch/search"
	"github.com/katalvlaran/ptsearch/tilepuzzle"
)

const timeout = 5 * time.Second

// Scenario A: 3x3 tile trivial — start already at goal.
func TestAStar_TileTrivial(t *testing.T) {
	p, err := tilepuzzle.New(3, 3)
	require.NoError(t, err)
	start, err := tilepuzzle.NewState([]int{1, 2, 3, 4, 5, 6, 7, 8, 0})
	require.NoError(t, err)

	cost, _, stats, err := search.AStar[tilepuzzle.State](p, start, timeout)
	require.NoError(t, err)
	assert.Equal(t, 0, cost)
	assert.Equal(t, 0, stats.Expanded)
	assert.Equal(t, 1, stats.Generated)
}

// Scenario B: 3x3 tile one-move.
func TestAStar_TileOneMove(t *testing.T) {
	p, err := tilepuzzle.New(3, 3)
	require.NoError(t, err)
	start, err := tilepuzzle.NewState([]int{1, 2, 3, 4, 5, 6, 7, 0, 8})
	require.NoError(t, err)

	cost, _, _, err := search.AStar[tilepuzzle.State](p, start, timeout)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
}

// Scenario C: 3x3 tile classic.
func TestAStar_TileClassic(t *testing.T) {
	p, err := tilepuzzle.New(3, 3)
	require.NoError(t, err)
	start, err := tilepuzzle.NewState([]int{1, 2, 3, 4, 5, 6, 0, 7, 8})
	require.NoError(t, err)

	cost, _, astarStats, err := search.AStar[tilepuzzle.State](p, start, timeout)
	require.NoError(t, err)
	assert.Equal(t, 2, cost)

	// Scenario F: Potential Search within bound C=4 finds the same optimal
	// cost here and expands no more nodes than A* did.
	pcost, _, pstats, err := search.PotentialSearch[tilepuzzle.State](p, start, 4, false, timeout)
	require.NoError(t, err)
	assert.Less(t, pcost, 4)
	assert.Equal(t, 2, pcost)
	assert.LessOrEqual(t, pstats.Expanded, astarStats.Expanded)
}

// Scenario D: pancake trivial.
func TestAStar_PancakeTrivial(t *testing.T) {
	p, err := pancake.New(5)
	require.NoError(t, err)

	cost, _, _, err := search.AStar[pancake.State](p, p.Goal(), timeout)
	require.NoError(t, err)
	assert.Equal(t, 0, cost)
}

// Scenario E: pancake one flip.
func TestAStar_PancakeOneFlip(t *testing.T) {
	p, err := pancake.New(5)
	require.NoError(t, err)
	succ := p.Successors(p.Goal())
	require.NotEmpty(t, succ)
	var start pancake.State
	for _, s := range succ {
		if !p.GoalTest(s.State) {
			start = s.State
			break
		}
	}

	cost, _, _, err := search.AStar[pancake.State](p, start, timeout)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
}

// Property: Potential Search strictly respects its bound on success.
func TestPotentialSearch_BoundRespected(t *testing.T) {
	p, err := tilepuzzle.New(3, 3)
	require.NoError(t, err)
	start, err := tilepuzzle.NewState([]int{2, 3, 6, 1, 5, 0, 4, 7, 8})
	require.NoError(t, err)

	const bound = 12
	cost, _, _, err := search.PotentialSearch[tilepuzzle.State](p, start, bound, false, timeout)
	require.NoError(t, err)
	assert.Less(t, cost, bound)
}

// NoSolution: an unreachable bound forces the open set to empty out.
func TestPotentialSearch_NoSolution(t *testing.T) {
	p, err := tilepuzzle.New(3, 3)
	require.NoError(t, err)
	start, err := tilepuzzle.NewState([]int{1, 2, 3, 4, 5, 6, 0, 7, 8})
	require.NoError(t, err)

	_, _, _, err = search.PotentialSearch[tilepuzzle.State](p, start, 1, false, timeout)
	require.Error(t, err)
	assert.ErrorIs(t, err, search.ErrNoSolution)
}

// Timeout: a zero timeout fires immediately on a non-trivial instance.
func TestAStar_Timeout(t *testing.T) {
	p, err := tilepuzzle.New(4, 4)
	require.NoError(t, err)
	start := p.GenerateInstances(1, 60, 80, nil)[0]

	_, _, _, err = search.AStar[tilepuzzle.State](p, start, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, search.ErrTimeout)
}

// Determinism: two identical runs produce identical counters and cost.
func TestAStar_Deterministic(t *testing.T) {
	p, err := tilepuzzle.New(3, 3)
	require.NoError(t, err)
	start := p.GenerateInstances(1, 10, 15, nil)[0]

	cost1, _, stats1, err1 := search.AStar[tilepuzzle.State](p, start, timeout)
	cost2, _, stats2, err2 := search.AStar[tilepuzzle.State](p, start, timeout)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, cost1, cost2)
	assert.Equal(t, stats1, stats2)
}

// No double-count of expansion: expanded never exceeds generated.
func TestAStar_ExpandedNeverExceedsGenerated(t *testing.T) {
	p, err := tilepuzzle.New(3, 3)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		start := p.GenerateInstances(1, 5, 25, nil)[0]
		_, _, stats, err := search.AStar[tilepuzzle.State](p, start, timeout)
		if err != nil {
			continue
		}
		assert.LessOrEqual(t, stats.Expanded, stats.Generated)
	}
}
