package experiment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ptsearch/experiment"
)

func sampleRecords() []experiment.ResultRecord {
	return []experiment.ResultRecord{
		{InstanceID: 0, Degradation: 0, BoundLabel: "1", HCost: 3, HExpanded: 10, PCost: 3, PExpanded: 8},
		{InstanceID: 0, Degradation: 0, BoundLabel: "1.1", HCost: 3, HExpanded: 12, PCost: 3, PExpanded: 9},
		{InstanceID: 1, Degradation: 0, BoundLabel: "1", HCost: 5, HExpanded: 20, PCost: 5, PExpanded: 15},
	}
}

func TestCheckNoSolutions_Clean(t *testing.T) {
	assert.NoError(t, experiment.CheckNoSolutions(sampleRecords()))
}

func TestCheckNoSolutions_Flags(t *testing.T) {
	recs := sampleRecords()
	recs[0].HCost = experiment.SentinelNoSolution
	err := experiment.CheckNoSolutions(recs)
	require.Error(t, err)
	assert.ErrorIs(t, err, experiment.ErrUnexpectedNoSolution)
}

func TestDropTimeouts(t *testing.T) {
	recs := sampleRecords()
	recs[1].PCost = experiment.SentinelTimeout
	out := experiment.DropTimeouts(recs)
	assert.Len(t, out, 2)
}

func TestBreakdown(t *testing.T) {
	degradations, bounds, hTable, pTable := experiment.Breakdown(sampleRecords())
	assert.Equal(t, []float64{0}, degradations)
	assert.ElementsMatch(t, []string{"1", "1.1"}, bounds)

	cell := hTable["0"]["1"]
	assert.Equal(t, 2, cell.N)
	assert.InDelta(t, 15, cell.Mean, 1e-9)

	pcell := pTable["0"]["1"]
	assert.InDelta(t, 11.5, pcell.Mean, 1e-9)
}
