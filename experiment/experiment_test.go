package experiment_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ptsearch/experiment"
	"github.com/katalvlaran/ptsearch/pancake"
)

func TestInstancesCSV_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "instances.csv")

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, experiment.WriteInstanceHeader(f))
	require.NoError(t, experiment.AppendInstance(f, 0, "4 3 2 1 0", 7))
	require.NoError(t, experiment.AppendInstance(f, 1, "0 1 2 3 4", 0))
	require.NoError(t, f.Close())

	f, err = os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := experiment.ReadInstances(f)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, experiment.InstanceRecord{ID: 0, Stack: "4 3 2 1 0", Cost: 7}, records[0])
	assert.Equal(t, experiment.InstanceRecord{ID: 1, Stack: "0 1 2 3 4", Cost: 0}, records[1])
}

func TestResultsCSV_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.csv")

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, experiment.WriteResultsHeader(f))
	require.NoError(t, experiment.AppendResult(f, experiment.ResultRecord{
		InstanceID: 0, Degradation: 0.5, BoundLabel: "1.25",
		HCost: -1, HExpanded: 1000, PCost: 6, PExpanded: 42,
	}))
	require.NoError(t, f.Close())

	f, err = os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := experiment.ReadResults(f)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 0, records[0].InstanceID)
	assert.Equal(t, 0.5, records[0].Degradation)
	assert.Equal(t, "1.25", records[0].BoundLabel)
	assert.Equal(t, experiment.SentinelTimeout, records[0].HCost)
	assert.Equal(t, 6, records[0].PCost)
}

func TestStateCost_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "states.txt")

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, experiment.WriteStateCost(f, "4 3 2 1 0", 7))
	require.NoError(t, experiment.WriteStateCost(f, "0 1 2 3 4", 0))
	require.NoError(t, f.Close())

	f, err = os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := experiment.ReadStateCost(f)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, experiment.StateCostRecord{Stack: "4 3 2 1 0", Cost: 7}, records[0])
}

func TestDefaultConfig_MatchesSpec(t *testing.T) {
	cfg := experiment.DefaultConfig()
	assert.Equal(t, 14, cfg.PancakeSize)
	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2}, cfg.Degradations)
	require.Len(t, cfg.BoundMultipliers, 6)
	assert.Equal(t, 11, cfg.BoundMultipliers[0].Bound(10))
	assert.Equal(t, 20, cfg.BoundMultipliers[5].Bound(10))
}

func TestRunner_ProducesConsistentFiles(t *testing.T) {
	dir := t.TempDir()
	p, err := pancake.New(5)
	require.NoError(t, err)

	cfg := experiment.DefaultConfig()
	cfg.InstancesPerRun = 2
	cfg.MinWalkOps, cfg.MaxWalkOps = 2, 4
	cfg.AStarTimeout = 5_000_000_000
	cfg.BoundedTimeout = 5_000_000_000
	cfg.Degradations = []float64{0, 1}
	cfg.BoundMultipliers = cfg.BoundMultipliers[:2]

	runner := &experiment.Runner[pancake.State]{
		Domain:         p,
		SetDegradation: p.SetDegradation,
		Config:         cfg,
	}

	instancesPath := filepath.Join(dir, "instances.csv")
	resultsPath := filepath.Join(dir, "results.csv")
	require.NoError(t, runner.Run(instancesPath, resultsPath))

	f, err := os.Open(instancesPath)
	require.NoError(t, err)
	defer f.Close()
	instances, err := experiment.ReadInstances(f)
	require.NoError(t, err)
	assert.Len(t, instances, 2)

	rf, err := os.Open(resultsPath)
	require.NoError(t, err)
	defer rf.Close()
	results, err := experiment.ReadResults(rf)
	require.NoError(t, err)
	assert.Len(t, results, 2*2*2) // instances * degradations * bound multipliers
}
