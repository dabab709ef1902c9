package experiment

import (
	"math"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// BoundMultiplier names one of the six cost-bound multipliers swept per
// instance/degradation pair, pairing a CSV label with the formula that
// derives the actual integer bound from an instance's true (A*-optimal)
// cost.
type BoundMultiplier struct {
	Label string
	Bound func(trueCost int) int
}

// defaultBoundMultipliers reproduces spec §6's six bounds exactly:
// true_cost+1, ceil(1.1x), ceil(1.25x), ceil(1.5x), ceil(1.75x), ceil(2x).
func defaultBoundMultipliers() []BoundMultiplier {
	ceilMul := func(factor float64) func(int) int {
		return func(trueCost int) int {
			return int(math.Ceil(factor * float64(trueCost)))
		}
	}
	return []BoundMultiplier{
		{Label: "1", Bound: func(trueCost int) int { return trueCost + 1 }},
		{Label: "1.1", Bound: ceilMul(1.1)},
		{Label: "1.25", Bound: ceilMul(1.25)},
		{Label: "1.5", Bound: ceilMul(1.5)},
		{Label: "1.75", Bound: ceilMul(1.75)},
		{Label: "2", Bound: ceilMul(2)},
	}
}

// Config carries the experiment defaults named in spec §6: pancake stack
// size, the degradation sweep, the bound multipliers, per-search timeouts,
// and the random-walk length range used to generate instances from the
// goal (recovered from original_source/experiments/pts_heu_comparison.py's
// generate_instances(1, 200, 300) call).
type Config struct {
	PancakeSize      int
	Degradations     []float64
	BoundMultipliers []BoundMultiplier
	InstancesPerRun  int
	BoundedTimeout   time.Duration
	AStarTimeout     time.Duration
	MinWalkOps       int
	MaxWalkOps       int
}

// DefaultConfig returns spec §6's experiment defaults.
func DefaultConfig() Config {
	return Config{
		PancakeSize:      14,
		Degradations:     []float64{0, 0.5, 1, 1.5, 2},
		BoundMultipliers: defaultBoundMultipliers(),
		InstancesPerRun:  100,
		BoundedTimeout:   300 * time.Second,
		AStarTimeout:     3600 * time.Second,
		MinWalkOps:       200,
		MaxWalkOps:       300,
	}
}

// LoadConfig reads overrides for the tunable scalar fields (pancake size,
// instances per run, bounded/A* timeouts, walk-length range) from a YAML,
// JSON or TOML file at path via viper, falling back to DefaultConfig for
// any key the file omits or for path == "". Degradations and
// BoundMultipliers are not file-configurable; they encode the spec's
// sweep exactly and are always taken from DefaultConfig.
//
// Grounded on the other_examples FromYaml pattern of constructing a fresh
// viper.New() per load (never the shared global viper instance) so
// repeated LoadConfig calls never leak state between experiment runs.
func LoadConfig(path string) (Config, error) {
	def := DefaultConfig()
	if path == "" {
		return def, nil
	}

	vp := viper.New()
	vp.SetConfigFile(path)
	vp.AddConfigPath(filepath.Dir(path))
	vp.SetDefault("pancake_size", def.PancakeSize)
	vp.SetDefault("instances_per_run", def.InstancesPerRun)
	vp.SetDefault("bounded_timeout_seconds", int(def.BoundedTimeout.Seconds()))
	vp.SetDefault("astar_timeout_seconds", int(def.AStarTimeout.Seconds()))
	vp.SetDefault("min_walk_ops", def.MinWalkOps)
	vp.SetDefault("max_walk_ops", def.MaxWalkOps)

	if err := vp.ReadInConfig(); err != nil {
		return Config{}, err
	}

	cfg := def
	cfg.PancakeSize = vp.GetInt("pancake_size")
	cfg.InstancesPerRun = vp.GetInt("instances_per_run")
	cfg.BoundedTimeout = time.Duration(vp.GetInt("bounded_timeout_seconds")) * time.Second
	cfg.AStarTimeout = time.Duration(vp.GetInt("astar_timeout_seconds")) * time.Second
	cfg.MinWalkOps = vp.GetInt("min_walk_ops")
	cfg.MaxWalkOps = vp.GetInt("max_walk_ops")
	return cfg, nil
}
