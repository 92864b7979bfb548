package config

// Output formats understood by the report writer
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Defaults applied before a config file or flags are read
const (
	DefaultIterations       = 100
	DefaultRuns             = 10
	DefaultParallelism      = 1
	DefaultMaxStartAttempts = 10000
)

// ExperimentConfig represents the configuration of one benchmark experiment
type ExperimentConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Instance is the path of the problem file; empty selects the built-in instance
	Instance string `yaml:"instance"`

	Iterations  int   `yaml:"iterations"`
	Runs        int   `yaml:"runs"`
	Seed        int64 `yaml:"seed"` // 0 = time based
	Parallelism int   `yaml:"parallelism"`

	Search SearchConfig `yaml:"search"`

	Output string `yaml:"output"` // text, json or yaml
	Color  bool   `yaml:"color"`
}

// SearchConfig tunes the hill-climbing restarts
type SearchConfig struct {
	// MaxStartAttempts bounds the random sampling for a feasible starting point
	MaxStartAttempts int `yaml:"max_start_attempts"`
	// NormalizeRestarts runs exactly `iterations` restarts instead of iterations+1
	NormalizeRestarts bool `yaml:"normalize_restarts"`
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() *ExperimentConfig {
	return &ExperimentConfig{
		LogLevel:    "info",
		LogFormat:   "text",
		Iterations:  DefaultIterations,
		Runs:        DefaultRuns,
		Parallelism: DefaultParallelism,
		Search: SearchConfig{
			MaxStartAttempts: DefaultMaxStartAttempts,
		},
		Output: OutputText,
		Color:  true,
	}
}
