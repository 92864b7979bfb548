package report

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/GoSim-25-26J-441/knapsack-heuristics/internal/experiment"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/config"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/models"
)

// ErrUnknownFormat is returned by Write for an unsupported output format.
var ErrUnknownFormat = errors.New("report: unknown output format")

// DefaultInstanceSource names the built-in instance in reports
const DefaultInstanceSource = "built-in"

// InstanceSummary describes the instance an experiment solved
type InstanceSummary struct {
	Source      string `json:"source" yaml:"source"`
	Items       int    `json:"items" yaml:"items"`
	Capacity    int    `json:"capacity" yaml:"capacity"`
	TotalWeight int    `json:"total_weight" yaml:"total_weight"`
}

// Settings echoes the parameters an experiment ran with
type Settings struct {
	Iterations        int   `json:"iterations" yaml:"iterations"`
	Runs              int   `json:"runs" yaml:"runs"`
	Seed              int64 `json:"seed" yaml:"seed"`
	Parallelism       int   `json:"parallelism" yaml:"parallelism"`
	MaxStartAttempts  int   `json:"max_start_attempts" yaml:"max_start_attempts"`
	NormalizeRestarts bool  `json:"normalize_restarts" yaml:"normalize_restarts"`
}

// Report is the presentation model of one finished experiment
type Report struct {
	ExperimentID  string                    `json:"experiment_id" yaml:"experiment_id"`
	GeneratedAt   time.Time                 `json:"generated_at" yaml:"generated_at"`
	Duration      time.Duration             `json:"duration_ns" yaml:"duration"`
	Instance      InstanceSummary           `json:"instance" yaml:"instance"`
	Settings      Settings                  `json:"settings" yaml:"settings"`
	System        *SystemInfo               `json:"system,omitempty" yaml:"system,omitempty"`
	CompletedRuns int                       `json:"completed_runs" yaml:"completed_runs"`
	FailedRuns    int                       `json:"failed_runs" yaml:"failed_runs"`
	Results       *models.ExperimentResults `json:"results" yaml:"results"`
	Summaries     []models.AlgorithmSummary `json:"summaries" yaml:"summaries"`
	Comparison    *experiment.Comparison    `json:"comparison,omitempty" yaml:"comparison,omitempty"`
}

// New builds a report from an experiment result. An empty source means the
// built-in instance; sys may be nil.
func New(res *experiment.ExperimentResult, inst *models.Instance, source string, cfg *config.ExperimentConfig, sys *SystemInfo) *Report {
	if source == "" {
		source = DefaultInstanceSource
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	return &Report{
		ExperimentID: res.ID,
		GeneratedAt:  res.StartedAt.Add(res.Duration),
		Duration:     res.Duration,
		Instance: InstanceSummary{
			Source:      source,
			Items:       inst.Len(),
			Capacity:    inst.Capacity,
			TotalWeight: inst.TotalWeight(),
		},
		Settings: Settings{
			Iterations:        res.Iterations,
			Runs:              res.NumRuns,
			Seed:              res.Seed,
			Parallelism:       cfg.Parallelism,
			MaxStartAttempts:  cfg.Search.MaxStartAttempts,
			NormalizeRestarts: cfg.Search.NormalizeRestarts,
		},
		System:        sys,
		CompletedRuns: res.CompletedRuns,
		FailedRuns:    res.FailedRuns,
		Results:       res.Results,
		Summaries:     res.Summaries,
		Comparison:    res.Comparison,
	}
}

// Write renders the report in the given format: text, json or yaml
func Write(w io.Writer, r *Report, format string, color bool) error {
	switch format {
	case config.OutputText, "":
		return WriteText(w, r, color)
	case config.OutputJSON:
		return WriteJSON(w, r)
	case config.OutputYAML:
		return WriteYAML(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
