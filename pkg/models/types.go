package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Algorithm names used as keys in ExperimentResults
const (
	AlgorithmRandomSearch = "RandomSearch"
	AlgorithmSAHC         = "SAHC"
)

// NoFitness is the fitness reported when no feasible solution was found
const NoFitness = -1

// RunStatus represents the outcome of a single algorithm run
type RunStatus string

const (
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// Instance is a 0/1 knapsack problem instance. It is shared read-only by every run.
type Instance struct {
	// ItemCount is informational; Len is authoritative
	ItemCount int   `json:"item_count" yaml:"item_count"`
	Values    []int `json:"values" yaml:"values"`
	Weights   []int `json:"weights" yaml:"weights"`
	Capacity  int   `json:"capacity" yaml:"capacity"`
}

// NewInstance builds an instance from value and weight lists
func NewInstance(values, weights []int, capacity int) *Instance {
	return &Instance{
		ItemCount: len(values),
		Values:    values,
		Weights:   weights,
		Capacity:  capacity,
	}
}

// Len returns the number of items
func (in *Instance) Len() int {
	return len(in.Values)
}

// Validate checks the structural invariants of the instance
func (in *Instance) Validate() error {
	if len(in.Values) == 0 {
		return fmt.Errorf("instance has no items")
	}
	if len(in.Values) != len(in.Weights) {
		return fmt.Errorf("values/weights length mismatch: %d values, %d weights", len(in.Values), len(in.Weights))
	}
	for i := range in.Values {
		if in.Values[i] < 0 {
			return fmt.Errorf("item %d: value cannot be negative", i)
		}
		if in.Weights[i] < 0 {
			return fmt.Errorf("item %d: weight cannot be negative", i)
		}
	}
	return nil
}

// TotalWeight returns the weight of taking every item
func (in *Instance) TotalWeight() int {
	total := 0
	for _, w := range in.Weights {
		total += w
	}
	return total
}

// Solution is a bit vector, one entry per item; 1 means the item is packed.
// Bits are stored as ints so they encode as plain arrays in JSON and YAML.
type Solution []int

// Clone returns an independent copy; nil stays nil.
func (s Solution) Clone() Solution {
	if s == nil {
		return nil
	}
	out := make(Solution, len(s))
	copy(out, s)
	return out
}

// Selected returns the indices of packed items
func (s Solution) Selected() []int {
	idx := make([]int, 0, len(s))
	for i, bit := range s {
		if bit == 1 {
			idx = append(idx, i)
		}
	}
	return idx
}

func (s Solution) String() string {
	if s == nil {
		return "none"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, bit := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(bit))
	}
	b.WriteByte(']')
	return b.String()
}

// SearchStats counts the work an algorithm did during one run
type SearchStats struct {
	Evaluations   int64 `json:"evaluations" yaml:"evaluations"`
	Restarts      int64 `json:"restarts" yaml:"restarts"`
	ClimbSteps    int64 `json:"climb_steps" yaml:"climb_steps"`
	StartAttempts int64 `json:"start_attempts" yaml:"start_attempts"`
}

// RunResult is the outcome of one algorithm in one run
type RunResult struct {
	Run       int           `json:"run" yaml:"run"`
	Algorithm string        `json:"algorithm" yaml:"algorithm"`
	Status    RunStatus     `json:"status" yaml:"status"`
	Solution  Solution      `json:"solution" yaml:"solution"`
	Fitness   int           `json:"fitness" yaml:"fitness"`
	Weight    int           `json:"weight" yaml:"weight"`
	Elapsed   time.Duration `json:"elapsed_ns" yaml:"elapsed"`
	Stats     SearchStats   `json:"stats" yaml:"stats"`
	Error     string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the run ended with an error
func (r RunResult) Failed() bool {
	return r.Status == RunStatusFailed
}

// ExperimentResults maps algorithm name to its run results in run order
type ExperimentResults struct {
	Algorithms []string               `json:"algorithms" yaml:"algorithms"`
	Runs       map[string][]RunResult `json:"runs" yaml:"runs"`
}

// NewExperimentResults creates empty result sequences for the given algorithms
func NewExperimentResults(algorithms ...string) *ExperimentResults {
	res := &ExperimentResults{
		Algorithms: append([]string(nil), algorithms...),
		Runs:       make(map[string][]RunResult, len(algorithms)),
	}
	for _, name := range algorithms {
		res.Runs[name] = make([]RunResult, 0)
	}
	return res
}

// Get returns the run results recorded for an algorithm
func (r *ExperimentResults) Get(algorithm string) []RunResult {
	return r.Runs[algorithm]
}

// Aggregation represents aggregated statistics for a metric
type Aggregation struct {
	Count int64   `json:"count" yaml:"count"`
	Sum   float64 `json:"sum" yaml:"sum"`
	Min   float64 `json:"min" yaml:"min"`
	Max   float64 `json:"max" yaml:"max"`
	Mean  float64 `json:"mean" yaml:"mean"`
	P50   float64 `json:"p50" yaml:"p50"`
}

// AlgorithmSummary aggregates the runs of one algorithm
type AlgorithmSummary struct {
	Algorithm     string                  `json:"algorithm" yaml:"algorithm"`
	Runs          int                     `json:"runs" yaml:"runs"`
	FailedRuns    int                     `json:"failed_runs" yaml:"failed_runs"`
	BestFitness   int                     `json:"best_fitness" yaml:"best_fitness"`
	WorstFitness  int                     `json:"worst_fitness" yaml:"worst_fitness"`
	MeanFitness   float64                 `json:"mean_fitness" yaml:"mean_fitness"`
	StdDevFitness float64                 `json:"stddev_fitness" yaml:"stddev_fitness"`
	MeanElapsed   time.Duration           `json:"mean_elapsed_ns" yaml:"mean_elapsed"`
	BestSolution  Solution                `json:"best_solution" yaml:"best_solution"`
	Counters      map[string]*Aggregation `json:"counters,omitempty" yaml:"counters,omitempty"`
}
