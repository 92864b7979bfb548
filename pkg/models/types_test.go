package models

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestInstanceValidate(t *testing.T) {
	tests := []struct {
		name    string
		inst    *Instance
		wantErr string
	}{
		{name: "valid", inst: NewInstance([]int{1, 2}, []int{3, 4}, 5)},
		{name: "no items", inst: NewInstance(nil, nil, 5), wantErr: "no items"},
		{name: "length mismatch", inst: &Instance{ItemCount: 2, Values: []int{1, 2}, Weights: []int{1}}, wantErr: "mismatch"},
		{name: "item count is informational", inst: &Instance{ItemCount: 3, Values: []int{1, 2}, Weights: []int{1, 1}}},
		{name: "item count unset", inst: &Instance{Values: []int{1, 2}, Weights: []int{1, 1}, Capacity: 2}},
		{name: "negative value", inst: NewInstance([]int{1, -2}, []int{1, 1}, 5), wantErr: "value cannot be negative"},
		{name: "negative weight", inst: NewInstance([]int{1, 2}, []int{-1, 1}, 5), wantErr: "weight cannot be negative"},
		{name: "negative capacity is allowed", inst: NewInstance([]int{1}, []int{1}, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.inst.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestInstanceTotals(t *testing.T) {
	inst := NewInstance([]int{10, 20, 30}, []int{1, 2, 3}, 4)
	if inst.Len() != 3 || inst.ItemCount != 3 {
		t.Errorf("Expected 3 items, got Len=%d ItemCount=%d", inst.Len(), inst.ItemCount)
	}
	if inst.TotalWeight() != 6 {
		t.Errorf("Expected total weight 6, got %d", inst.TotalWeight())
	}
}

func TestSolution(t *testing.T) {
	sol := Solution{1, 0, 1, 1}

	if got := sol.String(); got != "[1 0 1 1]" {
		t.Errorf("Expected [1 0 1 1], got %s", got)
	}
	if got := Solution(nil).String(); got != "none" {
		t.Errorf("Expected none for nil solution, got %s", got)
	}
	if got := sol.Selected(); !reflect.DeepEqual(got, []int{0, 2, 3}) {
		t.Errorf("Expected selected [0 2 3], got %v", got)
	}

	clone := sol.Clone()
	clone[0] = 0
	if sol[0] != 1 {
		t.Error("Clone must not share storage with the original")
	}
	if Solution(nil).Clone() != nil {
		t.Error("Clone of nil must stay nil")
	}
}

func TestSolutionJSON(t *testing.T) {
	data, err := json.Marshal(RunResult{Solution: Solution{1, 0}})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"solution":[1,0]`) {
		t.Errorf("Expected solution as a plain array, got %s", data)
	}
}

func TestNewExperimentResults(t *testing.T) {
	res := NewExperimentResults(AlgorithmRandomSearch, AlgorithmSAHC)

	if !reflect.DeepEqual(res.Algorithms, []string{AlgorithmRandomSearch, AlgorithmSAHC}) {
		t.Errorf("Unexpected algorithm order %v", res.Algorithms)
	}
	for _, name := range res.Algorithms {
		runs := res.Get(name)
		if runs == nil || len(runs) != 0 {
			t.Errorf("Expected empty non-nil runs for %s, got %v", name, runs)
		}
	}
	if res.Get("unknown") != nil {
		t.Error("Expected nil runs for an unknown algorithm")
	}
}

func TestRunResultFailed(t *testing.T) {
	if (RunResult{Status: RunStatusCompleted}).Failed() {
		t.Error("Completed run reported as failed")
	}
	if !(RunResult{Status: RunStatusFailed}).Failed() {
		t.Error("Failed run not reported as failed")
	}
}
