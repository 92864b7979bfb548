package utils

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"Empty", nil, 0},
		{"Single", []float64{4}, 4},
		{"Several", []float64{1, 2, 3, 4}, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mean(tt.values); got != tt.expected {
				t.Errorf("Mean(%v) = %f, expected %f", tt.values, got, tt.expected)
			}
		})
	}
}

func TestVarianceAndStdDev(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	if v := Variance(values); v != 4 {
		t.Errorf("Variance = %f, expected 4", v)
	}
	if s := StdDev(values); s != 2 {
		t.Errorf("StdDev = %f, expected 2", s)
	}
	if v := Variance(nil); v != 0 {
		t.Errorf("Variance(nil) = %f, expected 0", v)
	}
}

func TestSum(t *testing.T) {
	if s := Sum([]float64{1.5, 2.5, 3}); s != 7 {
		t.Errorf("Sum = %f, expected 7", s)
	}
}

func TestIntsToFloat64(t *testing.T) {
	out := IntsToFloat64([]int{-1, 0, 10})
	expected := []float64{-1, 0, 10}
	for i := range expected {
		if out[i] != expected[i] {
			t.Errorf("index %d: got %f, expected %f", i, out[i], expected[i])
		}
	}
}

func TestRound(t *testing.T) {
	if r := Round(math.Pi, 2); r != 3.14 {
		t.Errorf("Round(pi, 2) = %f, expected 3.14", r)
	}
}
