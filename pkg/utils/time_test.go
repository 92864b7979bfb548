package utils

import (
	"testing"
	"time"
)

func TestTimeToMs(t *testing.T) {
	if ms := TimeToMs(1500 * time.Microsecond); ms != 1.5 {
		t.Errorf("TimeToMs = %f, expected 1.5", ms)
	}
}

func TestMeanDuration(t *testing.T) {
	if d := MeanDuration(nil); d != 0 {
		t.Errorf("MeanDuration(nil) = %v, expected 0", d)
	}

	d := MeanDuration([]time.Duration{time.Second, 3 * time.Second})
	if d != 2*time.Second {
		t.Errorf("MeanDuration = %v, expected 2s", d)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in       time.Duration
		expected string
	}{
		{500 * time.Nanosecond, "500ns"},
		{1234567 * time.Nanosecond, "1.23ms"},
		{1500 * time.Millisecond, "1.5s"},
		{90 * time.Second, "1m30s"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.expected {
			t.Errorf("FormatDuration(%v) = %s, expected %s", tt.in, got, tt.expected)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	if s := FormatSeconds(1234500 * time.Microsecond); s != "1.2345 seconds" {
		t.Errorf("FormatSeconds = %q", s)
	}
}
