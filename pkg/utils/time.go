package utils

import (
	"strconv"
	"time"
)

// TimeToMs converts time.Duration to milliseconds
func TimeToMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// MeanDuration returns the average of the given durations, zero when empty
func MeanDuration(durations []time.Duration) time.Duration {
	if len(durations) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range durations {
		total += d
	}
	return total / time.Duration(len(durations))
}

// FormatDuration formats a duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d < time.Microsecond {
		return d.String()
	}
	if d < time.Millisecond {
		return d.Round(time.Microsecond).String()
	}
	if d < time.Second {
		return d.Round(10 * time.Microsecond).String()
	}
	if d < time.Minute {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(time.Second).String()
}

// FormatSeconds renders a duration as seconds with four decimals
func FormatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 4, 64) + " seconds"
}
