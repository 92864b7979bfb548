package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateExperimentID returns a random UUID identifying one experiment
func GenerateExperimentID() string {
	return uuid.New().String()
}

// GenerateRunID generates a run ID with a timestamp prefix
func GenerateRunID(experimentID string, run int) string {
	short := experimentID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("run-%s-%s-%03d", time.Now().Format("20060102-150405"), short, run)
}
