package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateExperimentID(t *testing.T) {
	id1 := GenerateExperimentID()
	id2 := GenerateExperimentID()

	if id1 == id2 {
		t.Error("GenerateExperimentID should return unique IDs")
	}
	if _, err := uuid.Parse(id1); err != nil {
		t.Errorf("GenerateExperimentID should return a UUID: %v", err)
	}
}

func TestGenerateRunID(t *testing.T) {
	id := GenerateRunID("0123456789abcdef", 7)

	if !strings.HasPrefix(id, "run-") {
		t.Errorf("GenerateRunID should start with 'run-': %s", id)
	}
	if !strings.HasSuffix(id, "-01234567-007") {
		t.Errorf("GenerateRunID should end with short experiment ID and run: %s", id)
	}
}
