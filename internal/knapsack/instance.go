package knapsack

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/logger"
	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/models"
)

// DefaultInstance is the five-item instance used when no file is given
func DefaultInstance() *models.Instance {
	return models.NewInstance(
		[]int{10, 20, 30, 40, 50},
		[]int{1, 2, 3, 4, 5},
		10,
	)
}

// LoadInstance reads an instance file. The format is:
//
//	<item count>
//	<index> <value> <weight>    one line per item
//	<capacity>
//
// The item count and index columns are informational only.
func LoadInstance(path string) (*models.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInstanceNotFound, path)
		}
		return nil, fmt.Errorf("failed to open instance %s: %w", path, err)
	}
	defer f.Close()

	inst, err := ParseInstance(f)
	if err != nil {
		return nil, fmt.Errorf("instance %s: %w", path, err)
	}
	return inst, nil
}

// ParseInstance parses the instance text format from r
func ParseInstance(r io.Reader) (*models.Instance, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read instance: %w", err)
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: need a header line and a capacity line, got %d lines", ErrMalformedInstance, len(lines))
	}

	header := lines[0]
	items := lines[1 : len(lines)-1]

	values := make([]int, 0, len(items))
	weights := make([]int, 0, len(items))
	for i, line := range items {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("%w: line %d: expected '<index> <value> <weight>', got %q", ErrMalformedInstance, i+2, line)
		}
		value, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad value %q", ErrMalformedInstance, i+2, fields[1])
		}
		weight, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad weight %q", ErrMalformedInstance, i+2, fields[2])
		}
		values = append(values, value)
		weights = append(weights, weight)
	}

	capLine := lines[len(lines)-1]
	capacity, err := strconv.Atoi(capLine)
	if err != nil {
		return nil, fmt.Errorf("%w: bad capacity %q", ErrMalformedInstance, capLine)
	}

	if declared, err := strconv.Atoi(header); err != nil || declared != len(values) {
		logger.Warn("instance header does not match item lines", "header", header, "items", len(values))
	}

	inst := models.NewInstance(values, weights, capacity)
	if err := inst.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInstance, err)
	}
	return inst, nil
}
