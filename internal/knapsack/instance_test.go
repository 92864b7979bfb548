package knapsack

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInstance(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "instance.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadInstance(t *testing.T) {
	path := writeInstance(t, "4\n0 10 5\n1 40 4\n2 30 6\n3 50 3\n10\n")

	inst, err := LoadInstance(path)
	require.NoError(t, err)
	assert.Equal(t, 4, inst.ItemCount)
	assert.Equal(t, []int{10, 40, 30, 50}, inst.Values)
	assert.Equal(t, []int{5, 4, 6, 3}, inst.Weights)
	assert.Equal(t, 10, inst.Capacity)
}

func TestLoadInstanceNotFound(t *testing.T) {
	_, err := LoadInstance(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInstanceNotFound))
}

func TestParseInstanceTolerance(t *testing.T) {
	// Tabs, extra columns, trailing blank lines and a wrong header are accepted.
	inst, err := ParseInstance(strings.NewReader("9\n1\t7\t2\textra\n2 8 3\n6\n\n\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8}, inst.Values)
	assert.Equal(t, []int{2, 3}, inst.Weights)
	assert.Equal(t, 6, inst.Capacity)
	assert.Equal(t, 2, inst.ItemCount)
}

func TestParseInstanceMalformed(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"Empty", ""},
		{"HeaderOnly", "3\n"},
		{"NoItems", "0\n10\n"},
		{"ShortTriple", "1\n0 10\n10\n"},
		{"BadValue", "1\n0 ten 2\n10\n"},
		{"BadWeight", "1\n0 10 two\n10\n"},
		{"BadCapacity", "1\n0 10 2\nlots\n"},
		{"NegativeWeight", "1\n0 10 -2\n10\n"},
		{"BlankMiddleLine", "2\n0 1 1\n\n1 2 2\n10\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseInstance(strings.NewReader(tc.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedInstance), "got %v", err)
		})
	}
}

func TestDefaultInstance(t *testing.T) {
	inst := DefaultInstance()
	require.NoError(t, inst.Validate())
	assert.Equal(t, 5, inst.Len())
	assert.Equal(t, 10, inst.Capacity)
}
