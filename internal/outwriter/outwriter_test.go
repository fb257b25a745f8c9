package outwriter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/covidboard/covidstore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFormatters(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		value     float64
		expected  string
	}{
		{
			name:      "precision 2",
			precision: 2,
			value:     0.14159,
			expected:  "0.14",
		},
		{
			name:      "precision 0",
			precision: 0,
			value:     3.14159,
			expected:  "3",
		},
		{
			name:      "precision 4",
			precision: 4,
			value:     0.3333333,
			expected:  "0.3333",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fmtFloat, intFmt := createFormatters(tt.precision)
			assert.Equal(t, tt.expected, fmtFloat(tt.value))
			assert.Equal(t, "%d", intFmt)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, []string{"Italy", "US"}))

	var decoded []string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []string{"Italy", "US"}, decoded)
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "n/a", formatCount(nil))
	assert.Equal(t, "42", formatCount(schema.IntPtr(42)))
}

func TestFormatRate(t *testing.T) {
	fmtFloat, _ := createFormatters(2)
	assert.Equal(t, "n/a", formatRate(nil, fmtFloat))
	assert.Equal(t, "0.10", formatRate(schema.Float64Ptr(0.1), fmtFloat))
}

func TestCSVCount(t *testing.T) {
	// Absent counters become empty cells, not zeros
	assert.Equal(t, "", csvCount(nil))
	assert.Equal(t, "0", csvCount(schema.IntPtr(0)))
}

func TestTrendChange(t *testing.T) {
	tests := []struct {
		name     string
		prev     int
		cur      int
		expected float64
	}{
		{name: "no change", prev: 100, cur: 100, expected: 0},
		{name: "doubling", prev: 100, cur: 200, expected: 1},
		{name: "halving", prev: 100, cur: 50, expected: -0.5},
		{name: "from zero to cases", prev: 0, cur: 10, expected: 1},
		{name: "zero to zero", prev: 0, cur: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, trendChange(tt.prev, tt.cur), 1e-9)
		})
	}
}
