package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPlainTrend(t *testing.T) {
	assert.Equal(t, RisingValue, GetPlainTrend(0.5))
	assert.Equal(t, RisingValue, GetPlainTrend(0.1))
	assert.Equal(t, FlatValue, GetPlainTrend(0.05))
	assert.Equal(t, FlatValue, GetPlainTrend(-0.05))
	assert.Equal(t, FallingValue, GetPlainTrend(-0.1))
	assert.Equal(t, FallingValue, GetPlainTrend(-0.8))
}

func TestGetColorTrendContainsLabel(t *testing.T) {
	assert.Contains(t, GetColorTrend(0.5), RisingValue)
	assert.Contains(t, GetColorTrend(0.0), FlatValue)
	assert.Contains(t, GetColorTrend(-0.5), FallingValue)
}

func TestGetCacheDBFilePath(t *testing.T) {
	path := GetCacheDBFilePath()
	assert.NotEmpty(t, path)
	assert.Contains(t, path, "covidstore")
}
