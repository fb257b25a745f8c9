package contract

import (
	"testing"
	"time"

	"github.com/covidboard/covidstore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		DataURL:      DefaultDataURL,
		CommitsURL:   DefaultCommitsURL,
		CacheBackend: string(schema.SQLiteBackend),
		CacheTTL:     DefaultCacheTTL,
		Output:       string(schema.TextOut),
		Limit:        DefaultResultLimit,
		Precision:    DefaultPrecision,
		Color:        "yes",
		Timeout:      DefaultTimeout,
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput()))

	assert.Equal(t, schema.SQLiteBackend, cfg.CacheBackend)
	assert.Equal(t, 6*time.Hour, cfg.CacheTTL)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.True(t, cfg.Color)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestProcessAndValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{"empty data url", func(in *ConfigRawInput) { in.DataURL = " " }},
		{"empty commits url", func(in *ConfigRawInput) { in.CommitsURL = "" }},
		{"bad backend", func(in *ConfigRawInput) { in.CacheBackend = "redis" }},
		{"mysql without conn str", func(in *ConfigRawInput) { in.CacheBackend = "mysql" }},
		{"bad ttl", func(in *ConfigRawInput) { in.CacheTTL = "soon" }},
		{"negative ttl", func(in *ConfigRawInput) { in.CacheTTL = "-1h" }},
		{"bad output", func(in *ConfigRawInput) { in.Output = "yaml" }},
		{"zero limit", func(in *ConfigRawInput) { in.Limit = 0 }},
		{"excessive limit", func(in *ConfigRawInput) { in.Limit = MaxResultLimit + 1 }},
		{"bad precision", func(in *ConfigRawInput) { in.Precision = 9 }},
		{"bad color", func(in *ConfigRawInput) { in.Color = "maybe" }},
		{"bad timeout", func(in *ConfigRawInput) { in.Timeout = "never" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)
			assert.Error(t, ProcessAndValidate(&Config{}, in))
		})
	}
}

func TestProcessAndValidateTrimsDataURL(t *testing.T) {
	cfg := &Config{}
	in := validInput()
	in.DataURL = "https://example.com/data/"
	require.NoError(t, ProcessAndValidate(cfg, in))
	assert.Equal(t, "https://example.com/data", cfg.DataURL)
}

func TestParseBoolFlag(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1", "on"} {
		v, err := ParseBoolFlag(s)
		require.NoError(t, err)
		assert.True(t, v)
	}
	for _, s := range []string{"no", "False", "0", "off"} {
		v, err := ParseBoolFlag(s)
		require.NoError(t, err)
		assert.False(t, v)
	}
	_, err := ParseBoolFlag("sometimes")
	assert.Error(t, err)
}
