package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, Config{
		LogVerbosity:  0,
		CheckJobs:     4,
		WatchInterval: time.Second,
		Color:         true,
	}, cfg)
}

func TestOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"JSCST_LOG_VERBOSITY":  "2",
		"JSCST_LOG_FILE":       "/tmp/jscst.log",
		"JSCST_CHECK_JOBS":     "16",
		"JSCST_WATCH_INTERVAL": "250ms",
		"JSCST_COLOR":          "false",
		"CHECK_JOBS":           "1",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.LogVerbosity)
	assert.Equal(t, "/tmp/jscst.log", cfg.LogFile)
	assert.Equal(t, 16, cfg.CheckJobs)
	assert.Equal(t, 250*time.Millisecond, cfg.WatchInterval)
	assert.False(t, cfg.Color)
}

func TestInvalid(t *testing.T) {
	tests := map[string]map[string]string{
		"malformed number":   {"JSCST_CHECK_JOBS": "many"},
		"zero jobs":          {"JSCST_CHECK_JOBS": "0"},
		"malformed duration": {"JSCST_WATCH_INTERVAL": "soon"},
		"negative interval":  {"JSCST_WATCH_INTERVAL": "-1s"},
	}
	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFrom(vars)
			assert.Error(t, err)
		})
	}
}
