package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5000, cfg.Feeds.TimeoutMS)
	assert.Equal(t, 47.6062, cfg.Weather.Latitude)
	assert.Equal(t, 6, cfg.Heuristics.MorningStart)
	assert.Equal(t, 9, cfg.Heuristics.MorningEnd)
	assert.Equal(t, 16, cfg.Heuristics.EveningStart)
	assert.Equal(t, 19, cfg.Heuristics.EveningEnd)
	assert.Equal(t, 4, cfg.Heuristics.DepartureCount)
	assert.Equal(t, "seattle-bainbridge", cfg.Watch.Route)
	assert.Equal(t, "auto", cfg.Watch.Direction)
	assert.Equal(t, 10, cfg.Watch.IntervalMinutes)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9999
feeds:
  timeoutMS: 1500
  disabled: true
heuristics:
  morningStart: 5
  morningEnd: 10
  departureCount: 6
watch:
  route: bremerton
  intervalMinutes: 3
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, 1500, cfg.Feeds.TimeoutMS)
	assert.True(t, cfg.Feeds.Disabled)
	assert.Equal(t, 5, cfg.Heuristics.MorningStart)
	assert.Equal(t, 10, cfg.Heuristics.MorningEnd)
	assert.Equal(t, 6, cfg.Heuristics.DepartureCount)
	// Untouched sections still default.
	assert.Equal(t, 16, cfg.Heuristics.EveningStart)
	assert.Equal(t, "bremerton", cfg.Watch.Route)
	assert.Equal(t, 3, cfg.Watch.IntervalMinutes)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"port out of range", "server:\n  port: 123456\n"},
		{"negative timeout", "feeds:\n  timeoutMS: -1\n"},
		{"bad feed url", "feeds:\n  baseURL: not-a-url\n"},
		{"latitude out of range", "weather:\n  latitude: 91\n"},
		{"empty morning window", "heuristics:\n  morningStart: 9\n  morningEnd: 9\n"},
		{"not yaml", "{{{{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			assert.Error(t, err)
		})
	}
}
