package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/vocalization-go/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	settings, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/home/pi/BirdNET-Pi", settings.BirdNET.Dir)
	assert.Equal(t, DefaultModelCacheSize, settings.Models.CacheSize)
	assert.Equal(t, DefaultPollInterval, settings.Poller.Interval)
	assert.Equal(t, DefaultBatchSize, settings.Poller.BatchSize)
	assert.Equal(t, DefaultMinConfidence, settings.Poller.MinConfidence)
	assert.Equal(t, "en", settings.Language)
	assert.True(t, settings.Web.Enabled)
}

func TestLoadConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
birdnet:
  dir: /srv/birdnet-pi
models:
  dir: /srv/models
  cachesize: 3
poller:
  interval: 60
  minconfidence: 0.7
language: nl
web:
  enabled: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	settings, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/srv/birdnet-pi", settings.BirdNET.Dir)
	assert.Equal(t, "/srv/models", settings.Models.Dir)
	assert.Equal(t, 3, settings.Models.CacheSize)
	assert.Equal(t, 60, settings.Poller.Interval)
	assert.Equal(t, 0.7, settings.Poller.MinConfidence)
	assert.Equal(t, "nl", settings.Language)
	assert.False(t, settings.Web.Enabled)

	// Unset keys keep their defaults.
	assert.Equal(t, DefaultBatchSize, settings.Poller.BatchSize)
}

func TestLoadInvalidConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("models: [not a map"), 0o644))

	_, err := Load(configPath)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfiguration))
}

func TestValidateRejectsBadValues(t *testing.T) {
	base := func() *Settings {
		return &Settings{
			Models:   ModelSettings{CacheSize: 5},
			Poller:   PollerSettings{Interval: 30, BatchSize: 100, MinConfidence: 0.5},
			Output:   OutputSettings{DataDir: "/tmp/data"},
			Language: "en",
		}
	}

	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero cache size", func(s *Settings) { s.Models.CacheSize = 0 }},
		{"zero interval", func(s *Settings) { s.Poller.Interval = 0 }},
		{"zero batch size", func(s *Settings) { s.Poller.BatchSize = 0 }},
		{"negative confidence", func(s *Settings) { s.Poller.MinConfidence = -0.1 }},
		{"confidence above one", func(s *Settings) { s.Poller.MinConfidence = 1.1 }},
		{"empty data dir", func(s *Settings) { s.Output.DataDir = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base()
			tt.mutate(s)
			err := Validate(s)
			require.Error(t, err)
			assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
		})
	}

	require.NoError(t, Validate(base()))
}

func TestValidateNormalizesUnknownLanguage(t *testing.T) {
	s := &Settings{
		Models:   ModelSettings{CacheSize: 5},
		Poller:   PollerSettings{Interval: 30, BatchSize: 100, MinConfidence: 0.5},
		Output:   OutputSettings{DataDir: "/tmp/data"},
		Language: "fr",
	}
	require.NoError(t, Validate(s))
	assert.Equal(t, "en", s.Language)
}

func TestPathHelpers(t *testing.T) {
	s := &Settings{}
	s.BirdNET.Dir = "/home/pi/BirdNET-Pi"
	s.Output.DataDir = "/opt/vocalization-go/data"

	assert.Equal(t, "/opt/vocalization-go/data/vocalization.db", s.DatabasePath())
	assert.Equal(t, "/home/pi/BirdNET-Pi/scripts/birds.db", s.BirdNETDBPath())
	assert.Equal(t, "/home/pi/BirdNET-Pi/BirdSongs", s.BirdSongsDir())
	assert.Equal(t, "/home/pi/BirdNET-Pi/BirdSongs/Extracted", s.ExtractedDir())
	assert.Equal(t, "/home/pi/BirdNET-Pi/BirdSongs/Extracted/By_Date/2026-08-27",
		s.ExtractedByDateDir("2026-08-27"))

	// An explicit detections database path wins over the conventional one.
	s.BirdNET.DBPath = "/var/lib/birds.db"
	assert.Equal(t, "/var/lib/birds.db", s.BirdNETDBPath())
}
