// Package conf handles the service configuration: defaults, config file
// loading through viper and validation.
package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/tphakala/vocalization-go/internal/errors"
)

// Settings contains all runtime configuration for the service.
type Settings struct {
	Debug bool // true to enable debug level logging

	BirdNET  BirdNETSettings  `mapstructure:"birdnet"`
	Models   ModelSettings    `mapstructure:"models"`
	Poller   PollerSettings   `mapstructure:"poller"`
	Output   OutputSettings   `mapstructure:"output"`
	Web      WebSettings      `mapstructure:"web"`
	Language string           `mapstructure:"language"` // display language for categories: en, nl, de
	Logging  LoggingSettings  `mapstructure:"logging"`
}

// BirdNETSettings locates the external BirdNET-Pi installation. The service
// only ever reads from these paths.
type BirdNETSettings struct {
	Dir    string `mapstructure:"dir"`    // BirdNET-Pi installation directory
	DBPath string `mapstructure:"dbpath"` // detections database, default <dir>/scripts/birds.db
}

// ModelSettings configures the per-species model directory and cache.
type ModelSettings struct {
	Dir       string `mapstructure:"dir"`       // directory with per-species .tflite models
	CacheSize int    `mapstructure:"cachesize"` // max models kept loaded, LRU evicted
}

// PollerSettings configures the detection polling loop.
type PollerSettings struct {
	Interval      int     `mapstructure:"interval"`      // seconds between polls
	BatchSize     int     `mapstructure:"batchsize"`     // max detections per batch
	MinConfidence float64 `mapstructure:"minconfidence"` // minimum confidence to store a result
}

// OutputSettings configures the service-owned data directory.
type OutputSettings struct {
	DataDir string `mapstructure:"datadir"` // directory for vocalization.db and logs
}

// WebSettings configures the reporting HTTP API.
type WebSettings struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"` // listen address, e.g. ":8090"
}

// LoggingSettings configures log output.
type LoggingSettings struct {
	Level string `mapstructure:"level"` // debug, info, warn, error
	File  bool   `mapstructure:"file"`  // also write JSON logs to <datadir>/service.log
}

// DatabasePath returns the path of the service-owned result store.
func (s *Settings) DatabasePath() string {
	return filepath.Join(s.Output.DataDir, "vocalization.db")
}

// BirdNETDBPath returns the path of the external detections database,
// defaulting to the conventional location under the BirdNET-Pi directory.
func (s *Settings) BirdNETDBPath() string {
	if s.BirdNET.DBPath != "" {
		return s.BirdNET.DBPath
	}
	return filepath.Join(s.BirdNET.Dir, "scripts", "birds.db")
}

// ExtractedDir returns the directory BirdNET-Pi extracts detection audio to.
func (s *Settings) ExtractedDir() string {
	return filepath.Join(s.BirdNET.Dir, "BirdSongs", "Extracted")
}

// ExtractedByDateDir returns the per-date extraction directory for a
// detection date in YYYY-MM-DD form.
func (s *Settings) ExtractedByDateDir(date string) string {
	return filepath.Join(s.ExtractedDir(), "By_Date", date)
}

// BirdSongsDir returns the root of all BirdNET-Pi recordings.
func (s *Settings) BirdSongsDir() string {
	return filepath.Join(s.BirdNET.Dir, "BirdSongs")
}

// Load reads configuration from the config file (if any) and environment,
// applying defaults for everything left unset. configPath may be empty, in
// which case the default search paths are used.
func Load(configPath string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("VOCALIZATION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		for _, dir := range configPaths() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.New(fmt.Errorf("reading config file: %w", err)).
				Component("conf").
				Category(errors.CategoryConfiguration).
				Context("config_path", configPath).
				Build()
		}
		// No config file is fine, defaults apply.
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, errors.New(fmt.Errorf("unmarshaling config: %w", err)).
			Component("conf").
			Category(errors.CategoryConfiguration).
			Build()
	}

	if err := Validate(settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// configPaths returns the directories searched for config.yaml, most
// specific first.
func configPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "vocalization-go"))
	}
	paths = append(paths, "/etc/vocalization-go")
	return paths
}
