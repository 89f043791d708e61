// Package config loads settings for the tweetsense binaries from defaults,
// an optional config file, a .env file and TWEETSENSE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config represents the complete application configuration
type Config struct {
	Corpus  CorpusConfig  `mapstructure:"corpus"`
	Model   ModelConfig   `mapstructure:"model"`
	Report  ReportConfig  `mapstructure:"report"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CorpusConfig holds the training corpus location and dialect
type CorpusConfig struct {
	Path           string `mapstructure:"path"`
	Delimiter      string `mapstructure:"delimiter"`
	HeaderSentinel string `mapstructure:"header_sentinel"`
}

// ModelConfig holds the trained model location
type ModelConfig struct {
	Path string `mapstructure:"path"`
}

// ReportConfig controls the training summary
type ReportConfig struct {
	SampleSize      int  `mapstructure:"sample_size"`
	SkipCommonWords bool `mapstructure:"skip_common_words"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// EnvFile is loaded into the environment before variables are read
var EnvFile = ".env"

// Load reads configuration. An empty path skips the config file.
func Load(path string) (*Config, error) {
	if err := gotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", EnvFile, err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("TWEETSENSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	v.SetDefault("corpus.path", "data/tweets.csv")
	v.SetDefault("corpus.delimiter", ",")
	v.SetDefault("corpus.header_sentinel", "tweet_text")

	v.SetDefault("model.path", "data/trained-model.json")

	v.SetDefault("report.sample_size", 10)
	v.SetDefault("report.skip_common_words", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	if c.Corpus.Path == "" {
		return fmt.Errorf("corpus.path is required")
	}
	if utf8.RuneCountInString(c.Corpus.Delimiter) != 1 {
		return fmt.Errorf("corpus.delimiter must be a single character")
	}
	if c.Corpus.Delimiter == `"` {
		return fmt.Errorf("corpus.delimiter must not be a quote")
	}
	if c.Model.Path == "" {
		return fmt.Errorf("model.path is required")
	}
	if c.Report.SampleSize < 0 {
		return fmt.Errorf("report.sample_size must not be negative")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}
	return nil
}

// DelimiterRune returns the corpus delimiter as a rune
func (c CorpusConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}
