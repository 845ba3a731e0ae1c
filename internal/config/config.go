package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the settings shared by every rrsched command. Command-line
// flags override whatever is loaded here.
type Config struct {
	LogLevel  string `mapstructure:"log_level"`  // debug, info, warn, error
	LogFormat string `mapstructure:"log_format"` // text, json
	Format    string `mapstructure:"format"`     // report format: text, json, yaml
	DBPath    string `mapstructure:"db_path"`    // run history database, empty disables recording
}

const (
	EnvPrefix        = "RRSCHED"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultFormat    = "text"
)

// Load reads configPath (YAML) if given, then applies RRSCHED_* environment
// overrides. A .env file in the working directory is loaded first when
// present.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_format", DefaultLogFormat)
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("db_path", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be 'text' or 'json'")
	}
	switch strings.ToLower(c.Format) {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("format must be 'text', 'json' or 'yaml'")
	}
	return nil
}
