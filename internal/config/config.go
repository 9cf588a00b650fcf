package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/tgienger/dgboard/internal/db"
)

type Config struct {
	DataDir string        `mapstructure:"data_dir"`
	DBFile  string        `mapstructure:"db_file"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type LoggingConfig struct {
	File        string `mapstructure:"file"`
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// Default returns the configuration used when no file overrides it
func Default() (*Config, error) {
	dataDir, err := db.DefaultDataDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		DataDir: dataDir,
		DBFile:  db.FileName,
		Logging: LoggingConfig{
			File:  filepath.Join(dataDir, "dgboard.log"),
			Level: "info",
		},
	}, nil
}

// Load reads the YAML config at path over the defaults. An empty path
// means the default location; a missing default file is not an error.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	// A relocated data dir moves the default log file with it
	if v.IsSet("data_dir") && !v.IsSet("logging.file") {
		cfg.Logging.File = filepath.Join(cfg.DataDir, "dgboard.log")
	}
	return cfg, nil
}

// DefaultPath is $XDG_CONFIG_HOME/dgboard/config.yaml
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "dgboard", "config.yaml")
}

// DBPath is the full path of the slot database
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, c.DBFile)
}
