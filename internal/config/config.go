package config

import (
	"carddeck/internal/util"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// FileEnv names the environment variable that points at the config file
const FileEnv = "CARDDECK_CONFIG_FILE"

// Config provides configuration for the card simulator
type Config struct {
	loaded bool

	Decks    int   `yaml:"decks" toml:"decks" envconfig:"decks"`
	Jokers   bool  `yaml:"jokers" toml:"jokers" envconfig:"jokers"`
	Hands    int   `yaml:"hands" toml:"hands" envconfig:"hands"`
	HandSize int   `yaml:"handSize" toml:"handSize" envconfig:"hand_size"`
	Rounds   int   `yaml:"rounds" toml:"rounds" envconfig:"rounds"`
	Seed     int64 `yaml:"seed" toml:"seed" envconfig:"seed"`
	Log      struct {
		Level  string `yaml:"level" toml:"level" envconfig:"level"`
		Format string `yaml:"format" toml:"format" envconfig:"format"`
	} `yaml:"log" toml:"log"`
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	cfg := Config{
		Decks:    1,
		Jokers:   false,
		Hands:    4,
		HandSize: 5,
		Rounds:   1,
	}

	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	return cfg
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration from the file named by CARDDECK_CONFIG_FILE (default config.yaml)
func Load() error {
	cfg, err := LoadFile(util.Getenv(FileEnv, "config.yaml"))
	if err != nil {
		return err
	}

	config = cfg
	return nil
}

// LoadFile loads the defaults, then the file, then the environment
// A missing file is not an error
func LoadFile(configFile string) (Config, error) {
	cfg := DefaultConfig()
	if err := decodeFile(configFile, &cfg); err != nil {
		return Config{}, err
	}

	if err := envconfig.Process("carddeck", &cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	cfg.loaded = true
	return cfg, nil
}

func decodeFile(configFile string, cfg *Config) error {
	if strings.ToLower(filepath.Ext(configFile)) == ".toml" {
		if _, err := toml.DecodeFile(configFile, cfg); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}

			return fmt.Errorf("error parsing %s: %w", configFile, err)
		}

		return nil
	}

	file, err := os.Open(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil && err != io.EOF {
		return fmt.Errorf("error parsing %s: %w", configFile, err)
	}

	return nil
}

// Validate returns an error if the configuration cannot build a table
func (c Config) Validate() error {
	if c.Decks < 1 {
		return fmt.Errorf("decks must be >= 1, got %d", c.Decks)
	}

	if c.Hands < 1 {
		return fmt.Errorf("hands must be >= 1, got %d", c.Hands)
	}

	if c.HandSize < 0 {
		return fmt.Errorf("handSize must be >= 0, got %d", c.HandSize)
	}

	if c.Rounds < 0 {
		return fmt.Errorf("rounds must be >= 0, got %d", c.Rounds)
	}

	return nil
}
