package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	SeedFile  string        `yaml:"seed_file" env:"KANBAN_SEED_FILE" env-default:""`
	LogFile   string        `yaml:"log_file" env:"KANBAN_LOG_FILE" env-default:""`
	LogLevel  string        `yaml:"log_level" env:"KANBAN_LOG_LEVEL" env-default:"info"`
	NoMouse   bool          `yaml:"no_mouse" env:"KANBAN_NO_MOUSE"`
	StatusTTL time.Duration `yaml:"status_ttl" env:"KANBAN_STATUS_TTL" env-default:"3s"`
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file is not an error: defaults and environment apply.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
			return cfg, nil
		} else if explicit {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/kanban/config.yaml, falling back to
// ~/.config/kanban/config.yaml.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "kanban", "config.yaml"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "kanban", "config.yaml"), nil
}
