package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config.yaml"

// Load reads configuration from a YAML file and environment variables, then
// validates it. Priority: ENV > YAML > env-default tags.
//
// The file comes from CONFIG_PATH, falling back to ./config.yaml. A missing
// fallback file is fine (ENV + defaults only); a missing explicit file is not.
func Load() (*Config, error) {
	path, explicit := configPath()

	cfg, err := read(path, explicit)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

// Usage writes every environment variable the configuration reads, with its
// default, to w.
func Usage(w io.Writer) error {
	var cfg Config
	header := "Environment variables (override " + defaultPath + " or CONFIG_PATH):"
	text, err := cleanenv.GetDescription(&cfg, &header)
	if err != nil {
		return fmt.Errorf("config: describe: %w", err)
	}
	_, err = fmt.Fprintln(w, text)
	return err
}

func configPath() (string, bool) {
	if p := strings.TrimSpace(os.Getenv("CONFIG_PATH")); p != "" {
		return p, true
	}
	return defaultPath, false
}

func read(path string, explicit bool) (*Config, error) {
	var cfg Config

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}
	return &cfg, nil
}
