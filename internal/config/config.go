// Package config loads the engine configuration with layered sources:
// built-in defaults, an optional YAML file, then LEXREC_-prefixed
// environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/marchenko/lexrec/internal/engine"
)

// EnvPrefix namespaces the engine's environment variables,
// e.g. LEXREC_MAX_COUNT=30 overrides max_count.
const EnvPrefix = "LEXREC_"

// defaultPaths are searched in order when no explicit path is given.
var defaultPaths = []string{
	"lexrec.yaml",
	"lexrec.yml",
}

// Load builds the engine configuration. Precedence: env > file > defaults.
// An empty path falls back to the default search list; a missing file
// is not an error, but an unreadable or invalid one is.
func Load(path string) (engine.Config, error) {
	k := koanf.New(".")

	defaults := engine.DefaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return engine.Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return engine.Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return engine.Config{}, fmt.Errorf("load environment: %w", err)
	}

	cfg := defaults
	if err := k.Unmarshal("", &cfg); err != nil {
		return engine.Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	// Weights are not file-configurable; keep the defaults unless a
	// caller replaces them programmatically.
	cfg.Weights = defaults.Weights

	if err := cfg.Validate(); err != nil {
		return engine.Config{}, err
	}
	return cfg, nil
}

func findConfigFile() string {
	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
