// Package config loads the optional golisp/config.yaml configuration file
// described in SPEC_FULL.md's AMBIENT STACK: history path, color mode, and
// extra prelude files (the history path is decoded but not applied by any
// caller), parsed with goccy/go-yaml (a dependency the teacher
// only pulls in indirectly; here it gets a direct, load-bearing use) and
// discovered via adrg/xdg.ConfigFile, the same package the teacher's
// sibling pack repo (aretext) uses for locating per-user directories.
package config

import (
	"os"

	"github.com/adrg/xdg"
	"github.com/goccy/go-yaml"
)

// Config is the on-disk shape of golisp/config.yaml. Every field is optional;
// zero values mean "use the built-in default". HistoryPath is decoded but
// nothing reads it: the REPL always writes history to its own fixed path.
type Config struct {
	HistoryPath string   `yaml:"history_path"`
	NoColor     bool     `yaml:"no_color"`
	Prelude     []string `yaml:"prelude"`
}

// configRelPath is passed to xdg.ConfigFile, which resolves it against
// $XDG_CONFIG_HOME (or the platform equivalent) and creates any missing
// parent directories for a path the caller intends to write.
const configRelPath = "golisp/config.yaml"

// Load reads golisp/config.yaml from the user's config directory. A missing file
// is not an error: Load returns a zero-value Config, matching the history
// file's absence-is-not-an-error policy from spec.md §9.
func Load() (Config, error) {
	path, err := xdg.ConfigFile(configRelPath)
	if err != nil {
		return Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
