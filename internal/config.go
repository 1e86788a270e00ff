package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Synonyms maps field keys (e.g. "total_assets") to extra label
	// substrings. They extend the built-in keywords for that field; the
	// field priority order never changes.
	Synonyms map[string][]string `yaml:"synonyms,omitempty"`

	// Currency is the default currency code for amount formatting,
	// overridden by the --currency flag.
	Currency string `yaml:"currency,omitempty"`
}

// DefaultConfigPath returns the default config file path (~/.ratio-lens/config.yaml)
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ratio-lens", "config.yaml")
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Validate synonym keys against the known fields
	known := FieldKeys()
	for key := range cfg.Synonyms {
		if !slices.Contains(known, key) {
			return nil, fmt.Errorf("unknown field %q in synonyms (available: %v)", key, known)
		}
	}

	return &cfg, nil
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Matchers returns the built-in matchers extended with the configured
// synonyms. Synonyms are lower-cased, since matching is case-insensitive.
func (c *Config) Matchers() []FieldMatcher {
	matchers := DefaultMatchers()
	if c == nil || len(c.Synonyms) == 0 {
		return matchers
	}
	for i := range matchers {
		for _, syn := range c.Synonyms[matchers[i].Field] {
			matchers[i].Keywords = append(matchers[i].Keywords, strings.ToLower(syn))
		}
	}
	return matchers
}
