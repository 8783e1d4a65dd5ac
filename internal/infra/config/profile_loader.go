package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	"signal9.de/certext/internal/domain"
	"signal9.de/certext/internal/infra/crypto/extensions"
)

// YAMLProfileLoader implements the domain.ConfigLoader interface for
// YAML profile files.
type YAMLProfileLoader struct {
	names domain.ExtensionRegistry
}

// NewYAMLProfileLoader creates a new profile loader.
func NewYAMLProfileLoader() *YAMLProfileLoader {
	return &YAMLProfileLoader{
		names: extensions.NewRegistry(),
	}
}

// LoadProfile loads an extension profile from a YAML file.
func (l *YAMLProfileLoader) LoadProfile(path string) (*domain.ProfileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read profile: %w", err)
	}

	// Validate against JSON schema first
	if err := l.ValidateProfile(data); err != nil {
		return nil, fmt.Errorf("validation error: %s: %w", path, err)
	}

	var cfg domain.ProfileConfig
	// Use a decoder to get strict unmarshalling
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}

	// Manual validation: every extension name must resolve to a handler
	// so a typo fails at load time, not halfway through encoding.
	for name, entry := range cfg.Extensions {
		if _, ok := l.names.ByName(name); !ok {
			return nil, fmt.Errorf("%w: extensions.%s: unknown extension type", domain.ErrValidation, name)
		}
		if strings.TrimSpace(entry.Value) == "" {
			return nil, fmt.Errorf("%w: extensions.%s: value must not be empty", domain.ErrValidation, name)
		}
	}

	return &cfg, nil
}

// ValidateProfile validates profile data against the JSON schema.
func (l *YAMLProfileLoader) ValidateProfile(data []byte) error {
	return validateProfile(data)
}
