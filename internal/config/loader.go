package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name looked up in the config directories.
const FileName = "asteroids.yaml"

// SourceEmbedded is reported by ResolveAsteroids when no file was found.
const SourceEmbedded = "embedded"

// LoadAsteroids loads the asteroids configuration.
// Search order: customPath -> ~/.arcade/configs/asteroids.yaml -> ./configs/asteroids.yaml -> embedded default
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	cfg, _, err := ResolveAsteroids(customPath)
	return cfg, err
}

// ResolveAsteroids loads the configuration like LoadAsteroids and also
// reports where it came from. Files are decoded on top of the defaults, so
// a file only needs the keys it changes.
func ResolveAsteroids(customPath string) (AsteroidsConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return AsteroidsConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return AsteroidsConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return AsteroidsConfig{}, "", fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data); err == nil && cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultAsteroidsYAML)
	if err != nil {
		return DefaultAsteroidsConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// decode unmarshals YAML on top of DefaultAsteroidsConfig.
func decode(data []byte) (AsteroidsConfig, error) {
	cfg := DefaultAsteroidsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AsteroidsConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
