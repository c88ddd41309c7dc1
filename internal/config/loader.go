package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const t2048File = "t2048.yaml"

// Source names used by ResolveT2048 for non-file configs.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadT2048 loads the 2048 configuration.
// Search order: customPath -> ~/.arcade/configs/t2048.yaml -> ./configs/t2048.yaml -> embedded default
func LoadT2048(customPath string) (T2048Config, error) {
	cfg, _, err := ResolveT2048(customPath)
	return cfg, err
}

// ResolveT2048 is LoadT2048 that also reports where the config came from:
// a file path, SourceEmbedded or SourceBuiltin. Keys missing from a file keep
// their default values. The result is validated.
func ResolveT2048(customPath string) (T2048Config, string, error) {
	// A custom path is explicit, so failing to read it is an error
	if customPath != "" {
		cfg := DefaultT2048Config()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, customPath, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultT2048Config(), customPath, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Validate()
		return cfg, customPath, nil
	}

	candidates := []string{
		userConfigPath(t2048File),
		filepath.Join("configs", t2048File),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, ok := readYAML(path); ok {
			return cfg, path, nil
		}
	}

	cfg := DefaultT2048Config()
	if err := yaml.Unmarshal(defaultT2048YAML, &cfg); err != nil {
		return DefaultT2048Config(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	cfg.Validate()
	return cfg, SourceEmbedded, nil
}

// readYAML reads an optional config file. Missing or malformed files are skipped.
func readYAML(path string) (T2048Config, bool) {
	cfg := DefaultT2048Config()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	cfg.Validate()
	return cfg, true
}

// WriteT2048 saves cfg as YAML, creating parent directories.
func WriteT2048(path string, cfg T2048Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// UserConfigFile returns ~/.arcade/configs/t2048.yaml, or "" without a home directory.
func UserConfigFile() string {
	return userConfigPath(t2048File)
}

func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
