package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileLoader parses one configuration file format.
type FileLoader interface {
	Load(reader io.Reader, target interface{}) error
	Extensions() []string
}

// YAMLLoader parses yaml configuration files.
type YAMLLoader struct{}

func (YAMLLoader) Load(reader io.Reader, target interface{}) error {
	return yaml.NewDecoder(reader).Decode(target)
}

func (YAMLLoader) Extensions() []string { return []string{"yaml", "yml"} }

// JSONLoader parses json configuration files.
type JSONLoader struct{}

func (JSONLoader) Load(reader io.Reader, target interface{}) error {
	return json.NewDecoder(reader).Decode(target)
}

func (JSONLoader) Extensions() []string { return []string{"json"} }

// Load builds the configuration from layered sources, lowest to highest
// priority: defaults, the file at path (when non-empty), environment
// variables. The result is validated before it is returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.LoadedFrom = append(cfg.LoadedFrom, "defaults")

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
		cfg.LoadedFrom = append(cfg.LoadedFrom, path)
	}

	loadEnvironment(cfg)
	cfg.LoadedFrom = append(cfg.LoadedFrom, "environment")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	loader, err := loaderFor(path)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	if err := loader.Load(file, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func loaderFor(path string) (FileLoader, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	for _, l := range []FileLoader{YAMLLoader{}, JSONLoader{}} {
		for _, known := range l.Extensions() {
			if ext == known {
				return l, nil
			}
		}
	}
	return nil, fmt.Errorf("unsupported config format %q", ext)
}

// loadEnvironment overlays CANVAS_* environment variables, the highest
// priority source.
func loadEnvironment(cfg *Config) {
	if val := os.Getenv("CANVAS_ENV"); val != "" {
		cfg.Environment = Environment(val)
	}
	if val := os.Getenv("CANVAS_GRAPH_ROW_WIDTH"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Graph.RowWidth = n
		}
	}
	if val := os.Getenv("CANVAS_GRAPH_STRONG_ABOVE"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Graph.StrongAbove = n
		}
	}
	if val := os.Getenv("CANVAS_GRAPH_MODERATE_ABOVE"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Graph.ModerateAbove = n
		}
	}
	if val := os.Getenv("CANVAS_TIMELINE_ZONE"); val != "" {
		cfg.Timeline.Zone = val
	}
	if val := os.Getenv("CANVAS_LOG_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
}
