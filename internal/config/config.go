// Package config provides the typed engine configuration with layered
// loading: defaults, a config file (yaml or json), then environment
// variables. A watcher reloads the file at runtime.
package config

import (
	"fmt"
	"time"
)

// Environment is the deployment environment
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// Config is the full engine configuration.
type Config struct {
	Environment Environment `json:"environment" yaml:"environment"`
	Graph       Graph       `json:"graph" yaml:"graph"`
	Timeline    Timeline    `json:"timeline" yaml:"timeline"`
	Limits      Limits      `json:"limits" yaml:"limits"`
	Logging     Logging     `json:"logging" yaml:"logging"`

	// LoadedFrom tracks which sources contributed, for diagnostics
	LoadedFrom []string `json:"-" yaml:"-"`
}

// Graph controls node placement and edge styling in the graph view.
type Graph struct {
	// RowWidth is the number of nodes per placement row
	RowWidth   int `json:"rowWidth" yaml:"rowWidth"`
	CellWidth  int `json:"cellWidth" yaml:"cellWidth"`
	CellHeight int `json:"cellHeight" yaml:"cellHeight"`
	// StrongAbove / ModerateAbove are the confidence thresholds for edge
	// weight classes
	StrongAbove   int `json:"strongAbove" yaml:"strongAbove"`
	ModerateAbove int `json:"moderateAbove" yaml:"moderateAbove"`
}

// Timeline controls calendar-day bucketing.
type Timeline struct {
	// Zone is an IANA zone name; empty means UTC
	Zone string `json:"zone" yaml:"zone"`
}

// Limits holds content size limits.
type Limits struct {
	MaxTitleLength int `json:"maxTitleLength" yaml:"maxTitleLength"`
	MaxTagLength   int `json:"maxTagLength" yaml:"maxTagLength"`
	MaxTagsPerItem int `json:"maxTagsPerItem" yaml:"maxTagsPerItem"`
}

// Logging controls log output.
type Logging struct {
	Level string `json:"level" yaml:"level"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Environment: Development,
		Graph: Graph{
			RowWidth:      5,
			CellWidth:     250,
			CellHeight:    150,
			StrongAbove:   80,
			ModerateAbove: 40,
		},
		Timeline: Timeline{Zone: ""},
		Limits: Limits{
			MaxTitleLength: 255,
			MaxTagLength:   50,
			MaxTagsPerItem: 20,
		},
		Logging: Logging{Level: "info"},
	}
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Graph.RowWidth <= 0 {
		return fmt.Errorf("graph.rowWidth must be positive, got %d", c.Graph.RowWidth)
	}
	if c.Graph.CellWidth <= 0 || c.Graph.CellHeight <= 0 {
		return fmt.Errorf("graph cell dimensions must be positive, got %dx%d", c.Graph.CellWidth, c.Graph.CellHeight)
	}
	if c.Graph.StrongAbove < 0 || c.Graph.StrongAbove > 100 {
		return fmt.Errorf("graph.strongAbove must be in 0-100, got %d", c.Graph.StrongAbove)
	}
	if c.Graph.ModerateAbove < 0 || c.Graph.ModerateAbove > 100 {
		return fmt.Errorf("graph.moderateAbove must be in 0-100, got %d", c.Graph.ModerateAbove)
	}
	if c.Graph.ModerateAbove >= c.Graph.StrongAbove {
		return fmt.Errorf("graph.moderateAbove (%d) must be below graph.strongAbove (%d)", c.Graph.ModerateAbove, c.Graph.StrongAbove)
	}
	if c.Timeline.Zone != "" {
		if _, err := time.LoadLocation(c.Timeline.Zone); err != nil {
			return fmt.Errorf("timeline.zone %q: %w", c.Timeline.Zone, err)
		}
	}
	if c.Limits.MaxTitleLength <= 0 || c.Limits.MaxTagLength <= 0 || c.Limits.MaxTagsPerItem <= 0 {
		return fmt.Errorf("limits must be positive: %+v", c.Limits)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	return nil
}

// TimelineZone resolves the configured zone, UTC when unset. Validate has
// already checked the name.
func (c *Config) TimelineZone() *time.Location {
	if c.Timeline.Zone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timeline.Zone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsDevelopment reports whether the engine runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == Development
}
