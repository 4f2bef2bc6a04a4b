// Package config provides YAML-based runtime configuration for brawl.
//
// Physics and combat constants are not part of the configuration; they are
// fixed in the fight package.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Config is the full runtime configuration.
type Config struct {
	TickRate int             `yaml:"tick_rate"`
	Arena    ArenaConfig     `yaml:"arena"`
	Render   RenderConfig    `yaml:"render"`
	Fighters []FighterConfig `yaml:"fighters"`
	Log      LogConfig       `yaml:"log"`
	Storage  StorageConfig   `yaml:"storage"`
	SSH      SSHConfig       `yaml:"ssh"`

	// Source names where the configuration was loaded from.
	Source string `yaml:"-"`
}

// ArenaConfig is the arena size in pixels for headless matches.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RenderConfig maps arena pixels to terminal cells.
type RenderConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// FighterConfig is a default fighter setup.
type FighterConfig struct {
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// StorageConfig locates the roster database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// SSHConfig configures the spectator server.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// DefaultConfig returns the hard-coded configuration used when no YAML
// source can be read.
func DefaultConfig() Config {
	return Config{
		TickRate: 60,
		Arena: ArenaConfig{
			Width:  800,
			Height: 500,
		},
		Render: RenderConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Fighters: []FighterConfig{
			{Name: "Fighter 1"},
			{Name: "Fighter 2"},
		},
		Log: LogConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			Path: "~/.brawl/roster.db",
		},
		SSH: SSHConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
	}
}

// Normalize fills zero or invalid values from DefaultConfig so a partial
// YAML file still yields a usable configuration.
func (c *Config) Normalize() {
	def := DefaultConfig()

	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	if c.Arena.Width <= 0 {
		c.Arena.Width = def.Arena.Width
	}
	if c.Arena.Height <= 0 {
		c.Arena.Height = def.Arena.Height
	}
	if c.Render.CellWidth <= 0 {
		c.Render.CellWidth = def.Render.CellWidth
	}
	if c.Render.CellHeight <= 0 {
		c.Render.CellHeight = def.Render.CellHeight
	}
	for len(c.Fighters) < 2 {
		c.Fighters = append(c.Fighters, FighterConfig{})
	}
	c.Fighters = c.Fighters[:2]
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Storage.Path == "" {
		c.Storage.Path = def.Storage.Path
	}
	if c.SSH.Address == "" {
		c.SSH.Address = def.SSH.Address
	}
	if c.SSH.IdleTimeoutMinutes <= 0 {
		c.SSH.IdleTimeoutMinutes = def.SSH.IdleTimeoutMinutes
	}
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
