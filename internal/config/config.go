// Package config loads and saves the viewer's startup preferences.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/zhubert/swatch/internal/errors"
	"github.com/zhubert/swatch/internal/palette"
	"github.com/zhubert/swatch/internal/viewer"
)

// Config holds the application configuration
type Config struct {
	Theme                string `json:"theme,omitempty"`                 // "light" or "dark"
	Layout               string `json:"layout,omitempty"`                // "grid" or "stacked"
	ShadeCount           int    `json:"shade_count,omitempty"`           // Shades shown per family, 1-11
	Color                string `json:"color,omitempty"`                 // Family selected at startup
	Shade                string `json:"shade,omitempty"`                 // Shade selected at startup
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notifications on copy and add

	mu       sync.RWMutex
	saveMu   sync.Mutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".swatch"), nil
}

// DefaultPath returns the path of the config file in the user's home directory.
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Default returns a config holding the built-in defaults, bound to path.
func Default(path string) *Config {
	opts := viewer.DefaultOptions()
	return &Config{
		Theme:      opts.Mode.String(),
		Layout:     opts.Layout.String(),
		ShadeCount: opts.ShadeCount,
		Color:      opts.Color,
		Shade:      opts.Shade,
		filePath:   path,
	}
}

// Load reads the config from the default path, or returns the defaults if
// no file exists yet.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, errors.ConfigLoadFailed("~/.swatch", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path, or returns the defaults if the file
// does not exist.
func LoadFrom(path string) (*Config, error) {
	cfg := Default(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	// Fill fields the file left out. Must run before Validate, which only reads.
	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureInitialized fills zero-valued fields with defaults.
//
// Thread-safety: only called from LoadFrom before the Config is shared.
func (c *Config) ensureInitialized() {
	opts := viewer.DefaultOptions()
	if c.Theme == "" {
		c.Theme = opts.Mode.String()
	}
	if c.Layout == "" {
		c.Layout = opts.Layout.String()
	}
	if c.ShadeCount == 0 {
		c.ShadeCount = opts.ShadeCount
	}
	if c.Color == "" {
		c.Color = opts.Color
	}
	if c.Shade == "" {
		c.Shade = opts.Shade
	}
}

// Validate checks that every field holds a value the viewer accepts.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := viewer.ParseMode(c.Theme); !ok {
		return errors.ConfigInvalid(fmt.Sprintf("unknown theme %q (want light or dark)", c.Theme))
	}
	if _, ok := viewer.ParseLayout(c.Layout); !ok {
		return errors.ConfigInvalid(fmt.Sprintf("unknown layout %q (want grid or stacked)", c.Layout))
	}
	if c.ShadeCount < viewer.MinShadeCount || c.ShadeCount > viewer.MaxShadeCount {
		return errors.ConfigInvalid(fmt.Sprintf("shade_count %d out of range %d-%d",
			c.ShadeCount, viewer.MinShadeCount, viewer.MaxShadeCount))
	}
	if !palette.Default().Has(c.Color) {
		return errors.ConfigInvalid(fmt.Sprintf("unknown color %q", c.Color))
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.saveMu.Lock()
	defer c.saveMu.Unlock()

	c.mu.RLock()
	data, err := json.MarshalIndent(c, "", "  ")
	path := c.filePath
	c.mu.RUnlock()
	if err != nil {
		return errors.ConfigSaveFailed(path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}

	// Write then rename so a crash never leaves a truncated file behind
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	return nil
}

// Path returns the file the config is read from and saved to.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// SetFilePath changes where Save writes the config.
func (c *Config) SetFilePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filePath = path
}

// GetTheme returns the theme mode name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the theme mode name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetLayout returns the layout name
func (c *Config) GetLayout() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Layout
}

// SetLayout sets the layout name
func (c *Config) SetLayout(layout string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Layout = layout
}

// GetShadeCount returns the shade-count limit
func (c *Config) GetShadeCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ShadeCount
}

// SetShadeCount sets the shade-count limit
func (c *Config) SetShadeCount(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ShadeCount = n
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// ViewerOptions converts the config into viewer startup options. Fields
// that fail to parse keep the viewer defaults.
func (c *Config) ViewerOptions() viewer.Options {
	c.mu.RLock()
	defer c.mu.RUnlock()

	opts := viewer.DefaultOptions()
	if mode, ok := viewer.ParseMode(c.Theme); ok {
		opts.Mode = mode
	}
	if layout, ok := viewer.ParseLayout(c.Layout); ok {
		opts.Layout = layout
	}
	if c.ShadeCount != 0 {
		opts.ShadeCount = c.ShadeCount
	}
	if c.Color != "" {
		opts.Color = c.Color
	}
	if c.Shade != "" {
		opts.Shade = c.Shade
	}
	return opts
}
