package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/glint/spinner"
	"github.com/raphi011/glint/styles"
)

// ThemeConfig holds theme-related configuration
type ThemeConfig struct {
	Name     string `toml:"name"`     // preset name: "default", "dracula", or "none"
	Nerdfont bool   `toml:"nerdfont"` // use nerdfont symbols instead of plain unicode
	Accent   string `toml:"accent"`   // per-color overrides (ANSI code or hex)
	Success  string `toml:"success"`
	Error    string `toml:"error"`
	Warning  string `toml:"warning"`
	Info     string `toml:"info"`
	Muted    string `toml:"muted"`
	Primary  string `toml:"primary"`
}

// SpinnerConfig holds spinner defaults
type SpinnerConfig struct {
	Frames     string `toml:"frames"`      // named frame set, see "glint frames"
	IntervalMs int    `toml:"interval_ms"` // milliseconds between frames (0 = frame set default)
}

// SelectConfig holds select prompt defaults
type SelectConfig struct {
	Hint    string `toml:"hint"`    // help line shown next to the message
	Warning string `toml:"warning"` // shown when submitting a disabled choice
}

// Config holds the glint configuration
type Config struct {
	Theme   ThemeConfig   `toml:"theme"`
	Spinner SpinnerConfig `toml:"spinner"`
	Select  SelectConfig  `toml:"select"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Theme: ThemeConfig{
			Name: "default",
		},
		Spinner: SpinnerConfig{
			Frames: spinner.DefaultFrames,
		},
	}
}

// Styles converts the theme section into a styles.ThemeConfig
func (c *Config) Styles() styles.ThemeConfig {
	return styles.ThemeConfig{
		Name:     c.Theme.Name,
		Nerdfont: c.Theme.Nerdfont,
		Accent:   c.Theme.Accent,
		Success:  c.Theme.Success,
		Error:    c.Theme.Error,
		Warning:  c.Theme.Warning,
		Info:     c.Theme.Info,
		Muted:    c.Theme.Muted,
		Primary:  c.Theme.Primary,
	}
}

// configPath returns the path to the config file.
// The GLINT_CONFIG environment variable overrides the default location.
func configPath() (string, error) {
	if p := os.Getenv("GLINT_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "glint", "config.toml"), nil
}

// Load reads config from ~/.config/glint/config.toml
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}
	return loadFrom(path)
}

func loadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	// Validate spinner.frames against the known frame sets
	if cfg.Spinner.Frames != "" {
		if _, ok := spinner.FrameSet(cfg.Spinner.Frames); !ok {
			return Default(), fmt.Errorf("invalid spinner.frames %q: see \"glint frames\" for valid names", cfg.Spinner.Frames)
		}
	}

	if cfg.Spinner.IntervalMs < 0 {
		return Default(), fmt.Errorf("invalid spinner.interval_ms %d: must not be negative", cfg.Spinner.IntervalMs)
	}

	// Use defaults for empty values
	if cfg.Spinner.Frames == "" {
		cfg.Spinner.Frames = spinner.DefaultFrames
	}
	if cfg.Theme.Name == "" {
		cfg.Theme.Name = "default"
	}

	return cfg, nil
}

const defaultConfig = `# glint configuration

# Theme - colors and symbols used by prompts and spinners
#
# [theme]
# name = "default"     # "default", "dracula", or "none" (disable colors)
# nerdfont = false     # use nerdfont glyphs for symbols
#
# Individual colors can be overridden with ANSI codes or hex values:
# accent = "212"
# success = "#50fa7b"

# Spinner defaults for "glint spin"
#
# [spinner]
# frames = "dot"       # named frame set, list with "glint frames"
# interval_ms = 80     # 0 uses the frame set's own speed

# Select prompt defaults for "glint select"
#
# [select]
# hint = "Use arrow keys, return to submit"
# warning = "This option is disabled"
`

// Init creates a default config file at ~/.config/glint/config.toml
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := configPath()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
