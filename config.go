package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed defaults.toml
var defaultConfig string

// WindowConfig describes the single window the program opens.
type WindowConfig struct {
	Title   string `toml:"title"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Visible bool   `toml:"visible"`
}

// ContextConfig holds the hints handed to the windowing library before the
// window is created.
type ContextConfig struct {
	Major             int  `toml:"major"`
	Minor             int  `toml:"minor"`
	CoreProfile       bool `toml:"core_profile"`
	ForwardCompatible bool `toml:"forward_compatible"`
	Samples           int  `toml:"samples"`
}

type RenderConfig struct {
	ClearColor mgl32.Vec4 `toml:"clear_color"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Context ContextConfig `toml:"context"`
	Render  RenderConfig  `toml:"render"`
	Log     LogConfig     `toml:"log"`
}

// LoadConfig decodes the defaults compiled into the binary.
func LoadConfig() (*Config, error) {
	return decodeConfig(defaultConfig)
}

func decodeConfig(data string) (*Config, error) {
	conf := &Config{}
	if _, err := toml.Decode(data, conf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Validate rejects values the fixed GLSL 330 shaders and the window cannot
// work with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Context.Major < 3 || (c.Context.Major == 3 && c.Context.Minor < 3) {
		return fmt.Errorf("%w: context version %d.%d is older than 3.3", ErrInvalidConfig, c.Context.Major, c.Context.Minor)
	}
	if c.Context.Samples < 0 {
		return fmt.Errorf("%w: negative sample count %d", ErrInvalidConfig, c.Context.Samples)
	}
	for i, v := range c.Render.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: clear color component %d out of range: %v", ErrInvalidConfig, i, v)
		}
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, l.Level)
}
