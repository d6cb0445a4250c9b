// Package config loads process configuration for the engine from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Environment keys read by Load.
const (
	KeyWidth           = "GLUE_WIDTH"
	KeyHeight          = "GLUE_HEIGHT"
	KeyTitle           = "GLUE_TITLE"
	KeyVSync           = "GLUE_VSYNC"
	KeyTickRate        = "GLUE_TICK_RATE"
	KeyFrameLimit      = "GLUE_FRAME_LIMIT"
	KeyProfiling       = "GLUE_PROFILING"
	KeyLogLevel        = "GLUE_LOG_LEVEL"
	KeyMaxTextureUnits = "GLUE_MAX_TEXTURE_UNITS"
)

// Configuration is the root configuration, split per subsystem.
type Configuration struct {
	Window   WindowConfiguration
	Engine   EngineConfiguration
	Renderer RendererConfiguration
	Log      LogConfiguration
}

// WindowConfiguration configures the window the engine creates
type WindowConfiguration struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}

// EngineConfiguration configures the frame driver
type EngineConfiguration struct {
	// TickRate is the game logic rate in ticks per second
	TickRate float64
	// FrameLimit caps rendered frames per second. To unlimit, set to 0
	FrameLimit float64
	Profiling  bool
}

// RendererConfiguration configures the render context
type RendererConfiguration struct {
	// MaxTextureUnits caps the texture slots used. 0 uses everything the backend reports
	MaxTextureUnits int
}

// LogConfiguration configures the standard logger
type LogConfiguration struct {
	Level log.Level
}

// Default returns the configuration used when no environment value is set.
//
// Returns:
//   - Configuration: the defaults
func Default() Configuration {
	return Configuration{
		Window: WindowConfiguration{
			Title:  "glue",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Engine: EngineConfiguration{
			TickRate: 60,
		},
		Log: LogConfiguration{
			Level: log.InfoLevel,
		},
	}
}

// Load reads the given .env files (".env" when none are named) into the process environment
// without overriding variables that are already set, then builds a Configuration from the
// GLUE_* variables on top of Default. Missing files are ignored.
//
// Parameters:
//   - files: .env files to load, in priority order
//
// Returns:
//   - Configuration: the loaded configuration
//   - error: an error if a file cannot be parsed or a value is malformed
func Load(files ...string) (Configuration, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Configuration{}, fmt.Errorf("config: failed to load %s: %w", file, err)
		}
	}
	envy.Reload()
	return FromEnv()
}

// FromEnv builds a Configuration from the GLUE_* variables currently visible to envy.
//
// Returns:
//   - Configuration: the configuration
//   - error: an error naming the first malformed variable
func FromEnv() (Configuration, error) {
	cfg := Default()
	r := &reader{}

	cfg.Window.Title = envy.Get(KeyTitle, cfg.Window.Title)
	cfg.Window.Width = r.int(KeyWidth, cfg.Window.Width)
	cfg.Window.Height = r.int(KeyHeight, cfg.Window.Height)
	cfg.Window.VSync = r.bool(KeyVSync, cfg.Window.VSync)

	cfg.Engine.TickRate = r.float(KeyTickRate, cfg.Engine.TickRate)
	cfg.Engine.FrameLimit = r.float(KeyFrameLimit, cfg.Engine.FrameLimit)
	cfg.Engine.Profiling = r.bool(KeyProfiling, cfg.Engine.Profiling)

	cfg.Renderer.MaxTextureUnits = r.int(KeyMaxTextureUnits, cfg.Renderer.MaxTextureUnits)

	if level := envy.Get(KeyLogLevel, ""); level != "" {
		parsed, err := log.ParseLevel(level)
		r.fail(KeyLogLevel, err)
		if err == nil {
			cfg.Log.Level = parsed
		}
	}

	if r.err != nil {
		return Configuration{}, r.err
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return Configuration{}, fmt.Errorf("config: window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	return cfg, nil
}

// reader parses typed values and keeps the first error.
type reader struct {
	err error
}

func (r *reader) fail(key string, err error) {
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("config: invalid %s: %w", key, err)
	}
}

func (r *reader) int(key string, def int) int {
	v := envy.Get(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	r.fail(key, err)
	if err != nil {
		return def
	}
	return n
}

func (r *reader) float(key string, def float64) float64 {
	v := envy.Get(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	r.fail(key, err)
	if err != nil {
		return def
	}
	return f
}

func (r *reader) bool(key string, def bool) bool {
	v := envy.Get(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	r.fail(key, err)
	if err != nil {
		return def
	}
	return b
}
