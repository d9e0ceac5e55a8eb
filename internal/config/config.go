package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"spheretrace/internal/raster"
	"spheretrace/internal/scene"
)

// Mode selects the surface frames are presented on.
type Mode string

const (
	ModeWindow Mode = "window"
	ModeRecord Mode = "record"
	ModeStream Mode = "stream"
)

// Config holds all configurable paths and render settings.
type Config struct {
	Mode      Mode   `json:"mode"`
	SceneFile string `json:"scene_file"` // empty uses the built-in scene

	// Render settings
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Frames    int     `json:"frames"` // 0 runs until stopped
	ThetaStep float64 `json:"theta_step"`

	Shading raster.ShadeConfig `json:"shading"`
	Zoom    scene.ZoomConfig   `json:"zoom"`

	// Recording
	OutputDir    string `json:"output_dir"`
	Format       string `json:"format"`
	OutputWidth  int    `json:"output_width"`
	OutputHeight int    `json:"output_height"`
	Filter       string `json:"filter"`
	Workers      int    `json:"workers"`
	GIFDelay     int    `json:"gif_delay"`

	// Streaming
	Addr   string `json:"addr"`
	MaxFPS int    `json:"max_fps"`
}

// Default returns the built-in settings. Load starts from these, so a
// config file only needs the fields it changes.
func Default() Config {
	return Config{
		Mode:      ModeWindow,
		Width:     300,
		Height:    300,
		ThetaStep: scene.DefaultThetaStep,
		Shading:   raster.DefaultShadeConfig(),
		Zoom:      scene.DefaultZoomConfig(),
		Format:    "png",
		Filter:    "nearest",
		Addr:      ":8080",
		MaxFPS:    30,
	}
}

// Load reads a JSON config file over Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Mode      string
	SceneFile string
	Width     int
	Height    int
	Frames    int
	OutputDir string
	Format    string
	Scale     int
	Workers   int
	Addr      string
}

// Resolve applies non-zero flags and fills in anything still unset.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Mode != "" {
		c.Mode = Mode(flags.Mode)
	}
	if flags.SceneFile != "" {
		c.SceneFile = flags.SceneFile
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Addr != "" {
		c.Addr = flags.Addr
	}

	// Defaults
	if c.Mode == "" {
		c.Mode = ModeWindow
	}
	if c.Width <= 0 {
		c.Width = 300
	}
	if c.Height <= 0 {
		c.Height = 300
	}
	if flags.Scale > 1 {
		c.OutputWidth = c.Width * flags.Scale
		c.OutputHeight = c.Height * flags.Scale
	}
	if c.ThetaStep == 0 {
		c.ThetaStep = scene.DefaultThetaStep
	}
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeWindow, ModeRecord, ModeStream:
	default:
		return fmt.Errorf("config: unknown mode %q", c.Mode)
	}
	if c.Mode == ModeRecord && c.Frames <= 0 {
		return fmt.Errorf("config: record mode needs frames > 0")
	}
	if c.Mode == ModeStream && c.Format != "png" && c.Format != "webp" {
		return fmt.Errorf("config: stream format must be png or webp, got %q", c.Format)
	}
	return nil
}
