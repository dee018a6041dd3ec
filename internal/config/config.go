package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"
	"os"
	"runtime"
	"strconv"
	"strings"

	"depth-frame-renderer/internal/depth"
	"depth-frame-renderer/internal/encode"
)

// MaxScale is the largest display upscale factor accepted.
const MaxScale = 16

// Config holds recording paths, the sensor mode and render settings.
type Config struct {
	// Paths
	InputDir  string `json:"input_dir"`
	OutputDir string `json:"output_dir"`

	// Sensor mode the captures were recorded in
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	MinReliable uint16 `json:"min_reliable"`
	MaxReliable uint16 `json:"max_reliable"`

	// Render settings
	Segmentation *bool  `json:"segmentation,omitempty"`
	HighlightHex string `json:"highlight"`
	Format       string `json:"format"`
	Scale        int    `json:"scale"`
	Workers      int    `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	InputDir  string
	OutputDir string
	Format    string
	Highlight string
	Scale     int
	Workers   int
	NoSeg     bool
}

// Resolve applies flags over the file values, then fills defaults.
// The sensor defaults are the Kinect v2 depth mode.
func (c *Config) Resolve(flags Flags) {
	if flags.InputDir != "" {
		c.InputDir = flags.InputDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Highlight != "" {
		c.HighlightHex = flags.Highlight
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.NoSeg {
		off := false
		c.Segmentation = &off
	}

	if c.OutputDir == "" && c.InputDir != "" {
		c.OutputDir = strings.TrimRight(c.InputDir, "/\\") + "-renders"
	}

	if c.Width <= 0 {
		c.Width = 512
	}
	if c.Height <= 0 {
		c.Height = 424
	}
	if c.MinReliable == 0 && c.MaxReliable == 0 {
		c.MinReliable = 500
		c.MaxReliable = 4500
	}
	if c.Segmentation == nil {
		on := true
		c.Segmentation = &on
	}
	if c.HighlightHex == "" {
		c.HighlightHex = "#FFD700"
	}
	if c.Format == "" {
		c.Format = string(encode.WebP)
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate checks a resolved config.
func (c *Config) Validate() error {
	if err := c.Dimensions().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.MinReliable > c.MaxReliable {
		return fmt.Errorf("config: min_reliable %d exceeds max_reliable %d", c.MinReliable, c.MaxReliable)
	}
	if c.Scale < 1 || c.Scale > MaxScale {
		return fmt.Errorf("config: scale %d outside 1-%d", c.Scale, MaxScale)
	}
	if c.Scale > 1 {
		if c.Width > math.MaxInt/c.Scale || c.Height > math.MaxInt/c.Scale {
			return fmt.Errorf("config: scale %d overflows %s", c.Scale, c.Dimensions())
		}
		scaled := depth.Dimensions{Width: c.Width * c.Scale, Height: c.Height * c.Scale}
		if err := scaled.Validate(); err != nil {
			return fmt.Errorf("config: scale %d: %w", c.Scale, err)
		}
	}
	if _, err := c.Highlight(); err != nil {
		return err
	}
	if _, err := encode.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Dimensions returns the configured frame size.
func (c *Config) Dimensions() depth.Dimensions {
	return depth.Dimensions{Width: c.Width, Height: c.Height}
}

// ReliableRange returns the configured depth window.
func (c *Config) ReliableRange() depth.ReliableRange {
	return depth.ReliableRange{Min: c.MinReliable, Max: c.MaxReliable}
}

// SegmentationEnabled reports whether tracked entities are highlighted.
func (c *Config) SegmentationEnabled() bool {
	return c.Segmentation == nil || *c.Segmentation
}

// Highlight parses HighlightHex ("#RRGGBB" or "RRGGBB").
func (c *Config) Highlight() (color.RGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(c.HighlightHex), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("config: highlight %q is not #RRGGBB", c.HighlightHex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("config: highlight %q: %w", c.HighlightHex, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
