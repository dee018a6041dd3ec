package config

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depth-frame-renderer/internal/depth"
)

func TestResolve_Defaults(t *testing.T) {
	t.Parallel()

	var cfg Config
	cfg.Resolve(Flags{InputDir: "recordings/"})

	assert.Equal(t, "recordings-renders", cfg.OutputDir)
	assert.Equal(t, depth.Dimensions{Width: 512, Height: 424}, cfg.Dimensions())
	assert.Equal(t, depth.ReliableRange{Min: 500, Max: 4500}, cfg.ReliableRange())
	assert.True(t, cfg.SegmentationEnabled())
	assert.Equal(t, "webp", cfg.Format)
	assert.Equal(t, 1, cfg.Scale)
	cfg.Scale = MaxScale
	assert.NoError(t, cfg.Validate())
	cfg.Scale = 1
	assert.Positive(t, cfg.Workers)
	require.NoError(t, cfg.Validate())

	hl, err := cfg.Highlight()
	require.NoError(t, err)
	assert.Equal(t, depth.Gold, hl)
}

func TestResolve_FlagsOverrideFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"input_dir": "a",
		"output_dir": "b",
		"width": 320,
		"height": 240,
		"min_reliable": 400,
		"max_reliable": 8000,
		"highlight": "#00ff00",
		"format": "tga",
		"workers": 2
	}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	cfg.Resolve(Flags{OutputDir: "c", Format: "png", Scale: 2, NoSeg: true})

	assert.Equal(t, "a", cfg.InputDir)
	assert.Equal(t, "c", cfg.OutputDir)
	assert.Equal(t, depth.Dimensions{Width: 320, Height: 240}, cfg.Dimensions())
	assert.Equal(t, depth.ReliableRange{Min: 400, Max: 8000}, cfg.ReliableRange())
	assert.Equal(t, "png", cfg.Format)
	assert.Equal(t, 2, cfg.Scale)
	assert.Equal(t, 2, cfg.Workers)
	assert.False(t, cfg.SegmentationEnabled())

	hl, err := cfg.Highlight()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{G: 255, A: 255}, hl)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "config: parse")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	base := func() Config {
		var c Config
		c.Resolve(Flags{})
		return c
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative width", func(c *Config) { c.Width = -1 }},
		{"inverted range", func(c *Config) { c.MinReliable, c.MaxReliable = 900, 100 }},
		{"bad highlight", func(c *Config) { c.HighlightHex = "gold" }},
		{"bad hex digits", func(c *Config) { c.HighlightHex = "#GGGGGG" }},
		{"bad format", func(c *Config) { c.Format = "gif" }},
		{"zero scale", func(c *Config) { c.Scale = 0 }},
		{"scale too large", func(c *Config) { c.Scale = MaxScale + 1 }},
		{"scaled size overflows", func(c *Config) { c.Width, c.Height, c.Scale = 1<<40, 1<<20, MaxScale }},
		{"scaled width overflows", func(c *Config) { c.Width, c.Height, c.Scale = math.MaxInt / 4, 1, MaxScale }},
		{"area overflows", func(c *Config) { c.Width, c.Height = 1<<62+1, 4 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := base()
			tc.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
