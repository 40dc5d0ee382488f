package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/adrg/xdg"
)

// Config holds runtime configuration for the browser. Fields may be loaded
// from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Dataset parameters
	ImageExt  string `json:"image_ext"`
	ShapeExt  string `json:"shape_ext"`
	Grayscale bool   `json:"grayscale"`
	CacheSize int    `json:"cache_size"`
	Prefetch  int    `json:"prefetch"`

	// Playback parameters
	Autoplay    bool `json:"autoplay"`
	PlaybackFPS int  `json:"playback_fps"`

	// Display parameters
	PointRadius  int    `json:"point_radius"`
	OverlayColor string `json:"overlay_color"`
	MaxPreviewW  int    `json:"max_preview_w"`
	MaxPreviewH  int    `json:"max_preview_h"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:        false,
		ImageExt:     ".png",
		ShapeExt:     ".pts",
		Grayscale:    false,
		CacheSize:    64,
		Prefetch:     2,
		Autoplay:     false,
		PlaybackFPS:  25,
		PointRadius:  2,
		OverlayColor: "#2ecc71",
		MaxPreviewW:  960,
		MaxPreviewH:  720,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.ImageExt == "" {
		c.ImageExt = ".png"
	} else if !strings.HasPrefix(c.ImageExt, ".") {
		c.ImageExt = "." + c.ImageExt
	}
	if c.ShapeExt == "" {
		c.ShapeExt = ".pts"
	} else if !strings.HasPrefix(c.ShapeExt, ".") {
		c.ShapeExt = "." + c.ShapeExt
	}
	if c.CacheSize <= 0 {
		c.CacheSize = 64
	}
	if c.Prefetch < 0 {
		c.Prefetch = 0
	}
	if c.PlaybackFPS < 1 || c.PlaybackFPS > 120 {
		c.PlaybackFPS = 25
	}
	if c.PointRadius < 1 || c.PointRadius > 10 {
		c.PointRadius = 2
	}
	if _, ok := parseHexColor(c.OverlayColor); !ok {
		c.OverlayColor = "#2ecc71"
	}
	if c.MaxPreviewW < 160 {
		c.MaxPreviewW = 960
	}
	if c.MaxPreviewH < 120 {
		c.MaxPreviewH = 720
	}
	return nil
}

// OverlayRGBA returns the parsed overlay colour. Validate guarantees the
// stored value parses; a fresh zero Config still gets the default green.
func (c *Config) OverlayRGBA() color.RGBA {
	if rgba, ok := parseHexColor(c.OverlayColor); ok {
		return rgba
	}
	return color.RGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff}
}

// parseHexColor accepts #rgb and #rrggbb.
func parseHexColor(s string) (color.RGBA, bool) {
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, false
	}
	var r, g, b uint8
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return color.RGBA{}, false
		}
	case 4:
		if _, err := fmt.Sscanf(s, "#%1x%1x%1x", &r, &g, &b); err != nil {
			return color.RGBA{}, false
		}
		r *= 17
		g *= 17
		b *= 17
	default:
		return color.RGBA{}, false
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, true
}

// DefaultPath returns the per-user config file location under the XDG
// config directory, creating parent directories as needed.
func DefaultPath() (string, error) {
	return xdg.ConfigFile("videobrowser/config.json")
}

// Load attempts to read configuration from the given JSON file path. If the
// file does not exist it returns DefaultConfig(). On JSON error it returns
// defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
