package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	want := DefaultConfig()
	if *cfg != *want {
		t.Fatalf("got %+v, want defaults %+v", cfg, want)
	}
}

func TestLoad_BadJSONReturnsDefaultsWithError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected JSON error")
	}
	if cfg == nil || cfg.PlaybackFPS != 25 {
		t.Fatalf("expected defaults on error, got %+v", cfg)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := DefaultConfig()
	cfg.Grayscale = true
	cfg.PlaybackFPS = 12
	cfg.OverlayColor = "#ff0000"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.Grayscale || got.PlaybackFPS != 12 || got.OverlayColor != "#ff0000" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestValidate_ClampsRanges(t *testing.T) {
	cfg := &Config{
		ImageExt:     "jpg",
		ShapeExt:     "",
		CacheSize:    -1,
		Prefetch:     -5,
		PlaybackFPS:  500,
		PointRadius:  0,
		OverlayColor: "green",
		MaxPreviewW:  10,
		MaxPreviewH:  10,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.ImageExt != ".jpg" {
		t.Fatalf("ImageExt=%q, want .jpg", cfg.ImageExt)
	}
	if cfg.ShapeExt != ".pts" {
		t.Fatalf("ShapeExt=%q, want .pts", cfg.ShapeExt)
	}
	if cfg.CacheSize != 64 || cfg.Prefetch != 0 {
		t.Fatalf("cache=%d prefetch=%d, want 64/0", cfg.CacheSize, cfg.Prefetch)
	}
	if cfg.PlaybackFPS != 25 || cfg.PointRadius != 2 {
		t.Fatalf("fps=%d radius=%d, want 25/2", cfg.PlaybackFPS, cfg.PointRadius)
	}
	if cfg.OverlayColor != "#2ecc71" {
		t.Fatalf("OverlayColor=%q, want default", cfg.OverlayColor)
	}
	if cfg.MaxPreviewW != 960 || cfg.MaxPreviewH != 720 {
		t.Fatalf("preview=%dx%d, want 960x720", cfg.MaxPreviewW, cfg.MaxPreviewH)
	}
}

func TestOverlayRGBA(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want color.RGBA
	}{
		{"long form", "#ff8000", color.RGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}},
		{"short form", "#f00", color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}},
		{"invalid falls back", "teal", color.RGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff}},
		{"empty falls back", "", color.RGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{OverlayColor: tc.in}
			if got := cfg.OverlayRGBA(); got != tc.want {
				t.Fatalf("OverlayRGBA(%q)=%v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
