package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/JeanKossaifi/videobrowser/domain/landmarks"
)

var _ PairSource = (*Collection)(nil)

func TestCollection_FramesSortedByName(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "vid")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	pts := []landmarks.Point{{X: 1, Y: 1}}
	// written out of order on purpose
	writeFramePair(t, dir, "0003", 8, 6, pts)
	writeFramePair(t, dir, "0001", 8, 6, pts)
	writeFramePair(t, dir, "0002", 8, 6, pts)

	c, err := newCollection("vid", dir, Options{}, nil)
	if err != nil {
		t.Fatalf("newCollection: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("len=%d, want 3", c.Len())
	}
	for i, want := range []string{"0001", "0002", "0003"} {
		if got := c.FrameName(i); got != want {
			t.Fatalf("frame %d = %q, want %q", i, got, want)
		}
	}
	if c.FrameName(3) != "" || c.FrameName(-1) != "" {
		t.Fatalf("out of range FrameName should be empty")
	}
}

func TestCollection_GetDecodesPair(t *testing.T) {
	root := t.TempDir()
	writeVideo(t, root, "vid", 2)

	c, err := newCollection("vid", filepath.Join(root, "vid"), Options{}, nil)
	if err != nil {
		t.Fatalf("newCollection: %v", err)
	}
	pair, err := c.Get(0)
	if err != nil {
		t.Fatalf("Get(0): %v", err)
	}
	b := pair.Image.Bounds()
	if b.Dx() != 8 || b.Dy() != 6 {
		t.Fatalf("image %dx%d, want 8x6", b.Dx(), b.Dy())
	}
	if len(pair.Shape) != 2 {
		t.Fatalf("shape has %d points, want 2", len(pair.Shape))
	}
	if pair.Shape[1] != (landmarks.Point{X: 3, Y: 4}) {
		t.Fatalf("shape[1]=%v", pair.Shape[1])
	}
}

func TestCollection_GetOutOfRange(t *testing.T) {
	root := t.TempDir()
	writeVideo(t, root, "vid", 1)
	c, err := newCollection("vid", filepath.Join(root, "vid"), Options{}, nil)
	if err != nil {
		t.Fatalf("newCollection: %v", err)
	}
	for _, idx := range []int{-1, 1, 99} {
		if _, err := c.Get(idx); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Get(%d) err=%v, want ErrOutOfRange", idx, err)
		}
	}
}

func TestCollection_GrayscaleOption(t *testing.T) {
	root := t.TempDir()
	writeVideo(t, root, "vid", 1)
	c, err := newCollection("vid", filepath.Join(root, "vid"), Options{Grayscale: true}, nil)
	if err != nil {
		t.Fatalf("newCollection: %v", err)
	}
	pair, err := c.Get(0)
	if err != nil {
		t.Fatalf("Get(0): %v", err)
	}
	// the fixture has a red pixel at (0,0); grayscale must flatten it
	r, g, b, _ := pair.Image.At(0, 0).RGBA()
	if r != g || g != b {
		t.Fatalf("pixel (0,0) not gray: r=%d g=%d b=%d", r, g, b)
	}
}

func TestCollection_CacheAvoidsSecondDecode(t *testing.T) {
	root := t.TempDir()
	writeVideo(t, root, "vid", 3)
	stats := &counters{}
	c, err := newCollection("vid", filepath.Join(root, "vid"), Options{CacheSize: 2}, stats)
	if err != nil {
		t.Fatalf("newCollection: %v", err)
	}

	first, err := c.Get(0)
	if err != nil {
		t.Fatalf("Get(0): %v", err)
	}
	second, err := c.Get(0)
	if err != nil {
		t.Fatalf("Get(0) again: %v", err)
	}
	if first != second {
		t.Fatalf("cached pair not reused")
	}
	s := stats.snapshot()
	if s.Decodes != 1 || s.CacheHits != 1 {
		t.Fatalf("decodes=%d hits=%d, want 1/1", s.Decodes, s.CacheHits)
	}

	// push index 0 out of the two-entry cache
	if _, err := c.Get(1); err != nil {
		t.Fatalf("Get(1): %v", err)
	}
	if _, err := c.Get(2); err != nil {
		t.Fatalf("Get(2): %v", err)
	}
	if _, err := c.Get(0); err != nil {
		t.Fatalf("Get(0) after eviction: %v", err)
	}
	if s := stats.snapshot(); s.Decodes != 4 {
		t.Fatalf("decodes=%d, want 4 after eviction", s.Decodes)
	}
}

func TestCollection_UnpairedFilesFail(t *testing.T) {
	pts := []landmarks.Point{{X: 1, Y: 1}}

	t.Run("missing annotation", func(t *testing.T) {
		dir := t.TempDir()
		writeImage(t, filepath.Join(dir, "0001.png"), 8, 6)
		writeFramePair(t, dir, "0002", 8, 6, pts)
		if _, err := newCollection("vid", dir, Options{}, nil); err == nil {
			t.Fatalf("expected error for frame without annotation")
		}
	})
	t.Run("orphan annotation", func(t *testing.T) {
		dir := t.TempDir()
		writeFramePair(t, dir, "0001", 8, 6, pts)
		writeShape(t, filepath.Join(dir, "0002.pts"), pts)
		if _, err := newCollection("vid", dir, Options{}, nil); err == nil {
			t.Fatalf("expected error for annotation without frame")
		}
	})
}

func TestCollection_NilSafeAccessors(t *testing.T) {
	var c *Collection
	if c.Len() != 0 || c.Name() != "" || c.FrameName(0) != "" {
		t.Fatalf("nil collection accessors should return zero values")
	}
}
