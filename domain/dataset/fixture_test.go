package dataset

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JeanKossaifi/videobrowser/domain/landmarks"
)

// writeFramePair writes a small PNG frame and a matching .pts annotation
// under dir using the given basename.
func writeFramePair(t *testing.T, dir, base string, w, h int, pts []landmarks.Point) {
	t.Helper()
	writeImage(t, filepath.Join(dir, base+".png"), w, h)
	writeShape(t, filepath.Join(dir, base+".pts"), pts)
}

// writeImage writes a w x h PNG with a red top-left pixel so grayscale
// conversion is observable.
func writeImage(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 40, G: 40, B: 40, A: 255})
		}
	}
	img.Set(0, 0, color.RGBA{R: 200, G: 10, B: 10, A: 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close %s: %v", path, err)
	}
}

func writeShape(t *testing.T, path string, pts []landmarks.Point) {
	t.Helper()
	var b strings.Builder
	fmt.Fprintf(&b, "version: 1\nn_points: %d\n{\n", len(pts))
	for _, p := range pts {
		fmt.Fprintf(&b, "%g %g\n", p.X, p.Y)
	}
	b.WriteString("}\n")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// writeVideo creates a video folder with n frame pairs named 0001..000n and
// returns its path.
func writeVideo(t *testing.T, root, name string, n int) string {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	for i := 1; i <= n; i++ {
		writeFramePair(t, dir, fmt.Sprintf("%04d", i), 8, 6, []landmarks.Point{{X: 1, Y: 2}, {X: 3, Y: 4}})
	}
	return dir
}
