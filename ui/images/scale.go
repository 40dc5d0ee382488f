package images

import (
	"bytes"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// FitRatio returns the factor that scales a w x h image to fit within
// maxW x maxH preserving aspect ratio. Sources that already fit keep ratio 1.
func FitRatio(w, h, maxW, maxH int) float64 {
	if w <= 0 || h <= 0 {
		return 1
	}
	if w <= maxW && h <= maxH {
		return 1
	}
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	ratio := float64(maxW) / float64(w)
	if rh := float64(maxH) / float64(h); rh < ratio {
		ratio = rh
	}
	return ratio
}

// ScaleToFit resamples src so that the returned image fits within maxW x maxH
// preserving aspect ratio. If the source already fits, the original is
// returned unchanged.
func ScaleToFit(src image.Image, maxW, maxH int) image.Image {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	ratio := FitRatio(b.Dx(), b.Dy(), maxW, maxH)
	if ratio >= 1 {
		return src
	}
	newW := int(float64(b.Dx())*ratio + 0.5)
	newH := int(float64(b.Dy())*ratio + 0.5)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
