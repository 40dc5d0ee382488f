package images

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/JeanKossaifi/videobrowser/domain/landmarks"
)

// DrawShape copies src and paints one filled disc per landmark point. Points
// outside the image are clipped, not an error; annotations sometimes reach a
// few pixels past the frame border.
func DrawShape(src image.Image, shape landmarks.Shape, c color.RGBA, radius int) *image.RGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	if radius < 1 {
		radius = 1
	}
	for _, p := range shape {
		fillDisc(dst, int(p.X+0.5), int(p.Y+0.5), radius, c)
	}
	return dst
}

// fillDisc paints a filled circle clamped to the image bounds.
func fillDisc(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for dy := -r; dy <= r; dy++ {
		y := cy + dy
		if y < 0 || y >= h {
			continue
		}
		for dx := -r; dx <= r; dx++ {
			x := cx + dx
			if x < 0 || x >= w {
				continue
			}
			if dx*dx+dy*dy > r*r {
				continue
			}
			i := img.PixOffset(x, y)
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
		}
	}
}
