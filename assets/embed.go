package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
)

// PlaceholderPNG contains the raw PNG bytes shown in the preview area
// before the first frame is rendered.
//
//go:embed placeholder.png
var PlaceholderPNG []byte

// PlaceholderImage decodes the embedded PNG into an image.Image.
func PlaceholderImage() (image.Image, error) {
	if len(PlaceholderPNG) == 0 {
		return nil, fmt.Errorf("embedded placeholder.png is empty")
	}
	img, err := png.Decode(bytes.NewReader(PlaceholderPNG))
	if err != nil {
		return nil, err
	}
	return img, nil
}
