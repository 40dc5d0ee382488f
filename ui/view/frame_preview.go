package view

import (
	"image"

	"github.com/JeanKossaifi/videobrowser/assets"
	"github.com/JeanKossaifi/videobrowser/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// FramePreview abstracts the annotated frame display. Presenters hand it a
// fully composed image; the view only swaps Tk photo instances.
type FramePreview interface {
	UpdateFrame(img image.Image)
	Reset()
}

type framePreview struct {
	frameLabel *LabelWidget
	prevPhoto  *Img // last Tk photo image instance
}

// Internal state tracks the current photo so we can dispose the old image
// before replacing it, preventing accumulation of off-screen image data.

// NewFramePreview creates the preview label spanning the full grid width at
// the given row. It starts out showing the embedded placeholder until the
// first frame renders.
func NewFramePreview(row int) FramePreview {
	photo := NewPhoto(Data(assets.PlaceholderPNG))
	frame := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(frame, Row(row), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	return &framePreview{frameLabel: frame, prevPhoto: photo}
}

func (v *framePreview) UpdateFrame(img image.Image) {
	if v.frameLabel == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(img)
	// Replace previous photo to avoid retaining obsolete pixel buffers.
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	newPhoto := NewPhoto(Data(pngBytes))
	v.prevPhoto = newPhoto
	v.frameLabel.Configure(Image(newPhoto))
}

func (v *framePreview) Reset() {
	if v.frameLabel == nil {
		return
	}
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(assets.PlaceholderPNG))
	v.frameLabel.Configure(Image(v.prevPhoto))
}
