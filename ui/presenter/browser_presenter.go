package presenter

import (
	"image"
	"log/slog"

	"github.com/disintegration/imaging"

	"github.com/JeanKossaifi/videobrowser/config"
	"github.com/JeanKossaifi/videobrowser/domain/dataset"
	"github.com/JeanKossaifi/videobrowser/domain/landmarks"
	"github.com/JeanKossaifi/videobrowser/ui/images"
	"github.com/JeanKossaifi/videobrowser/ui/model"
)

// FrameSource provides the loaded dataset the presenter navigates.
type FrameSource interface {
	Len() int
	Videos() []string
	Collection(index int) dataset.PairSource
	Stats() dataset.Stats
}

// Prefetch warms the decode cache around the cursor.
type Prefetch interface {
	Enqueue(src dataset.PairSource, index int)
}

// BrowserView is the view surface the presenter drives.
type BrowserView interface {
	SetPosition(video string, frame, frameCount int)
	SetFrameRange(frameCount int)
	SetFrameCursor(i int)
	SetVideoCursor(i int)
	UpdateFrame(img image.Image)
	RefreshPoints(frameName string, shape landmarks.Shape)
	ShowPoints()
}

// BrowserPresenter translates navigation events into cursor moves and frame
// renders. All methods run on the UI thread.
type BrowserPresenter struct {
	Cursor   *model.CursorModel
	Display  *model.DisplayModel
	Source   FrameSource
	View     BrowserView
	Config   *config.Config
	Prefetch Prefetch
	logger   *slog.Logger
}

func NewBrowserPresenter(cursor *model.CursorModel, display *model.DisplayModel, source FrameSource, view BrowserView, cfg *config.Config, prefetch Prefetch, logger *slog.Logger) *BrowserPresenter {
	return &BrowserPresenter{
		Cursor:   cursor,
		Display:  display,
		Source:   source,
		View:     view,
		Config:   cfg,
		Prefetch: prefetch,
		logger:   logger,
	}
}

// Init primes the cursor from the source and renders the first frame of the
// first video.
func (p *BrowserPresenter) Init() {
	if p == nil || p.Cursor == nil || p.Source == nil || p.View == nil {
		return
	}
	p.Cursor.SetVideoCount(p.Source.Len())
	p.syncVideo()
}

// NextFrame advances one frame; at the last frame nothing happens.
func (p *BrowserPresenter) NextFrame() {
	if p == nil || p.Cursor == nil {
		return
	}
	if p.Cursor.NextFrame() {
		p.render()
	}
}

// PrevFrame steps one frame back; at the first frame nothing happens.
func (p *BrowserPresenter) PrevFrame() {
	if p == nil || p.Cursor == nil {
		return
	}
	if p.Cursor.PrevFrame() {
		p.render()
	}
}

// FirstFrame rewinds to the start of the current video.
func (p *BrowserPresenter) FirstFrame() { p.Seek(0) }

// LastFrame jumps to the end of the current video.
func (p *BrowserPresenter) LastFrame() {
	if p == nil || p.Cursor == nil {
		return
	}
	p.Seek(p.Cursor.FrameCount() - 1)
}

// Seek moves the cursor to the given frame, clamped to the valid range.
func (p *BrowserPresenter) Seek(frame int) {
	if p == nil || p.Cursor == nil {
		return
	}
	if p.Cursor.JumpFrame(frame) {
		p.render()
	}
}

// SelectVideo switches to another video and rewinds to its first frame.
// Selecting the current video again is a no-op.
func (p *BrowserPresenter) SelectVideo(index int) {
	if p == nil || p.Cursor == nil {
		return
	}
	if p.Cursor.SwitchVideo(index) {
		p.syncVideo()
	}
}

// NextVideo switches to the next video in folder order; at the last video
// nothing happens.
func (p *BrowserPresenter) NextVideo() {
	if p == nil || p.Cursor == nil {
		return
	}
	if p.Cursor.NextVideo() {
		p.syncVideo()
	}
}

// PrevVideo switches to the previous video; at the first video nothing
// happens.
func (p *BrowserPresenter) PrevVideo() {
	if p == nil || p.Cursor == nil {
		return
	}
	if p.Cursor.PrevVideo() {
		p.syncVideo()
	}
}

// AtLastFrame reports whether the cursor sits on the final frame.
func (p *BrowserPresenter) AtLastFrame() bool {
	if p == nil {
		return true
	}
	return p.Cursor.AtLastFrame()
}

// OpenPoints shows the landmark inspector populated with the current frame.
func (p *BrowserPresenter) OpenPoints() {
	if p == nil || p.View == nil {
		return
	}
	p.View.ShowPoints()
	p.pushPoints()
}

// ApplyConfig re-reads the render options after the config panel applied
// changes and repaints the current frame.
func (p *BrowserPresenter) ApplyConfig() {
	if p == nil || p.Config == nil {
		return
	}
	if p.Display != nil {
		p.Display.SetGrayscale(p.Config.Grayscale)
		p.Display.SetPointRadius(p.Config.PointRadius)
	}
	p.render()
}

// syncVideo adapts the view to the current video and renders its frame.
func (p *BrowserPresenter) syncVideo() {
	coll := p.Source.Collection(p.Cursor.Video())
	if coll == nil {
		return
	}
	p.Cursor.SetFrameCount(coll.Len())
	p.View.SetFrameRange(coll.Len())
	p.View.SetVideoCursor(p.Cursor.Video())
	p.render()
}

// render composes the current frame pair and pushes it to the view.
func (p *BrowserPresenter) render() {
	if p == nil || p.Cursor == nil || p.Source == nil || p.View == nil {
		return
	}
	coll := p.Source.Collection(p.Cursor.Video())
	if coll == nil {
		return
	}
	frame := p.Cursor.Frame()
	pair, err := coll.Get(frame)
	if err != nil {
		if p.logger != nil {
			p.logger.Error("frame load failed", "video", coll.Name(), "frame", frame, "error", err)
		}
		return
	}

	img := pair.Image
	if p.Display.Grayscale() {
		img = imaging.Grayscale(img)
	}
	maxW, maxH := p.previewBounds()
	b := img.Bounds()
	ratio := images.FitRatio(b.Dx(), b.Dy(), maxW, maxH)
	scaled := images.ScaleToFit(img, maxW, maxH)
	if p.Display.ShowPoints() {
		p.View.UpdateFrame(images.DrawShape(scaled, pair.Shape.Scaled(ratio), p.Config.OverlayRGBA(), p.Display.PointRadius()))
	} else {
		p.View.UpdateFrame(scaled)
	}

	p.View.SetPosition(coll.Name(), frame, p.Cursor.FrameCount())
	p.View.SetFrameCursor(frame)
	p.pushPoints()
	if p.Prefetch != nil {
		p.Prefetch.Enqueue(coll, frame)
	}
}

// pushPoints refreshes the landmark inspector with the current frame.
func (p *BrowserPresenter) pushPoints() {
	coll := p.Source.Collection(p.Cursor.Video())
	if coll == nil {
		return
	}
	frame := p.Cursor.Frame()
	pair, err := coll.Get(frame)
	if err != nil {
		return
	}
	p.View.RefreshPoints(coll.FrameName(frame), pair.Shape)
}

func (p *BrowserPresenter) previewBounds() (int, int) {
	if p.Config == nil {
		return 960, 720
	}
	return p.Config.MaxPreviewW, p.Config.MaxPreviewH
}
