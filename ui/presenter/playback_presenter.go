package presenter

import (
	"time"

	"github.com/JeanKossaifi/videobrowser/ui/model"
)

// Stepper advances the frame cursor on behalf of playback.
type Stepper interface {
	NextFrame()
	FirstFrame()
	AtLastFrame() bool
}

// PlaybackView flips the play button and config editability.
type PlaybackView interface {
	SetPlaying(playing bool)
	SetConfigEditable(enabled bool)
}

// PlaybackPresenter drives autoplay: it steps the cursor once per playback
// interval and stops when the last frame is reached.
type PlaybackPresenter struct {
	Model   *model.PlaybackModel
	Stepper Stepper
	View    PlaybackView
}

func NewPlaybackPresenter(m *model.PlaybackModel, stepper Stepper, view PlaybackView) *PlaybackPresenter {
	return &PlaybackPresenter{Model: m, Stepper: stepper, View: view}
}

// Toggle starts or stops playback. Starting while parked on the last frame
// rewinds to the first so play always moves.
func (p *PlaybackPresenter) Toggle() {
	if p == nil || p.Model == nil || p.View == nil {
		return
	}
	if p.Model.Playing() {
		p.stop()
		return
	}
	if p.Stepper != nil && p.Stepper.AtLastFrame() {
		p.Stepper.FirstFrame()
	}
	p.Model.SetPlaying(true)
	p.View.SetPlaying(true)
	p.View.SetConfigEditable(false)
}

// Stop halts playback. Safe to call when already stopped.
func (p *PlaybackPresenter) Stop() {
	if p == nil || p.Model == nil || p.View == nil || !p.Model.Playing() {
		return
	}
	p.stop()
}

func (p *PlaybackPresenter) stop() {
	p.Model.SetPlaying(false)
	p.View.SetPlaying(false)
	p.View.SetConfigEditable(true)
}

// Tick advances one frame when a step is due and stops at the last frame.
func (p *PlaybackPresenter) Tick(now time.Time) {
	if p == nil || p.Model == nil || p.Stepper == nil {
		return
	}
	if !p.Model.Due(now) {
		return
	}
	p.Stepper.NextFrame()
	if p.Stepper.AtLastFrame() {
		p.Stop()
	}
}

// ApplyConfig picks up a changed playback rate.
func (p *PlaybackPresenter) ApplyConfig(fps int) {
	if p == nil || p.Model == nil {
		return
	}
	p.Model.SetFPS(fps)
}
