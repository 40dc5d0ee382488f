package model

import (
	"sync/atomic"
	"time"
)

// PlaybackModel tracks whether autoplay is running and when the next frame
// step is due. Playing is an atomic Bool because UI callbacks and presenter
// ticks may race; the deadline is only touched on the UI thread tick.
type PlaybackModel struct {
	playing atomic.Bool
	fps     int
	nextDue time.Time
}

// NewPlaybackModel returns a stopped model stepping at the given rate.
func NewPlaybackModel(fps int) *PlaybackModel {
	m := &PlaybackModel{}
	m.SetFPS(fps)
	return m
}

// Playing reports whether autoplay is running.
func (m *PlaybackModel) Playing() bool {
	if m == nil {
		return false
	}
	return m.playing.Load()
}

// SetPlaying starts or stops autoplay. Starting rearms the deadline so the
// first step happens on the next tick.
func (m *PlaybackModel) SetPlaying(b bool) {
	if m == nil {
		return
	}
	prev := m.playing.Load()
	if prev == b { // no change
		return
	}
	if b {
		m.nextDue = time.Time{}
	}
	m.playing.Store(b)
}

// FPS returns the playback rate in frames per second.
func (m *PlaybackModel) FPS() int {
	if m == nil {
		return 0
	}
	return m.fps
}

// SetFPS changes the playback rate. Rates outside [1, 120] fall back to 25.
func (m *PlaybackModel) SetFPS(fps int) {
	if m == nil {
		return
	}
	if fps < 1 || fps > 120 {
		fps = 25
	}
	m.fps = fps
}

// Interval returns the time between frame steps.
func (m *PlaybackModel) Interval() time.Duration {
	if m == nil || m.fps < 1 {
		return time.Second / 25
	}
	return time.Second / time.Duration(m.fps)
}

// Due reports whether a frame step is due at now and, when it is, arms the
// following deadline. Always false while stopped.
func (m *PlaybackModel) Due(now time.Time) bool {
	if m == nil || !m.playing.Load() {
		return false
	}
	if m.nextDue.IsZero() || !now.Before(m.nextDue) {
		m.nextDue = now.Add(m.Interval())
		return true
	}
	return false
}
