package model

// CursorModel tracks which video and which frame the browser is showing.
// Frame and video moves clamp to the valid range instead of wrapping, so
// stepping past either end holds the boundary. No synchronization needed:
// updates occur on the UI thread tick.
type CursorModel struct {
	video      int
	frame      int
	videoCount int
	frameCount int
}

func NewCursorModel() *CursorModel { return &CursorModel{} }

// Video returns the current video index.
func (m *CursorModel) Video() int {
	if m == nil {
		return 0
	}
	return m.video
}

// Frame returns the current frame index within the current video.
func (m *CursorModel) Frame() int {
	if m == nil {
		return 0
	}
	return m.frame
}

// FrameCount returns the number of frames in the current video.
func (m *CursorModel) FrameCount() int {
	if m == nil {
		return 0
	}
	return m.frameCount
}

// VideoCount returns the number of videos.
func (m *CursorModel) VideoCount() int {
	if m == nil {
		return 0
	}
	return m.videoCount
}

// SetVideoCount fixes the number of videos and clamps the current video
// index into range.
func (m *CursorModel) SetVideoCount(n int) {
	if m == nil {
		return
	}
	if n < 0 {
		n = 0
	}
	m.videoCount = n
	m.video = clampIndex(m.video, n)
}

// SetFrameCount fixes the frame count of the current video and clamps the
// current frame index into range.
func (m *CursorModel) SetFrameCount(n int) {
	if m == nil {
		return
	}
	if n < 0 {
		n = 0
	}
	m.frameCount = n
	m.frame = clampIndex(m.frame, n)
}

// NextFrame advances one frame and reports whether the position changed.
// At the last frame it stays put.
func (m *CursorModel) NextFrame() bool { return m.JumpFrame(m.Frame() + 1) }

// PrevFrame steps one frame back and reports whether the position changed.
// At the first frame it stays put.
func (m *CursorModel) PrevFrame() bool { return m.JumpFrame(m.Frame() - 1) }

// JumpFrame moves to the given frame index, clamped to the valid range, and
// reports whether the position changed.
func (m *CursorModel) JumpFrame(i int) bool {
	if m == nil {
		return false
	}
	i = clampIndex(i, m.frameCount)
	if i == m.frame {
		return false
	}
	m.frame = i
	return true
}

// NextVideo switches to the next video and reports whether it changed.
func (m *CursorModel) NextVideo() bool { return m.SwitchVideo(m.Video() + 1) }

// PrevVideo switches to the previous video and reports whether it changed.
func (m *CursorModel) PrevVideo() bool { return m.SwitchVideo(m.Video() - 1) }

// SwitchVideo moves to the given video index, clamped to the valid range.
// An actual switch rewinds the frame cursor to 0; selecting the current
// video again keeps the frame.
func (m *CursorModel) SwitchVideo(i int) bool {
	if m == nil {
		return false
	}
	i = clampIndex(i, m.videoCount)
	if i == m.video {
		return false
	}
	m.video = i
	m.frame = 0
	return true
}

// AtLastFrame reports whether the cursor sits on the final frame. True for
// empty videos so playback stops immediately.
func (m *CursorModel) AtLastFrame() bool {
	if m == nil {
		return true
	}
	return m.frame >= m.frameCount-1
}

// clampIndex pins i into [0, n). For n <= 0 it returns 0.
func clampIndex(i, n int) int {
	if i < 0 || n <= 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
