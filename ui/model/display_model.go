package model

// DisplayModel holds the render options the user can flip at runtime.
// No synchronization needed: updates occur on the UI thread tick.
type DisplayModel struct {
	grayscale   bool
	showPoints  bool
	pointRadius int
}

// NewDisplayModel returns a model with landmarks visible.
func NewDisplayModel(grayscale bool, pointRadius int) *DisplayModel {
	m := &DisplayModel{showPoints: true}
	m.SetGrayscale(grayscale)
	m.SetPointRadius(pointRadius)
	return m
}

// Grayscale reports whether frames are rendered in gray levels.
func (m *DisplayModel) Grayscale() bool {
	if m == nil {
		return false
	}
	return m.grayscale
}

// SetGrayscale stores the grayscale flag.
func (m *DisplayModel) SetGrayscale(b bool) {
	if m == nil {
		return
	}
	m.grayscale = b
}

// ShowPoints reports whether the landmark overlay is drawn.
func (m *DisplayModel) ShowPoints() bool {
	if m == nil {
		return false
	}
	return m.showPoints
}

// SetShowPoints stores the overlay flag.
func (m *DisplayModel) SetShowPoints(b bool) {
	if m == nil {
		return
	}
	m.showPoints = b
}

// PointRadius returns the landmark disc radius in pixels.
func (m *DisplayModel) PointRadius() int {
	if m == nil {
		return 1
	}
	return m.pointRadius
}

// SetPointRadius stores the radius, clamped to [1, 10].
func (m *DisplayModel) SetPointRadius(r int) {
	if m == nil {
		return
	}
	if r < 1 {
		r = 1
	}
	if r > 10 {
		r = 10
	}
	m.pointRadius = r
}
