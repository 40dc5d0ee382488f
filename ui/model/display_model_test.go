package model

import "testing"

func TestDisplayModel_Defaults(t *testing.T) {
	m := NewDisplayModel(false, 2)
	if !m.ShowPoints() {
		t.Fatalf("points should start visible")
	}
	if m.Grayscale() || m.PointRadius() != 2 {
		t.Fatalf("unexpected defaults: gray=%v radius=%d", m.Grayscale(), m.PointRadius())
	}
}

func TestDisplayModel_Toggles(t *testing.T) {
	m := NewDisplayModel(false, 2)
	m.SetGrayscale(true)
	m.SetShowPoints(false)
	if !m.Grayscale() || m.ShowPoints() {
		t.Fatalf("toggles not stored: gray=%v points=%v", m.Grayscale(), m.ShowPoints())
	}
}

func TestDisplayModel_PointRadiusClamps(t *testing.T) {
	m := NewDisplayModel(false, 0)
	if m.PointRadius() != 1 {
		t.Fatalf("radius 0 should clamp to 1, got %d", m.PointRadius())
	}
	m.SetPointRadius(99)
	if m.PointRadius() != 10 {
		t.Fatalf("radius 99 should clamp to 10, got %d", m.PointRadius())
	}
}
