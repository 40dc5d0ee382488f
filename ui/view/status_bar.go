package view

import (
	"fmt"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StatusBar updates the cursor position and decode statistics labels.
type StatusBar interface {
	SetPosition(video string, frame, frameCount int)
	SetStats(decodes, hits uint64, avgMicros float64)
}

type statusBar struct {
	posLbl   *LabelWidget
	statsLbl *LabelWidget
}

// NewStatusBar creates position and stats labels in a grid layout.
// The position label is placed at (row, startCol) and the stats label at
// (row, startCol+1). If parent is nil, labels are positioned relative to the
// App root.
func NewStatusBar(parent *FrameWidget, row, startCol int) StatusBar {
	s := &statusBar{posLbl: Label(Width(26)), statsLbl: Label(Width(30))}
	if parent != nil {
		Grid(s.posLbl, In(parent), Row(row), Column(startCol), Sticky("w"), Padx("0.2m"))
	} else {
		Grid(s.posLbl, Row(row), Column(startCol), Sticky("w"), Padx("0.2m"))
	}
	if parent != nil {
		Grid(s.statsLbl, In(parent), Row(row), Column(startCol+1), Sticky("w"), Padx("0.2m"))
	} else {
		Grid(s.statsLbl, Row(row), Column(startCol+1), Sticky("w"), Padx("0.2m"))
	}
	s.posLbl.Configure(Txt("frame 0/0"))
	s.statsLbl.Configure(Txt("decoded 0, cached 0"))
	return s
}

// SetPosition updates the cursor position display. Frames are one-based on
// screen.
func (s *statusBar) SetPosition(video string, frame, frameCount int) {
	if s == nil || s.posLbl == nil {
		return
	}
	shown := 0
	if frameCount > 0 {
		shown = frame + 1
	}
	s.posLbl.Configure(Txt(fmt.Sprintf("%s  frame %d/%d", video, shown, frameCount)))
}

// SetStats updates the decode statistics display.
func (s *statusBar) SetStats(decodes, hits uint64, avgMicros float64) {
	if s == nil || s.statsLbl == nil {
		return
	}
	s.statsLbl.Configure(Txt(fmt.Sprintf("decoded %d, cached %d, avg %.1fms", decodes, hits, avgMicros/1000)))
}
