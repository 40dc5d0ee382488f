package view

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/JeanKossaifi/videobrowser/domain/landmarks"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PointsWindow manages the optional landmark inspector window listing the
// raw coordinates of the current frame.
type PointsWindow interface {
	OpenOrFocus()
	Refresh(frameName string, shape landmarks.Shape)
	Visible() bool
}

type pointsWindow struct {
	logger *slog.Logger
	win    *ToplevelWidget
	text   *TextWidget

	// last pushed content, so the window can populate itself when opened
	lastName  string
	lastShape landmarks.Shape
}

// NewPointsWindow creates a new inspector manager. The window itself is
// built lazily on OpenOrFocus.
func NewPointsWindow(logger *slog.Logger) PointsWindow {
	return &pointsWindow{logger: logger}
}

func (v *pointsWindow) OpenOrFocus() {
	if v == nil {
		return
	}
	if v.win != nil {
		WmGeometry(v.win.Window)
		return
	}
	win := App.Toplevel(Borderwidth(2))
	win.WmTitle("Landmarks")
	v.win = win
	WmGeometry(win.Window, "280x420+140+140")
	GridRowConfigure(win.Window, 0, Weight(1))
	GridColumnConfigure(win.Window, 0, Weight(1))
	v.text = win.Text(Width(32), Height(22))
	Grid(v.text, Row(0), Column(0), Sticky("nsew"), Padx("0.4m"), Pady("0.4m"))
	closeBtn := win.Button(Txt("Close [Esc]"), Command(v.close))
	Grid(closeBtn, Row(1), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	Bind(win, "<Escape>", Command(v.close))
	v.render()
}

// Refresh stores the latest frame content and repaints the window when it is
// open.
func (v *pointsWindow) Refresh(frameName string, shape landmarks.Shape) {
	if v == nil {
		return
	}
	v.lastName = frameName
	v.lastShape = shape
	if v.win == nil {
		return
	}
	v.render()
}

func (v *pointsWindow) Visible() bool { return v != nil && v.win != nil }

func (v *pointsWindow) render() {
	if v.text == nil {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d points\n", v.lastName, len(v.lastShape))
	for i, p := range v.lastShape {
		fmt.Fprintf(&b, "%3d: %8.2f %8.2f\n", i+1, p.X, p.Y)
	}
	v.text.Configure(State("normal"))
	v.text.Delete("1.0", END)
	v.text.Insert("1.0", b.String())
	v.text.Configure(State("disabled"))
}

func (v *pointsWindow) close() {
	if v.win != nil {
		Destroy(v.win)
		v.win = nil
		v.text = nil
	}
}
