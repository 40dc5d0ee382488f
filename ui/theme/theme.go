package theme

// Widget styling for the browser window. InitStyles activates the base
// theme once after the Tk app exists; ToggleDark repaints the ttk widget
// classes in place so the window switches palette without rebuilding any
// widgets.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// palette is one set of resolved widget colors.
type palette struct {
	bg      string
	surface string
	text    string
}

// The dark palette reuses the slate tones of the embedded preview
// placeholder so an empty preview blends into the window.
var (
	light = palette{bg: "#f7f9fb", surface: "#ffffff", text: "#1e293b"}
	dark  = palette{bg: "#0f172a", surface: "#1e293b", text: "#f1f5f9"}
)

var darkMode bool

// InitStyles applies the palette for the current mode.
func InitStyles() { applyStyles(current()) }

// SetDark selects the palette and repaints. Returns the new mode.
func SetDark(d bool) bool {
	darkMode = d
	applyStyles(current())
	return darkMode
}

// ToggleDark flips between palettes and repaints. Returns the new mode.
func ToggleDark() bool { return SetDark(!darkMode) }

// IsDark reports whether the dark palette is active.
func IsDark() bool { return darkMode }

func current() palette {
	if darkMode {
		return dark
	}
	return light
}

// applyStyles paints the base ttk classes. Styling the classes instead of
// per-widget style names means every button and label picks the palette up
// without opting in.
func applyStyles(p palette) {
	_ = ActivateTheme("azure light") // baseline metrics
	App.Configure(Background(p.bg))

	StyleConfigure("TFrame",
		Background(p.bg),
	)
	StyleConfigure("TButton",
		Background(p.surface),
		Foreground(p.text),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure("TLabel",
		Background(p.bg),
		Foreground(p.text),
		Padding("2p 1p"),
	)
}
