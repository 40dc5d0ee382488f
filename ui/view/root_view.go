package view

import (
	"image"
	"log/slog"
	"strconv"

	"github.com/JeanKossaifi/videobrowser/config"
	"github.com/JeanKossaifi/videobrowser/domain/landmarks"
	"github.com/JeanKossaifi/videobrowser/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level browser layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Status      StatusBar
	ConfigPanel ConfigPanel
	Preview     FramePreview
	Points      PointsWindow

	// Widgets
	VideoSelect *TComboboxWidget
	FrameScale  *ScaleWidget
	PlayBtn     *ButtonWidget
	ThemeBtn    *ButtonWidget

	videos     []string
	previewRow int
}

// UI abstracts the subset of view operations needed by presenters, enabling
// decoupling from the concrete RootView implementation.
type UI interface {
	SetPosition(video string, frame, frameCount int)
	SetStats(decodes, hits uint64, avgMicros float64)
	SetFrameRange(frameCount int)
	SetFrameCursor(i int)
	SetVideoCursor(i int)
	SetPlaying(playing bool)
	UpdateFrame(img image.Image)
	RefreshPoints(frameName string, shape landmarks.Shape)
	SetConfigEditable(enabled bool)
}

// Callbacks bundles the user-action handlers Build wires into the widgets.
// All fields must be set; Build installs them directly.
type Callbacks struct {
	OnFirstFrame    func()
	OnPrevFrame     func()
	OnTogglePlay    func()
	OnNextFrame     func()
	OnLastFrame     func()
	OnSeek          func(frame int)
	OnSelectVideo   func(index int)
	OnPrevVideo     func()
	OnNextVideo     func()
	OnShowPoints    func()
	OnConfigApplied func()
	OnExit          func()
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout. videos: list of video identifiers for the
// selection dropdown. Handlers are invoked on user actions.
func (rv *RootView) Build(videos []string, cb Callbacks) {
	if rv == nil {
		return
	}
	rv.videos = videos

	// Row 0: video selector, status labels, buttons frame
	videoLbl := Label(Txt("Video:"), Anchor("w"))
	Grid(videoLbl, Row(0), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.3m"))
	if len(videos) == 0 {
		videos = []string{"<none>"}
	}
	videoFrame := Frame()
	Grid(videoFrame, Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.3m"))
	prevVideoBtn := Button(Txt("<"), Command(cb.OnPrevVideo))
	Grid(prevVideoBtn, In(videoFrame), Row(0), Column(0), Padx("0.2m"))
	rv.VideoSelect = TCombobox(Values(videos), Width(18))
	Grid(rv.VideoSelect, In(videoFrame), Row(0), Column(1), Sticky("we"), Padx("0.2m"))
	nextVideoBtn := Button(Txt(">"), Command(cb.OnNextVideo))
	Grid(nextVideoBtn, In(videoFrame), Row(0), Column(2), Padx("0.2m"))
	rv.VideoSelect.Current(0)
	Bind(rv.VideoSelect, "<<ComboboxSelected>>", Command(func() {
		if rv.VideoSelect == nil {
			return
		}
		idxStr := rv.VideoSelect.Current(nil)
		idx, err := strconv.Atoi(idxStr)
		if err == nil && idx >= 0 && idx < len(rv.videos) {
			cb.OnSelectVideo(idx)
		} else {
			if rv.logger != nil {
				rv.logger.Error("video selection parse error", "value", idxStr, "error", err)
			}
		}
	}))
	rv.Status = NewStatusBar(nil, 0, 2)

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(4), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	pointsBtn := Button(Txt("Landmarks"), Command(cb.OnShowPoints))
	Grid(pointsBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	rv.ThemeBtn = Button(Txt(themeButtonText()), Command(func() {
		theme.ToggleDark()
		if rv.ThemeBtn != nil {
			rv.ThemeBtn.Configure(Txt(themeButtonText()))
		}
	}))
	Grid(rv.ThemeBtn, In(btnFrame), Row(1), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := Button(Txt("Exit"), Command(cb.OnExit))
	Grid(exitBtn, In(btnFrame), Row(2), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Row 1: frame slider. Classic scale keeps the value readout above the
	// trough and steps by whole frames.
	rv.FrameScale = Scale(From(0), To(0), Orient("horizontal"), Length(420), Command(func() {
		if rv.FrameScale == nil || cb.OnSeek == nil {
			return
		}
		cb.OnSeek(int(rv.FrameScale.Get()))
	}))
	Grid(rv.FrameScale, Row(1), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.2m"))

	// Row 2: transport buttons
	transport := Frame()
	Grid(transport, Row(2), Column(0), Columnspan(5), Sticky("we"), Padx("0.3m"), Pady("0.2m"))
	firstBtn := Button(Txt("|<"), Command(cb.OnFirstFrame))
	Grid(firstBtn, In(transport), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	prevBtn := Button(Txt("< Prev"), Command(cb.OnPrevFrame))
	Grid(prevBtn, In(transport), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	rv.PlayBtn = Button(Txt("Play"), Command(cb.OnTogglePlay))
	Grid(rv.PlayBtn, In(transport), Row(0), Column(2), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	nextBtn := Button(Txt("Next >"), Command(cb.OnNextFrame))
	Grid(nextBtn, In(transport), Row(0), Column(3), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	lastBtn := Button(Txt(">|"), Command(cb.OnLastFrame))
	Grid(lastBtn, In(transport), Row(0), Column(4), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Keyboard bindings mirror the transport and video buttons.
	Bind(App, "<Left>", Command(cb.OnPrevFrame))
	Bind(App, "<Right>", Command(cb.OnNextFrame))
	Bind(App, "<Home>", Command(cb.OnFirstFrame))
	Bind(App, "<End>", Command(cb.OnLastFrame))
	Bind(App, "<Prior>", Command(cb.OnPrevVideo))
	Bind(App, "<Next>", Command(cb.OnNextVideo))
	Bind(App, "<space>", Command(cb.OnTogglePlay))

	// Config panel rows
	rv.ConfigPanel = NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger, cb.OnConfigApplied)
	endRow := rv.ConfigPanel.Build(3)
	rv.previewRow = endRow

	// Frame preview placement
	rv.Preview = NewFramePreview(rv.previewRow)
	// Landmark inspector, created on demand
	rv.Points = NewPointsWindow(rv.logger)
}

// themeButtonText names the palette the theme button switches to.
func themeButtonText() string {
	if theme.IsDark() {
		return "Light"
	}
	return "Dark"
}

// SetPosition updates the position label.
func (rv *RootView) SetPosition(video string, frame, frameCount int) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetPosition(video, frame, frameCount)
	}
}

// SetStats updates the decode statistics label.
func (rv *RootView) SetStats(decodes, hits uint64, avgMicros float64) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetStats(decodes, hits, avgMicros)
	}
}

// SetFrameRange reconfigures the slider for a video with frameCount frames.
func (rv *RootView) SetFrameRange(frameCount int) {
	if rv == nil || rv.FrameScale == nil {
		return
	}
	last := frameCount - 1
	if last < 0 {
		last = 0
	}
	rv.FrameScale.Configure(To(float64(last)))
}

// SetFrameCursor moves the slider knob without going through the user
// callback path; the scale only fires its command when the value changes.
func (rv *RootView) SetFrameCursor(i int) {
	if rv == nil || rv.FrameScale == nil {
		return
	}
	rv.FrameScale.Set(float64(i))
}

// SetVideoCursor selects the dropdown entry. Programmatic selection does not
// raise <<ComboboxSelected>>.
func (rv *RootView) SetVideoCursor(i int) {
	if rv == nil || rv.VideoSelect == nil {
		return
	}
	if i < 0 || i >= len(rv.videos) {
		return
	}
	rv.VideoSelect.Current(i)
}

// SetPlaying flips the play button label.
func (rv *RootView) SetPlaying(playing bool) {
	if rv == nil || rv.PlayBtn == nil {
		return
	}
	if playing {
		rv.PlayBtn.Configure(Txt("Pause"))
	} else {
		rv.PlayBtn.Configure(Txt("Play"))
	}
}

// UpdateFrame proxies to the underlying frame preview view.
func (rv *RootView) UpdateFrame(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.UpdateFrame(img)
	}
}

// RefreshPoints proxies to the landmark inspector.
func (rv *RootView) RefreshPoints(frameName string, shape landmarks.Shape) {
	if rv != nil && rv.Points != nil {
		rv.Points.Refresh(frameName, shape)
	}
}

// ShowPoints opens or focuses the landmark inspector.
func (rv *RootView) ShowPoints() {
	if rv != nil && rv.Points != nil {
		rv.Points.OpenOrFocus()
	}
}

// SetConfigEditable toggles config panel editability.
func (rv *RootView) SetConfigEditable(enabled bool) {
	if rv != nil && rv.ConfigPanel != nil {
		rv.ConfigPanel.SetEditable(enabled)
	}
}

// PreviewReset clears the frame preview.
func (rv *RootView) PreviewReset() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Reset()
	}
}
