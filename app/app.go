package app

import (
	"fmt"
	"log/slog"
	"time"

	. "modernc.org/tk9.0"

	"github.com/JeanKossaifi/videobrowser/config"
	"github.com/JeanKossaifi/videobrowser/domain/dataset"
	"github.com/JeanKossaifi/videobrowser/ui/presenter"
	"github.com/JeanKossaifi/videobrowser/ui/theme"
	"github.com/JeanKossaifi/videobrowser/ui/view"
)

const (
	// tick drives the presenter update loop. Playback cannot step faster
	// than one frame per tick, so this bounds the effective frame rate.
	tick = 20 * time.Millisecond
)

type app struct {
	title     string
	cfg       *config.Config
	logger    *slog.Logger
	container *AppContainer
	afterID   string
}

// NewApp builds the component container around the opened dataset and
// prepares the main window.
func NewApp(title string, width, height int, cfg *config.Config, logger *slog.Logger, loader *dataset.Loader, cfgPath string) *app {
	a := &app{title: title, cfg: cfg, logger: logger}
	a.container = BuildContainer(cfg, logger, loader, cfgPath)

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

// Start builds the UI, kicks the update loop and blocks until the main
// window closes.
func (a *app) Start() {
	theme.InitStyles()
	c := a.container

	c.RootView.Build(c.Loader.Videos(), view.Callbacks{
		OnFirstFrame:    c.BrowserPresenter.FirstFrame,
		OnPrevFrame:     c.BrowserPresenter.PrevFrame,
		OnTogglePlay:    c.PlaybackPresenter.Toggle,
		OnNextFrame:     c.BrowserPresenter.NextFrame,
		OnLastFrame:     c.BrowserPresenter.LastFrame,
		OnSeek:          c.BrowserPresenter.Seek,
		OnSelectVideo:   a.selectVideo,
		OnPrevVideo:     a.prevVideo,
		OnNextVideo:     a.nextVideo,
		OnShowPoints:    c.BrowserPresenter.OpenPoints,
		OnConfigApplied: a.configApplied,
		OnExit:          a.exitHandler,
	})

	// Render the first frame of the first video before the loop starts.
	c.BrowserPresenter.Init()
	a.syncTitle()

	c.Loop = presenter.NewLoop(c.PlaybackPresenter, c.StatsPresenter, a.scheduleUpdate)

	if a.cfg.Autoplay {
		c.PlaybackPresenter.Toggle()
	}

	// Kick off update loop.
	a.scheduleUpdate()

	App.Wait()
}

// selectVideo stops playback before switching so the new video starts parked
// on its first frame.
func (a *app) selectVideo(index int) {
	a.container.PlaybackPresenter.Stop()
	a.container.BrowserPresenter.SelectVideo(index)
	a.syncTitle()
}

func (a *app) prevVideo() {
	a.container.PlaybackPresenter.Stop()
	a.container.BrowserPresenter.PrevVideo()
	a.syncTitle()
}

func (a *app) nextVideo() {
	a.container.PlaybackPresenter.Stop()
	a.container.BrowserPresenter.NextVideo()
	a.syncTitle()
}

// syncTitle reflects the active video in the window title.
func (a *app) syncTitle() {
	videos := a.container.Loader.Videos()
	if i := a.container.Cursor.Video(); i >= 0 && i < len(videos) {
		App.WmTitle(fmt.Sprintf("%s - %s", a.title, videos[i]))
	}
}

// configApplied propagates settings saved from the config panel into the
// presenters.
func (a *app) configApplied() {
	a.container.BrowserPresenter.ApplyConfig()
	a.container.PlaybackPresenter.ApplyConfig(a.cfg.PlaybackFPS)
}

func (a *app) exitHandler() {
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next loop tick using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.container.Loop.Tick() })
}
