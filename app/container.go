package app

import (
	"log/slog"

	"github.com/JeanKossaifi/videobrowser/config"
	"github.com/JeanKossaifi/videobrowser/domain/dataset"
	"github.com/JeanKossaifi/videobrowser/ui/model"
	"github.com/JeanKossaifi/videobrowser/ui/presenter"
	"github.com/JeanKossaifi/videobrowser/ui/view"
)

// Container assembles models, dataset access, presenters and the root view.
type AppContainer struct {
	Config   *config.Config
	Logger   *slog.Logger
	Loader   *dataset.Loader
	Cursor   *model.CursorModel
	Display  *model.DisplayModel
	Playback *model.PlaybackModel
	Prefetch *dataset.Prefetcher
	RootView *view.RootView
	UI       view.UI

	// Presenters
	BrowserPresenter  *presenter.BrowserPresenter
	PlaybackPresenter *presenter.PlaybackPresenter
	StatsPresenter    *presenter.StatsPresenter
	Loop              *presenter.Loop
}

// loaderSource adapts the concrete loader to the presenter-facing source
// interfaces. Collection returns an untyped nil for missing indices so the
// presenter's nil checks stay honest.
type loaderSource struct{ l *dataset.Loader }

func (s loaderSource) Len() int             { return s.l.Len() }
func (s loaderSource) Videos() []string     { return s.l.Videos() }
func (s loaderSource) Stats() dataset.Stats { return s.l.Stats() }

func (s loaderSource) Collection(index int) dataset.PairSource {
	if c := s.l.Collection(index); c != nil {
		return c
	}
	return nil
}

// BuildContainer constructs all components around an already opened dataset.
// Side-effects limited to allocating the prefetch worker state; the worker
// itself starts lazily on first enqueue.
func BuildContainer(cfg *config.Config, logger *slog.Logger, loader *dataset.Loader, cfgPath string) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger, Loader: loader}
	c.Cursor = model.NewCursorModel()
	c.Display = model.NewDisplayModel(cfg.Grayscale, cfg.PointRadius)
	c.Playback = model.NewPlaybackModel(cfg.PlaybackFPS)
	c.Prefetch = dataset.NewPrefetcher(cfg.Prefetch, logger)
	src := loaderSource{l: loader}
	// View
	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.UI = c.RootView
	// Presenters. The update loop is wired by the app wrapper once the Tk
	// schedule callback exists.
	c.BrowserPresenter = presenter.NewBrowserPresenter(c.Cursor, c.Display, src, c.RootView, cfg, c.Prefetch, logger)
	c.PlaybackPresenter = presenter.NewPlaybackPresenter(c.Playback, c.BrowserPresenter, c.RootView)
	c.StatsPresenter = presenter.NewStatsPresenter(src, c.RootView)
	return c
}
