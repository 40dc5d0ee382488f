package presenter

import (
	"time"

	"github.com/JeanKossaifi/videobrowser/domain/dataset"
)

// StatsSource exposes aggregated decode statistics.
type StatsSource interface{ Stats() dataset.Stats }

// StatsView displays the decode counters.
type StatsView interface {
	SetStats(decodes, hits uint64, avgMicros float64)
}

// StatsPresenter periodically pushes decode statistics to the view. Updates
// are throttled so the label does not churn on every tick.
type StatsPresenter struct {
	src   StatsSource
	view  StatsView
	every time.Duration
	last  time.Time
}

// NewStatsPresenter returns a presenter refreshing once per second.
func NewStatsPresenter(src StatsSource, view StatsView) *StatsPresenter {
	return &StatsPresenter{src: src, view: view, every: time.Second}
}

// Tick pushes fresh statistics when the refresh interval elapsed.
func (p *StatsPresenter) Tick(now time.Time) {
	if p == nil || p.src == nil || p.view == nil {
		return
	}
	if !p.last.IsZero() && now.Sub(p.last) < p.every {
		return
	}
	p.last = now
	s := p.src.Stats()
	p.view.SetStats(s.Decodes, s.CacheHits, s.AvgDecodeMicros)
}
