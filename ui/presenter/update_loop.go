package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick on the sub-presenters and invokes a scheduler callback. The
// zero value is usable (methods are nil-safe).
type Loop struct {
	Playback *PlaybackPresenter
	Stats    *StatsPresenter
	Schedule func()
}

func NewLoop(playback *PlaybackPresenter, stats *StatsPresenter, schedule func()) *Loop {
	return &Loop{Playback: playback, Stats: stats, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Playback != nil {
		l.Playback.Tick(now)
	}
	if l.Stats != nil {
		l.Stats.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
