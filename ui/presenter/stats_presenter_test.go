package presenter

import (
	"testing"
	"time"

	"github.com/JeanKossaifi/videobrowser/domain/dataset"
)

type mockStatsSource struct{ s dataset.Stats }

func (m *mockStatsSource) Stats() dataset.Stats { return m.s }

type mockStatsView struct {
	decodes, hits uint64
	avg           float64
	calls         int
}

func (v *mockStatsView) SetStats(decodes, hits uint64, avgMicros float64) {
	v.calls++
	v.decodes, v.hits, v.avg = decodes, hits, avgMicros
}

func TestStatsPresenter_ThrottlesUpdates(t *testing.T) {
	src := &mockStatsSource{s: dataset.Stats{Decodes: 7, CacheHits: 3, AvgDecodeMicros: 1500}}
	view := &mockStatsView{}
	p := NewStatsPresenter(src, view)
	base := time.Unix(10, 0)

	p.Tick(base)
	if view.calls != 1 || view.decodes != 7 || view.hits != 3 || view.avg != 1500 {
		t.Fatalf("first tick must push: calls=%d decodes=%d hits=%d avg=%v", view.calls, view.decodes, view.hits, view.avg)
	}
	p.Tick(base.Add(300 * time.Millisecond))
	if view.calls != 1 {
		t.Fatalf("update within the refresh interval not throttled")
	}
	src.s.Decodes = 9
	p.Tick(base.Add(time.Second))
	if view.calls != 2 || view.decodes != 9 {
		t.Fatalf("second push missing: calls=%d decodes=%d", view.calls, view.decodes)
	}
}

func TestStatsPresenter_NilSafe(t *testing.T) {
	var p *StatsPresenter
	p.Tick(time.Now())
	NewStatsPresenter(nil, nil).Tick(time.Now())
}
