package dataset

import (
	"sync/atomic"
	"time"
)

// Stats summarises decode and cache behaviour for instrumentation.
type Stats struct {
	Decodes         uint64
	CacheHits       uint64
	AvgDecode       time.Duration
	AvgDecodeMicros float64
}

// counters accumulates decode instrumentation. Shared by every collection a
// loader owns; safe for concurrent use.
type counters struct {
	decodes     atomic.Uint64
	cacheHits   atomic.Uint64
	decodeNanos atomic.Uint64
}

func (c *counters) recordDecode(d time.Duration) {
	c.decodes.Add(1)
	c.decodeNanos.Add(uint64(d.Nanoseconds()))
}

func (c *counters) recordHit() { c.cacheHits.Add(1) }

// snapshot returns a point-in-time view of the counters.
func (c *counters) snapshot() Stats {
	decodes := c.decodes.Load()
	total := c.decodeNanos.Load()
	var avg time.Duration
	avgMicros := 0.0
	if decodes > 0 && total > 0 {
		avg = time.Duration(total / decodes)
		avgMicros = float64(avg) / float64(time.Microsecond)
	}
	return Stats{
		Decodes:         decodes,
		CacheHits:       c.cacheHits.Load(),
		AvgDecode:       avg,
		AvgDecodeMicros: avgMicros,
	}
}
