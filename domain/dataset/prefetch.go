package dataset

import (
	"errors"
	"log/slog"
	"sync"
)

// DefaultPrefetchRadius is how many frames around the cursor get warmed.
const DefaultPrefetchRadius = 2

type prefetchJob struct {
	src   PairSource
	index int
}

// Prefetcher decodes the neighbours of the current frame on a background
// worker so stepping stays responsive. Older jobs are dropped when a new
// cursor position arrives before the worker catches up.
type Prefetcher struct {
	radius int
	logger *slog.Logger

	workerOnce sync.Once
	workCh     chan prefetchJob
}

func NewPrefetcher(radius int, logger *slog.Logger) *Prefetcher {
	if radius <= 0 {
		radius = DefaultPrefetchRadius
	}
	return &Prefetcher{
		radius: radius,
		logger: logger,
		workCh: make(chan prefetchJob, 1),
	}
}

// Enqueue schedules cache warming around index in src. Only the newest
// position is kept when the worker is busy.
func (p *Prefetcher) Enqueue(src PairSource, index int) {
	if p == nil || src == nil {
		return
	}
	p.ensureWorker()
	job := prefetchJob{src: src, index: index}
	select {
	case p.workCh <- job:
	default:
		select {
		case <-p.workCh:
		default:
		}
		select {
		case p.workCh <- job:
		default:
		}
	}
}

func (p *Prefetcher) ensureWorker() {
	p.workerOnce.Do(func() {
		go p.runWorker()
	})
}

func (p *Prefetcher) runWorker() {
	for job := range p.workCh {
		p.warm(job)
	}
}

// warm decodes the frames within radius of the job index. Out of range
// offsets are expected near the ends of a video; decode failures are logged
// and left for the interactive path to surface.
func (p *Prefetcher) warm(job prefetchJob) {
	for off := 1; off <= p.radius; off++ {
		for _, idx := range []int{job.index + off, job.index - off} {
			if _, err := job.src.Get(idx); err != nil {
				if errors.Is(err, ErrOutOfRange) {
					continue
				}
				if p.logger != nil {
					p.logger.Warn("prefetch failed", "video", job.src.Name(), "frame", idx, "error", err)
				}
			}
		}
	}
}
