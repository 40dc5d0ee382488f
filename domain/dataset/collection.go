package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/JeanKossaifi/videobrowser/domain/landmarks"
)

// frameRef locates one frame pair on disk. Decoding happens on demand.
type frameRef struct {
	name      string // frame basename without extension
	imagePath string
	shapePath string
}

// Collection is the ordered sequence of frame pairs for a single video.
// Frames are decoded lazily on Get and kept in a bounded LRU cache, so
// repeated navigation over the same frames does not touch the disk again.
// Collections are read-only once built.
type Collection struct {
	name   string
	frames []frameRef
	opts   Options
	cache  *lru.Cache[int, *FramePair]
	stats  *counters
}

// newCollection scans dir for frame images and their matching annotations.
// Every image must have an annotation with the same basename and vice versa;
// any unpaired file fails construction.
func newCollection(name, dir string, opts Options, stats *counters) (*Collection, error) {
	opts = opts.withDefaults()
	frames, err := pairFrames(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", name, err)
	}
	cache, err := lru.New[int, *FramePair](opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", name, err)
	}
	if stats == nil {
		stats = &counters{}
	}
	return &Collection{name: name, frames: frames, opts: opts, cache: cache, stats: stats}, nil
}

// Len returns the number of frame pairs.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.frames)
}

// Name returns the video identifier this collection belongs to.
func (c *Collection) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// FrameName returns the frame basename for display, or "" when index is out
// of range.
func (c *Collection) FrameName(index int) string {
	if c == nil || index < 0 || index >= len(c.frames) {
		return ""
	}
	return c.frames[index].name
}

// Get returns the frame pair at index, decoding it if it is not cached.
// An index outside [0, Len) fails with an error wrapping ErrOutOfRange.
func (c *Collection) Get(index int) (*FramePair, error) {
	if c == nil || index < 0 || index >= len(c.frames) {
		return nil, fmt.Errorf("%s[%d]: %w", c.Name(), index, ErrOutOfRange)
	}
	if pair, ok := c.cache.Get(index); ok {
		c.stats.recordHit()
		return pair, nil
	}
	ref := c.frames[index]
	start := time.Now()
	img, err := imaging.Open(ref.imagePath)
	if err != nil {
		return nil, fmt.Errorf("frame %s: %w", ref.name, err)
	}
	if c.opts.Grayscale {
		img = imaging.Grayscale(img)
	}
	shape, err := landmarks.ReadShape(ref.shapePath)
	if err != nil {
		return nil, fmt.Errorf("frame %s: %w", ref.name, err)
	}
	c.stats.recordDecode(time.Since(start))
	pair := &FramePair{Image: img, Shape: shape}
	c.cache.Add(index, pair)
	return pair, nil
}

// pairFrames lists dir and pairs frame images with their annotations by
// basename. Entries are already sorted by os.ReadDir, which fixes the frame
// order.
func pairFrames(dir string, opts Options) ([]frameRef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	shapes := make(map[string]string) // basename -> filename
	var frames []frameRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := filepath.Ext(name)
		base := strings.TrimSuffix(name, ext)
		switch {
		case strings.EqualFold(ext, opts.ShapeExt):
			shapes[base] = name
		case strings.EqualFold(ext, opts.ImageExt):
			frames = append(frames, frameRef{name: base, imagePath: filepath.Join(dir, name)})
		}
	}
	for i := range frames {
		shapeName, ok := shapes[frames[i].name]
		if !ok {
			return nil, fmt.Errorf("frame %s has no %s annotation", frames[i].name, opts.ShapeExt)
		}
		frames[i].shapePath = filepath.Join(dir, shapeName)
		delete(shapes, frames[i].name)
	}
	for base := range shapes {
		return nil, fmt.Errorf("annotation %s%s has no %s frame", base, opts.ShapeExt, opts.ImageExt)
	}
	return frames, nil
}
