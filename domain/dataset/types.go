package dataset

import (
	"errors"
	"image"

	"github.com/JeanKossaifi/videobrowser/domain/landmarks"
)

// ErrOutOfRange reports a frame index outside [0, Len).
var ErrOutOfRange = errors.New("frame index out of range")

// DefaultCacheSize bounds the per-collection decoded frame cache.
const DefaultCacheSize = 64

// FramePair is one decoded video frame and its landmark annotation.
// Pairs are read-only once loaded.
type FramePair struct {
	Image image.Image
	Shape landmarks.Shape
}

// Options controls how collections locate and decode frame pairs.
type Options struct {
	ImageExt  string // frame file extension, default ".png"
	ShapeExt  string // annotation file extension, default ".pts"
	Grayscale bool   // convert frames to gray levels on decode
	CacheSize int    // decoded pair cache entries, default DefaultCacheSize
}

// withDefaults fills zero-valued fields.
func (o Options) withDefaults() Options {
	if o.ImageExt == "" {
		o.ImageExt = ".png"
	}
	if o.ShapeExt == "" {
		o.ShapeExt = ".pts"
	}
	if o.CacheSize <= 0 {
		o.CacheSize = DefaultCacheSize
	}
	return o
}

// VideoInfo summarises one video folder without decoding any frames.
type VideoInfo struct {
	Name   string
	Images int   // frame image files found
	Shapes int   // annotation files found
	Bytes  int64 // total size of frames and annotations on disk
}

// PairSource provides read-only access to one video's frame pairs. It is
// the surface presenters navigate against.
type PairSource interface {
	Len() int
	Name() string
	Get(index int) (*FramePair, error)
	FrameName(index int) string
}
