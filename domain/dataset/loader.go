package dataset

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Loader owns the video identifier to collection mapping for one dataset
// root. It is built once by Open and immutable afterwards.
type Loader struct {
	root  string
	names []string
	colls map[string]*Collection
	stats *counters
}

// Open discovers the video folders under root and builds one collection per
// video. Folders are validated concurrently; any unreadable file or unpaired
// frame fails the whole load. Videos without a single frame pair are skipped
// with a warning, matching how annotation dumps often carry empty folders.
func Open(root string, opts Options, logger *slog.Logger) (*Loader, error) {
	opts = opts.withDefaults()
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("open dataset root: %w", err)
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("no video folders under %s", root)
	}

	stats := &counters{}
	colls := make([]*Collection, len(dirs))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, name := range dirs {
		g.Go(func() error {
			c, err := newCollection(name, filepath.Join(root, name), opts, stats)
			if err != nil {
				return err
			}
			colls[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	l := &Loader{root: root, colls: make(map[string]*Collection), stats: stats}
	for _, c := range colls {
		if c.Len() == 0 {
			if logger != nil {
				logger.Warn("skipping empty video", "video", c.Name())
			}
			continue
		}
		l.names = append(l.names, c.Name())
		l.colls[c.Name()] = c
	}
	if len(l.names) == 0 {
		return nil, fmt.Errorf("no video folders with frame pairs under %s", root)
	}
	return l, nil
}

// Len returns the number of loaded videos.
func (l *Loader) Len() int {
	if l == nil {
		return 0
	}
	return len(l.names)
}

// Videos returns the loaded video identifiers in display order.
func (l *Loader) Videos() []string {
	if l == nil {
		return nil
	}
	return slices.Clone(l.names)
}

// Collection returns the collection at the given video index, or nil when
// the index is out of range.
func (l *Loader) Collection(index int) *Collection {
	if l == nil || index < 0 || index >= len(l.names) {
		return nil
	}
	return l.colls[l.names[index]]
}

// CollectionByName retrieves a collection by its video identifier.
func (l *Loader) CollectionByName(name string) (*Collection, bool) {
	if l == nil {
		return nil, false
	}
	c, ok := l.colls[name]
	return c, ok
}

// Stats returns a snapshot of decode and cache counters across all
// collections.
func (l *Loader) Stats() Stats {
	if l == nil || l.stats == nil {
		return Stats{}
	}
	return l.stats.snapshot()
}

// Discover summarises the video folders under root without decoding
// anything. Unlike Open it tolerates unpaired files, so listings still work
// on datasets that would fail to load.
func Discover(root string, opts Options) ([]VideoInfo, error) {
	opts = opts.withDefaults()
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("open dataset root: %w", err)
	}
	var infos []VideoInfo
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		info := VideoInfo{Name: e.Name()}
		files, err := os.ReadDir(filepath.Join(root, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("video %s: %w", e.Name(), err)
		}
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			ext := filepath.Ext(f.Name())
			switch {
			case strings.EqualFold(ext, opts.ImageExt):
				info.Images++
			case strings.EqualFold(ext, opts.ShapeExt):
				info.Shapes++
			default:
				continue
			}
			if fi, err := f.Info(); err == nil {
				info.Bytes += fi.Size()
			}
		}
		infos = append(infos, info)
	}
	return infos, nil
}
