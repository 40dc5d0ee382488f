package dataset

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpen_VideosInFolderOrder(t *testing.T) {
	root := t.TempDir()
	writeVideo(t, root, "walking", 2)
	writeVideo(t, root, "blinking", 1)
	writeVideo(t, root, "talking", 3)

	l, err := Open(root, Options{}, discardLogger())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	want := []string{"blinking", "talking", "walking"}
	got := l.Videos()
	if len(got) != len(want) {
		t.Fatalf("videos=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("videos=%v, want %v", got, want)
		}
	}
	if l.Len() != 3 {
		t.Fatalf("len=%d, want 3", l.Len())
	}
}

func TestOpen_SkipsEmptyVideos(t *testing.T) {
	root := t.TempDir()
	writeVideo(t, root, "full", 2)
	if err := os.MkdirAll(filepath.Join(root, "empty"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	l, err := Open(root, Options{}, discardLogger())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if l.Len() != 1 || l.Videos()[0] != "full" {
		t.Fatalf("videos=%v, want [full]", l.Videos())
	}
}

func TestOpen_FailsWithoutVideos(t *testing.T) {
	t.Run("no folders", func(t *testing.T) {
		if _, err := Open(t.TempDir(), Options{}, discardLogger()); err == nil {
			t.Fatalf("expected error for empty root")
		}
	})
	t.Run("only empty folders", func(t *testing.T) {
		root := t.TempDir()
		if err := os.MkdirAll(filepath.Join(root, "empty"), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if _, err := Open(root, Options{}, discardLogger()); err == nil {
			t.Fatalf("expected error when every video is empty")
		}
	})
	t.Run("missing root", func(t *testing.T) {
		if _, err := Open(filepath.Join(t.TempDir(), "nope"), Options{}, discardLogger()); err == nil {
			t.Fatalf("expected error for missing root")
		}
	})
}

func TestOpen_FailsOnUnpairedFrame(t *testing.T) {
	root := t.TempDir()
	writeVideo(t, root, "good", 1)
	dir := filepath.Join(root, "bad")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeImage(t, filepath.Join(dir, "0001.png"), 8, 6)

	if _, err := Open(root, Options{}, discardLogger()); err == nil {
		t.Fatalf("expected error for unpaired frame")
	}
}

func TestLoader_CollectionLookup(t *testing.T) {
	root := t.TempDir()
	writeVideo(t, root, "a", 1)
	writeVideo(t, root, "b", 2)
	l, err := Open(root, Options{}, discardLogger())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if c := l.Collection(1); c == nil || c.Name() != "b" {
		t.Fatalf("Collection(1)=%v, want b", c.Name())
	}
	if c := l.Collection(-1); c != nil {
		t.Fatalf("Collection(-1) should be nil")
	}
	if c := l.Collection(2); c != nil {
		t.Fatalf("Collection(2) should be nil")
	}
	if _, ok := l.CollectionByName("a"); !ok {
		t.Fatalf("CollectionByName(a) not found")
	}
	if _, ok := l.CollectionByName("zzz"); ok {
		t.Fatalf("CollectionByName(zzz) should miss")
	}
}

func TestLoader_StatsAggregateAcrossVideos(t *testing.T) {
	root := t.TempDir()
	writeVideo(t, root, "a", 1)
	writeVideo(t, root, "b", 1)
	l, err := Open(root, Options{}, discardLogger())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := l.Collection(0).Get(0); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, err := l.Collection(1).Get(0); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s := l.Stats(); s.Decodes != 2 {
		t.Fatalf("decodes=%d, want 2", s.Decodes)
	}
}

func TestDiscover_ToleratesUnpairedFiles(t *testing.T) {
	root := t.TempDir()
	writeVideo(t, root, "vid", 2)
	writeImage(t, filepath.Join(root, "vid", "extra.png"), 8, 6)
	if err := os.WriteFile(filepath.Join(root, "vid", "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	infos, err := Discover(root, Options{})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(infos) != 1 {
		t.Fatalf("infos=%d, want 1", len(infos))
	}
	info := infos[0]
	if info.Name != "vid" || info.Images != 3 || info.Shapes != 2 {
		t.Fatalf("info=%+v, want vid with 3 images and 2 shapes", info)
	}
	if info.Bytes <= 0 {
		t.Fatalf("bytes=%d, want > 0", info.Bytes)
	}
}
