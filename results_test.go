package main

import (
	"errors"
	"flag"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleResults = `
groups:
  - id: trailer
    items:
      - path: /videos/trailer.mp4
        size: 1048576
        duration: 1m30s
        thumbnails: [frames/t1.png, frames/t2.png]
      - path: /videos/copy/trailer (1).mp4
        size: 1048000
        duration: 1m30s
  - items:
      - path: /videos/lonely.mp4
  - items:
      - path: /videos/ep10.mkv
      - path: /videos/ep10-dup.mkv
`

func TestParseResults(t *testing.T) {
	results, err := parseResults([]byte(sampleResults))
	if err != nil {
		t.Fatal(err)
	}

	if len(results.Groups) != 2 {
		t.Fatalf("got %d groups, want 2 after dropping the single-item group", len(results.Groups))
	}
	first := results.Groups[0]
	if first.ID != "trailer" {
		t.Errorf("ID = %q", first.ID)
	}
	if first.Items[0].Duration != 90*time.Second {
		t.Errorf("Duration = %v, want 1m30s", first.Items[0].Duration)
	}
	if results.Groups[1].ID != "2" {
		t.Errorf("generated ID = %q, want index 2", results.Groups[1].ID)
	}
}

func TestParseResultsErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"no groups", "groups: []\n", errNoGroups},
		{"only singles", "groups:\n  - items:\n      - path: a.mp4\n", errNoGroups},
		{"empty path", "groups:\n  - items:\n      - path: a.mp4\n      - size: 3\n", errEmptyItemPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseResults([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func writePNG(t testing.TB, path string, w, h int, c color.Color) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestLoadResultsResolvesThumbnails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.yaml")
	if err := os.WriteFile(path, []byte(sampleResults), 0o644); err != nil {
		t.Fatal(err)
	}

	results, err := loadResults(path)
	if err != nil {
		t.Fatal(err)
	}

	want := filepath.Join(dir, "frames", "t1.png")
	if got := results.Groups[0].Items[0].Thumbnails[0]; got != want {
		t.Errorf("thumbnail = %q, want %q", got, want)
	}
	if results.Path != path {
		t.Errorf("Path = %q", results.Path)
	}
}

func TestLoadResultsMissingFile(t *testing.T) {
	if _, err := loadResults(filepath.Join(t.TempDir(), "nope.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want not-exist", err)
	}
}

func TestLoadStrip(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.png")
	b := filepath.Join(dir, "b.png")
	writePNG(t, a, 20, 10, color.White)
	writePNG(t, b, 40, 20, color.Black)

	item := &Item{Path: "/videos/a.mp4", Thumbnails: []string{a, b, filepath.Join(dir, "notes.txt")}}
	strip, err := loadStrip(item, 10, 90)
	if err != nil {
		t.Fatal(err)
	}

	if bounds := strip.Bounds(); bounds.Dx() != 40 || bounds.Dy() != 10 {
		t.Errorf("strip is %dx%d, want 40x10", bounds.Dx(), bounds.Dy())
	}
}

func TestLoadStripWithoutThumbnails(t *testing.T) {
	strip, err := loadStrip(&Item{Path: "/videos/a.mp4"}, 10, 90)
	if err != nil {
		t.Fatal(err)
	}
	if strip != nil {
		t.Error("expected no strip for an item without thumbnails")
	}
}

func TestStripLoaderCaches(t *testing.T) {
	dir := t.TempDir()
	frame := filepath.Join(dir, "f.png")
	writePNG(t, frame, 16, 16, color.White)

	l := newStripLoader(defaultConfig())
	item := &Item{Path: "/videos/a.mp4", Thumbnails: []string{frame}}
	if _, err := l.Load(item); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(frame); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Load(item); err != nil {
		t.Errorf("second load should come from cache: %v", err)
	}
	if l.Cache.Len() != 1 {
		t.Errorf("cache holds %d strips, want 1", l.Cache.Len())
	}
}

func TestGetScaled(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 160, 90))
	scaled := getScaled(img, 45)
	if b := scaled.Bounds(); b.Dx() != 80 || b.Dy() != 45 {
		t.Errorf("scaled to %dx%d, want 80x45", b.Dx(), b.Dy())
	}
	if getScaled(img, 90) != image.Image(img) {
		t.Error("image already at height should be returned as is")
	}
}

func TestIsSupportedExtension(t *testing.T) {
	for path, want := range map[string]bool{
		"a.JPG":      true,
		"a.webp":     true,
		"a.bmp":      true,
		"a.mp4":      false,
		"a.pngx":     false,
		"noext":      false,
		"dir.png/a.": false,
	} {
		if got := IsSupportedExtension(path); got != want {
			t.Errorf("IsSupportedExtension(%q) = %v, want %v", path, got, want)
		}
	}
}

var resultsFlag = flag.String("results", "", "Results file to load")

func BenchmarkLoadResults(b *testing.B) {
	if *resultsFlag == "" {
		b.Skip("no -results file given")
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := loadResults(*resultsFlag); err != nil {
			b.Fatal(err)
		}
	}
}
