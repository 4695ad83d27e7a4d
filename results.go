package main

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
	"gopkg.in/yaml.v3"
)

type Results struct {
	Path   string   `yaml:"-"`
	Groups []*Group `yaml:"groups"`
}

type Group struct {
	ID    string  `yaml:"id"`
	Items []*Item `yaml:"items"`
}

type Item struct {
	Path       string        `yaml:"path"`
	Size       int64         `yaml:"size"`
	Duration   time.Duration `yaml:"duration"`
	Thumbnails []string      `yaml:"thumbnails"`
}

var (
	errEmptyItemPath = errors.New("item without path")
	errNoGroups      = errors.New("results contain no duplicate groups")
)

var supportedExtensions = regexp.MustCompile(`^\.(jpg|jpeg|png|webp|bmp)$`)

func loadResults(path string) (*Results, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	results, err := parseResults(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	results.Path = path
	results.resolveThumbnails(filepath.Dir(path))

	return results, nil
}

func parseResults(data []byte) (*Results, error) {
	var results Results
	err := yaml.Unmarshal(data, &results)
	if err != nil {
		return nil, err
	}

	groups := make([]*Group, 0, len(results.Groups))
	for i, g := range results.Groups {
		if g == nil {
			continue
		}
		for _, item := range g.Items {
			if item == nil || item.Path == "" {
				return nil, fmt.Errorf("group %d: %w", i, errEmptyItemPath)
			}
		}
		if len(g.Items) < 2 {
			log.Println("Skipping group", i, "with", len(g.Items), "items")
			continue
		}
		if g.ID == "" {
			g.ID = fmt.Sprint(i)
		}
		groups = append(groups, g)
	}
	if len(groups) == 0 {
		return nil, errNoGroups
	}
	results.Groups = groups

	return &results, nil
}

func (r *Results) resolveThumbnails(base string) {
	for _, g := range r.Groups {
		for _, item := range g.Items {
			for i, t := range item.Thumbnails {
				if !filepath.IsAbs(t) {
					item.Thumbnails[i] = filepath.Join(base, t)
				}
			}
		}
	}
}

// loadStrip decodes the item's frames, scales them to height and joins them
// into one strip.
func loadStrip(item *Item, height int, quality int) (image.Image, error) {
	frames := make([]image.Image, 0, len(item.Thumbnails))
	for _, path := range item.Thumbnails {
		if !IsSupportedExtension(path) {
			log.Println("Unsupported thumbnail:", path)
			continue
		}

		img, err := decodeFrame(path)
		if err != nil {
			return nil, err
		}
		frames = append(frames, getScaled(img, height))
	}

	return joinImages(frames, quality)
}

func decodeFrame(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var img image.Image
	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		img, err = webp.Decode(f)
	case ".bmp":
		img, err = bmp.Decode(f)
	default:
		img, _, err = image.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return img, nil
}

func getScaled(img image.Image, height int) image.Image {
	bounds := img.Bounds()
	if bounds.Dy() == height || bounds.Dy() == 0 {
		return img
	}

	width := max(bounds.Dx()*height/bounds.Dy(), 1)

	scaledSize := image.Rect(0, 0, width, height)
	scaled := image.NewRGBA(scaledSize)
	draw.BiLinear.Scale(scaled, scaledSize, img, bounds, draw.Over, nil)

	return scaled
}

func IsSupportedExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return supportedExtensions.MatchString(ext)
}
