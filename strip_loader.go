package main

import (
	"context"
	"fmt"
	"image"
	"log"

	"golang.org/x/sync/errgroup"
)

// StripLoader is not modified once LoadAll runs; a different height or
// quality gets a new loader.
type StripLoader struct {
	Cache   *StripCache
	Height  int
	Quality int
	Workers int
}

func newStripLoader(config *Config) *StripLoader {
	return &StripLoader{
		Cache:   NewStripCache(config.CacheLimit),
		Height:  config.ThumbnailHeight,
		Quality: config.JPEGQuality,
		Workers: config.Workers,
	}
}

func (l *StripLoader) key(item *Item) string {
	return fmt.Sprintf("%s@%d", item.Path, l.Height)
}

// Load returns the item's strip, nil when it has no usable thumbnails.
func (l *StripLoader) Load(item *Item) (image.Image, error) {
	key := l.key(item)
	if img, ok := l.Cache.Get(key); ok {
		return img, nil
	}

	img, err := loadStrip(item, l.Height, l.Quality)
	if err != nil {
		return nil, err
	}
	if img != nil {
		l.Cache.Add(key, img)
	}

	return img, nil
}

// LoadAll loads strips on at most Workers goroutines and reports each one to
// onLoaded from the worker goroutine. Items that fail are logged and skipped.
func (l *StripLoader) LoadAll(ctx context.Context, items []*Item, onLoaded func(*Item, image.Image)) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(l.Workers, 1))

	for _, item := range items {
		item := item
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			img, err := l.Load(item)
			if err != nil {
				log.Println("An error occurred while loading thumbnails for", item.Path+":", err)
				return nil
			}
			onLoaded(item, img)
			return nil
		})
	}

	return g.Wait()
}
