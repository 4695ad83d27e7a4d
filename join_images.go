package main

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"golang.org/x/image/draw"
)

// joinImages lays imgs out left to right on one canvas as tall as the first
// image and returns it after a JPEG round-trip, so the result is a fully
// decoded in-memory copy that can be shared between goroutines.
//
// imgs is consumed: every element is set to nil before returning. Images of a
// different height than the first are drawn as they are.
func joinImages(imgs []image.Image, quality int) (image.Image, error) {
	defer clear(imgs)

	switch len(imgs) {
	case 0:
		return nil, nil
	case 1:
		return freezeImage(imgs[0], quality)
	}

	height := imgs[0].Bounds().Dy()
	width := 0
	for _, img := range imgs {
		width += img.Bounds().Dx()
	}

	joined := image.NewRGBA(image.Rect(0, 0, width, height))
	x := 0
	for _, img := range imgs {
		b := img.Bounds()
		dst := image.Rect(x, 0, x+b.Dx(), b.Dy())
		draw.CatmullRom.Scale(joined, dst, img, b, draw.Over, nil)
		x += b.Dx()
	}

	return freezeImage(joined, quality)
}

func freezeImage(src image.Image, quality int) (image.Image, error) {
	var buf bytes.Buffer
	err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: quality})
	if err != nil {
		return nil, fmt.Errorf("encode joined image: %w", err)
	}

	img, err := jpeg.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode joined image: %w", err)
	}

	return img, nil
}
