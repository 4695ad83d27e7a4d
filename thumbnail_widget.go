package main

import (
	"fmt"
	"image"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"
)

// ThumbnailWidget shows one file of a duplicate group: its frame strip above
// a caption.
type ThumbnailWidget struct {
	widget.BaseWidget
	Image    *canvas.Image
	Caption  *widget.Label
	OnTapped func()
	Item     *Item
}

func (t *ThumbnailWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, t.Caption, nil, nil, t.Image))
}

func (t *ThumbnailWidget) Tapped(_ *fyne.PointEvent) {
	if t.OnTapped != nil {
		t.OnTapped()
	}
}

func (t *ThumbnailWidget) SetStrip(img image.Image) {
	t.Image.Image = img
	if img != nil {
		b := img.Bounds()
		t.Image.SetMinSize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	}
	t.Image.Refresh()
}

func newThumbnail(item *Item, height int, open func(string)) *ThumbnailWidget {
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(float32(height), float32(height)))

	t := &ThumbnailWidget{
		Image:   img,
		Caption: widget.NewLabel(caption(item)),
		OnTapped: func() {
			if open != nil {
				open(item.Path)
			}
		},
		Item: item,
	}
	t.Caption.Truncation = fyne.TextTruncateEllipsis
	t.ExtendBaseWidget(t)
	return t
}

func caption(item *Item) string {
	return fmt.Sprintf("%s  %s  %s", filepath.Base(item.Path), humanize.IBytes(uint64(max(item.Size, 0))), item.Duration)
}
