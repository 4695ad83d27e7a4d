package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ListContainer lays the group out as one scrolling row with no expander.
type ListContainer struct {
	widget.BaseWidget
	Inner *fyne.Container
	Outer *fyne.Container
	title string
	group *Group
}

func newListContainer(title string, group *Group) *ListContainer {
	inner := container.NewHBox()
	outer := container.NewStack(
		canvas.NewRectangle(color.RGBA{R: 51, G: 51, B: 51, A: 255}),
		container.NewVBox(
			widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			container.NewHScroll(inner),
		),
	)

	l := &ListContainer{
		Inner: inner, Outer: outer, title: title, group: group,
	}
	l.ExtendBaseWidget(l)

	return l
}

func (l *ListContainer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(l.Outer)
}

func (l *ListContainer) Add(t *ThumbnailWidget) {
	l.Inner.Add(t)
}

func (l *ListContainer) Title() string {
	return l.title
}

func (l *ListContainer) Group() *Group {
	return l.group
}

func (l *ListContainer) Objects() []fyne.CanvasObject {
	return l.Inner.Objects
}
