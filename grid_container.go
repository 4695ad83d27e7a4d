package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// GridContainer puts the group behind an expander so it can be collapsed.
type GridContainer struct {
	widget.BaseWidget
	Inner *fyne.Container
	Outer *fyne.Container
	title string
	group *Group
}

func newGridContainer(title string, group *Group) *GridContainer {
	inner := container.New(layout.NewGridLayoutWithColumns(2))
	accordion := widget.NewAccordion(widget.NewAccordionItem(title, inner))
	accordion.Open(0)
	outer := container.NewStack(
		canvas.NewRectangle(color.RGBA{R: 51, G: 51, B: 51, A: 255}),
		container.NewVBox(accordion),
	)

	g := &GridContainer{
		Inner: inner, Outer: outer, title: title, group: group,
	}
	g.ExtendBaseWidget(g)

	return g
}

func (g *GridContainer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(g.Outer)
}

func (g *GridContainer) Add(t *ThumbnailWidget) {
	g.Inner.Add(t)
}

func (g *GridContainer) Title() string {
	return g.title
}

func (g *GridContainer) Group() *Group {
	return g.group
}

func (g *GridContainer) Objects() []fyne.CanvasObject {
	return g.Inner.Objects
}
