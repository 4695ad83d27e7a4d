package main

import "fyne.io/fyne/v2"

// GroupContainer renders one duplicate group in the results panel.
type GroupContainer interface {
	fyne.Widget
	Add(*ThumbnailWidget)
	Title() string
	Group() *Group
	Objects() []fyne.CanvasObject
}

func newGroupContainer(viewMode int, title string, group *Group) GroupContainer {
	if viewMode == ViewModeList {
		return newListContainer(title, group)
	}
	return newGridContainer(title, group)
}
