package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
	"fyne.io/fyne/v2/widget"
)

// findObjects returns every descendant of root whose type is T, depth-first
// in pre-order. Widgets are walked through their renderers, which are created
// on demand.
func findObjects[T any](root fyne.CanvasObject) []T {
	objects := []T{}
	if root == nil {
		return objects
	}

	driver.WalkCompleteObjectTree(root,
		func(o fyne.CanvasObject, _, _ fyne.Position, _ fyne.Size) bool {
			if o == root {
				return false
			}
			if match, ok := o.(T); ok {
				objects = append(objects, match)
			}
			return false
		},
		nil,
	)

	return objects
}

// toggleExpanders opens or closes every accordion under root. An accordion
// that is not MultiOpen can show one item at a time, so expanding it opens
// its first item unless one is already open.
func toggleExpanders(root fyne.CanvasObject, expand bool) {
	for _, a := range findObjects[*widget.Accordion](root) {
		open := 0
		for _, item := range a.Items {
			if item.Open {
				open++
			}
		}

		switch {
		case !expand:
			if open > 0 {
				a.CloseAll()
			}
		case a.MultiOpen:
			if open < len(a.Items) {
				a.OpenAll()
			}
		case open == 0 && len(a.Items) > 0:
			a.Open(0)
		}
	}
}
