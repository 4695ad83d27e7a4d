package main

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var thumbnailHeightThrottle DebounceDispatcher[int]

func OpenSettingsWindow() {
	settingsWindow := myApp.NewWindow("Settings")
	settingsWindow.Resize(fyne.NewSize(400, 300))

	thumbnailHeightEntry := widget.NewEntry()
	thumbnailHeightEntry.SetText(strconv.Itoa(config.ThumbnailHeight))
	thumbnailHeightEntry.OnChanged = func(text string) {
		h, err := strconv.Atoi(text)
		if err != nil || h <= 0 {
			return
		}
		thumbnailHeightThrottle.Throttle(500*time.Millisecond, func(h int) {
			config.ThumbnailHeight = h
			mainPanel.Reload(config)
		}, h, PriorityIdle, nil)
	}

	searchDelayEntry := widget.NewEntry()
	searchDelayEntry.SetText(config.SearchDelay.String())
	searchDelayEntry.OnChanged = func(text string) {
		d, err := time.ParseDuration(text)
		if err == nil && d >= 0 {
			config.SearchDelay = d
			mainPanel.searchDelay = d
		}
	}

	viewModeSelect := widget.NewSelect([]string{"List", "Grid"}, nil)
	if config.ViewMode == ViewModeList {
		viewModeSelect.Selected = "List"
	} else {
		viewModeSelect.Selected = "Grid"
	}
	viewModeSelect.OnChanged = func(selected string) {
		if selected == "List" {
			config.ViewMode = ViewModeList
		} else {
			config.ViewMode = ViewModeGrid
		}
	}

	refreshButton := widget.NewButton("Refresh", func() {
		mainPanel.Reload(config)
	})

	form := widget.NewForm(
		widget.NewFormItem("Thumbnail height", thumbnailHeightEntry),
		widget.NewFormItem("Search delay", searchDelayEntry),
		widget.NewFormItem("View mode", viewModeSelect),
	)

	settingsWindow.SetContent(container.NewVBox(form, refreshButton))
	settingsWindow.Show()
}
