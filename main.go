package main

import (
	"flag"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const appTitle = "Video Duplicate Finder"

var (
	myApp     fyne.App
	myWindow  fyne.Window
	mainPanel *MainPanel
	config    *Config
)

func main() {
	flag.Parse()

	config = loadConfig()

	myApp = app.NewWithID("io.tennoio.videoduplicatefinder")
	myWindow = myApp.NewWindow(appTitle)

	mainPanel = newMainPanel(config, func(path string) {
		if err := openWithDefaultApp(myApp, config.OpenCommand, path); err != nil {
			dialog.ShowError(err, myWindow)
		}
	})
	mainPanel.OnLoading = func(loading bool) {
		if loading {
			myWindow.SetTitle("Loading - " + appTitle)
		} else {
			myWindow.SetTitle(appTitle)
		}
	}

	searchEntry := widget.NewEntry()
	searchEntry.SetPlaceHolder("Search paths...")
	searchEntry.OnChanged = mainPanel.Search

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu("File",
			fyne.NewMenuItem("Open Results", func() {
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil {
						dialog.ShowError(err, myWindow)
						return
					}
					if reader == nil {
						return
					}
					reader.Close()
					openResults(reader.URI().Path())
				}, myWindow)
				d.SetFilter(storage.NewExtensionFileFilter([]string{".yaml", ".yml"}))
				d.Show()
			}),
			fyne.NewMenuItem("Settings", OpenSettingsWindow),
		),
		fyne.NewMenu("View",
			fyne.NewMenuItem("Expand All", func() { mainPanel.ExpandAll(true) }),
			fyne.NewMenuItem("Collapse All", func() { mainPanel.ExpandAll(false) }),
		),
	)
	myWindow.SetMainMenu(mainMenu)

	content := container.NewBorder(searchEntry, nil, nil, nil, container.NewVScroll(mainPanel.Content()))
	myWindow.SetContent(content)
	myWindow.Resize(fyne.NewSize(1000, 700))

	if flag.NArg() > 0 {
		openResults(flag.Arg(0))
	}

	myWindow.ShowAndRun()
}

func openResults(path string) {
	results, err := loadResults(path)
	if err != nil {
		log.Println("Error loading results:", err)
		dialog.ShowError(err, myWindow)
		return
	}
	mainPanel.Update(results)
}
