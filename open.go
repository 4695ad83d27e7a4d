package main

import (
	"log"
	"net/url"
	"os/exec"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
)

// openWithDefaultApp runs the configured open command with path appended, or
// hands the file URI to the desktop when none is set.
func openWithDefaultApp(a fyne.App, command []string, path string) error {
	if len(command) > 0 {
		args := append(append([]string{}, command[1:]...), path)
		cmd := exec.Command(command[0], args...)
		if err := cmd.Start(); err != nil {
			return err
		}
		go func() {
			if err := cmd.Wait(); err != nil {
				log.Println("Open command exited:", err)
			}
		}()
		return nil
	}

	u, err := url.Parse(storage.NewFileURI(path).String())
	if err != nil {
		return err
	}
	return a.OpenURL(u)
}
