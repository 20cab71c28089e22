package main

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"sunrise/internal/core/model"
	"sunrise/internal/core/routine"
	"sunrise/internal/platform"
	"sunrise/internal/storage"
	"sunrise/internal/ui/editor"
	"sunrise/internal/ui/mainwin"
	"sunrise/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "Sunrise"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	if path, err := storage.WriteDefault(appName); err != nil {
		log.Printf("write default routine: %v", err)
	} else {
		log.Printf("routine file: %s", path)
	}

	loaded, err := storage.LoadRoutine(appName)
	if err != nil {
		log.Printf("load routine: %v (using defaults)", err)
	}

	fyneApp := app.NewWithID("com.sunrise.app")
	keeper := routine.New(loaded.Steps, routine.Options{TickInterval: time.Second})
	platformService := platform.NewService()

	openLink := func(link string) {
		parsed, err := url.Parse(link)
		if err != nil || parsed.Scheme == "" {
			log.Printf("skip link %q: not a valid URL", link)
			return
		}
		if err := fyneApp.OpenURL(parsed); err != nil {
			log.Printf("open link: %v", err)
		}
	}

	editorWindow := editor.New(fyneApp, editor.Callbacks{
		OnSave: func(steps []model.Step) {
			keeper.ReplaceSteps(steps)
		},
		OnAutostart: func(enabled bool) {
			if err := applyAutostart(platformService, enabled); err != nil {
				log.Printf("autostart: %v", err)
			}
		},
	})

	desktopApp, hasTray := fyneApp.(desktop.App)

	var mainWindow *mainwin.Window
	quit := func() {
		mainWindow.Teardown()
		keeper.Stop()
		fyneApp.Quit()
	}

	toggleRun := func() {
		if keeper.Snapshot().Running {
			keeper.Pause()
		} else {
			keeper.Start()
		}
	}

	mainWindow = mainwin.New(fyneApp, mainwin.Callbacks{
		OnToggleRun: toggleRun,
		OnNextStep:  keeper.NextStep,
		OnEdit: func() {
			editorWindow.Show(keeper.Steps())
		},
		OnOpenLink: openLink,
		OnClose: func() {
			if hasTray {
				mainWindow.Hide()
				return
			}
			quit()
		},
	})

	var trayManager *tray.Manager
	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShowWindow: mainWindow.Show,
			OnToggleRun:  toggleRun,
			OnNextStep:   keeper.NextStep,
			OnEdit: func() {
				editorWindow.Show(keeper.Steps())
			},
			OnQuit: quit,
		})
	}

	events := keeper.Subscribe(8)
	go func() {
		for event := range events {
			switch event.Type {
			case routine.EventStepEnd:
				fyneApp.SendNotification(fyne.NewNotification(appName,
					fmt.Sprintf("%s is up. Move on when ready.", event.Snapshot.StepName)))
			case routine.EventStepChange:
				if event.Snapshot.StepLink != "" {
					openLink(event.Snapshot.StepLink)
				}
			case routine.EventFinished:
				fyneApp.SendNotification(fyne.NewNotification(appName, "Routine complete. Have a good morning."))
			}
			mainWindow.Apply(event.Snapshot)
			if trayManager != nil {
				trayManager.Apply(event.Snapshot)
			}
		}
	}()

	initial := keeper.Snapshot()
	mainWindow.Apply(initial)
	if trayManager != nil {
		trayManager.Apply(initial)
	}

	mainWindow.Show()
	fyneApp.Run()
}

func applyAutostart(service platform.Service, enabled bool) error {
	if !enabled {
		return service.DisableAutostart(appName)
	}
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}
	return service.EnableAutostart(appName, execPath)
}
