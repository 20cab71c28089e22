package tray

import (
	"fmt"

	"sunrise/internal/core/routine"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowWindow func()
	OnToggleRun  func()
	OnNextStep   func()
	OnEdit       func()
	OnQuit       func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	statusItem *fyne.MenuItem
	runItem    *fyne.MenuItem
	nextItem   *fyne.MenuItem
	callbacks  Callbacks
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	manager.runItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggleRun != nil {
			manager.callbacks.OnToggleRun()
		}
	})

	manager.nextItem = fyne.NewMenuItem("Next step", func() {
		if manager.callbacks.OnNextStep != nil {
			manager.callbacks.OnNextStep()
		}
	})

	app.SetSystemTrayMenu(manager.buildMenu())
	return manager
}

// Apply refreshes the tray from a session snapshot.
func (manager *Manager) Apply(snapshot routine.Snapshot) {
	switch {
	case snapshot.Finished:
		manager.statusItem.Label = "Status: routine complete"
	case snapshot.StepName == "":
		manager.statusItem.Label = "Status: no steps configured"
	case snapshot.Running:
		manager.statusItem.Label = fmt.Sprintf("Status: %s %s", snapshot.StepName, snapshot.RemainingText)
	default:
		manager.statusItem.Label = fmt.Sprintf("Status: %s (paused)", snapshot.StepName)
	}

	if snapshot.Running {
		manager.runItem.Label = "Pause"
	} else {
		manager.runItem.Label = "Start"
	}
	manager.runItem.Disabled = snapshot.Finished
	manager.nextItem.Disabled = snapshot.Finished

	manager.refreshMenu()
}

func (manager *Manager) buildMenu() *fyne.Menu {
	return fyne.NewMenu("Sunrise",
		manager.statusItem,
		fyne.NewMenuItem("Show timer", func() {
			if manager.callbacks.OnShowWindow != nil {
				manager.callbacks.OnShowWindow()
			}
		}),
		manager.runItem,
		manager.nextItem,
		fyne.NewMenuItem("Edit routine", func() {
			if manager.callbacks.OnEdit != nil {
				manager.callbacks.OnEdit()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.buildMenu())
	}
}
