package mainwin

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"sunrise/internal/core/routine"
	"sunrise/internal/ui/pulse"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines main window action handlers.
type Callbacks struct {
	OnToggleRun func()
	OnNextStep  func()
	OnEdit      func()
	OnOpenLink  func(link string)
	OnClose     func()
}

var (
	timerColor    = color.NRGBA{R: 232, G: 190, B: 66, A: 255}
	overtimeColor = color.NRGBA{R: 226, G: 92, B: 62, A: 255}
	stepColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Window is the timer's main view: current step, countdown, aggregate
// progress, running totals, and the session controls.
type Window struct {
	window       fyne.Window
	callbacks    Callbacks
	stepLabel    *canvas.Text
	positionText *widget.Label
	timerLabel   *canvas.Text
	progressBar  *widget.ProgressBar
	totalsLabel  *widget.Label
	runButton    *widget.Button
	nextButton   *widget.Button
	editButton   *widget.Button
	linkButton   *widget.Button
	pulser       *pulse.Engine
	currentLink  string
}

// New creates the main window.
func New(app fyne.App, callbacks Callbacks) *Window {
	window := app.NewWindow("Sunrise")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	stepLabel := canvas.NewText("", stepColor)
	stepLabel.TextStyle = fyne.TextStyle{Bold: true}
	stepLabel.TextSize = 22

	positionText := widget.NewLabel("")

	timerLabel := canvas.NewText("--:--", timerColor)
	timerLabel.TextStyle = fyne.TextStyle{Bold: true}
	timerLabel.TextSize = 52
	timerLabel.Alignment = fyne.TextAlignCenter

	progressBar := widget.NewProgressBar()
	progressBar.Max = 100
	progressBar.TextFormatter = func() string {
		return fmt.Sprintf("%d%%", int(progressBar.Value))
	}

	totalsLabel := widget.NewLabel("")

	runButton := widget.NewButton("Start", nil)
	nextButton := widget.NewButton("Next step", nil)
	editButton := widget.NewButton("Edit routine", nil)
	linkButton := widget.NewButton("Open link", nil)
	linkButton.Hide()

	controls := container.NewHBox(runButton, nextButton, layout.NewSpacer(), linkButton, editButton)
	content := container.NewVBox(
		container.NewHBox(stepLabel, layout.NewSpacer(), positionText),
		container.NewCenter(timerLabel),
		progressBar,
		totalsLabel,
		controls,
	)

	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(460, 280))

	view := &Window{
		window:       window,
		callbacks:    callbacks,
		stepLabel:    stepLabel,
		positionText: positionText,
		timerLabel:   timerLabel,
		progressBar:  progressBar,
		totalsLabel:  totalsLabel,
		runButton:    runButton,
		nextButton:   nextButton,
		editButton:   editButton,
		linkButton:   linkButton,
	}

	view.pulser = pulse.New(600*time.Millisecond, func(visible bool) {
		fyne.Do(func() {
			if visible {
				view.timerLabel.Show()
			} else {
				view.timerLabel.Hide()
			}
			view.timerLabel.Refresh()
		})
	})

	runButton.OnTapped = func() {
		if view.callbacks.OnToggleRun != nil {
			view.callbacks.OnToggleRun()
		}
	}
	nextButton.OnTapped = func() {
		if view.callbacks.OnNextStep != nil {
			view.callbacks.OnNextStep()
		}
	}
	editButton.OnTapped = func() {
		if view.callbacks.OnEdit != nil {
			view.callbacks.OnEdit()
		}
	}
	linkButton.OnTapped = func() {
		if view.callbacks.OnOpenLink != nil && view.currentLink != "" {
			view.callbacks.OnOpenLink(view.currentLink)
		}
	}
	window.SetCloseIntercept(func() {
		if view.callbacks.OnClose != nil {
			view.callbacks.OnClose()
		}
	})

	return view
}

// Show displays the main window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Hide conceals the main window without tearing it down.
func (view *Window) Hide() {
	view.window.Hide()
}

// Apply renders a session snapshot. Safe to call from any goroutine.
func (view *Window) Apply(snapshot routine.Snapshot) {
	fyne.Do(func() {
		view.applyUnsafe(snapshot)
	})

	if snapshot.Overtime && snapshot.Running {
		if !view.pulser.Active() {
			view.pulser.Start(context.Background())
		}
	} else {
		view.pulser.Stop()
	}
}

// Teardown stops the blink loop.
func (view *Window) Teardown() {
	view.pulser.Stop()
}

func (view *Window) applyUnsafe(snapshot routine.Snapshot) {
	view.currentLink = snapshot.StepLink

	switch {
	case snapshot.Finished:
		view.stepLabel.Text = "Routine complete"
		view.positionText.SetText("")
	case snapshot.StepName == "":
		view.stepLabel.Text = "No steps configured"
		view.positionText.SetText("")
	default:
		view.stepLabel.Text = snapshot.StepName
		view.positionText.SetText(fmt.Sprintf("step %d of %d", snapshot.StepIndex+1, snapshot.StepCount))
	}
	view.stepLabel.Refresh()

	view.timerLabel.Text = snapshot.RemainingText
	if snapshot.Overtime {
		view.timerLabel.Color = overtimeColor
	} else {
		view.timerLabel.Color = timerColor
	}
	view.timerLabel.Refresh()

	view.progressBar.SetValue(float64(snapshot.Progress))
	view.totalsLabel.SetText(fmt.Sprintf("elapsed %s / overtime %s", snapshot.ElapsedText, snapshot.OvertimeText))

	if snapshot.Running {
		view.runButton.SetText("Pause")
	} else {
		view.runButton.SetText("Start")
	}
	if snapshot.Finished {
		view.runButton.Disable()
		view.nextButton.Disable()
	} else {
		view.runButton.Enable()
		view.nextButton.Enable()
	}

	if snapshot.StepLink != "" && !snapshot.Finished {
		view.linkButton.Show()
	} else {
		view.linkButton.Hide()
	}
}
