package editor

import (
	"fmt"
	"strconv"
	"strings"

	"sunrise/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines editor action handlers.
type Callbacks struct {
	OnSave      func(steps []model.Step)
	OnCancel    func()
	OnAutostart func(enabled bool)
}

// Window is the replace-all routine editor. Rows are edited freely and
// swapped in wholesale on save; there is no in-place diffing.
type Window struct {
	window    fyne.Window
	callbacks Callbacks
	rows      []*stepRow
	rowBox    *fyne.Container
	autostart *widget.Check
}

type stepRow struct {
	name    *widget.Entry
	minutes *widget.Entry
	link    *widget.Entry
	box     *fyne.Container
}

// New creates the routine editor window.
func New(app fyne.App, callbacks Callbacks) *Window {
	window := app.NewWindow("Sunrise Routine")

	editor := &Window{
		window:    window,
		callbacks: callbacks,
		rowBox:    container.NewVBox(),
	}

	header := container.NewGridWithColumns(3,
		widget.NewLabelWithStyle("Step", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Minutes", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Link (optional)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)

	addButton := widget.NewButton("Add step", func() {
		editor.appendRow(model.Step{})
		editor.rowBox.Refresh()
	})

	editor.autostart = widget.NewCheck("Launch at login", func(enabled bool) {
		if editor.callbacks.OnAutostart != nil {
			editor.callbacks.OnAutostart(enabled)
		}
	})

	saveButton := widget.NewButton("Save", editor.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
		if editor.callbacks.OnCancel != nil {
			editor.callbacks.OnCancel()
		}
	})
	buttons := container.NewHBox(addButton, layout.NewSpacer(), saveButton, cancelButton)

	content := container.NewBorder(
		header,
		container.NewVBox(editor.autostart, buttons),
		nil, nil,
		container.NewVScroll(editor.rowBox),
	)
	window.SetContent(content)
	window.Resize(fyne.NewSize(560, 420))

	return editor
}

// Show opens the editor prefilled with the given steps.
func (editor *Window) Show(steps []model.Step) {
	editor.rows = nil
	editor.rowBox.RemoveAll()
	for _, step := range steps {
		editor.appendRow(step)
	}
	if len(editor.rows) == 0 {
		editor.appendRow(model.Step{})
	}
	editor.rowBox.Refresh()
	editor.window.Show()
	editor.window.RequestFocus()
}

func (editor *Window) appendRow(step model.Step) {
	row := &stepRow{
		name:    widget.NewEntry(),
		minutes: widget.NewEntry(),
		link:    widget.NewEntry(),
	}
	row.name.SetText(step.Name)
	if step.Duration > 0 {
		row.minutes.SetText(formatMinutes(step.Duration))
	}
	row.link.SetText(step.Link)
	row.name.SetPlaceHolder("Step name")
	row.minutes.SetPlaceHolder("5")
	row.link.SetPlaceHolder("https://")

	removeButton := widget.NewButton("Remove", func() {
		editor.removeRow(row)
	})
	row.box = container.NewGridWithColumns(4, row.name, row.minutes, row.link, removeButton)

	editor.rows = append(editor.rows, row)
	editor.rowBox.Add(row.box)
}

func (editor *Window) removeRow(target *stepRow) {
	for position, row := range editor.rows {
		if row == target {
			editor.rows = append(editor.rows[:position], editor.rows[position+1:]...)
			editor.rowBox.Remove(row.box)
			editor.rowBox.Refresh()
			return
		}
	}
}

func (editor *Window) handleSave() {
	var steps []model.Step
	for _, row := range editor.rows {
		step, ok := stepFromInput(row.name.Text, row.minutes.Text, row.link.Text)
		if !ok {
			continue
		}
		steps = append(steps, step)
	}

	editor.window.Hide()
	if editor.callbacks.OnSave != nil {
		editor.callbacks.OnSave(model.SanitizeSteps(steps))
	}
}

// stepFromInput builds a step from one editor row. Rows whose name is
// empty after trimming are dropped rather than saved as nameless steps.
func stepFromInput(name, minutes, link string) (model.Step, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Step{}, false
	}
	return model.Step{
		Name:     name,
		Duration: parseMinutes(minutes),
		Link:     link,
	}, true
}

// parseMinutes is forgiving: anything that does not parse as a positive
// number becomes zero, matching the edit-boundary policy of the core.
func parseMinutes(value string) float64 {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed <= 0 {
		return 0
	}
	return parsed
}

func formatMinutes(minutes float64) string {
	if minutes == float64(int(minutes)) {
		return strconv.Itoa(int(minutes))
	}
	return fmt.Sprintf("%g", minutes)
}
