package routine

import (
	"errors"

	"sunrise/internal/core/model"
)

// ErrOutOfRange indicates the sequence has no current step (empty or finished).
var ErrOutOfRange = errors.New("no current step")

// Sequence holds the ordered step list, the cursor for the current step,
// and the derived completion progress. Steps are immutable while part of
// a running sequence; edits replace the whole list.
type Sequence struct {
	steps    []model.Step
	index    int
	finished bool
}

// NewSequence creates a sequence positioned at the first step.
func NewSequence(steps []model.Step) *Sequence {
	return &Sequence{steps: append([]model.Step(nil), steps...)}
}

// CurrentStep returns the step under the cursor.
func (sequence *Sequence) CurrentStep() (model.Step, error) {
	if sequence.finished || sequence.index >= len(sequence.steps) {
		return model.Step{}, ErrOutOfRange
	}
	return sequence.steps[sequence.index], nil
}

// CurrentSeconds returns the planned duration of the current step in
// seconds. It seeds the countdown before the first start and after every
// edit. Returns 0 when there is no current step.
func (sequence *Sequence) CurrentSeconds() int {
	step, err := sequence.CurrentStep()
	if err != nil {
		return 0
	}
	return step.Seconds()
}

// Advance moves the cursor to the next step and returns its planned
// duration in seconds. At the last step it instead marks the sequence
// finished and reports ok=false: the routine is complete and there is no
// further duration to schedule. A finished sequence never advances again.
func (sequence *Sequence) Advance() (int, bool) {
	if sequence.finished {
		return 0, false
	}
	if sequence.index < len(sequence.steps)-1 {
		sequence.index++
		return sequence.steps[sequence.index].Seconds(), true
	}
	sequence.finished = true
	return 0, false
}

// ReplaceAll swaps the step list wholesale: cursor back to the first
// step, finished cleared, progress back to zero. The countdown is not
// touched; the caller re-seeds it from CurrentSeconds.
func (sequence *Sequence) ReplaceAll(steps []model.Step) {
	sequence.steps = append([]model.Step(nil), steps...)
	sequence.index = 0
	sequence.finished = false
}

// Progress reports completion in [0,100], computed from planned
// durations only so overtime never distorts it: the planned seconds of
// all steps strictly before the cursor over the planned total.
func (sequence *Sequence) Progress() float64 {
	if sequence.finished {
		return 100
	}

	var total, before int
	for position, step := range sequence.steps {
		seconds := step.Seconds()
		total += seconds
		if position < sequence.index {
			before += seconds
		}
	}
	if total <= 0 {
		return 0
	}

	progress := float64(before) / float64(total) * 100
	if progress > 100 {
		return 100
	}
	return progress
}

// Steps returns a copy of the step list.
func (sequence *Sequence) Steps() []model.Step {
	return append([]model.Step(nil), sequence.steps...)
}

// Index returns the zero-based cursor position.
func (sequence *Sequence) Index() int {
	return sequence.index
}

// Len returns the number of steps.
func (sequence *Sequence) Len() int {
	return len(sequence.steps)
}

// Finished reports whether the routine has been completed.
func (sequence *Sequence) Finished() bool {
	return sequence.finished
}
