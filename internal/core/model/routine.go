package model

import (
	"math"
	"strings"
)

// Step is one named activity of the morning routine.
type Step struct {
	Name     string
	Duration float64 // planned minutes, fractional allowed
	Link     string
}

// Seconds converts the planned duration to whole seconds.
// Conversion happens once, at seed time; the countdown works in
// integer seconds from there on.
func (step Step) Seconds() int {
	if step.Duration <= 0 || math.IsNaN(step.Duration) || math.IsInf(step.Duration, 0) {
		return 0
	}
	return int(math.Round(step.Duration * 60))
}

// Routine is the ordered step list supplied at session start.
type Routine struct {
	Steps []Step
}

// SanitizeSteps normalizes edited step input. Names are trimmed and
// invalid durations coerce to zero rather than rejected; callers that
// need strict validation should filter before handing steps over.
func SanitizeSteps(steps []Step) []Step {
	sanitized := make([]Step, 0, len(steps))
	for _, step := range steps {
		step.Name = strings.TrimSpace(step.Name)
		step.Link = strings.TrimSpace(step.Link)
		if step.Duration <= 0 || math.IsNaN(step.Duration) || math.IsInf(step.Duration, 0) {
			step.Duration = 0
		}
		sanitized = append(sanitized, step)
	}
	return sanitized
}

// DefaultRoutine returns the built-in morning routine.
func DefaultRoutine() Routine {
	return Routine{
		Steps: []Step{
			{Name: "Wake up & stretch", Duration: 5},
			{Name: "Hydrate", Duration: 2},
			{Name: "Shower", Duration: 10},
			{Name: "Get dressed", Duration: 5},
			{Name: "Breakfast", Duration: 15},
			{Name: "Headlines", Duration: 5, Link: "https://news.ycombinator.com"},
			{Name: "Plan the day", Duration: 5},
		},
	}
}
