package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepSeconds(t *testing.T) {
	assert.Equal(t, 60, Step{Duration: 1}.Seconds())
	assert.Equal(t, 30, Step{Duration: 0.5}.Seconds())
	assert.Equal(t, 90, Step{Duration: 1.5}.Seconds())
	assert.Equal(t, 0, Step{Duration: 0}.Seconds())
	assert.Equal(t, 0, Step{Duration: -2}.Seconds())
	assert.Equal(t, 0, Step{Duration: math.NaN()}.Seconds())
}

func TestSanitizeSteps(t *testing.T) {
	steps := SanitizeSteps([]Step{
		{Name: "  Shower ", Duration: 10, Link: " https://example.com "},
		{Name: "Broken", Duration: -1},
		{Name: "Also broken", Duration: math.Inf(1)},
	})

	assert.Equal(t, "Shower", steps[0].Name)
	assert.Equal(t, "https://example.com", steps[0].Link)
	assert.Equal(t, 10.0, steps[0].Duration)
	assert.Equal(t, 0.0, steps[1].Duration)
	assert.Equal(t, 0.0, steps[2].Duration)
}

func TestDefaultRoutineIsUsable(t *testing.T) {
	routine := DefaultRoutine()
	assert.NotEmpty(t, routine.Steps)
	for _, step := range routine.Steps {
		assert.NotEmpty(t, step.Name)
		assert.Greater(t, step.Seconds(), 0)
	}
}
