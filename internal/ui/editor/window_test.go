package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMinutes(t *testing.T) {
	assert.Equal(t, 5.0, parseMinutes("5"))
	assert.Equal(t, 2.5, parseMinutes("2.5"))
	assert.Equal(t, 0.0, parseMinutes("abc"))
	assert.Equal(t, 0.0, parseMinutes("-3"))
	assert.Equal(t, 0.0, parseMinutes(""))
}

func TestStepFromInput(t *testing.T) {
	step, ok := stepFromInput("  Shower  ", "5", "https://example.com")
	assert.True(t, ok)
	assert.Equal(t, "Shower", step.Name)
	assert.Equal(t, 5.0, step.Duration)
	assert.Equal(t, "https://example.com", step.Link)

	_, ok = stepFromInput("", "5", "")
	assert.False(t, ok)

	_, ok = stepFromInput("   ", "5", "")
	assert.False(t, ok)

	_, ok = stepFromInput("\t \n", "5", "")
	assert.False(t, ok)
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "5", formatMinutes(5))
	assert.Equal(t, "2.5", formatMinutes(2.5))
	assert.Equal(t, "0.75", formatMinutes(0.75))
}
