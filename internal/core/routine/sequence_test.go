package routine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sunrise/internal/core/model"
)

func threeEqualSteps() []model.Step {
	return []model.Step{
		{Name: "Stretch", Duration: 1},
		{Name: "Hydrate", Duration: 1},
		{Name: "Shower", Duration: 1},
	}
}

func TestSequenceAdvanceThroughThreeEqualSteps(t *testing.T) {
	sequence := NewSequence(threeEqualSteps())

	step, err := sequence.CurrentStep()
	require.NoError(t, err)
	assert.Equal(t, "Stretch", step.Name)
	assert.Equal(t, 60, sequence.CurrentSeconds())
	assert.Equal(t, 0.0, sequence.Progress())

	seconds, ok := sequence.Advance()
	require.True(t, ok)
	assert.Equal(t, 60, seconds)
	assert.Equal(t, 1, sequence.Index())

	seconds, ok = sequence.Advance()
	require.True(t, ok)
	assert.Equal(t, 60, seconds)
	assert.Equal(t, 2, sequence.Index())
	assert.Equal(t, 66, int(sequence.Progress()))
	assert.False(t, sequence.Finished())

	_, ok = sequence.Advance()
	assert.False(t, ok)
	assert.True(t, sequence.Finished())
	assert.Equal(t, 100.0, sequence.Progress())
}

func TestSequenceProgressMonotonic(t *testing.T) {
	sequence := NewSequence([]model.Step{
		{Name: "a", Duration: 2},
		{Name: "b", Duration: 0.5},
		{Name: "c", Duration: 7},
		{Name: "d", Duration: 1},
	})

	previous := sequence.Progress()
	for {
		_, ok := sequence.Advance()
		current := sequence.Progress()
		assert.GreaterOrEqual(t, current, previous)
		previous = current
		if !ok {
			break
		}
	}
	assert.Equal(t, 100.0, sequence.Progress())
}

func TestSequenceFinishedStaysTerminal(t *testing.T) {
	sequence := NewSequence([]model.Step{{Name: "only", Duration: 1}})

	_, ok := sequence.Advance()
	require.False(t, ok)
	require.True(t, sequence.Finished())

	// No further duration is ever yielded.
	for i := 0; i < 3; i++ {
		seconds, ok := sequence.Advance()
		assert.False(t, ok)
		assert.Equal(t, 0, seconds)
	}

	_, err := sequence.CurrentStep()
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSequenceEmptyList(t *testing.T) {
	sequence := NewSequence(nil)

	_, err := sequence.CurrentStep()
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, 0, sequence.CurrentSeconds())
	assert.Equal(t, 0.0, sequence.Progress())
}

func TestSequenceReplaceAllResetsCursor(t *testing.T) {
	sequence := NewSequence(threeEqualSteps())
	sequence.Advance()
	sequence.Advance()
	sequence.Advance()
	require.True(t, sequence.Finished())

	sequence.ReplaceAll([]model.Step{
		{Name: "Coffee", Duration: 3, Link: "https://example.com/brew"},
		{Name: "Journal", Duration: 10},
	})

	assert.Equal(t, 0, sequence.Index())
	assert.False(t, sequence.Finished())
	assert.Equal(t, 0.0, sequence.Progress())
	assert.Equal(t, 180, sequence.CurrentSeconds())

	step, err := sequence.CurrentStep()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/brew", step.Link)
}

func TestSequenceFractionalMinutes(t *testing.T) {
	sequence := NewSequence([]model.Step{{Name: "rinse", Duration: 0.5}})
	assert.Equal(t, 30, sequence.CurrentSeconds())
}

func TestSequenceProgressIgnoresZeroDurations(t *testing.T) {
	// A sanitized invalid step contributes nothing to the total.
	sequence := NewSequence([]model.Step{
		{Name: "a", Duration: 1},
		{Name: "b", Duration: 0},
		{Name: "c", Duration: 1},
	})

	sequence.Advance()
	assert.Equal(t, 50, int(sequence.Progress()))
	sequence.Advance()
	assert.Equal(t, 50, int(sequence.Progress()))
}

func TestSequenceAllZeroDurations(t *testing.T) {
	sequence := NewSequence([]model.Step{
		{Name: "a", Duration: 0},
		{Name: "b", Duration: 0},
	})

	assert.Equal(t, 0.0, sequence.Progress())
	sequence.Advance()
	assert.Equal(t, 0.0, sequence.Progress())
	sequence.Advance()
	assert.Equal(t, 100.0, sequence.Progress())
}
