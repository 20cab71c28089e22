package pulse

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type toggleRecorder struct {
	mu     sync.Mutex
	states []bool
}

func (recorder *toggleRecorder) record(visible bool) {
	recorder.mu.Lock()
	recorder.states = append(recorder.states, visible)
	recorder.mu.Unlock()
}

func (recorder *toggleRecorder) snapshot() []bool {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return append([]bool(nil), recorder.states...)
}

func TestEngineTogglesWhileActive(t *testing.T) {
	recorder := &toggleRecorder{}
	engine := New(5*time.Millisecond, recorder.record)

	engine.Start(context.Background())
	require.True(t, engine.Active())

	deadline := time.Now().Add(2 * time.Second)
	for len(recorder.snapshot()) < 4 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	engine.Stop()
	time.Sleep(20 * time.Millisecond)

	states := recorder.snapshot()
	require.GreaterOrEqual(t, len(states), 4)
	assert.False(t, states[0], "first toggle hides the indicator")
	assert.NotEqual(t, states[0], states[1], "toggles alternate")
	assert.True(t, states[len(states)-1], "stop restores visibility")
	assert.False(t, engine.Active())
}

func TestEngineStopWithoutStart(t *testing.T) {
	engine := New(time.Millisecond, func(bool) {
		t.Fatal("callback must not fire for an idle engine")
	})
	engine.Stop()
	assert.False(t, engine.Active())
}
