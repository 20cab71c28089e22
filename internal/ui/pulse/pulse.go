package pulse

import (
	"context"
	"sync"
	"time"
)

// Engine drives the overtime blink: while started it toggles its
// callback at a fixed interval on its own goroutine. The loop is scoped
// to a context and Stop leaves the indicator in the visible state.
type Engine struct {
	mu       sync.Mutex
	interval time.Duration
	onToggle func(visible bool)
	cancel   context.CancelFunc
}

// New creates a pulse engine. The callback may be invoked from the
// engine goroutine; UI callers wrap it for their toolkit.
func New(interval time.Duration, onToggle func(visible bool)) *Engine {
	if interval <= 0 {
		interval = 600 * time.Millisecond
	}
	return &Engine{interval: interval, onToggle: onToggle}
}

// Start launches the blink loop, replacing any active one.
func (engine *Engine) Start(parent context.Context) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(parent)
	engine.cancel = cancel
	engine.mu.Unlock()

	go engine.run(runCtx)
}

// Stop terminates the blink loop and restores visibility.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	cancel := engine.cancel
	engine.cancel = nil
	engine.mu.Unlock()

	if cancel != nil {
		cancel()
		engine.onToggle(true)
	}
}

// Active reports whether a blink loop is running.
func (engine *Engine) Active() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.cancel != nil
}

func (engine *Engine) run(ctx context.Context) {
	visible := true
	for {
		if !sleepWithContext(ctx, engine.interval) {
			return
		}
		visible = !visible
		engine.onToggle(visible)
	}
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
