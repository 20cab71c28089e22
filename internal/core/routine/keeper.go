package routine

import (
	"sync"
	"time"

	"sunrise/internal/core/model"
)

// Options contains runtime options for the Keeper.
type Options struct {
	TickInterval time.Duration
	// ResetTotalsOnEdit zeroes the elapsed/overtime totals when the
	// routine is replaced. Off by default: an edit mid-session keeps the
	// morning's accounting.
	ResetTotalsOnEdit bool
}

// Keeper composes the step sequence and the countdown behind one mutex,
// so periodic ticks and user intents are serialized and never observe
// each other mid-transition. The tick source is scoped: it is armed only
// while the countdown runs and disarmed on pause and teardown, so no
// tick fires afterwards.
type Keeper struct {
	mu        sync.Mutex
	options   Options
	sequence  *Sequence
	countdown *Countdown
	events    []chan Event
	tickStop  chan struct{}
	closed    bool
}

// New creates a Keeper for one session over the provided steps.
func New(steps []model.Step, options Options) *Keeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	sequence := NewSequence(model.SanitizeSteps(steps))
	return &Keeper{
		options:   options,
		sequence:  sequence,
		countdown: NewCountdown(sequence.CurrentSeconds()),
	}
}

// Subscribe registers a new observer channel. Events are delivered with
// non-blocking sends; slow observers miss intermediate updates.
func (keeper *Keeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	keeper.mu.Unlock()
	return ch
}

// Start sets the countdown running and arms the tick source. Idempotent.
// A finished routine stays frozen; Start does not revive it.
func (keeper *Keeper) Start() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed || keeper.sequence.Finished() || keeper.countdown.Running() {
		return
	}
	keeper.countdown.Start()
	keeper.armTickerLocked()
	keeper.emitLocked(EventStateChange)
}

// Pause stops the countdown and disarms the tick source. Pausing
// mid-second drops the partial second; no progress is banked. Idempotent.
func (keeper *Keeper) Pause() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed || !keeper.countdown.Running() {
		return
	}
	keeper.countdown.Pause()
	keeper.disarmTickerLocked()
	keeper.emitLocked(EventStateChange)
}

// NextStep advances the routine. On a new step the countdown is reset to
// its planned duration and runs; after the last step the countdown is
// paused and the totals freeze at their final values.
func (keeper *Keeper) NextStep() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed || keeper.sequence.Finished() {
		return
	}

	if seconds, ok := keeper.sequence.Advance(); ok {
		keeper.countdown.Reset(seconds)
		keeper.armTickerLocked()
		keeper.emitLocked(EventStepChange)
		return
	}

	keeper.countdown.Pause()
	keeper.disarmTickerLocked()
	keeper.emitLocked(EventFinished)
}

// ReplaceSteps swaps the routine wholesale and re-seeds the countdown
// from the new first step. Reset implies running, so saving an edit sets
// the routine going from its first step.
func (keeper *Keeper) ReplaceSteps(steps []model.Step) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}

	keeper.sequence.ReplaceAll(model.SanitizeSteps(steps))
	if keeper.options.ResetTotalsOnEdit {
		keeper.countdown.ResetTotals()
	}
	keeper.countdown.Reset(keeper.sequence.CurrentSeconds())
	keeper.armTickerLocked()
	keeper.emitLocked(EventRoutineReplaced)
}

// Stop tears the keeper down: the tick source is disarmed and observer
// channels are closed. The keeper cannot be restarted.
func (keeper *Keeper) Stop() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.closed = true
	keeper.countdown.Pause()
	keeper.disarmTickerLocked()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Steps returns a copy of the current step list, for the editor.
func (keeper *Keeper) Steps() []model.Step {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.sequence.Steps()
}

// Snapshot returns the current render-ready view state.
func (keeper *Keeper) Snapshot() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.snapshotLocked()
}

func (keeper *Keeper) armTickerLocked() {
	if keeper.tickStop != nil {
		return
	}
	stop := make(chan struct{})
	keeper.tickStop = stop
	go keeper.run(stop)
}

func (keeper *Keeper) disarmTickerLocked() {
	if keeper.tickStop == nil {
		return
	}
	close(keeper.tickStop)
	keeper.tickStop = nil
}

func (keeper *Keeper) run(stop <-chan struct{}) {
	ticker := time.NewTicker(keeper.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			keeper.tick()
		}
	}
}

func (keeper *Keeper) tick() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}

	result := keeper.countdown.Tick()
	if !result.Ticked {
		return
	}
	keeper.emitLocked(EventProgress)
	if result.EndReached {
		keeper.emitLocked(EventStepEnd)
	}
}

func (keeper *Keeper) snapshotLocked() Snapshot {
	snapshot := Snapshot{
		StepIndex:     keeper.sequence.Index(),
		StepCount:     keeper.sequence.Len(),
		Remaining:     keeper.countdown.Remaining(),
		RemainingText: FormatSeconds(keeper.countdown.Remaining()),
		Running:       keeper.countdown.Running(),
		Overtime:      keeper.countdown.Overtime(),
		Elapsed:       keeper.countdown.TotalElapsed(),
		ElapsedText:   FormatSeconds(keeper.countdown.TotalElapsed()),
		OvertimeTotal: keeper.countdown.TotalOvertime(),
		OvertimeText:  FormatSeconds(keeper.countdown.TotalOvertime()),
		Progress:      int(keeper.sequence.Progress()),
		Finished:      keeper.sequence.Finished(),
	}
	if step, err := keeper.sequence.CurrentStep(); err == nil {
		snapshot.StepName = step.Name
		snapshot.StepLink = step.Link
	}
	return snapshot
}

func (keeper *Keeper) emitLocked(eventType EventType) {
	event := Event{
		Type:     eventType,
		Snapshot: keeper.snapshotLocked(),
		At:       time.Now(),
	}
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
