package routine

// Countdown tracks remaining time for the current step plus the
// session-wide elapsed and overtime totals. It is pure state transition
// over integer seconds: none of its operations can fail, and nothing here
// touches the clock. A driver delivers Tick once per second while running.
type Countdown struct {
	remaining     int // signed, keeps counting below zero
	running       bool
	overtime      bool
	totalElapsed  int
	totalOvertime int
}

// TickResult describes what a single tick did.
type TickResult struct {
	// Ticked is false when the countdown was not running and the tick
	// was dropped.
	Ticked bool
	// Overtime marks a tick whose pre-decrement remaining was <= 0.
	Overtime bool
	// EndReached is set exactly once per step, at the tick where
	// remaining crosses from 0 to -1.
	EndReached bool
}

// NewCountdown creates a countdown seeded with the first step's planned
// seconds. It starts paused; Start or Reset sets it running.
func NewCountdown(seconds int) *Countdown {
	return &Countdown{remaining: seconds}
}

// Start sets the countdown running. Idempotent.
func (countdown *Countdown) Start() {
	countdown.running = true
}

// Pause stops the countdown. Idempotent.
func (countdown *Countdown) Pause() {
	countdown.running = false
}

// Reset re-seeds the countdown for a new step. Reset always implies
// running; there is no reset-to-paused. The session totals persist.
func (countdown *Countdown) Reset(seconds int) {
	countdown.remaining = seconds
	countdown.overtime = false
	countdown.running = true
}

// Tick advances the countdown by one second. While remaining is already
// at or below zero the tick counts as overtime; the 0 to -1 transition
// is additionally reported as EndReached so the end-of-step signal fires
// once, not on every later overtime tick.
func (countdown *Countdown) Tick() TickResult {
	if !countdown.running {
		return TickResult{}
	}

	before := countdown.remaining
	countdown.remaining--
	countdown.totalElapsed++

	result := TickResult{Ticked: true}
	if before <= 0 {
		countdown.overtime = true
		countdown.totalOvertime++
		result.Overtime = true
		result.EndReached = before == 0
	}
	return result
}

// ResetTotals zeroes the session totals. Only used when the keeper is
// configured to reset accounting on a routine edit.
func (countdown *Countdown) ResetTotals() {
	countdown.totalElapsed = 0
	countdown.totalOvertime = 0
}

// Remaining returns the signed remaining seconds for the current step.
func (countdown *Countdown) Remaining() int {
	return countdown.remaining
}

// Running reports whether ticks are currently consumed.
func (countdown *Countdown) Running() bool {
	return countdown.running
}

// Overtime reports whether the current step has run past its planned
// duration. Cleared by Reset.
func (countdown *Countdown) Overtime() bool {
	return countdown.overtime
}

// TotalElapsed returns seconds spent running across the whole session.
func (countdown *Countdown) TotalElapsed() int {
	return countdown.totalElapsed
}

// TotalOvertime returns overtime seconds accumulated across all steps.
func (countdown *Countdown) TotalOvertime() int {
	return countdown.totalOvertime
}
