package routine

import "time"

// EventType defines the type of Keeper event.
type EventType string

const (
	// EventProgress is emitted on every consumed tick.
	EventProgress EventType = "progress"
	// EventStepEnd is emitted exactly once per step, at the tick where
	// the countdown first goes negative. The keeper does not advance on
	// its own; counting continues into overtime until the user acts.
	EventStepEnd EventType = "step_end"
	// EventStepChange is emitted when the user advances to a new step.
	EventStepChange EventType = "step_change"
	// EventRoutineReplaced is emitted after an edit swapped the step list.
	EventRoutineReplaced EventType = "routine_replaced"
	// EventStateChange is emitted when the keeper starts or pauses.
	EventStateChange EventType = "state_change"
	// EventFinished is emitted once when the last step is completed.
	EventFinished EventType = "finished"
)

// Event represents a Keeper update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	At       time.Time
}

// Snapshot is the render-ready view of the session.
type Snapshot struct {
	StepName      string
	StepLink      string
	StepIndex     int
	StepCount     int
	Remaining     int
	RemainingText string
	Running       bool
	Overtime      bool
	Elapsed       int
	ElapsedText   string
	OvertimeTotal int
	OvertimeText  string
	Progress      int
	Finished      bool
}
