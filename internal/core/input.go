package core

import "sync"

// Action is a semantic input event, abstracted from physical key presses.
// The simulation understands a single action: the primary press.
type Action int

const (
	ActionNone    Action = iota
	ActionPrimary        // Click, tap, space, up, w, enter - flap / start / restart
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPrimary:
		return "Primary"
	default:
		return "Unknown"
	}
}

// InputQueue collects actions delivered asynchronously by a host and hands
// them to the simulation once per update pass. Push is safe from any
// goroutine; Drain is meant for the single goroutine that steps the world.
type InputQueue struct {
	mu      sync.Mutex
	pending []Action
}

// NewInputQueue creates an empty queue.
func NewInputQueue() *InputQueue {
	return &InputQueue{pending: make([]Action, 0, 4)}
}

// Push appends an action. ActionNone is ignored.
func (q *InputQueue) Push(a Action) {
	if a == ActionNone {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, a)
	q.mu.Unlock()
}

// Drain removes and returns every queued action in arrival order.
// Returns nil when nothing is queued.
func (q *InputQueue) Drain() []Action {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil
	}
	out := make([]Action, len(q.pending))
	copy(out, q.pending)
	q.pending = q.pending[:0]
	return out
}

// Len returns the number of queued actions.
func (q *InputQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
