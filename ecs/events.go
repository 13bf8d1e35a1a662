package ecs

// Event records a side effect of the current step for observers such as the debug
// overlay and replay tooling. The queue is cleared at the start of every step.
type Event struct {
	Type string
	Data any
}

const (
	EventSound      = "sfx"
	EventScript     = "script"
	EventLevelUp    = "level_up"
	EventActorDied  = "actor_died"
	EventPlayerHurt = "player_hurt"
	EventSpawnDrop  = "spawn_dropped"
)

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Peek returns the queued events without clearing them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
