package ecs

// SpawnQueue buffers actors created during a step. It is append-only until drained at
// the step boundary, and drains in append order.
type SpawnQueue struct {
	items []*Actor
}

func (q *SpawnQueue) Push(a *Actor) {
	if q == nil || a == nil {
		return
	}
	q.items = append(q.items, a)
}

// Drain returns every queued actor and empties the queue.
func (q *SpawnQueue) Drain() []*Actor {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *SpawnQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
