package ecs

// MaxActors bounds the live actor store.
const MaxActors = 512

// actorStore tracks slot generations and free slots, and holds the actors themselves.
// Freed slots are reused lowest-first so admission is independent of removal order.
type actorStore struct {
	gen    []generation
	free   []entityID
	actors SparseSet[*Actor]
}

func (s *actorStore) insert(a *Actor) (Entity, bool) {
	if s == nil || a == nil {
		return 0, false
	}
	var id entityID
	switch {
	case len(s.free) > 0:
		lowest := 0
		for i := range s.free {
			if s.free[i] < s.free[lowest] {
				lowest = i
			}
		}
		id = s.free[lowest]
		s.free = append(s.free[:lowest], s.free[lowest+1:]...)
	case len(s.gen) < MaxActors:
		s.gen = append(s.gen, 0)
		id = entityID(len(s.gen))
	default:
		return 0, false
	}
	e := makeEntity(id, s.gen[id-1])
	a.ID = e
	s.actors.Set(int(id), a)
	return e, true
}

func (s *actorStore) remove(e Entity) {
	if !s.isLive(e) {
		return
	}
	id := e.id()
	s.actors.Remove(int(id))
	s.gen[id-1]++
	s.free = append(s.free, id)
}

func (s *actorStore) isLive(e Entity) bool {
	if s == nil || !e.Valid() || int(e.id()) > len(s.gen) {
		return false
	}
	return s.gen[e.id()-1] == e.generation() && s.actors.Has(int(e.id()))
}

func (s *actorStore) get(e Entity) *Actor {
	if !s.isLive(e) {
		return nil
	}
	a, _ := s.actors.Get(int(e.id()))
	return a
}

func (s *actorStore) each(fn func(a *Actor)) {
	if s == nil {
		return
	}
	s.actors.Ascending(func(_ int, a *Actor) { fn(a) })
}

func (s *actorStore) len() int {
	if s == nil {
		return 0
	}
	return s.actors.Len()
}
