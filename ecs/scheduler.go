package ecs

type System interface {
	Update(w *World)
}

// Scheduler runs systems in registration order. Always-systems run every step; the rest
// run only when the world tick gate was open at the start of the step.
type Scheduler struct {
	always  []System
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if s == nil || system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// AddAlways registers a system that ignores the tick gate.
func (s *Scheduler) AddAlways(system System) {
	if s == nil || system == nil {
		return
	}
	s.always = append(s.always, system)
}

func (s *Scheduler) Update(w *World) {
	if s == nil || w == nil {
		return
	}
	tick := w.Control.TickWorld()
	for _, system := range s.always {
		system.Update(w)
	}
	if !tick {
		return
	}
	for _, system := range s.systems {
		system.Update(w)
	}
}

func (s *Scheduler) Systems() []System {
	if s == nil {
		return nil
	}
	systems := make([]System, 0, len(s.always)+len(s.systems))
	systems = append(systems, s.always...)
	return append(systems, s.systems...)
}
