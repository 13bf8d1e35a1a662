package system

import "github.com/milk9111/actorsim/ecs"

type EffectsSystem struct{}

func NewEffectsSystem() *EffectsSystem { return &EffectsSystem{} }

func (s *EffectsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	w.DecayQuake()
	w.TickCarets()
}
