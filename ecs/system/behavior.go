package system

import "github.com/milk9111/actorsim/ecs"

// BehaviorSystem ticks every live actor once, in ascending slot order.
type BehaviorSystem struct{}

func NewBehaviorSystem() *BehaviorSystem { return &BehaviorSystem{} }

func (s *BehaviorSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	w.EachActor(func(a *ecs.Actor) {
		if a.Shock > 0 {
			a.Shock--
		}
		tick, ok := behaviors[a.Type]
		if !ok {
			a.Integrate()
			return
		}
		tick(w, a)
	})
}
