package system

import "github.com/milk9111/actorsim/ecs"

// SpawnDrainSystem reclaims dead slots and then admits everything queued during the step,
// in queue order. Actors spawned this step first tick on the next one.
type SpawnDrainSystem struct{}

func NewSpawnDrainSystem() *SpawnDrainSystem { return &SpawnDrainSystem{} }

func (s *SpawnDrainSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	w.ReclaimDead()
	for _, a := range w.Spawns().Drain() {
		w.Admit(a)
	}
}
