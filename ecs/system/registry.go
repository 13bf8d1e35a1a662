package system

import (
	"fmt"

	"github.com/milk9111/actorsim/ecs"
	"github.com/milk9111/actorsim/prefabs"
)

// TickFunc advances one actor by one step. It may only touch the actor itself, the
// player, the spawn queue and world-level side effects.
type TickFunc func(w *ecs.World, a *ecs.Actor)

var behaviors = map[ecs.TypeID]TickFunc{
	ecs.TypeExperience: tickExperience,
	ecs.TypeSmoke:      tickSmoke,
	ecs.TypeMissile:    tickTimedPickup,
	ecs.TypeHeart:      tickTimedPickup,
	TypeFrog:           tickHopper,
	TypeBalfrogShot:    tickBalfrogProjectile,
	TypePuchi:          tickHopper,
	TypeBooster:        tickBooster,
}

const (
	TypeFrog        ecs.TypeID = 104
	TypeBalfrogShot ecs.TypeID = 108
	TypePuchi       ecs.TypeID = 110
	TypeBooster     ecs.TypeID = 113
)

// Behavior returns the registered tick function for typ.
func Behavior(typ ecs.TypeID) (TickFunc, bool) {
	fn, ok := behaviors[typ]
	return fn, ok
}

// ValidateTable rejects tables that name types or composites with no behavior, or
// capability flags the engine does not know.
func ValidateTable(t *prefabs.NPCTable) error {
	if err := t.Validate(); err != nil {
		return err
	}
	for id, spec := range t.Types {
		if _, ok := behaviors[ecs.TypeID(id)]; !ok {
			return fmt.Errorf("system: type %d (%s): %w", id, spec.Name, ecs.ErrUnknownType)
		}
		if _, err := ecs.ParseNPCFlags(spec.Flags); err != nil {
			return fmt.Errorf("system: type %d (%s): %w", id, spec.Name, err)
		}
	}
	for id, spec := range t.Bosses {
		if _, ok := bossBehaviors[ecs.BossType(id)]; !ok {
			return fmt.Errorf("system: boss %d (%s): %w", id, spec.Name, ecs.ErrUnknownType)
		}
	}
	return nil
}

// Install validates the world's table and attaches the per-step scheduler. always
// systems (the script runner) run even while the world is frozen.
func Install(w *ecs.World, always ...ecs.System) error {
	if w == nil {
		return fmt.Errorf("system: install: nil world")
	}
	if err := ValidateTable(w.Table()); err != nil {
		return err
	}
	s := ecs.NewScheduler(
		NewPlayerSystem(),
		NewPlayerMapCollisionSystem(),
		NewBehaviorSystem(),
		NewActorMapCollisionSystem(),
		NewBossSystem(),
		NewBulletSystem(),
		NewPlayerActorCollisionSystem(),
		NewSpawnDrainSystem(),
		NewEffectsSystem(),
	)
	for _, sys := range always {
		s.AddAlways(sys)
	}
	w.SetScheduler(s)
	return nil
}

func typeSpec(w *ecs.World, a *ecs.Actor) *prefabs.TypeSpec {
	spec, _ := w.Table().Type(int(a.Type))
	return spec
}
