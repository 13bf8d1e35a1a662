package system

import (
	"fmt"

	"github.com/milk9111/actorsim/common"
	"github.com/milk9111/actorsim/ecs"
	"github.com/milk9111/actorsim/prefabs"
)

// BossTickFunc runs the driver's state machine and physics for one step.
type BossTickFunc func(w *ecs.World, b *ecs.Boss, spec *prefabs.BossSpec)

type bossBehavior struct {
	tick BossTickFunc
	// attach runs after the generic offset pass for per-animation part setup.
	attach func(b *ecs.Boss, spec *prefabs.BossSpec)
	// defeated is the first code of the death sequence.
	defeated int
}

const BossBalfrog ecs.BossType = 2

var bossBehaviors = map[ecs.BossType]bossBehavior{
	BossBalfrog: {tick: tickBalfrog, attach: attachBalfrog, defeated: int(balfrogDefeated)},
}

// BossSystem advances the composite: driver tick and physics, then the attachment pass
// that places every slaved part from the driver's committed state, then driver map
// collision.
type BossSystem struct{}

func NewBossSystem() *BossSystem { return &BossSystem{} }

func (s *BossSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	b := w.Boss()
	if !b.Active() {
		return
	}
	beh, ok := bossBehaviors[b.Type]
	if !ok {
		return
	}
	spec, ok := w.Table().Boss(int(b.Type))
	if !ok {
		return
	}
	driver := b.Driver()
	if !driver.Alive() && driver.ActionNum >= beh.defeated {
		return
	}

	for i := range b.Parts {
		if b.Parts[i].Shock > 0 {
			b.Parts[i].Shock--
		}
	}

	if driver.Alive() && driver.Life == 0 && driver.ActionNum < beh.defeated {
		driver.SetAction(beh.defeated)
	}

	beh.tick(w, b, spec)
	attachParts(b, spec)
	if beh.attach != nil {
		beh.attach(b, spec)
	}

	if driver.Alive() && !driver.NPCFlags.IgnoreSolidity() {
		driver.Flags = 0
		driver.Flags |= judgeActorMap(w.Stage(), driver)
	}
}

// attachParts positions slaved parts from the table's offsets for the driver's current
// animation index. Horizontal offsets follow the driver's facing.
func attachParts(b *ecs.Boss, spec *prefabs.BossSpec) {
	driver := b.Driver()
	for _, off := range spec.Offsets(driver.AnimNum) {
		if off.Part <= 0 || off.Part >= ecs.BossPartCount {
			continue
		}
		part := &b.Parts[off.Part]
		part.X = driver.X + driver.Direction.VectorX()*common.Px(off.X)
		part.Y = driver.Y + common.Px(off.Y)
	}
}

// ResetBoss installs composite typ and runs its initial action once so the driver is
// positioned and armed before any script addresses it.
func ResetBoss(w *ecs.World, typ ecs.BossType) error {
	if w == nil {
		return fmt.Errorf("system: reset boss: nil world")
	}
	beh, ok := bossBehaviors[typ]
	if !ok {
		return fmt.Errorf("system: boss %d: %w", typ, ecs.ErrUnknownType)
	}
	spec, ok := w.Table().Boss(int(typ))
	if !ok {
		return fmt.Errorf("system: boss %d: missing from table: %w", typ, ecs.ErrUnknownType)
	}
	b := w.Boss()
	b.Reset(typ)
	beh.tick(w, b, spec)
	return nil
}
