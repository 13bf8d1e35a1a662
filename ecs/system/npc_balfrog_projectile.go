package system

import (
	"github.com/milk9111/actorsim/common"
	"github.com/milk9111/actorsim/ecs"
)

// tickBalfrogProjectile flies straight and dissipates on any wall contact or when it
// outlives its range.
func tickBalfrogProjectile(w *ecs.World, a *ecs.Actor) {
	spec := typeSpec(w, a)

	if a.ActionCounter > spec.Param("lifetime", 300) || a.Flags&common.HitAnyWall != 0 {
		a.Kill()
		w.CreateCaret(a.X, a.Y, ecs.CaretProjectileDissipation, common.Left)
	}

	a.Integrate()

	a.ActionCounter++
	a.Animate(1, 0, 2)

	a.AnimRect = spec.Frame(a.AnimNum, common.Left)
}
