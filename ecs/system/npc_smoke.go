package system

import (
	"github.com/milk9111/actorsim/common"
	"github.com/milk9111/actorsim/ecs"
)

func tickSmoke(w *ecs.World, a *ecs.Actor) {
	spec := typeSpec(w, a)

	if a.ActionNum == 0 {
		a.ActionNum = 1
		a.AnimNum = a.RNG.Range(0, 4)
	}

	num, den := spec.Param("decay_num", 20), spec.Param("decay_den", 21)
	a.VelX = common.Decay(a.VelX, num, den)
	a.VelY = common.Decay(a.VelY, num, den)
	a.Integrate()

	a.AnimCounter++
	if a.AnimCounter > spec.Param("frame_ticks", 4) {
		a.AnimCounter = 0
		a.AnimNum++
		if a.AnimNum > spec.Param("last_frame", 7) {
			a.Kill()
			return
		}
	}

	a.AnimRect = spec.Frame(a.AnimNum, common.Left)
}
