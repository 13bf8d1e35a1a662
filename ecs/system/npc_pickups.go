package system

import (
	"github.com/milk9111/actorsim/common"
	"github.com/milk9111/actorsim/ecs"
)

// tickExperience bounces an experience crystal around until it is collected or fades.
func tickExperience(w *ecs.World, a *ecs.Actor) {
	spec := typeSpec(w, a)

	if a.ActionNum == 0 {
		a.ActionNum = 1
		a.AnimNum = a.RNG.Range(0, 4)
	}

	a.VelY = common.Gravity(a.VelY, common.DefaultGravity, common.DefaultTerminalVel)

	if a.Flags.HitLeftWall() && a.VelX < 0 {
		a.VelX = -a.VelX
	}
	if a.Flags.HitRightWall() && a.VelX > 0 {
		a.VelX = -a.VelX
	}
	if a.Flags.HitTopWall() && a.VelY < 0 {
		a.VelY = -a.VelY
	}
	if a.Flags.HitBottomWall() {
		w.PlaySound(ecs.SfxExpBounce)
		a.VelY = -spec.Param("bounce_vel", 0x280)
		a.VelX = common.Decay(a.VelX, 2, 3)
	}

	a.Integrate()
	a.Animate(2, 0, 5)

	a.ActionCounter2++
	if a.ActionCounter2 > spec.Param("blink_frames", 400) {
		a.Cond.Set(ecs.CondHidden, a.ActionCounter2/2%2 != 0)
	}
	if a.ActionCounter2 > spec.Param("vanish_frames", 500) {
		a.Kill()
		w.CreateCaret(a.X, a.Y, ecs.CaretExpSparkle, common.Left)
	}

	row := 0
	switch {
	case a.Exp >= spec.Param("large_exp", 20):
		row = 2
	case a.Exp >= spec.Param("medium_exp", 5):
		row = 1
	}
	a.AnimRect = spec.Frame(a.AnimNum+row*spec.Param("frames_per_size", 6), common.Left)
}

// tickTimedPickup drives missile and heart pickups. Placed pickups stay forever; dropped
// ones blink and then vanish.
func tickTimedPickup(w *ecs.World, a *ecs.Actor) {
	spec := typeSpec(w, a)

	a.Animate(spec.Param("frame_ticks", 5), 0, 1)

	if a.ActionNum == ecs.ActionPickupDropped {
		a.ActionCounter2++
		if a.ActionCounter2 > spec.Param("blink_frames", 500) {
			a.Cond.Set(ecs.CondHidden, a.ActionCounter2/2%2 != 0)
		}
		if a.ActionCounter2 > spec.Param("vanish_frames", 550) {
			a.Kill()
			w.CreateCaret(a.X, a.Y, ecs.CaretExpSparkle, common.Left)
		}
	}

	a.VelY = common.Gravity(a.VelY, common.DefaultGravity, common.DefaultTerminalVel)
	a.Integrate()

	a.AnimRect = spec.Frame(a.AnimNum, common.Left)
}
