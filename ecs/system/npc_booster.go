package system

import (
	"github.com/milk9111/actorsim/common"
	"github.com/milk9111/actorsim/ecs"
)

type boosterAction int

const (
	boosterInit     boosterAction = 0
	boosterStand    boosterAction = 1
	boosterBlink    boosterAction = 2
	boosterWalk     boosterAction = 3
	boosterWalking  boosterAction = 4
	boosterPuzzled  boosterAction = 5
	boosterTeleport boosterAction = 30
	boosterFading   boosterAction = 31
	boosterHold     boosterAction = 32
	boosterDrop     boosterAction = 33
	boosterLanded   boosterAction = 34
)

func tickBooster(w *ecs.World, a *ecs.Actor) {
	spec := typeSpec(w, a)

	switch boosterAction(a.ActionNum) {
	case boosterInit:
		a.ActionNum = int(boosterStand)
		a.AnimNum = 0
		a.AnimCounter = 0
		fallthrough
	case boosterStand:
		if a.RNG.Range(0, spec.Param("blink_roll", 120)) == spec.Param("blink_hit", 10) {
			a.SetActionAnim(int(boosterBlink), 1)
		}
	case boosterBlink:
		a.ActionCounter++
		if a.ActionCounter > spec.Param("blink_frames", 8) {
			a.ActionNum = int(boosterStand)
			a.AnimNum = 0
		}
	case boosterWalk:
		a.ActionNum = int(boosterWalking)
		a.AnimNum = 2
		a.AnimCounter = 0
		fallthrough
	case boosterWalking:
		a.Animate(spec.Param("walk_frame_ticks", 5), 2, 5)
		a.X += a.Direction.VectorX() * common.Unit
	case boosterPuzzled:
		a.AnimNum = 6
	case boosterTeleport:
		a.SetActionAnim(int(boosterFading), 0)
		a.HitBounds.Bottom = common.Px(16)
		a.X -= common.Px(16)
		a.Y += common.Px(8)
		fallthrough
	case boosterFading:
		a.ActionCounter++
		if a.ActionCounter == spec.Param("teleport_frames", 64) {
			a.SetAction(int(boosterHold))
		}
	case boosterHold:
		a.ActionCounter++
		if a.ActionCounter > spec.Param("teleport_hold", 20) {
			a.ActionNum = int(boosterDrop)
			a.AnimNum = 1
			a.HitBounds.Bottom = common.Px(8)
		}
	case boosterDrop:
		if a.Flags.HitBottomWall() {
			a.SetActionAnim(int(boosterLanded), 0)
		}
	}

	a.VelY += common.DefaultGravity
	a.Y += a.VelY

	a.AnimRect = spec.Frame(a.AnimNum, a.Direction)
	if boosterAction(a.ActionNum) == boosterFading {
		a.AnimRect.Bottom = a.AnimRect.Top + a.ActionCounter/4
		if a.ActionCounter/2%2 != 0 {
			a.AnimRect.Left++
		}
	}
}
