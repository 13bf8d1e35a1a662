package system

import (
	"github.com/milk9111/actorsim/common"
	"github.com/milk9111/actorsim/ecs"
)

type hopperAction int

const (
	hopperInit  hopperAction = 0
	hopperIdle  hopperAction = 1
	hopperBlink hopperAction = 2
	// hopperDropIn is the spawn code for hoppers that fall in from above the arena.
	hopperDropIn   hopperAction = 3
	hopperFalling  hopperAction = 4
	hopperJump     hopperAction = 10
	hopperAirborne hopperAction = 11
)

// tickHopper is shared by the frog and the puchi; the table supplies the differences.
func tickHopper(w *ecs.World, a *ecs.Actor) {
	spec := typeSpec(w, a)
	p := w.Player()
	hop := spec.Param("hop_speed", 0x200)

	switch hopperAction(a.ActionNum) {
	case hopperInit:
		a.VelX = 0
		a.VelY = 0
		a.SetActionAnim(int(hopperIdle), 0)
		fallthrough
	case hopperIdle:
		a.ActionCounter++
		if a.RNG.Range(0, spec.Param("idle_roll", 50)) == 1 {
			a.SetActionAnim(int(hopperBlink), 1)
		}
	case hopperBlink:
		a.ActionCounter++
		if a.ActionCounter > spec.Param("blink_frames", 18) {
			a.SetActionAnim(int(hopperIdle), 0)
		}
	case hopperDropIn:
		a.SetActionAnim(int(hopperFalling), 2)
		a.NPCFlags.Set(ecs.FlagIgnoreSolidity, true)
		fallthrough
	case hopperFalling:
		a.ActionCounter++
		if a.ActionCounter > spec.Param("drop_in_frames", 40) {
			a.NPCFlags.Set(ecs.FlagIgnoreSolidity, false)
			if a.Flags.HitBottomWall() {
				a.SetActionAnim(int(hopperInit), 0)
			}
		}
	case hopperJump:
		a.SetActionAnim(int(hopperAirborne), 2)
		a.VelY = -spec.Param("jump_vel", 0x5ff)
		a.VelX = a.Direction.VectorX() * hop
		w.PlaySound(spec.Param("jump_sfx", 30))
		fallthrough
	case hopperAirborne:
		if a.Flags.HitLeftWall() && a.VelX < 0 {
			a.Direction = common.Right
			a.VelX = hop
		}
		if a.Flags.HitRightWall() && a.VelX > 0 {
			a.Direction = common.Left
			a.VelX = -hop
		}
		if a.VelY > 0 && a.Flags.HitBottomWall() {
			a.SetActionAnim(int(hopperInit), 0)
		}
	}

	action := hopperAction(a.ActionNum)
	if (action == hopperIdle || action == hopperBlink) && a.ActionCounter > 10 {
		near := common.Abs(a.X-p.X) < common.Tiles(spec.Param("sense_x", 8)) &&
			common.Abs(a.Y-p.Y) < common.Tiles(spec.Param("sense_y", 8))
		if a.Shock > 0 || (near && a.RNG.Range(0, spec.Param("jump_roll", 50)) == 4) {
			if p.X < a.X {
				a.Direction = common.Left
			} else {
				a.Direction = common.Right
			}
			a.SetAction(int(hopperJump))
		}
	}

	a.VelY = common.Gravity(a.VelY, spec.Param("gravity", 0x80), spec.Param("terminal", 0x5ff))
	a.Integrate()

	a.AnimRect = spec.Frame(a.AnimNum, a.Direction)
}
