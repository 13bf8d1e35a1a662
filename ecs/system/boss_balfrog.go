package system

import (
	"github.com/milk9111/actorsim/common"
	"github.com/milk9111/actorsim/ecs"
	"github.com/milk9111/actorsim/prefabs"
)

type balfrogAction int

const (
	balfrogInit        balfrogAction = 0
	balfrogAppear      balfrogAction = 10
	balfrogShown       balfrogAction = 11
	balfrogFlash       balfrogAction = 20
	balfrogFlashing    balfrogAction = 21
	balfrogStomp       balfrogAction = 100
	balfrogStompWait   balfrogAction = 101
	balfrogCrouch      balfrogAction = 102
	balfrogLeap        balfrogAction = 103
	balfrogAirborne    balfrogAction = 104
	balfrogMouth       balfrogAction = 110
	balfrogMouthWait   balfrogAction = 111
	balfrogMouthOpen   balfrogAction = 112
	balfrogSpit        balfrogAction = 113
	balfrogMouthClose  balfrogAction = 114
	balfrogCharge      balfrogAction = 120
	balfrogChargeWait  balfrogAction = 121
	balfrogBigCrouch   balfrogAction = 122
	balfrogBigLeap     balfrogAction = 123
	balfrogBigAirborne balfrogAction = 124
	balfrogDefeated    balfrogAction = 130
	balfrogDying       balfrogAction = 131
	balfrogShrinking   balfrogAction = 132
	balfrogDrop        balfrogAction = 140
	balfrogDropping    balfrogAction = 141
	balfrogLanded      balfrogAction = 142
	balfrogRising      balfrogAction = 143
)

const (
	balfrogMouthPart = 1
	balfrogBodyPart  = 2
)

var (
	balfrogDisplay      = common.Rect{Left: common.Px(48), Top: common.Px(48), Right: common.Px(32), Bottom: common.Px(16)}
	balfrogShrunk       = common.Rect{Left: common.Px(20), Top: common.Px(12), Right: common.Px(20), Bottom: common.Px(12)}
	balfrogHit          = common.Rect{Left: common.Px(24), Top: common.Px(16), Right: common.Px(24), Bottom: common.Px(16)}
	balfrogLeapTop      = common.Px(64)
	balfrogLeapBottom   = common.Px(24)
	balfrogSettleTop    = balfrogDisplay.Top
	balfrogSettleBottom = balfrogDisplay.Bottom
)

func tickBalfrog(w *ecs.World, b *ecs.Boss, spec *prefabs.BossSpec) {
	d := b.Driver()
	p := w.Player()
	mouth := &b.Parts[balfrogMouthPart]
	body := &b.Parts[balfrogBodyPart]

	switch balfrogAction(d.ActionNum) {
	case balfrogInit:
		b.HurtSound[0] = spec.Sound("hurt", 52)
		d.X = common.Tiles(spec.Param("start_x_tiles", 6))
		d.Y = common.Tiles(spec.Param("start_y_tiles", 12))
		d.VelX, d.VelY = 0, 0
		d.Direction = common.Right
		d.DisplayBounds = balfrogDisplay
		d.HitBounds = balfrogHit
		d.Size = spec.Param("size", 3)
		d.Exp = spec.Param("exp", 1)
		d.EventNum = spec.Param("event", 1000)
		d.NPCFlags.Set(ecs.FlagEventWhenKilled|ecs.FlagShowDamage, true)
		d.Life = spec.Param("life", 300)
		d.MaxLife = d.Life
	case balfrogAppear:
		d.ActionNum = int(balfrogShown)
		d.AnimNum = 3
		d.Cond.Set(ecs.CondAlive, true)
		d.AnimRect = spec.Frame(0, common.Right)

		mouth.Cond.Set(ecs.CondAlive|ecs.CondDamageBoss, true)
		mouth.Damage = spec.Parts[balfrogMouthPart].Damage
		body.Cond.Set(ecs.CondAlive, true)
		body.Damage = spec.Parts[balfrogBodyPart].Damage

		w.SpawnSmoke(d.X, d.Y, 8, &d.RNG)
	case balfrogFlash, balfrogFlashing:
		if d.ActionNum == int(balfrogFlash) {
			d.SetAction(int(balfrogFlashing))
		}
		d.ActionCounter++
		if d.ActionCounter/2%2 != 0 {
			d.AnimNum = 3
		} else {
			d.AnimNum = 0
		}
	case balfrogStomp, balfrogStompWait:
		if d.ActionNum == int(balfrogStomp) {
			d.SetAction(int(balfrogStompWait))
			d.AnimNum = 1
			d.VelX = 0
		}
		d.ActionCounter++
		if d.ActionCounter > spec.Param("stomp_wait", 50) {
			d.ActionNum = int(balfrogCrouch)
			d.AnimCounter = 0
			d.AnimNum = 2
		}
	case balfrogCrouch:
		d.AnimCounter++
		if d.AnimCounter > spec.Param("crouch_ticks", 10) {
			d.ActionNum = int(balfrogLeap)
			d.AnimCounter = 0
			d.AnimNum = 1
		}
	case balfrogLeap:
		d.AnimCounter++
		if d.AnimCounter > spec.Param("leap_ticks", 4) {
			d.ActionNum = int(balfrogAirborne)
			d.AnimNum = 5
			d.VelX = d.Direction.VectorX() * common.Unit
			d.VelY = -2 * common.Unit
			d.DisplayBounds.Top = balfrogLeapTop
			d.DisplayBounds.Bottom = balfrogLeapBottom
			w.PlaySound(spec.Sound("leap", 25))
		}
	case balfrogAirborne:
		if d.Direction == common.Left && d.Flags.HitLeftWall() {
			d.Direction = common.Right
			d.VelX = common.Unit
		}
		if d.Direction == common.Right && d.Flags.HitRightWall() {
			d.Direction = common.Left
			d.VelX = -common.Unit
		}
		if d.Flags.HitBottomWall() {
			balfrogLand(w, d, p, false)
			spawnDropIns(w, d, TypePuchi, 1)
			w.SpawnSmoke(d.X, d.Y, 4, &d.RNG)
			w.SetQuake(30)
			w.PlaySound(spec.Sound("land", 26))
		}
	case balfrogMouth, balfrogMouthWait:
		if d.ActionNum == int(balfrogMouth) {
			d.AnimNum = 1
			d.SetAction(int(balfrogMouthWait))
		}
		d.ActionCounter++
		d.VelX = common.Decay(d.VelX, 8, 9)
		if d.ActionCounter > spec.Param("recover_wait", 50) {
			d.AnimNum = 2
			d.AnimCounter = 0
			d.ActionNum = int(balfrogMouthOpen)
		}
	case balfrogMouthOpen:
		d.AnimCounter++
		if d.AnimCounter > spec.Param("mouth_open_ticks", 4) {
			d.SetAction(int(balfrogSpit))
			d.VelX2 = spec.Param("volley_shots", 16)
			d.AnimNum = 3
			d.TargetX = d.Life
			mouth.NPCFlags.Set(ecs.FlagShootable, true)
		}
	case balfrogSpit:
		if d.Shock != 0 {
			d.ActionCounter2++
			if d.ActionCounter2/2%2 != 0 {
				d.AnimNum = 4
			} else {
				d.AnimNum = 3
			}
		} else {
			d.ActionCounter2 = 0
			d.AnimNum = 3
		}

		d.VelX = common.Decay(d.VelX, 10, 11)

		d.ActionCounter++
		if d.ActionCounter > spec.Param("volley_period", 16) {
			d.ActionCounter = 0
			d.VelX2 = common.SaturatingSub(d.VelX2, 1)

			mouthX := d.X + d.Direction.VectorX()*common.Tiles(2)
			mouthY := d.Y - common.Px(8)
			vx, vy := common.AimVelocity(mouthX-p.X, mouthY-p.Y, d.RNG.Range(-16, 16), spec.Param("projectile_speed", 512))
			w.SpawnActor(TypeBalfrogShot, &d.RNG, func(a *ecs.Actor) {
				a.X, a.Y = mouthX, mouthY
				a.VelX, a.VelY = vx, vy
			})
			w.PlaySound(spec.Sound("shoot", 39))

			if d.VelX2 == 0 || d.Life < d.TargetX-spec.Param("volley_damage_cap", 90) {
				d.SetAction(int(balfrogMouthClose))
				d.AnimNum = 2
				d.AnimCounter = 0
				mouth.NPCFlags.Set(ecs.FlagShootable, false)
			}
		}
	case balfrogMouthClose:
		d.AnimCounter++
		if d.AnimCounter > spec.Param("crouch_ticks", 10) {
			d.AnimNum = 1
			d.AnimCounter = 0

			mouth.ActionCounter2++
			if mouth.ActionCounter2 > spec.Param("volleys_before_charge", 2) {
				mouth.ActionCounter2 = 0
				d.ActionNum = int(balfrogCharge)
			} else {
				d.ActionNum = int(balfrogStomp)
			}
		}
	case balfrogCharge, balfrogChargeWait:
		if d.ActionNum == int(balfrogCharge) {
			d.SetAction(int(balfrogChargeWait))
			d.AnimNum = 1
			d.VelX = 0
		}
		d.ActionCounter++
		if d.ActionCounter > spec.Param("charge_wait", 50) {
			d.ActionNum = int(balfrogBigCrouch)
			d.AnimNum = 2
			d.AnimCounter = 0
		}
	case balfrogBigCrouch:
		d.AnimCounter++
		if d.AnimCounter > spec.Param("big_crouch_ticks", 20) {
			d.ActionNum = int(balfrogBigLeap)
			d.AnimNum = 1
			d.AnimCounter = 0
		}
	case balfrogBigLeap:
		d.AnimCounter++
		if d.AnimCounter > spec.Param("leap_ticks", 4) {
			d.ActionNum = int(balfrogBigAirborne)
			d.AnimNum = 5
			d.VelY = -5 * common.Unit
			d.DisplayBounds.Top = balfrogLeapTop
			d.DisplayBounds.Bottom = balfrogLeapBottom
			w.PlaySound(spec.Sound("leap", 25))
		}
	case balfrogBigAirborne:
		if d.Flags.HitBottomWall() {
			balfrogLand(w, d, p, true)
			spawnDropIns(w, d, TypeFrog, 2)
			spawnDropIns(w, d, TypePuchi, 6)
			for i := 0; i < 8; i++ {
				w.SpawnActor(ecs.TypeSmoke, &d.RNG, func(a *ecs.Actor) {
					a.Direction = common.Left
					a.X = d.X + d.RNG.Range(-12, 12)*common.Unit
					a.Y = d.Y + d.HitBounds.Bottom
					a.VelX = d.RNG.Range(-0x155, 0x155)
					a.VelY = d.RNG.Range(-0x600, 0)
				})
			}
			w.PlaySound(spec.Sound("land", 26))
			w.SetQuake(60)
		}
	case balfrogDefeated, balfrogDying:
		if d.ActionNum == int(balfrogDefeated) {
			d.SetAction(int(balfrogDying))
			d.AnimNum = 3
			d.VelX = 0
			mouth.Kill()
			body.Kill()
			w.PlaySound(spec.Sound("death", 72))
			w.SpawnSmoke(d.X, d.Y, 8, &d.RNG)
		}

		d.ActionCounter++
		if d.ActionCounter%5 == 0 {
			w.SpawnSmoke(d.X, d.Y, 1, &d.RNG)
		}
		if d.ActionCounter/2%2 != 0 {
			d.X -= common.Unit
		} else {
			d.X += common.Unit
		}
		if d.ActionCounter > spec.Param("death_shake_ticks", 100) {
			d.SetAction(int(balfrogShrinking))
		}
	case balfrogShrinking:
		d.ActionCounter++
		if d.ActionCounter/2%2 != 0 {
			d.AnimNum = 6
			d.DisplayBounds = balfrogShrunk
		} else {
			d.AnimNum = 3
			d.DisplayBounds = balfrogDisplay
		}
		if d.ActionCounter%9 == 0 {
			w.SpawnSmoke(d.X, d.Y, 1, &d.RNG)
		}
		if d.ActionCounter > spec.Param("death_flash_ticks", 150) {
			d.ActionNum = int(balfrogDrop)
			d.HitBounds.Bottom = common.Px(12)
		}
	case balfrogDrop, balfrogDropping:
		if d.ActionNum == int(balfrogDrop) {
			d.ActionNum = int(balfrogDropping)
		}
		if d.Flags.HitBottomWall() {
			d.SetAction(int(balfrogLanded))
			d.AnimNum = 7
		}
	case balfrogLanded:
		d.ActionCounter++
		if d.ActionCounter > spec.Param("sink_ticks", 30) {
			d.AnimNum = 8
			d.VelY = -5 * common.Unit
			d.NPCFlags.Set(ecs.FlagIgnoreSolidity, true)
			d.ActionNum = int(balfrogRising)
		}
	case balfrogRising:
		d.VelY = -5 * common.Unit
		if d.Y < 0 {
			d.Kill()
			w.PlaySound(spec.Sound("land", 26))
			w.SetQuake(30)
		}
	}

	d.VelY = common.Gravity(d.VelY, common.DefaultGravity, common.DefaultTerminalVel)
	d.Integrate()
	d.AnimRect = spec.Frame(d.AnimNum, d.Direction)
}

// balfrogLand settles the driver after a leap and turns it toward the player, opening
// the mouth when it had to turn. After the big leap a right-facing driver that overshot
// the player opens its mouth without turning.
func balfrogLand(w *ecs.World, d *ecs.Actor, p *ecs.Player, keepRight bool) {
	d.ActionNum = int(balfrogStomp)
	d.AnimNum = 1
	d.DisplayBounds.Top = balfrogSettleTop
	d.DisplayBounds.Bottom = balfrogSettleBottom

	if d.Direction == common.Left && d.X < p.X {
		d.Direction = common.Right
		d.ActionNum = int(balfrogMouth)
	}
	if d.Direction == common.Right && d.X > p.X {
		if !keepRight {
			d.Direction = common.Left
		}
		d.ActionNum = int(balfrogMouth)
	}
}

// spawnDropIns queues hoppers that fall in from the top of the arena.
func spawnDropIns(w *ecs.World, d *ecs.Actor, typ ecs.TypeID, n int) {
	for i := 0; i < n; i++ {
		w.SpawnActor(typ, &d.RNG, func(a *ecs.Actor) {
			a.X = common.Tiles(d.RNG.Range(4, 16))
			a.Y = common.Tiles(d.RNG.Range(0, 4))
			a.Direction = common.FacingPlayer
			a.ActionNum = int(hopperDropIn)
		})
	}
}

// attachBalfrog arms the slaved parts whenever the driver shows its idle frame.
func attachBalfrog(b *ecs.Boss, spec *prefabs.BossSpec) {
	if b.Driver().AnimNum != 0 {
		return
	}
	for _, idx := range []int{balfrogMouthPart, balfrogBodyPart} {
		ps := spec.Parts[idx]
		part := &b.Parts[idx]
		b.HurtSound[idx] = ps.HurtSound
		part.Size = ps.Size
		part.NPCFlags.Set(ecs.FlagInvulnerable, true)
		part.HitBounds = ps.Hit.Units()
	}
}
