package system

import (
	"github.com/milk9111/actorsim/common"
	"github.com/milk9111/actorsim/ecs"
)

// Player animation frames within one facing row.
const (
	playerAnimStand = 0
	playerAnimWalk1 = 1
	playerAnimWalk2 = 2
	playerAnimJump  = 3
)

var playerShotBounds = common.Rect{Left: common.Px(4), Top: common.Px(2), Right: common.Px(4), Bottom: common.Px(2)}

// PlayerSystem reads the controller and integrates the player. Input is ignored while
// a script holds control, but gravity and movement still apply.
type PlayerSystem struct{}

func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{}
}

func (s *PlayerSystem) Update(w *ecs.World) {
	if w == nil || w.Table() == nil {
		return
	}
	p := w.Player()
	if !p.Alive() {
		return
	}
	spec := &w.Table().Player

	if p.Shock > 0 {
		p.Shock--
	}
	if p.ShotCooldown > 0 {
		p.ShotCooldown--
	}

	var left, right, jump, interact, shoot bool
	if w.Control.ControlEnabled() {
		in := w.Input()
		left, right = in.MoveLeft(), in.MoveRight()
		jump, interact, shoot = in.Jump(), in.Interact(), in.Shoot()
	}

	grounded := p.Flags.HitBottomWall()
	accel := spec.AirAccel
	if grounded {
		accel = spec.WalkAccel
	}

	switch {
	case left && !right:
		p.Direction = common.Left
		if p.VelX > -spec.MaxWalk {
			p.VelX -= accel
		}
	case right && !left:
		p.Direction = common.Right
		if p.VelX < spec.MaxWalk {
			p.VelX += accel
		}
	case grounded:
		if p.VelX < 0 {
			p.VelX = common.Min(0, p.VelX+spec.Friction)
		} else if p.VelX > 0 {
			p.VelX = common.Max(0, p.VelX-spec.Friction)
		}
	}

	if jump && !p.JumpHeld && grounded {
		p.VelY = -spec.JumpVel
		w.PlaySound(ecs.SfxPlayerJump)
	}
	p.JumpHeld = jump

	if interact && !p.InteractHeld && grounded {
		p.Cond.Set(ecs.CondInteracted, true)
		p.Question = true
		p.VelX = 0
	}
	p.InteractHeld = interact

	if shoot && p.ShotCooldown == 0 && len(w.Bullets()) < spec.MaxShots {
		fire(w, p, spec.ShotSpeed, spec.ShotDamage, spec.ShotRange)
		p.ShotCooldown = spec.ShotDelay
	}

	gravity := spec.Gravity
	if jump && p.VelY < 0 {
		gravity = spec.GravityHeld
	}
	p.VelY = common.Gravity(p.VelY, gravity, spec.Terminal)
	p.VelX = common.ClampVel(p.VelX, spec.MaxWalk)
	p.X += p.VelX
	p.Y += p.VelY

	animatePlayer(p, grounded, left != right)
	p.AnimRect = spec.Frame(p.AnimNum, p.Direction)
}

func fire(w *ecs.World, p *ecs.Player, speed, damage, reach int) {
	dir := p.Direction.VectorX()
	w.AddBullet(ecs.Bullet{
		X:         p.X + dir*common.Px(6),
		Y:         p.Y + common.Px(2),
		VelX:      dir * speed,
		Direction: p.Direction,
		Damage:    damage,
		Range:     reach,
		HitBounds: playerShotBounds,
	})
	w.PlaySound(ecs.SfxShot)
}

func animatePlayer(p *ecs.Player, grounded, walking bool) {
	switch {
	case !grounded:
		p.AnimNum = playerAnimJump
		p.AnimCount = 0
	case walking:
		p.AnimCount++
		if p.AnimCount > 4 {
			p.AnimCount = 0
			if p.AnimNum == playerAnimWalk1 {
				p.AnimNum = playerAnimWalk2
			} else {
				p.AnimNum = playerAnimWalk1
			}
		}
	default:
		p.AnimNum = playerAnimStand
		p.AnimCount = 0
	}
}
