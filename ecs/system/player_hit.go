package system

import (
	"github.com/milk9111/actorsim/common"
	"github.com/milk9111/actorsim/ecs"
)

var (
	px2 = common.Px(2)
	px3 = common.Px(3)
)

// judgeSolidSoft pushes the player out of a soft-solid actor gradually, and lets the
// player stand on it. The horizontal tests use the player's top and right half-extents
// for both sides.
func judgeSolidSoft(p *ecs.Player, a *ecs.Actor) common.Flags {
	var flags common.Flags
	ph, ah := p.HitBounds, a.HitBounds

	if p.Y-ph.Top < a.Y+ah.Bottom-px3 && p.Y+ph.Top > a.Y-ah.Bottom+px3 &&
		p.X-ph.Right < a.X+ah.Right && p.X-ph.Right > a.X {
		if p.VelX < common.Unit {
			p.VelX += common.Unit
		}
		flags |= common.HitLeftWall
	}

	if p.Y-ph.Top < a.Y+ah.Bottom-px3 && p.Y+ph.Top > a.Y-ah.Bottom+px3 &&
		p.X+ph.Right-common.Unit > a.X-ah.Right && p.X+ph.Right-common.Unit < a.X {
		if p.VelX > -common.Unit {
			p.VelX -= common.Unit
		}
		flags |= common.HitRightWall
	}

	if p.X-ph.Right < a.X+ah.Right-px3 && p.X+ph.Right > a.X-ah.Right+px3 &&
		p.Y-ph.Top < a.Y+ah.Bottom && p.Y-ph.Top > a.Y {
		if p.VelY < 0 {
			p.VelY = 0
		}
		flags |= common.HitTopWall
	}

	if p.X-ph.Right < a.X+ah.Right-px3 && p.X+ph.Right > a.X-ah.Right+px3 &&
		p.Y+ph.Bottom-common.Unit > a.Y-ah.Top && p.Y+ph.Bottom-common.Unit < a.Y+px3 {
		if a.NPCFlags.Bouncy() {
			p.VelY = a.VelY - common.Unit
			flags |= common.HitBottomWall
		} else if !p.Flags.HitBottomWall() && p.VelY > a.VelY {
			p.Y = a.Y - ah.Top - ph.Bottom + common.Unit
			p.VelY = a.VelY
			p.X += a.VelX
			flags |= common.HitBottomWall
		}
	}

	return flags
}

// judgeSolidHard resolves the player against a hard-solid actor along one axis. The axis
// is chosen by comparing the slope of the centre offset with the slope of the actor's
// box; zero horizontal lengths count as one unit.
func judgeSolidHard(w *ecs.World, p *ecs.Player, a *ecs.Actor) common.Flags {
	var flags common.Flags
	ph, ah := p.HitBounds, a.HitBounds

	fx1 := common.Abs(p.X - a.X)
	fy1 := common.Abs(p.Y - a.Y)
	fx2 := ah.Right
	fy2 := ah.Top
	if fx1 == 0 {
		fx1 = 1
	}
	if fx2 == 0 {
		fx2 = 1
	}

	// fy1/fx1 <= fy2/fx2 without leaving integers.
	if int64(fy1)*int64(fx2) <= int64(fy2)*int64(fx1) {
		if p.Y-ph.Top < a.Y+ah.Bottom && p.Y+ph.Bottom > a.Y-ah.Top {
			if p.X-ph.Right < a.X+ah.Right && p.X-ph.Right > a.X {
				if p.VelX < a.VelX {
					p.VelX = a.VelX
				}
				p.X = a.X + ah.Right + ph.Right
				flags |= common.HitLeftWall
			}

			if p.X+ph.Right > a.X-ah.Right && p.X+ph.Right < a.X {
				if p.VelX > a.VelX {
					p.VelX = a.VelX
				}
				p.X = a.X - ah.Right - ph.Right
				flags |= common.HitRightWall
			}
		}
		return flags
	}

	if p.X-ph.Right >= a.X+ah.Right || p.X+ph.Right <= a.X-ah.Right {
		return flags
	}

	if p.Y-ph.Top < a.Y+ah.Bottom && p.Y-ph.Top > a.Y {
		if p.VelY >= a.VelY {
			if p.VelY < 0 {
				p.VelY = 0
			}
		} else {
			p.Y = a.Y + ah.Bottom + ph.Top + common.Unit
			p.VelY = a.VelY
		}
		flags |= common.HitTopWall
	}

	if p.Y+ph.Bottom > a.Y-ah.Top && p.Y+ph.Bottom < a.Y+px3 {
		if p.VelY-a.VelY > px2 {
			w.PlaySound(ecs.SfxThud)
		}

		switch {
		case p.ControlMode == ecs.ControlIronHead:
			p.Y = a.Y - ah.Top - ph.Bottom + common.Unit
			flags |= common.HitBottomWall
		case a.NPCFlags.Bouncy():
			p.VelY = a.VelY - common.Unit
			flags |= common.HitBottomWall
		case !p.Flags.HitBottomWall() && p.VelY > a.VelY:
			p.Y = a.Y - ah.Top - ph.Bottom + common.Unit
			p.VelY = a.VelY
			p.X += a.VelX
			flags |= common.HitBottomWall
		}
	}

	return flags
}

// judgeNonSolid is a plain overlap test against the player's centre, widened by 2px.
// The actor's horizontal extents swap when it faces right. Any overlap reports
// HitLeftWall only.
func judgeNonSolid(p *ecs.Player, a *ecs.Actor) common.Flags {
	hitLeft, hitRight := a.HitBounds.Left, a.HitBounds.Right
	if a.Direction != common.Left {
		hitLeft, hitRight = hitRight, hitLeft
	}

	if p.X+px2 > a.X-hitLeft && p.X-px2 < a.X+hitRight &&
		p.Y+px2 > a.Y-a.HitBounds.Top && p.Y-px2 < a.Y+a.HitBounds.Bottom {
		return common.HitLeftWall
	}
	return 0
}

// collideActor judges one actor against the player and dispatches the contact's side
// effects: pickups, interaction and touch scripts, then contact damage.
func collideActor(w *ecs.World, p *ecs.Player, a *ecs.Actor) {
	var flags common.Flags
	switch {
	case a.NPCFlags.SolidSoft():
		flags = judgeSolidSoft(p, a)
		p.Flags |= flags
	case a.NPCFlags.SolidHard():
		flags = judgeSolidHard(w, p, a)
		p.Flags |= flags
	default:
		flags = judgeNonSolid(p, a)
	}

	if !a.Cond.BossPart() && flags != 0 {
		collectPickup(w, p, a)
	}

	if a.NPCFlags.Interactable() && !w.Control.InteractionsDisabled() && flags != 0 && p.Cond.Interacted() {
		w.StartScript(a.EventNum, a.ID)
		p.Cond.Set(ecs.CondInteracted, false)
		p.VelX = 0
		p.Question = false
	}

	if a.NPCFlags.EventWhenTouched() && !w.Control.InteractionsDisabled() && flags != 0 {
		w.StartScript(a.EventNum, a.ID)
	}

	if !w.Control.ControlEnabled() || a.NPCFlags.Interactable() {
		return
	}
	if a.NPCFlags.RearAndTopNotHurt() {
		if flags.HitLeftWall() && a.VelX > 0 ||
			flags.HitRightWall() && a.VelX < 0 ||
			flags.HitTopWall() && a.VelY > 0 ||
			flags.HitBottomWall() && a.VelY < 0 {
			w.DamagePlayer(a.Damage)
		}
		return
	}
	if flags != 0 && a.Damage != 0 && !w.Control.InteractionsDisabled() {
		w.DamagePlayer(a.Damage)
	}
}

func collectPickup(w *ecs.World, p *ecs.Player, a *ecs.Actor) {
	switch a.Type {
	case ecs.TypeExperience:
		w.PlaySound(ecs.SfxExpPickup)
		switch p.AddXP(a.Exp) {
		case ecs.XPLevelUp:
			w.PlaySound(ecs.SfxLevelUp)
			w.CreateCaret(p.X, p.Y, ecs.CaretLevelUp, common.Left)
			w.Events().Push(ecs.Event{Type: ecs.EventLevelUp, Data: p.Level})
		case ecs.XPAddStar:
			p.AddStar()
		}
		a.Kill()
	case ecs.TypeMissile:
		p.AddMissiles(a.Exp)
		a.Kill()
		w.PlaySound(ecs.SfxMissilePickup)
	case ecs.TypeHeart:
		p.Heal(a.Exp)
		a.Kill()
		w.PlaySound(ecs.SfxHeartPickup)
	}
}

// PlayerActorCollisionSystem judges the player against every live actor in ascending slot
// order, then against the live composite parts.
type PlayerActorCollisionSystem struct{}

func NewPlayerActorCollisionSystem() *PlayerActorCollisionSystem {
	return &PlayerActorCollisionSystem{}
}

func (s *PlayerActorCollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	p := w.Player()
	if !p.Alive() {
		return
	}

	w.EachActor(func(a *ecs.Actor) {
		collideActor(w, p, a)
	})
	w.Boss().EachLivePart(func(_ int, part *ecs.Actor) {
		collideActor(w, p, part)
	})

	if p.Question {
		w.CreateCaret(p.X, p.Y, ecs.CaretQuestionMark, common.Left)
		p.Question = false
	}
	p.Cond.Set(ecs.CondInteracted, false)
}
