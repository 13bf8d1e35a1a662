package ecs

import "github.com/milk9111/actorsim/common"

// TypeID selects the behavior and table entry of an actor.
type TypeID uint16

// Actor is the mutable record of one simulated entity. The scheduler only sees the
// type-erased action tuple (ActionNum, ActionCounter, AnimNum); each behavior gives the
// codes its own meaning.
type Actor struct {
	ID   Entity
	Type TypeID

	X, Y           int
	VelX, VelY     int
	VelX2, VelY2   int
	TargetX        int
	TargetY        int
	Direction      common.Direction
	ActionNum      int
	ActionCounter  int
	ActionCounter2 int
	AnimNum        int
	AnimCounter    int
	Shock          int

	HitBounds     common.Rect
	DisplayBounds common.Rect
	AnimRect      common.Rect

	Flags    common.Flags
	NPCFlags NPCFlags
	Cond     Condition

	Life       int
	MaxLife    int
	Damage     int
	Exp        int
	Size       int
	EventNum   int
	FlagNum    int
	HurtSound  int
	DeathSound int

	RNG common.RNG
}

// SetAction switches to code and resets the state-local counter.
func (a *Actor) SetAction(code int) {
	if a == nil {
		return
	}
	a.ActionNum = code
	a.ActionCounter = 0
}

// SetActionAnim switches to code, resets the counter and restarts the animation at anim.
func (a *Actor) SetActionAnim(code, anim int) {
	if a == nil {
		return
	}
	a.SetAction(code)
	a.AnimNum = anim
	a.AnimCounter = 0
}

// Animate advances AnimNum every period+1 ticks, looping from last back to first.
func (a *Actor) Animate(period, first, last int) {
	if a == nil {
		return
	}
	a.AnimCounter++
	if a.AnimCounter > period {
		a.AnimCounter = 0
		a.AnimNum++
		if a.AnimNum > last {
			a.AnimNum = first
		}
	}
}

func (a *Actor) Alive() bool {
	return a != nil && a.Cond.Alive()
}

// Kill clears the alive condition. The slot is reclaimed at the next spawn drain.
func (a *Actor) Kill() {
	if a == nil {
		return
	}
	a.Cond.Set(CondAlive, false)
}

// Bounds returns the absolute hit rectangle. Left and right extents follow facing.
func (a *Actor) Bounds() common.Rect {
	if a == nil {
		return common.Rect{}
	}
	hit := a.HitBounds
	if a.Direction == common.Right {
		hit = hit.Mirrored()
	}
	return hit.Around(a.X, a.Y)
}

// Integrate moves the actor by its velocity.
func (a *Actor) Integrate() {
	if a == nil {
		return
	}
	a.X += a.VelX
	a.Y += a.VelY
}
