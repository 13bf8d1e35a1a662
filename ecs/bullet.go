package ecs

import "github.com/milk9111/actorsim/common"

// Bullet is a player shot. Shots live outside the actor store and are judged against
// shootable actors and boss parts once per step.
type Bullet struct {
	X, Y       int
	VelX, VelY int
	Direction  common.Direction
	Damage     int
	Range      int
	HitBounds  common.Rect
	Alive      bool
}

func (b *Bullet) Bounds() common.Rect {
	if b == nil {
		return common.Rect{}
	}
	return b.HitBounds.Around(b.X, b.Y)
}
