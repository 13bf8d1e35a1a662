package system

import (
	"github.com/milk9111/actorsim/common"
	"github.com/milk9111/actorsim/ecs"
)

// BulletSystem moves player shots and resolves them against the stage, the actor store
// and the composite. A shot is spent by the first target that consumes it.
type BulletSystem struct{}

func NewBulletSystem() *BulletSystem { return &BulletSystem{} }

func (s *BulletSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	stage := w.Stage()
	w.EachBullet(func(b *ecs.Bullet) {
		b.X += b.VelX
		b.Y += b.VelY
		b.Range--
		if b.Range <= 0 || (stage != nil && stage.At(common.ToTile(b.X), common.ToTile(b.Y)) == ecs.TileSolid) {
			b.Alive = false
			w.CreateCaret(b.X, b.Y, ecs.CaretProjectileDissipation, b.Direction)
			return
		}

		box := b.Bounds()
		w.EachActor(func(a *ecs.Actor) {
			if !b.Alive || !a.Bounds().Intersects(box) {
				return
			}
			if w.DamageActor(a, b.Damage) {
				b.Alive = false
			}
		})
		w.Boss().EachLivePart(func(idx int, part *ecs.Actor) {
			if !b.Alive || !part.Bounds().Intersects(box) {
				return
			}
			if w.DamageBossPart(idx, b.Damage) {
				b.Alive = false
			}
		})
	})
	w.PruneBullets()
}
