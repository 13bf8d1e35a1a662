package system

import (
	"testing"

	"github.com/milk9111/actorsim/common"
	"github.com/milk9111/actorsim/ecs"
)

func shot(x, y, vel int) ecs.Bullet {
	return ecs.Bullet{
		X: x, Y: y, VelX: vel,
		Direction: common.Right,
		Damage:    4,
		Range:     40,
		HitBounds: playerShotBounds,
	}
}

func TestBulletDamagesActor(t *testing.T) {
	w, _ := newTestWorld(t)
	a := admit(t, w, TypeFrog, common.Tiles(5), common.Tiles(5))
	life := a.Life
	w.AddBullet(shot(a.X-common.Px(12), a.Y, common.Px(4)))

	NewBulletSystem().Update(w)
	if a.Life != life-4 {
		t.Fatalf("expected life %d, got %d", life-4, a.Life)
	}
	if len(w.Bullets()) != 0 {
		t.Fatal("consumed shot should be pruned")
	}
}

func TestBulletPassesNonShootable(t *testing.T) {
	w, _ := newTestWorld(t)
	a := admit(t, w, ecs.TypeSmoke, common.Tiles(5), common.Tiles(5))
	w.AddBullet(shot(a.X, a.Y, common.Px(1)))

	NewBulletSystem().Update(w)
	if len(w.Bullets()) != 1 {
		t.Fatal("shot should pass through a non-shootable actor")
	}
}

func TestBulletRunsOutOfRange(t *testing.T) {
	w, _ := newTestWorld(t)
	b := shot(common.Tiles(5), common.Tiles(5), common.Px(1))
	b.Range = 2
	w.AddBullet(b)

	s := NewBulletSystem()
	s.Update(w)
	if len(w.Bullets()) != 1 {
		t.Fatal("shot should survive its first step")
	}
	s.Update(w)
	if len(w.Bullets()) != 0 {
		t.Fatal("shot should expire at the end of its range")
	}
	found := false
	for _, c := range w.Carets() {
		if c.Type == ecs.CaretProjectileDissipation {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a dissipation caret")
	}
}

func TestBulletStopsAtWall(t *testing.T) {
	w, _ := newTestWorld(t)
	w.SetStage(floorStage(t, ecs.TileSolid))
	w.AddBullet(shot(common.Tiles(2), common.Tiles(4)-common.Px(9), common.Px(2)))

	NewBulletSystem().Update(w)
	if len(w.Bullets()) != 1 {
		t.Fatal("shot above the floor should keep flying")
	}

	w.AddBullet(shot(common.Tiles(2), common.Tiles(4), common.Px(2)))
	NewBulletSystem().Update(w)
	if len(w.Bullets()) != 1 {
		t.Fatalf("shot inside the floor should stop, %d left", len(w.Bullets()))
	}
}
