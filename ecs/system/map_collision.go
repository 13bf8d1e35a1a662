package system

import (
	"github.com/milk9111/actorsim/common"
	"github.com/milk9111/actorsim/ecs"
)

var (
	blockHalf  = common.Px(8)
	blockSideY = common.Px(4)
	blockSideX = common.Px(5)
)

// judgeBlock resolves a body against the solid tile centred on (tx, ty). The four tests
// use slightly inset spans so a body resting on a floor does not also snag on the wall
// tiles beside it.
func judgeBlock(x, y, velX, velY *int, hit common.Rect, tx, ty int) common.Flags {
	var flags common.Flags
	cx, cy := common.Tiles(tx), common.Tiles(ty)

	if *y-hit.Top < cy+blockSideY && *y+hit.Bottom > cy-blockSideY &&
		*x-hit.Left < cx+blockHalf && *x-hit.Left > cx {
		*x = cx + blockHalf + hit.Left
		if *velX < 0 {
			*velX = 0
		}
		flags |= common.HitLeftWall
	}

	if *y-hit.Top < cy+blockSideY && *y+hit.Bottom > cy-blockSideY &&
		*x+hit.Right > cx-blockHalf && *x+hit.Right < cx {
		*x = cx - blockHalf - hit.Right
		if *velX > 0 {
			*velX = 0
		}
		flags |= common.HitRightWall
	}

	if *x-hit.Left < cx+blockSideX && *x+hit.Right > cx-blockSideX &&
		*y-hit.Top < cy+blockHalf && *y-hit.Top > cy {
		*y = cy + blockHalf + hit.Top
		if *velY < 0 {
			*velY = 0
		}
		flags |= common.HitTopWall
	}

	if *x-hit.Left < cx+blockSideX && *x+hit.Right > cx-blockSideX &&
		*y+hit.Bottom > cy-blockHalf && *y+hit.Bottom < cy {
		*y = cy - blockHalf - hit.Bottom
		if *velY > 0 {
			*velY = 0
		}
		flags |= common.HitBottomWall
	}

	return flags
}

// judgeMap tests every tile the body overlaps, row by row.
func judgeMap(stage *ecs.Stage, x, y, velX, velY *int, hit common.Rect, solid func(ecs.Tile) bool) common.Flags {
	if stage == nil {
		return 0
	}
	var flags common.Flags
	tx0, tx1 := common.ToTile(*x-hit.Left), common.ToTile(*x+hit.Right)
	ty0, ty1 := common.ToTile(*y-hit.Top), common.ToTile(*y+hit.Bottom)
	for ty := ty0; ty <= ty1; ty++ {
		for tx := tx0; tx <= tx1; tx++ {
			if !solid(stage.At(tx, ty)) {
				continue
			}
			flags |= judgeBlock(x, y, velX, velY, hit, tx, ty)
		}
	}
	return flags
}

func judgeActorMap(stage *ecs.Stage, a *ecs.Actor) common.Flags {
	passActorSolid := a.NPCFlags.IgnoreTile44()
	return judgeMap(stage, &a.X, &a.Y, &a.VelX, &a.VelY, a.HitBounds, func(t ecs.Tile) bool {
		return t == ecs.TileSolid || (t == ecs.TileActorSolid && !passActorSolid)
	})
}

func judgePlayerMap(stage *ecs.Stage, p *ecs.Player) common.Flags {
	return judgeMap(stage, &p.X, &p.Y, &p.VelX, &p.VelY, p.HitBounds, func(t ecs.Tile) bool {
		return t == ecs.TileSolid
	})
}

// ActorMapCollisionSystem clears each live actor's contact flags and judges it against
// the stage. Actors that ignore solidity keep empty flags.
type ActorMapCollisionSystem struct{}

func NewActorMapCollisionSystem() *ActorMapCollisionSystem { return &ActorMapCollisionSystem{} }

func (s *ActorMapCollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	stage := w.Stage()
	w.EachActor(func(a *ecs.Actor) {
		a.Flags = 0
		if a.NPCFlags.IgnoreSolidity() {
			return
		}
		a.Flags |= judgeActorMap(stage, a)
	})
}

type PlayerMapCollisionSystem struct{}

func NewPlayerMapCollisionSystem() *PlayerMapCollisionSystem { return &PlayerMapCollisionSystem{} }

func (s *PlayerMapCollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	p := w.Player()
	p.Flags = 0
	if !p.Alive() {
		return
	}
	fall := p.VelY
	p.Flags |= judgePlayerMap(w.Stage(), p)
	if p.Flags.HitTopWall() && fall < -common.Unit {
		w.PlaySound(ecs.SfxBonk)
	}
	if p.Flags.HitBottomWall() && fall > 2*common.Unit {
		w.PlaySound(ecs.SfxThud)
	}
}
