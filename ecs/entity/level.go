package entity

import (
	"fmt"

	"github.com/milk9111/actorsim/common"
	"github.com/milk9111/actorsim/ecs"
	"github.com/milk9111/actorsim/ecs/system"
	"github.com/milk9111/actorsim/levels"
	"github.com/milk9111/actorsim/logging"
	"github.com/sirupsen/logrus"
)

type placeFn func(w *ecs.World, ent levels.Entity) error

var placeRegistry = map[string]placeFn{
	"player": placePlayer,
	"npc":    placeNPC,
}

// LoadLevelToWorld installs the level's stage and composite and admits its placed
// actors directly, in file order. The entry event is started last.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level) error {
	if w == nil {
		return fmt.Errorf("entity: load level: nil world")
	}
	if err := lvl.Validate(); err != nil {
		return err
	}

	stage, err := buildStage(lvl)
	if err != nil {
		return fmt.Errorf("entity: level %s: %w", lvl.Name, err)
	}
	w.SetStage(stage)

	if lvl.Boss != 0 {
		if err := system.ResetBoss(w, ecs.BossType(lvl.Boss)); err != nil {
			return fmt.Errorf("entity: level %s: %w", lvl.Name, err)
		}
	}

	for i, ent := range lvl.Entities {
		place, ok := placeRegistry[ent.Type]
		if !ok {
			return fmt.Errorf("entity: level %s: entity %d: unknown kind %q", lvl.Name, i, ent.Type)
		}
		if err := place(w, ent); err != nil {
			return fmt.Errorf("entity: level %s: entity %d: %w", lvl.Name, i, err)
		}
	}

	logging.Log.WithFields(logrus.Fields{"level": lvl.Name, "actors": w.ActorCount(), "boss": lvl.Boss}).Info("level loaded")
	if lvl.EntryEvent != 0 {
		w.StartScript(lvl.EntryEvent, 0)
	}
	return nil
}

func buildStage(lvl *levels.Level) (*ecs.Stage, error) {
	cells := lvl.Solidity()
	tiles := make([]ecs.Tile, len(cells))
	for i, c := range cells {
		switch c {
		case levels.Solid:
			tiles[i] = ecs.TileSolid
		case levels.ActorSolid:
			tiles[i] = ecs.TileActorSolid
		}
	}
	return ecs.NewStage(lvl.Width, lvl.Height, tiles)
}

func placePlayer(w *ecs.World, ent levels.Entity) error {
	p := w.Player()
	p.X, p.Y = common.Tiles(ent.X), common.Tiles(ent.Y)
	if ent.Direction != "" {
		p.Direction = common.ParseDirection(ent.Direction)
	}
	return nil
}

// placeNPC admits a placed actor. Flag-gated actors are skipped according to the
// world flags at load time.
func placeNPC(w *ecs.World, ent levels.Entity) error {
	a, err := w.CreateActor(ecs.TypeID(ent.NPC), nil)
	if err != nil {
		return err
	}
	a.FlagNum = ent.Flag
	if a.NPCFlags.AppearWhenFlagSet() && !w.Flag(a.FlagNum) {
		return nil
	}
	if a.NPCFlags.HideUnlessFlagSet() && w.Flag(a.FlagNum) {
		return nil
	}

	a.X, a.Y = common.Tiles(ent.X), common.Tiles(ent.Y)
	a.EventNum = ent.Event
	if ent.Direction != "" {
		a.Direction = common.ParseDirection(ent.Direction)
	}
	w.Admit(a)
	return nil
}
