package ecs

import (
	"errors"
	"fmt"

	"github.com/milk9111/actorsim/common"
	"github.com/milk9111/actorsim/logging"
	"github.com/sirupsen/logrus"
)

var ErrUnknownType = errors.New("unknown actor type")

// CreateActor builds a live actor record of typ from the table. Its private stream is
// keyed by a draw from seedSrc; nil means the gameplay stream. The actor is not queued.
func (w *World) CreateActor(typ TypeID, seedSrc *common.RNG) (*Actor, error) {
	if w == nil {
		return nil, fmt.Errorf("ecs: create actor %d: nil world", typ)
	}
	spec, ok := w.table.Type(int(typ))
	if !ok {
		return nil, fmt.Errorf("ecs: create actor %d: %w", typ, ErrUnknownType)
	}
	flags, err := ParseNPCFlags(spec.Flags)
	if err != nil {
		return nil, fmt.Errorf("ecs: create actor %d: %w", typ, err)
	}
	if seedSrc == nil {
		seedSrc = &w.gameRNG
	}

	a := &Actor{
		Type:          typ,
		HitBounds:     spec.Hit.Units(),
		DisplayBounds: spec.Display.Units(),
		NPCFlags:      flags,
		Cond:          CondAlive,
		Life:          spec.Life,
		MaxLife:       spec.Life,
		Damage:        spec.Damage,
		Exp:           spec.Exp,
		Size:          spec.Size,
		HurtSound:     spec.HurtSound,
		DeathSound:    spec.DeathSound,
		RNG:           common.NewRNG(seedSrc.Derive(int(typ))),
	}
	if flags.Has(FlagSpawnFacingRight) {
		a.Direction = common.Right
	}
	a.AnimRect = spec.Frame(0, a.Direction)
	return a, nil
}

// SpawnActor creates an actor, lets init set its initial fields and queues it.
// Failures are logged and reported; the step carries on.
func (w *World) SpawnActor(typ TypeID, seedSrc *common.RNG, init func(a *Actor)) *Actor {
	a, err := w.CreateActor(typ, seedSrc)
	if err != nil {
		logging.Log.WithFields(logrus.Fields{"type": typ, "frame": w.Frame()}).WithError(err).Error("spawn rejected")
		return nil
	}
	if init != nil {
		init(a)
	}
	w.Spawn(a)
	return a
}
