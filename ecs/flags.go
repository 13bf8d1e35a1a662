package ecs

import (
	"fmt"
	"strings"
)

// NPCFlags is the per-actor capability bitset. Bit values match the authored table.
type NPCFlags uint16

const (
	FlagSolidSoft         NPCFlags = 0x0001
	FlagIgnoreTile44      NPCFlags = 0x0002
	FlagInvulnerable      NPCFlags = 0x0004
	FlagIgnoreSolidity    NPCFlags = 0x0008
	FlagBouncy            NPCFlags = 0x0010
	FlagShootable         NPCFlags = 0x0020
	FlagSolidHard         NPCFlags = 0x0040
	FlagRearAndTopNotHurt NPCFlags = 0x0080
	FlagEventWhenTouched  NPCFlags = 0x0100
	FlagEventWhenKilled   NPCFlags = 0x0200
	FlagAppearWhenFlagSet NPCFlags = 0x0800
	FlagSpawnFacingRight  NPCFlags = 0x1000
	FlagInteractable      NPCFlags = 0x2000
	FlagHideUnlessFlagSet NPCFlags = 0x4000
	FlagShowDamage        NPCFlags = 0x8000
)

var npcFlagNames = map[string]NPCFlags{
	"solid_soft":            FlagSolidSoft,
	"ignore_tile_44":        FlagIgnoreTile44,
	"invulnerable":          FlagInvulnerable,
	"ignore_solidity":       FlagIgnoreSolidity,
	"bouncy":                FlagBouncy,
	"shootable":             FlagShootable,
	"solid_hard":            FlagSolidHard,
	"rear_and_top_not_hurt": FlagRearAndTopNotHurt,
	"event_when_touched":    FlagEventWhenTouched,
	"event_when_killed":     FlagEventWhenKilled,
	"appear_when_flag_set":  FlagAppearWhenFlagSet,
	"spawn_facing_right":    FlagSpawnFacingRight,
	"interactable":          FlagInteractable,
	"hide_unless_flag_set":  FlagHideUnlessFlagSet,
	"show_damage":           FlagShowDamage,
}

// ParseNPCFlags folds table flag names into a bitset.
func ParseNPCFlags(names []string) (NPCFlags, error) {
	var out NPCFlags
	for _, name := range names {
		bit, ok := npcFlagNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, fmt.Errorf("unknown npc flag %q", name)
		}
		out |= bit
	}
	return out, nil
}

func (f NPCFlags) Has(bit NPCFlags) bool { return f&bit != 0 }

func (f *NPCFlags) Set(bit NPCFlags, on bool) {
	if on {
		*f |= bit
		return
	}
	*f &^= bit
}

func (f NPCFlags) SolidSoft() bool         { return f.Has(FlagSolidSoft) }
func (f NPCFlags) SolidHard() bool         { return f.Has(FlagSolidHard) }
func (f NPCFlags) Bouncy() bool            { return f.Has(FlagBouncy) }
func (f NPCFlags) Invulnerable() bool      { return f.Has(FlagInvulnerable) }
func (f NPCFlags) Shootable() bool         { return f.Has(FlagShootable) }
func (f NPCFlags) IgnoreSolidity() bool    { return f.Has(FlagIgnoreSolidity) }
func (f NPCFlags) IgnoreTile44() bool      { return f.Has(FlagIgnoreTile44) }
func (f NPCFlags) RearAndTopNotHurt() bool { return f.Has(FlagRearAndTopNotHurt) }
func (f NPCFlags) EventWhenTouched() bool  { return f.Has(FlagEventWhenTouched) }
func (f NPCFlags) EventWhenKilled() bool   { return f.Has(FlagEventWhenKilled) }
func (f NPCFlags) Interactable() bool      { return f.Has(FlagInteractable) }
func (f NPCFlags) ShowDamage() bool        { return f.Has(FlagShowDamage) }
func (f NPCFlags) AppearWhenFlagSet() bool { return f.Has(FlagAppearWhenFlagSet) }
func (f NPCFlags) HideUnlessFlagSet() bool { return f.Has(FlagHideUnlessFlagSet) }

// Condition holds the runtime state bits of an actor or the player.
type Condition uint8

const (
	CondAlive Condition = 1 << iota
	CondInteracted
	CondHidden
	// CondDamageBoss routes damage taken by a boss part to the driver.
	CondDamageBoss
	// CondBossPart marks records owned by a composite; pickups never trigger on them.
	CondBossPart
)

func (c Condition) Alive() bool      { return c&CondAlive != 0 }
func (c Condition) Interacted() bool { return c&CondInteracted != 0 }
func (c Condition) Hidden() bool     { return c&CondHidden != 0 }
func (c Condition) DamageBoss() bool { return c&CondDamageBoss != 0 }
func (c Condition) BossPart() bool   { return c&CondBossPart != 0 }

func (c *Condition) Set(bit Condition, on bool) {
	if on {
		*c |= bit
		return
	}
	*c &^= bit
}

// ControlFlags are the world-level gates shared with the script runner.
type ControlFlags uint8

const (
	ControlTickWorld ControlFlags = 1 << iota
	ControlEnabled
	ControlInteractionsDisabled
)

func (c ControlFlags) TickWorld() bool            { return c&ControlTickWorld != 0 }
func (c ControlFlags) ControlEnabled() bool       { return c&ControlEnabled != 0 }
func (c ControlFlags) InteractionsDisabled() bool { return c&ControlInteractionsDisabled != 0 }

func (c *ControlFlags) Set(bit ControlFlags, on bool) {
	if on {
		*c |= bit
		return
	}
	*c &^= bit
}
