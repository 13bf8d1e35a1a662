package ecs

import (
	"github.com/milk9111/actorsim/common"
	"github.com/milk9111/actorsim/prefabs"
)

type ControlMode uint8

const (
	ControlNormal ControlMode = iota
	// ControlIronHead is the charge mode that always lands hard on solid actors.
	ControlIronHead
)

type Equipment uint16

const (
	EquipBooster08     Equipment = 0x0001
	EquipMapSystem     Equipment = 0x0002
	EquipArmsBarrier   Equipment = 0x0004
	EquipTurboCharge   Equipment = 0x0008
	EquipAirTank       Equipment = 0x0010
	EquipBooster20     Equipment = 0x0020
	EquipMimigaMask    Equipment = 0x0040
	EquipWhimsicalStar Equipment = 0x0080
	EquipNikumaru      Equipment = 0x0100
)

func (e Equipment) Has(bit Equipment) bool { return e&bit != 0 }

// XPResult reports what an experience gain did to the weapon level.
type XPResult uint8

const (
	XPNone XPResult = iota
	XPLevelUp
	// XPAddStar is returned when experience overflows the top level.
	XPAddStar
)

const MaxStars = 3

// Player is the singleton controlled entity. It shares the actor physics contract.
type Player struct {
	X, Y       int
	VelX, VelY int
	Direction  common.Direction
	HitBounds  common.Rect
	AnimNum    int
	AnimCount  int
	AnimRect   common.Rect

	Flags       common.Flags
	Cond        Condition
	ControlMode ControlMode
	Equip       Equipment

	Life     int
	MaxLife  int
	Shock    int
	Question bool
	Stars    int

	Level   int
	XP      int
	LevelXP []int

	Missiles    int
	MaxMissiles int

	JumpHeld     bool
	InteractHeld bool
	ShotCooldown int
}

// NewPlayer builds a live player from the table.
func NewPlayer(spec prefabs.PlayerSpec) Player {
	return Player{
		Direction:   common.Right,
		HitBounds:   spec.Hit.Units(),
		Cond:        CondAlive,
		Life:        spec.MaxLife,
		MaxLife:     spec.MaxLife,
		Level:       1,
		LevelXP:     append([]int(nil), spec.LevelXP...),
		MaxMissiles: spec.MaxMissiles,
	}
}

func (p *Player) Alive() bool { return p != nil && p.Cond.Alive() }

// Bounds returns the absolute hit rectangle.
func (p *Player) Bounds() common.Rect {
	if p == nil {
		return common.Rect{}
	}
	return p.HitBounds.Around(p.X, p.Y)
}

// Heal adds life, never exceeding MaxLife.
func (p *Player) Heal(n int) {
	if p == nil || n <= 0 {
		return
	}
	p.Life = common.SaturatingAdd(p.Life, n, p.MaxLife)
}

// AddMissiles adds ammo, never exceeding MaxMissiles.
func (p *Player) AddMissiles(n int) {
	if p == nil || n <= 0 {
		return
	}
	p.Missiles = common.SaturatingAdd(p.Missiles, n, p.MaxMissiles)
}

// AddXP grows the current level's experience. Crossing the threshold below the top level
// levels up and restarts the counter; at the top level experience caps and reports a star.
func (p *Player) AddXP(n int) XPResult {
	if p == nil || n <= 0 || len(p.LevelXP) == 0 {
		return XPNone
	}
	top := len(p.LevelXP)
	if p.Level < 1 {
		p.Level = 1
	}
	if p.Level > top {
		p.Level = top
	}

	p.XP += n
	threshold := p.LevelXP[p.Level-1]
	if p.XP < threshold {
		return XPNone
	}
	if p.Level < top {
		p.Level++
		p.XP = 0
		return XPLevelUp
	}
	p.XP = threshold
	return XPAddStar
}

// AddStar grants a whimsical star if the equipment is worn and the cap is not reached.
func (p *Player) AddStar() bool {
	if p == nil || !p.Equip.Has(EquipWhimsicalStar) || p.Stars >= MaxStars {
		return false
	}
	p.Stars++
	return true
}
