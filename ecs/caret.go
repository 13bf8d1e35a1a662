package ecs

import "github.com/milk9111/actorsim/common"

// CaretType identifies a cosmetic particle. Carets never affect gameplay and draw only
// from the effect stream.
type CaretType uint8

const (
	CaretLevelUp CaretType = iota + 1
	CaretQuestionMark
	CaretProjectileDissipation
	CaretExpSparkle
	CaretDamageNumber
)

func (t CaretType) String() string {
	switch t {
	case CaretLevelUp:
		return "level_up"
	case CaretQuestionMark:
		return "question_mark"
	case CaretProjectileDissipation:
		return "dissipation"
	case CaretExpSparkle:
		return "sparkle"
	case CaretDamageNumber:
		return "damage"
	default:
		return "caret"
	}
}

type Caret struct {
	Type        CaretType
	X, Y        int
	VelX, VelY  int
	Direction   common.Direction
	AnimNum     int
	AnimCounter int
	Age         int
	Value       int
	dead        bool
}

func (c *Caret) Dead() bool { return c == nil || c.dead }

func (c *Caret) tick(rng *common.RNG) {
	if c == nil || c.dead {
		return
	}
	c.Age++
	switch c.Type {
	case CaretLevelUp:
		if c.Age < 20 {
			c.Y -= common.Px(1) / 2
		}
		if c.Age > 80 {
			c.dead = true
		}
	case CaretQuestionMark:
		if c.Age < 5 {
			c.Y -= common.Px(1)
		}
		if c.Age > 32 {
			c.dead = true
		}
	case CaretProjectileDissipation:
		if c.Age == 1 {
			c.VelX = rng.Range(-0x100, 0x100)
			c.VelY = rng.Range(-0x100, 0x100)
		}
		c.X += c.VelX
		c.Y += c.VelY
		c.AnimCounter++
		if c.AnimCounter > 1 {
			c.AnimCounter = 0
			c.AnimNum++
			if c.AnimNum > 3 {
				c.dead = true
			}
		}
	case CaretExpSparkle:
		if c.Age == 1 {
			c.AnimNum = rng.Range(0, 2)
		}
		c.Y -= 0x80
		if c.Age > 12 {
			c.dead = true
		}
	case CaretDamageNumber:
		if c.Age < 32 {
			c.Y -= 0x100
		}
		if c.Age > 48 {
			c.dead = true
		}
	default:
		c.dead = true
	}
}
