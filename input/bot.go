package input

import "github.com/milk9111/actorsim/common"

// Bot produces deterministic button frames for headless runs. It holds a random
// combination of buttons for a random number of steps, then picks again.
type Bot struct {
	rng  common.RNG
	hold int
	cur  Frame
}

func NewBot(seed int32) *Bot {
	return &Bot{rng: common.NewRNG(seed)}
}

func (b *Bot) Poll() Frame {
	if b == nil {
		return 0
	}
	if b.hold > 0 {
		b.hold--
		return b.cur
	}
	b.hold = b.rng.Range(4, 40)

	var f Frame
	switch b.rng.Range(0, 2) {
	case 0:
		f |= ButtonLeft
	case 1:
		f |= ButtonRight
	}
	if b.rng.Chance(3) {
		f |= ButtonJump
	}
	if b.rng.Chance(2) {
		f |= ButtonShoot
	}
	if b.rng.Chance(10) {
		f |= ButtonInteract
	}
	b.cur = f
	return f
}
