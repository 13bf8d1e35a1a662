package ecs

// BossType selects the composite behavior. Zero means no boss is loaded.
type BossType uint16

// BossPartCount is the fixed number of records a composite owns.
const BossPartCount = 20

// Boss is a composite actor. Parts[0] drives the state machine; the other parts are
// positioned from the driver each step and only collide while alive.
type Boss struct {
	Type      BossType
	Parts     [BossPartCount]Actor
	HurtSound [BossPartCount]int
}

func (b *Boss) Driver() *Actor {
	if b == nil {
		return nil
	}
	return &b.Parts[0]
}

func (b *Boss) Active() bool {
	return b != nil && b.Type != 0
}

// Reset installs a new composite type with every part dormant.
func (b *Boss) Reset(typ BossType) {
	if b == nil {
		return
	}
	*b = Boss{Type: typ}
	for i := range b.Parts {
		b.Parts[i].Cond = CondBossPart
	}
}

// EachLivePart calls fn for every alive part, driver first.
func (b *Boss) EachLivePart(fn func(idx int, part *Actor)) {
	if b == nil || fn == nil {
		return
	}
	for i := range b.Parts {
		if b.Parts[i].Alive() {
			fn(i, &b.Parts[i])
		}
	}
}
