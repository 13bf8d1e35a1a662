package ecs

import "github.com/milk9111/actorsim/common"

const (
	// ActionPickupDropped is the initial action code of pickups dropped by a defeated
	// actor. Dropped pickups time out; placed ones do not.
	ActionPickupDropped = 10

	TypeExperience TypeID = 1
	TypeSmoke      TypeID = 4
	TypeMissile    TypeID = 86
	TypeHeart      TypeID = 87

	playerShockFrames = 128
	actorShockFrames  = 16
	bossShockFrames   = 8
)

var smokeBySize = map[int]int{1: 3, 2: 8, 3: 16}

// DamagePlayer applies contact damage. Damage is ignored while the player is still
// flashing from the previous hit. Life saturates at zero and zero life starts the death
// event instead of going negative.
func (w *World) DamagePlayer(dmg int) {
	if w == nil {
		return
	}
	p := &w.player
	if !p.Alive() || dmg <= 0 || p.Shock > 0 {
		return
	}
	p.Shock = playerShockFrames
	p.VelY = -2 * common.Unit
	p.Life = common.SaturatingSub(p.Life, dmg)
	w.PlaySound(SfxPlayerHurt)
	if c := w.CreateCaret(p.X, p.Y, CaretDamageNumber, common.Left); c != nil {
		c.Value = -dmg
	}
	w.events.Push(Event{Type: EventPlayerHurt, Data: dmg})

	if p.Life == 0 {
		w.PlaySound(SfxPlayerDie)
		p.Cond.Set(CondAlive, false)
		w.StartScript(EventPlayerDeath, 0)
	}
}

// DamageActor applies a shot to a live actor and reports whether the shot was consumed.
// Shootable takes precedence; otherwise invulnerable actors block the shot unharmed.
func (w *World) DamageActor(a *Actor, dmg int) bool {
	if w == nil || !a.Alive() {
		return false
	}
	if !a.NPCFlags.Shootable() {
		if a.NPCFlags.Invulnerable() {
			w.PlaySound(SfxTink)
			return true
		}
		return false
	}
	if dmg <= 0 {
		return true
	}

	a.Life = common.SaturatingSub(a.Life, dmg)
	a.Shock = actorShockFrames
	if a.NPCFlags.ShowDamage() {
		if c := w.CreateCaret(a.X, a.Y, CaretDamageNumber, common.Left); c != nil {
			c.Value = -dmg
		}
	}
	if a.Life > 0 {
		w.PlaySound(a.HurtSound)
		return true
	}
	w.defeatActor(a)
	return true
}

func (w *World) defeatActor(a *Actor) {
	if a.NPCFlags.EventWhenKilled() {
		a.NPCFlags.Set(FlagShootable, false)
		a.NPCFlags.Set(FlagEventWhenKilled, false)
		w.StartScript(a.EventNum, a.ID)
		return
	}

	a.Kill()
	w.PlaySound(a.DeathSound)
	w.events.Push(Event{Type: EventActorDied, Data: a.ID})

	w.SpawnSmoke(a.X, a.Y, smokeBySize[a.Size], &a.RNG)
	w.dropExperience(a)
	if a.Exp > 0 && a.RNG.Range(0, 4) == 0 {
		w.SpawnActor(TypeHeart, &a.RNG, func(h *Actor) {
			h.X, h.Y = a.X, a.Y
			h.ActionNum = ActionPickupDropped
		})
	}
}

// SpawnSmoke queues n smoke puffs around (x, y), drawing placement from rng.
func (w *World) SpawnSmoke(x, y, n int, rng *common.RNG) {
	for i := 0; i < n; i++ {
		w.SpawnActor(TypeSmoke, rng, func(s *Actor) {
			s.Direction = common.Left
			s.X = x + rng.Range(-12, 12)*common.Unit
			s.Y = y + rng.Range(-12, 12)*common.Unit
			s.VelX = rng.Range(-0x155, 0x155)
			s.VelY = rng.Range(-0x600, 0)
		})
	}
}

// dropExperience splits the actor's experience into pickups worth 20, 5 and 1.
func (w *World) dropExperience(a *Actor) {
	remaining := a.Exp
	for remaining > 0 {
		value := 1
		switch {
		case remaining >= 20:
			value = 20
		case remaining >= 5:
			value = 5
		}
		remaining -= value
		w.SpawnActor(TypeExperience, &a.RNG, func(x *Actor) {
			x.X, x.Y = a.X, a.Y
			x.Exp = value
			x.VelX = a.RNG.Range(-0x200, 0x200)
			x.VelY = a.RNG.Range(-0x400, 0)
		})
	}
}

// DamageBossPart applies a shot to a composite part. Parts flagged damage-boss forward
// the damage to the driver. A driver carrying event-when-killed starts its event the first
// time its life reaches zero.
func (w *World) DamageBossPart(idx, dmg int) bool {
	if w == nil || idx < 0 || idx >= BossPartCount {
		return false
	}
	part := &w.boss.Parts[idx]
	if !part.Alive() {
		return false
	}
	if !part.NPCFlags.Shootable() {
		if part.NPCFlags.Invulnerable() {
			w.PlaySound(SfxTink)
			return true
		}
		return false
	}
	if dmg <= 0 {
		return true
	}

	target := part
	if part.Cond.DamageBoss() {
		target = &w.boss.Parts[0]
	}
	target.Life = common.SaturatingSub(target.Life, dmg)
	target.Shock = bossShockFrames
	if target.NPCFlags.ShowDamage() {
		if c := w.CreateCaret(part.X, part.Y, CaretDamageNumber, common.Left); c != nil {
			c.Value = -dmg
		}
	}
	w.PlaySound(w.boss.HurtSound[idx])

	if target.Life == 0 && target.NPCFlags.EventWhenKilled() {
		target.NPCFlags.Set(FlagEventWhenKilled, false)
		part.NPCFlags.Set(FlagShootable, false)
		w.StartScript(target.EventNum, 0)
	}
	return true
}
