package ecs

import (
	"testing"

	"github.com/milk9111/actorsim/common"
	"github.com/milk9111/actorsim/logging"
	"github.com/milk9111/actorsim/prefabs"
)

const typeFrog TypeID = 104

func init() {
	logging.Discard()
}

func newTestWorld(t *testing.T, seed int32) *World {
	t.Helper()
	table, err := prefabs.LoadNPCTable()
	if err != nil {
		t.Fatalf("load table: %v", err)
	}
	return NewWorld(table, seed)
}

func admit(t *testing.T, w *World, typ TypeID) *Actor {
	t.Helper()
	a, err := w.CreateActor(typ, nil)
	if err != nil {
		t.Fatalf("create actor %d: %v", typ, err)
	}
	if !w.Admit(a) {
		t.Fatalf("admit actor %d failed", typ)
	}
	return a
}

type recordingSound struct{ ids []int }

func (r *recordingSound) PlaySFX(id int) error {
	r.ids = append(r.ids, id)
	return nil
}

func (r *recordingSound) played(id int) bool {
	for _, v := range r.ids {
		if v == id {
			return true
		}
	}
	return false
}

func TestSparseSetAscendingAfterRemove(t *testing.T) {
	var s SparseSet[string]
	s.Set(3, "c")
	s.Set(1, "a")
	s.Set(2, "b")
	s.Remove(1)
	s.Set(5, "e")

	var got []int
	s.Ascending(func(id int, _ string) { got = append(got, id) })
	want := []int{2, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if s.Has(1) {
		t.Fatal("removed id still present")
	}
	if v, ok := s.Get(3); !ok || v != "c" {
		t.Fatalf("expected c, got %q %v", v, ok)
	}
}

func TestStoreReusesLowestFreeSlot(t *testing.T) {
	w := newTestWorld(t, 1)
	a := admit(t, w, typeFrog)
	b := admit(t, w, typeFrog)
	c := admit(t, w, typeFrog)
	oldA := a.ID

	c.Kill()
	a.Kill()
	if n := w.ReclaimDead(); n != 2 {
		t.Fatalf("expected 2 reclaimed, got %d", n)
	}
	if w.Actor(oldA) != nil {
		t.Fatal("stale handle resolved after reclaim")
	}
	if w.Actor(b.ID) != b {
		t.Fatal("live handle no longer resolves")
	}

	d := admit(t, w, typeFrog)
	if d.ID.Slot() != oldA.Slot() {
		t.Fatalf("expected slot %d reused, got %d", oldA.Slot(), d.ID.Slot())
	}
	if d.ID == oldA {
		t.Fatal("reused slot must carry a new generation")
	}
}

func TestStoreFullDropsSpawn(t *testing.T) {
	w := newTestWorld(t, 1)
	for i := 0; i < MaxActors; i++ {
		admit(t, w, TypeSmoke)
	}
	extra, err := w.CreateActor(TypeSmoke, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if w.Admit(extra) {
		t.Fatal("expected admission to fail when the store is full")
	}
	found := false
	for _, evt := range w.Events().Peek() {
		if evt.Type == EventSpawnDrop {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a spawn drop event")
	}
}

func TestSpawnIsDeferredUntilAdmit(t *testing.T) {
	w := newTestWorld(t, 1)
	a := w.SpawnActor(typeFrog, nil, func(a *Actor) { a.X = common.Px(10) })
	if a == nil {
		t.Fatal("spawn rejected")
	}
	if w.ActorCount() != 0 {
		t.Fatalf("queued actor visible before drain: %d", w.ActorCount())
	}
	if w.Spawns().Len() != 1 {
		t.Fatalf("expected 1 queued spawn, got %d", w.Spawns().Len())
	}
	for _, q := range w.Spawns().Drain() {
		w.Admit(q)
	}
	if w.ActorCount() != 1 || a.X != common.Px(10) {
		t.Fatalf("expected admitted actor at x=10px, count=%d x=%d", w.ActorCount(), a.X)
	}
}

func TestUnknownTypeIsRejected(t *testing.T) {
	w := newTestWorld(t, 1)
	if _, err := w.CreateActor(9999, nil); err == nil {
		t.Fatal("expected error for unknown type")
	}
	if a := w.SpawnActor(9999, nil, nil); a != nil {
		t.Fatal("expected nil actor for unknown type")
	}
	if w.Spawns().Len() != 0 {
		t.Fatal("rejected spawn must not be queued")
	}
}

func TestAdmitResolvesFacingPlayer(t *testing.T) {
	w := newTestWorld(t, 1)
	w.Player().X = common.Px(100)

	left, _ := w.CreateActor(typeFrog, nil)
	left.X = common.Px(150)
	left.Direction = common.FacingPlayer
	w.Admit(left)
	if left.Direction != common.Left {
		t.Fatalf("actor right of the player should face left, got %v", left.Direction)
	}

	right, _ := w.CreateActor(typeFrog, nil)
	right.X = common.Px(50)
	right.Direction = common.FacingPlayer
	w.Admit(right)
	if right.Direction != common.Right {
		t.Fatalf("actor left of the player should face right, got %v", right.Direction)
	}
}

func TestDamageActor(t *testing.T) {
	t.Run("life saturates and defeat queues drops", func(t *testing.T) {
		w := newTestWorld(t, 1)
		snd := &recordingSound{}
		w.SetSound(snd)
		a := admit(t, w, typeFrog)

		if !w.DamageActor(a, a.Life+100) {
			t.Fatal("expected the shot to be consumed")
		}
		if a.Life != 0 || a.Alive() {
			t.Fatalf("expected dead actor with zero life, life=%d alive=%v", a.Life, a.Alive())
		}
		if !snd.played(a.DeathSound) {
			t.Fatalf("expected death sound %d, got %v", a.DeathSound, snd.ids)
		}
		counts := map[TypeID]int{}
		for _, q := range w.Spawns().Drain() {
			counts[q.Type]++
		}
		if counts[TypeSmoke] != smokeBySize[a.Size] {
			t.Fatalf("expected %d smoke, got %d", smokeBySize[a.Size], counts[TypeSmoke])
		}
		if counts[TypeExperience] != a.Exp {
			t.Fatalf("expected %d experience drops, got %d", a.Exp, counts[TypeExperience])
		}
	})
	t.Run("invulnerable blocks the shot", func(t *testing.T) {
		w := newTestWorld(t, 1)
		snd := &recordingSound{}
		w.SetSound(snd)
		a := admit(t, w, typeFrog)
		a.NPCFlags.Set(FlagShootable, false)
		a.NPCFlags.Set(FlagInvulnerable, true)
		life := a.Life

		if !w.DamageActor(a, 5) {
			t.Fatal("invulnerable actor should consume the shot")
		}
		if a.Life != life || !snd.played(SfxTink) {
			t.Fatalf("expected unharmed actor and tink, life=%d sounds=%v", a.Life, snd.ids)
		}
	})
	t.Run("non-shootable lets the shot pass", func(t *testing.T) {
		w := newTestWorld(t, 1)
		a := admit(t, w, typeFrog)
		a.NPCFlags.Set(FlagShootable, false)
		if w.DamageActor(a, 5) {
			t.Fatal("shot should pass through")
		}
	})
	t.Run("shootable wins over invulnerable", func(t *testing.T) {
		w := newTestWorld(t, 1)
		a := admit(t, w, typeFrog)
		a.NPCFlags.Set(FlagInvulnerable, true)
		life := a.Life
		w.DamageActor(a, 5)
		if a.Life != life-5 {
			t.Fatalf("expected life %d, got %d", life-5, a.Life)
		}
	})
}

func TestDamagePlayer(t *testing.T) {
	w := newTestWorld(t, 1)
	p := w.Player()
	p.Life = 3

	w.DamagePlayer(2)
	if p.Life != 1 || p.Shock == 0 {
		t.Fatalf("expected life 1 and shock, got life=%d shock=%d", p.Life, p.Shock)
	}
	w.DamagePlayer(2)
	if p.Life != 1 {
		t.Fatalf("damage during shock must be ignored, life=%d", p.Life)
	}

	p.Shock = 0
	w.DamagePlayer(5)
	if p.Life != 0 || p.Alive() {
		t.Fatalf("expected dead player at zero life, life=%d alive=%v", p.Life, p.Alive())
	}
}

func TestPlayerAddXP(t *testing.T) {
	tests := []struct {
		name      string
		level, xp int
		gain      int
		want      XPResult
		wantLevel int
		wantXP    int
	}{
		{name: "below threshold", level: 1, xp: 0, gain: 5, want: XPNone, wantLevel: 1, wantXP: 5},
		{name: "level up", level: 1, xp: 0, gain: 10, want: XPLevelUp, wantLevel: 2, wantXP: 0},
		{name: "top level caps", level: 3, xp: 9, gain: 5, want: XPAddStar, wantLevel: 3, wantXP: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(prefabs.PlayerSpec{MaxLife: 3, LevelXP: []int{10, 20, 10}})
			p.Level, p.XP = tt.level, tt.xp
			if got := p.AddXP(tt.gain); got != tt.want {
				t.Fatalf("expected result %d, got %d", tt.want, got)
			}
			if p.Level != tt.wantLevel || p.XP != tt.wantXP {
				t.Fatalf("expected level %d xp %d, got level %d xp %d", tt.wantLevel, tt.wantXP, p.Level, p.XP)
			}
		})
	}
}

func TestPlayerSaturatingInventory(t *testing.T) {
	p := NewPlayer(prefabs.PlayerSpec{MaxLife: 5, MaxMissiles: 4})
	p.Life = 4
	p.Heal(10)
	if p.Life != 5 {
		t.Fatalf("expected life capped at 5, got %d", p.Life)
	}
	p.AddMissiles(10)
	if p.Missiles != 4 {
		t.Fatalf("expected missiles capped at 4, got %d", p.Missiles)
	}
	if p.AddStar() {
		t.Fatal("star requires the whimsical star")
	}
	p.Equip |= EquipWhimsicalStar
	for i := 0; i < MaxStars; i++ {
		if !p.AddStar() {
			t.Fatalf("star %d should be granted", i)
		}
	}
	if p.AddStar() {
		t.Fatal("stars must cap")
	}
}

func TestChecksumTracksGameplayStream(t *testing.T) {
	a := newTestWorld(t, 5)
	b := newTestWorld(t, 5)
	if a.Checksum() != b.Checksum() {
		t.Fatal("identical worlds must hash equally")
	}

	b.SetEffectSeed(12345)
	b.EffectRNG().Next()
	if a.Checksum() != b.Checksum() {
		t.Fatal("effect stream must not affect the checksum")
	}

	b.GameRNG().Next()
	if a.Checksum() == b.Checksum() {
		t.Fatal("gameplay stream must affect the checksum")
	}
}

func TestStepCountsFramesAndStopsOnShutdown(t *testing.T) {
	w := newTestWorld(t, 1)
	w.Step()
	w.Step()
	if w.Frame() != 2 {
		t.Fatalf("expected frame 2, got %d", w.Frame())
	}
	w.Shutdown()
	w.Step()
	if w.Frame() != 2 {
		t.Fatalf("steps after shutdown must be ignored, frame=%d", w.Frame())
	}
}

func TestScriptHandOff(t *testing.T) {
	w := newTestWorld(t, 1)
	w.StartScript(100, 0)
	if !w.Control.ControlEnabled() || w.Control.InteractionsDisabled() {
		t.Fatal("a world without a script runner must restore control immediately")
	}

	runner := &stubRunner{}
	w.SetScripts(runner)
	w.StartScript(100, 0)
	if w.Control.ControlEnabled() || !w.Control.InteractionsDisabled() {
		t.Fatal("control should be held while a script runs")
	}
	if runner.event != 100 {
		t.Fatalf("expected event 100, got %d", runner.event)
	}
	w.EndScript()
	if !w.Control.ControlEnabled() {
		t.Fatal("control should return after the script ends")
	}
}

type stubRunner struct{ event int }

func (s *stubRunner) StartScript(event int, _ Entity) error {
	s.event = event
	return nil
}
