package system

import (
	"testing"

	"github.com/milk9111/actorsim/common"
	"github.com/milk9111/actorsim/ecs"
)

var box8 = common.Rect{Left: common.Px(8), Top: common.Px(8), Right: common.Px(8), Bottom: common.Px(8)}

func solidActor(t *testing.T, w *ecs.World, flag ecs.NPCFlags) *ecs.Actor {
	t.Helper()
	a := admit(t, w, TypeFrog, common.Tiles(10), common.Tiles(10))
	a.NPCFlags = flag
	a.HitBounds = box8
	return a
}

func TestJudgeSolidHardPicksAxis(t *testing.T) {
	t.Run("side contact pushes out horizontally", func(t *testing.T) {
		w, _ := newTestWorld(t)
		a := solidActor(t, w, ecs.FlagSolidHard)
		p := w.Player()
		p.X, p.Y = a.X+common.Px(12), a.Y

		flags := judgeSolidHard(w, p, a)
		if flags != common.HitLeftWall {
			t.Fatalf("expected left wall, got %#x", flags)
		}
		if want := a.X + a.HitBounds.Right + p.HitBounds.Right; p.X != want {
			t.Fatalf("expected x=%d, got %d", want, p.X)
		}
	})
	t.Run("landing rides the platform", func(t *testing.T) {
		w, _ := newTestWorld(t)
		a := solidActor(t, w, ecs.FlagSolidHard)
		a.VelX = 0x100
		p := w.Player()
		p.X, p.Y = a.X, a.Y-common.Px(15)
		p.VelY = 0x300

		flags := judgeSolidHard(w, p, a)
		if flags != common.HitBottomWall {
			t.Fatalf("expected bottom wall, got %#x", flags)
		}
		if want := a.Y - a.HitBounds.Top - p.HitBounds.Bottom + common.Unit; p.Y != want {
			t.Fatalf("expected y=%d, got %d", want, p.Y)
		}
		if p.VelY != a.VelY {
			t.Fatalf("expected vertical velocity matched to the platform, got %d", p.VelY)
		}
		if p.X != a.X+0x100 {
			t.Fatalf("expected player carried by platform, x=%d", p.X)
		}
	})
	t.Run("hard landing thuds", func(t *testing.T) {
		w, snd := newTestWorld(t)
		a := solidActor(t, w, ecs.FlagSolidHard)
		p := w.Player()
		p.X, p.Y = a.X, a.Y-common.Px(15)
		p.VelY = common.Px(3)

		judgeSolidHard(w, p, a)
		if !snd.played(ecs.SfxThud) {
			t.Fatalf("expected thud, got %v", snd.ids)
		}
	})
	t.Run("bouncy actor launches", func(t *testing.T) {
		w, _ := newTestWorld(t)
		a := solidActor(t, w, ecs.FlagSolidHard|ecs.FlagBouncy)
		p := w.Player()
		p.X, p.Y = a.X, a.Y-common.Px(15)
		p.VelY = 0x300

		judgeSolidHard(w, p, a)
		if p.VelY != a.VelY-common.Unit {
			t.Fatalf("expected bounce velocity, got %d", p.VelY)
		}
	})
}

func TestJudgeSolidSoftNudges(t *testing.T) {
	w, _ := newTestWorld(t)
	a := solidActor(t, w, ecs.FlagSolidSoft)
	p := w.Player()
	p.X, p.Y = a.X+common.Px(10), a.Y
	x := p.X

	flags := judgeSolidSoft(p, a)
	if flags != common.HitLeftWall {
		t.Fatalf("expected left wall, got %#x", flags)
	}
	if p.VelX != common.Unit || p.X != x {
		t.Fatalf("soft contact should nudge velocity only, vel=%d x=%d", p.VelX, p.X)
	}
}

func TestJudgeSolidSoftVertical(t *testing.T) {
	tests := []struct {
		name      string
		flag      ecs.NPCFlags
		offsetY   int
		velY      int
		standing  bool
		wantFlags common.Flags
		check     func(t *testing.T, p *ecs.Player, a *ecs.Actor, x, y int)
	}{
		{
			name:      "landing rides the actor",
			flag:      ecs.FlagSolidSoft,
			offsetY:   -common.Px(14),
			velY:      0x300,
			wantFlags: common.HitBottomWall,
			check: func(t *testing.T, p *ecs.Player, a *ecs.Actor, x, _ int) {
				if want := a.Y - a.HitBounds.Top - p.HitBounds.Bottom + common.Unit; p.Y != want {
					t.Fatalf("expected y=%d, got %d", want, p.Y)
				}
				if p.VelY != a.VelY {
					t.Fatalf("expected vertical velocity %d, got %d", a.VelY, p.VelY)
				}
				if p.X != x+a.VelX {
					t.Fatalf("expected carry to x=%d, got %d", x+a.VelX, p.X)
				}
			},
		},
		{
			name:      "already standing is left alone",
			flag:      ecs.FlagSolidSoft,
			offsetY:   -common.Px(14),
			velY:      0x300,
			standing:  true,
			wantFlags: 0,
			check: func(t *testing.T, p *ecs.Player, _ *ecs.Actor, x, y int) {
				if p.X != x || p.Y != y || p.VelY != 0x300 {
					t.Fatalf("expected no snap, got x=%d y=%d vel=%d", p.X, p.Y, p.VelY)
				}
			},
		},
		{
			name:      "bouncy actor launches",
			flag:      ecs.FlagSolidSoft | ecs.FlagBouncy,
			offsetY:   -common.Px(14),
			velY:      0x300,
			wantFlags: common.HitBottomWall,
			check: func(t *testing.T, p *ecs.Player, a *ecs.Actor, _, y int) {
				if p.VelY != a.VelY-common.Unit {
					t.Fatalf("expected bounce velocity %d, got %d", a.VelY-common.Unit, p.VelY)
				}
				if p.Y != y {
					t.Fatal("a bounce should not snap the player")
				}
			},
		},
		{
			name:      "head bump clamps upward velocity",
			flag:      ecs.FlagSolidSoft,
			offsetY:   common.Px(14),
			velY:      -0x400,
			wantFlags: common.HitTopWall,
			check: func(t *testing.T, p *ecs.Player, _ *ecs.Actor, _, y int) {
				if p.VelY != 0 {
					t.Fatalf("expected upward velocity cleared, got %d", p.VelY)
				}
				if p.Y != y {
					t.Fatal("a head bump should not move the player")
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newTestWorld(t)
			a := solidActor(t, w, tt.flag)
			a.VelX, a.VelY = 0x100, 0x80
			p := w.Player()
			p.X, p.Y = a.X, a.Y+tt.offsetY
			p.VelY = tt.velY
			if tt.standing {
				p.Flags |= common.HitBottomWall
			}
			x, y := p.X, p.Y

			if flags := judgeSolidSoft(p, a); flags != tt.wantFlags {
				t.Fatalf("expected flags %#x, got %#x", tt.wantFlags, flags)
			}
			tt.check(t, p, a, x, y)
		})
	}
}

func TestJudgeNonSolidMargin(t *testing.T) {
	w, _ := newTestWorld(t)
	a := solidActor(t, w, 0)
	p := w.Player()
	p.Y = a.Y

	p.X = a.X - a.HitBounds.Left - common.Px(2) + 1
	if judgeNonSolid(p, a) != common.HitLeftWall {
		t.Fatal("expected contact inside the 2px margin")
	}
	p.X = a.X - a.HitBounds.Left - common.Px(2)
	if judgeNonSolid(p, a) != 0 {
		t.Fatal("expected no contact at the margin edge")
	}
}

func TestExperiencePickupLevelsUp(t *testing.T) {
	w, snd := newTestWorld(t)
	p := w.Player()
	p.X, p.Y = common.Tiles(5), common.Tiles(5)
	a := admit(t, w, ecs.TypeExperience, p.X, p.Y)
	a.Exp = 10

	collideActor(w, p, a)

	if a.Alive() {
		t.Fatal("pickup should be consumed")
	}
	if !snd.played(ecs.SfxExpPickup) || !snd.played(ecs.SfxLevelUp) {
		t.Fatalf("expected pickup and level-up sounds, got %v", snd.ids)
	}
	if p.Level != 2 || p.XP != 0 {
		t.Fatalf("expected level 2 with empty bar, got level %d xp %d", p.Level, p.XP)
	}
	if !hasEvent(w, ecs.EventLevelUp) {
		t.Fatal("expected a level-up event")
	}
}

func TestPickupsApplyInventory(t *testing.T) {
	w, snd := newTestWorld(t)
	p := w.Player()
	p.X, p.Y = common.Tiles(5), common.Tiles(5)
	p.Life = 1

	heart := admit(t, w, ecs.TypeHeart, p.X, p.Y)
	collideActor(w, p, heart)
	if heart.Alive() || p.Life != 1+heart.Exp || !snd.played(ecs.SfxHeartPickup) {
		t.Fatalf("heart not applied: alive=%v life=%d", heart.Alive(), p.Life)
	}

	missile := admit(t, w, ecs.TypeMissile, p.X, p.Y)
	collideActor(w, p, missile)
	if missile.Alive() || p.Missiles != missile.Exp || !snd.played(ecs.SfxMissilePickup) {
		t.Fatalf("missile not applied: alive=%v missiles=%d", missile.Alive(), p.Missiles)
	}
}

func TestRearAndTopNotHurt(t *testing.T) {
	tests := []struct {
		name  string
		velX  int
		wantH bool
	}{
		{name: "moving away does not hurt", velX: -0x100, wantH: false},
		{name: "moving into the player hurts", velX: 0x100, wantH: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newTestWorld(t)
			a := solidActor(t, w, ecs.FlagRearAndTopNotHurt)
			a.Damage = 3
			a.VelX = tt.velX
			p := w.Player()
			p.X, p.Y = a.X, a.Y
			life := p.Life

			collideActor(w, p, a)
			if hurt := p.Life < life; hurt != tt.wantH {
				t.Fatalf("expected hurt=%v, life %d -> %d", tt.wantH, life, p.Life)
			}
		})
	}
}

func TestContactDamageRespectsControl(t *testing.T) {
	w, _ := newTestWorld(t)
	a := solidActor(t, w, 0)
	a.Damage = 2
	p := w.Player()
	p.X, p.Y = a.X, a.Y
	life := p.Life

	w.Control.Set(ecs.ControlEnabled, false)
	collideActor(w, p, a)
	if p.Life != life {
		t.Fatal("no contact damage while control is disabled")
	}

	w.Control.Set(ecs.ControlEnabled, true)
	collideActor(w, p, a)
	if p.Life != life-2 {
		t.Fatalf("expected life %d, got %d", life-2, p.Life)
	}
}

type stubRunner struct{ events []int }

func (s *stubRunner) StartScript(event int, _ ecs.Entity) error {
	s.events = append(s.events, event)
	return nil
}

func TestInteractStartsScript(t *testing.T) {
	w, _ := newTestWorld(t)
	runner := &stubRunner{}
	w.SetScripts(runner)
	a := admit(t, w, TypeBooster, common.Tiles(5), common.Tiles(5))
	a.EventNum = 100
	p := w.Player()
	p.X, p.Y = a.X, a.Y

	collideActor(w, p, a)
	if len(runner.events) != 0 {
		t.Fatal("touching an interactable must not start its script")
	}

	p.Cond.Set(ecs.CondInteracted, true)
	p.Question = true
	collideActor(w, p, a)
	if len(runner.events) != 1 || runner.events[0] != 100 {
		t.Fatalf("expected event 100, got %v", runner.events)
	}
	if p.Cond.Interacted() || p.Question {
		t.Fatal("interaction request should be consumed")
	}
	if w.Control.ControlEnabled() {
		t.Fatal("control should be held by the script")
	}
}

func TestTouchStartsScript(t *testing.T) {
	tests := []struct {
		name       string
		busy       bool
		touches    int
		wantEvents []int
	}{
		{name: "contact starts the script", touches: 1, wantEvents: []int{200}},
		{name: "running script is not restarted", touches: 3, wantEvents: []int{200}},
		{name: "no start while interactions are disabled", busy: true, touches: 1, wantEvents: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newTestWorld(t)
			runner := &stubRunner{}
			w.SetScripts(runner)
			a := solidActor(t, w, ecs.FlagEventWhenTouched)
			a.EventNum = 200
			p := w.Player()
			p.X, p.Y = a.X, a.Y
			if tt.busy {
				w.Control.Set(ecs.ControlInteractionsDisabled, true)
			}

			for i := 0; i < tt.touches; i++ {
				collideActor(w, p, a)
			}
			if len(runner.events) != len(tt.wantEvents) {
				t.Fatalf("expected events %v, got %v", tt.wantEvents, runner.events)
			}
			for i := range tt.wantEvents {
				if runner.events[i] != tt.wantEvents[i] {
					t.Fatalf("expected events %v, got %v", tt.wantEvents, runner.events)
				}
			}
			if p.Cond.Interacted() {
				t.Fatal("touching must not count as an interaction")
			}
		})
	}
}
