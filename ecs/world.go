package ecs

import (
	"encoding/binary"
	"hash/fnv"
	"time"

	"github.com/milk9111/actorsim/common"
	"github.com/milk9111/actorsim/logging"
	"github.com/milk9111/actorsim/prefabs"
	"github.com/sirupsen/logrus"
)

// World owns every piece of simulation state: the actor store, the composite, the
// player, both RNG streams and the per-step queues. It is not safe for concurrent use.
type World struct {
	Control ControlFlags

	actors    actorStore
	spawns    SpawnQueue
	boss      Boss
	player    Player
	bullets   []Bullet
	carets    []Caret
	gameRNG   common.RNG
	effectRNG common.RNG
	quake     int
	flags     map[int]bool
	table     *prefabs.NPCTable
	stage     *Stage
	frame     uint64
	events    EventQueue
	scheduler *Scheduler

	sound   SoundPlayer
	scripts ScriptRunner
	input   Controller

	shutdown bool
}

// NewWorld creates an empty world. seed drives the gameplay stream; the effect stream is
// seeded from the wall clock.
func NewWorld(table *prefabs.NPCTable, seed int32) *World {
	w := &World{
		Control:   ControlTickWorld | ControlEnabled,
		gameRNG:   common.NewRNG(seed),
		effectRNG: common.NewRNG(int32(time.Now().UnixNano())),
		flags:     map[int]bool{},
		table:     table,
		input:     noInput{},
	}
	if table != nil {
		w.player = NewPlayer(table.Player)
	}
	return w
}

// Step advances the simulation by exactly one virtual tick.
func (w *World) Step() {
	if w == nil || w.shutdown {
		return
	}
	w.events.flush()
	if w.scheduler != nil {
		w.scheduler.Update(w)
	}
	w.frame++
}

func (w *World) Frame() uint64 {
	if w == nil {
		return 0
	}
	return w.frame
}

func (w *World) SetScheduler(s *Scheduler) {
	if w == nil {
		return
	}
	w.scheduler = s
}

func (w *World) Scheduler() *Scheduler {
	if w == nil {
		return nil
	}
	return w.scheduler
}

func (w *World) Table() *prefabs.NPCTable {
	if w == nil {
		return nil
	}
	return w.table
}

// SetTable swaps the constants table. Live actors keep the values they were built with.
func (w *World) SetTable(t *prefabs.NPCTable) {
	if w == nil || t == nil {
		return
	}
	w.table = t
}

func (w *World) Stage() *Stage {
	if w == nil {
		return nil
	}
	return w.stage
}

func (w *World) SetStage(s *Stage) {
	if w == nil {
		return
	}
	w.stage = s
}

func (w *World) SetSound(s SoundPlayer) {
	if w == nil {
		return
	}
	w.sound = s
}

func (w *World) SetScripts(r ScriptRunner) {
	if w == nil {
		return
	}
	w.scripts = r
}

func (w *World) SetInput(c Controller) {
	if w == nil {
		return
	}
	if c == nil {
		c = noInput{}
	}
	w.input = c
}

func (w *World) Input() Controller {
	if w == nil || w.input == nil {
		return noInput{}
	}
	return w.input
}

func (w *World) Player() *Player {
	if w == nil {
		return nil
	}
	return &w.player
}

func (w *World) Boss() *Boss {
	if w == nil {
		return nil
	}
	return &w.boss
}

// GameRNG is the gameplay stream. Anything it feeds must be reproducible from the seed.
func (w *World) GameRNG() *common.RNG {
	if w == nil {
		return nil
	}
	return &w.gameRNG
}

// EffectRNG is the cosmetic stream. It must never feed gameplay state.
func (w *World) EffectRNG() *common.RNG {
	if w == nil {
		return nil
	}
	return &w.effectRNG
}

func (w *World) SetEffectSeed(seed int32) {
	if w == nil {
		return
	}
	w.effectRNG.Reseed(seed)
}

func (w *World) Quake() int {
	if w == nil {
		return 0
	}
	return w.quake
}

// SetQuake sets the screen shake counter in steps.
func (w *World) SetQuake(n int) {
	if w == nil {
		return
	}
	if n < 0 {
		n = 0
	}
	w.quake = n
}

// DecayQuake counts the shake down by one step.
func (w *World) DecayQuake() {
	if w == nil || w.quake == 0 {
		return
	}
	w.quake--
}

func (w *World) Flag(n int) bool {
	if w == nil {
		return false
	}
	return w.flags[n]
}

func (w *World) SetFlag(n int, on bool) {
	if w == nil {
		return
	}
	if on {
		w.flags[n] = true
		return
	}
	delete(w.flags, n)
}

func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Spawns is the queue drained at the end of each step.
func (w *World) Spawns() *SpawnQueue {
	if w == nil {
		return nil
	}
	return &w.spawns
}

// Spawn queues a fully built actor for admission at the next drain.
func (w *World) Spawn(a *Actor) {
	if w == nil || a == nil {
		return
	}
	w.spawns.Push(a)
}

// Actor resolves a handle, returning nil for stale or empty handles.
func (w *World) Actor(e Entity) *Actor {
	if w == nil {
		return nil
	}
	return w.actors.get(e)
}

// EachActor calls fn for every live actor in ascending slot order.
func (w *World) EachActor(fn func(a *Actor)) {
	if w == nil || fn == nil {
		return
	}
	w.actors.each(func(a *Actor) {
		if a.Alive() {
			fn(a)
		}
	})
}

// ActorCount counts stored actors, including dead ones awaiting reclamation.
func (w *World) ActorCount() int {
	if w == nil {
		return 0
	}
	return w.actors.len()
}

// ReclaimDead frees the slots of every actor whose alive condition is clear.
func (w *World) ReclaimDead() int {
	if w == nil {
		return 0
	}
	var dead []Entity
	w.actors.each(func(a *Actor) {
		if !a.Alive() {
			dead = append(dead, a.ID)
		}
	})
	for _, e := range dead {
		w.actors.remove(e)
	}
	return len(dead)
}

// Admit inserts a queued actor into the live store, resolving a FacingPlayer direction
// against the player's current position.
func (w *World) Admit(a *Actor) bool {
	if w == nil || a == nil {
		return false
	}
	if a.Direction == common.FacingPlayer {
		if w.player.X < a.X {
			a.Direction = common.Left
		} else {
			a.Direction = common.Right
		}
	}
	if _, ok := w.actors.insert(a); !ok {
		logging.Log.WithFields(logrus.Fields{"type": a.Type, "frame": w.frame}).Warn("actor store full, spawn dropped")
		w.events.Push(Event{Type: EventSpawnDrop, Data: a.Type})
		return false
	}
	return true
}

func (w *World) Carets() []Caret {
	if w == nil {
		return nil
	}
	return w.carets
}

// CreateCaret adds a cosmetic particle.
func (w *World) CreateCaret(x, y int, typ CaretType, dir common.Direction) *Caret {
	if w == nil {
		return nil
	}
	w.carets = append(w.carets, Caret{Type: typ, X: x, Y: y, Direction: dir})
	return &w.carets[len(w.carets)-1]
}

// TickCarets advances every caret with the effect stream and drops finished ones.
func (w *World) TickCarets() {
	if w == nil {
		return
	}
	kept := w.carets[:0]
	for i := range w.carets {
		w.carets[i].tick(&w.effectRNG)
		if !w.carets[i].Dead() {
			kept = append(kept, w.carets[i])
		}
	}
	w.carets = kept
}

func (w *World) Bullets() []Bullet {
	if w == nil {
		return nil
	}
	return w.bullets
}

func (w *World) AddBullet(b Bullet) {
	if w == nil {
		return
	}
	b.Alive = true
	w.bullets = append(w.bullets, b)
}

// EachBullet calls fn for every live shot in firing order.
func (w *World) EachBullet(fn func(b *Bullet)) {
	if w == nil || fn == nil {
		return
	}
	for i := range w.bullets {
		if w.bullets[i].Alive {
			fn(&w.bullets[i])
		}
	}
}

// PruneBullets drops spent shots.
func (w *World) PruneBullets() {
	if w == nil {
		return
	}
	kept := w.bullets[:0]
	for _, b := range w.bullets {
		if b.Alive {
			kept = append(kept, b)
		}
	}
	w.bullets = kept
}

// PlaySound forwards to the sound collaborator. Failures are logged and ignored.
func (w *World) PlaySound(id int) {
	if w == nil || id <= 0 {
		return
	}
	w.events.Push(Event{Type: EventSound, Data: id})
	if w.sound == nil {
		return
	}
	if err := w.sound.PlaySFX(id); err != nil {
		logging.Log.WithFields(logrus.Fields{"sfx": id, "frame": w.frame}).WithError(err).Warn("play sfx failed")
	}
}

// StartScript hands control to the script collaborator: player control and further
// interactions stay disabled until EndScript. A failed start restores control.
func (w *World) StartScript(event int, executor Entity) {
	if w == nil {
		return
	}
	w.Control.Set(ControlInteractionsDisabled, true)
	w.Control.Set(ControlEnabled, false)
	w.events.Push(Event{Type: EventScript, Data: event})
	if w.scripts == nil {
		w.EndScript()
		return
	}
	if err := w.scripts.StartScript(event, executor); err != nil {
		logging.Log.WithFields(logrus.Fields{"event": event, "actor": executor.String()}).WithError(err).Warn("start script failed")
		w.EndScript()
	}
}

// EndScript returns control to the player and resumes the world.
func (w *World) EndScript() {
	if w == nil {
		return
	}
	w.Control.Set(ControlInteractionsDisabled, false)
	w.Control.Set(ControlEnabled, true)
	w.Control.Set(ControlTickWorld, true)
}

// Shutdown asks the runner to stop. It is observed between steps only.
func (w *World) Shutdown() {
	if w == nil {
		return
	}
	w.shutdown = true
}

func (w *World) ShuttingDown() bool {
	return w == nil || w.shutdown
}

// Checksum hashes every gameplay-relevant value. Two worlds fed the same seed and inputs
// produce the same checksum after the same number of steps.
func (w *World) Checksum() uint64 {
	if w == nil {
		return 0
	}
	h := fnv.New64a()
	var buf [8]byte
	put := func(vals ...int) {
		for _, v := range vals {
			binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
			_, _ = h.Write(buf[:])
		}
	}
	actor := func(a *Actor) {
		put(int(a.Type), a.X, a.Y, a.VelX, a.VelY, a.VelX2, a.VelY2, a.TargetX, a.TargetY,
			int(a.Direction), a.ActionNum, a.ActionCounter, a.ActionCounter2, a.AnimNum,
			a.AnimCounter, a.Shock, a.Life, int(a.Cond), int(a.NPCFlags), int(a.Flags),
			int(a.RNG.State()))
	}

	put(int(w.frame), int(w.gameRNG.State()), int(w.Control), w.quake)
	p := &w.player
	put(p.X, p.Y, p.VelX, p.VelY, int(p.Direction), int(p.Cond), int(p.Flags), p.Life, p.Shock,
		p.Level, p.XP, p.Stars, p.Missiles)
	w.actors.each(func(a *Actor) {
		put(int(a.ID.id()))
		actor(a)
	})
	put(int(w.boss.Type))
	for i := range w.boss.Parts {
		actor(&w.boss.Parts[i])
	}
	for _, b := range w.bullets {
		put(b.X, b.Y, b.Range)
	}
	put(w.spawns.Len())
	return h.Sum64()
}
