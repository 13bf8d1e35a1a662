// Package script runs event scripts. A script is a tengo program that, when started,
// queues commands; the VM then plays the queue back one step at a time so waits and
// world freezes line up with simulation steps.
package script

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/actorsim/ecs"
	"github.com/milk9111/actorsim/logging"
	"github.com/milk9111/actorsim/prefabs"
	"github.com/sirupsen/logrus"
)

var ErrNoWorld = errors.New("script: vm has no world")

// Loader returns the source of the script for an event.
type Loader func(event int) ([]byte, error)

// LoadPrefab reads event scripts from the prefab directory.
func LoadPrefab(event int) ([]byte, error) {
	return prefabs.LoadScript(prefabs.ScriptName(event))
}

type opcode uint8

const (
	opWait opcode = iota
	opSfx
	opQuake
	opMsg
	opHeal
	opMissiles
	opBossAction
	opActorAction
	opFreeze
	opUnfreeze
	opFlag
	opEnd
)

type command struct {
	op   opcode
	arg  int
	on   bool
	text string
}

// VM implements ecs.ScriptRunner and runs as an always-system so a frozen world can
// still be resumed by the script that froze it.
type VM struct {
	world *ecs.World
	load  Loader

	compiled map[int]*tengo.Compiled
	pending  []command

	queue    []command
	wait     int
	running  bool
	event    int
	executor ecs.Entity
}

func NewVM(w *ecs.World, load Loader) *VM {
	if load == nil {
		load = LoadPrefab
	}
	return &VM{world: w, load: load, compiled: map[int]*tengo.Compiled{}}
}

// Running reports whether a script still has queued commands.
func (vm *VM) Running() bool {
	return vm != nil && vm.running
}

func (vm *VM) Event() int {
	if vm == nil {
		return 0
	}
	return vm.event
}

// Invalidate drops compiled scripts so the next start reloads them.
func (vm *VM) Invalidate() {
	if vm == nil {
		return
	}
	vm.compiled = map[int]*tengo.Compiled{}
}

// StartScript compiles and runs the event's program, replacing any script in progress.
func (vm *VM) StartScript(event int, executor ecs.Entity) error {
	if vm == nil || vm.world == nil {
		return ErrNoWorld
	}
	c, err := vm.compile(event)
	if err != nil {
		return err
	}

	vm.pending = vm.pending[:0]
	if err := c.Run(); err != nil {
		vm.pending = nil
		return fmt.Errorf("script: run event %d: %w", event, err)
	}

	vm.queue = append([]command(nil), vm.pending...)
	vm.pending = nil
	vm.wait = 0
	vm.running = true
	vm.event = event
	vm.executor = executor
	logging.Log.WithFields(logrus.Fields{"event": event, "actor": executor.String(), "commands": len(vm.queue)}).Debug("script started")
	return nil
}

func (vm *VM) compile(event int) (*tengo.Compiled, error) {
	if c, ok := vm.compiled[event]; ok {
		return c, nil
	}
	src, err := vm.load(event)
	if err != nil {
		return nil, fmt.Errorf("script: load event %d: %w", event, err)
	}
	s := tengo.NewScript(src)
	for name, fn := range vm.builtins() {
		if err := s.Add(name, fn); err != nil {
			return nil, fmt.Errorf("script: builtin %s: %w", name, err)
		}
	}
	c, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile event %d: %w", event, err)
	}
	vm.compiled[event] = c
	return c, nil
}

// Update plays queued commands until the next wait. When the queue runs dry the world
// gets control back.
func (vm *VM) Update(w *ecs.World) {
	if vm == nil || w == nil || !vm.running {
		return
	}
	if vm.wait > 0 {
		vm.wait--
		return
	}
	for len(vm.queue) > 0 {
		cmd := vm.queue[0]
		vm.queue = vm.queue[1:]
		if cmd.op == opWait {
			if cmd.arg > 1 {
				vm.wait = cmd.arg - 1
			}
			return
		}
		if cmd.op == opEnd {
			vm.queue = nil
			break
		}
		vm.apply(w, cmd)
	}
	vm.running = false
	w.EndScript()
	logging.Log.WithField("event", vm.event).Debug("script finished")
}

func (vm *VM) apply(w *ecs.World, cmd command) {
	switch cmd.op {
	case opSfx:
		w.PlaySound(cmd.arg)
	case opQuake:
		w.SetQuake(cmd.arg)
	case opMsg:
		logging.Log.WithField("event", vm.event).Info(cmd.text)
	case opHeal:
		w.Player().Heal(cmd.arg)
	case opMissiles:
		w.Player().AddMissiles(cmd.arg)
	case opBossAction:
		if b := w.Boss(); b.Active() {
			b.Driver().SetAction(cmd.arg)
		}
	case opActorAction:
		if a := w.Actor(vm.executor); a != nil {
			a.SetAction(cmd.arg)
		}
	case opFreeze:
		w.Control.Set(ecs.ControlTickWorld, false)
	case opUnfreeze:
		w.Control.Set(ecs.ControlTickWorld, true)
	case opFlag:
		w.SetFlag(cmd.arg, cmd.on)
	}
}
