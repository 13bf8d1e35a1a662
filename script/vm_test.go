package script

import (
	"errors"
	"testing"

	"github.com/milk9111/actorsim/ecs"
	"github.com/milk9111/actorsim/logging"
	"github.com/milk9111/actorsim/prefabs"
)

func init() {
	logging.Discard()
}

func sources(m map[int]string) Loader {
	return func(event int) ([]byte, error) {
		src, ok := m[event]
		if !ok {
			return nil, errors.New("missing")
		}
		return []byte(src), nil
	}
}

func newWorld(t *testing.T, scripts map[int]string) (*ecs.World, *VM) {
	t.Helper()
	table, err := prefabs.LoadNPCTable()
	if err != nil {
		t.Fatalf("load table: %v", err)
	}
	w := ecs.NewWorld(table, 1)
	vm := NewVM(w, sources(scripts))
	w.SetScripts(vm)
	return w, vm
}

func TestWaitHoldsCommands(t *testing.T) {
	w, vm := newWorld(t, map[int]string{7: `quake(5)
wait(3)
flag_set(9, true)`})

	w.StartScript(7, 0)
	if !vm.Running() {
		t.Fatalf("expected script to be running")
	}
	if w.Control.ControlEnabled() {
		t.Fatalf("expected player control disabled while scripted")
	}

	vm.Update(w)
	if w.Quake() != 5 {
		t.Fatalf("expected quake 5, got %d", w.Quake())
	}
	for i := 0; i < 2; i++ {
		vm.Update(w)
		if w.Flag(9) {
			t.Fatalf("flag set during wait at update %d", i)
		}
	}
	vm.Update(w)
	if !w.Flag(9) {
		t.Fatalf("expected flag after wait")
	}
	if vm.Running() {
		t.Fatalf("expected script to have finished")
	}
	if !w.Control.ControlEnabled() || w.Control.InteractionsDisabled() {
		t.Fatalf("expected control restored, got %#x", w.Control)
	}
}

func TestFreezeAndUnfreeze(t *testing.T) {
	w, vm := newWorld(t, map[int]string{1: `freeze()
wait(2)
unfreeze()`})

	w.StartScript(1, 0)
	vm.Update(w)
	if w.Control.TickWorld() {
		t.Fatalf("expected world frozen")
	}
	vm.Update(w)
	vm.Update(w)
	if !w.Control.TickWorld() {
		t.Fatalf("expected world resumed")
	}
}

func TestEndStopsQueue(t *testing.T) {
	w, vm := newWorld(t, map[int]string{2: `end()
flag_set(1, true)`})

	w.StartScript(2, 0)
	vm.Update(w)
	if w.Flag(1) {
		t.Fatalf("commands after end must not run")
	}
	if vm.Running() {
		t.Fatalf("expected script finished")
	}
}

func TestFlagOnBranches(t *testing.T) {
	w, vm := newWorld(t, map[int]string{3: `if flag_on(5) { heal(0) } else { quake(9) }`})

	w.SetFlag(5, true)
	w.StartScript(3, 0)
	vm.Update(w)
	if w.Quake() != 0 {
		t.Fatalf("expected the true branch, quake=%d", w.Quake())
	}

	w.SetFlag(5, false)
	vm.Invalidate()
	w.StartScript(3, 0)
	vm.Update(w)
	if w.Quake() != 9 {
		t.Fatalf("expected the false branch, quake=%d", w.Quake())
	}
}

func TestStartScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		src  map[int]string
	}{
		{name: "missing", src: map[int]string{}},
		{name: "syntax", src: map[int]string{4: `wait(`}},
		{name: "bad argument", src: map[int]string{4: `wait("soon")`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, vm := newWorld(t, tt.src)
			if err := vm.StartScript(4, 0); err == nil {
				t.Fatalf("expected error")
			}
			w.StartScript(4, 0)
			if !w.Control.ControlEnabled() {
				t.Fatalf("expected failed start to restore control")
			}
		})
	}
}

func TestShippedScriptsCompile(t *testing.T) {
	_, vm := newWorld(t, nil)
	vm.load = LoadPrefab
	for _, event := range []int{ecs.EventPlayerDeath, 100, 200, 1000} {
		if err := vm.StartScript(event, 0); err != nil {
			t.Fatalf("event %d: %v", event, err)
		}
	}
}
