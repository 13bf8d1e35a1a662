package replay

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/milk9111/actorsim/ecs/entity"
	"github.com/milk9111/actorsim/input"
	"github.com/milk9111/actorsim/levels"
	"github.com/milk9111/actorsim/logging"
	"github.com/milk9111/actorsim/prefabs"
)

func init() {
	logging.Discard()
}

func newSim(t *testing.T, seed int32) (*entity.Sim, *input.Port) {
	t.Helper()
	table, err := prefabs.LoadNPCTable()
	if err != nil {
		t.Fatalf("load table: %v", err)
	}
	lvl, err := levels.LoadLevelFromFS(levels.DefaultLevel)
	if err != nil {
		t.Fatalf("load level: %v", err)
	}
	port := &input.Port{}
	sim, err := entity.BuildWorld(table, lvl, seed, entity.Services{Input: port})
	if err != nil {
		t.Fatalf("build world: %v", err)
	}
	return sim, port
}

func record(t *testing.T, seed int32, frames []input.Frame) *Recording {
	t.Helper()
	sim, port := newSim(t, seed)
	rec := NewRecorder("test", levels.DefaultLevel, "50hz", seed)
	for _, f := range frames {
		port.Set(f)
		sim.World.Step()
		rec.Record(f, sim.World.Checksum())
	}
	return rec.Recording()
}

func testFrames(n int) []input.Frame {
	frames := make([]input.Frame, n)
	for i := range frames {
		switch {
		case i%40 < 15:
			frames[i] = input.ButtonLeft
		case i%40 < 20:
			frames[i] = input.ButtonJump | input.ButtonShoot
		case i%40 < 35:
			frames[i] = input.ButtonRight | input.ButtonShoot
		}
	}
	return frames
}

func TestVerifyReproducesRecording(t *testing.T) {
	rec := record(t, 42, testFrames(400))

	sim, port := newSim(t, 42)
	if err := Verify(context.Background(), rec, sim.World, port); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestVerifyReportsDivergence(t *testing.T) {
	rec := record(t, 42, testFrames(200))

	sim, port := newSim(t, 43)
	err := Verify(context.Background(), rec, sim.World, port)
	var div *Divergence
	if !errors.As(err, &div) {
		t.Fatalf("expected divergence, got %v", err)
	}
	if div.Step != 0 {
		t.Fatalf("a different seed should diverge on the first step, got step %d", div.Step)
	}
}

func TestVerifyHonorsContext(t *testing.T) {
	rec := record(t, 1, testFrames(10))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim, port := newSim(t, 1)
	if err := Verify(ctx, rec, sim.World, port); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestStoreSaveLoad(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "replays.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	rec := record(t, 7, testFrames(60))
	id, err := store.Save(ctx, rec)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load(ctx, id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Seed != 7 || got.Steps() != 60 || got.Final() != rec.Final() {
		t.Fatalf("loaded recording mismatch: seed=%d steps=%d final=%x", got.Seed, got.Steps(), got.Final())
	}
	for i := range rec.Checksums {
		if got.Checksums[i] != rec.Checksums[i] || got.Frames[i] != rec.Frames[i] {
			t.Fatalf("step %d differs after load", i)
		}
	}

	list, err := store.List(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != id || list[0].Steps != 60 {
		t.Fatalf("unexpected list %+v", list)
	}

	if _, err := store.Load(ctx, id+1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
