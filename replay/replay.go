// Package replay records input frames with per-step world checksums and verifies that
// a fresh world reproduces them.
package replay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/milk9111/actorsim/ecs"
	"github.com/milk9111/actorsim/input"
)

var ErrNotFound = errors.New("replay: not found")

// Recording is everything needed to rebuild and re-run a session.
type Recording struct {
	ID        int64
	Name      string
	Level     string
	Timing    string
	Seed      int32
	Frames    []input.Frame
	Checksums []uint64
	CreatedAt time.Time
}

func (r *Recording) Steps() int {
	if r == nil {
		return 0
	}
	return len(r.Frames)
}

// Final is the checksum after the last recorded step.
func (r *Recording) Final() uint64 {
	if r == nil || len(r.Checksums) == 0 {
		return 0
	}
	return r.Checksums[len(r.Checksums)-1]
}

// Recorder appends one frame and checksum per step.
type Recorder struct {
	rec Recording
}

func NewRecorder(name, level, timing string, seed int32) *Recorder {
	return &Recorder{rec: Recording{Name: name, Level: level, Timing: timing, Seed: seed}}
}

func (r *Recorder) Record(f input.Frame, checksum uint64) {
	if r == nil {
		return
	}
	r.rec.Frames = append(r.rec.Frames, f)
	r.rec.Checksums = append(r.rec.Checksums, checksum)
}

func (r *Recorder) Recording() *Recording {
	if r == nil {
		return nil
	}
	out := r.rec
	out.Frames = append([]input.Frame(nil), r.rec.Frames...)
	out.Checksums = append([]uint64(nil), r.rec.Checksums...)
	return &out
}

// Divergence reports the first step whose checksum did not match.
type Divergence struct {
	Step int
	Want uint64
	Got  uint64
}

func (d *Divergence) Error() string {
	return fmt.Sprintf("replay: diverged at step %d: want %016x, got %016x", d.Step, d.Want, d.Got)
}

// Verify steps w through the recording, feeding frames through port. w must be freshly
// built with the recording's seed and level.
func Verify(ctx context.Context, rec *Recording, w *ecs.World, port *input.Port) error {
	if rec == nil || w == nil || port == nil {
		return fmt.Errorf("replay: verify: missing recording, world or port")
	}
	if len(rec.Frames) != len(rec.Checksums) {
		return fmt.Errorf("replay: verify: %d frames but %d checksums", len(rec.Frames), len(rec.Checksums))
	}
	for i, f := range rec.Frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		port.Set(f)
		w.Step()
		if got := w.Checksum(); got != rec.Checksums[i] {
			return &Divergence{Step: i, Want: rec.Checksums[i], Got: got}
		}
	}
	return nil
}
