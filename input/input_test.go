package input

import "testing"

func TestFrameButtons(t *testing.T) {
	f := ButtonLeft | ButtonShoot
	if !f.MoveLeft() || !f.Shoot() {
		t.Fatalf("expected left and shoot in %s", f)
	}
	if f.MoveRight() || f.Jump() || f.Interact() {
		t.Fatalf("unexpected buttons in %s", f)
	}
	if got := f.String(); got != "L---S" {
		t.Fatalf("expected L---S, got %s", got)
	}
}

func TestPlaybackRunsDry(t *testing.T) {
	p := NewPlayback([]Frame{ButtonJump, ButtonRight})
	var port Port

	port.Set(p.Poll())
	if !port.Jump() {
		t.Fatalf("expected jump on first frame")
	}
	port.Set(p.Poll())
	if !port.MoveRight() || port.Jump() {
		t.Fatalf("expected right only, got %s", port.Frame())
	}
	if !p.Done() {
		t.Fatalf("expected playback done")
	}
	if f := p.Poll(); f != 0 {
		t.Fatalf("expected empty frame past the end, got %s", f)
	}
}

func TestBotIsDeterministic(t *testing.T) {
	a, b := NewBot(5), NewBot(5)
	for i := 0; i < 500; i++ {
		if fa, fb := a.Poll(), b.Poll(); fa != fb {
			t.Fatalf("bots diverged at step %d: %s vs %s", i, fa, fb)
		}
	}
}
