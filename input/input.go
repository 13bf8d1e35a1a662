// Package input turns devices and recordings into per-step button frames.
package input

import "strings"

// Frame is the button state for one simulation step.
type Frame uint8

const (
	ButtonLeft Frame = 1 << iota
	ButtonRight
	ButtonJump
	ButtonInteract
	ButtonShoot
)

func (f Frame) MoveLeft() bool  { return f&ButtonLeft != 0 }
func (f Frame) MoveRight() bool { return f&ButtonRight != 0 }
func (f Frame) Jump() bool      { return f&ButtonJump != 0 }
func (f Frame) Interact() bool  { return f&ButtonInteract != 0 }
func (f Frame) Shoot() bool     { return f&ButtonShoot != 0 }

func (f Frame) String() string {
	var b strings.Builder
	for _, btn := range []struct {
		bit  Frame
		name byte
	}{{ButtonLeft, 'L'}, {ButtonRight, 'R'}, {ButtonJump, 'J'}, {ButtonInteract, 'I'}, {ButtonShoot, 'S'}} {
		if f&btn.bit != 0 {
			b.WriteByte(btn.name)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// Source yields the frame for the next step.
type Source interface {
	Poll() Frame
}

// Port is the controller handed to the world. The runner latches one frame into it
// before every step so the world never reads a device mid-step.
type Port struct {
	current Frame
}

func (p *Port) Set(f Frame) {
	if p == nil {
		return
	}
	p.current = f
}

func (p *Port) Frame() Frame {
	if p == nil {
		return 0
	}
	return p.current
}

func (p *Port) MoveLeft() bool  { return p.Frame().MoveLeft() }
func (p *Port) MoveRight() bool { return p.Frame().MoveRight() }
func (p *Port) Jump() bool      { return p.Frame().Jump() }
func (p *Port) Interact() bool  { return p.Frame().Interact() }
func (p *Port) Shoot() bool     { return p.Frame().Shoot() }

// Playback replays recorded frames. Past the end it reports no buttons.
type Playback struct {
	frames []Frame
	next   int
}

func NewPlayback(frames []Frame) *Playback {
	return &Playback{frames: frames}
}

func (p *Playback) Poll() Frame {
	if p == nil || p.next >= len(p.frames) {
		return 0
	}
	f := p.frames[p.next]
	p.next++
	return f
}

func (p *Playback) Done() bool {
	return p == nil || p.next >= len(p.frames)
}
