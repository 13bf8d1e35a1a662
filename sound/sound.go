// Package sound plays sound effects by id. Effects are synthesized once from the sfx
// table into 16-bit stereo PCM and replayed through ebiten's audio context.
package sound

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/actorsim/prefabs"
)

var ErrUnknownEffect = errors.New("sound: unknown effect")

// Manager holds one rendered buffer per effect id.
type Manager struct {
	ctx     *audio.Context
	buffers map[int][]byte
	players map[int]*audio.Player
	volume  float64
}

// NewManager renders every effect in table. Only one audio context may exist per
// process, so ctx is shared with the caller.
func NewManager(ctx *audio.Context, table *prefabs.SfxTable) (*Manager, error) {
	if ctx == nil || table == nil {
		return nil, fmt.Errorf("sound: new manager: missing context or table")
	}
	m := &Manager{
		ctx:     ctx,
		buffers: make(map[int][]byte, len(table.Effects)),
		players: map[int]*audio.Player{},
		volume:  1,
	}
	for id, fx := range table.Effects {
		m.buffers[id] = Render(fx, ctx.SampleRate())
	}
	return m, nil
}

func (m *Manager) SetVolume(v float64) {
	if m == nil {
		return
	}
	m.volume = math.Max(0, math.Min(1, v))
}

// PlaySFX restarts the effect's player. Fire and forget.
func (m *Manager) PlaySFX(id int) error {
	if m == nil {
		return nil
	}
	buf, ok := m.buffers[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownEffect, id)
	}
	p, ok := m.players[id]
	if !ok {
		p = m.ctx.NewPlayerFromBytes(buf)
		m.players[id] = p
	}
	p.SetVolume(m.volume)
	if err := p.Rewind(); err != nil {
		return fmt.Errorf("sound: rewind %d: %w", id, err)
	}
	p.Play()
	return nil
}

// Null discards every effect. Headless runs and tests use it.
type Null struct{}

func (Null) PlaySFX(int) error { return nil }

// Render synthesizes fx as 16-bit little-endian stereo at sampleRate. The frequency
// sweeps linearly from Freq to FreqEnd with a linear fade-out.
func Render(fx prefabs.SfxSpec, sampleRate int) []byte {
	if fx.Duration <= 0 || sampleRate <= 0 {
		return nil
	}
	n := sampleRate * fx.Duration / 1000
	end := fx.FreqEnd
	if end == 0 {
		end = fx.Freq
	}
	vol := fx.Volume
	if vol == 0 {
		vol = 0.5
	}

	out := make([]byte, n*4)
	phase := 0.0
	noise := uint32(0x1234567)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := fx.Freq + (end-fx.Freq)*t
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		var v float64
		switch fx.Wave {
		case "square":
			v = 1
			if phase >= 0.5 {
				v = -1
			}
		case "saw":
			v = 2*phase - 1
		case "noise":
			noise ^= noise << 13
			noise ^= noise >> 17
			noise ^= noise << 5
			v = float64(noise)/float64(math.MaxUint32)*2 - 1
		default:
			v = math.Sin(2 * math.Pi * phase)
		}

		s := int16(v * vol * (1 - t) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}
