package common

import (
	"fmt"
	"strings"
	"time"
)

// TimingMode selects the virtual tick rate of the simulation.
type TimingMode uint8

const (
	Timing50Hz TimingMode = iota
	Timing60Hz
	// TimingFrameSynchronized runs exactly one step per presented frame.
	TimingFrameSynchronized
)

// TPS is the number of simulation steps per second, 0 for frame-synchronized.
func (m TimingMode) TPS() int {
	switch m {
	case Timing50Hz:
		return 50
	case Timing60Hz:
		return 60
	default:
		return 0
	}
}

// Delta is the virtual duration of one step, 0 for frame-synchronized.
func (m TimingMode) Delta() time.Duration {
	if tps := m.TPS(); tps > 0 {
		return time.Second / time.Duration(tps)
	}
	return 0
}

func (m TimingMode) String() string {
	switch m {
	case Timing50Hz:
		return "50hz"
	case Timing60Hz:
		return "60hz"
	case TimingFrameSynchronized:
		return "frame"
	default:
		return "unknown"
	}
}

func ParseTimingMode(s string) (TimingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "50hz", "50", "":
		return Timing50Hz, nil
	case "60hz", "60":
		return Timing60Hz, nil
	case "frame", "frame_synchronized", "vsync":
		return TimingFrameSynchronized, nil
	default:
		return Timing50Hz, fmt.Errorf("unknown timing mode %q", s)
	}
}

const (
	MinSpeed = 0.1
	MaxSpeed = 3.0

	// maxCatchUpSteps bounds how many steps one presented frame may run after a stall.
	maxCatchUpSteps = 5
)

// Clock converts presentation time into whole simulation steps. A step always advances
// the world by exactly one virtual tick; only the number of steps per frame varies.
type Clock struct {
	mode    TimingMode
	speed   float64
	acc     time.Duration
	elapsed uint64
}

func NewClock(mode TimingMode) *Clock {
	return &Clock{mode: mode, speed: 1}
}

func (c *Clock) Mode() TimingMode {
	if c == nil {
		return Timing50Hz
	}
	return c.mode
}

// SetMode switches the tick rate and drops any accumulated partial step.
func (c *Clock) SetMode(mode TimingMode) {
	if c == nil {
		return
	}
	c.mode = mode
	c.acc = 0
}

// SetSpeed sets the playback multiplier, clamped to [MinSpeed, MaxSpeed].
func (c *Clock) SetSpeed(speed float64) {
	if c == nil {
		return
	}
	if speed < MinSpeed {
		speed = MinSpeed
	}
	if speed > MaxSpeed {
		speed = MaxSpeed
	}
	c.speed = speed
	c.acc = 0
}

func (c *Clock) Speed() float64 {
	if c == nil {
		return 1
	}
	return c.speed
}

// TPS is the effective step rate after the speed multiplier.
func (c *Clock) TPS() float64 {
	if c == nil {
		return 0
	}
	return float64(c.mode.TPS()) * c.speed
}

// Advance accounts for frameTime of presentation time and returns how many steps to run.
func (c *Clock) Advance(frameTime time.Duration) int {
	if c == nil {
		return 0
	}
	if c.mode == TimingFrameSynchronized {
		c.elapsed++
		return 1
	}
	step := time.Duration(float64(c.mode.Delta()) / c.speed)
	if step <= 0 {
		return 0
	}
	c.acc += frameTime
	n := int(c.acc / step)
	c.acc -= time.Duration(n) * step
	if n > maxCatchUpSteps {
		n = maxCatchUpSteps
		c.acc = 0
	}
	c.elapsed += uint64(n)
	return n
}

// Steps is the total number of steps admitted so far.
func (c *Clock) Steps() uint64 {
	if c == nil {
		return 0
	}
	return c.elapsed
}
