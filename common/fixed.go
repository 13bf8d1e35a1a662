package common

import "math"

// Fixed-point model: 9 fractional bits. One pixel is Unit, one tile is Tile.
const (
	FracBits = 9
	Unit     = 1 << FracBits
	TilePx   = 16
	Tile     = TilePx * Unit
)

// Default per-step vertical acceleration and fall speed cap.
const (
	DefaultGravity     = 0x40
	DefaultTerminalVel = 0x5ff
)

// Px converts whole pixels to fixed-point units.
func Px(n int) int { return n * Unit }

// Tiles converts whole tiles to fixed-point units.
func Tiles(n int) int { return n * Tile }

// ToPx truncates a fixed-point value to whole pixels (toward zero).
func ToPx(v int) int { return v / Unit }

// ToTile returns the tile column/row a fixed-point coordinate falls in. Tiles are
// centred on multiples of Tile, so the value is rounded to the nearest tile centre.
func ToTile(v int) int {
	return floorDiv(v+Tile/2, Tile)
}

// Decay scales v by num/den with Go's truncating integer division. The rounding toward
// zero is part of every deceleration curve and must not be replaced with a float multiply.
func Decay(v, num, den int) int {
	if den == 0 {
		return v
	}
	return v * num / den
}

// Gravity applies accel to vel and clamps the result to terminal.
func Gravity(vel, accel, terminal int) int {
	vel += accel
	if vel > terminal {
		vel = terminal
	}
	return vel
}

// ClampVel limits |v| to max.
func ClampVel(v, max int) int {
	return Clamp(v, -max, max)
}

// CDegRad converts the 256-step circle used by aiming code to radians.
const CDegRad = math.Pi / 128.0

// AimVelocity computes a velocity vector of the given length pointing from (dx, dy)
// toward the origin, rotated by jitter 256-step degrees. Float math is confined to this
// function; the result is truncated back to fixed point.
func AimVelocity(dx, dy, jitter, length int) (vx, vy int) {
	deg := math.Atan2(float64(dy), float64(dx)) + float64(jitter)*CDegRad
	return int(math.Cos(deg) * float64(-length)), int(math.Sin(deg) * float64(-length))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
