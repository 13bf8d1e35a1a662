package render

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/actorsim/common"
	"github.com/milk9111/actorsim/ecs"
)

const cameraEase = 0.15

// Camera follows the player in screen pixels. It is presentation state only and never
// feeds back into the simulation.
type Camera struct {
	X, Y          float32
	Width, Height int
}

func NewCamera(width, height int) *Camera {
	return &Camera{Width: width, Height: height}
}

// Follow eases the camera toward the player, clamped to the stage.
func (c *Camera) Follow(p *ecs.Player, stage *ecs.Stage) {
	if c == nil || p == nil {
		return
	}
	tx := float32(common.ToPx(p.X)) - float32(c.Width)/2
	ty := float32(common.ToPx(p.Y)) - float32(c.Height)/2
	c.X = common.Lerp(c.X, tx, cameraEase)
	c.Y = common.Lerp(c.Y, ty, cameraEase)

	if stage == nil {
		return
	}
	// Tile centres sit on multiples of TilePx, so the stage starts half a tile left of 0.
	minX := -float32(common.TilePx) / 2
	maxX := float32(stage.Width*common.TilePx) + minX - float32(c.Width)
	minY := minX
	maxY := float32(stage.Height*common.TilePx) + minY - float32(c.Height)
	c.X = clamp(c.X, minX, maxX)
	c.Y = clamp(c.Y, minY, maxY)
}

// View is the camera rectangle as a chipmunk bounding box, y growing downward.
func (c *Camera) View() cp.BB {
	return cp.NewBB(float64(c.X), float64(c.Y), float64(c.X)+float64(c.Width), float64(c.Y)+float64(c.Height))
}

// Visible reports whether an absolute fixed-point rectangle overlaps the view.
func (c *Camera) Visible(r common.Rect) bool {
	if c == nil {
		return false
	}
	bb := cp.NewBB(
		float64(r.Left)/common.Unit, float64(r.Top)/common.Unit,
		float64(r.Right)/common.Unit, float64(r.Bottom)/common.Unit,
	)
	return c.View().Intersects(bb)
}

func clamp(v, lo, hi float32) float32 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
