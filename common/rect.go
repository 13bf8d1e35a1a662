package common

// Rect holds four independent extents. For hit and display bounds they are half-extents
// measured from the actor's centre (left/top/right/bottom need not match). For sprite
// frames they are absolute source coordinates.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Width is only meaningful for absolute rectangles.
func (r Rect) Width() int { return r.Right - r.Left }

// Height is only meaningful for absolute rectangles.
func (r Rect) Height() int { return r.Bottom - r.Top }

// Around returns the absolute rectangle of half-extents r centred at (x, y).
func (r Rect) Around(x, y int) Rect {
	return Rect{Left: x - r.Left, Top: y - r.Top, Right: x + r.Right, Bottom: y + r.Bottom}
}

// Intersects reports whether two absolute rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.Left < o.Right && r.Right > o.Left && r.Top < o.Bottom && r.Bottom > o.Top
}

// Mirrored swaps the horizontal extents.
func (r Rect) Mirrored() Rect {
	return Rect{Left: r.Right, Top: r.Top, Right: r.Left, Bottom: r.Bottom}
}
