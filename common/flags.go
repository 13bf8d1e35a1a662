package common

// Flags is the result of a collision judgment: which sides of an entity made contact.
// Judges return a fresh value; callers OR it into the entity's persistent flags, which
// are cleared at the start of every collision pass.
type Flags uint32

const (
	HitLeftWall   Flags = 0x01
	HitTopWall    Flags = 0x02
	HitRightWall  Flags = 0x04
	HitBottomWall Flags = 0x08

	// HitAnyWall masks the contact bits set by solid judges.
	HitAnyWall Flags = 0xff
)

func (f Flags) HitLeftWall() bool   { return f&HitLeftWall != 0 }
func (f Flags) HitTopWall() bool    { return f&HitTopWall != 0 }
func (f Flags) HitRightWall() bool  { return f&HitRightWall != 0 }
func (f Flags) HitBottomWall() bool { return f&HitBottomWall != 0 }
func (f Flags) Any() bool           { return f != 0 }
