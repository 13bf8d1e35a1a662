package common

// Direction is the facing of an actor. FacingPlayer is only valid in spawn requests and is
// resolved to Left or Right when the actor is admitted into the world.
type Direction uint8

const (
	Left Direction = iota
	Up
	Right
	Down
	FacingPlayer
)

// VectorX returns -1 for Left, +1 for Right and 0 otherwise.
func (d Direction) VectorX() int {
	switch d {
	case Left:
		return -1
	case Right:
		return 1
	default:
		return 0
	}
}

// VectorY returns -1 for Up, +1 for Down and 0 otherwise.
func (d Direction) VectorY() int {
	switch d {
	case Up:
		return -1
	case Down:
		return 1
	default:
		return 0
	}
}

func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case FacingPlayer:
		return "facing_player"
	default:
		return "unknown"
	}
}

// ParseDirection accepts the names produced by String. Unknown names map to Left.
func ParseDirection(s string) Direction {
	switch s {
	case "up":
		return Up
	case "right":
		return Right
	case "down":
		return Down
	case "facing_player":
		return FacingPlayer
	default:
		return Left
	}
}
