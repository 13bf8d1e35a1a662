package ecs

import (
	"errors"
	"fmt"
)

var ErrBadStage = errors.New("bad stage")

// Tile is the solidity class of one map cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileSolid
	// TileActorSolid blocks actors unless they ignore tile 44. The player passes through.
	TileActorSolid
)

// Stage is the tile grid actors and the player collide with. Cells outside the grid are
// solid.
type Stage struct {
	Width  int
	Height int
	tiles  []Tile
}

func NewStage(width, height int, tiles []Tile) (*Stage, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrBadStage, width, height)
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("%w: %d tiles for %dx%d", ErrBadStage, len(tiles), width, height)
	}
	return &Stage{Width: width, Height: height, tiles: append([]Tile(nil), tiles...)}, nil
}

func (s *Stage) At(tx, ty int) Tile {
	if s == nil || tx < 0 || ty < 0 || tx >= s.Width || ty >= s.Height {
		return TileSolid
	}
	return s.tiles[ty*s.Width+tx]
}
