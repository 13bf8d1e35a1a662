package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
)

//go:embed *.json
var LevelsFS embed.FS

const DefaultLevel = "frog_arena.json"

var ErrBadLevel = errors.New("bad level")

// Level is an authored stage: tile layers, the composite to install and the actors
// placed at load. Coordinates are in tiles.
type Level struct {
	Name       string      `json:"name"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Boss       int         `json:"boss,omitempty"`
	EntryEvent int         `json:"entry_event,omitempty"`
	Layers     [][]int     `json:"layers"`
	LayerMeta  []LayerMeta `json:"layer_meta,omitempty"`
	Entities   []Entity    `json:"entities,omitempty"`
}

// LayerMeta marks a layer as collidable. Actor-only layers stop actors but let the
// player through.
type LayerMeta struct {
	Physics   bool `json:"physics"`
	ActorOnly bool `json:"actor_only,omitempty"`
}

type Entity struct {
	Type      string `json:"type"`
	NPC       int    `json:"npc,omitempty"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Direction string `json:"direction,omitempty"`
	Event     int    `json:"event,omitempty"`
	Flag      int    `json:"flag,omitempty"`
}

// Solidity classifies a cell after merging all physics layers.
type Solidity uint8

const (
	Open Solidity = iota
	Solid
	ActorSolid
)

// Validate checks that every layer covers the grid.
func (l *Level) Validate() error {
	if l == nil {
		return fmt.Errorf("levels: %w: nil level", ErrBadLevel)
	}
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("levels: %s: %w: size %dx%d", l.Name, ErrBadLevel, l.Width, l.Height)
	}
	for i, layer := range l.Layers {
		if len(layer) != l.Width*l.Height {
			return fmt.Errorf("levels: %s: %w: layer %d has %d cells, want %d", l.Name, ErrBadLevel, i, len(layer), l.Width*l.Height)
		}
	}
	return nil
}

// Solidity merges the physics layers row-major. A solid cell wins over actor-solid.
func (l *Level) Solidity() []Solidity {
	cells := make([]Solidity, l.Width*l.Height)
	for i, layer := range l.Layers {
		if i >= len(l.LayerMeta) || !l.LayerMeta[i].Physics {
			continue
		}
		kind := Solid
		if l.LayerMeta[i].ActorOnly {
			kind = ActorSolid
		}
		for idx, v := range layer {
			if v == 0 || cells[idx] == Solid {
				continue
			}
			cells[idx] = kind
		}
	}
	return cells
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return ParseLevel(data)
}

func ParseLevel(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}
