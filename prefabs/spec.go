package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/actorsim/common"
	"gopkg.in/yaml.v3"
)

const (
	NPCTableFile = "npc_table.yaml"
	SfxTableFile = "sfx.yaml"
)

var ErrInvalidTable = errors.New("invalid table")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// NPCTable is the authored constants table: per-type stats, hit geometry, animation
// rectangles and tunable parameters. All distances are in pixels; the simulation
// converts them to fixed point when an actor is created.
type NPCTable struct {
	Types  map[int]TypeSpec `yaml:"types"`
	Bosses map[int]BossSpec `yaml:"bosses"`
	Player PlayerSpec       `yaml:"player"`
}

type TypeSpec struct {
	Name       string         `yaml:"name"`
	Flags      []string       `yaml:"flags"`
	Life       int            `yaml:"life"`
	Damage     int            `yaml:"damage"`
	Exp        int            `yaml:"exp"`
	Size       int            `yaml:"size"`
	HurtSound  int            `yaml:"hurt_sound"`
	DeathSound int            `yaml:"death_sound"`
	Hit        BoundsSpec     `yaml:"hit"`
	Display    BoundsSpec     `yaml:"display"`
	Rects      []RectSpec     `yaml:"rects"`
	RightRects int            `yaml:"right_offset"`
	Params     map[string]int `yaml:"params"`
	DebugColor *YAMLColor     `yaml:"debug_color"`
}

// Param returns a tunable value, or def when the table does not set it.
func (t *TypeSpec) Param(name string, def int) int {
	if t == nil || t.Params == nil {
		return def
	}
	if v, ok := t.Params[name]; ok {
		return v
	}
	return def
}

// Frame returns the source rectangle for an animation index. Right-facing frames live
// RightRects entries after the left-facing ones. Out-of-range indices yield an empty rect.
func (t *TypeSpec) Frame(anim int, dir common.Direction) common.Rect {
	if t == nil {
		return common.Rect{}
	}
	return frame(t.Rects, t.RightRects, anim, dir)
}

func (t *TypeSpec) Color() color.Color {
	if t == nil || t.DebugColor == nil || t.DebugColor.Color == nil {
		return nil
	}
	return t.DebugColor.Color
}

type BossSpec struct {
	Name        string               `yaml:"name"`
	Rects       []RectSpec           `yaml:"rects"`
	RightRects  int                  `yaml:"right_offset"`
	PartOffsets map[int][]PartOffset `yaml:"part_offsets"`
	Parts       map[int]BossPartSpec `yaml:"parts"`
	Params      map[string]int       `yaml:"params"`
	Sounds      map[string]int       `yaml:"sounds"`
}

// PartOffset places a slaved part relative to the driver for one animation index. X is
// mirrored by the driver's facing.
type PartOffset struct {
	Part int `yaml:"part"`
	X    int `yaml:"x"`
	Y    int `yaml:"y"`
}

type BossPartSpec struct {
	Hit       BoundsSpec `yaml:"hit"`
	Size      int        `yaml:"size"`
	Damage    int        `yaml:"damage"`
	HurtSound int        `yaml:"hurt_sound"`
}

func (b *BossSpec) Param(name string, def int) int {
	if b == nil || b.Params == nil {
		return def
	}
	if v, ok := b.Params[name]; ok {
		return v
	}
	return def
}

func (b *BossSpec) Sound(name string, def int) int {
	if b == nil || b.Sounds == nil {
		return def
	}
	if v, ok := b.Sounds[name]; ok {
		return v
	}
	return def
}

func (b *BossSpec) Frame(anim int, dir common.Direction) common.Rect {
	if b == nil {
		return common.Rect{}
	}
	return frame(b.Rects, b.RightRects, anim, dir)
}

// Offsets returns the attachment table entry for anim, or nil when parts stay put.
func (b *BossSpec) Offsets(anim int) []PartOffset {
	if b == nil || b.PartOffsets == nil {
		return nil
	}
	return b.PartOffsets[anim]
}

type PlayerSpec struct {
	Hit         BoundsSpec `yaml:"hit"`
	MaxLife     int        `yaml:"max_life"`
	MaxMissiles int        `yaml:"max_missiles"`
	LevelXP     []int      `yaml:"level_xp"`
	WalkAccel   int        `yaml:"walk_accel"`
	AirAccel    int        `yaml:"air_accel"`
	MaxWalk     int        `yaml:"max_walk"`
	Friction    int        `yaml:"friction"`
	JumpVel     int        `yaml:"jump_vel"`
	Gravity     int        `yaml:"gravity"`
	GravityHeld int        `yaml:"gravity_held"`
	Terminal    int        `yaml:"terminal"`
	ShotSpeed   int        `yaml:"shot_speed"`
	ShotDamage  int        `yaml:"shot_damage"`
	ShotRange   int        `yaml:"shot_range"`
	ShotDelay   int        `yaml:"shot_delay"`
	MaxShots    int        `yaml:"max_shots"`
	Rects       []RectSpec `yaml:"rects"`
	RightRects  int        `yaml:"right_offset"`
}

func (p *PlayerSpec) Frame(anim int, dir common.Direction) common.Rect {
	if p == nil {
		return common.Rect{}
	}
	return frame(p.Rects, p.RightRects, anim, dir)
}

// BoundsSpec holds four half-extents in pixels.
type BoundsSpec struct {
	Left   int `yaml:"left"`
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
}

// Units converts the half-extents to fixed point.
func (b BoundsSpec) Units() common.Rect {
	return common.Rect{
		Left:   common.Px(b.Left),
		Top:    common.Px(b.Top),
		Right:  common.Px(b.Right),
		Bottom: common.Px(b.Bottom),
	}
}

// RectSpec is a source rectangle written as [left, top, right, bottom].
type RectSpec [4]int

func (r RectSpec) Rect() common.Rect {
	return common.Rect{Left: r[0], Top: r[1], Right: r[2], Bottom: r[3]}
}

func frame(rects []RectSpec, rightOffset, anim int, dir common.Direction) common.Rect {
	idx := anim
	if dir == common.Right {
		idx += rightOffset
	}
	if idx < 0 || idx >= len(rects) {
		return common.Rect{}
	}
	return rects[idx].Rect()
}

// Type returns the spec for an actor type.
func (t *NPCTable) Type(id int) (*TypeSpec, bool) {
	if t == nil || t.Types == nil {
		return nil, false
	}
	spec, ok := t.Types[id]
	if !ok {
		return nil, false
	}
	return &spec, true
}

func (t *NPCTable) Boss(id int) (*BossSpec, bool) {
	if t == nil || t.Bosses == nil {
		return nil, false
	}
	spec, ok := t.Bosses[id]
	if !ok {
		return nil, false
	}
	return &spec, true
}

// Validate checks table-wide consistency that does not depend on behavior code.
func (t *NPCTable) Validate() error {
	if t == nil {
		return fmt.Errorf("prefabs: %w: nil table", ErrInvalidTable)
	}
	for id, spec := range t.Types {
		if id <= 0 {
			return fmt.Errorf("prefabs: %w: type id %d", ErrInvalidTable, id)
		}
		if spec.RightRects < 0 || spec.RightRects > len(spec.Rects) {
			return fmt.Errorf("prefabs: %w: type %d right_offset %d out of range", ErrInvalidTable, id, spec.RightRects)
		}
		if spec.Life < 0 || spec.Damage < 0 || spec.Exp < 0 {
			return fmt.Errorf("prefabs: %w: type %d has negative stats", ErrInvalidTable, id)
		}
	}
	if len(t.Player.LevelXP) == 0 {
		return fmt.Errorf("prefabs: %w: player level_xp is empty", ErrInvalidTable)
	}
	if t.Player.MaxLife <= 0 {
		return fmt.Errorf("prefabs: %w: player max_life must be positive", ErrInvalidTable)
	}
	return nil
}

// LoadNPCTable reads and validates the constants table, preferring the on-disk copy.
func LoadNPCTable() (*NPCTable, error) {
	table, err := LoadSpec[NPCTable](NPCTableFile)
	if err != nil {
		return nil, err
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &table, nil
}

// ParseNPCTable decodes a table from raw YAML.
func ParseNPCTable(data []byte) (*NPCTable, error) {
	var table NPCTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal table: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &table, nil
}

// SfxTable describes synthesized sound effects keyed by id.
type SfxTable struct {
	SampleRate int             `yaml:"sample_rate"`
	Effects    map[int]SfxSpec `yaml:"effects"`
}

type SfxSpec struct {
	Name     string  `yaml:"name"`
	Wave     string  `yaml:"wave"`
	Freq     float64 `yaml:"freq"`
	FreqEnd  float64 `yaml:"freq_end"`
	Duration int     `yaml:"duration_ms"`
	Volume   float64 `yaml:"volume"`
}

func LoadSfxTable() (*SfxTable, error) {
	table, err := LoadSpec[SfxTable](SfxTableFile)
	if err != nil {
		return nil, err
	}
	if table.SampleRate <= 0 {
		table.SampleRate = 44100
	}
	return &table, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
