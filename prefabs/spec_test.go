package prefabs

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/milk9111/actorsim/common"
)

func TestLoadNPCTable(t *testing.T) {
	table, err := LoadNPCTable()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, id := range []int{1, 4, 86, 87, 104, 108, 110, 113} {
		if _, ok := table.Type(id); !ok {
			t.Fatalf("type %d missing", id)
		}
	}
	if _, ok := table.Boss(2); !ok {
		t.Fatal("boss 2 missing")
	}
	if len(table.Player.LevelXP) == 0 {
		t.Fatal("player level_xp missing")
	}
}

func TestParseNPCTableRejectsBadTables(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "right offset past rects",
			yaml: "player: {max_life: 3, level_xp: [10]}\ntypes:\n  5:\n    rects: [[0, 0, 16, 16]]\n    right_offset: 2\n",
		},
		{
			name: "negative life",
			yaml: "player: {max_life: 3, level_xp: [10]}\ntypes:\n  5:\n    life: -1\n",
		},
		{
			name: "no level table",
			yaml: "player: {max_life: 3}\n",
		},
		{
			name: "no player life",
			yaml: "player: {level_xp: [10]}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNPCTable([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalidTable) {
				t.Fatalf("expected ErrInvalidTable, got %v", err)
			}
		})
	}
}

func TestTypeSpecFrameAndParams(t *testing.T) {
	data := `
player: {max_life: 3, level_xp: [10]}
types:
  7:
    right_offset: 2
    rects:
      - [0, 0, 16, 16]
      - [16, 0, 32, 16]
      - [0, 16, 16, 32]
      - [16, 16, 32, 32]
    params:
      speed: 64
    debug_color: "#ff000080"
`
	table, err := ParseNPCTable([]byte(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	spec, _ := table.Type(7)

	if got := spec.Frame(1, common.Left); got != (common.Rect{Left: 16, Top: 0, Right: 32, Bottom: 16}) {
		t.Fatalf("left frame 1 = %+v", got)
	}
	if got := spec.Frame(1, common.Right); got != (common.Rect{Left: 16, Top: 16, Right: 32, Bottom: 32}) {
		t.Fatalf("right frame 1 = %+v", got)
	}
	if got := spec.Frame(5, common.Left); got != (common.Rect{}) {
		t.Fatalf("out of range frame = %+v", got)
	}
	if spec.Param("speed", 0) != 64 || spec.Param("missing", 9) != 9 {
		t.Fatal("unexpected params")
	}
	if got := spec.Color(); got != (color.NRGBA{R: 0xff, A: 0x80}) {
		t.Fatalf("unexpected color %#v", got)
	}
}

func TestBoundsUnits(t *testing.T) {
	got := BoundsSpec{Left: 1, Top: 2, Right: 3, Bottom: 4}.Units()
	want := common.Rect{Left: common.Unit, Top: 2 * common.Unit, Right: 3 * common.Unit, Bottom: 4 * common.Unit}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestLoadScript(t *testing.T) {
	if ScriptName(200) != "event_0200.tengo" {
		t.Fatalf("unexpected script name %q", ScriptName(200))
	}
	data, err := LoadScript(ScriptName(200))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !strings.Contains(string(data), "boss_action") {
		t.Fatal("expected the boss entry script")
	}
	if _, err := LoadScript(ScriptName(9999)); err == nil {
		t.Fatal("expected error for a missing script")
	}
}

func TestLoadSfxTable(t *testing.T) {
	table, err := LoadSfxTable()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if table.SampleRate <= 0 || len(table.Effects) == 0 {
		t.Fatalf("unexpected table %+v", table)
	}
}
