package sound

import (
	"testing"

	"github.com/milk9111/actorsim/prefabs"
)

func TestRenderLength(t *testing.T) {
	tests := []struct {
		name string
		fx   prefabs.SfxSpec
		want int
	}{
		{name: "sine", fx: prefabs.SfxSpec{Wave: "sine", Freq: 440, Duration: 100}, want: 4410 * 4},
		{name: "noise", fx: prefabs.SfxSpec{Wave: "noise", Duration: 10}, want: 441 * 4},
		{name: "empty", fx: prefabs.SfxSpec{Wave: "square", Freq: 220}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(Render(tt.fx, 44100)); got != tt.want {
				t.Fatalf("expected %d bytes, got %d", tt.want, got)
			}
		})
	}
}

func TestShippedTableRenders(t *testing.T) {
	table, err := prefabs.LoadSfxTable()
	if err != nil {
		t.Fatalf("load sfx table: %v", err)
	}
	for id, fx := range table.Effects {
		if len(Render(fx, table.SampleRate)) == 0 {
			t.Fatalf("effect %d (%s) rendered nothing", id, fx.Name)
		}
	}
}

func TestNullManager(t *testing.T) {
	var m *Manager
	if err := m.PlaySFX(3); err != nil {
		t.Fatalf("nil manager should ignore effects, got %v", err)
	}
	if err := (Null{}).PlaySFX(99); err != nil {
		t.Fatalf("null player returned %v", err)
	}
}
