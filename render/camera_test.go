package render

import (
	"testing"

	"github.com/milk9111/actorsim/common"
)

func TestCameraVisible(t *testing.T) {
	c := NewCamera(100, 80)
	tests := []struct {
		name string
		rect common.Rect
		want bool
	}{
		{name: "inside", rect: common.Rect{Left: common.Px(10), Top: common.Px(10), Right: common.Px(20), Bottom: common.Px(20)}, want: true},
		{name: "straddles edge", rect: common.Rect{Left: common.Px(95), Top: common.Px(70), Right: common.Px(110), Bottom: common.Px(90)}, want: true},
		{name: "right of view", rect: common.Rect{Left: common.Px(120), Top: common.Px(10), Right: common.Px(130), Bottom: common.Px(20)}, want: false},
		{name: "below view", rect: common.Rect{Left: common.Px(10), Top: common.Px(100), Right: common.Px(20), Bottom: common.Px(110)}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Visible(tt.rect); got != tt.want {
				t.Fatalf("Visible(%+v) = %v, want %v", tt.rect, got, tt.want)
			}
		})
	}
}
