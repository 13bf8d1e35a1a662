// Package render draws a debug view of the world: tiles, display and hit boxes, shots,
// carets and a status line. It is not a sprite compositor.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/actorsim/common"
	"github.com/milk9111/actorsim/ecs"
	"golang.org/x/image/colornames"
)

var (
	colorBackground = colornames.Midnightblue
	colorSolid      = colornames.Slategray
	colorActorSolid = colornames.Darkslategray
	colorHit        = color.RGBA{R: 255, A: 200}
	colorDisplay    = colornames.Lightgreen
	colorPlayer     = colornames.White
	colorShocked    = colornames.Orangered
	colorBullet     = colornames.Yellow
	colorBoss       = colornames.Mediumpurple
	colorCaret      = colornames.Lightskyblue
)

type Renderer struct {
	Camera *Camera
	// ShowHit draws hit boxes on top of display boxes.
	ShowHit bool
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{Camera: NewCamera(width, height), ShowHit: true}
}

// Draw renders w. The screen shake offset is drawn from the effect stream.
func (r *Renderer) Draw(screen *ebiten.Image, w *ecs.World) {
	if r == nil || screen == nil || w == nil {
		return
	}
	screen.Fill(colorBackground)
	r.Camera.Follow(w.Player(), w.Stage())

	var ox, oy float32
	if w.Quake() > 0 {
		ox = float32(w.EffectRNG().Range(-1, 1))
		oy = float32(w.EffectRNG().Range(-1, 1))
	}
	offX, offY := -r.Camera.X+ox, -r.Camera.Y+oy

	r.drawStage(screen, w.Stage(), offX, offY)

	w.EachActor(func(a *ecs.Actor) {
		if a.Cond.Hidden() {
			return
		}
		spec, _ := w.Table().Type(int(a.Type))
		clr := spec.Color()
		if clr == nil {
			clr = colorDisplay
		}
		r.drawActor(screen, a, clr, offX, offY)
	})
	w.Boss().EachLivePart(func(_ int, part *ecs.Actor) {
		r.drawActor(screen, part, colorBoss, offX, offY)
	})

	for _, b := range w.Bullets() {
		r.box(screen, b.Bounds(), colorBullet, offX, offY, true)
	}
	for _, c := range w.Carets() {
		x := float32(common.ToPx(c.X)) + offX
		y := float32(common.ToPx(c.Y)) + offY
		vector.FillRect(screen, x-1, y-1, 3, 3, colorCaret, false)
	}

	p := w.Player()
	if p.Alive() {
		clr := color.Color(colorPlayer)
		if p.Shock/2%2 != 0 {
			clr = colorShocked
		}
		r.box(screen, p.Bounds(), clr, offX, offY, false)
	}

	r.drawStatus(screen, w)
}

func (r *Renderer) drawStage(screen *ebiten.Image, stage *ecs.Stage, offX, offY float32) {
	if stage == nil {
		return
	}
	half := float32(common.TilePx) / 2
	for ty := 0; ty < stage.Height; ty++ {
		for tx := 0; tx < stage.Width; tx++ {
			var clr color.Color
			switch stage.At(tx, ty) {
			case ecs.TileSolid:
				clr = colorSolid
			case ecs.TileActorSolid:
				clr = colorActorSolid
			default:
				continue
			}
			x := float32(tx*common.TilePx) - half + offX
			y := float32(ty*common.TilePx) - half + offY
			vector.FillRect(screen, x, y, common.TilePx, common.TilePx, clr, false)
		}
	}
}

func (r *Renderer) drawActor(screen *ebiten.Image, a *ecs.Actor, clr color.Color, offX, offY float32) {
	display := a.DisplayBounds
	if a.Direction == common.Right {
		display = display.Mirrored()
	}
	abs := display.Around(a.X, a.Y)
	if !r.Camera.Visible(abs) {
		return
	}
	r.box(screen, abs, clr, offX, offY, false)
	if r.ShowHit {
		r.box(screen, a.Bounds(), colorHit, offX, offY, false)
	}
}

func (r *Renderer) box(screen *ebiten.Image, abs common.Rect, clr color.Color, offX, offY float32, fill bool) {
	x := float32(abs.Left)/common.Unit + offX
	y := float32(abs.Top)/common.Unit + offY
	wd := float32(abs.Width()) / common.Unit
	ht := float32(abs.Height()) / common.Unit
	if fill {
		vector.FillRect(screen, x, y, wd, ht, clr, false)
		return
	}
	vector.StrokeRect(screen, x, y, wd, ht, 1, clr, false)
}

func (r *Renderer) drawStatus(screen *ebiten.Image, w *ecs.World) {
	p := w.Player()
	status := fmt.Sprintf("life %d/%d  lv %d xp %d  missiles %d  frame %d  tps %.0f",
		p.Life, p.MaxLife, p.Level, p.XP, p.Missiles, w.Frame(), ebiten.ActualTPS())
	if b := w.Boss(); b.Active() && b.Driver().Alive() {
		status += fmt.Sprintf("\nboss %d/%d  action %d", b.Driver().Life, b.Driver().MaxLife, b.Driver().ActionNum)
	}
	ebitenutil.DebugPrintAt(screen, status, 4, 4)
}
