package main

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/actorsim/common"
	"github.com/milk9111/actorsim/ecs/entity"
	"github.com/milk9111/actorsim/input"
	"github.com/milk9111/actorsim/input/keyboard"
	"github.com/milk9111/actorsim/logging"
	"github.com/milk9111/actorsim/prefabs"
	"github.com/milk9111/actorsim/render"
	"github.com/milk9111/actorsim/replay"
)

const speedStep = 0.1

// Game drives the simulation from ebiten's update loop. Every ebiten update asks the
// clock how many whole steps are due; input is latched once per step.
type Game struct {
	sim      *entity.Sim
	port     *input.Port
	source   input.Source
	clock    *common.Clock
	renderer *render.Renderer
	recorder *replay.Recorder
	watcher  *prefabs.Watcher

	width, height int
	last          time.Time
}

func NewGame(sim *entity.Sim, port *input.Port, clock *common.Clock, width, height int) *Game {
	return &Game{
		sim:      sim,
		port:     port,
		source:   keyboard.New(),
		clock:    clock,
		renderer: render.NewRenderer(width, height),
		width:    width,
		height:   height,
	}
}

func (g *Game) SetRecorder(r *replay.Recorder) { g.recorder = r }

func (g *Game) SetWatcher(w *prefabs.Watcher) { g.watcher = w }

func (g *Game) SetShowHit(on bool) { g.renderer.ShowHit = on }

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sim.World.Shutdown()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.renderer.ShowHit = !g.renderer.ShowHit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.clock.SetSpeed(g.clock.Speed() + speedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.clock.SetSpeed(g.clock.Speed() - speedStep)
	}
	g.applyReloads()

	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	}
	steps := g.clock.Advance(now.Sub(g.last))
	g.last = now

	w := g.sim.World
	for i := 0; i < steps && !w.ShuttingDown(); i++ {
		f := g.source.Poll()
		g.port.Set(f)
		w.Step()
		if g.recorder != nil {
			g.recorder.Record(f, w.Checksum())
		}
	}
	if w.ShuttingDown() {
		return ebiten.Termination
	}
	return nil
}

// applyReloads swaps edited tables and scripts in between steps.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	changes, err := g.watcher.Poll()
	if err != nil {
		logging.Log.WithError(err).Warn("prefab watcher")
	}
	for _, c := range changes {
		if c.Script {
			g.sim.Scripts.Invalidate()
			logging.Log.WithField("path", c.Path).Info("scripts reloaded")
			continue
		}
		table, err := prefabs.LoadNPCTable()
		if err != nil {
			logging.Log.WithError(err).WithField("path", c.Path).Warn("table reload rejected")
			continue
		}
		if err := g.sim.ReloadTable(table); err != nil {
			logging.Log.WithError(err).WithField("path", c.Path).Warn("table reload rejected")
			continue
		}
		logging.Log.WithField("path", c.Path).Info("table reloaded")
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.sim.World)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// run opens the window and blocks until it closes.
func (g *Game) run(scale int, title string) error {
	ebiten.SetWindowSize(g.width*scale, g.height*scale)
	ebiten.SetWindowTitle(title)
	if g.clock.Mode() == common.TimingFrameSynchronized {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	} else {
		ebiten.SetTPS(g.clock.Mode().TPS())
	}
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
