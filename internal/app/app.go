//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/Remars78/life-simulation-v1/internal/core"
	"github.com/Remars78/life-simulation-v1/internal/render"
	"github.com/Remars78/life-simulation-v1/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const minZoom = 0.1

// Game adapts a core simulation to the ebiten.Game interface and owns the
// camera transform over the world texture.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	step    *core.FixedStep

	palette []color.RGBA

	scale int
	seed  int64

	zoom       float64
	camX, camY float64
	dragging   bool
	lastMX     int
	lastMY     int

	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64, tps int) *Game {
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(sim.Size().W, sim.Size().H),
		hud:     ui.NewHUD(sim),
		step:    core.NewFixedStep(tps),
		scale:   scale,
		seed:    seed,
		zoom:    1,
	}
	if provider, ok := sim.(core.PaletteProvider); ok {
		g.palette = provider.Palette()
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			g.step.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.updateCamera()
	g.hud.Update()

	if g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	} else if !g.paused && g.step.ShouldStep() {
		g.sim.Step()
	}
	return nil
}

func (g *Game) updateCamera() {
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.zoom += wy
		if g.zoom < minZoom {
			g.zoom = minZoom
		}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if g.dragging {
			g.camX += float64(mx - g.lastMX)
			g.camY += float64(my - g.lastMY)
		}
		g.lastMX, g.lastMY = mx, my
		g.dragging = true
	} else {
		g.dragging = false
	}
}

// Draw renders the current simulation state and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Blit(screen, g.sim.Cells(), g.palette, float64(g.scale)*g.zoom, g.camX, g.camY)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
