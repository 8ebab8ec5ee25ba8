//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/Remars78/life-simulation-v1/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMargin     = 10
	hudLineHeight = 14
)

var hudTextColor = color.RGBA{R: 235, G: 235, B: 235, A: 255}

// HUD draws the population readout and, when toggled, the simulation
// tunables on top of the world view.
type HUD struct {
	sim        core.Sim
	showParams bool
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim}
}

// Update handles HUD key bindings. While the parameter panel is open, [ and ]
// nudge the regrowth chance and - and = nudge the photosynthesis gain.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.showParams = !h.showParams
	}
	if h.showParams {
		h.adjustParams()
	}
}

func (h *HUD) adjustParams() {
	const chanceStep = 0.001
	if setter, ok := h.sim.(core.FloatParameterSetter); ok {
		if inpututil.IsKeyJustPressed(ebiten.KeyLeftBracket) {
			setter.SetFloatParameter("regrowth_chance", h.floatValue("regrowth_chance")-chanceStep)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyRightBracket) {
			setter.SetFloatParameter("regrowth_chance", h.floatValue("regrowth_chance")+chanceStep)
		}
	}
	if setter, ok := h.sim.(core.IntParameterSetter); ok {
		if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
			setter.SetIntParameter("photosynthesis_gain", h.intValue("photosynthesis_gain")-1)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
			setter.SetIntParameter("photosynthesis_gain", h.intValue("photosynthesis_gain")+1)
		}
	}
}

func (h *HUD) paramValue(key string) (string, bool) {
	provider, ok := h.sim.(interface{ Parameters() core.ParameterSnapshot })
	if !ok {
		return "", false
	}
	for _, group := range provider.Parameters().Groups {
		for _, param := range group.Params {
			if param.Key == key {
				return param.Value, true
			}
		}
	}
	return "", false
}

func (h *HUD) floatValue(key string) float64 {
	raw, ok := h.paramValue(key)
	if !ok {
		return 0
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return parsed
}

func (h *HUD) intValue(key string) int {
	raw, ok := h.paramValue(key)
	if !ok {
		return 0
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return parsed
}

// Draw paints the HUD into the top-left corner of the screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	y := hudMargin + face.Ascent

	text.Draw(screen, fmt.Sprintf("FPS %0.0f  TPS %0.0f", ebiten.ActualFPS(), ebiten.ActualTPS()), face, hudMargin, y, hudTextColor)
	y += hudLineHeight

	if counter, ok := h.sim.(core.AliveCounter); ok {
		text.Draw(screen, fmt.Sprintf("Bots: %d", counter.AliveCount()), face, hudMargin, y, hudTextColor)
		y += hudLineHeight
	}

	if !h.showParams {
		return
	}
	provider, ok := h.sim.(interface{ Parameters() core.ParameterSnapshot })
	if !ok {
		return
	}
	for _, group := range provider.Parameters().Groups {
		y += hudLineHeight / 2
		text.Draw(screen, group.Name, face, hudMargin, y, hudTextColor)
		y += hudLineHeight
		for _, param := range group.Params {
			text.Draw(screen, fmt.Sprintf("  %s: %s", param.Label, param.Value), face, hudMargin, y, hudTextColor)
			y += hudLineHeight
		}
	}
}
