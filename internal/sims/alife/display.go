package alife

import "image/color"

// Display codes. Organic shades occupy the even values plus 255 (the value is
// min(organic*2, 255), which is never an odd number below 255), so the bot
// markers can live on reserved odd slots without colliding.
const (
	displayBotPhotosynth = 1
	displayBotCarnivore  = 3
)

var alifePalette = buildAlifePalette()

// Palette exposes the color table used for rendering the world.
func (w *World) Palette() []color.RGBA {
	return alifePalette
}

func buildAlifePalette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	for i := range palette {
		// Reddish-brown organic gradient (v, v/2, 0).
		palette[i] = color.RGBA{R: uint8(i), G: uint8(i / 2), B: 0, A: 255}
	}
	palette[displayBotPhotosynth] = colorPhotosynth
	palette[displayBotCarnivore] = colorCarnivore
	return palette
}

// rebuildDisplay re-encodes the current buffer into display codes. Called
// after every Reset and Step, never concurrently with workers.
func (w *World) rebuildDisplay() {
	for i := range w.cur {
		w.display[i] = encodeDisplayValue(&w.cur[i])
	}
}

func encodeDisplayValue(c *Cell) uint8 {
	if c.Bot.Alive {
		if c.Bot.Color == colorCarnivore {
			return displayBotCarnivore
		}
		return displayBotPhotosynth
	}
	v := c.Organic * 2
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
