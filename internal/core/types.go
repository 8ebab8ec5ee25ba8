package core

import "image/color"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a simulation must implement. Cells exposes
// a per-cell display value; how values map to colors is the sim's business
// (see PaletteProvider).
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// PaletteProvider is implemented by sims whose display values index into a
// color table instead of being plain on/off bits.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// AliveCounter is implemented by sims that track a population count for the
// HUD.
type AliveCounter interface {
	AliveCount() int
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
