package core

// Torus maps coordinates on a wrapping 2D grid onto linear cell indices in
// row-major order.
type Torus struct {
	W, H int
}

// NewTorus builds a torus with the given dimensions.
func NewTorus(w, h int) Torus {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Torus{W: w, H: h}
}

// Len returns the number of cells on the torus.
func (t Torus) Len() int { return t.W * t.H }

// Index returns the linear index for coordinates (x, y).
func (t Torus) Index(x, y int) int { return y*t.W + x }

// Coords returns the coordinates for a linear index.
func (t Torus) Coords(idx int) (int, int) { return idx % t.W, idx / t.W }

// Wrap applies toroidal wrapping to the provided coordinates.
func (t Torus) Wrap(x, y int) (int, int) {
	x = (x%t.W + t.W) % t.W
	y = (y%t.H + t.H) % t.H
	return x, y
}

// Shift returns the linear index of the cell offset by (dx, dy) from idx,
// wrapping around the grid edges.
func (t Torus) Shift(idx, dx, dy int) int {
	x, y := t.Coords(idx)
	x, y = t.Wrap(x+dx, y+dy)
	return t.Index(x, y)
}
