package core

import "testing"

func TestTorusWrap(t *testing.T) {
	tor := NewTorus(8, 4)

	cases := []struct {
		x, y         int
		wantX, wantY int
	}{
		{0, 0, 0, 0},
		{8, 4, 0, 0},
		{-1, -1, 7, 3},
		{17, -5, 1, 3},
	}
	for _, tc := range cases {
		x, y := tor.Wrap(tc.x, tc.y)
		if x != tc.wantX || y != tc.wantY {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", tc.x, tc.y, x, y, tc.wantX, tc.wantY)
		}
	}
}

func TestTorusShiftCrossesEdges(t *testing.T) {
	tor := NewTorus(4, 4)

	origin := tor.Index(0, 0)
	if got, want := tor.Shift(origin, -1, 0), tor.Index(3, 0); got != want {
		t.Fatalf("Shift west from origin = %d, want %d", got, want)
	}
	if got, want := tor.Shift(origin, 0, -1), tor.Index(0, 3); got != want {
		t.Fatalf("Shift north from origin = %d, want %d", got, want)
	}
	if got, want := tor.Shift(tor.Index(3, 3), 1, 1), origin; got != want {
		t.Fatalf("Shift southeast from far corner = %d, want %d", got, want)
	}
}

func TestTorusIndexCoordsRoundTrip(t *testing.T) {
	tor := NewTorus(5, 3)
	for idx := 0; idx < tor.Len(); idx++ {
		x, y := tor.Coords(idx)
		if tor.Index(x, y) != idx {
			t.Fatalf("Coords/Index round trip broke at %d -> (%d,%d)", idx, x, y)
		}
	}
}

func TestNewTorusClampsDimensions(t *testing.T) {
	tor := NewTorus(0, -2)
	if tor.W != 1 || tor.H != 1 {
		t.Fatalf("expected 1x1 fallback, got %dx%d", tor.W, tor.H)
	}
}
