package alife

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// snapshot serializes the current buffer so grids can be compared
// byte-for-byte.
func snapshot(w *World) []byte {
	var buf bytes.Buffer
	for i := range w.cur {
		c := &w.cur[i]
		binary.Write(&buf, binary.LittleEndian, int64(c.Organic))
		if !c.Bot.Alive {
			buf.WriteByte(0)
			continue
		}
		buf.WriteByte(1)
		buf.WriteByte(c.Bot.IP)
		buf.WriteByte(c.Bot.Dir)
		binary.Write(&buf, binary.LittleEndian, int64(c.Bot.Energy))
		buf.Write(c.Bot.Genome)
	}
	return buf.Bytes()
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 16
	cfg.Seed = 99
	cfg.Workers = 1

	world := NewWithConfig(cfg)
	world.Reset(0)
	first := snapshot(world)

	world.Reset(0)
	if !bytes.Equal(first, snapshot(world)) {
		t.Fatal("Reset with config seed not deterministic")
	}

	world.Reset(777)
	other := snapshot(world)
	world.Reset(777)
	if !bytes.Equal(other, snapshot(world)) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if bytes.Equal(first, other) {
		t.Fatal("different seeds should produce different initial grids")
	}
}

func TestResetSeedsValidRanges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 64
	cfg.Height = 32
	cfg.Workers = 1

	world := NewWithConfig(cfg)
	world.Reset(0)

	bots := 0
	for i := range world.cur {
		c := &world.cur[i]
		if c.Organic < 0 || c.Organic >= 50 {
			t.Fatalf("cell %d organic %d outside [0,50)", i, c.Organic)
		}
		if !c.Bot.Alive {
			continue
		}
		bots++
		if c.Bot.Energy != cfg.Params.SpawnEnergy {
			t.Fatalf("bot %d energy %d, want %d", i, c.Bot.Energy, cfg.Params.SpawnEnergy)
		}
		if c.Bot.Dir >= 8 {
			t.Fatalf("bot %d dir %d outside [0,8)", i, c.Bot.Dir)
		}
		if len(c.Bot.Genome) != cfg.GenomeSize {
			t.Fatalf("bot %d genome length %d, want %d", i, len(c.Bot.Genome), cfg.GenomeSize)
		}
	}
	if bots == 0 {
		t.Fatal("expected the reset to spawn bots")
	}
	if world.AliveCount() != bots {
		t.Fatalf("AliveCount %d disagrees with grid scan %d", world.AliveCount(), bots)
	}
}

func TestCellAtWrapsCoordinates(t *testing.T) {
	w := newTestWorld(8, 4, 1)
	idx := placeBot(w, 7, 3, 0, 42, genomeOf(0))
	w.cur[idx].Organic = 13

	got := w.CellAt(-1, -1)
	if !got.Bot.Alive || got.Bot.Energy != 42 || got.Organic != 13 {
		t.Fatalf("CellAt(-1,-1) should wrap to (7,3), got alive=%v energy=%d organic=%d",
			got.Bot.Alive, got.Bot.Energy, got.Organic)
	}
}

func TestNewWithConfigNormalizesDegenerateValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = -3
	cfg.Height = 0
	cfg.GenomeSize = 0
	cfg.Workers = -1

	world := NewWithConfig(cfg)
	if s := world.Size(); s.W != 1 || s.H != 1 {
		t.Fatalf("expected degenerate dimensions to clamp to 1x1, got %dx%d", s.W, s.H)
	}
	if world.cfg.GenomeSize != 64 {
		t.Fatalf("expected genome size fallback 64, got %d", world.cfg.GenomeSize)
	}
	if world.workers < 1 {
		t.Fatalf("expected at least one worker, got %d", world.workers)
	}
}
