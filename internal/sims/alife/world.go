package alife

import (
	"image/color"
	"runtime"
	"sync/atomic"

	"github.com/Remars78/life-simulation-v1/internal/core"
	"github.com/Remars78/life-simulation-v1/pkg/rng"
)

// maxGenomeSize bounds the genome so the instruction pointer fits in a byte.
const maxGenomeSize = 256

// Bot is a genome-driven organism occupying one cell.
type Bot struct {
	Alive bool
	// Genome is immutable after creation; bots share no genomes.
	Genome []byte
	IP     uint8
	Dir    uint8
	Energy int
	Color  color.RGBA
}

// Cell is the atomic unit of the grid: an optional bot plus an organic
// (edible biomass) counter.
type Cell struct {
	Bot     Bot
	Organic int
}

// World is a double-buffered toroidal grid of cells. Each Step reads the
// current buffer, writes the next one and swaps them.
type World struct {
	cfg   Config
	torus core.Torus

	cur []Cell
	nxt []Cell

	// claims marks next-buffer cells that already hold a living bot this
	// tick. Relocating bots claim their destination with a CAS so that
	// cross-range moves resolve first-claim-wins instead of racing.
	claims []atomic.Bool

	workers   int
	workerRNG []*rng.RNG

	alive   int
	display []uint8
}

// New returns a world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	if cfg.GenomeSize <= 0 || cfg.GenomeSize > maxGenomeSize {
		cfg.GenomeSize = DefaultConfig().GenomeSize
	}
	if cfg.Params.InstructionBudget <= 0 {
		cfg.Params.InstructionBudget = DefaultConfig().Params.InstructionBudget
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	torus := core.NewTorus(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = torus.W, torus.H
	total := torus.Len()

	w := &World{
		cfg:       cfg,
		torus:     torus,
		cur:       make([]Cell, total),
		nxt:       make([]Cell, total),
		claims:    make([]atomic.Bool, total),
		workers:   cfg.Workers,
		workerRNG: make([]*rng.RNG, cfg.Workers),
		display:   make([]uint8, total),
	}
	for i := range w.workerRNG {
		w.workerRNG[i] = rng.NewStream(cfg.Seed, uint64(i)+1)
	}
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "alife" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.torus.W, H: w.torus.H} }

// Cells exposes the current display buffer.
func (w *World) Cells() []uint8 { return w.display }

// AliveCount reports how many bots were processed as alive in the most
// recently completed tick.
func (w *World) AliveCount() int { return w.alive }

// CellAt returns a snapshot of the current cell at (x, y), wrapping
// coordinates around the grid edges.
func (w *World) CellAt(x, y int) Cell {
	x, y = w.torus.Wrap(x, y)
	return w.cur[w.torus.Index(x, y)]
}

// Reset seeds the world deterministically: every cell gets a little organic
// and roughly a fifth of the cells get a bot with a random genome.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	r := rng.New(effective)

	// Restart the worker streams too, so a reset world replays the same
	// regrowth draws as a fresh one.
	for i := range w.workerRNG {
		w.workerRNG[i] = rng.NewStream(effective, uint64(i)+1)
	}

	alive := 0
	for i := range w.cur {
		w.cur[i] = Cell{Organic: int(r.Byte()) % 50}
		if int(r.Byte()) > w.cfg.Params.SpawnThreshold {
			bot := &w.cur[i].Bot
			bot.Alive = true
			bot.Energy = w.cfg.Params.SpawnEnergy
			bot.Dir = r.Byte() % 8
			bot.Genome = make([]byte, w.cfg.GenomeSize)
			r.Fill(bot.Genome)
			bot.Color = colorPhotosynth
			alive++
		}
		w.nxt[i] = Cell{}
		w.claims[i].Store(false)
	}
	w.alive = alive
	w.rebuildDisplay()
}

func init() {
	core.Register("alife", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
