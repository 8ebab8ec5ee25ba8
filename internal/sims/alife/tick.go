package alife

import (
	"sync"

	"github.com/Remars78/life-simulation-v1/pkg/rng"
)

// Step advances the world by one tick: carry organic over, clear the bot
// layer of the next buffer, run all bots in parallel over contiguous index
// ranges, then swap buffers.
func (w *World) Step() {
	total := len(w.cur)
	if total == 0 {
		return
	}

	// Carry-over pass. Must complete before any worker runs: it establishes
	// the clean write target the movement logic checks against.
	for i := range w.nxt {
		w.nxt[i].Organic = w.cur[i].Organic
		w.nxt[i].Bot.Alive = false
		w.claims[i].Store(false)
	}

	workers := w.workers
	if workers > total {
		workers = total
	}
	chunk := total / workers
	counts := make([]int, workers)

	var wg sync.WaitGroup
	for t := 0; t < workers; t++ {
		start := t * chunk
		end := start + chunk
		if t == workers-1 {
			end = total
		}
		wg.Add(1)
		go func(t, start, end int) {
			defer wg.Done()
			counts[t] = w.stepRange(start, end, w.workerRNG[t])
		}(t, start, end)
	}
	wg.Wait()

	alive := 0
	for _, c := range counts {
		alive += c
	}
	w.alive = alive

	w.cur, w.nxt = w.nxt, w.cur
	w.rebuildDisplay()
}

// stepRange processes one contiguous index range and returns the number of
// bots it saw alive. Writes outside [start, end) happen only through the
// claim CAS in processBot.
func (w *World) stepRange(start, end int, r *rng.RNG) int {
	alive := 0
	for i := start; i < end; i++ {
		if w.cur[i].Bot.Alive {
			alive++
			if w.cur[i].Bot.Energy <= 0 {
				// The corpse decays into food.
				w.nxt[i].Organic += w.cfg.Params.CorpseOrganic
			} else {
				w.processBot(i)
			}
		} else if chance := w.cfg.Params.RegrowthChance; chance > 0 && r.Float64() < chance {
			w.nxt[i].Organic += w.cfg.Params.RegrowthAmount
		}
	}
	return alive
}
