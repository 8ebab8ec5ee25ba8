package alife

import "image/color"

// Opcode values interpreted by the bot VM. Bytes 0-7 are relative jumps and
// bytes 10-15 are turns; everything not listed here is a no-op.
const (
	opJumpMax       = 7
	opTurnMin       = 10
	opTurnMax       = 15
	opPhotosynth    = 20
	opEatOrganic    = 30
	opMoveOrAttack  = 40
	directionsCount = 8
)

// Offsets for the 8 directions, clockwise from north.
var (
	dirX = [directionsCount]int{0, 1, 1, 1, 0, -1, -1, -1}
	dirY = [directionsCount]int{-1, -1, 0, 1, 1, 1, 0, -1}
)

// Marker colors a bot takes on when it feeds.
var (
	colorPhotosynth = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	colorCarnivore  = color.RGBA{R: 150, G: 0, B: 0, A: 255}
)

// processBot interprets one living bot for this tick. It works on a private
// copy of the bot and commits it to the next buffer only after the
// instruction loop and the existence cost, so a relocated bot carries its
// full post-tick state to the destination cell.
//
// The bot claims its home cell up front; a successful move claims the
// destination and releases the home claim. A bot that holds no claim when the
// loop ends has lost its cell to an earlier mover and is dropped for the
// tick.
func (w *World) processBot(idx int) {
	bot := w.cur[idx].Bot
	genome := bot.Genome

	holdsHome := w.claims[idx].CompareAndSwap(false, true)
	moved := false
	target := 0

	executed := 0
	ended := false
	for executed < w.cfg.Params.InstructionBudget && !ended {
		cmd := genome[bot.IP]
		bot.IP = uint8((int(bot.IP) + 1) % len(genome))

		switch {
		case cmd <= opJumpMax:
			bot.IP = uint8((int(bot.IP) + int(cmd)) % len(genome))

		case cmd >= opTurnMin && cmd <= opTurnMax:
			bot.Dir = (bot.Dir + (cmd - opTurnMin)) % directionsCount

		case cmd == opPhotosynth:
			bot.Energy += w.cfg.Params.PhotosynthesisGain
			bot.Color = colorPhotosynth
			ended = true

		case cmd == opEatOrganic:
			if organic := w.cur[idx].Organic; organic > 0 {
				eat := organic
				if eat > w.cfg.Params.EatCap {
					eat = w.cfg.Params.EatCap
				}
				bot.Energy += eat
				w.nxt[idx].Organic -= eat
				bot.Color = colorCarnivore
			}
			ended = true

		case cmd == opMoveOrAttack:
			n := w.torus.Shift(idx, dirX[bot.Dir], dirY[bot.Dir])
			if w.cur[n].Bot.Alive {
				// Predation: the attacker siphons energy but the
				// victim's fate is decided independently when its own
				// cell is processed. Intentional asymmetry.
				bot.Energy += w.cur[n].Bot.Energy / 2
			} else if w.claims[n].CompareAndSwap(false, true) {
				moved = true
				target = n
				bot.Energy -= w.cfg.Params.MoveCost
				if holdsHome {
					w.claims[idx].Store(false)
					holdsHome = false
				}
			}
			ended = true
		}

		executed++
	}

	bot.Energy -= w.cfg.Params.ExistenceCost

	switch {
	case moved:
		w.nxt[target].Bot = bot
	case holdsHome:
		w.nxt[idx].Bot = bot
	}
}
