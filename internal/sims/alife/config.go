package alife

import "strconv"

// Params holds the tunable energy and growth constants of the world.
type Params struct {
	// SpawnThreshold places a bot at reset wherever a uniform byte exceeds it.
	SpawnThreshold int
	// SpawnEnergy is the starting energy of every seeded bot.
	SpawnEnergy int

	PhotosynthesisGain int
	EatCap             int
	MoveCost           int
	ExistenceCost      int
	CorpseOrganic      int

	// RegrowthChance is the per-tick probability that an empty cell gains
	// RegrowthAmount organic.
	RegrowthChance float64
	RegrowthAmount int

	// InstructionBudget caps how many opcodes a bot may execute per tick.
	InstructionBudget int
}

// Config controls the world dimensions, seeding and parallelism.
type Config struct {
	Width      int
	Height     int
	GenomeSize int

	Seed int64

	// Workers is the number of tick goroutines; 0 selects the hardware
	// parallelism.
	Workers int

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      256,
		Height:     128,
		GenomeSize: 64,
		Seed:       12345,
		Workers:    0,
		Params: Params{
			SpawnThreshold:     200,
			SpawnEnergy:        500,
			PhotosynthesisGain: 5,
			EatCap:             20,
			MoveCost:           2,
			ExistenceCost:      1,
			CorpseOrganic:      50,
			RegrowthChance:     0.001,
			RegrowthAmount:     10,
			InstructionBudget:  10,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["genome"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= maxGenomeSize {
			c.GenomeSize = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["spawn_threshold"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Params.SpawnThreshold = parsed
		}
	}
	if v, ok := cfg["spawn_energy"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.SpawnEnergy = parsed
		}
	}
	if v, ok := cfg["regrowth_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.RegrowthChance = parsed
		}
	}
	if v, ok := cfg["regrowth_amount"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.RegrowthAmount = parsed
		}
	}
	return c
}
