package alife

import (
	"strconv"

	"github.com/Remars78/life-simulation-v1/internal/core"
)

// Parameters exposes the current tunables for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Energy",
				Params: []core.Parameter{
					intParam("photosynthesis_gain", "Photosynthesis", p.PhotosynthesisGain),
					intParam("eat_cap", "Eat cap", p.EatCap),
					intParam("move_cost", "Move cost", p.MoveCost),
					intParam("existence_cost", "Existence cost", p.ExistenceCost),
				},
			},
			{
				Name: "World",
				Params: []core.Parameter{
					intParam("corpse_organic", "Corpse organic", p.CorpseOrganic),
					intParam("regrowth_amount", "Regrowth amount", p.RegrowthAmount),
					floatParam("regrowth_chance", "Regrowth chance", p.RegrowthChance),
				},
			},
		},
	}
}

// SetIntParameter updates an integer tunable between ticks.
func (w *World) SetIntParameter(key string, value int) bool {
	if value < 0 {
		return false
	}
	switch key {
	case "photosynthesis_gain":
		w.cfg.Params.PhotosynthesisGain = value
	case "eat_cap":
		w.cfg.Params.EatCap = value
	case "move_cost":
		w.cfg.Params.MoveCost = value
	case "existence_cost":
		w.cfg.Params.ExistenceCost = value
	case "corpse_organic":
		w.cfg.Params.CorpseOrganic = value
	case "regrowth_amount":
		w.cfg.Params.RegrowthAmount = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a float tunable between ticks, clamping to its
// valid range.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "regrowth_chance":
		if value < 0 {
			value = 0
		}
		if value > 1 {
			value = 1
		}
		w.cfg.Params.RegrowthChance = value
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'g', -1, 64)}
}
