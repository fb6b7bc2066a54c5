package forest

import (
	"math"
	"strconv"

	"forest-ca/internal/core"
)

// Parameters publishes the active configuration for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				stringParam("variant", "Variant", string(w.cfg.Variant)),
				intParam("workers", "Workers", w.cfg.Workers),
				intParam("steps", "Steps", w.steps),
			},
		},
		{
			Name: "Growth",
			Params: []core.Parameter{
				floatParam("sprout_chance", "Sprout chance", p.SproutChance),
				boolParam("lethal_dead", "Dead cells poison", p.LethalDead),
				intParam("regrow_shade", "Regrow shade max", p.RegrowShade),
				intParam("stall_shade", "Stall shade", p.StallShade),
				intParam("death_shade", "Death shade", p.DeathShade),
				intParam("death_age", "Death age", p.DeathAge),
			},
		},
		{
			Name: "Planting",
			Params: []core.Parameter{
				floatParam("seed_mature_chance", "Mature chance", p.SeedMatureChance),
				floatParam("seed_sprout_chance", "Sprout chance", p.SeedSproutChance),
				floatParam("seed_dead_chance", "Dead chance", p.SeedDeadChance),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the thresholds the HUD may adjust at runtime.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "sprout_chance", Label: "Sprout chance", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "regrow_shade", Label: "Regrow shade", Type: core.ParamTypeInt, Step: 1, Min: -1, Max: RingSize, HasMin: true, HasMax: true},
		{Key: "stall_shade", Label: "Stall shade", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: RingSize + 1, HasMin: true, HasMax: true},
		{Key: "death_shade", Label: "Death shade", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: RingSize + 1, HasMin: true, HasMax: true},
		{Key: "death_age", Label: "Death age", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "seed_mature_chance", Label: "Plant mature", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer threshold, clamping to the control
// bounds. It reports whether key names an adjustable integer.
func (w *World) SetIntParameter(key string, value int) bool {
	ctrl, ok := w.control(key, core.ParamTypeInt)
	if !ok {
		return false
	}
	value = int(clampControl(ctrl, float64(value)))
	p := &w.cfg.Params
	switch key {
	case "regrow_shade":
		p.RegrowShade = value
	case "stall_shade":
		p.StallShade = value
	case "death_shade":
		p.DeathShade = value
	case "death_age":
		p.DeathAge = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a probability. Values above 1 are read as
// percentages, so 50 means 0.5.
func (w *World) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := w.control(key, core.ParamTypeFloat)
	if !ok || math.IsNaN(value) {
		return false
	}
	if value > 1 {
		value /= 100
	}
	value = clampControl(ctrl, value)
	p := &w.cfg.Params
	switch key {
	case "sprout_chance":
		p.SproutChance = value
	case "seed_mature_chance":
		p.SeedMatureChance = math.Min(value, math.Max(0, 1-p.SeedSproutChance-p.SeedDeadChance))
	default:
		return false
	}
	return true
}

func (w *World) control(key string, typ core.ParamType) (core.ParameterControl, bool) {
	for _, ctrl := range w.ParameterControls() {
		if ctrl.Key == key && ctrl.Type == typ {
			return ctrl, true
		}
	}
	return core.ParameterControl{}, false
}

func clampControl(ctrl core.ParameterControl, v float64) float64 {
	if ctrl.HasMin && v < ctrl.Min {
		v = ctrl.Min
	}
	if ctrl.HasMax && v > ctrl.Max {
		v = ctrl.Max
	}
	return v
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: strconv.FormatBool(value)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
