package life

import "lifebg/internal/core"

const (
	keyStepEvery  = "step_every"
	keySpawnEvery = "spawn_every"
	keyDensity    = "density"
)

var controls = []core.ParameterControl{
	{Key: keyStepEvery, Label: "Frames/step", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 120, HasMin: true, HasMax: true},
	{Key: keySpawnEvery, Label: "Frames/spawn", Type: core.ParamTypeInt, Step: 25, Min: 0, Max: 2000, HasMin: true, HasMax: true},
	{Key: keyDensity, Label: "Seed density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
}

// Parameters reports the current tunables and read-only stats.
func (l *Life) Parameters() core.ParameterSnapshot {
	size := l.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Columns", size.W),
				core.IntParam("h", "Rows", size.H),
				core.IntParam("pitch", "Pitch", l.cfg.Pitch),
				core.Int64Param("seed", "Seed", l.cfg.Seed),
			},
		},
		{
			Name: "Cadence",
			Params: []core.Parameter{
				core.IntParam(keyStepEvery, "Frames/step", l.cfg.StepEvery),
				core.IntParam(keySpawnEvery, "Frames/spawn", l.cfg.SpawnEvery),
				core.FloatParam(keyDensity, "Seed density", l.cfg.Density),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (l *Life) ParameterControls() []core.ParameterControl {
	out := make([]core.ParameterControl, len(controls))
	copy(out, controls)
	return out
}

func controlFor(key string) (core.ParameterControl, bool) {
	for _, c := range controls {
		if c.Key == key {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

// SetIntParameter updates an integer tunable, clamping to its bounds.
func (l *Life) SetIntParameter(key string, value int) bool {
	ctrl, ok := controlFor(key)
	if !ok || ctrl.Type != core.ParamTypeInt {
		return false
	}
	value = ctrl.ClampInt(value)
	switch key {
	case keyStepEvery:
		l.cfg.StepEvery = value
	case keySpawnEvery:
		l.cfg.SpawnEvery = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a float tunable, clamping to its bounds. A new
// density only affects the next resize or reset.
func (l *Life) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := controlFor(key)
	if !ok || ctrl.Type != core.ParamTypeFloat {
		return false
	}
	if key != keyDensity {
		return false
	}
	l.cfg.Density = ctrl.ClampFloat(value)
	return true
}
