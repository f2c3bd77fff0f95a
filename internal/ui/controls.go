package ui

import (
	"math"
	"strconv"

	"lifebg/internal/core"
)

// controlState tracks one HUD row: the control, its last known value and
// where its buttons are.
type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect rect
	plusRect  rect
}

type rect struct{ x0, y0, x1, y1 int }

func (r rect) contains(x, y int) bool {
	return x >= r.x0 && x < r.x1 && y >= r.y0 && y < r.y1
}

// refresh pulls the control's current value out of a snapshot.
func (s *controlState) refresh(snap core.ParameterSnapshot) {
	param, ok := snap.Lookup(s.control.Key)
	if !ok {
		s.hasValue = false
		s.value = "--"
		return
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			s.hasValue = false
			s.value = "--"
			return
		}
		s.intValue = parsed
		s.floatValue = float64(parsed)
		s.value = strconv.Itoa(parsed)
		s.hasValue = true
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			s.hasValue = false
			s.value = "--"
			return
		}
		s.floatValue = parsed
		s.value = formatFloat(s.control, parsed)
		s.hasValue = true
	default:
		s.hasValue = false
		s.value = "--"
	}
}

func intStep(ctrl core.ParameterControl) int {
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	return step
}

func floatStep(ctrl core.ParameterControl) float64 {
	if ctrl.Step <= 0 {
		return 0.05
	}
	return ctrl.Step
}

// nextInt returns the clamped value one step in direction and whether it
// differs from the current one.
func nextInt(ctrl core.ParameterControl, current, direction int) (int, bool) {
	target := ctrl.ClampInt(current + direction*intStep(ctrl))
	return target, target != current
}

// nextFloat is nextInt for float controls.
func nextFloat(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	target := ctrl.ClampFloat(current + float64(direction)*floatStep(ctrl))
	target = math.Round(target*1e6) / 1e6
	return target, math.Abs(target-current) > 1e-9
}

// apply pushes a one-step change through the matching setter.
func (s *controlState) apply(ints core.IntParameterSetter, floats core.FloatParameterSetter, direction int) bool {
	if !s.hasValue || direction == 0 {
		return false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		if ints == nil {
			return false
		}
		target, changed := nextInt(s.control, s.intValue, direction)
		if !changed || !ints.SetIntParameter(s.control.Key, target) {
			return false
		}
		s.intValue = target
		s.floatValue = float64(target)
		s.value = strconv.Itoa(target)
		return true
	case core.ParamTypeFloat:
		if floats == nil {
			return false
		}
		target, changed := nextFloat(s.control, s.floatValue, direction)
		if !changed || !floats.SetFloatParameter(s.control.Key, target) {
			return false
		}
		s.floatValue = target
		s.value = formatFloat(s.control, target)
		return true
	}
	return false
}

func (s *controlState) canAdjust(direction int) bool {
	if !s.hasValue {
		return false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		_, changed := nextInt(s.control, s.intValue, direction)
		return changed
	case core.ParamTypeFloat:
		_, changed := nextFloat(s.control, s.floatValue, direction)
		return changed
	}
	return false
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := floatStep(ctrl)
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

const (
	panelPadding   = 12
	rowHeight      = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 14
)

// layoutControls positions each row's buttons inside a panel of the given
// width, in panel-local coordinates.
func layoutControls(states []controlState, width int) {
	for i := range states {
		top := controlsTop + i*rowHeight
		buttonY := top + (rowHeight-buttonSize)/2
		plus := rect{width - panelPadding - buttonSize, buttonY, width - panelPadding, buttonY + buttonSize}
		minus := rect{plus.x0 - buttonGap - buttonSize, buttonY, plus.x0 - buttonGap, buttonY + buttonSize}
		states[i].top = top
		states[i].minusRect = minus
		states[i].plusRect = plus
	}
}
