package ui

import (
	"testing"

	"lifebg/internal/core"
)

type fakeTunable struct {
	ints   map[string]int
	floats map[string]float64
}

func (f *fakeTunable) SetIntParameter(key string, value int) bool {
	if _, ok := f.ints[key]; !ok {
		return false
	}
	f.ints[key] = value
	return true
}

func (f *fakeTunable) SetFloatParameter(key string, value float64) bool {
	if _, ok := f.floats[key]; !ok {
		return false
	}
	f.floats[key] = value
	return true
}

func snapshot(params ...core.Parameter) core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{Name: "test", Params: params}}}
}

func TestControlStateIntClampsAtBounds(t *testing.T) {
	fake := &fakeTunable{ints: map[string]int{"step_every": 2}}
	s := controlState{control: core.ParameterControl{
		Key: "step_every", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 3, HasMin: true, HasMax: true,
	}}
	s.refresh(snapshot(core.IntParam("step_every", "", 2)))
	if !s.hasValue || s.value != "2" {
		t.Fatalf("refresh gave value %q (has=%v), expected 2", s.value, s.hasValue)
	}

	if !s.apply(fake, nil, -1) || fake.ints["step_every"] != 1 {
		t.Fatalf("minus should set 1, setter holds %d", fake.ints["step_every"])
	}
	if s.canAdjust(-1) {
		t.Fatal("cannot go below the minimum")
	}
	if s.apply(fake, nil, -1) {
		t.Fatal("apply at the minimum should be a no-op")
	}
	s.apply(fake, nil, 1)
	s.apply(fake, nil, 1)
	if fake.ints["step_every"] != 3 || s.canAdjust(1) {
		t.Fatalf("expected to stop at max 3, got %d", fake.ints["step_every"])
	}
}

func TestControlStateFloatSteps(t *testing.T) {
	fake := &fakeTunable{floats: map[string]float64{"density": 0.2}}
	s := controlState{control: core.ParameterControl{
		Key: "density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true,
	}}
	s.refresh(snapshot(core.FloatParam("density", "", 0.2)))
	if s.value != "0.20" {
		t.Fatalf("formatted value %q, expected 0.20", s.value)
	}
	if !s.apply(nil, fake, 1) {
		t.Fatal("plus should apply")
	}
	if got := fake.floats["density"]; got != 0.25 {
		t.Fatalf("density = %v, expected 0.25", got)
	}
	if s.value != "0.25" {
		t.Fatalf("displayed value %q, expected 0.25", s.value)
	}
}

func TestControlStateMissingParameter(t *testing.T) {
	s := controlState{control: core.ParameterControl{Key: "absent", Type: core.ParamTypeInt}}
	s.refresh(snapshot())
	if s.hasValue || s.value != "--" {
		t.Fatalf("missing parameter should show --, got %q", s.value)
	}
	if s.canAdjust(1) {
		t.Fatal("missing parameter cannot be adjusted")
	}
}

func TestLayoutControlsStacksRows(t *testing.T) {
	states := make([]controlState, 3)
	layoutControls(states, 240)
	for i, s := range states {
		if s.plusRect.x1 != 240-panelPadding {
			t.Fatalf("row %d plus button should hug the right padding, got %+v", i, s.plusRect)
		}
		if s.minusRect.x1 > s.plusRect.x0 {
			t.Fatalf("row %d minus overlaps plus", i)
		}
		if i > 0 && s.top-states[i-1].top != rowHeight {
			t.Fatalf("row %d not stacked by rowHeight", i)
		}
	}
	mid := states[1].plusRect
	if !mid.contains(mid.x0, mid.y0) || mid.contains(mid.x1, mid.y1) {
		t.Fatal("rect contains should be half-open")
	}
}
