package slider

import (
	"math"
	"reflect"
	"testing"
)

func TestStepPositions(t *testing.T) {
	tests := []struct {
		name           string
		min, max, step float64
		want           []float64
	}{
		{"whole steps", 0, 5, 1, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}},
		{"partial last step", 0, 5, 2, []float64{0, 0.4, 0.8, 1}},
		{"offset range", 10, 20, 5, []float64{0, 0.5, 1}},
		{"inexact float step", 0, 0.3, 0.1, []float64{0, 1.0 / 3, 2.0 / 3, 1}},
		{"zero step", 0, 5, 0, nil},
		{"negative step", 0, 5, -1, nil},
		{"empty range", 5, 5, 1, nil},
		{"inverted range", 5, 0, 1, nil},
		{"too many marks", 0, 100, 1, nil},
		{"huge range", 0, 1e20, 1, nil},
		{"tiny step", 0, 1, 1e-300, nil},
		{"infinite max", 0, math.Inf(1), 1, nil},
		{"infinite min", math.Inf(-1), 0, 1, nil},
		{"NaN max", 0, math.NaN(), 1, nil},
		{"NaN step", 0, 5, math.NaN(), nil},
		{"infinite step", 0, 5, math.Inf(1), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StepPositions(tt.min, tt.max, tt.step)
			if tt.want == nil {
				if got != nil {
					t.Errorf("got %v, want nil", got)
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if d := got[i] - tt.want[i]; d > 1e-9 || d < -1e-9 {
					t.Errorf("position %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}

	if got := StepPositions(0, 99, 1); len(got) != MaxStepMarks {
		t.Errorf("0..99 step 1 gave %d marks, want %d", len(got), MaxStepMarks)
	}
}

func TestNormalize(t *testing.T) {
	s := DefaultState()
	s.Maximum = 2
	s.MarkSteps = true
	s.Normalize()
	if !reflect.DeepEqual(s.StepPositions, []float64{0, 0.5, 1}) {
		t.Errorf("StepPositions = %v", s.StepPositions)
	}

	s.MarkSteps = false
	s.Normalize()
	if s.StepPositions != nil {
		t.Errorf("StepPositions = %v, want nil", s.StepPositions)
	}
}

func TestStateProperty(t *testing.T) {
	s := State{
		Value: 1, Minimum: 2, Maximum: 3, AriaValue: 4, Step: 5,
		Orientation: Vertical, MarkSteps: true, StepPositions: []float64{0.5}, ControlSize: "small",
	}
	tests := map[string]any{
		PropValue:         1.0,
		PropMinimum:       2.0,
		PropMaximum:       3.0,
		PropAriaValue:     4.0,
		PropStep:          5.0,
		PropOrientation:   Vertical,
		PropMarkSteps:     true,
		PropStepPositions: []float64{0.5},
		PropControlSize:   "small",
		"unknown":         nil,
	}
	for name, want := range tests {
		if got := s.Property(name); !reflect.DeepEqual(got, want) {
			t.Errorf("Property(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestOffsetAxis(t *testing.T) {
	if Horizontal.OffsetAxis() != "left" || Vertical.OffsetAxis() != "top" || Orientation("").OffsetAxis() != "left" {
		t.Error("unexpected offset axis")
	}
}

func TestSizeClassName(t *testing.T) {
	if SizeClassName("") != "regular-size" || SizeClassName("huge") != "huge-size" {
		t.Error("unexpected size class")
	}
}

func TestParseOrientation(t *testing.T) {
	for in, want := range map[string]Orientation{"": Horizontal, "horizontal": Horizontal, "vertical": Vertical} {
		got, err := ParseOrientation(in)
		if err != nil || got != want {
			t.Errorf("ParseOrientation(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseOrientation("diagonal"); err == nil {
		t.Error("ParseOrientation(diagonal) should fail")
	}
}

func TestSetValue(t *testing.T) {
	tests := []struct {
		name          string
		min, max, v   float64
		wantValue     float64
		wantAriaValue float64
	}{
		{"default range", 0, 100, 30, 30, 30},
		{"custom range", 0, 5, 2, 40, 2},
		{"offset range", 10, 20, 15, 50, 15},
		{"clamped high", 0, 5, 9, 100, 5},
		{"clamped low", 0, 5, -1, 0, 0},
		{"degenerate", 3, 3, 3, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultState()
			s.Minimum, s.Maximum = tt.min, tt.max
			s.SetValue(tt.v)
			if s.Value != tt.wantValue || s.AriaValue != tt.wantAriaValue {
				t.Errorf("SetValue(%v) = value %v aria %v, want %v / %v", tt.v, s.Value, s.AriaValue, tt.wantValue, tt.wantAriaValue)
			}
		})
	}
}
