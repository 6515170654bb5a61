package server

import (
	"errors"
	"math"
	"net/url"
	"testing"

	"github.com/vango-dev/slider/pkg/slider"
)

func TestDecodeStateChange(t *testing.T) {
	c, err := DecodeStateChange([]byte(`{"value":40,"orientation":"vertical"}`))
	if err != nil {
		t.Fatalf("DecodeStateChange failed: %v", err)
	}
	if c.Value == nil || *c.Value != 40 || c.Orientation == nil || *c.Orientation != "vertical" {
		t.Errorf("change = %+v", c)
	}
	if c.Minimum != nil || c.MarkSteps != nil {
		t.Error("absent fields should stay nil")
	}

	for _, bad := range []string{``, `[]`, `{}`, `{"value":"x"}`, `{"extra":true}`, `{"value":1}x`} {
		if _, err := DecodeStateChange([]byte(bad)); err == nil {
			t.Errorf("DecodeStateChange(%q) should fail", bad)
		}
	}
	if _, err := DecodeStateChange([]byte(`{}`)); !errors.Is(err, ErrEmptyChange) {
		t.Errorf("empty object: err = %v, want ErrEmptyChange", err)
	}
}

func TestParseStateChange(t *testing.T) {
	c, err := ParseStateChange(url.Values{})
	if err != nil || c != nil {
		t.Errorf("no parameters: %+v, %v", c, err)
	}

	q := url.Values{"value": {"2"}, "maximum": {"5"}, "markSteps": {"1"}, "controlSize": {"small"}}
	c, err = ParseStateChange(q)
	if err != nil {
		t.Fatalf("ParseStateChange failed: %v", err)
	}
	if *c.Value != 2 || *c.Maximum != 5 || !*c.MarkSteps || *c.ControlSize != "small" {
		t.Errorf("change = %+v", c)
	}

	for _, bad := range []url.Values{{"step": {"x"}}, {"markSteps": {"maybe"}}} {
		if _, err := ParseStateChange(bad); err == nil {
			t.Errorf("ParseStateChange(%v) should fail", bad)
		}
	}
}

func f64(v float64) *float64 { return &v }
func str(v string) *string   { return &v }
func boolp(v bool) *bool     { return &v }

func TestStateChangeValidate(t *testing.T) {
	s := slider.DefaultState()
	tests := []struct {
		name   string
		change StateChange
		ok     bool
	}{
		{"value", StateChange{Value: f64(30)}, true},
		{"orientation", StateChange{Orientation: str("vertical")}, true},
		{"bad orientation", StateChange{Orientation: str("up")}, false},
		{"negative step", StateChange{Step: f64(-1)}, false},
		{"max below current min", StateChange{Maximum: f64(-5)}, false},
		{"min above current max", StateChange{Minimum: f64(200)}, false},
		{"both bounds", StateChange{Minimum: f64(200), Maximum: f64(300)}, true},
		{"infinite maximum", StateChange{Maximum: f64(math.Inf(1))}, false},
		{"infinite minimum", StateChange{Minimum: f64(math.Inf(-1))}, false},
		{"NaN value", StateChange{Value: f64(math.NaN())}, false},
		{"NaN step", StateChange{Step: f64(math.NaN())}, false},
		{"huge finite range", StateChange{Maximum: f64(1e20), Step: f64(1), MarkSteps: boolp(true)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.change.Validate(s)
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestStateChangeApply(t *testing.T) {
	s := slider.DefaultState()
	(&StateChange{Value: f64(25)}).Apply(&s)
	if s.Value != 25 || s.AriaValue != 25 {
		t.Errorf("value: %+v", s)
	}

	// Narrowing the range keeps the accessible value and moves the handle.
	(&StateChange{Minimum: f64(0), Maximum: f64(50), Step: f64(10), MarkSteps: boolp(true)}).Apply(&s)
	if s.AriaValue != 25 || s.Value != 50 {
		t.Errorf("range: value %v aria %v, want 50 and 25", s.Value, s.AriaValue)
	}
	if len(s.StepPositions) != 6 {
		t.Errorf("got %d step positions, want 6", len(s.StepPositions))
	}

	(&StateChange{Orientation: str("vertical"), ControlSize: str("small")}).Apply(&s)
	if s.Orientation != slider.Vertical || s.ControlSize != "small" {
		t.Errorf("orientation/size: %+v", s)
	}
	if len(s.StepPositions) != 6 {
		t.Error("orientation change should keep step positions")
	}

	huge := s
	(&StateChange{Minimum: f64(0), Maximum: f64(1e20), Step: f64(1), MarkSteps: boolp(true)}).Apply(&huge)
	if huge.StepPositions != nil {
		t.Errorf("huge range gave %d step positions, want none", len(huge.StepPositions))
	}

	(&StateChange{MarkSteps: boolp(false)}).Apply(&s)
	if s.StepPositions != nil {
		t.Error("disabling marks should clear step positions")
	}
}
