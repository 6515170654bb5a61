package slider

import "fmt"

// Orientation is the direction a slider's track runs.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	return string(o)
}

// ParseOrientation parses "horizontal" or "vertical". The empty string is
// horizontal.
func ParseOrientation(s string) (Orientation, error) {
	switch Orientation(s) {
	case "", Horizontal:
		return Horizontal, nil
	case Vertical:
		return Vertical, nil
	default:
		return "", fmt.Errorf("slider: unknown orientation %q", s)
	}
}

// OffsetAxis returns the inline style property along which positions are
// expressed: "top" for vertical sliders, "left" otherwise.
func (o Orientation) OffsetAxis() string {
	if o == Vertical {
		return "top"
	}
	return "left"
}

// Property names reported to change.Tracker.
const (
	PropValue         = "value"
	PropMinimum       = "minimum"
	PropMaximum       = "maximum"
	PropAriaValue     = "ariaValue"
	PropStep          = "step"
	PropOrientation   = "orientation"
	PropMarkSteps     = "markSteps"
	PropStepPositions = "stepPositions"
	PropControlSize   = "controlSize"
)

// State is the widget state a delegate reads. Delegates never modify it.
type State struct {
	// Value is the handle position on the 0-100 visual scale.
	Value float64

	// Minimum and Maximum bound the accessible value range.
	Minimum float64
	Maximum float64

	// AriaValue is exposed to assistive technology.
	AriaValue float64

	// Step is the value increment; it is only used as a change key.
	Step float64

	Orientation Orientation

	// MarkSteps enables step mark drawing.
	MarkSteps bool

	// StepPositions holds one entry in [0,1] per step mark; nil means absent.
	StepPositions []float64

	// ControlSize selects the size class (e.g. "small", "regular").
	ControlSize string
}

// DefaultState is a 0-100 horizontal slider at rest.
func DefaultState() State {
	return State{
		Minimum:     0,
		Maximum:     100,
		Step:        1,
		Orientation: Horizontal,
		ControlSize: DefaultControlSize,
	}
}

// Property implements change.Source.
func (s *State) Property(name string) any {
	switch name {
	case PropValue:
		return s.Value
	case PropMinimum:
		return s.Minimum
	case PropMaximum:
		return s.Maximum
	case PropAriaValue:
		return s.AriaValue
	case PropStep:
		return s.Step
	case PropOrientation:
		return s.Orientation
	case PropMarkSteps:
		return s.MarkSteps
	case PropStepPositions:
		return s.StepPositions
	case PropControlSize:
		return s.ControlSize
	default:
		return nil
	}
}

// hasCustomRange reports whether the accessible range differs from [0,100].
func (s *State) hasCustomRange() bool {
	return s.Minimum != 0 || s.Maximum != 100
}

// Normalize recomputes StepPositions from Minimum, Maximum and Step when
// MarkSteps is set, and clears them otherwise. Hosts call it after changing
// the range; delegates never do.
func (s *State) Normalize() {
	if s.MarkSteps {
		s.StepPositions = StepPositions(s.Minimum, s.Maximum, s.Step)
	} else {
		s.StepPositions = nil
	}
}

// SetValue sets the accessible value and moves the handle to the matching
// position on the 0-100 visual scale. Values outside the range are clamped.
// A degenerate range puts the handle at 0.
func (s *State) SetValue(v float64) {
	span := s.Maximum - s.Minimum
	if span <= 0 {
		s.AriaValue = v
		s.Value = 0
		return
	}
	v = min(max(v, s.Minimum), s.Maximum)
	s.AriaValue = v
	s.Value = (v - s.Minimum) / span * 100
}
