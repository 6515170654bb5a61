package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/url"
	"strconv"

	"github.com/vango-dev/slider/pkg/protocol"
	"github.com/vango-dev/slider/pkg/slider"
)

// ErrEmptyChange is returned for a message that changes nothing.
var ErrEmptyChange = errors.New("server: state change has no fields")

// StateChange is a client request to change the widget state. Absent fields
// are left alone.
//
//	{"value": 40}
//	{"orientation": "vertical"}
//	{"minimum": 0, "maximum": 5, "step": 1, "markSteps": true}
type StateChange struct {
	// Value is in the accessible range; the handle position follows.
	Value       *float64 `json:"value,omitempty"`
	Minimum     *float64 `json:"minimum,omitempty"`
	Maximum     *float64 `json:"maximum,omitempty"`
	Step        *float64 `json:"step,omitempty"`
	Orientation *string  `json:"orientation,omitempty"`
	MarkSteps   *bool    `json:"markSteps,omitempty"`
	ControlSize *string  `json:"controlSize,omitempty"`
}

// DecodeStateChange parses a JSON state change. Unknown fields, trailing data
// and empty objects are errors.
func DecodeStateChange(data []byte) (*StateChange, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var c StateChange
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode state change: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("decode state change: trailing data")
	}
	if c.empty() {
		return nil, ErrEmptyChange
	}
	return &c, nil
}

// ParseStateChange reads a state change from query parameters (value,
// minimum, maximum, step, orientation, markSteps, controlSize). It returns
// nil when none is present.
func ParseStateChange(q url.Values) (*StateChange, error) {
	var c StateChange
	floats := []struct {
		name string
		dst  **float64
	}{
		{"value", &c.Value},
		{"minimum", &c.Minimum},
		{"maximum", &c.Maximum},
		{"step", &c.Step},
	}
	for _, f := range floats {
		if !q.Has(f.name) {
			continue
		}
		v, err := strconv.ParseFloat(q.Get(f.name), 64)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", f.name, err)
		}
		*f.dst = &v
	}
	if q.Has("orientation") {
		o := q.Get("orientation")
		c.Orientation = &o
	}
	if q.Has("markSteps") {
		b, err := strconv.ParseBool(q.Get("markSteps"))
		if err != nil {
			return nil, fmt.Errorf("parameter markSteps: %w", err)
		}
		c.MarkSteps = &b
	}
	if q.Has("controlSize") {
		size := q.Get("controlSize")
		c.ControlSize = &size
	}
	if c.empty() {
		return nil, nil
	}
	return &c, nil
}

func (c *StateChange) empty() bool {
	return c.Value == nil && c.Minimum == nil && c.Maximum == nil && c.Step == nil &&
		c.Orientation == nil && c.MarkSteps == nil && c.ControlSize == nil
}

// Validate reports whether the change can be applied to s.
func (c *StateChange) Validate(s slider.State) error {
	if c.Orientation != nil {
		if _, err := slider.ParseOrientation(*c.Orientation); err != nil {
			return err
		}
	}
	for name, v := range map[string]*float64{
		"value":   c.Value,
		"minimum": c.Minimum,
		"maximum": c.Maximum,
		"step":    c.Step,
	} {
		if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
			return fmt.Errorf("%s must be a finite number", name)
		}
	}
	if c.Step != nil && *c.Step < 0 {
		return errors.New("step must not be negative")
	}
	lo, hi := s.Minimum, s.Maximum
	if c.Minimum != nil {
		lo = *c.Minimum
	}
	if c.Maximum != nil {
		hi = *c.Maximum
	}
	if hi < lo {
		return fmt.Errorf("maximum %v is less than minimum %v", hi, lo)
	}
	return nil
}

// Apply merges the change into s. Range changes recompute the step marks
// and keep the accessible value, moving the handle to match.
func (c *StateChange) Apply(s *slider.State) {
	rangeChanged := false
	if c.Minimum != nil {
		s.Minimum = *c.Minimum
		rangeChanged = true
	}
	if c.Maximum != nil {
		s.Maximum = *c.Maximum
		rangeChanged = true
	}
	if c.Step != nil {
		s.Step = *c.Step
		rangeChanged = true
	}
	if c.MarkSteps != nil {
		s.MarkSteps = *c.MarkSteps
		rangeChanged = true
	}
	if c.Orientation != nil {
		s.Orientation, _ = slider.ParseOrientation(*c.Orientation)
	}
	if c.ControlSize != nil {
		s.ControlSize = *c.ControlSize
	}

	switch {
	case c.Value != nil:
		s.SetValue(*c.Value)
	case c.Minimum != nil || c.Maximum != nil:
		s.SetValue(s.AriaValue)
	}
	if rangeChanged {
		s.Normalize()
	}
}

// Frame types of JSON text frames.
const (
	FrameTypePatches = "patches"
	FrameTypeError   = "error"
)

// jsonPatchesFrame is the JSON rendition of protocol.PatchesFrame.
type jsonPatchesFrame struct {
	Type    string           `json:"type"`
	Seq     uint64           `json:"seq"`
	Patches []protocol.Patch `json:"patches"`
}

// errorFrame reports a rejected message. The connection stays open.
type errorFrame struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}
