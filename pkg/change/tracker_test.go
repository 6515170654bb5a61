package change

import (
	"math"
	"testing"
)

type props map[string]any

func (p props) Property(name string) any { return p[name] }

func TestDidChangeForFirstCheckReportsChange(t *testing.T) {
	tr := NewTracker()
	src := props{"value": 30.0}

	if !tr.DidChangeFor(src, "value", "value") {
		t.Error("first check should report a change")
	}
	if tr.DidChangeFor(src, "value", "value") {
		t.Error("second check with same state should not report a change")
	}
}

func TestDidChangeForTracksTagsIndependently(t *testing.T) {
	tr := NewTracker()
	src := props{"value": 30.0, "orientation": "horizontal"}
	changed := tr.Bind(src)

	changed("value", "value")
	changed("orientation", "orientation")

	src["value"] = 40.0
	if changed("orientation", "orientation") {
		t.Error("orientation tag should ignore value changes")
	}
	if !changed("value", "value") {
		t.Error("value tag should see the value change")
	}
	if changed("value", "value") {
		t.Error("checkpoint should advance after a reported change")
	}
}

func TestDidChangeForAnyOfSeveralProps(t *testing.T) {
	tr := NewTracker()
	src := props{"minimum": 0.0, "maximum": 100.0, "step": 1.0, "markSteps": false}
	watch := []string{"minimum", "maximum", "step", "markSteps"}

	tr.DidChangeFor(src, "marks", watch...)
	src["markSteps"] = true
	if !tr.DidChangeFor(src, "marks", watch...) {
		t.Error("a change to any watched prop should report a change")
	}
	if tr.DidChangeFor(src, "marks", watch...) {
		t.Error("no change expected")
	}
}

func TestDidChangeForNewPropOnKnownTag(t *testing.T) {
	tr := NewTracker()
	src := props{"a": 1, "b": 2}

	tr.DidChangeFor(src, "t", "a")
	if !tr.DidChangeFor(src, "t", "a", "b") {
		t.Error("a prop missing from the snapshot counts as changed")
	}
}

func TestDidChangeForSnapshotsSlices(t *testing.T) {
	tr := NewTracker()
	positions := []float64{0, 0.5, 1}
	src := props{"stepPositions": positions}

	tr.DidChangeFor(src, "marks", "stepPositions")
	positions[1] = 0.25
	if !tr.DidChangeFor(src, "marks", "stepPositions") {
		t.Error("in-place slice edits should be detected")
	}

	src["stepPositions"] = []float64(nil)
	if !tr.DidChangeFor(src, "marks", "stepPositions") {
		t.Error("slice to nil should be detected")
	}
	if tr.DidChangeFor(src, "marks", "stepPositions") {
		t.Error("nil to nil is not a change")
	}
}

func TestForgetAndReset(t *testing.T) {
	tr := NewTracker()
	src := props{"v": 1}
	tr.DidChangeFor(src, "a", "v")
	tr.DidChangeFor(src, "b", "v")

	tr.Forget("a")
	if !tr.DidChangeFor(src, "a", "v") {
		t.Error("forgotten tag should report a change")
	}
	if tr.DidChangeFor(src, "b", "v") {
		t.Error("other tags are unaffected by Forget")
	}

	tr.Reset()
	if !tr.DidChangeFor(src, "b", "v") {
		t.Error("Reset should drop every checkpoint")
	}
}

func TestAlwaysNever(t *testing.T) {
	if !Always("x") || Never("x", "y") {
		t.Error("Always/Never returned the wrong answer")
	}
}

func TestDidChangeForNaNIsStable(t *testing.T) {
	tr := NewTracker()
	src := props{"value": math.NaN(), "stepPositions": []float64{0, math.NaN(), 1}}

	if !tr.DidChangeFor(src, "value", "value", "stepPositions") {
		t.Error("first check should report a change")
	}
	if tr.DidChangeFor(src, "value", "value", "stepPositions") {
		t.Error("unchanged NaN values should not report a change")
	}

	src["value"] = 1.0
	if !tr.DidChangeFor(src, "value", "value", "stepPositions") {
		t.Error("NaN to a number should report a change")
	}

	src["stepPositions"] = []float64{}
	if !tr.DidChangeFor(src, "value", "stepPositions") {
		t.Error("a shorter slice should report a change")
	}
	src["stepPositions"] = []float64(nil)
	if !tr.DidChangeFor(src, "value", "stepPositions") {
		t.Error("empty to nil should report a change")
	}
}
