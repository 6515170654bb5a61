package change

import (
	"math"
	"reflect"
	"slices"
)

// Source exposes named state properties to a Tracker.
type Source interface {
	Property(name string) any
}

// Oracle reports whether any of props changed since tag was last checked,
// and advances the checkpoint for tag.
type Oracle func(tag string, props ...string) bool

// Tracker keeps, per checkpoint tag, the last-seen snapshot of each watched
// property. It is not safe for concurrent use.
type Tracker struct {
	checkpoints map[string]map[string]any
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{checkpoints: make(map[string]map[string]any)}
}

// DidChangeFor reports whether any of props differs from the snapshot taken
// the last time tag was checked, then replaces that snapshot with the current
// values. The first check of a tag always reports a change. NaN compares
// equal to NaN, so an unchanged NaN property is not a change.
func (t *Tracker) DidChangeFor(src Source, tag string, props ...string) bool {
	prev, seen := t.checkpoints[tag]
	next := make(map[string]any, len(props))
	changed := !seen
	for _, p := range props {
		v := snapshot(src.Property(p))
		next[p] = v
		if changed {
			continue
		}
		old, ok := prev[p]
		if !ok || !equal(old, v) {
			changed = true
		}
	}
	t.checkpoints[tag] = next
	return changed
}

// Bind adapts the tracker to the Oracle signature for a single source.
func (t *Tracker) Bind(src Source) Oracle {
	return func(tag string, props ...string) bool {
		return t.DidChangeFor(src, tag, props...)
	}
}

// Forget drops the checkpoint for tag so its next check reports a change.
func (t *Tracker) Forget(tag string) {
	delete(t.checkpoints, tag)
}

// Reset drops every checkpoint.
func (t *Tracker) Reset() {
	clear(t.checkpoints)
}

// snapshot copies slice values so later in-place edits by the caller are
// seen as changes.
func snapshot(v any) any {
	switch s := v.(type) {
	case []float64:
		if s == nil {
			return s
		}
		return slices.Clone(s)
	case []string:
		if s == nil {
			return s
		}
		return slices.Clone(s)
	default:
		return v
	}
}

// equal is reflect.DeepEqual with NaN treated as equal to itself for the
// float kinds a Source reports.
func equal(a, b any) bool {
	switch x := a.(type) {
	case float64:
		if y, ok := b.(float64); ok {
			return sameFloat(x, y)
		}
	case []float64:
		if y, ok := b.([]float64); ok {
			return (x == nil) == (y == nil) && slices.EqualFunc(x, y, sameFloat)
		}
	}
	return reflect.DeepEqual(a, b)
}

func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// Always is an Oracle that reports every check as changed.
func Always(string, ...string) bool { return true }

// Never is an Oracle that reports no changes.
func Never(string, ...string) bool { return false }
