// Package change provides the change-detection oracle used by update passes.
//
// A Tracker remembers, for each named checkpoint, the values a pass last saw
// for the properties it watches. Asking whether a checkpoint changed compares
// the current values against that snapshot and stores the new one in the same
// step, so each block of update work runs only when its inputs moved:
//
//	tracker := change.NewTracker()
//	changed := tracker.Bind(state)
//	if changed("value", "value") {
//	    // reposition the handle
//	}
package change
