// Package slider renders and updates the markup of a slider widget.
//
// The Delegate has two entry points. Render builds a fresh fragment from a
// State. Update reconciles a previously rendered fragment against the current
// State with the fewest mutations it can, skipping each block of work whose
// inputs the change oracle reports as unchanged.
//
// # Fragment
//
//	<div class="slider regular-size horizontal" aria-valuemax=".." aria-valuemin=".."
//	     aria-valuenow=".." [aria-valuetext=".."] aria-orientation="horizontal">
//	  <span class="track">
//	    <span class="left"></span><span class="middle"></span><span class="right"></span>
//	    <div class="step-mark step-mark-0 step-mark-first" style="left: 0%"></div>
//	    ...
//	    <img class="handle" src=".." style="left: 30%">
//	  </span>
//	</div>
//
// The handle is always the last child of the track.
//
// # Step Marks
//
// Update reconciles step marks by position: mark i is updated in place, marks
// past the old length are inserted before the handle, and marks past the new
// length are removed. Marks carry no identity beyond their index, so a change
// in the middle of the list rewrites marks rather than moving them. Keep it
// that way; a keyed diff would change which elements survive an update.
//
// New marks on a vertical slider are placed at 1-p while marks updated in
// place are placed at p. Render places every mark at p.
//
// # Handle Cache
//
// RenderState remembers the handle by hydration ID and resolves it through
// the live document, so a replaced fragment never yields a detached node.
// Render clears it; the next Update resolves it again.
package slider
