package slider

import (
	"strconv"

	"github.com/vango-dev/slider/pkg/change"
	"github.com/vango-dev/slider/pkg/render"
	"github.com/vango-dev/slider/pkg/vdom"
)

// Class names shared by Render and Update.
const (
	ClassName          = "slider"
	ClassTrack         = "track"
	ClassHandle        = "handle"
	ClassStepMark      = "step-mark"
	ClassStepMarkFirst = "step-mark-first"
	ClassStepMarkLast  = "step-mark-last"
)

// BlankImageURL is the src of the handle placeholder image.
const BlankImageURL = "data:image/gif;base64,R0lGODlhAQABAIAAAAAAAP///yH5BAEAAAAALAAAAAABAAEAAAIBRAA7"

// Checkpoint tags consulted by Update.
const (
	TagOrientation = "orientation"
	TagMarks       = "marks"
	TagValue       = "value"
)

// Delegate renders and updates the markup of a slider.
//
// Render and Update for one widget instance must not run concurrently, and a
// Render must precede any Update of the fragment it produced. The delegate
// itself holds no per-instance state and may be shared.
type Delegate struct {
	Sizer  Sizer
	Slicer Slicer
}

// NewDelegate returns a delegate with the default size classes and skin.
func NewDelegate() *Delegate {
	return &Delegate{Sizer: DefaultSizer, Slicer: ThreeSlice{}}
}

func (d *Delegate) sizer() Sizer {
	if d.Sizer == nil {
		return DefaultSizer
	}
	return d.Sizer
}

func (d *Delegate) slicer() Slicer {
	if d.Slicer == nil {
		return ThreeSlice{}
	}
	return d.Slicer
}

// Render writes a fresh slider fragment into ctx, whose current scope is the
// widget root, and clears the cached handle in rs.
func (d *Delegate) Render(state *State, rs *RenderState, ctx *render.Context) {
	d.sizer().AddSizeClassName(state, ctx)

	axis := state.Orientation.OffsetAxis()

	ctx.AddClass(string(state.Orientation))
	setAria(ctx.Node(), state)
	ctx.SetAttr("aria-orientation", state.Orientation)

	track := ctx.Begin("span").AddClass(ClassTrack)
	d.slicer().IncludeSlices(state, track)

	if state.MarkSteps {
		n := len(state.StepPositions)
		for i, p := range state.StepPositions {
			track.Begin("div").
				SetStyle(axis, render.Percent(p*100)).
				AddClass(ClassStepMark, stepMarkClass(i)).
				SetClass(boundaryClasses(i, n)).
				End()
		}
	}

	track.Begin("img").
		SetAttr("src", BlankImageURL).
		AddClass(ClassHandle).
		SetStyle(axis, render.Percent(state.Value)).
		End()

	track.End()

	rs.cachedHandle = ""
}

// Update reconciles live, a fragment previously produced by Render, against
// state. changed gates each block of work so that an update costs only as
// much as the concerns that moved.
//
// A live orientation flip switches the root classes and aria-orientation but
// leaves existing inline offsets on the old axis; this is not supported.
func (d *Delegate) Update(state *State, rs *RenderState, live *vdom.Node, changed change.Oracle) {
	d.sizer().UpdateSizeClassName(state, live)

	axis := state.Orientation.OffsetAxis()
	isHorizontal := state.Orientation != Vertical
	handle := rs.resolveHandle(live)

	setAria(live, state)

	if changed(TagOrientation, PropOrientation) {
		live.SetAttr("aria-orientation", state.Orientation.String())
		live.RemoveClass(string(Vertical), string(Horizontal))
		live.AddClass(string(state.Orientation))
	}

	if changed(TagMarks, PropMinimum, PropMaximum, PropStep, PropMarkSteps) {
		reconcileMarks(state, live, handle, axis, isHorizontal)
	}

	if changed(TagValue, PropValue) && handle != nil {
		value := state.Value
		if !isHorizontal {
			value = 100 - value
		}
		handle.SetStyle(axis, render.Percent(value))
	}
}

// reconcileMarks brings the step marks in line with state.StepPositions.
//
// Marks are addressed by index, not by key: mark i is updated in place,
// missing marks are inserted before the handle, and marks beyond the new
// length are removed from the tail. Marks are never reordered.
//
// Marks created here are flipped (1 - p) on vertical sliders; marks updated
// in place are not.
func reconcileMarks(state *State, live, handle *vdom.Node, axis string, isHorizontal bool) {
	existing := live.FindAll(ClassStepMark)

	if !state.MarkSteps || state.StepPositions == nil {
		for _, m := range existing {
			m.Remove()
		}
		return
	}

	n := len(state.StepPositions)
	for i, p := range state.StepPositions {
		if i < len(existing) {
			existing[i].
				SetStyle(axis, render.Percent(p*100)).
				SetClass(boundaryClasses(i, n))
			continue
		}

		if !isHorizontal {
			p = 1 - p
		}
		mark := vdom.El("div").
			SetStyle(axis, render.Percent(p*100)).
			AddClass(ClassStepMark, stepMarkClass(i)).
			SetClass(boundaryClasses(i, n))
		insertBeforeHandle(live, handle, mark)
	}

	for i := n; i < len(existing); i++ {
		existing[i].Remove()
	}
}

// insertBeforeHandle keeps the handle the last child of the track. Without a
// handle the mark is appended to the track, or to live itself.
func insertBeforeHandle(live, handle, mark *vdom.Node) {
	if handle != nil && handle.Parent() != nil {
		handle.Parent().InsertBefore(mark, handle)
		return
	}
	if track := live.Find(ClassTrack); track != nil {
		track.AppendChild(mark)
		return
	}
	live.AppendChild(mark)
}

// setAria applies the ARIA value attributes. aria-valuetext is only set when
// the accessible range is not the default [0,100].
func setAria(n *vdom.Node, state *State) {
	n.SetAttr("aria-valuemax", render.FormatValue(state.Maximum))
	n.SetAttr("aria-valuemin", render.FormatValue(state.Minimum))
	n.SetAttr("aria-valuenow", render.FormatValue(state.AriaValue))
	if state.hasCustomRange() {
		n.SetAttr("aria-valuetext", render.FormatValue(state.AriaValue))
	}
}

func stepMarkClass(i int) string {
	return ClassStepMark + "-" + strconv.Itoa(i)
}

func boundaryClasses(i, n int) map[string]bool {
	return map[string]bool{
		ClassStepMarkFirst: i == 0,
		ClassStepMarkLast:  i == n-1,
	}
}
