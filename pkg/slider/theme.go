package slider

import (
	"github.com/vango-dev/slider/pkg/render"
	"github.com/vango-dev/slider/pkg/vdom"
)

// DefaultControlSize is used when State.ControlSize is empty.
const DefaultControlSize = "regular"

// Sizer applies the size-variant class to the widget root.
type Sizer interface {
	AddSizeClassName(state *State, ctx *render.Context)
	UpdateSizeClassName(state *State, root *vdom.Node)
}

// Slicer draws the fixed visual skin of the track.
type Slicer interface {
	IncludeSlices(state *State, ctx *render.Context)
}

// SizeClasses is the default Sizer. It adds "<size>-size" to the root and,
// on update, swaps out any other known size class.
type SizeClasses struct {
	// Sizes lists the recognised control sizes.
	Sizes []string
}

// DefaultSizer recognises the usual control sizes.
var DefaultSizer = SizeClasses{Sizes: []string{"tiny", "small", "regular", "large", "huge"}}

// SizeClassName returns the size class for a control size.
func SizeClassName(size string) string {
	if size == "" {
		size = DefaultControlSize
	}
	return size + "-size"
}

// AddSizeClassName implements Sizer.
func (s SizeClasses) AddSizeClassName(state *State, ctx *render.Context) {
	ctx.AddClass(SizeClassName(state.ControlSize))
}

// UpdateSizeClassName implements Sizer.
func (s SizeClasses) UpdateSizeClassName(state *State, root *vdom.Node) {
	want := SizeClassName(state.ControlSize)
	for _, size := range s.Sizes {
		if c := SizeClassName(size); c != want {
			root.RemoveClass(c)
		}
	}
	root.AddClass(want)
}

// ThreeSlice is the default Slicer: left cap, stretching middle, right cap.
type ThreeSlice struct{}

// Slice class names, in document order.
var threeSlices = []string{"left", "middle", "right"}

// IncludeSlices implements Slicer.
func (ThreeSlice) IncludeSlices(state *State, ctx *render.Context) {
	for _, name := range threeSlices {
		ctx.Begin("span").AddClass(name).End()
	}
}
