package slider

import "github.com/vango-dev/slider/pkg/vdom"

// RenderState is per-widget render state that lives as long as the widget
// instance. The delegate owns it: Render clears it, Update fills it.
type RenderState struct {
	// cachedHandle is the HID of the handle element, or "" when unresolved.
	cachedHandle string
}

// CachedHandle returns the cached handle HID, or "" if unresolved.
func (rs *RenderState) CachedHandle() string {
	return rs.cachedHandle
}

// resolveHandle returns the handle element of live, querying the fragment
// only when the cached HID is empty or no longer attached to live's document.
func (rs *RenderState) resolveHandle(live *vdom.Node) *vdom.Node {
	if rs.cachedHandle != "" {
		if doc := live.Document(); doc != nil {
			if h := doc.Lookup(rs.cachedHandle); h != nil && h.HasClass(ClassHandle) {
				return h
			}
		}
	}
	h := live.Find(ClassHandle)
	if h != nil {
		rs.cachedHandle = h.HID
	} else {
		rs.cachedHandle = ""
	}
	return h
}
