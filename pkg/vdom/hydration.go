package vdom

import "strconv"

// nextHID allocates the next hydration ID ("h1", "h2", ...). IDs are never
// reused within a document, so the HID of a removed element stays dead.
func (d *Document) nextHID() string {
	d.hidSeq++
	return "h" + strconv.FormatUint(uint64(d.hidSeq), 10)
}
