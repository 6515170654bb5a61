package vdom

// Document owns a live element tree.
//
// It assigns hydration IDs to adopted elements, indexes them for weak lookup
// by HID, and keeps the log of mutations applied since the last Flush.
// A Document is not safe for concurrent use; callers confine it to one
// goroutine at a time.
type Document struct {
	root    *Node
	hidSeq  uint32
	nodes   map[string]*Node
	patches []Patch
}

// NewDocument adopts root and its subtree. Adoption itself records no patches.
func NewDocument(root *Node) *Document {
	d := &Document{
		nodes: make(map[string]*Node),
	}
	if root != nil {
		root.parent = nil
		d.adopt(root)
	}
	d.root = root
	return d
}

// Root returns the root element.
func (d *Document) Root() *Node {
	return d.root
}

// Lookup returns the attached element with the given HID, or nil if no such
// element is attached to this document.
func (d *Document) Lookup(hid string) *Node {
	if hid == "" {
		return nil
	}
	return d.nodes[hid]
}

// Len returns the number of attached elements.
func (d *Document) Len() int {
	return len(d.nodes)
}

// Patches returns the mutations recorded since the last Flush.
func (d *Document) Patches() []Patch {
	return d.patches
}

// Flush returns and clears the recorded mutations.
func (d *Document) Flush() []Patch {
	p := d.patches
	d.patches = nil
	return p
}

// adopt attaches the subtree rooted at n, assigning HIDs to elements that
// have none.
func (d *Document) adopt(n *Node) {
	if n.HID == "" {
		n.HID = d.nextHID()
	}
	n.doc = d
	d.nodes[n.HID] = n
	for _, c := range n.Children {
		c.parent = n
		d.adopt(c)
	}
}

// release drops the subtree rooted at n from the HID index.
func (d *Document) release(n *Node) {
	if d.nodes[n.HID] == n {
		delete(d.nodes, n.HID)
	}
	n.doc = nil
	for _, c := range n.Children {
		d.release(c)
	}
}
