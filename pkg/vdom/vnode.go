package vdom

import "slices"

// Style is a single inline style declaration.
type Style struct {
	Prop  string
	Value string
}

// Node is a live element.
//
// A Node built outside a Document (for example by render.Context) is a plain
// tree. Once adopted by a Document every element carries a hydration ID and
// every effective mutation is recorded as a Patch.
type Node struct {
	Tag      string            // Element tag name (e.g., "div")
	HID      string            // Hydration ID (assigned on adoption)
	Classes  []string          // Ordered class list
	Attrs    map[string]string // Attributes other than class and style
	Styles   []Style           // Ordered inline style
	Children []*Node           // Child elements

	parent *Node
	doc    *Document
}

// El creates a detached element.
func El(tag string) *Node {
	if tag == "" {
		tag = "div"
	}
	return &Node{Tag: tag}
}

// Parent returns the parent element, or nil for a root or detached node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Document returns the owning document, or nil if the node is not adopted.
func (n *Node) Document() *Document {
	return n.doc
}

// LastChild returns the last child element, or nil.
func (n *Node) LastChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}

// Index returns the position of n within its parent, or -1.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	return slices.Index(n.parent.Children, n)
}

// HasClass reports whether the class list contains name.
func (n *Node) HasClass(name string) bool {
	return slices.Contains(n.Classes, name)
}

// AddClass appends each class that is not already present.
func (n *Node) AddClass(names ...string) *Node {
	for _, name := range names {
		if name == "" || n.HasClass(name) {
			continue
		}
		n.Classes = append(n.Classes, name)
		n.record(Patch{Op: PatchAddClass, HID: n.HID, Value: name})
	}
	return n
}

// RemoveClass removes each class that is present.
func (n *Node) RemoveClass(names ...string) *Node {
	for _, name := range names {
		i := slices.Index(n.Classes, name)
		if i < 0 {
			continue
		}
		n.Classes = slices.Delete(n.Classes, i, i+1)
		n.record(Patch{Op: PatchRemoveClass, HID: n.HID, Value: name})
	}
	return n
}

// SetClass adds the classes mapped to true and removes those mapped to false.
// Keys are applied in sorted order so the resulting class list is deterministic.
func (n *Node) SetClass(classes map[string]bool) *Node {
	keys := make([]string, 0, len(classes))
	for k := range classes {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if classes[k] {
			n.AddClass(k)
		} else {
			n.RemoveClass(k)
		}
	}
	return n
}

// Attr returns the attribute value and whether it is set.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.Attrs[key]
	return v, ok
}

// SetAttr sets an attribute. Setting the current value is not a mutation.
func (n *Node) SetAttr(key, value string) *Node {
	if cur, ok := n.Attrs[key]; ok && cur == value {
		return n
	}
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	n.record(Patch{Op: PatchSetAttr, HID: n.HID, Key: key, Value: value})
	return n
}

// RemoveAttr removes an attribute if present.
func (n *Node) RemoveAttr(key string) *Node {
	if _, ok := n.Attrs[key]; !ok {
		return n
	}
	delete(n.Attrs, key)
	n.record(Patch{Op: PatchRemoveAttr, HID: n.HID, Key: key})
	return n
}

// Style returns the inline style value for prop, or "".
func (n *Node) Style(prop string) string {
	for _, s := range n.Styles {
		if s.Prop == prop {
			return s.Value
		}
	}
	return ""
}

// SetStyle sets an inline style property in place, keeping declaration order.
func (n *Node) SetStyle(prop, value string) *Node {
	for i := range n.Styles {
		if n.Styles[i].Prop != prop {
			continue
		}
		if n.Styles[i].Value == value {
			return n
		}
		n.Styles[i].Value = value
		n.record(Patch{Op: PatchSetStyle, HID: n.HID, Key: prop, Value: value})
		return n
	}
	n.Styles = append(n.Styles, Style{Prop: prop, Value: value})
	n.record(Patch{Op: PatchSetStyle, HID: n.HID, Key: prop, Value: value})
	return n
}

// RemoveStyle removes an inline style property if present.
func (n *Node) RemoveStyle(prop string) *Node {
	for i := range n.Styles {
		if n.Styles[i].Prop == prop {
			n.Styles = slices.Delete(n.Styles, i, i+1)
			n.record(Patch{Op: PatchRemoveStyle, HID: n.HID, Key: prop})
			return n
		}
	}
	return n
}

// AppendChild adds child as the last child of n.
func (n *Node) AppendChild(child *Node) *Node {
	return n.InsertBefore(child, nil)
}

// InsertBefore inserts child immediately before ref. A nil ref, or a ref that
// is not a child of n, appends.
func (n *Node) InsertBefore(child, ref *Node) *Node {
	if child == nil {
		return n
	}
	if child.parent != nil {
		child.Remove()
	}
	idx := len(n.Children)
	if ref != nil && ref.parent == n {
		idx = ref.Index()
	}
	n.Children = slices.Insert(n.Children, idx, child)
	child.parent = n
	if n.doc != nil {
		n.doc.adopt(child)
		n.record(Patch{Op: PatchInsertNode, HID: child.HID, ParentID: n.HID, Index: idx, Node: child})
	}
	return n
}

// Remove detaches n from its parent. Its subtree leaves the document.
func (n *Node) Remove() {
	p := n.parent
	if p == nil {
		return
	}
	if i := n.Index(); i >= 0 {
		p.Children = slices.Delete(p.Children, i, i+1)
	}
	n.parent = nil
	if p.doc != nil {
		p.record(Patch{Op: PatchRemoveNode, HID: n.HID})
		p.doc.release(n)
	}
}

func (n *Node) record(p Patch) {
	if n.doc != nil {
		n.doc.patches = append(n.doc.patches, p)
	}
}
