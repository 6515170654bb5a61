package vdom

// Find returns the first descendant of n, in document order, that has the
// given class. n itself is not considered.
func (n *Node) Find(class string) *Node {
	for _, c := range n.Children {
		if c.HasClass(class) {
			return c
		}
		if found := c.Find(class); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant of n that has the given class, in
// document order. n itself is not considered.
func (n *Node) FindAll(class string) []*Node {
	var out []*Node
	n.walk(func(c *Node) {
		if c.HasClass(class) {
			out = append(out, c)
		}
	})
	return out
}

// walk visits the descendants of n in document order.
func (n *Node) walk(fn func(*Node)) {
	for _, c := range n.Children {
		fn(c)
		c.walk(fn)
	}
}
