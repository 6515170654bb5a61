package render

import "github.com/vango-dev/slider/pkg/vdom"

// Context accumulates markup for a fresh fragment.
//
// Begin opens a scoped child element and returns its context; End closes it
// and returns the enclosing one. The remaining methods decorate the element
// of the current scope and return the same context so calls chain:
//
//	ctx := render.NewContext("div")
//	track := ctx.Begin("span").AddClass("track")
//	track.Begin("img").AddClass("handle").SetStyle("left", "30%").End()
//	ctx = track.End()
//	root := ctx.Fragment()
type Context struct {
	node   *vdom.Node
	parent *Context
}

// NewContext starts a fragment whose root element has the given tag.
func NewContext(tag string) *Context {
	return &Context{node: vdom.El(tag)}
}

// Begin opens a child element. An empty tag means "div".
func (c *Context) Begin(tag string) *Context {
	child := vdom.El(tag)
	c.node.AppendChild(child)
	return &Context{node: child, parent: c}
}

// End closes the current element and returns the enclosing context.
// Ending the root context returns the root context itself.
func (c *Context) End() *Context {
	if c.parent == nil {
		return c
	}
	return c.parent
}

// AddClass adds classes to the current element.
func (c *Context) AddClass(names ...string) *Context {
	c.node.AddClass(names...)
	return c
}

// SetClass adds the classes mapped to true and removes those mapped to false.
func (c *Context) SetClass(classes map[string]bool) *Context {
	c.node.SetClass(classes)
	return c
}

// SetAttr sets an attribute; value is formatted with FormatValue.
func (c *Context) SetAttr(key string, value any) *Context {
	c.node.SetAttr(key, FormatValue(value))
	return c
}

// SetStyle sets an inline style property; value is formatted with FormatValue.
func (c *Context) SetStyle(prop string, value any) *Context {
	c.node.SetStyle(prop, FormatValue(value))
	return c
}

// Node returns the element of the current scope.
func (c *Context) Node() *vdom.Node {
	return c.node
}

// Fragment returns the root element of the fragment being built.
func (c *Context) Fragment() *vdom.Node {
	root := c
	for root.parent != nil {
		root = root.parent
	}
	return root.node
}
