package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/slider/pkg/change"
	"github.com/vango-dev/slider/pkg/render"
	"github.com/vango-dev/slider/pkg/vdom"
)

// Call records one consultation of an Oracle.
type Call struct {
	Tag   string
	Props []string
}

// Oracle is a scripted change oracle. Tags listed in Changed answer with
// their mapped value; every other tag answers Default.
//
// Example:
//
//	o := vtest.NewOracle(false).With("value", true)
//	delegate.Update(&state, &rs, live, o.Func())
//	if o.Asked("orientation") { ... }
type Oracle struct {
	Changed map[string]bool
	Default bool
	Calls   []Call
}

// NewOracle returns an oracle answering def for unscripted tags.
func NewOracle(def bool) *Oracle {
	return &Oracle{Changed: make(map[string]bool), Default: def}
}

// With scripts the answer for tag.
func (o *Oracle) With(tag string, changed bool) *Oracle {
	o.Changed[tag] = changed
	return o
}

// Func returns the oracle as a change.Oracle.
func (o *Oracle) Func() change.Oracle {
	return func(tag string, props ...string) bool {
		o.Calls = append(o.Calls, Call{Tag: tag, Props: append([]string(nil), props...)})
		if v, ok := o.Changed[tag]; ok {
			return v
		}
		return o.Default
	}
}

// Asked reports whether tag was consulted.
func (o *Oracle) Asked(tag string) bool {
	for _, c := range o.Calls {
		if c.Tag == tag {
			return true
		}
	}
	return false
}

// RenderToString renders a node and returns the HTML string.
func RenderToString(node *vdom.Node) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
func ExpectContains(t *testing.T, node *vdom.Node, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectAttribute asserts that node carries attr with value.
func ExpectAttribute(t *testing.T, node *vdom.Node, attr, value string) {
	t.Helper()
	got, ok := node.Attr(attr)
	if !ok {
		t.Errorf("expected attribute %s=%q, attribute is missing", attr, value)
		return
	}
	if got != value {
		t.Errorf("attribute %s = %q, want %q", attr, got, value)
	}
}

// ExpectNoAttribute asserts that node does not carry attr.
func ExpectNoAttribute(t *testing.T, node *vdom.Node, attr string) {
	t.Helper()
	if got, ok := node.Attr(attr); ok {
		t.Errorf("expected no %s attribute, got %q", attr, got)
	}
}

// ExpectStyle asserts an inline style value.
func ExpectStyle(t *testing.T, node *vdom.Node, prop, value string) {
	t.Helper()
	if got := node.Style(prop); got != value {
		t.Errorf("style %s = %q, want %q", prop, got, value)
	}
}

// ExpectClasses asserts that node has every class in want.
func ExpectClasses(t *testing.T, node *vdom.Node, want ...string) {
	t.Helper()
	for _, c := range want {
		if !node.HasClass(c) {
			t.Errorf("expected class %q in %v", c, node.Classes)
		}
	}
}

// ExpectNoClasses asserts that node has none of the classes.
func ExpectNoClasses(t *testing.T, node *vdom.Node, unwanted ...string) {
	t.Helper()
	for _, c := range unwanted {
		if node.HasClass(c) {
			t.Errorf("unexpected class %q in %v", c, node.Classes)
		}
	}
}

// ExpectLastChild asserts that child is the last child of parent.
func ExpectLastChild(t *testing.T, parent, child *vdom.Node) {
	t.Helper()
	if parent == nil || child == nil {
		t.Fatalf("ExpectLastChild: nil node (parent=%v child=%v)", parent != nil, child != nil)
	}
	if parent.LastChild() != child {
		t.Errorf("expected %s.%v to be the last child of %s.%v", child.Tag, child.Classes, parent.Tag, parent.Classes)
	}
}

// ExpectNoPatches asserts that doc recorded no mutations.
func ExpectNoPatches(t *testing.T, doc *vdom.Document) {
	t.Helper()
	if p := doc.Patches(); len(p) != 0 {
		t.Errorf("expected no mutations, got %d: %v", len(p), Describe(p))
	}
}

// Describe summarises patches as "Op hid key=value" lines.
func Describe(patches []vdom.Patch) []string {
	out := make([]string, 0, len(patches))
	for _, p := range patches {
		s := p.Op.String() + " " + p.HID
		if p.Key != "" || p.Value != "" {
			s += " " + p.Key + "=" + p.Value
		}
		out = append(out, s)
	}
	return out
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
