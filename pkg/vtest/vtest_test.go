package vtest

import (
	"testing"

	"github.com/vango-dev/slider/pkg/vdom"
)

func TestOracle(t *testing.T) {
	o := NewOracle(false).With("value", true).With("marks", false)
	fn := o.Func()

	if !fn("value", "value", "aria") {
		t.Error("scripted tag should answer true")
	}
	if fn("marks") {
		t.Error("scripted tag should answer false")
	}
	if fn("orientation") {
		t.Error("unscripted tag should answer the default")
	}
	if !NewOracle(true).Func()("anything") {
		t.Error("default true should answer true")
	}

	if len(o.Calls) != 3 {
		t.Fatalf("got %d calls, want 3", len(o.Calls))
	}
	if c := o.Calls[0]; c.Tag != "value" || len(c.Props) != 2 || c.Props[1] != "aria" {
		t.Errorf("first call = %+v", c)
	}
	if !o.Asked("orientation") || o.Asked("size") {
		t.Error("Asked should reflect the recorded calls")
	}
}

func TestExpectHelpers(t *testing.T) {
	root := vdom.El("div").AddClass("slider", "horizontal").SetAttr("role", "slider")
	handle := vdom.El("div").AddClass("handle").SetStyle("left", "30%")
	root.AppendChild(vdom.El("div").AddClass("track"))
	root.AppendChild(handle)
	doc := vdom.NewDocument(root)

	ExpectClasses(t, root, "slider", "horizontal")
	ExpectNoClasses(t, root, "vertical")
	ExpectAttribute(t, root, "role", "slider")
	ExpectNoAttribute(t, root, "aria-valuetext")
	ExpectStyle(t, handle, "left", "30%")
	ExpectLastChild(t, root, handle)
	ExpectContains(t, root, `class="handle"`)
	ExpectNoPatches(t, doc)
}

func TestDescribe(t *testing.T) {
	root := vdom.El("div")
	doc := vdom.NewDocument(root)
	root.SetAttr("aria-valuenow", "30")
	root.AddClass("vertical")

	got := Describe(doc.Flush())
	want := []string{
		"SetAttr " + root.HID + " aria-valuenow=30",
		"AddClass " + root.HID + " =vertical",
	}
	if len(got) != len(want) {
		t.Fatalf("Describe = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRenderToString(t *testing.T) {
	html := RenderToString(vdom.El("span").AddClass("left"))
	if html != `<span class="left"></span>` {
		t.Errorf("RenderToString = %q", html)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 3); got != "abc..." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("abc", 3); got != "abc" {
		t.Errorf("truncate = %q", got)
	}
}
