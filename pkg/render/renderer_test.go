package render

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/vango-dev/slider/pkg/vdom"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, ""},
		{"string", "horizontal", "horizontal"},
		{"int", 100, "100"},
		{"int64", int64(-3), "-3"},
		{"float whole", 30.0, "30"},
		{"float fraction", 2.5, "2.5"},
		{"float noise", 0.1 * 100, "10"},
		{"float flip noise", (1 - 0.8) * 100, "20"},
		{"negative zero", -0.0000001, "0"},
		{"bool", true, "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.value); got != tt.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
	if got := Percent(70); got != "70%" {
		t.Errorf("Percent(70) = %q, want 70%%", got)
	}
}

func TestContextBuildsNestedFragment(t *testing.T) {
	ctx := NewContext("div").AddClass("slider")
	ctx.SetAttr("aria-valuemax", 100)

	track := ctx.Begin("span").AddClass("track")
	track.Begin("").AddClass("step-mark").SetClass(map[string]bool{"first": true, "last": false}).End()
	handle := track.Begin("img").AddClass("handle").SetStyle("left", Percent(30))
	if handle.End() != track {
		t.Fatal("End should return the enclosing context")
	}
	if track.End() != ctx {
		t.Fatal("End should return the root context")
	}
	if ctx.End() != ctx {
		t.Fatal("End on the root returns the root")
	}

	root := handle.Fragment()
	if root != ctx.Node() {
		t.Fatal("Fragment should return the root element from any scope")
	}
	if len(root.Children) != 1 || root.Children[0].Tag != "span" {
		t.Fatalf("root children = %+v", root.Children)
	}
	kids := root.Children[0].Children
	if len(kids) != 2 || kids[0].Tag != "div" || kids[1].Tag != "img" {
		t.Fatalf("track children = %+v", kids)
	}
	if !kids[0].HasClass("first") || kids[0].HasClass("last") {
		t.Errorf("conditional classes = %v", kids[0].Classes)
	}
	if kids[1].Style("left") != "30%" {
		t.Errorf("handle left = %q", kids[1].Style("left"))
	}
}

func TestRenderFragment(t *testing.T) {
	ctx := NewContext("div").AddClass("slider", "horizontal").SetAttr("aria-valuenow", 30)
	track := ctx.Begin("span").AddClass("track")
	track.Begin("img").AddClass("handle").SetAttr("src", "blank.gif").SetStyle("left", "30%").End()
	root := track.End().Fragment()

	html, err := NewRenderer(RendererConfig{}).RenderToString(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div aria-valuenow="30" class="slider horizontal">` +
		`<span class="track"><img class="handle" src="blank.gif" style="left: 30%"></span></div>`
	if html != want {
		t.Errorf("got  %q\nwant %q", html, want)
	}
	handle := attrsOf(t, html, "handle")
	if handle["src"] != "blank.gif" || handle["style"] != "left: 30%" {
		t.Errorf("handle attrs = %v", handle)
	}
	if attrsOf(t, html, "horizontal")["aria-valuenow"] != "30" {
		t.Errorf("root aria-valuenow missing in %q", html)
	}
}

func TestRenderEmitHIDs(t *testing.T) {
	root := vdom.El("div")
	root.AppendChild(vdom.El("img"))
	vdom.NewDocument(root)

	html, err := NewRenderer(RendererConfig{EmitHIDs: true}).RenderToString(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := attrsOf(t, html, "")["data-hid"]; got != "h1" {
		t.Errorf("root data-hid = %q in %q", got, html)
	}
	if got := hidsIn(html); !slices.Equal(got, []string{"h1", "h2"}) {
		t.Errorf("hids = %v in %q", got, html)
	}
	if !strings.Contains(html, `<img data-hid="h2">`) {
		t.Errorf("child data-hid missing in %q", html)
	}
}

func TestRenderEscapesAttributes(t *testing.T) {
	root := vdom.El("div").SetAttr("aria-valuetext", `"1 < 2" & 'x'`)
	html, err := NewRenderer(RendererConfig{}).RenderToString(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, `aria-valuetext="&quot;1 &lt; 2&quot; &amp; &#39;x&#39;"`) {
		t.Errorf("attribute not escaped: %q", html)
	}
}

func TestRenderBooleanAttr(t *testing.T) {
	root := vdom.El("input").SetAttr("disabled", "true").SetAttr("readonly", "false")
	html, err := NewRenderer(RendererConfig{}).RenderToString(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<input disabled>` {
		t.Errorf("got %q", html)
	}
}

func TestRenderPretty(t *testing.T) {
	root := vdom.El("div")
	root.AppendChild(vdom.El("div").AddClass("step-mark"))
	html, err := NewRenderer(RendererConfig{Pretty: true}).RenderToString(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<div>\n  <div class=\"step-mark\"></div>\n</div>\n"
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderNilAndTagless(t *testing.T) {
	r := NewRenderer(RendererConfig{})
	if html, err := r.RenderToString(nil); err != nil || html != "" {
		t.Errorf("nil node: %q, %v", html, err)
	}
	if _, err := r.RenderToString(&vdom.Node{}); err == nil {
		t.Error("expected error for element without tag")
	}
}

func TestRenderPage(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer(RendererConfig{}).RenderPage(&buf, PageData{
		Body:        vdom.El("div").AddClass("slider"),
		Title:       "Slider <demo>",
		StyleSheets: []string{"/slider.css"},
		Styles:      []string{".track{position:relative}"},
		Scripts:     []ScriptTag{{Inline: "console.log(1)", Module: true}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := buf.String()
	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"<title>Slider &lt;demo&gt;</title>",
		`<link rel="stylesheet" href="/slider.css">`,
		"<style>.track{position:relative}</style>",
		`<div class="slider"></div>`,
		`<script type="module">console.log(1)</script>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q:\n%s", want, html)
		}
	}
}
