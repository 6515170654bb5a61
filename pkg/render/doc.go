// Package render builds and serializes element fragments.
//
// Context is the markup builder handed to render delegates: it opens and
// closes scoped elements and decorates them with classes, attributes and
// inline style, then yields the finished fragment as a *vdom.Node.
//
//	ctx := render.NewContext("div").AddClass("slider")
//	ctx.SetAttr("aria-valuenow", 30)
//	track := ctx.Begin("span").AddClass("track")
//	track.Begin("img").AddClass("handle").SetStyle("left", render.Percent(30)).End()
//	root := track.End().Fragment()
//
// Renderer writes a fragment, or a complete page via RenderPage, as HTML:
//
//	renderer := render.NewRenderer(render.RendererConfig{EmitHIDs: true})
//	html, err := renderer.RenderToString(root)
//
// Attributes are written in sorted key order so output is deterministic.
// All attribute values are escaped.
package render
