package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vango-dev/slider/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// EmitHIDs writes each element's hydration ID as a data-hid attribute,
	// which lets a client apply patches addressed by HID.
	EmitHIDs bool
}

// Renderer serializes live element trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a node tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a node tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.Node) error {
	if node == nil {
		return nil
	}
	return r.renderElement(w, node, 0)
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.Node, depth int) error {
	tag := node.Tag
	if tag == "" {
		return fmt.Errorf("render: element without tag (hid %q)", node.HID)
	}

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}
	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	if isVoidElement(tag) {
		if r.config.Pretty {
			w.Write([]byte{'\n'})
		}
		return nil
	}

	hasBlockChildren := len(node.Children) > 0 && !isInlineElement(tag)
	if r.config.Pretty && hasBlockChildren {
		w.Write([]byte{'\n'})
	}

	for _, child := range node.Children {
		if err := r.renderElement(w, child, depth+1); err != nil {
			return err
		}
	}

	if r.config.Pretty && hasBlockChildren {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty {
		w.Write([]byte{'\n'})
	}
	return nil
}

// renderAttributes renders all attributes for an element in sorted key order.
// class and style are composed from the node's ordered lists.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.Node) error {
	attrs := make(map[string]string, len(node.Attrs)+3)
	for k, v := range node.Attrs {
		attrs[k] = v
	}
	if len(node.Classes) > 0 {
		attrs["class"] = strings.Join(node.Classes, " ")
	}
	if style := StyleString(node.Styles); style != "" {
		attrs["style"] = style
	}
	if r.config.EmitHIDs && node.HID != "" {
		attrs["data-hid"] = node.HID
	}

	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := attrs[key]
		if isBooleanAttr(key) {
			if value == "true" || value == "" {
				if _, err := fmt.Fprintf(w, " %s", key); err != nil {
					return err
				}
			}
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(value)); err != nil {
			return err
		}
	}
	return nil
}

// StyleString composes an inline style attribute value, e.g. "left: 30%".
func StyleString(styles []vdom.Style) string {
	if len(styles) == 0 {
		return ""
	}
	parts := make([]string, 0, len(styles))
	for _, s := range styles {
		parts = append(parts, s.Prop+": "+s.Value)
	}
	return strings.Join(parts, "; ")
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		w.Write([]byte(r.config.Indent))
	}
}
