// Package vdom provides the live element tree that widget delegates render
// into and reconcile against.
//
// # Core Types
//
// Node is an element with an ordered class list, attributes, ordered inline
// style and child elements. Document adopts a Node tree, gives every element
// a hydration ID (HID) and records each effective mutation as a Patch.
//
// # Mutations
//
// Mutating methods on an adopted Node record patches; the same calls on a
// detached Node only change the tree. A call that leaves the node unchanged
// (setting an attribute to its current value, adding a class that is already
// present) records nothing, so an update pass that finds nothing to do
// produces an empty patch list.
//
//	doc := vdom.NewDocument(root)
//	root.SetAttr("aria-valuenow", "40")
//	for _, p := range doc.Flush() {
//	    fmt.Println(p.Op, p.HID, p.Key, p.Value)
//	}
//
// # Weak References
//
// Callers that want to remember an element across passes store its HID and
// resolve it with Document.Lookup. Lookup returns nil once the element has
// been removed from the document, so a stale HID never yields a detached node.
package vdom
