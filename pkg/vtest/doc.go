// Package vtest provides testing helpers for widget delegates.
//
// # Scripted Oracle
//
// Oracle stands in for a change tracker so a test decides which update
// blocks run, and records which checkpoints were consulted:
//
//	o := vtest.NewOracle(false).With("marks", true)
//	delegate.Update(&state, &rs, doc.Root(), o.Func())
//
// # Assertions
//
// The Expect helpers check classes, attributes, inline style and structure of
// a live fragment, and ExpectNoPatches checks that a pass mutated nothing:
//
//	doc.Flush()
//	delegate.Update(&state, &rs, doc.Root(), change.Never)
//	vtest.ExpectNoPatches(t, doc)
package vtest
