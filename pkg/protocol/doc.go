// Package protocol implements the binary patch format sent to clients.
//
// A PatchesFrame carries a sequence number and the patches produced by one
// update pass. Encoding uses protobuf-style varints for integers and
// varint-length-prefixed UTF-8 strings; there is no reflection.
//
//	seq     varint
//	count   varint
//	patch*  op(1 byte) hid(string) payload
//
// Payload by op:
//
//	SetAttr, SetStyle         key(string) value(string)
//	RemoveAttr, RemoveStyle   key(string)
//	AddClass, RemoveClass     class(string)
//	InsertNode                parentHid(string) index(varint) html(string)
//	RemoveNode                (none)
//
// Inserted nodes travel as HTML carrying data-hid attributes, so patches that
// follow can address them.
package protocol
