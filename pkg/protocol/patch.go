package protocol

import (
	"fmt"
	"math"

	"github.com/vango-dev/slider/pkg/render"
	"github.com/vango-dev/slider/pkg/vdom"
)

// PatchOp is the wire opcode of a patch. Values match vdom.PatchOp.
type PatchOp uint8

const (
	PatchSetAttr     PatchOp = 0x02 // Set attribute
	PatchRemoveAttr  PatchOp = 0x03 // Remove attribute
	PatchInsertNode  PatchOp = 0x04 // Insert new node
	PatchRemoveNode  PatchOp = 0x05 // Remove node
	PatchAddClass    PatchOp = 0x10 // Add CSS class
	PatchRemoveClass PatchOp = 0x11 // Remove CSS class
	PatchSetStyle    PatchOp = 0x13 // Set style property
	PatchRemoveStyle PatchOp = 0x14 // Remove style property
)

// String returns the string representation of the patch operation.
func (op PatchOp) String() string {
	return vdom.PatchOp(op).String()
}

// Patch represents a single DOM operation on the wire.
type Patch struct {
	Op       PatchOp `json:"op"`
	HID      string  `json:"hid"`                // Target element's hydration ID
	Key      string  `json:"key,omitempty"`      // Attribute/style key
	Value    string  `json:"value,omitempty"`    // Value for attr/style/class
	ParentID string  `json:"parentId,omitempty"` // Parent HID for InsertNode
	Index    int     `json:"index,omitempty"`    // Insert position
	HTML     string  `json:"html,omitempty"`     // Serialized node for InsertNode
}

// PatchesFrame represents a batch of patches with sequence number.
type PatchesFrame struct {
	Seq     uint64  `json:"seq"`
	Patches []Patch `json:"patches"`
}

// FromVDOM converts recorded mutations to wire patches. Inserted nodes are
// serialized with their hydration IDs so later patches can address them.
func FromVDOM(patches []vdom.Patch) ([]Patch, error) {
	r := render.NewRenderer(render.RendererConfig{EmitHIDs: true})
	out := make([]Patch, 0, len(patches))
	for _, p := range patches {
		wp := Patch{
			Op:       PatchOp(p.Op),
			HID:      p.HID,
			Key:      p.Key,
			Value:    p.Value,
			ParentID: p.ParentID,
			Index:    p.Index,
		}
		if p.Op == vdom.PatchInsertNode && p.Node != nil {
			html, err := r.RenderToString(p.Node)
			if err != nil {
				return nil, fmt.Errorf("protocol: serialize inserted node %s: %w", p.HID, err)
			}
			wp.HTML = html
		}
		out = append(out, wp)
	}
	return out, nil
}

// EncodePatches encodes a patches frame to bytes.
func EncodePatches(pf *PatchesFrame) []byte {
	e := NewEncoder()
	EncodePatchesTo(e, pf)
	return e.Bytes()
}

// EncodePatchesTo encodes a patches frame using the provided encoder.
func EncodePatchesTo(e *Encoder, pf *PatchesFrame) {
	e.WriteUvarint(pf.Seq)
	e.WriteUvarint(uint64(len(pf.Patches)))

	for i := range pf.Patches {
		encodePatch(e, &pf.Patches[i])
	}
}

// encodePatch encodes a single patch.
func encodePatch(e *Encoder, p *Patch) {
	e.WriteByte(byte(p.Op))
	e.WriteString(p.HID)

	switch p.Op {
	case PatchSetAttr, PatchSetStyle:
		e.WriteString(p.Key)
		e.WriteString(p.Value)

	case PatchRemoveAttr, PatchRemoveStyle:
		e.WriteString(p.Key)

	case PatchInsertNode:
		e.WriteString(p.ParentID)
		e.WriteUvarint(uint64(p.Index))
		e.WriteString(p.HTML)

	case PatchRemoveNode:
		// No additional data (HID is sufficient)

	case PatchAddClass, PatchRemoveClass:
		e.WriteString(p.Value)
	}
}

// DecodePatches decodes a patches frame from bytes.
func DecodePatches(data []byte) (*PatchesFrame, error) {
	d := NewDecoder(data)

	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	count, err := d.ReadCount(MaxPatchCount)
	if err != nil {
		return nil, err
	}

	patches := make([]Patch, count)
	for i := range patches {
		if err := decodePatch(d, &patches[i]); err != nil {
			return nil, fmt.Errorf("patch %d: %w", i, err)
		}
	}

	return &PatchesFrame{
		Seq:     seq,
		Patches: patches,
	}, nil
}

// decodePatch decodes a single patch.
func decodePatch(d *Decoder, p *Patch) error {
	opByte, err := d.ReadByte()
	if err != nil {
		return err
	}
	p.Op = PatchOp(opByte)

	p.HID, err = d.ReadString()
	if err != nil {
		return err
	}

	switch p.Op {
	case PatchSetAttr, PatchSetStyle:
		p.Key, err = d.ReadString()
		if err != nil {
			return err
		}
		p.Value, err = d.ReadString()

	case PatchRemoveAttr, PatchRemoveStyle:
		p.Key, err = d.ReadString()

	case PatchInsertNode:
		p.ParentID, err = d.ReadString()
		if err != nil {
			return err
		}
		var idx uint64
		idx, err = d.ReadUvarint()
		if err != nil {
			return err
		}
		if idx > math.MaxInt32 {
			return fmt.Errorf("%w: insert index %d", ErrAllocationTooLarge, idx)
		}
		p.Index = int(idx)
		p.HTML, err = d.ReadString()

	case PatchRemoveNode:
		// No additional data

	case PatchAddClass, PatchRemoveClass:
		p.Value, err = d.ReadString()

	default:
		return fmt.Errorf("%w: 0x%02x", ErrUnknownPatchOp, opByte)
	}

	return err
}
