package resources

import "fmt"

// IDNamespace separates the keys minted by different clients of one renderer.
type IDNamespace uint32

// FontKey names a font within a namespace.
type FontKey struct {
	Namespace IDNamespace `yaml:"ns"`
	Key       uint32      `yaml:"key"`
}

func (k FontKey) String() string { return fmt.Sprintf("font(%d:%d)", k.Namespace, k.Key) }

// FontInstanceKey names a font at a given size and option set.
type FontInstanceKey struct {
	Namespace IDNamespace `yaml:"ns"`
	Key       uint32      `yaml:"key"`
}

func (k FontInstanceKey) String() string {
	return fmt.Sprintf("font-instance(%d:%d)", k.Namespace, k.Key)
}

// ImageKey names an image within a namespace.
type ImageKey struct {
	Namespace IDNamespace `yaml:"ns"`
	Key       uint32      `yaml:"key"`
}

func (k ImageKey) String() string { return fmt.Sprintf("image(%d:%d)", k.Namespace, k.Key) }

// PipelineID identifies a pipeline, the unit of display list identity.
type PipelineID struct {
	Namespace uint32 `yaml:"ns"`
	Index     uint32 `yaml:"index"`
}

func (p PipelineID) String() string { return fmt.Sprintf("pipeline(%d,%d)", p.Namespace, p.Index) }

// DocumentID identifies a document, a top-level compositing unit.
type DocumentID struct {
	Namespace IDNamespace `yaml:"ns"`
	ID        uint32      `yaml:"id"`
}

func (d DocumentID) String() string { return fmt.Sprintf("document(%d:%d)", d.Namespace, d.ID) }

// Epoch counts display list snapshots of one pipeline.
type Epoch uint32

// Next returns the following epoch. The counter wraps at 2^32.
func (e Epoch) Next() Epoch { return e + 1 }

// ExternalImageID is the host's handle for an image it owns.
type ExternalImageID uint64

// PackedKey is a namespace and key in a single word, the form the renderer
// stores keys in: the namespace in the high 32 bits.
type PackedKey uint64

// Pack returns the packed form of namespace and key.
func Pack(ns IDNamespace, key uint32) PackedKey {
	return PackedKey(uint64(ns)<<32 | uint64(key))
}

// Unpack splits a packed key.
func (p PackedKey) Unpack() (IDNamespace, uint32) {
	return IDNamespace(p >> 32), uint32(p)
}

// Packed returns k in the renderer's packed form.
func (k FontKey) Packed() PackedKey { return Pack(k.Namespace, k.Key) }

// Packed returns k in the renderer's packed form.
func (k FontInstanceKey) Packed() PackedKey { return Pack(k.Namespace, k.Key) }

// Packed returns k in the renderer's packed form.
func (k ImageKey) Packed() PackedKey { return Pack(k.Namespace, k.Key) }
