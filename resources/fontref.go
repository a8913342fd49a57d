package resources

import (
	"bytes"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
)

// ErrFontReleased is returned when a released FontRef is used.
var ErrFontReleased = errors.New("resources: font reference released")

// fontData is the shared payload of a FontRef.
type fontData struct {
	index      uint32
	family     string
	numGlyphs  int
	unitsPerEm int
	refs       atomic.Int64
	payload    atomic.Pointer[fontPayload]
}

// fontPayload is the part of a font freed with its last reference.
type fontPayload struct {
	bytes []byte
	face  *font.Face
}

// FontRef is a shared, immutable handle to a parsed font. Copies made with
// Clone share the same parsed data; the data is dropped when the last
// reference is released.
//
// A FontRef is safe for concurrent use.
type FontRef struct {
	d *fontData
}

// ParseFont parses the face at index of a font file or collection and
// returns the first reference to it.
func ParseFont(data []byte, index uint32) (FontRef, error) {
	face, err := parseFace(data, index)
	if err != nil {
		return FontRef{}, err
	}

	d := &fontData{index: index}
	d.payload.Store(&fontPayload{bytes: data, face: face})
	d.family = face.Describe().Family
	d.unitsPerEm = int(face.Upem())

	// go-text does not expose a glyph count, sfnt does.
	if f, err := parseSFNT(data, index); err == nil {
		d.numGlyphs = f.NumGlyphs()
		if d.family == "" {
			if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
				d.family = name
			}
		}
	}

	d.refs.Store(1)
	slogger().Debug("resources: font parsed",
		"family", d.family, "index", index, "glyphs", d.numGlyphs, "bytes", len(data))
	return FontRef{d: d}, nil
}

func parseFace(data []byte, index uint32) (*font.Face, error) {
	if index == 0 {
		face, err := font.ParseTTF(bytes.NewReader(data))
		if err == nil {
			return face, nil
		}
	}
	faces, err := font.ParseTTC(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("resources: parse font: %w", err)
	}
	if int(index) >= len(faces) {
		return nil, fmt.Errorf("resources: font index %d out of range (%d faces)", index, len(faces))
	}
	return faces[index], nil
}

func parseSFNT(data []byte, index uint32) (*sfnt.Font, error) {
	if index == 0 {
		if f, err := sfnt.Parse(data); err == nil {
			return f, nil
		}
	}
	c, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	return c.Font(int(index))
}

// Clone returns a new reference to the same font.
func (r FontRef) Clone() FontRef {
	if r.d != nil {
		r.d.refs.Add(1)
	}
	return r
}

// Release drops this reference. The font bytes are freed once the count
// reaches zero. Releasing more often than cloning is a no-op.
func (r FontRef) Release() {
	if r.d == nil {
		return
	}
	for {
		n := r.d.refs.Load()
		if n <= 0 {
			return
		}
		if r.d.refs.CompareAndSwap(n, n-1) {
			if n == 1 {
				r.d.payload.Store(nil)
			}
			return
		}
	}
}

// RefCount returns the number of live references.
func (r FontRef) RefCount() int64 {
	if r.d == nil {
		return 0
	}
	return r.d.refs.Load()
}

// Valid reports whether r still holds font data.
func (r FontRef) Valid() bool { return r.load() != nil }

// Bytes returns the font file the reference was parsed from.
func (r FontRef) Bytes() ([]byte, error) {
	if p := r.load(); p != nil {
		return p.bytes, nil
	}
	return nil, ErrFontReleased
}

// Index returns the face index within a collection.
func (r FontRef) Index() uint32 {
	if r.d == nil {
		return 0
	}
	return r.d.index
}

// Face returns the parsed go-text face, or nil once released.
func (r FontRef) Face() *font.Face {
	if p := r.load(); p != nil {
		return p.face
	}
	return nil
}

func (r FontRef) load() *fontPayload {
	if r.d == nil {
		return nil
	}
	return r.d.payload.Load()
}

// Family returns the family name recorded in the font.
func (r FontRef) Family() string {
	if r.d == nil {
		return ""
	}
	return r.d.family
}

// NumGlyphs returns the number of glyphs in the face.
func (r FontRef) NumGlyphs() int {
	if r.d == nil {
		return 0
	}
	return r.d.numGlyphs
}

// UnitsPerEm returns the design units per em of the face.
func (r FontRef) UnitsPerEm() int {
	if r.d == nil {
		return 0
	}
	return r.d.unitsPerEm
}

// Same reports whether r and o share parsed data.
func (r FontRef) Same(o FontRef) bool { return r.d == o.d }

func (r FontRef) String() string {
	return fmt.Sprintf("FontRef(%q, refs=%d)", r.Family(), r.RefCount())
}
