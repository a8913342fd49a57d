package resources

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func newTestFont(t *testing.T) FontRef {
	t.Helper()
	f, err := ParseFont(goregular.TTF, 0)
	require.NoError(t, err)
	t.Cleanup(f.Release)
	return f
}

func TestCatalogLifecycle(t *testing.T) {
	c := NewCatalog()
	font := newTestFont(t)
	fk := FontKey{Namespace: 1, Key: 1}
	ik := FontInstanceKey{Namespace: 1, Key: 1}
	img := ImageKey{Namespace: 1, Key: 1}

	require.NoError(t, c.Apply([]ResourceUpdate{
		AddFont{Key: fk, Font: font},
		AddFontInstance{Key: ik, FontKey: fk, GlyphSize: AuFromPx(14)},
		AddImage{Key: img, Descriptor: ImageDescriptor{Format: FormatRGBA8, Width: 1, Height: 1}},
	}))
	assert.True(t, c.HasFont(fk))
	assert.True(t, c.HasFontInstance(ik))
	assert.True(t, c.HasImage(img))
	assert.EqualValues(t, 2, font.RefCount(), "catalog holds its own reference")

	parent, ok := c.InstanceFont(ik)
	assert.True(t, ok)
	assert.Equal(t, fk, parent)

	require.NoError(t, c.Apply([]ResourceUpdate{
		UpdateImage{Key: img, Descriptor: ImageDescriptor{Format: FormatRGBA8, Width: 2, Height: 2}, DirtyRect: DirtyAll()},
	}))
	d, _ := c.Image(img)
	assert.Equal(t, 2, d.Width)

	require.NoError(t, c.Apply([]ResourceUpdate{
		DeleteFontInstance{Key: ik},
		DeleteFont{Key: fk},
		DeleteImage{Key: img},
	}))
	fonts, instances, images := c.Len()
	assert.Zero(t, fonts+instances+images)
	assert.EqualValues(t, 1, font.RefCount())
}

func TestCatalogRejectsInvalidUpdates(t *testing.T) {
	c := NewCatalog()
	font := newTestFont(t)
	fk := FontKey{Key: 1}
	ik := FontInstanceKey{Key: 1}

	err := c.Apply([]ResourceUpdate{
		AddFontInstance{Key: ik, FontKey: fk},
		DeleteImage{Key: ImageKey{Key: 9}},
		AddFont{Key: fk, Font: font},
	})
	assert.True(t, errors.Is(err, ErrUnknownKey))
	assert.True(t, c.HasFont(fk), "valid updates in a batch still apply")
	assert.False(t, c.HasFontInstance(ik))

	err = c.Apply([]ResourceUpdate{AddFont{Key: fk, Font: font}})
	assert.True(t, errors.Is(err, ErrDuplicateKey))

	require.NoError(t, c.Apply([]ResourceUpdate{AddFontInstance{Key: ik, FontKey: fk}}))
	err = c.Apply([]ResourceUpdate{DeleteFont{Key: fk}})
	assert.True(t, errors.Is(err, ErrFontInUse))
	assert.True(t, c.HasFont(fk))
}

func TestCatalogClose(t *testing.T) {
	c := NewCatalog()
	font := newTestFont(t)
	require.NoError(t, c.Apply([]ResourceUpdate{AddFont{Key: FontKey{Key: 1}, Font: font}}))

	got, ok := c.Font(FontKey{Key: 1})
	require.True(t, ok)
	assert.EqualValues(t, 3, font.RefCount())
	got.Release()

	c.Close()
	assert.False(t, c.HasFont(FontKey{Key: 1}))
	assert.EqualValues(t, 1, font.RefCount())
}

func TestCatalogCloneAndReplace(t *testing.T) {
	c := NewCatalog()
	font := newTestFont(t)
	fk := FontKey{Key: 1}
	img := ImageKey{Key: 2}
	require.NoError(t, c.Apply([]ResourceUpdate{AddFont{Key: fk, Font: font}}))

	snap := c.Clone()
	assert.EqualValues(t, 3, font.RefCount(), "the copy holds its own reference")
	require.NoError(t, snap.Apply([]ResourceUpdate{
		DeleteFont{Key: fk},
		AddImage{Key: img, Descriptor: ImageDescriptor{Format: FormatR8, Width: 1, Height: 1}},
	}))
	assert.True(t, c.HasFont(fk), "the original is untouched")
	assert.False(t, c.HasImage(img))

	c.Replace(snap)
	assert.False(t, c.HasFont(fk))
	assert.True(t, c.HasImage(img))
	assert.False(t, snap.HasImage(img), "Replace empties its argument")
	assert.EqualValues(t, 1, font.RefCount())

	dropped := c.Clone()
	require.NoError(t, dropped.Apply([]ResourceUpdate{DeleteImage{Key: img}}))
	dropped.Close()
	assert.True(t, c.HasImage(img))
}
