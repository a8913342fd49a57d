package resources

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestParseFont(t *testing.T) {
	f, err := ParseFont(goregular.TTF, 0)
	require.NoError(t, err)
	defer f.Release()

	assert.Contains(t, f.Family(), "Go")
	assert.Positive(t, f.NumGlyphs())
	assert.Positive(t, f.UnitsPerEm())
	assert.NotNil(t, f.Face())
	assert.Equal(t, uint32(0), f.Index())
	b, err := f.Bytes()
	require.NoError(t, err)
	assert.Len(t, b, len(goregular.TTF))
}

func TestParseFontRejectsGarbage(t *testing.T) {
	_, err := ParseFont([]byte("definitely not a font"), 0)
	assert.Error(t, err)

	_, err = ParseFont(goregular.TTF, 3)
	assert.Error(t, err)
}

func TestFontRefCounting(t *testing.T) {
	f, err := ParseFont(goregular.TTF, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, f.RefCount())

	g := f.Clone()
	assert.True(t, g.Same(f))
	assert.EqualValues(t, 2, f.RefCount())

	f.Release()
	assert.True(t, g.Valid())
	g.Release()
	assert.False(t, g.Valid())
	assert.Nil(t, g.Face())
	_, err = g.Bytes()
	assert.True(t, errors.Is(err, ErrFontReleased))

	// Extra releases do not underflow.
	g.Release()
	assert.EqualValues(t, 0, g.RefCount())
	// Metadata outlives the payload.
	assert.Contains(t, g.Family(), "Go")
}

func TestFontRefConcurrentClone(t *testing.T) {
	f, err := ParseFont(goregular.TTF, 0)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := f.Clone()
			_ = c.Face()
			c.Release()
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 1, f.RefCount())
	f.Release()
	assert.False(t, f.Valid())
}

func TestZeroFontRef(t *testing.T) {
	var f FontRef
	assert.False(t, f.Valid())
	assert.Zero(t, f.NumGlyphs())
	f.Release()
	assert.Equal(t, f, f.Clone())
}
