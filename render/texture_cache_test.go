// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/resources"
)

func rgba(w, h int32) TextureDescriptor {
	return DefaultTextureDescriptor(w, h, gputypes.TextureFormatRGBA8Unorm)
}

func TestTextureResolverReusesMatchingTextures(t *testing.T) {
	dev := NewRecordingDevice(testCaps())
	tr := NewTextureResolver(dev, 0)

	st, err := tr.Apply(TextureUpdateList{Allocations: []TextureAllocation{
		{ID: 1, Kind: AllocNew, Desc: rgba(64, 64)},
		{ID: 2, Kind: AllocNew, Desc: rgba(128, 128)},
	}}, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Created)
	old, _ := tr.Resolve(1)

	// Free 1 and allocate 3 with the same descriptor: the texture moves.
	st, err = tr.Apply(TextureUpdateList{Allocations: []TextureAllocation{
		{ID: 1, Kind: AllocFree},
		{ID: 3, Kind: AllocNew, Desc: rgba(64, 64)},
	}}, 0)
	require.NoError(t, err)
	assert.Equal(t, TextureApplyStats{Reused: 1}, st)
	got, ok := tr.Resolve(3)
	require.True(t, ok)
	assert.Equal(t, old, got)
	_, ok = tr.Resolve(1)
	assert.False(t, ok)

	// Reset 2 to a new size: nothing matches, so it is recreated.
	st, err = tr.Apply(TextureUpdateList{Allocations: []TextureAllocation{
		{ID: 2, Kind: AllocReset, Desc: rgba(256, 256)},
	}}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Created)
	assert.Equal(t, 1, st.Destroyed)
	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, 2, dev.LiveTextures())
}

func TestTextureResolverErrors(t *testing.T) {
	dev := NewRecordingDevice(testCaps())
	tr := NewTextureResolver(dev, 512)
	assert.Equal(t, int32(512), tr.MaxTextureSize())

	_, err := tr.Apply(TextureUpdateList{Allocations: []TextureAllocation{
		{ID: 1, Kind: AllocNew, Desc: rgba(1024, 16)},
		{ID: 2, Kind: AllocFree},
	}, Uploads: []TextureUpload{{ID: 9, Rect: geom.IntRect(0, 0, 1, 1), Data: []byte{0, 0, 0, 0}}}}, 0)
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrorMaxTextureSize))

	var errs RenderErrors
	errs.addAll(err, ErrorInvalidResource, "update")
	require.Len(t, errs.Errs, 3)
	assert.Equal(t, ErrorInvalidResource, errs.Errs[0].Kind, "unknown free")
	assert.Equal(t, ErrorMaxTextureSize, errs.Errs[1].Kind)
	assert.Equal(t, ErrorInvalidResource, errs.Errs[2].Kind, "unknown upload")
}

func TestTextureResolverRejectsLiveAllocation(t *testing.T) {
	dev := NewRecordingDevice(testCaps())
	tr := NewTextureResolver(dev, 0)

	_, err := tr.Apply(TextureUpdateList{Allocations: []TextureAllocation{
		{ID: 1, Kind: AllocNew, Desc: rgba(64, 64)},
		{ID: 2, Kind: AllocNew, Desc: rgba(64, 64)},
	}}, 0)
	require.NoError(t, err)
	live, _ := tr.Resolve(1)

	// 2 is freed with a matching descriptor, so a reuse is on offer for 1.
	st, err := tr.Apply(TextureUpdateList{Allocations: []TextureAllocation{
		{ID: 2, Kind: AllocFree},
		{ID: 1, Kind: AllocNew, Desc: rgba(64, 64)},
	}}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "allocated twice")
	assert.Equal(t, TextureApplyStats{Destroyed: 1}, st)

	got, ok := tr.Resolve(1)
	require.True(t, ok)
	assert.Equal(t, live, got, "the live texture keeps its id")
	assert.Equal(t, 1, tr.Len())
	assert.Equal(t, 1, dev.LiveTextures())
}

func TestSharedTexturesAreClearedForDebugging(t *testing.T) {
	dev := NewRecordingDevice(testCaps())
	tr := NewTextureResolver(dev, 0)
	d := rgba(32, 32)
	d.Shared = true

	_, err := tr.Apply(TextureUpdateList{Allocations: []TextureAllocation{{ID: 1, Kind: AllocNew, Desc: d}}}, 0)
	require.NoError(t, err)
	assert.Empty(t, dev.OpsOf(OpClear), "partial clears are supported")

	_, err = tr.Apply(TextureUpdateList{Allocations: []TextureAllocation{{ID: 2, Kind: AllocNew, Desc: d}}}, DebugTextureCache)
	require.NoError(t, err)
	clears := dev.OpsOf(OpClear)
	require.Len(t, clears, 1)
	assert.Equal(t, debugTextureColor, clears[0].Color)
}

func TestTextureUploadWidensFormats(t *testing.T) {
	dev := NewRecordingDevice(testCaps())
	tr := NewTextureResolver(dev, 0)
	_, err := tr.Apply(TextureUpdateList{Allocations: []TextureAllocation{
		{ID: 1, Kind: AllocNew, Desc: DefaultTextureDescriptor(2, 1, resources.WireRG8.TextureFormat())},
	}}, 0)
	require.NoError(t, err)

	st, err := tr.Apply(TextureUpdateList{Uploads: []TextureUpload{{
		ID: 1, Rect: geom.IntRect(0, 0, 2, 1), Format: resources.WireRG8, Data: []byte{0, 255, 128, 64},
	}}}, 0)
	require.NoError(t, err)
	assert.Equal(t, 16, st.UploadedBytes, "four channels widened to float32")
}

func TestResourceCacheImages(t *testing.T) {
	dev := NewRecordingDevice(testCaps())
	c := newResourceCache(dev, 0)
	key := resources.ImageKey{Namespace: 1, Key: 1}.Packed()
	stride := int32(12)
	desc := resources.WireImageDescriptor{
		Format: resources.WireRGBA8,
		Size:   geom.DeviceIntSize{Width: 2, Height: 2},
		Stride: &stride,
	}

	n, err := c.apply([]resources.Command{
		resources.CmdAddImage{Key: key, Descriptor: desc, Data: resources.ImageData{Raw: make([]byte, 24)}},
	})
	require.NoError(t, err)
	assert.Equal(t, 16, n, "row padding is stripped")
	tex, ok := c.imageTexture(key)
	require.True(t, ok)

	dirty := geom.IntRect(1, 1, 1, 1)
	n, err = c.apply([]resources.Command{
		resources.CmdUpdateImage{Key: key, Descriptor: desc, Data: resources.ImageData{Raw: make([]byte, 24)}, Dirty: &dirty},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	again, _ := c.imageTexture(key)
	assert.Equal(t, tex, again, "same size keeps the texture")

	_, err = c.apply([]resources.Command{resources.CmdUpdateImage{Key: resources.Pack(9, 9)}})
	assert.Error(t, err)

	_, err = c.apply([]resources.Command{resources.CmdDeleteImage{Key: key}})
	require.NoError(t, err)
	_, ok = c.imageTexture(key)
	assert.False(t, ok)
	assert.Zero(t, dev.LiveTextures())
}

func TestResourceCacheFontInstanceNeedsFont(t *testing.T) {
	c := newResourceCache(NewRecordingDevice(testCaps()), 0)
	font := resources.Pack(1, 1)
	_, err := c.apply([]resources.Command{resources.CmdAddFontInstance{Key: resources.Pack(1, 2), FontKey: font}})
	assert.Error(t, err)

	_, err = c.apply([]resources.Command{
		resources.CmdAddFont{Key: font, Bytes: []byte{1}},
		resources.CmdAddFontInstance{Key: resources.Pack(1, 2), FontKey: font},
	})
	assert.NoError(t, err)
}
