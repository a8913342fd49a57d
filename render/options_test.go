// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/compositor/style"
)

func TestParseOptionsOverridesDefaults(t *testing.T) {
	o, err := ParseOptions([]byte(`
partial_present = true
max_texture_size = 2048
debug_flags = ["profiler", "epochs"]
overlay_locale = "de"
`))
	require.NoError(t, err)

	assert.True(t, o.PartialPresent)
	assert.Equal(t, int32(2048), o.MaxTextureSize)
	assert.Equal(t, DebugProfiler|DebugEpochs, o.DebugFlags)
	assert.Equal(t, "de", o.OverlayLocale)

	def := DefaultOptions()
	assert.Equal(t, def.ChannelCapacity, o.ChannelCapacity)
	assert.Equal(t, def.MaxOOMFrames, o.MaxOOMFrames)
	assert.True(t, o.AdvancedBlendBarriers)
	require.NotNil(t, o.ClearColor)
	assert.Equal(t, style.White, *o.ClearColor)
}

func TestParseOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"unknown key", `no_such_option = 1`},
		{"unknown flag", `debug_flags = ["bogus"]`},
		{"zero capacity", `channel_capacity = 0`},
		{"negative oom frames", `max_oom_frames = -1`},
		{"syntax", `partial_present = `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOptions([]byte(tt.toml))
			assert.Error(t, err)
		})
	}
}

func TestOptionsEncodeRoundTrip(t *testing.T) {
	o := DefaultOptions()
	o.PartialPresent = true
	o.ClearWithQuads = true
	o.DebugFlags = DebugTextureCache | DebugDisableBatching

	data, err := o.EncodeTOML()
	require.NoError(t, err)

	got, err := ParseOptions(data)
	require.NoError(t, err)
	assert.Equal(t, o, got)
}

func TestLoadOptionsMissingFile(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrorIO))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSetParameter(t *testing.T) {
	o := DefaultOptions()
	o.setParameter(ParamClearWithQuads, true)
	o.setParameter(ParamAdvancedBlendBarriers, false)
	o.setParameter(ParamBatchedUpload, true)

	assert.True(t, o.ClearWithQuads)
	assert.False(t, o.AdvancedBlendBarriers)
	assert.True(t, o.BatchedUpload)
	assert.Equal(t, "clear-with-quads", ParamClearWithQuads.String())
}

func TestDebugFlagNames(t *testing.T) {
	f, err := ParseDebugFlags([]string{"profiler", " window-visibility-dbg "})
	require.NoError(t, err)
	assert.Equal(t, DebugProfiler|DebugWindowVisibility, f)
	assert.Equal(t, "profiler|window-visibility-dbg", f.String())
	assert.Equal(t, "none", DebugFlags(0).String())

	_, err = ParseDebugFlag("nope")
	assert.Error(t, err)

	assert.True(t, DebugEpochs.NeedsOverlay())
	assert.False(t, DebugDisableBatching.NeedsOverlay())
	assert.True(t, (DebugEpochs | DebugZoom).Has(DebugZoom))
	assert.False(t, DebugEpochs.Has(DebugEpochs|DebugZoom))
}
