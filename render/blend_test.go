// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/compositor/style"
)

func TestFromMixBlendMode(t *testing.T) {
	tests := []struct {
		name       string
		mode       style.MixBlendMode
		advanced   bool
		coherent   bool
		dualSource bool
		want       BlendMode
		ok         bool
	}{
		{"coherent advanced", style.MixBlendScreen, true, true, false, Advanced(style.MixBlendScreen), true},
		{"screen", style.MixBlendScreen, false, false, false, BlendModeScreen, true},
		{"exclusion", style.MixBlendExclusion, true, false, false, BlendModeExclusion, true},
		{"plus lighter", style.MixBlendPlusLighter, false, false, false, BlendModePlusLighter, true},
		{"multiply dual source", style.MixBlendMultiply, false, false, true, BlendModeMultiplyDualSource, true},
		{"noncoherent advanced", style.MixBlendMultiply, true, false, false, Advanced(style.MixBlendMultiply), true},
		{"unsupported", style.MixBlendHue, false, false, false, BlendModeNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromMixBlendMode(tt.mode, tt.advanced, tt.coherent, tt.dualSource)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGPUBlendState(t *testing.T) {
	s, ok := BlendModeNone.GPUBlendState()
	assert.True(t, ok)
	assert.Nil(t, s)

	s, ok = BlendModePlusLighter.GPUBlendState()
	require.True(t, ok)
	assert.Equal(t, gputypes.BlendFactorOne, s.Color.SrcFactor)
	assert.Equal(t, gputypes.BlendFactorOne, s.Color.DstFactor)

	s, ok = BlendModePremultipliedDestOut.GPUBlendState()
	require.True(t, ok)
	assert.Equal(t, gputypes.BlendFactorZero, s.Color.SrcFactor)
	assert.Equal(t, gputypes.BlendFactorOneMinusSrcAlpha, s.Color.DstFactor)

	_, ok = Advanced(style.MixBlendColorBurn).GPUBlendState()
	assert.False(t, ok)
	_, ok = BlendModeSubpixelDualSource.GPUBlendState()
	assert.False(t, ok)
}

func TestBlendModePredicates(t *testing.T) {
	assert.True(t, Advanced(style.MixBlendOverlay).IsAdvanced())
	assert.False(t, BlendModeScreen.IsAdvanced())
	assert.True(t, BlendModeMultiplyDualSource.NeedsDualSource())
	assert.True(t, BlendModeSubpixelDualSource.NeedsDualSource())
	assert.False(t, BlendModeAlpha.NeedsDualSource())
}
