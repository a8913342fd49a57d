// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
)

func TestNullDeviceHandle(t *testing.T) {
	var h gpucontext.DeviceProvider = NullDeviceHandle{}
	assert.Nil(t, h.Device())
	assert.Nil(t, h.Queue())
	assert.Nil(t, h.Adapter())
	assert.Equal(t, gputypes.TextureFormatUndefined, h.SurfaceFormat())
	assert.Equal(t, gpucontext.AdapterTypeUnknown, h.AdapterInfo().Type)
	assert.Empty(t, h.AdapterInfo().Name)
}
