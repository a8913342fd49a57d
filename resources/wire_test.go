package resources

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestWireTextureFormat(t *testing.T) {
	tests := []struct {
		f       WireImageFormat
		want    gputypes.TextureFormat
		widened bool
	}{
		{WireR8, gputypes.TextureFormatR8Unorm, false},
		{WireRGBA8, gputypes.TextureFormatRGBA8Unorm, false},
		{WireBGRA8, gputypes.TextureFormatBGRA8Unorm, false},
		{WireR16, gputypes.TextureFormatR32Float, true},
		{WireRG8, gputypes.TextureFormatRG32Float, true},
		{WireRG16, gputypes.TextureFormatRG32Float, true},
	}
	for _, tt := range tests {
		t.Run(tt.f.String(), func(t *testing.T) {
			if got := tt.f.TextureFormat(); got != tt.want {
				t.Errorf("TextureFormat() = %v, want %v", got, tt.want)
			}
			if got := tt.f.Widened(); got != tt.widened {
				t.Errorf("Widened() = %v, want %v", got, tt.widened)
			}
		})
	}
}

func TestWidenPixels(t *testing.T) {
	floats := func(b []byte) []float32 {
		out := make([]float32, len(b)/4)
		for i := range out {
			out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
		}
		return out
	}

	got := floats(WidenPixels(WireRG8, []byte{0, 255}))
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("RG8 widened to %v, want [0 1]", got)
	}

	got = floats(WidenPixels(WireR16, []byte{0xff, 0xff, 0, 0}))
	if len(got) != 2 || got[0] != 1 || got[1] != 0 {
		t.Errorf("R16 widened to %v, want [1 0]", got)
	}

	src := []byte{1, 2, 3, 4}
	if out := WidenPixels(WireRGBA8, src); &out[0] != &src[0] {
		t.Error("RGBA8 pixels should pass through unchanged")
	}
}
