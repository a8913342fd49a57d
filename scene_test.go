package compositor

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dl "github.com/gogpu/compositor/displaylist"
	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/render"
	"github.com/gogpu/compositor/resources"
	"github.com/gogpu/compositor/style"
	"github.com/gogpu/compositor/translate"
)

var (
	testDoc      = resources.DocumentID{Namespace: 1, ID: 1}
	testPipeline = resources.PipelineID{Namespace: 1, Index: 1}
)

func newRenderer(t *testing.T) (*render.Renderer, *render.RecordingDevice) {
	t.Helper()
	dev := render.NewRecordingDevice(render.DeviceCapabilities{
		MaxTextureSize:       4096,
		SupportsPartialClear: true,
		DeviceName:           "recording",
	})
	r, err := render.NewRenderer(dev, render.DefaultOptions())
	require.NoError(t, err)
	t.Cleanup(r.Close)
	return r, dev
}

func colorTxn(epoch resources.Epoch, w, h float32, c style.ColorU) Transaction {
	return Transaction{
		Document: testDoc,
		Pipeline: testPipeline,
		Epoch:    epoch,
		DisplayList: dl.CachedDisplayList{
			Root: &dl.DisplayListFrame{
				Size:    geom.Sz(w, h),
				Content: []dl.LayoutRectContent{dl.Background{Content: dl.ColorLayer(c)}},
			},
			RootSize: geom.Sz(w, h),
		},
		HiDPI: 1,
	}
}

func emptyFrames() FrameBuilder {
	return FrameBuilderFunc(func(context.Context, *Transaction, *dl.BuiltDisplayList) (*render.Frame, render.TextureUpdateList, error) {
		return &render.Frame{}, render.TextureUpdateList{}, nil
	})
}

func TestBuildPublishesLastEpoch(t *testing.T) {
	r, _ := newRenderer(t)
	b := NewSceneBuilder(r.Channel(), emptyFrames())

	red := style.RGBA(255, 0, 0, 255)
	id, err := b.Build(context.Background(), colorTxn(1, 10, 10, red), colorTxn(2, 10, 10, red))
	require.NoError(t, err)
	assert.Equal(t, render.PublishID(2), id)
	assert.Equal(t, id, b.LastPublished())
	assert.Equal(t, 2, r.Channel().Len())

	require.NoError(t, r.Update())
	e, ok := r.CurrentEpoch(testDoc, testPipeline)
	require.True(t, ok)
	assert.Equal(t, resources.Epoch(2), e)
}

func TestBuildFailurePostsNothing(t *testing.T) {
	r, _ := newRenderer(t)
	boom := errors.New("boom")
	var calls atomic.Int32
	frames := FrameBuilderFunc(func(_ context.Context, txn *Transaction, _ *dl.BuiltDisplayList) (*render.Frame, render.TextureUpdateList, error) {
		calls.Add(1)
		if txn.Epoch == 2 {
			return nil, render.TextureUpdateList{}, boom
		}
		return &render.Frame{}, render.TextureUpdateList{}, nil
	})
	b := NewSceneBuilder(r.Channel(), frames, WithConcurrency(1))

	green := style.RGBA(0, 255, 0, 255)
	_, err := b.Build(context.Background(), colorTxn(1, 10, 10, green), colorTxn(2, 10, 10, green))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "transaction 1")
	assert.Equal(t, 0, r.Channel().Len())
	assert.Equal(t, render.PublishID(0), b.LastPublished())
	assert.NotZero(t, calls.Load())
}

func TestBuildFailureKeepsCatalog(t *testing.T) {
	ch := render.NewChannel(8)
	fail := true
	frames := FrameBuilderFunc(func(context.Context, *Transaction, *dl.BuiltDisplayList) (*render.Frame, render.TextureUpdateList, error) {
		if fail {
			return nil, render.TextureUpdateList{}, errors.New("boom")
		}
		return &render.Frame{}, render.TextureUpdateList{}, nil
	})
	b := NewSceneBuilder(ch, frames)
	key := resources.ImageKey{Namespace: 1, Key: 7}

	add := colorTxn(1, 10, 10, style.RGBA(0, 0, 0, 255))
	add.Resources = []resources.ResourceUpdate{resources.AddImage{
		Key:        key,
		Descriptor: resources.ImageDescriptor{Format: resources.FormatRGBA8, Width: 1, Height: 1},
		Data:       resources.RawImage(make([]byte, 4)),
	}}
	_, err := b.Build(context.Background(), add)
	require.Error(t, err)
	assert.Equal(t, 0, ch.Len())
	assert.False(t, b.Catalog().HasImage(key), "updates of a failed build are dropped")

	fail = false
	use := colorTxn(2, 10, 10, style.RGBA(0, 0, 0, 255))
	use.DisplayList.Root.Base().Content = append(use.DisplayList.Root.Base().Content,
		dl.Image{Size: geom.Sz(10, 10), Key: key})
	_, err = b.Build(context.Background(), use)
	require.ErrorIs(t, err, translate.ErrUnknownResource)
	assert.Equal(t, 0, ch.Len())

	_, err = b.Build(context.Background(), add, use)
	require.NoError(t, err)
	assert.True(t, b.Catalog().HasImage(key))
	assert.Equal(t, 2, ch.Len())
}

func TestBuildResourceFailureKeepsCatalog(t *testing.T) {
	ch := render.NewChannel(4)
	b := NewSceneBuilder(ch, emptyFrames())
	key := resources.ImageKey{Namespace: 1, Key: 3}

	first := colorTxn(1, 10, 10, style.RGBA(0, 0, 0, 255))
	first.Resources = []resources.ResourceUpdate{resources.AddImage{
		Key:        key,
		Descriptor: resources.ImageDescriptor{Format: resources.FormatR8, Width: 1, Height: 1},
		Data:       resources.RawImage([]byte{0}),
	}}
	second := colorTxn(2, 10, 10, style.RGBA(0, 0, 0, 255))
	second.Resources = []resources.ResourceUpdate{resources.DeleteImage{Key: resources.ImageKey{Namespace: 1, Key: 4}}}

	_, err := b.Build(context.Background(), first, second)
	require.ErrorIs(t, err, resources.ErrUnknownKey)
	assert.False(t, b.Catalog().HasImage(key), "earlier transactions of the batch are rolled back too")
}

func TestBuildNilFrame(t *testing.T) {
	ch := render.NewChannel(4)
	frames := FrameBuilderFunc(func(context.Context, *Transaction, *dl.BuiltDisplayList) (*render.Frame, render.TextureUpdateList, error) {
		return nil, render.TextureUpdateList{}, nil
	})
	b := NewSceneBuilder(ch, frames)
	_, err := b.Build(context.Background(), colorTxn(1, 10, 10, style.RGBA(0, 0, 0, 255)))
	require.ErrorIs(t, err, errNoFrame)
	assert.Equal(t, 0, ch.Len())
}

func TestBuildRejectsUnknownResource(t *testing.T) {
	ch := render.NewChannel(4)
	b := NewSceneBuilder(ch, emptyFrames())
	txn := colorTxn(1, 10, 10, style.RGBA(0, 0, 0, 255))
	txn.Resources = []resources.ResourceUpdate{resources.DeleteImage{Key: resources.ImageKey{Namespace: 1, Key: 9}}}

	_, err := b.Build(context.Background(), txn)
	require.ErrorIs(t, err, resources.ErrUnknownKey)
	assert.Equal(t, 0, ch.Len())
}

func TestBuildQueuesNotificationsBeforeFrame(t *testing.T) {
	r, _ := newRenderer(t)
	b := NewSceneBuilder(r.Channel(), emptyFrames())

	var fired []render.Checkpoint
	txn := colorTxn(1, 10, 10, style.RGBA(0, 0, 255, 255))
	txn.Notifications = []render.NotificationRequest{{
		Document: testDoc,
		When:     render.CheckpointFrameBuilt,
		Notify:   func(cp render.Checkpoint) { fired = append(fired, cp) },
	}}
	_, err := b.Build(context.Background(), txn)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Channel().Len())

	require.NoError(t, r.Update())
	assert.Equal(t, []render.Checkpoint{render.CheckpointFrameBuilt}, fired)
}

func TestBuildCanceled(t *testing.T) {
	ch := render.NewChannel(4)
	b := NewSceneBuilder(ch, emptyFrames())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Build(ctx, colorTxn(1, 10, 10, style.RGBA(0, 0, 0, 255)))
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, ch.Len())
}

func TestSolidRectsFollowSpatialOffsets(t *testing.T) {
	b := dl.NewBuilder(testPipeline, geom.Sz(200, 200))
	frame := b.PushReferenceFrame(geom.Pt(10, 20), dl.RootScrollNode, dl.ConstantTransform(geom.Identity()))
	scroll := b.DefineScrollFrame(
		dl.SpaceAndClip{Spatial: frame, Clip: dl.RootClip}, 1,
		geom.Rect(0, 0, 100, 400), geom.Rect(0, 0, 100, 100),
		geom.LogicalVector{X: 0, Y: -30},
	)
	red := style.ColorF{R: 1, A: 1}
	b.PushRect(dl.CommonItemProperties{Spatial: frame, Clip: dl.RootClip}, geom.Rect(0, 0, 5, 5), red)
	b.PushRect(dl.CommonItemProperties{Spatial: scroll, Clip: dl.RootClip}, geom.Rect(0, 40, 5, 5), red)
	b.PushRect(dl.CommonItemProperties{Spatial: frame, Clip: dl.RootClip}, geom.Rect(0, 0, 5, 5), style.ColorF{})
	b.PopReferenceFrame()
	built, err := b.Finalize()
	require.NoError(t, err)

	rects := solidRects(built, 2)
	require.Len(t, rects, 2)
	assert.Equal(t, geom.IntRect(20, 40, 10, 10), rects[0].rect)
	assert.Equal(t, geom.IntRect(20, 60, 10, 10), rects[1].rect)
}

func TestTileFrameBuilderAllocations(t *testing.T) {
	tb := NewTileFrameBuilder(style.ColorF{A: 1})
	empty := &dl.BuiltDisplayList{}
	txn := colorTxn(1, 64, 32, style.RGBA(0, 0, 0, 255))

	_, first, err := tb.BuildFrame(context.Background(), &txn, empty)
	require.NoError(t, err)
	require.Len(t, first.Allocations, 1)
	assert.Equal(t, render.AllocNew, first.Allocations[0].Kind)
	assert.Equal(t, int32(64), first.Allocations[0].Desc.Width)

	frame, again, err := tb.BuildFrame(context.Background(), &txn, empty)
	require.NoError(t, err)
	assert.Empty(t, again.Allocations)
	assert.False(t, frame.MustBeDrawn)
	require.Len(t, frame.Composite.Tiles, 1)
	assert.Equal(t, geom.IntRect(0, 0, 64, 32), frame.Composite.Tiles[0].Rect)

	txn.DisplayList.RootSize = geom.Sz(128, 32)
	_, resized, err := tb.BuildFrame(context.Background(), &txn, empty)
	require.NoError(t, err)
	require.Len(t, resized.Allocations, 1)
	assert.Equal(t, render.AllocReset, resized.Allocations[0].Kind)
	assert.Equal(t, first.Allocations[0].ID, resized.Allocations[0].ID)

	freed := tb.Forget(testDoc)
	require.Len(t, freed.Allocations, 1)
	assert.Equal(t, render.AllocFree, freed.Allocations[0].Kind)
	assert.True(t, tb.Forget(testDoc).IsEmpty())
}

func TestSceneRendersSolidTile(t *testing.T) {
	r, dev := newRenderer(t)
	b := NewSceneBuilder(r.Channel(), NewTileFrameBuilder(style.ColorF{A: 1}))

	_, err := b.Build(context.Background(), colorTxn(3, 100, 50, style.RGBA(255, 0, 0, 255)))
	require.NoError(t, err)
	require.NoError(t, r.Update())

	size := geom.DeviceIntSize{Width: 100, Height: 50}
	res, err := r.Render(&size, 0)
	require.NoError(t, err)
	assert.True(t, res.Rendered)

	var solid []render.DrawCall
	for _, c := range dev.Draws() {
		if c.Shader == render.ShaderBrushSolid {
			solid = append(solid, c)
		}
	}
	require.NotEmpty(t, solid)
	assert.Equal(t, style.ColorF{R: 1, A: 1}, solid[0].Color)
	assert.Equal(t, geom.IntRect(0, 0, 100, 50), solid[0].Rect)

	e, ok := r.CurrentEpoch(testDoc, testPipeline)
	require.True(t, ok)
	assert.Equal(t, resources.Epoch(3), e)
}
