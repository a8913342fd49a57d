package compositor

import (
	"context"
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/compositor/displaylist"
	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/render"
	"github.com/gogpu/compositor/resources"
	"github.com/gogpu/compositor/style"
)

// TileFrameBuilder is a minimal FrameBuilder. It draws the solid rects of
// a display list into one viewport-sized picture cache tile per document
// and composites that tile opaque over the framebuffer. Other primitives
// are counted but not drawn.
//
// It is safe for concurrent use by a SceneBuilder.
type TileFrameBuilder struct {
	// Background fills the tile before the rects are drawn.
	Background style.ColorF

	mu    sync.Mutex
	next  render.CacheTextureID
	tiles map[resources.DocumentID]docTile
}

type docTile struct {
	id   render.CacheTextureID
	size geom.DeviceIntSize
}

// NewTileFrameBuilder returns a builder clearing tiles to background.
func NewTileFrameBuilder(background style.ColorF) *TileFrameBuilder {
	return &TileFrameBuilder{
		Background: background,
		tiles:      make(map[resources.DocumentID]docTile),
	}
}

// tile returns the cache texture of doc and the allocation it needs this
// frame, if any.
func (b *TileFrameBuilder) tile(doc resources.DocumentID, size geom.DeviceIntSize) (render.CacheTextureID, []render.TextureAllocation) {
	b.mu.Lock()
	defer b.mu.Unlock()
	desc := render.DefaultTextureDescriptor(size.Width, size.Height, gputypes.TextureFormatRGBA8Unorm)
	desc.Label = "picture_tile"
	desc.Category = render.CategoryPictureTile
	t, ok := b.tiles[doc]
	switch {
	case !ok:
		b.next++
		t = docTile{id: b.next, size: size}
		b.tiles[doc] = t
		return t.id, []render.TextureAllocation{{ID: t.id, Kind: render.AllocNew, Desc: desc}}
	case t.size != size:
		t.size = size
		b.tiles[doc] = t
		return t.id, []render.TextureAllocation{{ID: t.id, Kind: render.AllocReset, Desc: desc}}
	}
	return t.id, nil
}

// Forget drops the tile of doc and returns the update freeing it. The
// update must be published with the document's next frame.
func (b *TileFrameBuilder) Forget(doc resources.DocumentID) render.TextureUpdateList {
	b.mu.Lock()
	defer b.mu.Unlock()
	t, ok := b.tiles[doc]
	if !ok {
		return render.TextureUpdateList{}
	}
	delete(b.tiles, doc)
	return render.TextureUpdateList{Allocations: []render.TextureAllocation{{ID: t.id, Kind: render.AllocFree}}}
}

// BuildFrame implements FrameBuilder.
func (b *TileFrameBuilder) BuildFrame(ctx context.Context, txn *Transaction, dl *displaylist.BuiltDisplayList) (*render.Frame, render.TextureUpdateList, error) {
	hidpi := txn.HiDPI
	if hidpi <= 0 {
		hidpi = 1
	}
	size := geom.LogicalRect{Size: txn.DisplayList.RootSize}.ToDevice(hidpi).Size()
	if size.IsEmpty() {
		size = geom.DeviceIntSize{Width: 1, Height: 1}
	}
	full := geom.IntRectFromSize(size)

	rects := solidRects(dl, hidpi)
	if err := ctx.Err(); err != nil {
		return nil, render.TextureUpdateList{}, err
	}

	batches := make([]render.AlphaBatch, 0, len(rects))
	for _, r := range rects {
		c, ok := r.rect.Intersection(full)
		if !ok {
			continue
		}
		blend := render.BlendModePremultipliedAlpha
		if r.color.A >= 1 {
			blend = render.BlendModeNone
		}
		// Neighbouring rects of one color and blend share a batch.
		if n := len(batches); n > 0 && batches[n-1].Color == r.color && batches[n-1].Key.Blend == blend {
			batches[n-1].Rects = append(batches[n-1].Rects, c)
			continue
		}
		batches = append(batches, render.AlphaBatch{
			Key:   render.BatchKey{Shader: render.ShaderBrushSolid, Blend: blend},
			Rects: []geom.DeviceIntRect{c},
			Color: r.color,
		})
	}

	id, allocs := b.tile(txn.Document, size)
	surface := render.TileSurface{Kind: render.SurfaceTexture, Texture: id}
	bg := b.Background
	frame := &render.Frame{
		Passes: []render.RenderPass{{PictureCache: []render.PictureCacheTarget{{
			Surface:   surface,
			Size:      size,
			DirtyRect: full,
			ValidRect: full,
			Clear:     &bg,
			Batches:   &render.AlphaBatchContainer{AlphaBatches: batches},
		}}}},
		Composite: render.CompositeState{
			Tiles: []render.CompositeTile{{
				Kind:    render.TileOpaque,
				Surface: surface,
				Rect:    full,
				Clip:    full,
				Dirty:   full,
			}},
			DirtyRectsAreValid: true,
		},
		DeviceRect:  full,
		MustBeDrawn: len(allocs) > 0,
	}
	slogger().Debug("compositor: tile frame built",
		"document", txn.Document.String(), "rects", len(rects), "batches", len(batches),
		"primitives", dl.PrimitiveCount())
	return frame, render.TextureUpdateList{Allocations: allocs}, nil
}

type solidRect struct {
	rect  geom.DeviceIntRect
	color style.ColorF
}

// solidRects walks dl and returns its rect items in device space. Items
// are offset by the origins of their reference frames and scroll frames.
func solidRects(dl *displaylist.BuiltDisplayList, hidpi float32) []solidRect {
	offsets := map[displaylist.SpatialID]geom.LogicalVector{
		displaylist.RootReferenceFrame: {},
		displaylist.RootScrollNode:     {},
	}
	var out []solidRect
	d := displaylist.NewDecoder(dl)
	for d.Next() {
		switch d.Tag() {
		case displaylist.TagPushReferenceFrame:
			f := d.ReferenceFrame()
			p := offsets[f.Parent]
			offsets[f.ID] = geom.LogicalVector{X: p.X + f.Origin.X, Y: p.Y + f.Origin.Y}
		case displaylist.TagDefineScrollFrame:
			s := d.ScrollFrame()
			p := offsets[s.Parent.Spatial]
			offsets[s.ID] = geom.LogicalVector{X: p.X + s.Offset.X, Y: p.Y + s.Offset.Y}
		case displaylist.TagRect:
			r := d.Rect()
			if r.Color.A <= 0 || r.Bounds.IsEmpty() {
				continue
			}
			bounds := r.Bounds.Translate(offsets[r.Common.Spatial])
			out = append(out, solidRect{rect: bounds.ToDevice(hidpi), color: r.Color})
		}
	}
	return out
}
