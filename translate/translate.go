package translate

import (
	"errors"
	"fmt"

	"github.com/gogpu/compositor/displaylist"
	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/resources"
	"github.com/gogpu/compositor/style"
)

// ErrUnknownResource is returned when a primitive refers to a font instance
// or image that is not live in the translator's catalog.
var ErrUnknownResource = errors.New("translate: unknown resource")

// ResourceChecker reports which resource keys are live. *resources.Catalog
// implements it.
type ResourceChecker interface {
	HasFontInstance(resources.FontInstanceKey) bool
	HasImage(resources.ImageKey) bool
}

// Translator converts cached display lists. The zero value is ready to use
// and does not check resource references.
type Translator struct {
	resources ResourceChecker
}

// Option configures a Translator.
type Option func(*Translator)

// WithResources makes the translator fail on references to keys rc does not
// report as live.
func WithResources(rc ResourceChecker) Option {
	return func(t *Translator) { t.resources = rc }
}

// New returns a translator configured by opts.
func New(opts ...Option) *Translator {
	t := &Translator{}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Translate converts input with a default Translator.
func Translate(input displaylist.CachedDisplayList, pipeline resources.PipelineID, hidpi float32) (*displaylist.BuiltDisplayList, error) {
	return New().Translate(input, pipeline, hidpi)
}

// task is one entry of the translation work stack. An enter task emits a
// node and schedules its children; the matching exit task closes the scopes
// the enter task opened.
type task struct {
	msg    displaylist.DisplayListMsg
	parent displaylist.SpaceAndClip
	exit   bool

	pushedContext    bool
	pushedPositioned bool
}

// state is the per-call translation state.
type state struct {
	t          *Translator
	b          *displaylist.Builder
	hidpi      float32
	positioned []displaylist.SpaceAndClip
	err        error
}

// Translate converts input for pipeline. hidpi is the device pixel ratio
// used to snap border widths; zero is treated as 1. The input is not
// modified.
func (t *Translator) Translate(input displaylist.CachedDisplayList, pipeline resources.PipelineID, hidpi float32) (*displaylist.BuiltDisplayList, error) {
	if hidpi <= 0 {
		hidpi = 1
	}
	s := &state{
		t:     t,
		b:     displaylist.NewBuilder(pipeline, input.RootSize),
		hidpi: hidpi,
	}
	if input.Root != nil {
		s.run(input.Root)
	}
	if s.err != nil {
		return nil, s.err
	}
	dl, err := s.b.Finalize()
	if err != nil {
		return nil, fmt.Errorf("translate: %w", err)
	}
	slogger().Debug("translate: display list built",
		"pipeline", pipeline.String(), "items", dl.Len(), "primitives", dl.PrimitiveCount())
	return dl, nil
}

func (s *state) run(root displaylist.DisplayListMsg) {
	work := []task{{msg: root, parent: displaylist.RootScroll()}}
	for len(work) > 0 && s.err == nil {
		tk := work[len(work)-1]
		work = work[:len(work)-1]

		if tk.exit {
			if tk.pushedContext {
				s.b.PopStackingContext()
			}
			if tk.pushedPositioned {
				s.positioned = s.positioned[:len(s.positioned)-1]
			}
			s.b.PopReferenceFrame()
			continue
		}

		exit, children, childParent := s.enter(tk)
		work = append(work, exit)
		for i := len(children) - 1; i >= 0; i-- {
			work = append(work, task{msg: children[i], parent: childParent})
		}
	}
}

// parentFor selects the node a frame is positioned against.
func (s *state) parentFor(pos displaylist.PositionInfo, parent displaylist.SpaceAndClip) displaylist.SpaceAndClip {
	switch pos.Kind {
	case displaylist.PositionAbsolute:
		if n := len(s.positioned); n > 0 {
			return s.positioned[n-1]
		}
		return displaylist.RootScroll()
	case displaylist.PositionFixed:
		return displaylist.RootScroll()
	default:
		return parent
	}
}

// enter emits the reference frame, stacking context and content of one node
// and returns its exit task together with the children to visit and the
// space and clip they are placed in.
func (s *state) enter(tk task) (task, []displaylist.DisplayListMsg, displaylist.SpaceAndClip) {
	f := tk.msg.Base()
	parent := s.parentFor(f.Position, tk.parent)

	binding := displaylist.ConstantTransform(geom.Identity())
	if f.Transform != nil {
		binding = displaylist.BoundTransform(f.Transform.Key, f.Transform.Value)
	}
	spatial := s.b.PushReferenceFrame(f.Position.Offset(), parent.Spatial, binding)

	exit := task{exit: true}
	if f.Position.IsPositioned() {
		s.positioned = append(s.positioned, displaylist.SpaceAndClip{Spatial: spatial, Clip: parent.Clip})
		exit.pushedPositioned = true
	}
	if f.NeedsStackingContext() {
		sc := displaylist.StackingContext{
			Spatial:        spatial,
			Flags:          displaylist.FlagBackfaceVisible,
			Opacity:        f.Opacity,
			BlendContainer: f.HasMixBlendChildren,
		}
		if f.MixBlendMode != nil {
			sc.Blend = *f.MixBlendMode
		}
		s.b.PushStackingContext(sc)
		exit.pushedContext = true
	}

	here := displaylist.SpaceAndClip{Spatial: spatial, Clip: parent.Clip}
	var childParent displaylist.SpaceAndClip
	switch m := tk.msg.(type) {
	case *displaylist.DisplayListScrollFrame:
		childParent = s.pushScrollFrame(m, here)
	default:
		childParent = s.pushFrame(f, here)
	}
	return exit, f.Children, childParent
}

// pushFrame emits a frame's content and hit-test area and returns the space
// and clip of its children.
func (s *state) pushFrame(f *displaylist.DisplayListFrame, here displaylist.SpaceAndClip) displaylist.SpaceAndClip {
	contentClip := s.pushContent(f, here)

	childClip := here.Clip
	if f.ClipChildren != nil {
		size := *f.ClipChildren
		childClip = s.b.DefineClipRoundedRect(
			displaylist.SpaceAndClip{Spatial: here.Spatial, Clip: contentClip},
			geom.RectFromSize(size),
			displaylist.ResolveBorderRadius(f.BorderRadius, size),
		)
	}

	if f.Tag != nil {
		s.b.PushHitTest(displaylist.CommonItemProperties{
			ClipRect: geom.RectFromSize(f.Size),
			Spatial:  here.Spatial,
			Clip:     here.Clip,
		}, *f.Tag)
	}
	return displaylist.SpaceAndClip{Spatial: here.Spatial, Clip: childClip}
}

// pushScrollFrame emits a scroll frame. The scroll node is defined so its
// id is allocated, but children are still placed in the frame's own space:
// scrolling is not yet bound to a scroll node.
func (s *state) pushScrollFrame(sf *displaylist.DisplayListScrollFrame, here displaylist.SpaceAndClip) displaylist.SpaceAndClip {
	childParent := s.pushFrame(&sf.Frame, here)
	offset := geom.LogicalVector{
		X: sf.ContentRect.Origin.X - sf.ParentRect.Origin.X,
		Y: sf.ContentRect.Origin.Y - sf.ParentRect.Origin.Y,
	}
	s.b.DefineScrollFrame(here, sf.ScrollID,
		geom.RectFromSize(sf.ContentRect.Size),
		geom.RectFromSize(sf.ParentRect.Size),
		offset)
	return childParent
}

// contentCtx carries what the content emitters of one frame share.
type contentCtx struct {
	s        *state
	frame    *displaylist.DisplayListFrame
	here     displaylist.SpaceAndClip
	clipRect geom.LogicalRect
	radius   displaylist.BorderRadius
	clip     *displaylist.ClipID
}

// contentClip returns the frame's border-radius clip, defining it on first
// use.
func (c *contentCtx) contentClip() displaylist.ClipID {
	if c.clip == nil {
		id := c.s.b.DefineClipRoundedRect(c.here, geom.RectFromSize(c.clipRect.Size), c.radius)
		c.clip = &id
	}
	return *c.clip
}

func (c *contentCtx) common(clip displaylist.ClipID) displaylist.CommonItemProperties {
	return displaylist.CommonItemProperties{
		ClipRect: c.clipRect,
		Spatial:  c.here.Spatial,
		Clip:     clip,
		Flags:    c.frame.Flags,
	}
}

// pushContent emits a frame's box shadow and content in order and returns
// the frame's content clip.
func (s *state) pushContent(f *displaylist.DisplayListFrame, here displaylist.SpaceAndClip) displaylist.ClipID {
	clipRect := geom.RectFromSize(f.Size)
	c := &contentCtx{
		s:        s,
		frame:    f,
		here:     here,
		clipRect: clipRect,
		radius:   displaylist.ResolveBorderRadius(f.BorderRadius, f.Size),
	}

	// Outset shadows extend past the frame, so they go under the root clip
	// and before anything else.
	if f.BoxShadow != nil && f.BoxShadow.ClipMode == style.ShadowClipOutset {
		pushBoxShadow(s.b, clipRect, style.ShadowClipOutset, f.BoxShadow, f.BorderRadius,
			displaylist.SpaceAndClip{Spatial: here.Spatial, Clip: displaylist.RootClip})
	}

	for _, content := range f.Content {
		if s.err != nil {
			return c.contentClip()
		}
		switch content := content.(type) {
		case displaylist.Text:
			s.pushText(c, content)
		case displaylist.Background:
			if content.Content.Kind == style.BackgroundImage && content.Content.Image != nil {
				if !s.checkImage(content.Content.Image.Key) {
					return c.contentClip()
				}
			}
			pushBackground(s.b, c.common(c.contentClip()), content)
		case displaylist.Image:
			if !s.checkImage(content.Key) {
				return c.contentClip()
			}
			pushImage(s.b, c.common(c.contentClip()), content.Size, content.Offset,
				content.Key, content.AlphaType, content.Rendering, content.BackgroundColor)
		case displaylist.Border:
			pushBorder(s.b, c.common(here.Clip), f.BorderRadius, content, s.hidpi)
		}
	}

	if f.BoxShadow != nil && f.BoxShadow.ClipMode == style.ShadowClipInset {
		pushBoxShadow(s.b, clipRect, style.ShadowClipInset, f.BoxShadow, f.BorderRadius,
			displaylist.SpaceAndClip{Spatial: here.Spatial, Clip: c.contentClip()})
	}
	return c.contentClip()
}

func (s *state) checkImage(k resources.ImageKey) bool {
	if rc := s.t.resources; rc != nil && !rc.HasImage(k) {
		s.err = fmt.Errorf("%w: %s", ErrUnknownResource, k)
		return false
	}
	return true
}

func (s *state) checkFontInstance(k resources.FontInstanceKey) bool {
	if rc := s.t.resources; rc != nil && !rc.HasFontInstance(k) {
		s.err = fmt.Errorf("%w: %s", ErrUnknownResource, k)
		return false
	}
	return true
}

// pushText emits a glyph run. Text that may overflow its frame is drawn
// unclipped; other text is clipped to the frame. A text shadow wraps the run
// in a stacking context with a drop shadow filter.
func (s *state) pushText(c *contentCtx, t displaylist.Text) {
	if !s.checkFontInstance(t.FontInstanceKey) {
		return
	}
	clip := displaylist.RootClip
	if !t.Overflow[0] && !t.Overflow[1] {
		clip = c.contentClip()
	}
	info := c.common(clip)

	if t.Shadow != nil {
		s.b.PushStackingContext(displaylist.StackingContext{
			Spatial: c.here.Spatial,
			Filters: []style.StyleFilter{style.DropShadowFilter(*t.Shadow)},
		})
	}
	glyphs := make([]displaylist.GlyphInstance, len(t.Glyphs))
	copy(glyphs, t.Glyphs)
	s.b.PushText(displaylist.TextItem{
		Common:  info,
		Bounds:  info.ClipRect,
		Glyphs:  glyphs,
		Font:    t.FontInstanceKey,
		Color:   t.Color.ToColorF(),
		Options: t.Options,
	})
	if t.Shadow != nil {
		s.b.PopStackingContext()
	}
}
