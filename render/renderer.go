// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/resources"
	"github.com/gogpu/compositor/style"
)

// ShaderRefresher is implemented by devices that can rebuild a shader from
// its source file.
type ShaderRefresher interface {
	RefreshShader(path string) error
}

// PoolDrainer is implemented by devices that keep pools of transient GPU
// objects they can drop under memory pressure.
type PoolDrainer interface {
	DrainPools()
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithExternalImageHandler sets the handler that resolves external images.
func WithExternalImageHandler(h ExternalImageHandler) Option {
	return func(r *Renderer) { r.externalHandler = h }
}

// WithNativeCompositor hands picture cache tiles to c instead of
// compositing them on the device, for documents that ask for it.
func WithNativeCompositor(c NativeCompositor) Option {
	return func(r *Renderer) {
		if c != nil {
			r.native = newNativeBridge(c)
		}
	}
}

// WithMemoryPressureHandler sets a callback run after each out of memory
// frame, so the client can drop resources.
func WithMemoryPressureHandler(fn func()) Option {
	return func(r *Renderer) { r.onMemoryPressure = fn }
}

// WithChannel makes the renderer read from ch instead of creating its own.
func WithChannel(ch *Channel) Option {
	return func(r *Renderer) { r.ch = ch }
}

type epochKey struct {
	doc      resources.DocumentID
	pipeline resources.PipelineID
}

type document struct {
	id      resources.DocumentID
	publish PublishID
	frame   *Frame
}

// Renderer draws the frames a client publishes. Messages arrive on its
// Channel from any goroutine; every other method must be called from the
// one goroutine that owns the device.
type Renderer struct {
	dev  Device
	caps DeviceCapabilities
	opts Options

	ch     *Channel
	queued []Message

	docs   map[resources.DocumentID]*document
	active *document
	// frame is the frame being rendered.
	frame *Frame

	pendingUpdates []ResourceUpdates
	textures       *TextureResolver
	resources      *resourceCache

	externalHandler ExternalImageHandler
	externals       externalImages

	native  *nativeBridge
	kind    CompositorKind
	overlay *debugOverlay

	damage      BufferDamageTracker
	forceRedraw bool

	gpuCacheID GPUCacheFrameID
	gpuCache   []float32

	epochs        map[epochKey]resources.Epoch
	notifications []NotificationRequest

	oomFrames        int
	onMemoryPressure func()

	stats RendererStats
}

// NewRenderer returns a renderer drawing with dev.
func NewRenderer(dev Device, opts Options, options ...Option) (*Renderer, error) {
	if dev == nil {
		return nil, ErrNoDevice
	}
	if opts.ChannelCapacity <= 0 {
		opts.ChannelCapacity = DefaultOptions().ChannelCapacity
	}
	if opts.MaxOOMFrames <= 0 {
		opts.MaxOOMFrames = DefaultOptions().MaxOOMFrames
	}
	caps := dev.Capabilities()
	maxSize := caps.MaxTextureSize
	if opts.MaxTextureSize > 0 {
		maxSize = min(maxSize, opts.MaxTextureSize)
	}
	r := &Renderer{
		dev:       dev,
		caps:      caps,
		opts:      opts,
		docs:      make(map[resources.DocumentID]*document),
		textures:  NewTextureResolver(dev, maxSize),
		resources: newResourceCache(dev, maxSize),
		externals: externalImages{resolved: make(map[DeferredResolveIndex]resolvedExternal)},
		overlay:   newDebugOverlay(opts.OverlayLocale),
		epochs:    make(map[epochKey]resources.Epoch),
	}
	for _, o := range options {
		o(r)
	}
	if r.ch == nil {
		r.ch = NewChannel(opts.ChannelCapacity)
	}
	slogger().Info("render: renderer created",
		"device", caps.DeviceName, "vendor", caps.VendorName,
		"max_texture_size", r.textures.MaxTextureSize(),
		"native_compositor", r.native != nil)
	return r, nil
}

// Channel returns the channel clients send messages on.
func (r *Renderer) Channel() *Channel { return r.ch }

// Options returns the renderer's current options.
func (r *Renderer) Options() Options { return r.opts }

// Update drains the channel and applies every queued message.
func (r *Renderer) Update() error { return r.UpdateUntil(nil) }

// UpdateUntil applies queued messages in order, stopping before the first
// PublishDocument whose id is after target. Messages not applied stay
// queued for the next call. A nil target applies everything.
func (r *Renderer) UpdateUntil(target *PublishID) error {
	r.queued = r.ch.drain(r.queued)
	var errs []error
	i := 0
	for ; i < len(r.queued); i++ {
		m := r.queued[i]
		if pd, ok := m.(PublishDocument); ok && target != nil && pd.ID > *target {
			break
		}
		if err := r.handle(m); err != nil {
			errs = append(errs, err)
		}
	}
	n := copy(r.queued, r.queued[i:])
	clear(r.queued[n:])
	r.queued = r.queued[:n]
	return errors.Join(errs...)
}

func (r *Renderer) handle(m Message) error {
	switch m := m.(type) {
	case PublishPipelineInfo:
		for p, e := range m.Epochs {
			r.epochs[epochKey{m.Document, p}] = e
		}
		for _, p := range m.Removed {
			delete(r.epochs, epochKey{m.Document, p})
		}
	case PublishDocument:
		return r.publish(m)
	case UpdateGPUCache:
		start := time.Now()
		if m.ID > r.gpuCacheID {
			r.gpuCacheID = m.ID
		}
		r.gpuCache = append(r.gpuCache[:0], m.Data...)
		r.stats.GPUCacheUploadTime += time.Since(start)
	case UpdateResources:
		if !m.Updates.IsEmpty() {
			r.pendingUpdates = append(r.pendingUpdates, m.Updates)
		}
		if m.MemoryPressure {
			return r.handleMemoryPressure()
		}
	case AppendNotificationRequests:
		r.notifications = append(r.notifications, m.Requests...)
	case ForceRedraw:
		r.forceRedraw = true
	case RefreshShader:
		sr, ok := r.dev.(ShaderRefresher)
		if !ok {
			slogger().Warn("render: device cannot refresh shaders", "path", m.Path)
			return nil
		}
		if err := sr.RefreshShader(m.Path); err != nil {
			return ShaderError(m.Path, err)
		}
		r.forceRedraw = true
	case SetParameter:
		r.opts.setParameter(m.Param, m.Value)
		slogger().Debug("render: parameter set", "param", m.Param, "value", m.Value)
	case SetDebugFlags:
		r.setDebugFlags(m.Flags)
	case DebugOutput:
		switch req := m.Request.(type) {
		case SaveCapture:
			return r.SaveCapture(req.Path)
		case LoadCapture:
			return r.LoadCapture(req.Path)
		}
	case DebugCommand:
		switch m.Kind {
		case DebugClearCaches:
			r.damage.Reset()
			r.forceRedraw = true
		case DebugLogState:
			r.logState()
		}
	default:
		return fmt.Errorf("render: unknown message %T", m)
	}
	return nil
}

// publish replaces a document's frame. A replaced frame that must be drawn
// and was not is first rendered off-screen.
func (r *Renderer) publish(m PublishDocument) error {
	if m.Frame == nil {
		return fmt.Errorf("render: publish %d of document %v without a frame", m.ID, m.Document)
	}
	doc := r.docs[m.Document]
	if doc == nil {
		doc = &document{id: m.Document}
		r.docs[m.Document] = doc
	}

	var err error
	if old := doc.frame; old != nil {
		if old.MustBeDrawn && !old.HasBeenRendered {
			slogger().Debug("render: flushing undrawn frame", "document", doc.id, "publish", doc.publish)
			_, err = r.renderDocument(doc, nil, 0)
		}
		r.dropFrame(old)
	}

	doc.frame = m.Frame
	doc.publish = m.ID
	for p, e := range m.Frame.Epochs {
		r.epochs[epochKey{doc.id, p}] = e
	}
	if !m.Updates.IsEmpty() {
		r.pendingUpdates = append(r.pendingUpdates, m.Updates)
	}
	r.active = doc
	r.notify(doc.id, CheckpointFrameBuilt)
	return err
}

func (r *Renderer) dropFrame(f *Frame) {
	f.Memory.Release()
	if err := f.Memory.AssertMemoryReusable(); err != nil {
		slogger().Warn("render: frame memory not reusable", "err", err)
	}
}

func (r *Renderer) setDebugFlags(flags DebugFlags) {
	old := r.opts.DebugFlags
	r.opts.DebugFlags = flags
	if old.NeedsOverlay() && !flags.NeedsOverlay() {
		r.overlay.teardownNative(r.native)
		r.overlay.destroy(r.dev)
	}
	if old != flags {
		r.forceRedraw = true
		slogger().Debug("render: debug flags", "flags", flags)
	}
}

// handleMemoryPressure draws the frames later frames depend on and drops
// every cache that can be rebuilt.
func (r *Renderer) handleMemoryPressure() error {
	var errs []error
	for _, doc := range r.sortedDocs() {
		if f := doc.frame; f != nil && f.MustBeDrawn && !f.HasBeenRendered {
			if _, err := r.renderDocument(doc, nil, 0); err != nil {
				errs = append(errs, err)
			}
		}
	}
	r.overlay.destroy(r.dev)
	if d, ok := r.dev.(PoolDrainer); ok {
		d.DrainPools()
	}
	slogger().Info("render: memory pressure handled", "documents", len(r.docs))
	return errors.Join(errs...)
}

func (r *Renderer) sortedDocs() []*document {
	docs := make([]*document, 0, len(r.docs))
	for _, d := range r.docs {
		docs = append(docs, d)
	}
	slices.SortFunc(docs, func(a, b *document) int {
		if c := cmp.Compare(a.id.Namespace, b.id.Namespace); c != 0 {
			return c
		}
		return cmp.Compare(a.id.ID, b.id.ID)
	})
	return docs
}

func (r *Renderer) logState() {
	for _, d := range r.sortedDocs() {
		slogger().Info("render: document",
			"document", d.id, "publish", d.publish,
			"rendered", d.frame != nil && d.frame.HasBeenRendered)
	}
	slogger().Info("render: caches",
		"cache_textures", r.textures.Len(),
		"gpu_cache_frame", r.gpuCacheID,
		"pending_updates", len(r.pendingUpdates),
		"notifications", len(r.notifications),
		"compositor", r.kind)
}

// CurrentEpoch returns the last epoch published for pipeline of doc.
func (r *Renderer) CurrentEpoch(doc resources.DocumentID, pipeline resources.PipelineID) (resources.Epoch, bool) {
	e, ok := r.epochs[epochKey{doc, pipeline}]
	return e, ok
}

// Render draws the most recently published document. With a nil
// deviceSize the frame's off-screen work runs but nothing is composited or
// presented. bufferAge is the age of the backbuffer being drawn, 0 when
// unknown.
//
// Errors that do not stop the frame are returned together as a
// *RenderErrors after the frame was drawn. Render panics once MaxOOMFrames
// consecutive frames ran out of GPU memory.
func (r *Renderer) Render(deviceSize *geom.DeviceIntSize, bufferAge int) (RenderResults, error) {
	if r.active == nil || r.active.frame == nil {
		return RenderResults{}, nil
	}
	return r.renderDocument(r.active, deviceSize, bufferAge)
}

func (r *Renderer) renderDocument(doc *document, deviceSize *geom.DeviceIntSize, bufferAge int) (RenderResults, error) {
	start := time.Now()
	frame := doc.frame
	if frame.GPUCacheFrameID > r.gpuCacheID {
		return RenderResults{}, fmt.Errorf("%w: frame needs %d, applied %d",
			ErrStaleGPUCache, frame.GPUCacheFrameID, r.gpuCacheID)
	}
	if err := frame.Validate(); err != nil {
		return RenderResults{}, err
	}

	cacheTime := r.stats.GPUCacheUploadTime
	r.stats = RendererStats{GPUCacheUploadTime: cacheTime}
	r.frame = frame
	defer func() { r.frame = nil }()

	errs := &RenderErrors{}
	present := deviceSize != nil
	if present {
		r.switchCompositor(frame.Composite.Kind)
	}
	if err := r.dev.BeginFrame(); err != nil {
		return RenderResults{}, asRendererError(err, ErrorSoftwareRasterizer, "begin frame")
	}

	updateStart := time.Now()
	r.applyPendingUpdates(errs)
	r.stats.UpdateTime = time.Since(updateStart)
	r.notify(doc.id, CheckpointFrameTexturesUpdated)

	r.lockExternalImages(frame.DeferredResolves, errs)

	nativePresent := present && r.kind == CompositorNative
	overlay := present && r.opts.DebugFlags.NeedsOverlay()
	if nativePresent {
		var extra []NativeSurface
		if overlay {
			r.overlay.ensureNative(r.native, *deviceSize)
			extra = append(extra, r.overlay.nativeSurface())
		}
		r.native.beginFrame(frame.Composite.NativeSurfaces, extra...)
	}

	oom := false
	passStart := time.Now()
	for i := range frame.Passes {
		r.drawPass(&frame.Passes[i], nativePresent, errs)
		if r.checkDevice(errs) {
			oom = true
		}
	}
	r.stats.PassTime = time.Since(passStart)

	var results RenderResults
	if present {
		compStart := time.Now()
		fb := geom.IntRectFromSize(*deviceSize)
		plan := r.planPresent(&frame.Composite, fb, bufferAge)
		results.DirtyRects = plan.dirtyRects
		if nativePresent {
			r.native.startCompositing(r.clearColor(), plan.dirtyRects)
			if overlay {
				r.drawOverlayNative(frame, *deviceSize, errs)
			}
			r.native.endFrame()
		} else {
			if err := r.dev.BindDrawTarget(DefaultTarget(*deviceSize)); err != nil {
				errs.add(asRendererError(err, ErrorShaderBuild, "framebuffer"))
			} else {
				r.compositeSimple(&frame.Composite, fb, plan.drawRect, errs)
				if overlay {
					st := r.stats
					if err := r.overlay.draw(r, frame, &st, *deviceSize); err != nil {
						errs.add(asRendererError(err, ErrorShaderBuild, "debug overlay"))
					}
				}
			}
		}
		r.stats.CompositeTime = time.Since(compStart)
		if r.checkDevice(errs) {
			oom = true
		}
	}

	if err := r.dev.EndFrame(); err != nil {
		errs.add(asRendererError(err, ErrorSoftwareRasterizer, "end frame"))
	}
	r.unlockExternalImages()
	r.trackOOM(oom)

	frame.HasBeenRendered = true
	r.notify(doc.id, CheckpointFrameRendered)

	r.stats.TotalTime = time.Since(start)
	results.Stats = r.stats
	results.Rendered = true
	if !errs.empty() {
		return results, errs
	}
	return results, nil
}

func (r *Renderer) clearColor() style.ColorF {
	if r.opts.ClearColor == nil {
		return style.ColorF{}
	}
	return r.opts.ClearColor.ToColorF()
}

func (r *Renderer) drawOverlayNative(frame *Frame, fb geom.DeviceIntSize, errs *RenderErrors) {
	tile := NativeTileID{Surface: overlaySurfaceID}
	full := geom.IntRectFromSize(fb)
	err := r.native.drawTile(tile, full, full, func(info NativeSurfaceInfo) error {
		t := DrawTarget{Kind: DrawNative, Size: fb, Origin: info.Origin, FBO: info.FBO}
		if err := r.dev.BindDrawTarget(t); err != nil {
			return err
		}
		if err := r.dev.Clear(style.ColorF{}, nil); err != nil {
			return err
		}
		st := r.stats
		return r.overlay.draw(r, frame, &st, fb)
	})
	if err != nil {
		errs.add(asRendererError(err, ErrorShaderBuild, "debug overlay"))
	}
}

// switchCompositor changes how tiles are composited. Native composition is
// only used when the host supplied a compositor and enabled it.
func (r *Renderer) switchCompositor(kind CompositorKind) {
	if kind == CompositorNative && (r.native == nil || !r.opts.NativeCompositor) {
		kind = CompositorDraw
	}
	if kind == r.kind {
		return
	}
	slogger().Info("render: compositor changed", "from", r.kind, "to", kind)
	if r.native != nil {
		if kind == CompositorDraw {
			r.overlay.teardownNative(r.native)
		}
		r.native.enable(kind == CompositorNative)
	}
	r.kind = kind
	r.forceRedraw = true
	r.damage.Reset()
}

func (r *Renderer) applyPendingUpdates(errs *RenderErrors) {
	start := time.Now()
	bytes := 0
	for _, u := range r.pendingUpdates {
		st, err := r.textures.Apply(u.TextureCache, r.opts.DebugFlags)
		errs.addAll(err, ErrorInvalidResource, "texture cache update")
		r.stats.TexturesCreated += st.Created
		r.stats.TexturesReused += st.Reused
		bytes += st.UploadedBytes

		n, err := r.resources.apply(u.Commands)
		errs.addAll(err, ErrorInvalidResource, "resource update")
		bytes += n
	}
	clear(r.pendingUpdates)
	r.pendingUpdates = r.pendingUpdates[:0]
	r.stats.ResourceUploadTime = time.Since(start)
	r.stats.TextureUploadMB = float64(bytes) / (1 << 20)
}

// checkDevice records the device's pending error and reports whether it
// was an out of memory condition.
func (r *Renderer) checkDevice(errs *RenderErrors) bool {
	err := r.dev.CheckError()
	if err == nil {
		return false
	}
	re := asRendererError(err, ErrorSoftwareRasterizer, "device")
	errs.add(re)
	return re.Kind == ErrorOutOfMemory
}

func (r *Renderer) trackOOM(oom bool) {
	if !oom {
		r.oomFrames = 0
		return
	}
	r.oomFrames++
	slogger().Warn("render: out of GPU memory", "consecutive_frames", r.oomFrames)
	if r.onMemoryPressure != nil {
		r.onMemoryPressure()
	}
	if r.oomFrames >= r.opts.MaxOOMFrames {
		panic(fmt.Sprintf("render: out of GPU memory for %d consecutive frames", r.oomFrames))
	}
}

// notify fires and drops the requests of doc waiting for cp.
func (r *Renderer) notify(doc resources.DocumentID, cp Checkpoint) {
	kept := r.notifications[:0]
	for _, n := range r.notifications {
		if n.Document == doc && n.When == cp {
			if n.Notify != nil {
				n.Notify(cp)
			}
			continue
		}
		kept = append(kept, n)
	}
	clear(r.notifications[len(kept):])
	r.notifications = kept
}

// draw issues call, counting it in the frame stats.
func (r *Renderer) draw(call DrawCall) error {
	r.stats.TotalDrawCalls++
	return r.dev.Draw(call)
}

func (r *Renderer) resolveTileSurface(s TileSurface) (TextureID, bool) {
	if s.Kind != SurfaceTexture {
		return 0, false
	}
	return r.textures.Resolve(s.Texture)
}

func (r *Renderer) resolveSource(src TextureSource) (TextureID, bool) {
	switch src.Kind {
	case SourceNone:
		return 0, true
	case SourceCache:
		return r.textures.Resolve(src.Cache)
	case SourceExternal:
		e, ok := r.externals.resolved[src.External]
		return e.texture, ok && e.texture != 0
	case SourceImage:
		return r.resources.imageTexture(src.Image)
	}
	return 0, false
}

// Close reports every outstanding notification as dropped and releases the
// renderer's GPU resources. The renderer must not be used afterwards.
func (r *Renderer) Close() {
	for _, n := range r.notifications {
		if n.Notify != nil {
			n.Notify(CheckpointTransactionDropped)
		}
	}
	r.notifications = nil
	for _, d := range r.docs {
		if d.frame != nil {
			r.dropFrame(d.frame)
		}
	}
	r.docs = map[resources.DocumentID]*document{}
	r.active = nil
	r.overlay.destroy(r.dev)
	if r.native != nil {
		r.native.deinit()
	}
	r.resources.clear()
	r.textures.Clear()
	r.ch.Close()
	slogger().Info("render: renderer closed")
}
