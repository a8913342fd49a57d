package resources

// ResourceUpdate is one logical change to the resource set. The variants
// are AddFont, DeleteFont, AddFontInstance, DeleteFontInstance, AddImage,
// UpdateImage and DeleteImage; the set is closed.
type ResourceUpdate interface {
	resourceUpdate()
}

// AddFont introduces a font under Key.
type AddFont struct {
	Key  FontKey
	Font FontRef
}

// DeleteFont removes a font. Its instances must be deleted first.
type DeleteFont struct {
	Key FontKey
}

// AddFontInstance introduces a sized, configured instance of a font.
type AddFontInstance struct {
	Key     FontInstanceKey
	FontKey FontKey
	// GlyphSize is the logical font size; DPI scales it to device pixels.
	GlyphSize Au
	DPI       float32
	// Options and PlatformOptions are nil when the renderer defaults apply.
	Options         *FontInstanceOptions
	PlatformOptions FontInstancePlatformOptions
	Variations      []FontVariation
}

// GlyphSizePx returns the device pixel size glyphs are rasterized at.
func (a AddFontInstance) GlyphSizePx() float32 {
	dpi := a.DPI
	if dpi == 0 {
		dpi = 1
	}
	return a.GlyphSize.Px() * dpi
}

// DeleteFontInstance removes a font instance.
type DeleteFontInstance struct {
	Key FontInstanceKey
}

// AddImage introduces an image. Tiling, when set, splits the image into
// square tiles of that edge length.
type AddImage struct {
	Key        ImageKey
	Descriptor ImageDescriptor
	Data       ImageData
	Tiling     *TileSize
}

// UpdateImage replaces the pixels of an existing image within DirtyRect.
type UpdateImage struct {
	Key        ImageKey
	Descriptor ImageDescriptor
	Data       ImageData
	DirtyRect  ImageDirtyRect
}

// DeleteImage removes an image.
type DeleteImage struct {
	Key ImageKey
}

func (AddFont) resourceUpdate()            {}
func (DeleteFont) resourceUpdate()         {}
func (AddFontInstance) resourceUpdate()    {}
func (DeleteFontInstance) resourceUpdate() {}
func (AddImage) resourceUpdate()           {}
func (UpdateImage) resourceUpdate()        {}
func (DeleteImage) resourceUpdate()        {}
