package style

// LayoutDisplay is the display keyword.
type LayoutDisplay uint8

// LayoutDisplay values.
const (
	DisplayNone LayoutDisplay = iota
	DisplayBlock
	DisplayInline
	DisplayInlineBlock
	DisplayFlex
	DisplayInlineFlex
)

var layoutDisplayNames = []string{
	DisplayNone:        "none",
	DisplayBlock:       "block",
	DisplayInline:      "inline",
	DisplayInlineBlock: "inline-block",
	DisplayFlex:        "flex",
	DisplayInlineFlex:  "inline-flex",
}

func (v LayoutDisplay) String() string { return enumName(layoutDisplayNames, "display", uint8(v)) }

// MarshalText encodes v as its CSS keyword.
func (v LayoutDisplay) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText parses a CSS keyword.
func (v *LayoutDisplay) UnmarshalText(b []byte) error {
	n, err := enumParse(layoutDisplayNames, "display", string(b))
	*v = LayoutDisplay(n)
	return err
}

// LayoutFloat is the float keyword.
type LayoutFloat uint8

// LayoutFloat values.
const (
	FloatLeft LayoutFloat = iota
	FloatRight
	FloatNone
)

var layoutFloatNames = []string{
	FloatLeft:  "left",
	FloatRight: "right",
	FloatNone:  "none",
}

func (v LayoutFloat) String() string { return enumName(layoutFloatNames, "float", uint8(v)) }

// MarshalText encodes v as its CSS keyword.
func (v LayoutFloat) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText parses a CSS keyword.
func (v *LayoutFloat) UnmarshalText(b []byte) error {
	n, err := enumParse(layoutFloatNames, "float", string(b))
	*v = LayoutFloat(n)
	return err
}

// LayoutBoxSizing is the box-sizing keyword.
type LayoutBoxSizing uint8

// LayoutBoxSizing values.
const (
	BoxSizingContentBox LayoutBoxSizing = iota
	BoxSizingBorderBox
)

var layoutBoxSizingNames = []string{
	BoxSizingContentBox: "content-box",
	BoxSizingBorderBox:  "border-box",
}

func (v LayoutBoxSizing) String() string { return enumName(layoutBoxSizingNames, "box-sizing", uint8(v)) }

// MarshalText encodes v as its CSS keyword.
func (v LayoutBoxSizing) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText parses a CSS keyword.
func (v *LayoutBoxSizing) UnmarshalText(b []byte) error {
	n, err := enumParse(layoutBoxSizingNames, "box-sizing", string(b))
	*v = LayoutBoxSizing(n)
	return err
}

// LayoutPosition is the position keyword.
type LayoutPosition uint8

// LayoutPosition values.
const (
	PositionStatic LayoutPosition = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
)

var layoutPositionNames = []string{
	PositionStatic:   "static",
	PositionRelative: "relative",
	PositionAbsolute: "absolute",
	PositionFixed:    "fixed",
}

func (v LayoutPosition) String() string { return enumName(layoutPositionNames, "position", uint8(v)) }

// MarshalText encodes v as its CSS keyword.
func (v LayoutPosition) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText parses a CSS keyword.
func (v *LayoutPosition) UnmarshalText(b []byte) error {
	n, err := enumParse(layoutPositionNames, "position", string(b))
	*v = LayoutPosition(n)
	return err
}

// LayoutFlexWrap is the flex-wrap keyword.
type LayoutFlexWrap uint8

// LayoutFlexWrap values.
const (
	FlexWrapWrap LayoutFlexWrap = iota
	FlexWrapNoWrap
)

var layoutFlexWrapNames = []string{
	FlexWrapWrap:   "wrap",
	FlexWrapNoWrap: "nowrap",
}

func (v LayoutFlexWrap) String() string { return enumName(layoutFlexWrapNames, "flex-wrap", uint8(v)) }

// MarshalText encodes v as its CSS keyword.
func (v LayoutFlexWrap) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText parses a CSS keyword.
func (v *LayoutFlexWrap) UnmarshalText(b []byte) error {
	n, err := enumParse(layoutFlexWrapNames, "flex-wrap", string(b))
	*v = LayoutFlexWrap(n)
	return err
}

// LayoutFlexDirection is the flex-direction keyword.
type LayoutFlexDirection uint8

// LayoutFlexDirection values.
const (
	FlexDirectionRow LayoutFlexDirection = iota
	FlexDirectionRowReverse
	FlexDirectionColumn
	FlexDirectionColumnReverse
)

var layoutFlexDirectionNames = []string{
	FlexDirectionRow:           "row",
	FlexDirectionRowReverse:    "row-reverse",
	FlexDirectionColumn:        "column",
	FlexDirectionColumnReverse: "column-reverse",
}

func (v LayoutFlexDirection) String() string { return enumName(layoutFlexDirectionNames, "flex-direction", uint8(v)) }

// MarshalText encodes v as its CSS keyword.
func (v LayoutFlexDirection) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText parses a CSS keyword.
func (v *LayoutFlexDirection) UnmarshalText(b []byte) error {
	n, err := enumParse(layoutFlexDirectionNames, "flex-direction", string(b))
	*v = LayoutFlexDirection(n)
	return err
}

// LayoutJustifyContent is the justify-content keyword.
type LayoutJustifyContent uint8

// LayoutJustifyContent values.
const (
	JustifyContentStart LayoutJustifyContent = iota
	JustifyContentEnd
	JustifyContentCenter
	JustifyContentSpaceBetween
	JustifyContentSpaceAround
	JustifyContentSpaceEvenly
)

var layoutJustifyContentNames = []string{
	JustifyContentStart:        "flex-start",
	JustifyContentEnd:          "flex-end",
	JustifyContentCenter:       "center",
	JustifyContentSpaceBetween: "space-between",
	JustifyContentSpaceAround:  "space-around",
	JustifyContentSpaceEvenly:  "space-evenly",
}

func (v LayoutJustifyContent) String() string { return enumName(layoutJustifyContentNames, "justify-content", uint8(v)) }

// MarshalText encodes v as its CSS keyword.
func (v LayoutJustifyContent) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText parses a CSS keyword.
func (v *LayoutJustifyContent) UnmarshalText(b []byte) error {
	n, err := enumParse(layoutJustifyContentNames, "justify-content", string(b))
	*v = LayoutJustifyContent(n)
	return err
}

// LayoutAlignItems is the align-items keyword.
type LayoutAlignItems uint8

// LayoutAlignItems values.
const (
	AlignItemsStretch LayoutAlignItems = iota
	AlignItemsCenter
	AlignItemsFlexStart
	AlignItemsFlexEnd
)

var layoutAlignItemsNames = []string{
	AlignItemsStretch:   "stretch",
	AlignItemsCenter:    "center",
	AlignItemsFlexStart: "flex-start",
	AlignItemsFlexEnd:   "flex-end",
}

func (v LayoutAlignItems) String() string { return enumName(layoutAlignItemsNames, "align-items", uint8(v)) }

// MarshalText encodes v as its CSS keyword.
func (v LayoutAlignItems) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText parses a CSS keyword.
func (v *LayoutAlignItems) UnmarshalText(b []byte) error {
	n, err := enumParse(layoutAlignItemsNames, "align-items", string(b))
	*v = LayoutAlignItems(n)
	return err
}

// LayoutAlignContent is the align-content keyword.
type LayoutAlignContent uint8

// LayoutAlignContent values.
const (
	AlignContentStretch LayoutAlignContent = iota
	AlignContentCenter
	AlignContentStart
	AlignContentEnd
	AlignContentSpaceBetween
	AlignContentSpaceAround
)

var layoutAlignContentNames = []string{
	AlignContentStretch:      "stretch",
	AlignContentCenter:       "center",
	AlignContentStart:        "flex-start",
	AlignContentEnd:          "flex-end",
	AlignContentSpaceBetween: "space-between",
	AlignContentSpaceAround:  "space-around",
}

func (v LayoutAlignContent) String() string { return enumName(layoutAlignContentNames, "align-content", uint8(v)) }

// MarshalText encodes v as its CSS keyword.
func (v LayoutAlignContent) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText parses a CSS keyword.
func (v *LayoutAlignContent) UnmarshalText(b []byte) error {
	n, err := enumParse(layoutAlignContentNames, "align-content", string(b))
	*v = LayoutAlignContent(n)
	return err
}

// LayoutOverflow is the overflow-x and overflow-y keyword.
type LayoutOverflow uint8

// LayoutOverflow values.
const (
	OverflowScroll LayoutOverflow = iota
	OverflowAuto
	OverflowHidden
	OverflowVisible
)

var layoutOverflowNames = []string{
	OverflowScroll:  "scroll",
	OverflowAuto:    "auto",
	OverflowHidden:  "hidden",
	OverflowVisible: "visible",
}

func (v LayoutOverflow) String() string { return enumName(layoutOverflowNames, "overflow", uint8(v)) }

// MarshalText encodes v as its CSS keyword.
func (v LayoutOverflow) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText parses a CSS keyword.
func (v *LayoutOverflow) UnmarshalText(b []byte) error {
	n, err := enumParse(layoutOverflowNames, "overflow", string(b))
	*v = LayoutOverflow(n)
	return err
}

// StyleTextAlign is the text-align keyword.
type StyleTextAlign uint8

// StyleTextAlign values.
const (
	TextAlignLeft StyleTextAlign = iota
	TextAlignCenter
	TextAlignRight
	TextAlignJustify
)

var styleTextAlignNames = []string{
	TextAlignLeft:    "left",
	TextAlignCenter:  "center",
	TextAlignRight:   "right",
	TextAlignJustify: "justify",
}

func (v StyleTextAlign) String() string { return enumName(styleTextAlignNames, "text-align", uint8(v)) }

// MarshalText encodes v as its CSS keyword.
func (v StyleTextAlign) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText parses a CSS keyword.
func (v *StyleTextAlign) UnmarshalText(b []byte) error {
	n, err := enumParse(styleTextAlignNames, "text-align", string(b))
	*v = StyleTextAlign(n)
	return err
}

// StyleCursor is the cursor keyword.
type StyleCursor uint8

// StyleCursor values.
const (
	CursorDefault StyleCursor = iota
	CursorAlias
	CursorAllScroll
	CursorCell
	CursorColResize
	CursorContextMenu
	CursorCopy
	CursorCrosshair
	CursorEResize
	CursorEwResize
	CursorGrab
	CursorGrabbing
	CursorHelp
	CursorMove
	CursorNResize
	CursorNsResize
	CursorNeswResize
	CursorNwseResize
	CursorPointer
	CursorProgress
	CursorRowResize
	CursorSResize
	CursorSeResize
	CursorText
	CursorUnset
	CursorVerticalText
	CursorWResize
	CursorWait
	CursorZoomIn
	CursorZoomOut
)

var styleCursorNames = []string{
	CursorDefault:      "default",
	CursorAlias:        "alias",
	CursorAllScroll:    "all-scroll",
	CursorCell:         "cell",
	CursorColResize:    "col-resize",
	CursorContextMenu:  "context-menu",
	CursorCopy:         "copy",
	CursorCrosshair:    "crosshair",
	CursorEResize:      "e-resize",
	CursorEwResize:     "ew-resize",
	CursorGrab:         "grab",
	CursorGrabbing:     "grabbing",
	CursorHelp:         "help",
	CursorMove:         "move",
	CursorNResize:      "n-resize",
	CursorNsResize:     "ns-resize",
	CursorNeswResize:   "nesw-resize",
	CursorNwseResize:   "nwse-resize",
	CursorPointer:      "pointer",
	CursorProgress:     "progress",
	CursorRowResize:    "row-resize",
	CursorSResize:      "s-resize",
	CursorSeResize:     "se-resize",
	CursorText:         "text",
	CursorUnset:        "unset",
	CursorVerticalText: "vertical-text",
	CursorWResize:      "w-resize",
	CursorWait:         "wait",
	CursorZoomIn:       "zoom-in",
	CursorZoomOut:      "zoom-out",
}

func (v StyleCursor) String() string { return enumName(styleCursorNames, "cursor", uint8(v)) }

// MarshalText encodes v as its CSS keyword.
func (v StyleCursor) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText parses a CSS keyword.
func (v *StyleCursor) UnmarshalText(b []byte) error {
	n, err := enumParse(styleCursorNames, "cursor", string(b))
	*v = StyleCursor(n)
	return err
}

// StyleWhiteSpace is the white-space keyword.
type StyleWhiteSpace uint8

// StyleWhiteSpace values.
const (
	WhiteSpaceNormal StyleWhiteSpace = iota
	WhiteSpacePre
	WhiteSpaceNoWrap
)

var styleWhiteSpaceNames = []string{
	WhiteSpaceNormal: "normal",
	WhiteSpacePre:    "pre",
	WhiteSpaceNoWrap: "nowrap",
}

func (v StyleWhiteSpace) String() string { return enumName(styleWhiteSpaceNames, "white-space", uint8(v)) }

// MarshalText encodes v as its CSS keyword.
func (v StyleWhiteSpace) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText parses a CSS keyword.
func (v *StyleWhiteSpace) UnmarshalText(b []byte) error {
	n, err := enumParse(styleWhiteSpaceNames, "white-space", string(b))
	*v = StyleWhiteSpace(n)
	return err
}

// StyleHyphens is the hyphens keyword.
type StyleHyphens uint8

// StyleHyphens values.
const (
	HyphensAuto StyleHyphens = iota
	HyphensNone
)

var styleHyphensNames = []string{
	HyphensAuto: "auto",
	HyphensNone: "none",
}

func (v StyleHyphens) String() string { return enumName(styleHyphensNames, "hyphens", uint8(v)) }

// MarshalText encodes v as its CSS keyword.
func (v StyleHyphens) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText parses a CSS keyword.
func (v *StyleHyphens) UnmarshalText(b []byte) error {
	n, err := enumParse(styleHyphensNames, "hyphens", string(b))
	*v = StyleHyphens(n)
	return err
}

// StyleDirection is the text direction keyword.
type StyleDirection uint8

// StyleDirection values.
const (
	DirectionLtr StyleDirection = iota
	DirectionRtl
)

var styleDirectionNames = []string{
	DirectionLtr: "ltr",
	DirectionRtl: "rtl",
}

func (v StyleDirection) String() string { return enumName(styleDirectionNames, "direction", uint8(v)) }

// MarshalText encodes v as its CSS keyword.
func (v StyleDirection) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText parses a CSS keyword.
func (v *StyleDirection) UnmarshalText(b []byte) error {
	n, err := enumParse(styleDirectionNames, "direction", string(b))
	*v = StyleDirection(n)
	return err
}

// StyleBackfaceVisibility is the backface-visibility keyword.
type StyleBackfaceVisibility uint8

// StyleBackfaceVisibility values.
const (
	BackfaceHidden StyleBackfaceVisibility = iota
	BackfaceVisible
)

var styleBackfaceVisibilityNames = []string{
	BackfaceHidden:  "hidden",
	BackfaceVisible: "visible",
}

func (v StyleBackfaceVisibility) String() string { return enumName(styleBackfaceVisibilityNames, "backface-visibility", uint8(v)) }

// MarshalText encodes v as its CSS keyword.
func (v StyleBackfaceVisibility) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText parses a CSS keyword.
func (v *StyleBackfaceVisibility) UnmarshalText(b []byte) error {
	n, err := enumParse(styleBackfaceVisibilityNames, "backface-visibility", string(b))
	*v = StyleBackfaceVisibility(n)
	return err
}

// MixBlendMode is the mix-blend-mode keyword.
type MixBlendMode uint8

// MixBlendMode values.
const (
	MixBlendNormal MixBlendMode = iota
	MixBlendMultiply
	MixBlendScreen
	MixBlendOverlay
	MixBlendDarken
	MixBlendLighten
	MixBlendColorDodge
	MixBlendColorBurn
	MixBlendHardLight
	MixBlendSoftLight
	MixBlendDifference
	MixBlendExclusion
	MixBlendHue
	MixBlendSaturation
	MixBlendColor
	MixBlendLuminosity
	MixBlendPlusLighter
)

var mixBlendModeNames = []string{
	MixBlendNormal:      "normal",
	MixBlendMultiply:    "multiply",
	MixBlendScreen:      "screen",
	MixBlendOverlay:     "overlay",
	MixBlendDarken:      "darken",
	MixBlendLighten:     "lighten",
	MixBlendColorDodge:  "color-dodge",
	MixBlendColorBurn:   "color-burn",
	MixBlendHardLight:   "hard-light",
	MixBlendSoftLight:   "soft-light",
	MixBlendDifference:  "difference",
	MixBlendExclusion:   "exclusion",
	MixBlendHue:         "hue",
	MixBlendSaturation:  "saturation",
	MixBlendColor:       "color",
	MixBlendLuminosity:  "luminosity",
	MixBlendPlusLighter: "plus-lighter",
}

func (v MixBlendMode) String() string { return enumName(mixBlendModeNames, "mix-blend-mode", uint8(v)) }

// MarshalText encodes v as its CSS keyword.
func (v MixBlendMode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText parses a CSS keyword.
func (v *MixBlendMode) UnmarshalText(b []byte) error {
	n, err := enumParse(mixBlendModeNames, "mix-blend-mode", string(b))
	*v = MixBlendMode(n)
	return err
}

// BorderStyle is the border-*-style keyword.
type BorderStyle uint8

// BorderStyle values.
const (
	BorderStyleNone BorderStyle = iota
	BorderStyleSolid
	BorderStyleDouble
	BorderStyleDotted
	BorderStyleDashed
	BorderStyleHidden
	BorderStyleGroove
	BorderStyleRidge
	BorderStyleInset
	BorderStyleOutset
)

var borderStyleNames = []string{
	BorderStyleNone:   "none",
	BorderStyleSolid:  "solid",
	BorderStyleDouble: "double",
	BorderStyleDotted: "dotted",
	BorderStyleDashed: "dashed",
	BorderStyleHidden: "hidden",
	BorderStyleGroove: "groove",
	BorderStyleRidge:  "ridge",
	BorderStyleInset:  "inset",
	BorderStyleOutset: "outset",
}

func (v BorderStyle) String() string { return enumName(borderStyleNames, "border-style", uint8(v)) }

// MarshalText encodes v as its CSS keyword.
func (v BorderStyle) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText parses a CSS keyword.
func (v *BorderStyle) UnmarshalText(b []byte) error {
	n, err := enumParse(borderStyleNames, "border-style", string(b))
	*v = BorderStyle(n)
	return err
}

// BoxShadowClipMode selects whether a box shadow is drawn outside or inside the box.
type BoxShadowClipMode uint8

// BoxShadowClipMode values.
const (
	ShadowClipOutset BoxShadowClipMode = iota
	ShadowClipInset
)

var boxShadowClipModeNames = []string{
	ShadowClipOutset: "outset",
	ShadowClipInset:  "inset",
}

func (v BoxShadowClipMode) String() string { return enumName(boxShadowClipModeNames, "box-shadow clip mode", uint8(v)) }

// MarshalText encodes v as its CSS keyword.
func (v BoxShadowClipMode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText parses a CSS keyword.
func (v *BoxShadowClipMode) UnmarshalText(b []byte) error {
	n, err := enumParse(boxShadowClipModeNames, "box-shadow clip mode", string(b))
	*v = BoxShadowClipMode(n)
	return err
}

// ExtendMode is the gradient extend mode.
type ExtendMode uint8

// ExtendMode values.
const (
	ExtendClamp ExtendMode = iota
	ExtendRepeat
)

var extendModeNames = []string{
	ExtendClamp:  "clamp",
	ExtendRepeat: "repeat",
}

func (v ExtendMode) String() string { return enumName(extendModeNames, "extend mode", uint8(v)) }

// MarshalText encodes v as its CSS keyword.
func (v ExtendMode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText parses a CSS keyword.
func (v *ExtendMode) UnmarshalText(b []byte) error {
	n, err := enumParse(extendModeNames, "extend mode", string(b))
	*v = ExtendMode(n)
	return err
}

// Shape is the radial gradient shape.
type Shape uint8

// Shape values.
const (
	ShapeEllipse Shape = iota
	ShapeCircle
)

var shapeNames = []string{
	ShapeEllipse: "ellipse",
	ShapeCircle:  "circle",
}

func (v Shape) String() string { return enumName(shapeNames, "shape", uint8(v)) }

// MarshalText encodes v as its CSS keyword.
func (v Shape) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText parses a CSS keyword.
func (v *Shape) UnmarshalText(b []byte) error {
	n, err := enumParse(shapeNames, "shape", string(b))
	*v = Shape(n)
	return err
}

// RadialGradientSize is the radial gradient ending-shape size keyword.
type RadialGradientSize uint8

// RadialGradientSize values.
const (
	RadialSizeClosestSide RadialGradientSize = iota
	RadialSizeClosestCorner
	RadialSizeFarthestSide
	RadialSizeFarthestCorner
)

var radialGradientSizeNames = []string{
	RadialSizeClosestSide:    "closest-side",
	RadialSizeClosestCorner:  "closest-corner",
	RadialSizeFarthestSide:   "farthest-side",
	RadialSizeFarthestCorner: "farthest-corner",
}

func (v RadialGradientSize) String() string { return enumName(radialGradientSizeNames, "radial size", uint8(v)) }

// MarshalText encodes v as its CSS keyword.
func (v RadialGradientSize) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText parses a CSS keyword.
func (v *RadialGradientSize) UnmarshalText(b []byte) error {
	n, err := enumParse(radialGradientSizeNames, "radial size", string(b))
	*v = RadialGradientSize(n)
	return err
}

// DirectionCorner is a side or corner a linear gradient points to.
type DirectionCorner uint8

// DirectionCorner values.
const (
	CornerRight DirectionCorner = iota
	CornerLeft
	CornerTop
	CornerBottom
	CornerTopRight
	CornerTopLeft
	CornerBottomRight
	CornerBottomLeft
)

var directionCornerNames = []string{
	CornerRight:       "right",
	CornerLeft:        "left",
	CornerTop:         "top",
	CornerBottom:      "bottom",
	CornerTopRight:    "top right",
	CornerTopLeft:     "top left",
	CornerBottomRight: "bottom right",
	CornerBottomLeft:  "bottom left",
}

func (v DirectionCorner) String() string { return enumName(directionCornerNames, "direction corner", uint8(v)) }

// MarshalText encodes v as its CSS keyword.
func (v DirectionCorner) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText parses a CSS keyword.
func (v *DirectionCorner) UnmarshalText(b []byte) error {
	n, err := enumParse(directionCornerNames, "direction corner", string(b))
	*v = DirectionCorner(n)
	return err
}

// StyleBackgroundRepeat is the background-repeat keyword.
type StyleBackgroundRepeat uint8

// StyleBackgroundRepeat values.
const (
	RepeatNoRepeat StyleBackgroundRepeat = iota
	RepeatRepeat
	RepeatRepeatX
	RepeatRepeatY
)

var styleBackgroundRepeatNames = []string{
	RepeatNoRepeat: "no-repeat",
	RepeatRepeat:   "repeat",
	RepeatRepeatX:  "repeat-x",
	RepeatRepeatY:  "repeat-y",
}

func (v StyleBackgroundRepeat) String() string { return enumName(styleBackgroundRepeatNames, "background-repeat", uint8(v)) }

// MarshalText encodes v as its CSS keyword.
func (v StyleBackgroundRepeat) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText parses a CSS keyword.
func (v *StyleBackgroundRepeat) UnmarshalText(b []byte) error {
	n, err := enumParse(styleBackgroundRepeatNames, "background-repeat", string(b))
	*v = StyleBackgroundRepeat(n)
	return err
}
