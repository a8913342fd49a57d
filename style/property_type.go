package style

// CssPropertyType names one of the closed set of style properties.
type CssPropertyType uint8

// Property types, in declaration order.
const (
	PropertyTextColor CssPropertyType = iota
	PropertyFontSize
	PropertyFontFamily
	PropertyTextAlign
	PropertyLetterSpacing
	PropertyLineHeight
	PropertyWordSpacing
	PropertyTabWidth
	PropertyCursor
	PropertyDisplay
	PropertyFloat
	PropertyBoxSizing
	PropertyWidth
	PropertyHeight
	PropertyMinWidth
	PropertyMinHeight
	PropertyMaxWidth
	PropertyMaxHeight
	PropertyPosition
	PropertyTop
	PropertyRight
	PropertyLeft
	PropertyBottom
	PropertyFlexWrap
	PropertyFlexDirection
	PropertyFlexGrow
	PropertyFlexShrink
	PropertyJustifyContent
	PropertyAlignItems
	PropertyAlignContent
	PropertyBackgroundContent
	PropertyBackgroundPosition
	PropertyBackgroundSize
	PropertyBackgroundRepeat
	PropertyOverflowX
	PropertyOverflowY
	PropertyPaddingTop
	PropertyPaddingLeft
	PropertyPaddingRight
	PropertyPaddingBottom
	PropertyMarginTop
	PropertyMarginLeft
	PropertyMarginRight
	PropertyMarginBottom
	PropertyBorderTopLeftRadius
	PropertyBorderTopRightRadius
	PropertyBorderBottomLeftRadius
	PropertyBorderBottomRightRadius
	PropertyBorderTopColor
	PropertyBorderRightColor
	PropertyBorderLeftColor
	PropertyBorderBottomColor
	PropertyBorderTopStyle
	PropertyBorderRightStyle
	PropertyBorderLeftStyle
	PropertyBorderBottomStyle
	PropertyBorderTopWidth
	PropertyBorderRightWidth
	PropertyBorderLeftWidth
	PropertyBorderBottomWidth
	PropertyBoxShadowLeft
	PropertyBoxShadowRight
	PropertyBoxShadowTop
	PropertyBoxShadowBottom
	PropertyScrollbarStyle
	PropertyOpacity
	PropertyTransform
	PropertyTransformOrigin
	PropertyPerspectiveOrigin
	PropertyBackfaceVisibility
	PropertyMixBlendMode
	PropertyFilter
	PropertyBackdropFilter
	PropertyTextShadow
	PropertyWhiteSpace
	PropertyDirection
	PropertyHyphens

	propertyTypeCount
)

const (
	flagInheritable uint8 = 1 << iota
	flagRelayout
	flagGPUOnly
)

var (
	lerpPx     = lerp(PixelValue.Interpolate)
	lerpColor  = lerp(ColorU.Interpolate)
	lerpShadow = lerp(StyleBoxShadow.Interpolate)
	scalePx    = scaleValue((*PixelValue).ScaleForDPI)
)

// propertyTable describes every property: its CSS key, cascade flags and the
// value operations the CssProperty methods dispatch through.
var propertyTable = [propertyTypeCount]propertyDescriptor{
	PropertyTextColor:               describe[ColorU]("color", flagInheritable, lerpColor, nil),
	PropertyFontSize:                describe[PixelValue]("font-size", flagInheritable|flagRelayout, lerpPx, scalePx),
	PropertyFontFamily:              describe[[]string]("font-family", flagInheritable|flagRelayout, nil, nil),
	PropertyTextAlign:               describe[StyleTextAlign]("text-align", flagInheritable|flagRelayout, nil, nil),
	PropertyLetterSpacing:           describe[PixelValue]("letter-spacing", flagRelayout, lerpPx, scalePx),
	PropertyLineHeight:              describe[PercentageValue]("line-height", flagInheritable|flagRelayout, lerp(PercentageValue.Interpolate), nil),
	PropertyWordSpacing:             describe[PixelValue]("word-spacing", flagRelayout, lerpPx, scalePx),
	PropertyTabWidth:                describe[PercentageValue]("tab-width", flagRelayout, lerp(PercentageValue.Interpolate), nil),
	PropertyCursor:                  describe[StyleCursor]("cursor", 0, nil, nil),
	PropertyDisplay:                 describe[LayoutDisplay]("display", flagRelayout, nil, nil),
	PropertyFloat:                   describe[LayoutFloat]("float", flagRelayout, nil, nil),
	PropertyBoxSizing:               describe[LayoutBoxSizing]("box-sizing", flagRelayout, nil, nil),
	PropertyWidth:                   describe[PixelValue]("width", flagRelayout, lerpFromRect(PixelValue.Interpolate, currentWidth), scalePx),
	PropertyHeight:                  describe[PixelValue]("height", flagRelayout, lerpFromRect(PixelValue.Interpolate, currentHeight), scalePx),
	PropertyMinWidth:                describe[PixelValue]("min-width", flagRelayout, lerpPx, scalePx),
	PropertyMinHeight:               describe[PixelValue]("min-height", flagRelayout, lerpPx, scalePx),
	PropertyMaxWidth:                describe[PixelValue]("max-width", flagRelayout, lerpPx, scalePx),
	PropertyMaxHeight:               describe[PixelValue]("max-height", flagRelayout, lerpPx, scalePx),
	PropertyPosition:                describe[LayoutPosition]("position", flagRelayout, nil, nil),
	PropertyTop:                     describe[PixelValue]("top", flagRelayout, lerpPx, scalePx),
	PropertyRight:                   describe[PixelValue]("right", flagRelayout, lerpPx, scalePx),
	PropertyLeft:                    describe[PixelValue]("left", flagRelayout, lerpPx, scalePx),
	PropertyBottom:                  describe[PixelValue]("bottom", flagRelayout, lerpPx, scalePx),
	PropertyFlexWrap:                describe[LayoutFlexWrap]("flex-wrap", flagRelayout, nil, nil),
	PropertyFlexDirection:           describe[LayoutFlexDirection]("flex-direction", flagRelayout, nil, nil),
	PropertyFlexGrow:                describe[FloatValue]("flex-grow", flagRelayout, lerp(FloatValue.Interpolate), nil),
	PropertyFlexShrink:              describe[FloatValue]("flex-shrink", flagRelayout, lerp(FloatValue.Interpolate), nil),
	PropertyJustifyContent:          describe[LayoutJustifyContent]("justify-content", flagRelayout, nil, nil),
	PropertyAlignItems:              describe[LayoutAlignItems]("align-items", flagRelayout, nil, nil),
	PropertyAlignContent:            describe[LayoutAlignContent]("align-content", flagRelayout, nil, nil),
	PropertyBackgroundContent:       describe[[]StyleBackgroundContent]("background", 0, nil, nil),
	PropertyBackgroundPosition:      describe[[]StyleBackgroundPosition]("background-position", 0, nil, scaleSlice((*StyleBackgroundPosition).ScaleForDPI)),
	PropertyBackgroundSize:          describe[[]StyleBackgroundSize]("background-size", 0, nil, scaleSlice((*StyleBackgroundSize).ScaleForDPI)),
	PropertyBackgroundRepeat:        describe[[]StyleBackgroundRepeat]("background-repeat", 0, nil, nil),
	PropertyOverflowX:               describe[LayoutOverflow]("overflow-x", flagRelayout, nil, nil),
	PropertyOverflowY:               describe[LayoutOverflow]("overflow-y", flagRelayout, nil, nil),
	PropertyPaddingTop:              describe[PixelValue]("padding-top", flagRelayout, lerpPx, scalePx),
	PropertyPaddingLeft:             describe[PixelValue]("padding-left", flagRelayout, lerpPx, scalePx),
	PropertyPaddingRight:            describe[PixelValue]("padding-right", flagRelayout, lerpPx, scalePx),
	PropertyPaddingBottom:           describe[PixelValue]("padding-bottom", flagRelayout, lerpPx, scalePx),
	PropertyMarginTop:               describe[PixelValue]("margin-top", flagRelayout, lerpPx, scalePx),
	PropertyMarginLeft:              describe[PixelValue]("margin-left", flagRelayout, lerpPx, scalePx),
	PropertyMarginRight:             describe[PixelValue]("margin-right", flagRelayout, lerpPx, scalePx),
	PropertyMarginBottom:            describe[PixelValue]("margin-bottom", flagRelayout, lerpPx, scalePx),
	PropertyBorderTopLeftRadius:     describe[PixelValue]("border-top-left-radius", 0, lerpPx, scalePx),
	PropertyBorderTopRightRadius:    describe[PixelValue]("border-top-right-radius", 0, lerpPx, scalePx),
	PropertyBorderBottomLeftRadius:  describe[PixelValue]("border-bottom-left-radius", 0, lerpPx, scalePx),
	PropertyBorderBottomRightRadius: describe[PixelValue]("border-bottom-right-radius", 0, lerpPx, scalePx),
	PropertyBorderTopColor:          describe[ColorU]("border-top-color", 0, lerpColor, nil),
	PropertyBorderRightColor:        describe[ColorU]("border-right-color", 0, lerpColor, nil),
	PropertyBorderLeftColor:         describe[ColorU]("border-left-color", 0, lerpColor, nil),
	PropertyBorderBottomColor:       describe[ColorU]("border-bottom-color", 0, lerpColor, nil),
	PropertyBorderTopStyle:          describe[BorderStyle]("border-top-style", 0, nil, nil),
	PropertyBorderRightStyle:        describe[BorderStyle]("border-right-style", 0, nil, nil),
	PropertyBorderLeftStyle:         describe[BorderStyle]("border-left-style", 0, nil, nil),
	PropertyBorderBottomStyle:       describe[BorderStyle]("border-bottom-style", 0, nil, nil),
	PropertyBorderTopWidth:          describe[PixelValue]("border-top-width", flagRelayout, lerpPx, scalePx),
	PropertyBorderRightWidth:        describe[PixelValue]("border-right-width", flagRelayout, lerpPx, scalePx),
	PropertyBorderLeftWidth:         describe[PixelValue]("border-left-width", flagRelayout, lerpPx, scalePx),
	PropertyBorderBottomWidth:       describe[PixelValue]("border-bottom-width", flagRelayout, lerpPx, scalePx),
	PropertyBoxShadowLeft:           describe[StyleBoxShadow]("-azul-box-shadow-left", 0, lerpShadow, scaleValue((*StyleBoxShadow).ScaleForDPI)),
	PropertyBoxShadowRight:          describe[StyleBoxShadow]("-azul-box-shadow-right", 0, lerpShadow, scaleValue((*StyleBoxShadow).ScaleForDPI)),
	PropertyBoxShadowTop:            describe[StyleBoxShadow]("-azul-box-shadow-top", 0, lerpShadow, scaleValue((*StyleBoxShadow).ScaleForDPI)),
	PropertyBoxShadowBottom:         describe[StyleBoxShadow]("-azul-box-shadow-bottom", 0, lerpShadow, scaleValue((*StyleBoxShadow).ScaleForDPI)),
	PropertyScrollbarStyle:          describe[ScrollbarStyle]("-azul-scrollbar-style", 0, nil, scaleValue((*ScrollbarStyle).ScaleForDPI)),
	PropertyOpacity:                 describe[PercentageValue]("opacity", flagGPUOnly, lerp(PercentageValue.Interpolate), nil),
	PropertyTransform:               describe[[]StyleTransform]("transform", flagGPUOnly, nil, scaleSlice((*StyleTransform).ScaleForDPI)),
	PropertyTransformOrigin:         describe[StyleTransformOrigin]("transform-origin", 0, lerp(StyleTransformOrigin.Interpolate), scaleValue((*StyleTransformOrigin).ScaleForDPI)),
	PropertyPerspectiveOrigin:       describe[StylePerspectiveOrigin]("perspective-origin", 0, lerp(StylePerspectiveOrigin.Interpolate), scaleValue((*StylePerspectiveOrigin).ScaleForDPI)),
	PropertyBackfaceVisibility:      describe[StyleBackfaceVisibility]("backface-visibility", 0, nil, nil),
	PropertyMixBlendMode:            describe[MixBlendMode]("mix-blend-mode", 0, nil, nil),
	PropertyFilter:                  describe[[]StyleFilter]("filter", 0, nil, scaleSlice((*StyleFilter).ScaleForDPI)),
	PropertyBackdropFilter:          describe[[]StyleFilter]("backdrop-filter", 0, nil, scaleSlice((*StyleFilter).ScaleForDPI)),
	PropertyTextShadow:              describe[StyleBoxShadow]("text-shadow", 0, lerpShadow, scaleValue((*StyleBoxShadow).ScaleForDPI)),
	PropertyWhiteSpace:              describe[StyleWhiteSpace]("white-space", flagRelayout, nil, nil),
	PropertyDirection:               describe[StyleDirection]("direction", flagRelayout, nil, nil),
	PropertyHyphens:                 describe[StyleHyphens]("hyphens", flagRelayout, nil, nil),
}
