// Package geom provides the geometry types shared by the compositor.
//
// Logical types (LogicalPoint, LogicalSize, LogicalRect) are f32
// device-independent pixels and are used at every public boundary of the
// translator. Device types (DeviceIntPoint, DeviceIntSize, DeviceIntRect)
// are integer pixels after HiDPI scaling and are used by the renderer for
// scissoring, dirty rects and damage tracking.
//
// Device rects are min/max boxes. A rect whose max is not strictly greater
// than its min on both axes is empty; the union of an empty rect with r is r.
package geom
