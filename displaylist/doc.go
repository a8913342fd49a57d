// Package displaylist defines both ends of display list translation.
//
// The input is a CachedDisplayList: a tree of frames and scroll frames, each
// carrying its size, positioning, border radius, box shadow and content,
// produced by a layout engine in logical pixels.
//
// The output is a BuiltDisplayList: a flat stream of reference frame,
// stacking context, clip and primitive items ready for the renderer. It uses
// a dual-stream layout:
//   - A compact tags stream (1 byte per item)
//   - One payload table per item kind, indexed from the tag stream
//
// A Builder mints spatial and clip ids, checks push/pop discipline and
// records items in order.
package displaylist
