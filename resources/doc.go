// Package resources defines the identifiers and update protocol for fonts,
// font instances and images shared between a scene producer and the renderer.
//
// A producer describes changes as [ResourceUpdate] values. [TranslateUpdates]
// lowers them to renderer [Command]s, packing keys and validating image
// formats. A [Catalog] tracks which keys are live so that display list
// translation can reject references to resources that were never added or
// have already been deleted.
//
// Fonts travel as [FontRef] handles: immutable, parsed once, and shared
// between goroutines with an atomic reference count.
package resources
