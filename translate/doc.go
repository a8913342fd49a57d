// Package translate lowers a cached display list into a built display list.
//
// Every frame becomes a reference frame placed according to its position
// scheme. Its content is drawn under clips derived from the frame's border
// radius, and its children are visited inside the frame's space. The walk
// uses an explicit work stack, so tree depth does not grow the goroutine
// stack.
//
// Typical usage:
//
//	dl, err := translate.Translate(cached, pipeline, 2.0)
//	if err != nil {
//	    return err
//	}
//	renderer.Publish(dl)
package translate
