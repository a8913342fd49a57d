// Package compositor ties the scene side of the compositor to the
// renderer.
//
// A client describes each document as a layout tree and sends it as a
// Transaction. SceneBuilder translates the resource updates and the tree
// into a built display list, hands the list to a FrameBuilder and posts
// the resulting frame to the renderer's channel:
//
//	r, _ := render.NewRenderer(dev, render.DefaultOptions())
//	b := compositor.NewSceneBuilder(r.Channel(), compositor.NewTileFrameBuilder(bg))
//	if _, err := b.Build(ctx, txn); err != nil {
//		return err
//	}
//	_ = r.Update()
//	res, err := r.Render(&size, 0)
//
// TileFrameBuilder is a minimal frame builder that draws solid rects into
// one picture cache tile per document. Hosts with a full frame builder
// plug it in through the FrameBuilder interface.
//
// SetLogger installs one logger for this package and every subpackage.
package compositor
