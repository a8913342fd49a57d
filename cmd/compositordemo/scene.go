package main

import (
	"github.com/chewxy/math32"

	dl "github.com/gogpu/compositor/displaylist"
	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/style"
)

var palette = []style.ColorU{
	style.RGBA(230, 80, 70, 255),
	style.RGBA(90, 200, 120, 255),
	style.RGBA(70, 130, 230, 255),
	style.RGBA(240, 200, 60, 200),
	style.RGBA(180, 90, 220, 160),
}

// demoScene returns a w by h scene of boxes orbiting the center. frame
// drives the animation.
func demoScene(w, h float32, frame int) dl.CachedDisplayList {
	const box = 80
	cx, cy := w/2-box/2, h/2-box/2
	radius := math32.Min(w, h) / 3
	t := float32(frame) / 30

	children := make([]dl.DisplayListMsg, 0, len(palette))
	for i, c := range palette {
		a := t + float32(i)*2*math32.Pi/float32(len(palette))
		children = append(children, &dl.DisplayListFrame{
			Size:     geom.Sz(box, box),
			Position: dl.Absolute(cx+radius*math32.Cos(a), cy+radius*math32.Sin(a)),
			Content:  []dl.LayoutRectContent{dl.Background{Content: dl.ColorLayer(c)}},
		})
	}
	root := &dl.DisplayListFrame{
		Size:     geom.Sz(w, h),
		Content:  []dl.LayoutRectContent{dl.Background{Content: dl.ColorLayer(style.RGBA(24, 26, 38, 255))}},
		Children: children,
	}
	return dl.CachedDisplayList{Root: root, RootSize: root.Size}
}
