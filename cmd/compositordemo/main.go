// Command compositordemo renders an animated scene through the compositor
// on a headless device and prints per-frame stats.
//
// Usage:
//
//	compositordemo -options compositor.toml -frames 120 -watch
//
// With -watch, edits to the options file change the renderer's debug flags
// while the demo runs.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gogpu/compositor"
	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/internal/halgpu"
	"github.com/gogpu/compositor/render"
	"github.com/gogpu/compositor/resources"
	"github.com/gogpu/compositor/style"
)

var (
	demoDoc      = resources.DocumentID{Namespace: 1, ID: 1}
	demoPipeline = resources.PipelineID{Namespace: 1, Index: 1}
)

func main() {
	var (
		width    = flag.Int("width", 800, "framebuffer width")
		height   = flag.Int("height", 600, "framebuffer height")
		hidpi    = flag.Float64("hidpi", 1, "device pixel ratio")
		frames   = flag.Int("frames", 60, "frames to render")
		interval = flag.Duration("interval", 16*time.Millisecond, "delay between frames")
		optsPath = flag.String("options", "", "TOML renderer options")
		watch    = flag.Bool("watch", false, "reload debug flags when the options file changes")
		backend  = flag.String("device", "noop", "device backend: noop or recording")
		capture  = flag.String("capture", "", "save a capture of the last frame to this file")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	compositor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	opts := render.DefaultOptions()
	if *optsPath != "" {
		var err error
		if opts, err = render.LoadOptions(*optsPath); err != nil {
			log.Fatalf("Failed to load options: %v", err)
		}
	}

	dev, closeDev, err := openDevice(*backend)
	if err != nil {
		log.Fatalf("Failed to open device: %v", err)
	}
	defer closeDev()

	r, err := render.NewRenderer(dev, opts)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *watch && *optsPath != "" {
		w, err := watchOptions(ctx, *optsPath, r.Channel())
		if err != nil {
			log.Fatalf("Failed to watch options: %v", err)
		}
		defer w.Close()
	}

	tiles := compositor.NewTileFrameBuilder(style.ColorF{R: 0.1, G: 0.1, B: 0.15, A: 1})
	scenes := compositor.NewSceneBuilder(r.Channel(), tiles)
	size := geom.DeviceIntSize{
		Width:  int32(float64(*width) * *hidpi),
		Height: int32(float64(*height) * *hidpi),
	}

	var total render.RendererStats
	rendered := 0
	for i := 0; i < *frames; i++ {
		if ctx.Err() != nil {
			break
		}
		txn := compositor.Transaction{
			Document:    demoDoc,
			Pipeline:    demoPipeline,
			Epoch:       resources.Epoch(i + 1),
			DisplayList: demoScene(float32(*width), float32(*height), i),
			HiDPI:       float32(*hidpi),
		}
		if _, err := scenes.Build(ctx, txn); err != nil {
			log.Fatalf("Frame %d: build: %v", i, err)
		}
		if err := r.Update(); err != nil {
			log.Printf("Frame %d: update: %v", i, err)
		}
		res, err := r.Render(&size, 0)
		if err != nil {
			log.Printf("Frame %d: render: %v", i, err)
		}
		if res.Rendered {
			rendered++
			total.TotalDrawCalls += res.Stats.TotalDrawCalls
			total.PictureTileCount += res.Stats.PictureTileCount
			total.TotalTime += res.Stats.TotalTime
		}
		if *interval > 0 {
			time.Sleep(*interval)
		}
	}

	if *capture != "" {
		if err := r.Channel().Send(ctx, render.DebugOutput{Request: render.SaveCapture{Path: *capture}}); err != nil {
			log.Fatalf("Failed to request capture: %v", err)
		}
		if err := r.Update(); err != nil {
			log.Fatalf("Failed to save capture: %v", err)
		}
		log.Printf("Capture saved to %s", *capture)
	}

	fmt.Printf("device:      %s\n", dev.Capabilities().DeviceName)
	fmt.Printf("frames:      %d rendered of %d\n", rendered, *frames)
	fmt.Printf("draw calls:  %d\n", total.TotalDrawCalls)
	fmt.Printf("tiles:       %d\n", total.PictureTileCount)
	if rendered > 0 {
		fmt.Printf("frame time:  %v avg\n", total.TotalTime/time.Duration(rendered))
	}
	if ep, ok := r.CurrentEpoch(demoDoc, demoPipeline); ok {
		fmt.Printf("epoch:       %d\n", ep)
	}
}

// openDevice returns the device and the func releasing it.
func openDevice(name string) (render.Device, func(), error) {
	switch name {
	case "noop":
		d, err := halgpu.OpenNoop(halgpu.Config{})
		if err != nil {
			return nil, nil, err
		}
		return d, d.Destroy, nil
	case "recording":
		d := render.NewRecordingDevice(render.DeviceCapabilities{
			MaxTextureSize:       8192,
			SupportsPartialClear: true,
			DeviceName:           "recording",
		})
		return d, func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown device %q", name)
}
