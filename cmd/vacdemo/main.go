// Command vacdemo builds a small animated document, simulates sketch
// gestures against it, and renders the animation to PNG frames.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	vac "github.com/gogpu/vac"
	"github.com/gogpu/vac/config"
	"github.com/gogpu/vac/render"
	"github.com/gogpu/vac/scene"
	"github.com/gogpu/vac/view"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML configuration file")
		outDir     = flag.String("out", "frames", "output directory for PNG frames")
		frames     = flag.Int("frames", 24, "number of frames to render")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *verbose || cfg.LogLevel == "debug" {
		vac.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	s := scene.NewScene(scene.WithHistoryDepth(cfg.History.Depth))
	s.Background().SetData(cfg.BackgroundData())

	last := vac.Frame(*frames - 1)
	buildAnimation(s, last)
	sketchOverlay(s, cfg.Canvas.Width, cfg.Canvas.Height)

	if err := os.MkdirAll(*outDir, 0o750); err != nil {
		log.Fatalf("Failed to create %s: %v", *outDir, err)
	}

	r := render.NewSceneRenderer(render.WithFrameCacheCapacity(cfg.Render.FrameCacheCapacity))
	for i := 0; i < *frames; i++ {
		pm := r.Render(s, vac.Frame(i), vac.Identity(), cfg.Canvas.Width, cfg.Canvas.Height)
		path := filepath.Join(*outDir, fmt.Sprintf("frame%03d.png", i))
		if err := pm.SavePNG(path); err != nil {
			log.Fatalf("Failed to save %s: %v", path, err)
		}
	}

	stats := r.CacheStats()
	log.Printf("Rendered %d frames to %s (cache: %d hits, %d misses)\n",
		*frames, *outDir, stats.Hits, stats.Misses)
}

// buildAnimation creates a bouncing stroke: an edge whose keyframed
// curve arcs across the canvas between frame 0 and last.
func buildAnimation(s *scene.Scene, last vac.Frame) {
	lifetime := vac.FrameRange{Min: 0, Max: last}

	v0, err := s.CreateVertex(lifetime,
		vac.KeyVertexGeometry{Frame: 0, Pos: vac.Pt(100, 500), Width: 10},
		vac.KeyVertexGeometry{Frame: last, Pos: vac.Pt(100, 150), Width: 10},
	)
	if err != nil {
		log.Fatalf("Failed to create vertex: %v", err)
	}
	v1, err := s.CreateVertex(lifetime,
		vac.KeyVertexGeometry{Frame: 0, Pos: vac.Pt(700, 500), Width: 10},
		vac.KeyVertexGeometry{Frame: last, Pos: vac.Pt(700, 150), Width: 10},
	)
	if err != nil {
		log.Fatalf("Failed to create vertex: %v", err)
	}

	if _, err := s.CreateEdge(lifetime, v0, v1,
		vac.KeyEdgeGeometry{Frame: 0, Curve: arc(100, 500, 700, 500, -120, 8)},
		vac.KeyEdgeGeometry{Frame: last, Curve: arc(100, 150, 700, 150, 120, 8)},
	); err != nil {
		log.Fatalf("Failed to create edge: %v", err)
	}
	s.EmitCheckpoint()
}

// arc samples a parabolic arc from (x0, y0) to (x1, y1) bulging by h.
func arc(x0, y0, x1, y1, h, width float64) vac.EdgeCurve {
	var c vac.EdgeCurve
	const n = 32
	for i := 0; i <= n; i++ {
		t := float64(i) / n
		x := x0 + (x1-x0)*t
		y := y0 + (y1-y0)*t + h*4*t*(1-t)
		c.Append(vac.Pt(x, y), width)
	}
	return c
}

// sketchOverlay drives the interactive tool stack headlessly: one
// committed stroke, and one cancelled mid-gesture that leaves no trace.
func sketchOverlay(s *scene.Scene, width, height int) {
	v := view.NewView2D(s, width, height)
	defer v.Close()
	v.AddAction(view.NewPanAction(v))
	v.AddAction(view.NewSketchAction(v, 6))

	// A sine stroke across the top of the canvas.
	v.MousePress(v.Event(vac.Pt(60, 60), view.ButtonLeft, 0))
	for i := 1; i <= 40; i++ {
		x := 60 + float64(i)*float64(width-120)/40
		y := 60 + 30*math.Sin(float64(i)/4)
		v.MouseMove(v.Event(vac.Pt(x, y), view.ButtonLeft, 0))
	}
	v.MouseRelease(v.Event(vac.Pt(float64(width-60), 60), view.ButtonLeft, 0))

	// This one is abandoned; the document never sees it.
	v.MousePress(v.Event(vac.Pt(10, 10), view.ButtonLeft, 0))
	v.MouseMove(v.Event(vac.Pt(400, 400), view.ButtonLeft, 0))
	v.CancelGesture()
}
