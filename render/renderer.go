// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"math"

	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"

	vac "github.com/gogpu/vac"
	"github.com/gogpu/vac/cache"
	"github.com/gogpu/vac/scene"
)

// strokeColor is the fill of edges and vertices. Documents carry no
// per-cell style yet.
var strokeColor = vac.RGB(0, 0, 0)

// frameKey identifies one rendered frame. Two renders with equal keys
// produce identical pixels, so the frame cache never goes stale: any
// scene change bumps the revision.
type frameKey struct {
	doc      uuid.UUID
	revision uint64
	frame    uint64 // math.Float64bits of the frame
	view     vac.Matrix
	width    int
	height   int
}

// SceneRenderer rasterizes scenes into pixmaps, caching finished frames
// by scene revision.
//
// Rendering reads the scene but never writes it; interleaving renders
// with edits on the same goroutine is safe.
type SceneRenderer struct {
	frames *cache.LRU[frameKey, *Pixmap]
	images *scene.ImageCache
}

// RendererOption configures a SceneRenderer.
type RendererOption func(*SceneRenderer)

// DefaultFrameCacheCapacity bounds the number of cached frames.
const DefaultFrameCacheCapacity = 64

// WithFrameCacheCapacity sets how many rendered frames are kept.
func WithFrameCacheCapacity(n int) RendererOption {
	return func(r *SceneRenderer) {
		r.frames = cache.NewLRU[frameKey, *Pixmap](n)
	}
}

// WithImageCache supplies the cache background images are loaded from.
// Without one, backgrounds render as flat color.
func WithImageCache(c *scene.ImageCache) RendererOption {
	return func(r *SceneRenderer) { r.images = c }
}

// NewSceneRenderer returns a renderer with an empty frame cache.
func NewSceneRenderer(opts ...RendererOption) *SceneRenderer {
	r := &SceneRenderer{
		frames: cache.NewLRU[frameKey, *Pixmap](DefaultFrameCacheCapacity),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CacheStats reports frame cache hits, misses and evictions.
func (r *SceneRenderer) CacheStats() cache.Stats { return r.frames.Stats() }

// ClearCache drops every cached frame.
func (r *SceneRenderer) ClearCache() { r.frames.Clear() }

// Render rasterizes s at frame f through the view transform into a
// width x height pixmap. Repeated calls with an unchanged scene return
// the same cached pixmap; callers must treat it as read-only.
func (r *SceneRenderer) Render(s *scene.Scene, f vac.Frame, view vac.Matrix, width, height int) *Pixmap {
	key := frameKey{
		doc:      s.ID(),
		revision: s.Revision(),
		frame:    math.Float64bits(float64(f)),
		view:     view,
		width:    width,
		height:   height,
	}
	if pm, ok := r.frames.Get(key); ok {
		return pm
	}

	pm := NewPixmap(width, height)
	r.drawBackground(pm, s, f, view)
	r.drawCells(pm, s, f, view)

	r.frames.Set(key, pm)
	return pm
}

func (r *SceneRenderer) drawBackground(pm *Pixmap, s *scene.Scene, f vac.Frame, view vac.Matrix) {
	bg := s.Background()
	pm.Clear(bg.Color())

	if r.images == nil {
		return
	}
	img := r.images.ImageAt(f)
	if img == nil {
		return
	}

	var dst image.Rectangle
	if bg.SizeType() == scene.SizeCover {
		dst = pm.Bounds()
	} else {
		pos := bg.Position()
		size := bg.Size()
		p0 := view.Apply(vac.Pt(pos.X, pos.Y))
		p1 := view.Apply(vac.Pt(pos.X+size.X, pos.Y+size.Y))
		dst = image.Rect(
			int(math.Floor(math.Min(p0.X, p1.X))),
			int(math.Floor(math.Min(p0.Y, p1.Y))),
			int(math.Ceil(math.Max(p0.X, p1.X))),
			int(math.Ceil(math.Max(p0.Y, p1.Y))),
		)
	}
	if dst.Dx() <= 0 || dst.Dy() <= 0 {
		return
	}

	// Scale once, then blend tiles.
	scaled := image.NewRGBA(image.Rect(0, 0, dst.Dx(), dst.Dy()))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	repeatX := bg.RepeatType() == scene.RepeatX || bg.RepeatType() == scene.RepeatXY
	repeatY := bg.RepeatType() == scene.RepeatY || bg.RepeatType() == scene.RepeatXY

	x0, x1 := dst.Min.X, dst.Max.X
	if repeatX {
		w := dst.Dx()
		x0 = dst.Min.X - ((dst.Min.X/w)+1)*w
		x1 = pm.Width() + w
	}
	y0, y1 := dst.Min.Y, dst.Max.Y
	if repeatY {
		h := dst.Dy()
		y0 = dst.Min.Y - ((dst.Min.Y/h)+1)*h
		y1 = pm.Height() + h
	}

	opacity := bg.Opacity()
	for ty := y0; ty < y1; ty += dst.Dy() {
		for tx := x0; tx < x1; tx += dst.Dx() {
			blendImage(pm, scaled, tx, ty, opacity)
		}
	}
}

// blendImage source-over composites src onto pm at offset (ox, oy),
// scaling src's alpha by opacity.
func blendImage(pm *Pixmap, src *image.RGBA, ox, oy int, opacity float64) {
	if opacity <= 0 {
		return
	}
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := vac.FromColor(src.At(x, y))
			pm.BlendPixel(ox+x-b.Min.X, oy+y-b.Min.Y, c.WithAlpha(c.A*opacity))
		}
	}
}

func (r *SceneRenderer) drawCells(pm *Pixmap, s *scene.Scene, f vac.Frame, view vac.Matrix) {
	topo := s.Topology()
	geo := s.Geometry()
	scale := math.Sqrt(math.Abs(view.Det()))

	// Only cells whose lifetime covers f exist at f. The lifetime policy
	// governs frames inside the lifetime but outside the keyframed span.
	// Edges first, vertices on top.
	for _, e := range topo.EdgesAt(f) {
		key, err := geo.EdgeAt(e.ID(), e.Revision(), e.Keys(), f)
		if err != nil {
			vac.Logger().Warn("skipping edge", "cell", e.ID(), "frame", f, "error", err)
			continue
		}
		drawCurve(pm, key.Curve, view, scale)
	}
	for _, v := range topo.VerticesAt(f) {
		key, err := geo.VertexAt(v.ID(), v.Keys(), f)
		if err != nil {
			vac.Logger().Warn("skipping vertex", "cell", v.ID(), "frame", f, "error", err)
			continue
		}
		fillDisc(pm, view.Apply(key.Pos), key.Width/2*scale, strokeColor)
	}
}

// drawCurve stamps round brush discs along the curve, densely enough
// that consecutive stamps overlap into a solid variable-width stroke.
func drawCurve(pm *Pixmap, c vac.EdgeCurve, view vac.Matrix, scale float64) {
	if c.Len() == 0 {
		return
	}
	length := c.Arclength() * scale
	steps := int(math.Ceil(length)) * 2
	if steps < c.Len() {
		steps = c.Len()
	}
	dense := c.Resampled(steps)
	for i := 0; i < dense.Len(); i++ {
		s := dense.Sample(i)
		fillDisc(pm, view.Apply(s.Pos), s.Width/2*scale, strokeColor)
	}
}

// fillDisc rasterizes a filled disc with a one pixel antialiased rim.
func fillDisc(pm *Pixmap, center vac.Point, radius float64, c vac.RGBA) {
	if radius <= 0 {
		pm.BlendPixel(int(center.X), int(center.Y), c)
		return
	}
	x0 := int(math.Floor(center.X - radius - 1))
	x1 := int(math.Ceil(center.X + radius + 1))
	y0 := int(math.Floor(center.Y - radius - 1))
	y1 := int(math.Ceil(center.Y + radius + 1))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - center.X
			dy := float64(y) + 0.5 - center.Y
			d := math.Sqrt(dx*dx+dy*dy) - radius
			switch {
			case d <= 0:
				pm.BlendPixel(x, y, c)
			case d < 1:
				pm.BlendPixel(x, y, c.WithAlpha(c.A*(1-d)))
			}
		}
	}
}
