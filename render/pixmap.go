// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"image/png"
	"os"

	vac "github.com/gogpu/vac"
)

// Pixmap is a rectangular RGBA pixel buffer, 4 bytes per pixel.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int { return p.height }

// Data returns the raw pixel data in RGBA order.
func (p *Pixmap) Data() []uint8 { return p.data }

// SetPixel sets the color of a single pixel. Out-of-bounds writes are
// dropped.
func (p *Pixmap) SetPixel(x, y int, c vac.RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = channel(c.R)
	p.data[i+1] = channel(c.G)
	p.data[i+2] = channel(c.B)
	p.data[i+3] = channel(c.A)
}

// BlendPixel source-over composites c onto the pixel at (x, y).
func (p *Pixmap) BlendPixel(x, y int, c vac.RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height || c.A <= 0 {
		return
	}
	if c.A >= 1 {
		p.SetPixel(x, y, c)
		return
	}
	i := (y*p.width + x) * 4
	inv := 1 - c.A
	dr := float64(p.data[i+0]) / 255
	dg := float64(p.data[i+1]) / 255
	db := float64(p.data[i+2]) / 255
	da := float64(p.data[i+3]) / 255
	p.data[i+0] = channel(c.R*c.A + dr*inv)
	p.data[i+1] = channel(c.G*c.A + dg*inv)
	p.data[i+2] = channel(c.B*c.A + db*inv)
	p.data[i+3] = channel(c.A + da*inv)
}

// GetPixel returns the color of a single pixel, or transparent black
// out of bounds.
func (p *Pixmap) GetPixel(x, y int) vac.RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return vac.RGBA{}
	}
	i := (y*p.width + x) * 4
	return vac.RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// Clear fills the entire pixmap with c.
func (p *Pixmap) Clear(c vac.RGBA) {
	r, g, b, a := channel(c.R), channel(c.G), channel(c.B), channel(c.A)
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// Clone returns an independent copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := NewPixmap(p.width, p.height)
	copy(c.data, p.data)
	return c
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

func channel(v float64) uint8 {
	v *= 255
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
