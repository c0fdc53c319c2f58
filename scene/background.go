package scene

import (
	vac "github.com/gogpu/vac"
)

// SizeType selects how background images are sized.
type SizeType int

const (
	// SizeCover stretches the background to the canvas.
	SizeCover SizeType = iota
	// SizeManual uses the explicit Size dimensions.
	SizeManual
)

// RepeatType selects how background images tile.
type RepeatType int

const (
	NoRepeat RepeatType = iota
	RepeatX
	RepeatY
	RepeatXY
)

// BackgroundData is the complete value bundle of a background's
// properties. It is a plain comparable struct: checkpoint logic decides
// whether anything changed with a single == comparison.
type BackgroundData struct {
	Color      vac.RGBA
	ImageURL   string
	Position   vac.Vec2
	Size       vac.Vec2
	SizeType   SizeType
	RepeatType RepeatType
	Opacity    float64
	Hold       bool
}

// DefaultBackgroundData returns the background of a fresh document:
// opaque white, no image, covering the canvas, holding previous frames.
func DefaultBackgroundData() BackgroundData {
	return BackgroundData{
		Color:      vac.RGB(1, 1, 1),
		Position:   vac.V2(0, 0),
		Size:       vac.V2(1280, 720),
		SizeType:   SizeCover,
		RepeatType: NoRepeat,
		Opacity:    1.0,
		Hold:       true,
	}
}

// Background is the per-document, time-varying image/color underlay.
// One instance exists per Scene, created with the document and destroyed
// with it. Property edits go through setters, each of which fires the
// background's changed signal (and, via the owning Scene's subscription,
// the Scene's). Widget layers bind to the signal; they never hold state
// the Background does not.
type Background struct {
	data    BackgroundData
	changed Signal
}

// NewBackground creates a background with default properties.
func NewBackground() *Background {
	return &Background{data: DefaultBackgroundData()}
}

// Subscribe registers a callback fired after every property change.
func (b *Background) Subscribe(fn func()) Token { return b.changed.Subscribe(fn) }

// Unsubscribe removes a change subscription.
func (b *Background) Unsubscribe(t Token) { b.changed.Unsubscribe(t) }

// Data returns the full property bundle.
func (b *Background) Data() BackgroundData { return b.data }

// SetData replaces the full property bundle.
func (b *Background) SetData(d BackgroundData) {
	if b.data == d {
		return
	}
	b.data = d
	b.changed.Emit()
}

// Color returns the background color.
func (b *Background) Color() vac.RGBA { return b.data.Color }

// SetColor sets the background color, possibly transparent.
func (b *Background) SetColor(c vac.RGBA) {
	if b.data.Color == c {
		return
	}
	b.data.Color = c
	b.changed.Emit()
}

// ImageURL returns the background image URL pattern.
func (b *Background) ImageURL() string { return b.data.ImageURL }

// SetImageURL sets the background image URL pattern. The pattern may
// contain one '*' wildcard, substituted per frame with the frame number;
// malformed input is auto-corrected with FixupImageURL.
func (b *Background) SetImageURL(url string) {
	url = FixupImageURL(url)
	if b.data.ImageURL == url {
		return
	}
	b.data.ImageURL = url
	b.changed.Emit()
}

// Position returns the top-left corner of background images.
func (b *Background) Position() vac.Vec2 { return b.data.Position }

// SetPosition sets the top-left corner of background images.
func (b *Background) SetPosition(p vac.Vec2) {
	if b.data.Position == p {
		return
	}
	b.data.Position = p
	b.changed.Emit()
}

// Size returns the manual background image size.
func (b *Background) Size() vac.Vec2 { return b.data.Size }

// SetSize sets the manual background image size.
func (b *Background) SetSize(s vac.Vec2) {
	if b.data.Size == s {
		return
	}
	b.data.Size = s
	b.changed.Emit()
}

// SizeType returns how background images are sized.
func (b *Background) SizeType() SizeType { return b.data.SizeType }

// SetSizeType sets how background images are sized.
func (b *Background) SetSizeType(t SizeType) {
	if b.data.SizeType == t {
		return
	}
	b.data.SizeType = t
	b.changed.Emit()
}

// RepeatType returns how background images tile.
func (b *Background) RepeatType() RepeatType { return b.data.RepeatType }

// SetRepeatType sets how background images tile.
func (b *Background) SetRepeatType(t RepeatType) {
	if b.data.RepeatType == t {
		return
	}
	b.data.RepeatType = t
	b.changed.Emit()
}

// Opacity returns the background image opacity. This does not affect the
// background color; use the color's alpha for that.
func (b *Background) Opacity() float64 { return b.data.Opacity }

// SetOpacity sets the background image opacity, clamped to [0, 1].
func (b *Background) SetOpacity(o float64) {
	if o < 0 {
		o = 0
	} else if o > 1 {
		o = 1
	}
	if b.data.Opacity == o {
		return
	}
	b.data.Opacity = o
	b.changed.Emit()
}

// Hold reports whether missing wildcard frames show the nearest earlier
// frame's image instead of the fallback.
func (b *Background) Hold() bool { return b.data.Hold }

// SetHold sets the hold flag.
func (b *Background) SetHold(h bool) {
	if b.data.Hold == h {
		return
	}
	b.data.Hold = h
	b.changed.Emit()
}
