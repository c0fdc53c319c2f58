package scene

import (
	"testing"

	vac "github.com/gogpu/vac"
)

func TestBackground_Defaults(t *testing.T) {
	b := NewBackground()

	if got, want := b.Color(), vac.RGB(1, 1, 1); got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}
	if b.ImageURL() != "" {
		t.Errorf("ImageURL() = %q, want empty", b.ImageURL())
	}
	if got, want := b.Size(), vac.V2(1280, 720); got != want {
		t.Errorf("Size() = %v, want %v", got, want)
	}
	if b.SizeType() != SizeCover {
		t.Errorf("SizeType() = %v, want SizeCover", b.SizeType())
	}
	if b.RepeatType() != NoRepeat {
		t.Errorf("RepeatType() = %v, want NoRepeat", b.RepeatType())
	}
	if b.Opacity() != 1 {
		t.Errorf("Opacity() = %v, want 1", b.Opacity())
	}
	if !b.Hold() {
		t.Error("Hold() = false, want true")
	}
}

func TestBackground_SettersNotify(t *testing.T) {
	b := NewBackground()
	changes := 0
	b.Subscribe(func() { changes++ })

	b.SetColor(vac.RGB(0, 0, 0))
	b.SetOpacity(0.5)
	b.SetHold(false)

	if changes != 3 {
		t.Errorf("changes = %d, want 3", changes)
	}
}

func TestBackground_NoOpSetterDoesNotNotify(t *testing.T) {
	b := NewBackground()
	changes := 0
	b.Subscribe(func() { changes++ })

	b.SetColor(b.Color())
	b.SetOpacity(b.Opacity())
	b.SetHold(b.Hold())
	b.SetData(b.Data())

	if changes != 0 {
		t.Errorf("changes = %d for no-op setters, want 0", changes)
	}
}

func TestBackground_SetImageURLFixesUp(t *testing.T) {
	b := NewBackground()
	b.SetImageURL("bg**.png")
	if got, want := b.ImageURL(), "bg*.png"; got != want {
		t.Errorf("ImageURL() = %q, want %q", got, want)
	}
}

func TestBackground_SetOpacityClamps(t *testing.T) {
	b := NewBackground()

	b.SetOpacity(2)
	if b.Opacity() != 1 {
		t.Errorf("Opacity() = %v after SetOpacity(2), want 1", b.Opacity())
	}
	b.SetOpacity(-1)
	if b.Opacity() != 0 {
		t.Errorf("Opacity() = %v after SetOpacity(-1), want 0", b.Opacity())
	}
}
