package vac

import (
	"math"
	"testing"
)

func TestMatrix_Identity(t *testing.T) {
	p := Pt(3, 4)
	if got := Identity().Apply(p); got != p {
		t.Errorf("Identity().Apply(%v) = %v, want unchanged", p, got)
	}
}

func TestMatrix_Apply(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{"translate", Translate(10, -5), Pt(1, 1), Pt(11, -4)},
		{"scale", Scale(2, 3), Pt(4, 5), Pt(8, 15)},
		{"rotate 90", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Apply(tt.p); !pointsEqual(got, tt.want, epsilon) {
				t.Errorf("Apply(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMatrix_MulOrder(t *testing.T) {
	// Translate-then-scale differs from scale-then-translate.
	m := Scale(2, 2).Mul(Translate(1, 0))
	if got := m.Apply(Pt(0, 0)); !pointsEqual(got, Pt(2, 0), epsilon) {
		t.Errorf("scale-after-translate applied to origin = %v, want (2,0)", got)
	}

	m = Translate(1, 0).Mul(Scale(2, 2))
	if got := m.Apply(Pt(0, 0)); !pointsEqual(got, Pt(1, 0), epsilon) {
		t.Errorf("translate-after-scale applied to origin = %v, want (1,0)", got)
	}
}

func TestMatrix_ApplyVecIgnoresTranslation(t *testing.T) {
	m := Translate(100, 100).Mul(Scale(2, 2))
	got := m.ApplyVec(V2(1, 1))
	if math.Abs(got.X-2) > epsilon || math.Abs(got.Y-2) > epsilon {
		t.Errorf("ApplyVec = %v, want (2,2)", got)
	}
}

func TestMatrix_Invert(t *testing.T) {
	m := Translate(5, 7).Mul(Scale(2, 4)).Mul(Rotate(0.3))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("matrix should be invertible")
	}

	p := Pt(12, -3)
	back := inv.Apply(m.Apply(p))
	if !pointsEqual(back, p, 1e-9) {
		t.Errorf("inv(m(p)) = %v, want %v", back, p)
	}
}

func TestMatrix_InvertSingular(t *testing.T) {
	if _, ok := Scale(0, 1).Invert(); ok {
		t.Error("singular matrix should not invert")
	}
}
