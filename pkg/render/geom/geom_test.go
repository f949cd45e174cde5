package geom

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p, q := Pt(1, 2), Pt(4, 6)
	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"Add", p.Add(q), Pt(5, 8)},
		{"Sub", q.Sub(p), Pt(3, 4)},
		{"Scale", p.Scale(-2), Pt(-2, -4)},
		{"Lerp 0", p.Lerp(q, 0), p},
		{"Lerp 1", p.Lerp(q, 1), q},
		{"Lerp half", p.Lerp(q, 0.5), Pt(2.5, 4)},
		{"Round", Pt(1.5, -2.4).Round(), Pt(2, -2)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestPointFinite(t *testing.T) {
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(math.NaN(), 0), false},
		{Pt(0, math.Inf(-1)), false},
	}
	for _, tt := range tests {
		if got := tt.p.Finite(); got != tt.want {
			t.Errorf("%v.Finite() = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestSegment(t *testing.T) {
	s := Segment{A: Pt(0, 0), B: Pt(3, 4)}
	if got := s.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := s.Midpoint(); got != Pt(1.5, 2) {
		t.Errorf("Midpoint() = %v, want (1.5, 2)", got)
	}
}

func TestSize(t *testing.T) {
	box := Size{W: 100, H: 20}
	if !(Size{W: 100, H: 20}).Fits(box) {
		t.Error("equal size should fit")
	}
	if (Size{W: 101, H: 1}).Fits(box) {
		t.Error("wider size should not fit")
	}
	if got := (Size{W: 3, H: 4}).Scale(2); got != (Size{W: 6, H: 8}) {
		t.Errorf("Scale(2) = %v", got)
	}
}
