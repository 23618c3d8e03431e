package utils

import (
	"image"
	"image/color"
	"testing"
)

func TestClamp01(t *testing.T) {
	for in, want := range map[float64]float64{-1: 0, 0.3: 0.3, 2: 1} {
		if got := Clamp01(in); got != want {
			t.Errorf("Clamp01(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestLerpIntTruncates(t *testing.T) {
	tests := []struct {
		start, end int
		t          float64
		want       int
	}{
		{0, 10, 0.55, 5},
		{10, 0, 0.55, 5},   // -5.5 截断为 -5
		{0, -10, 0.55, -5}, // 向零截断
		{100, 200, 1, 200},
		{100, 200, 0, 100},
	}

	for _, tt := range tests {
		if got := LerpInt(tt.start, tt.end, tt.t); got != tt.want {
			t.Errorf("LerpInt(%d, %d, %v) = %d, want %d", tt.start, tt.end, tt.t, got, tt.want)
		}
	}

	got := LerpPoint(image.Pt(0, 100), image.Pt(10, 0), 0.5)
	if got != image.Pt(5, 50) {
		t.Errorf("LerpPoint = %v, want (5,50)", got)
	}
	if Lerp(2, 4, 0.5) != 3 {
		t.Errorf("Lerp(2, 4, 0.5) = %v", Lerp(2, 4, 0.5))
	}
}

func TestScaleColor(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}

	if got := ScaleColor(white, 1); got != white {
		t.Errorf("ScaleColor(white, 1) = %v", got)
	}
	if got := ScaleColor(white, 0); got != (color.RGBA{}) {
		t.Errorf("ScaleColor(white, 0) = %v", got)
	}
	if got := ScaleColor(white, 0.5); got != (color.RGBA{127, 127, 127, 127}) {
		t.Errorf("ScaleColor(white, 0.5) = %v", got)
	}
	if got := ScaleColor(white, 2); got != white {
		t.Errorf("ScaleColor(white, 2) = %v, want clamped white", got)
	}
}
