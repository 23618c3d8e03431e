package game

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

// testPNG 编码一张 w×h 的纯蓝图片
func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	blue := color.RGBA{B: 255, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, blue)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error: %v", err)
	}
	return buf.Bytes()
}

func testAssets(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"Menu/SpiderCard.png":   {Data: testPNG(t, 10, 12)},
		"Menu/Broken.png":       {Data: []byte("not a png")},
		"fonts/NotAFont.ttf":    {Data: []byte("garbage")},
		"ThemePacks/A/Undo.png": {Data: testPNG(t, 4, 4)},
	}
}

func testManifest() *ResourceConfig {
	return &ResourceConfig{
		Version:    1,
		ThemePacks: []string{"A"},
		Fonts: map[string]FontSpec{
			FontMenu:       {Size: 36},
			FontStatistics: {File: "fonts/NotAFont.ttf", Size: 18},
			FontAbout:      {File: "fonts/Missing.ttf", Size: 18},
			FontMessage:    {File: "go:regular", Size: 20},
			FontWin:        {File: "go:bold", Size: 40},
			FontAgain:      {File: "go:regular", Size: 40},
		},
	}
}

func TestLoadImage(t *testing.T) {
	rm := NewResourceManager(testAssets(t), testManifest())

	img, err := rm.LoadImage("Menu/SpiderCard.png")
	if err != nil {
		t.Fatalf("LoadImage() error: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(10, 12) {
		t.Errorf("image size = %v, want 10x12", got)
	}

	again, err := rm.LoadImage("Menu/./SpiderCard.png")
	if err != nil {
		t.Fatalf("second LoadImage() error: %v", err)
	}
	if again != img {
		t.Error("LoadImage() did not return the cached image")
	}
	if rm.GetImage("Menu/SpiderCard.png") != img {
		t.Error("GetImage() did not return the cached image")
	}
	if rm.GetImage("Menu/OneSuit.png") != nil {
		t.Error("GetImage() returned an image that was never loaded")
	}
}

func TestLoadImageErrors(t *testing.T) {
	rm := NewResourceManager(testAssets(t), testManifest())

	for _, name := range []string{"Menu/Missing.png", "Menu/Broken.png"} {
		if _, err := rm.LoadTexture(name); !errors.Is(err, ErrResourceLoad) {
			t.Errorf("LoadTexture(%s) error = %v, want ErrResourceLoad", name, err)
		}
	}
}

func TestLoadFont(t *testing.T) {
	rm := NewResourceManager(testAssets(t), testManifest())

	face, err := rm.LoadFont(FontMenu)
	if err != nil {
		t.Fatalf("LoadFont(builtin) error: %v", err)
	}
	if w, h := face.MeasureString("abc"); w <= 0 || h <= 0 {
		t.Errorf("builtin face measured %vx%v", w, h)
	}
	cached, _ := rm.LoadFont(FontMenu)
	if cached != face {
		t.Error("LoadFont() did not cache the face")
	}

	tests := []struct {
		id   string
		desc string
	}{
		{FontStatistics, "invalid font data"},
		{FontAbout, "missing font file"},
		{"undeclared", "unknown id"},
	}
	for _, tt := range tests {
		if _, err := rm.LoadFont(tt.id); !errors.Is(err, ErrResourceLoad) {
			t.Errorf("%s: LoadFont(%s) error = %v, want ErrResourceLoad", tt.desc, tt.id, err)
		}
	}
}

func TestLoadGoFont(t *testing.T) {
	rm := NewResourceManager(fstest.MapFS{}, testManifest())

	small, err := rm.LoadFont(FontMessage)
	if err != nil {
		t.Fatalf("LoadFont(go:regular) error: %v", err)
	}
	big, err := rm.LoadFont(FontAgain)
	if err != nil {
		t.Fatalf("LoadFont(go:regular, 40) error: %v", err)
	}
	if _, err := rm.LoadFont(FontWin); err != nil {
		t.Fatalf("LoadFont(go:bold) error: %v", err)
	}

	sw, _ := small.MeasureString("Spider")
	bw, _ := big.MeasureString("Spider")
	if bw <= sw {
		t.Errorf("40px width %v not larger than 20px width %v", bw, sw)
	}
	if len(rm.fontData) != 2 {
		t.Errorf("parsed %d font sources, want 2 shared by size", len(rm.fontData))
	}
}

func TestSolidTexture(t *testing.T) {
	rm := NewResourceManager(testAssets(t), nil)
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	tex := rm.SolidTexture(white)
	if tex.Bounds().Size() != image.Pt(1, 1) {
		t.Errorf("solid texture size = %v, want 1x1", tex.Bounds().Size())
	}
	if rm.SolidTexture(white) != tex {
		t.Error("SolidTexture() did not cache")
	}
	if _, err := rm.LoadFont(FontMenu); !errors.Is(err, ErrResourceLoad) {
		t.Errorf("LoadFont() without manifest error = %v", err)
	}
}
