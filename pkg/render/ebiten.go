package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// EbitenSurface 绘制到 *ebiten.Image 上
// 不是 *ebiten.Image 的纹理和不是 *Face 的字体会被跳过
type EbitenSurface struct {
	target *ebiten.Image
}

// NewEbitenSurface 包装传给 ebiten.Game.Draw 的屏幕
func NewEbitenSurface(target *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{target: target}
}

// Bounds 实现 Surface 接口
func (s *EbitenSurface) Bounds() image.Rectangle {
	return s.target.Bounds()
}

// BeginBatch 实现 Surface 接口，Ebitengine 自己会合批
func (s *EbitenSurface) BeginBatch() {}

// EndBatch 实现 Surface 接口
func (s *EbitenSurface) EndBatch() {}

// DrawTexture 实现 Surface 接口
func (s *EbitenSurface) DrawTexture(tex Texture, dst image.Rectangle, tint color.RGBA, opts *DrawOptions) {
	img, ok := tex.(*ebiten.Image)
	if !ok || img == nil || dst.Empty() {
		return
	}
	if opts == nil {
		opts = &DrawOptions{}
	}
	if opts.Source != nil {
		img = img.SubImage(*opts.Source).(*ebiten.Image)
	}

	src := img.Bounds()
	sw, sh := float64(src.Dx()), float64(src.Dy())
	if sw == 0 || sh == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	if opts.Flip&FlipHorizontal != 0 {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(sw, 0)
	}
	if opts.Flip&FlipVertical != 0 {
		op.GeoM.Scale(1, -1)
		op.GeoM.Translate(0, sh)
	}
	op.GeoM.Scale(float64(dst.Dx())/sw, float64(dst.Dy())/sh)
	if opts.Rotation != 0 {
		op.GeoM.Rotate(opts.Rotation)
	}
	op.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	op.ColorScale.ScaleWithColor(tint)
	op.Filter = ebiten.FilterLinear

	s.target.DrawImage(img, op)
}

// DrawText 实现 Surface 接口
func (s *EbitenSurface) DrawText(font Font, str string, pos image.Point, tint color.RGBA, opts *TextOptions) {
	face, ok := font.(*Face)
	if !ok || face == nil || str == "" {
		return
	}
	if opts == nil {
		opts = &TextOptions{}
	}

	op := &text.DrawOptions{}
	op.LineSpacing = face.LineSpacing()
	if opts.Scale != 0 {
		op.GeoM.Scale(opts.Scale, opts.Scale)
	}
	if opts.Rotation != 0 {
		op.GeoM.Rotate(opts.Rotation)
	}
	op.GeoM.Translate(float64(pos.X), float64(pos.Y))
	op.ColorScale.ScaleWithColor(tint)

	text.Draw(s.target, str, face.face, op)
}

// Face 将 Ebitengine 字体适配为 Font
type Face struct {
	face        text.Face
	lineSpacing float64
}

// NewFace 包装 f，并根据字体度量计算行距
func NewFace(f text.Face) *Face {
	m := f.Metrics()
	spacing := m.HAscent + m.HDescent + m.HLineGap
	if spacing <= 0 {
		spacing = m.HAscent + m.HDescent
	}
	return &Face{face: f, lineSpacing: spacing}
}

// BuiltinFace 返回固定的 7x13 位图字体
// 不需要资源文件，用于清单中未声明文件的字体
func BuiltinFace() *Face {
	return NewFace(text.NewGoXFace(basicfont.Face7x13))
}

// TextFace 返回被包装的 Ebitengine 字体
func (f *Face) TextFace() text.Face {
	return f.face
}

// MeasureString 实现 Font 接口
func (f *Face) MeasureString(s string) (float64, float64) {
	return text.Measure(s, f.face, f.lineSpacing)
}

// LineSpacing 实现 Font 接口
func (f *Face) LineSpacing() float64 {
	return f.lineSpacing
}
