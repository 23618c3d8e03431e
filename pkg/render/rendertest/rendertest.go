// Package rendertest 提供 render 接口的记录型假实现
package rendertest

import (
	"image"
	"image/color"
	"strings"

	"github.com/decker502/spider/pkg/render"
)

// Texture 是固定尺寸的纹理
type Texture struct {
	Name string
	W, H int
}

// NewTexture 返回一个命名的 w×h 纹理
func NewTexture(name string, w, h int) *Texture {
	return &Texture{Name: name, W: w, H: h}
}

// Bounds 实现 render.Texture 接口
func (t *Texture) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.W, t.H)
}

// Font 是等宽字体：每个字符宽 Advance 像素，
// 每行高 Height 像素
type Font struct {
	Advance float64
	Height  float64
}

// NewFont 按给定字形尺寸返回等宽字体
func NewFont(advance, height float64) *Font {
	return &Font{Advance: advance, Height: height}
}

// MeasureString 实现 render.Font 接口
func (f *Font) MeasureString(s string) (float64, float64) {
	if s == "" {
		return 0, 0
	}
	lines := strings.Split(s, "\n")
	widest := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > widest {
			widest = n
		}
	}
	return float64(widest) * f.Advance, float64(len(lines)) * f.Height
}

// LineSpacing 实现 render.Font 接口
func (f *Font) LineSpacing() float64 {
	return f.Height
}

// Op 是一次记录下来的绘制调用
type Op struct {
	Texture  render.Texture
	Text     string
	Dst      image.Rectangle
	Pos      image.Point
	Tint     color.RGBA
	Rotation float64
	Flip     render.Flip
}

// Surface 记录一帧内的所有绘制调用
type Surface struct {
	Size    image.Rectangle
	Ops     []Op
	Batches int
	open    bool
}

// NewSurface 返回视口为 w×h 的记录器
func NewSurface(w, h int) *Surface {
	return &Surface{Size: image.Rect(0, 0, w, h)}
}

// Bounds 实现 render.Surface 接口
func (s *Surface) Bounds() image.Rectangle { return s.Size }

// BeginBatch 实现 render.Surface 接口
func (s *Surface) BeginBatch() {
	s.Batches++
	s.open = true
}

// EndBatch 实现 render.Surface 接口
func (s *Surface) EndBatch() { s.open = false }

// Balanced 判断每个 BeginBatch 是否都已关闭
func (s *Surface) Balanced() bool { return !s.open }

// DrawTexture 实现 render.Surface 接口
func (s *Surface) DrawTexture(tex render.Texture, dst image.Rectangle, tint color.RGBA, opts *render.DrawOptions) {
	op := Op{Texture: tex, Dst: dst, Tint: tint}
	if opts != nil {
		op.Rotation = opts.Rotation
		op.Flip = opts.Flip
	}
	s.Ops = append(s.Ops, op)
}

// DrawText 实现 render.Surface 接口
func (s *Surface) DrawText(font render.Font, str string, pos image.Point, tint color.RGBA, opts *render.TextOptions) {
	op := Op{Text: str, Pos: pos, Tint: tint}
	if opts != nil {
		op.Rotation = opts.Rotation
	}
	s.Ops = append(s.Ops, op)
}

// Texts 按绘制顺序返回记录的字符串
func (s *Surface) Texts() []string {
	var out []string
	for _, op := range s.Ops {
		if op.Texture == nil {
			out = append(out, op.Text)
		}
	}
	return out
}

// HasText 判断是否记录过等于 str 的字符串
func (s *Surface) HasText(str string) bool {
	for _, t := range s.Texts() {
		if t == str {
			return true
		}
	}
	return false
}

// TextureOps 返回 tex 的绘制记录
func (s *Surface) TextureOps(tex render.Texture) []Op {
	var out []Op
	for _, op := range s.Ops {
		if op.Texture != nil && op.Texture == tex {
			out = append(out, op)
		}
	}
	return out
}

// Reset 清空所有记录
func (s *Surface) Reset() {
	s.Ops = s.Ops[:0]
	s.Batches = 0
	s.open = false
}
