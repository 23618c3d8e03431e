// Package render 定义所有视图使用的绘制接口
//
// 视图从不直接调用 Ebitengine：绘制通过 Surface，文字测量通过 Font。
// EbitenSurface 和 Face 是正式实现，测试中替换为记录型的假实现。
package render

import (
	"image"
	"image/color"
)

// Texture 是 Surface 能绘制的、具有像素边界的对象
// *ebiten.Image 满足该接口
type Texture interface {
	Bounds() image.Rectangle
}

// Font 负责测量和排版文字
type Font interface {
	// MeasureString 返回 s 的宽度和高度（像素）
	// 多行文本（以 "\n" 分隔）返回最宽行的宽度和总高度
	MeasureString(s string) (width, height float64)
	// LineSpacing 两条基线之间的距离
	LineSpacing() float64
}

// Flip 绘制时镜像纹理，可组合使用
type Flip int

const (
	FlipNone       Flip = 0
	FlipHorizontal Flip = 1 << iota
	FlipVertical
)

// DrawOptions 是 DrawTexture 的可选参数
// 为 nil 时绘制整张纹理且不旋转
type DrawOptions struct {
	// Source 选择纹理的子区域，nil 表示整张纹理
	Source *image.Rectangle
	Flip   Flip
	// Rotation 绕目标矩形左上角旋转的弧度
	Rotation float64
}

// TextOptions 是 DrawText 的可选参数
type TextOptions struct {
	// Rotation 绕文字原点旋转的弧度
	Rotation float64
	// Scale 字形缩放，0 表示 1
	Scale float64
}

// Surface 是一帧的绘制目标
type Surface interface {
	// Bounds 逻辑像素视口
	Bounds() image.Rectangle
	BeginBatch()
	// DrawTexture 将 tex 拉伸到 dst，每个像素乘以 tint
	DrawTexture(tex Texture, dst image.Rectangle, tint color.RGBA, opts *DrawOptions)
	// DrawText 以 pos 为左上角绘制 s
	DrawText(font Font, s string, pos image.Point, tint color.RGBA, opts *TextOptions)
	EndBatch()
}

// MeasurePoint 返回截断为整数像素的 MeasureString 结果
func MeasurePoint(font Font, s string) image.Point {
	w, h := font.MeasureString(s)
	return image.Pt(int(w), int(h))
}
