package components

import (
	"image"
	"image/color"

	"github.com/decker502/spider/pkg/config"
	"github.com/decker502/spider/pkg/render"
)

// Button 是可点击的菜单控件，变体是封闭的：
// TextButton、ImageButton 和 CustomButton
type Button interface {
	// Base 返回所有变体共享的状态
	Base() *ButtonBase
	// Draw 在按钮可见时绘制按钮
	Draw(s render.Surface)
	button()
}

// ButtonBase 是所有按钮变体共享的状态
type ButtonBase struct {
	Rect    image.Rectangle
	Color   color.RGBA
	Visible bool
	Enabled bool
	// OnClick 在松开点落在 Rect 内时执行
	// 为 nil 时按钮只吞掉这次点击
	OnClick func(Button)
}

// NewButtonBase 在 rect 处创建一个可见、可用、白色的按钮
func NewButtonBase(rect image.Rectangle) ButtonBase {
	return ButtonBase{
		Rect:    rect,
		Color:   config.ColorWhite,
		Visible: true,
		Enabled: true,
	}
}

// Base 实现 Button 接口
func (b *ButtonBase) Base() *ButtonBase { return b }

func (b *ButtonBase) button() {}

// Contains 判断 pt 是否在按钮矩形内
func (b *ButtonBase) Contains(pt image.Point) bool {
	return pt.In(b.Rect)
}

// TextButton 绘制一段文字
type TextButton struct {
	ButtonBase
	Text string
	Font render.Font
	// Rotation 绕左上角旋转的弧度
	Rotation float64
}

// NewTextButton 创建一个按文字测量尺寸、位于原点的文字按钮
// 调用方再用 At 或 CenterIn 定位
func NewTextButton(text string, font render.Font) *TextButton {
	b := &TextButton{ButtonBase: NewButtonBase(image.Rectangle{}), Text: text, Font: font}
	b.At(image.Point{})
	return b
}

// Size 返回文字的测量尺寸
func (b *TextButton) Size() image.Point {
	return render.MeasurePoint(b.Font, b.Text)
}

// At 将按钮左上角移动到 pt，并按文字设置尺寸
func (b *TextButton) At(pt image.Point) *TextButton {
	b.Rect = image.Rectangle{Min: pt, Max: pt.Add(b.Size())}
	return b
}

// AtLine 与 At 相同，但高度取字体的一行高度
// 菜单标签就是按这个矩形做点击检测的
func (b *TextButton) AtLine(pt image.Point) *TextButton {
	size := b.Size()
	b.Rect = image.Rect(pt.X, pt.Y, pt.X+size.X, pt.Y+int(b.Font.LineSpacing()))
	return b
}

// CenterIn 将文字在 r 中水平居中，顶部与 r 对齐
func (b *TextButton) CenterIn(r image.Rectangle) *TextButton {
	size := b.Size()
	offset := (r.Dx() - size.X) / 2
	b.Rect = image.Rect(r.Min.X+offset, r.Min.Y, r.Min.X+offset+size.X, r.Min.Y+size.Y)
	return b
}

// Draw 实现 Button 接口
func (b *TextButton) Draw(s render.Surface) {
	if !b.Visible || b.Font == nil {
		return
	}
	var opts *render.TextOptions
	if b.Rotation != 0 {
		opts = &render.TextOptions{Rotation: b.Rotation}
	}
	s.DrawText(b.Font, b.Text, b.Rect.Min, b.Color, opts)
}

// ImageButton 将纹理拉伸到整个按钮矩形
type ImageButton struct {
	ButtonBase
	Texture render.Texture
}

// NewImageButton 创建一个覆盖 rect 的图片按钮
func NewImageButton(tex render.Texture, rect image.Rectangle) *ImageButton {
	return &ImageButton{ButtonBase: NewButtonBase(rect), Texture: tex}
}

// Draw 实现 Button 接口
func (b *ImageButton) Draw(s render.Surface) {
	if !b.Visible || b.Texture == nil {
		return
	}
	s.DrawTexture(b.Texture, b.Rect, b.Color, nil)
}

// CustomButton 将绘制委托给调用方提供的函数
type CustomButton struct {
	ButtonBase
	drawFn func(b *CustomButton, s render.Surface)
}

// NewCustomButton 创建一个覆盖 rect 的自定义按钮
func NewCustomButton(rect image.Rectangle, draw func(b *CustomButton, s render.Surface)) *CustomButton {
	return &CustomButton{ButtonBase: NewButtonBase(rect), drawFn: draw}
}

// Draw 实现 Button 接口
func (b *CustomButton) Draw(s render.Surface) {
	if !b.Visible || b.drawFn == nil {
		return
	}
	b.drawFn(b, s)
}
