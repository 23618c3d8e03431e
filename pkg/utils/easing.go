package utils

import (
	"image"
	"image/color"
	"math"
)

// Clamp01 将 t 限制在 [0, 1] 区间
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// Lerp 在 start 和 end 之间线性插值
func Lerp(start, end, t float64) float64 {
	return start + (end-start)*t
}

// LerpInt 在两个整数之间插值
// 偏移量先向零截断，再加到 start 上
func LerpInt(start, end int, t float64) int {
	return int(float64(end-start)*t) + start
}

// LerpPoint 对 X、Y 两个轴分别应用 LerpInt
func LerpPoint(start, end image.Point, t float64) image.Point {
	return image.Pt(LerpInt(start.X, end.X, t), LerpInt(start.Y, end.Y, t))
}

// ScaleColor 将每个通道（包括 alpha）乘以 f
// 颜色是预乘 alpha 的，因此效果是把 c 淡出到透明
func ScaleColor(c color.RGBA, f float64) color.RGBA {
	scale := func(v uint8) uint8 {
		s := float64(v) * f
		if s <= 0 {
			return 0
		}
		if s >= 255 {
			return 255
		}
		return uint8(s)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}
