package config

import "image/color"

// 加载场景布局

const (
	// LoadingBarWidthFraction 进度条宽度占视图宽度的比例
	LoadingBarWidthFraction = 0.6
	// LoadingBarHeight 进度条高度（像素）
	LoadingBarHeight = 12
	// LoadingBarBorder 填充区外框的厚度
	LoadingBarBorder = 2
	// LoadingTextGap 状态文字与进度条之间的间距
	LoadingTextGap = 8
)

var (
	// LoadingBarFrameColor 绘制在填充区下面的底框颜色
	LoadingBarFrameColor = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	// LoadingBarFillColor 进度填充颜色
	LoadingBarFillColor = color.RGBA{R: 100, G: 149, B: 237, A: 255}
)
