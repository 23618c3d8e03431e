package config

import "image/color"

// DeckColors 选项视图中可选的卡背颜色
var DeckColors = []color.RGBA{
	{R: 100, G: 149, B: 237, A: 255}, // 矢车菊蓝
	{R: 220, G: 20, B: 60, A: 255},   // 深红
	{R: 119, G: 136, B: 153, A: 255}, // 浅灰蓝
	{R: 255, G: 215, B: 0, A: 255},   // 金色
	{R: 147, G: 112, B: 219, A: 255}, // 中紫
	{R: 192, G: 192, B: 192, A: 255}, // 银色
}

// DefaultThemePacks 清单未列出主题包时使用
var DefaultThemePacks = []string{"Original", "Modern", "Dark"}

// DefaultThemePack 全新安装时的主题
const DefaultThemePack = "Original"

// DefaultDeckColor 全新安装时的卡背颜色
func DefaultDeckColor() color.RGBA {
	return DeckColors[0]
}

// 选项视图布局
const (
	// OptionsCardHeightDivisor 预览卡片高度为视图宽度 / 该值
	OptionsCardHeightDivisor = 8
	// OptionsHighlightInflateDivisor 高亮框向外扩大 尺寸 / 该值
	OptionsHighlightInflateDivisor = 12
)

// 统计视图布局
const (
	// StatsTableStartFraction 数字表格开始的水平位置
	StatsTableStartFraction = 0.7
	// StatsTableColumnDivisor 表格列宽为视图宽度 / 该值
	StatsTableColumnDivisor = 12
)
