package config

import (
	"image/color"
	"time"
)

// 逻辑屏幕尺寸，由 Ebitengine 缩放到窗口
const (
	GameWindowWidth  = 800
	GameWindowHeight = 480
)

// 主菜单布局，用视图尺寸的比例表示，
// 以便菜单适配不同的逻辑屏幕尺寸
const (
	// MenuColumnOffset 从视图水平中心减去该值得到按钮列的位置
	MenuColumnOffset = 40
	// MenuTopFraction 第一个按钮的位置
	MenuTopFraction = 0.06
	// MenuRowFraction 相邻按钮行之间的垂直距离
	MenuRowFraction = 0.13
	// MenuSuitGapFraction 花色图片之间的水平间距
	MenuSuitGapFraction = 0.03
	// MenuSuitImageExtra 花色图片尺寸为 width/8 加上该值
	MenuSuitImageExtra = 20
	// MenuSuitImageTopGap 花色行与"新游戏"标签之间的间距
	MenuSuitImageTopGap = 10
	// MenuSpiderCardMargin 蜘蛛卡片距左边缘和上下边缘的距离
	MenuSpiderCardMargin = 40
	// MenuTrialBannerFraction 试用横幅正方形的尺寸
	MenuTrialBannerFraction = 0.45
)

// 按钮行号，以 MenuRowFraction 为单位，从第一行起算
const (
	MenuRowNewGame    = 0
	MenuRowResume     = 2
	MenuRowOptions    = 4
	MenuRowStatistics = 5
	MenuRowAbout      = 6
)

// 背景标题滚动
const (
	// BackgroundScrollPeriod 标题滚动一个自身宽度所需的时间
	BackgroundScrollPeriod = 90 * time.Second
	// BackgroundTextScale 背景标题的放大倍数
	BackgroundTextScale = 3.0
)

// ButtonAnimationDuration 按钮淡入/滑动的默认时长
const ButtonAnimationDuration = 300 * time.Millisecond

var (
	// ColorWhite 默认按钮颜色
	ColorWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// ColorBlack 试用横幅文字颜色
	ColorBlack = color.RGBA{A: 255}
	// ColorDimGray 试用模式下受限操作的颜色
	ColorDimGray = color.RGBA{R: 105, G: 105, B: 105, A: 255}
	// ColorDisabled 没有存档时"继续"按钮的颜色
	ColorDisabled = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	// ColorBackgroundText 滚动标题的颜色
	ColorBackgroundText = color.RGBA{R: 32, G: 32, B: 32, A: 255}
)

// 覆盖窗口布局
const (
	// OverlayTextWidthFraction 折行宽度占视图宽度的比例
	OverlayTextWidthFraction = 0.75
	// OverlayPaddingFraction 面板在每个轴上围绕文字的内边距比例
	OverlayPaddingFraction = 0.15
	// OverlayScrimOpacity 覆盖窗口打开时底层画面的遮罩不透明度
	OverlayScrimOpacity = 0.8
	// TrialPollFrames 试用窗口打开时查询授权是否已解锁的间隔帧数
	// （60 TPS 下 60 帧为 1 秒）
	TrialPollFrames = 60
)
