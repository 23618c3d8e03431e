package components

import (
	"image"
	"image/color"
	"time"

	"github.com/decker502/spider/pkg/utils"
)

// ButtonAnimationComponent 在固定时长内把按钮从起始位置和透明度
// 过渡到结束位置和透明度。
//
// EndColor 是动画开始时记录的按钮颜色，每帧按透明度缩放。
type ButtonAnimationComponent struct {
	Button Button

	From, To               image.Point
	FromOpacity, ToOpacity float64
	EndColor               color.RGBA

	Duration  time.Duration
	StartTime time.Time
	EndTime   time.Time
}

// Progress 返回 now 时刻的线性进度：StartTime 及之前为 0，
// EndTime 及之后为 1
func (c *ButtonAnimationComponent) Progress(now time.Time) float64 {
	if c.Duration <= 0 {
		return 1
	}
	return utils.Clamp01(float64(now.Sub(c.StartTime)) / float64(c.Duration))
}

// Finished 判断动画是否已到达结束时间
func (c *ButtonAnimationComponent) Finished(now time.Time) bool {
	return !now.Before(c.EndTime)
}
