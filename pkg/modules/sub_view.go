package modules

import (
	"image"

	"github.com/decker502/spider/pkg/components"
	"github.com/decker502/spider/pkg/input"
	"github.com/decker502/spider/pkg/render"
)

// SubView 是替换主菜单的全屏面板模式
// 变体是封闭的：OptionsView、StatisticsView 和 AboutView
type SubView interface {
	// Update 处理一帧输入
	Update(frame input.Frame)
	// Render 将视图绘制到 bounds 中
	Render(s render.Surface, bounds image.Rectangle)
	// OnClose 在玩家退出视图时调用一次
	// 这是视图持久化修改的唯一时机
	OnClose()
	// HasOverlay 判断视图是否显示了自己的消息窗口
	HasOverlay() bool
	// CloseOverlay 关闭视图的消息窗口，不执行其回调
	CloseOverlay()
	subView()
}

// noOverlay 由从不打开消息窗口的视图嵌入
type noOverlay struct{}

func (noOverlay) HasOverlay() bool { return false }
func (noOverlay) CloseOverlay()    {}

// drawLabels 绘制所有可见标签
func drawLabels(s render.Surface, labels []components.Button) {
	for _, l := range labels {
		l.Draw(s)
	}
}
