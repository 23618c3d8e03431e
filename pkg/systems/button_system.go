package systems

import (
	"image"

	"github.com/decker502/spider/pkg/components"
	"github.com/decker502/spider/pkg/render"
)

// DispatchRelease 按顺序对按钮做松开点的点击检测
// 第一个包含 pt 的可用按钮吞掉这次点击，并执行其回调（如果有）
// 返回是否有按钮处理了这次点击
func DispatchRelease(buttons []components.Button, pt image.Point) bool {
	for _, b := range buttons {
		base := b.Base()
		if !base.Enabled || !base.Contains(pt) {
			continue
		}
		if base.OnClick != nil {
			base.OnClick(b)
		}
		return true
	}
	return false
}

// DrawButtons 按顺序绘制所有可见按钮
func DrawButtons(s render.Surface, buttons []components.Button) {
	for _, b := range buttons {
		b.Draw(s)
	}
}
