package game

import (
	"github.com/decker502/spider/pkg/input"
	"github.com/decker502/spider/pkg/render"
)

// Scene 代表一个顶层画面（加载、主菜单、牌桌）
// 每个场景有自己的更新和渲染逻辑
type Scene interface {
	// Update 处理一帧输入，返回非 nil 错误会结束游戏循环
	Update(frame input.Frame) error

	// Draw 将场景渲染到 s 上
	Draw(s render.Surface)
}

// Saveable 由应用关闭时需要保存状态的场景实现
//
// SaveOnExit 在以下情况调用：
//   - 窗口被关闭
//   - 从主菜单退出应用
type Saveable interface {
	// SaveOnExit 保存失败时返回 false，应用仍会退出
	SaveOnExit() bool
}
