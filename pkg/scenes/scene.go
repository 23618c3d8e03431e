// Package scenes 包含顶层画面：加载、主菜单和牌桌
package scenes

import (
	"github.com/decker502/spider/pkg/game"
)

// Scene 即 game.Scene；场景管理器位于 game 包中，
// 使用时无需导入本包
type Scene = game.Scene
