// Package modules 包含显示在主菜单之上的面板：
// 消息和试用覆盖窗口，以及选项、统计和关于视图
package modules

import (
	"github.com/atotto/clipboard"

	"github.com/decker502/spider/pkg/game"
)

// Env 汇集各面板可能用到的协作对象
// 由应用构建一个 Env，菜单和各面板共享
type Env struct {
	Assets     *game.Assets
	Loader     game.Loader
	Session    *game.Session
	Options    *game.OptionsStore
	Statistics *game.StatisticsStore
	Board      *game.Board
	Analytics  game.Analytics
	// Marketplace 打开商店页面，为 nil 时禁用升级操作
	Marketplace Marketplace
	// Clipboard 复制文本，默认使用系统剪贴板
	Clipboard func(string) error
}

// Events 返回统计接收器，永不为 nil
func (e *Env) Events() game.Analytics {
	if e.Analytics == nil {
		return game.NopAnalytics{}
	}
	return e.Analytics
}

func (e *Env) copyText(s string) error {
	if e.Clipboard != nil {
		return e.Clipboard(s)
	}
	return clipboard.WriteAll(s)
}

func (e *Env) launchMarketplace() {
	if e.Marketplace != nil {
		e.Marketplace.Launch()
	}
}
