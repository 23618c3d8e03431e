package modules

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"

	"github.com/decker502/spider/pkg/logging"
)

// Marketplace 将玩家带到出售正式版的页面
type Marketplace interface {
	Launch()
}

// ClipboardMarketplace 通过把商店地址复制到剪贴板来"打开"商店，
// 在所有桌面平台上行为一致
type ClipboardMarketplace struct {
	URL string
	// Copy 默认使用系统剪贴板
	Copy func(string) error
	log  *log.Logger
}

// NewMarketplace 返回指向 url 的 Marketplace
func NewMarketplace(url string) *ClipboardMarketplace {
	return &ClipboardMarketplace{
		URL:  url,
		Copy: clipboard.WriteAll,
		log:  logging.For("Marketplace"),
	}
}

// Launch 实现 Marketplace 接口，失败时记录日志
func (m *ClipboardMarketplace) Launch() {
	m.log.Info("launching marketplace", "url", m.URL)
	if err := m.Copy(m.URL); err != nil {
		m.log.Warn("failed to copy store address", "err", err)
	}
}
