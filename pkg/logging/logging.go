// Package logging 管理进程级日志器
// 各组件在构造时通过 For 获取带前缀的子日志器，
// 因此 Configure 必须在创建游戏对象之前调用。
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu   sync.Mutex
	root = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           log.WarnLevel,
	})
)

// Configure 设置输出和日志级别
// verbose 为 true 时输出调试日志，否则只输出警告和错误
func Configure(w io.Writer, verbose bool) {
	mu.Lock()
	defer mu.Unlock()

	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	root = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	log.SetDefault(root)
}

// For 返回以 component 为前缀的日志器
func For(component string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	return root.WithPrefix(component)
}
