//go:build !mobile

// Package mobile 提供 ebitenmobile 绑定入口
// 不带 mobile 构建标签时只包含 Dummy，使 ./... 在桌面端可以编译
package mobile

// Dummy 导出后 ebitenmobile 才能识别此包
func Dummy() {}
