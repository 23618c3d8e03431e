//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设置为 "1" 时，在桌面端模拟移动端行为
const MobileEmulateEnv = "SPIDER_MOBILE_EMULATE"

// IsMobile 判断当前是否为移动端构建
// 桌面构建返回 false，除非设置了 MobileEmulateEnv
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
