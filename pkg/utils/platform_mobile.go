//go:build mobile

package utils

// IsMobile 判断当前是否为移动端构建
func IsMobile() bool {
	return true
}
