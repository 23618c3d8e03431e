// Package embedded 提供嵌入资源的统一访问接口
//
// go:embed 只能访问声明包所在目录下的文件，因此 embed.FS
// 定义在模块根目录（embed.go），并在读取任何资源之前
// 通过 Init 传入。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ManifestPath 是默认的资源清单路径
const ManifestPath = "data/resources.yaml"

// ErrNotInitialized 在 Init 之前调用任何访问函数时返回
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	dataFS      fs.FS
	initialized bool
)

// Init 安装嵌入的数据文件系统
// 必须在 main 开始时、读取任何资源之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = true
}

// IsInitialized 判断 Init 是否已调用
func IsInitialized() bool {
	return initialized
}

// normalize 将操作系统路径转换为 fs.FS 路径并检查前缀
func normalize(path string) (string, error) {
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")
	if !strings.HasPrefix(path, "data/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return path, nil
}

// Open 打开一个嵌入文件，路径必须以 "data/" 开头
func Open(path string) (fs.File, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return dataFS.Open(path)
}

// ReadFile 读取整个嵌入文件，路径必须以 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, path)
}

// Exists 判断嵌入文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Manifest 返回嵌入的默认资源清单
func Manifest() ([]byte, error) {
	return ReadFile(ManifestPath)
}
