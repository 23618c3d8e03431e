package main

import "embed"

// dataFS 包含默认资源清单。go:embed 只能访问本目录下的文件，
// 因此在这里声明并传给 pkg/embedded
//
//go:embed data/resources.yaml
var dataFS embed.FS
