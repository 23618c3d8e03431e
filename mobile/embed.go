//go:build mobile

package mobile

import "embed"

// 构建会在绑定之前把 assets/ 和 data/ 复制到此目录
// （见 Makefile 中的 prepare-mobile）

//go:embed all:assets
var assetsFS embed.FS

//go:embed data/resources.yaml
var dataFS embed.FS
