package game

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/decker502/spider/pkg/config"
)

// ResourceConfig 资源清单（data/resources.yaml）
//
// 结构：
//
//	version: 1
//	theme_packs: [Original, Modern, Dark]
//	fonts:
//	  menu:
//	    file: fonts/Menu.ttf
//	    size: 36
//	  statistics:
//	    size: 18        # 没有 file：使用内置位图字体
type ResourceConfig struct {
	Version    int                 `yaml:"version"`     // 清单格式版本
	ThemePacks []string            `yaml:"theme_packs"` // ThemePacks/ 下的主题包目录，按显示顺序
	Fonts      map[string]FontSpec `yaml:"fonts"`       // 按字体ID索引的字体
}

// FontSpec 描述一个字体
//
// 字段：
//   - File: 相对于资源根目录的 TTF/OTF 文件路径。为空时使用
//     不需要资源文件的内置 7x13 位图字体
//   - Size: 字号（像素，内置字体忽略该值）
type FontSpec struct {
	File string  `yaml:"file,omitempty"`
	Size float64 `yaml:"size"`
}

// 加载组引用的字体ID
const (
	FontMenu            = "menu"
	FontMenuSub         = "menu_sub"
	FontMenuTrialDetail = "menu_trial_detail"
	FontMenuBackground  = "menu_background"
	FontStatistics      = "statistics"
	FontAbout           = "about"
	FontMessage         = "message"
	FontWin             = "win"
	FontAgain           = "again"
)

// ParseResourceConfig 解码资源清单
// 没有主题包的清单回退到 config.DefaultThemePacks
//
// 返回：
//   - *ResourceConfig: 解码后的清单
//   - error: YAML 格式错误或主题包名为空时返回
func ParseResourceConfig(data []byte) (*ResourceConfig, error) {
	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}
	if len(cfg.ThemePacks) == 0 {
		cfg.ThemePacks = append([]string(nil), config.DefaultThemePacks...)
	}
	for i, name := range cfg.ThemePacks {
		if name == "" {
			return nil, fmt.Errorf("resource config: theme pack %d has no name", i)
		}
	}
	if cfg.Fonts == nil {
		cfg.Fonts = make(map[string]FontSpec)
	}
	return &cfg, nil
}

// ThemeIndex 返回 name 在主题包列表中的位置，不存在时返回 -1
func (c *ResourceConfig) ThemeIndex(name string) int {
	for i, t := range c.ThemePacks {
		if t == name {
			return i
		}
	}
	return -1
}
