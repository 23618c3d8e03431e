package game

import (
	"image"
	"image/color"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/decker502/spider/pkg/render"
)

// placeholder 在检查期间替代所有资源
type placeholder struct{}

func (placeholder) Bounds() image.Rectangle { return image.Rect(0, 0, 1, 1) }

func (placeholder) MeasureString(s string) (float64, float64) { return float64(len(s)), 1 }

func (placeholder) LineSpacing() float64 { return 1 }

// AssetChecker 是只检查资源是否存在的 Loader
// 它从不失败，因此整个计划都会运行，所有缺失的名称都会被收集
type AssetChecker struct {
	assets  fs.FS
	config  *ResourceConfig
	missing []string
}

// NewAssetChecker 按 cfg 中声明的字体检查 assets 下的资源
func NewAssetChecker(assets fs.FS, cfg *ResourceConfig) *AssetChecker {
	return &AssetChecker{assets: assets, config: cfg}
}

func (c *AssetChecker) report(name string) {
	if !slices.Contains(c.missing, name) {
		c.missing = append(c.missing, name)
	}
}

// LoadTexture 实现 Loader 接口
func (c *AssetChecker) LoadTexture(name string) (render.Texture, error) {
	if _, err := fs.Stat(c.assets, path.Clean(name)); err != nil {
		c.report(name)
	}
	return placeholder{}, nil
}

// LoadFont 实现 Loader 接口
func (c *AssetChecker) LoadFont(id string) (render.Font, error) {
	spec, ok := c.config.Fonts[id]
	switch {
	case !ok:
		c.report("font " + id)
	case spec.File == "" || goFonts[spec.File] != nil:
	default:
		if _, err := fs.Stat(c.assets, path.Clean(spec.File)); err != nil {
			c.report(spec.File)
		}
	}
	return placeholder{}, nil
}

// SolidTexture 实现 Loader 接口
func (c *AssetChecker) SolidTexture(color.RGBA) render.Texture {
	return placeholder{}
}

// Missing 按加载顺序返回找不到的名称
func (c *AssetChecker) Missing() []string {
	return c.missing
}

// CheckAssets 为每个主题包运行一次完整加载计划（包含试用资源），
// 返回所有缺失的资源
//
// 返回：
//   - []string: 排序后的缺失路径和未声明的字体ID
//   - error: 某个组步数统计错误时返回 ErrStepCountMismatch
func CheckAssets(assets fs.FS, cfg *ResourceConfig) ([]string, error) {
	checker := NewAssetChecker(assets, cfg)
	for _, theme := range cfg.ThemePacks {
		a := NewAssets(cfg.ThemePacks, true)
		if err := a.Plan(func() string { return theme }).LoadAll(checker, nil); err != nil {
			return nil, err
		}
	}
	missing := slices.Clone(checker.Missing())
	slices.SortFunc(missing, strings.Compare)
	return missing, nil
}
