package game

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/decker502/spider/pkg/config"
	"github.com/decker502/spider/pkg/logging"
)

// Options 持久化的玩家偏好设置
type Options struct {
	ThemePack     string `yaml:"themePack"`
	CardBackColor string `yaml:"cardBackColor"` // "#rrggbb"
}

// DefaultOptions 返回全新安装时的选项
func DefaultOptions() Options {
	return Options{
		ThemePack:     config.DefaultThemePack,
		CardBackColor: FormatColor(config.DefaultDeckColor()),
	}
}

// FormatColor 将 c 格式化为 "#rrggbb"，不保存 alpha
func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor 将 "#rrggbb" 解析为不透明颜色
func ParseColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	if len(s) != 7 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

const (
	optionsObject   = "options"
	optionsProperty = "global"
)

// OptionsStore 在内存中保存选项，Save 时持久化
// setter 只修改内存中的副本
type OptionsStore struct {
	props   PropStore
	options Options
	log     *log.Logger
}

// NewOptionsStore 创建存储并加载已保存的选项
// 加载失败会记录日志并保留默认值
func NewOptionsStore(props PropStore) *OptionsStore {
	s := &OptionsStore{
		props:   props,
		options: DefaultOptions(),
		log:     logging.For("Options"),
	}
	if err := s.Load(); err != nil {
		s.log.Warn("failed to load options, using defaults", "err", err)
	}
	return s
}

// Load 用保存的选项替换内存中的选项，
// 没有保存数据时使用默认值
func (s *OptionsStore) Load() error {
	loaded := DefaultOptions()
	_, err := loadProp(s.props, optionsObject, optionsProperty, &loaded)
	if err != nil {
		s.options = DefaultOptions()
		return err
	}
	if loaded.ThemePack == "" {
		loaded.ThemePack = config.DefaultThemePack
	}
	if _, perr := ParseColor(loaded.CardBackColor); perr != nil {
		loaded.CardBackColor = FormatColor(config.DefaultDeckColor())
	}
	s.options = loaded
	return nil
}

// Save 持久化内存中的选项
func (s *OptionsStore) Save() error {
	if err := saveProp(s.props, optionsObject, optionsProperty, s.options); err != nil {
		return err
	}
	s.log.Debug("options saved", "theme", s.options.ThemePack, "cardBack", s.options.CardBackColor)
	return nil
}

// ThemePack 返回选中的主题包目录名
func (s *OptionsStore) ThemePack() string {
	return s.options.ThemePack
}

// SetThemePack 修改内存中的主题包
func (s *OptionsStore) SetThemePack(name string) {
	s.options.ThemePack = name
}

// CardBackColor 返回卡背颜色
func (s *OptionsStore) CardBackColor() color.RGBA {
	c, err := ParseColor(s.options.CardBackColor)
	if err != nil {
		return config.DefaultDeckColor()
	}
	return c
}

// SetCardBackColor 修改内存中的卡背颜色
func (s *OptionsStore) SetCardBackColor(c color.RGBA) {
	s.options.CardBackColor = FormatColor(c)
}
