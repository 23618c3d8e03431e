// Package gametest 为加载或持久化游戏数据的代码提供假实现
package gametest

import (
	"fmt"
	"image/color"
	"maps"

	"github.com/decker502/spider/pkg/game"
	"github.com/decker502/spider/pkg/render"
	"github.com/decker502/spider/pkg/render/rendertest"
)

// Loader 是内存中的 game.Loader。除 Missing 中列出的名称外，
// 所有纹理名和字体ID都解析为假对象
type Loader struct {
	Missing  map[string]bool
	Textures []string
	Fonts    []string
	Solids   int
}

// NewLoader 返回一个对给定名称加载失败的 Loader
func NewLoader(missing ...string) *Loader {
	l := &Loader{Missing: make(map[string]bool)}
	for _, m := range missing {
		l.Missing[m] = true
	}
	return l
}

// LoadTexture 实现 game.Loader 接口
func (l *Loader) LoadTexture(name string) (render.Texture, error) {
	if l.Missing[name] {
		return nil, fmt.Errorf("%w: %s", game.ErrResourceLoad, name)
	}
	l.Textures = append(l.Textures, name)
	return rendertest.NewTexture(name, 64, 96), nil
}

// LoadFont 实现 game.Loader 接口
func (l *Loader) LoadFont(id string) (render.Font, error) {
	if l.Missing[id] {
		return nil, fmt.Errorf("%w: font %s", game.ErrResourceLoad, id)
	}
	l.Fonts = append(l.Fonts, id)
	return rendertest.NewFont(8, 16), nil
}

// SolidTexture 实现 game.Loader 接口
func (l *Loader) SolidTexture(c color.RGBA) render.Texture {
	l.Solids++
	return rendertest.NewTexture(fmt.Sprintf("solid-%02x%02x%02x%02x", c.R, c.G, c.B, c.A), 1, 1)
}

// Assets 返回为默认主题包完整加载好的资源集
func Assets(trial bool) *game.Assets {
	a := game.NewAssets(nil, trial)
	plan := a.Plan(func() string { return a.ThemePacks[0] })
	if err := plan.LoadAll(NewLoader(), nil); err != nil {
		panic(err)
	}
	return a
}

// Props 是内存中的 game.PropStore
type Props struct {
	data map[string][]byte
	// FailSave 让所有保存操作失败
	FailSave bool
}

// NewProps 返回一个空的存储
func NewProps() *Props {
	return &Props{data: make(map[string][]byte)}
}

func key(object, prop string) string {
	return object + "/" + prop
}

// ObjectPropExists 实现 game.PropStore 接口
func (p *Props) ObjectPropExists(object, prop string) bool {
	_, ok := p.data[key(object, prop)]
	return ok
}

// LoadObjectProp 实现 game.PropStore 接口
func (p *Props) LoadObjectProp(object, prop string) ([]byte, error) {
	data, ok := p.data[key(object, prop)]
	if !ok {
		return nil, fmt.Errorf("%s: not found", key(object, prop))
	}
	return data, nil
}

// SaveObjectProp 实现 game.PropStore 接口
func (p *Props) SaveObjectProp(object, prop string, data []byte) error {
	if p.FailSave {
		return fmt.Errorf("%s: save disabled", key(object, prop))
	}
	p.data[key(object, prop)] = append([]byte(nil), data...)
	return nil
}

// Set 直接写入原始字节，不受 FailSave 影响
func (p *Props) Set(object, prop string, data []byte) {
	p.data[key(object, prop)] = data
}

// Snapshot 返回存储数据的副本
func (p *Props) Snapshot() map[string][]byte {
	return maps.Clone(p.data)
}

// Analytics 记录注册的事件
type Analytics struct {
	Events []Event
}

// Event 一次记录下来的统计调用
type Event struct {
	Kind   game.EventType
	Params []any
}

// RegisterEvent 实现 game.Analytics 接口
func (a *Analytics) RegisterEvent(kind game.EventType, params ...any) {
	a.Events = append(a.Events, Event{Kind: kind, Params: params})
}

// Kinds 按顺序返回记录的事件类型
func (a *Analytics) Kinds() []game.EventType {
	kinds := make([]game.EventType, len(a.Events))
	for i, e := range a.Events {
		kinds[i] = e.Kind
	}
	return kinds
}
