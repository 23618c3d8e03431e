package modules

import (
	"image"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/decker502/spider/pkg/components"
	"github.com/decker502/spider/pkg/config"
	"github.com/decker502/spider/pkg/game"
	"github.com/decker502/spider/pkg/input"
	"github.com/decker502/spider/pkg/logging"
	"github.com/decker502/spider/pkg/render"
	"github.com/decker502/spider/pkg/systems"
)

// OptionsView 让玩家选择卡背颜色和主题包
//
// 选择只是预览：选项写入内存，并使用已加载的预览纹理绘制。
// Commit 持久化选项并替换牌桌纹理，在视图关闭时运行。
type OptionsView struct {
	noOverlay

	env  *Env
	view image.Rectangle
	log  *log.Logger

	colorIndex int
	themeIndex int
	// previewBack 选中主题的卡背，由每个卡背颜色按钮着色
	previewBack render.Texture

	labels       []components.Button
	colorButtons []components.Button
	themeButtons []components.Button
}

// NewOptionsView 加载保存的选项并布局两行选择按钮
func NewOptionsView(env *Env, view image.Rectangle) *OptionsView {
	v := &OptionsView{
		env:  env,
		view: view,
		log:  logging.For("OptionsView"),
	}
	if err := env.Options.Load(); err != nil {
		v.log.Warn("failed to load options", "err", err)
	}

	current := env.Options.CardBackColor()
	v.colorIndex = max(0, slices.Index(config.DeckColors, current))
	v.themeIndex = max(0, slices.Index(env.Assets.ThemePacks, env.Options.ThemePack()))
	v.previewBack = v.preview(v.themeIndex).Back

	v.initControls()
	return v
}

func (v *OptionsView) preview(i int) game.ThemePreview {
	themes := v.env.Assets.Options.Themes
	if i < 0 || i >= len(themes) {
		return game.ThemePreview{}
	}
	return themes[i]
}

// ColorIndex 返回选中的卡背颜色
func (v *OptionsView) ColorIndex() int { return v.colorIndex }

// ThemeIndex 返回选中的主题包
func (v *OptionsView) ThemeIndex() int { return v.themeIndex }

// PreviewBack 返回颜色按钮绘制的卡背纹理
func (v *OptionsView) PreviewBack() render.Texture { return v.previewBack }

// ColorButtons 每种卡背颜色一个按钮
func (v *OptionsView) ColorButtons() []components.Button { return v.colorButtons }

// ThemeButtons 每个主题包一个按钮
func (v *OptionsView) ThemeButtons() []components.Button { return v.themeButtons }

// SelectDeckColor 预览卡背颜色 i 并写入选项
func (v *OptionsView) SelectDeckColor(i int) {
	if i < 0 || i >= len(config.DeckColors) {
		return
	}
	v.colorIndex = i
	v.env.Options.SetCardBackColor(config.DeckColors[i])
}

// SelectTheme 预览主题包 i 并写入选项
func (v *OptionsView) SelectTheme(i int) {
	if i < 0 || i >= len(v.env.Assets.ThemePacks) {
		return
	}
	v.themeIndex = i
	v.previewBack = v.preview(i).Back
	v.env.Options.SetThemePack(v.env.Assets.ThemePacks[i])
}

// Commit 保存选项，主题与已加载的不同时重新加载牌桌纹理
// 重新加载失败时保留旧主题
func (v *OptionsView) Commit() error {
	if err := v.env.Options.Save(); err != nil {
		return err
	}
	theme := v.env.Options.ThemePack()
	if v.env.Assets.Cards != nil && v.env.Assets.Cards.Theme == theme {
		return nil
	}
	if v.env.Loader == nil {
		return nil
	}
	v.log.Info("switching theme", "theme", theme)
	return v.env.Assets.ReloadTheme(v.env.Loader, theme)
}

func (v *OptionsView) initControls() {
	assets := &v.env.Assets.Options
	v.labels = nil
	v.colorButtons = nil
	v.themeButtons = nil

	x := v.view.Min.X + 20
	y := v.view.Min.Y + 20
	xSpacing := v.view.Dx() / 20
	ySpacing := v.view.Dy() / 10
	cardH := v.view.Dx() / config.OptionsCardHeightDivisor
	cardW := cardH
	if v.previewBack != nil {
		if b := v.previewBack.Bounds(); b.Dy() > 0 {
			cardW = cardH * b.Dx() / b.Dy()
		}
	}

	title := components.NewTextButton(config.Options, assets.TitleFont).At(image.Pt(x, y))
	themeLabel := components.NewTextButton(config.OptionsThemeLabel, assets.ItemFont)
	colorLabel := components.NewTextButton(config.OptionsDeckColorLabel, assets.ItemFont)
	v.labels = append(v.labels, title, themeLabel, colorLabel)

	xButtons := x + max(themeLabel.Size().X, colorLabel.Size().X) + xSpacing
	step := cardW + xSpacing/2

	row := y + title.Size().Y + ySpacing
	themeLabel.At(image.Pt(x, row+(cardH-themeLabel.Size().Y)/2))
	for i := range v.env.Assets.ThemePacks {
		px := xButtons + step*i
		b := components.NewCustomButton(image.Rect(px, row, px+cardW, row+cardH),
			func(b *components.CustomButton, s render.Surface) {
				drawMiniCard(s, v.preview(i), b.Rect)
			})
		b.OnClick = func(components.Button) { v.SelectTheme(i) }
		v.themeButtons = append(v.themeButtons, b)
	}

	row += cardH + ySpacing
	colorLabel.At(image.Pt(x, row+(cardH-colorLabel.Size().Y)/2))
	for i, c := range config.DeckColors {
		px := xButtons + step*i
		b := components.NewCustomButton(image.Rect(px, row, px+cardW, row+cardH),
			func(b *components.CustomButton, s render.Surface) {
				if v.previewBack != nil {
					s.DrawTexture(v.previewBack, b.Rect, c, nil)
				}
			})
		b.OnClick = func(components.Button) { v.SelectDeckColor(i) }
		v.colorButtons = append(v.colorButtons, b)
	}
}

// Update 实现 SubView 接口
func (v *OptionsView) Update(frame input.Frame) {
	for _, pt := range frame.Releases() {
		if systems.DispatchRelease(v.themeButtons, pt) {
			continue
		}
		systems.DispatchRelease(v.colorButtons, pt)
	}
}

// Render 实现 SubView 接口
func (v *OptionsView) Render(s render.Surface, _ image.Rectangle) {
	s.BeginBatch()
	drawLabels(s, v.labels)
	if v.themeIndex < len(v.themeButtons) {
		v.drawHighlight(s, v.themeButtons[v.themeIndex].Base().Rect)
	}
	if v.colorIndex < len(v.colorButtons) {
		v.drawHighlight(s, v.colorButtons[v.colorIndex].Base().Rect)
	}
	systems.DrawButtons(s, v.themeButtons)
	systems.DrawButtons(s, v.colorButtons)
	s.EndBatch()
}

// drawHighlight 用选中主题的高亮图框住 r：
// 顶部一个端头，底部一个镜像端头，中间拉伸中段
func (v *OptionsView) drawHighlight(s render.Surface, r image.Rectangle) {
	p := v.preview(v.themeIndex)
	if p.HighlightEnd == nil || p.HighlightCenter == nil {
		return
	}
	r = r.Inset(-max(r.Dx(), r.Dy()) / config.OptionsHighlightInflateDivisor)
	end := r.Dy() / 4
	top := image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+end)
	bottom := image.Rect(r.Min.X, r.Max.Y-end, r.Max.X, r.Max.Y)
	mid := image.Rect(r.Min.X, top.Max.Y, r.Max.X, bottom.Min.Y)

	s.DrawTexture(p.HighlightEnd, top, config.ColorWhite, nil)
	s.DrawTexture(p.HighlightCenter, mid, config.ColorWhite, nil)
	s.DrawTexture(p.HighlightEnd, bottom, config.ColorWhite, &render.DrawOptions{Flip: render.FlipVertical})
}

// drawMiniCard 将主题预览中的黑桃 A 绘制到 r 中：
// 两个角上是点数和小花色（下面一组倒置），
// 中间是大花色
func drawMiniCard(s render.Surface, p game.ThemePreview, r image.Rectangle) {
	if p.Front == nil {
		return
	}
	black := config.ColorBlack
	s.DrawTexture(p.Front, r, config.ColorWhite, nil)

	corner := r.Dx() / 5
	pad := r.Dx() / 12
	value := image.Rect(r.Min.X+pad, r.Min.Y+pad, r.Min.X+pad+corner, r.Min.Y+pad+corner)
	suit := value.Add(image.Pt(0, corner))
	flipped := &render.DrawOptions{Flip: render.FlipHorizontal | render.FlipVertical}

	s.DrawTexture(p.Value, value, black, nil)
	s.DrawTexture(p.Suit, suit, black, nil)

	mirror := func(q image.Rectangle) image.Rectangle {
		return image.Rect(r.Max.X-(q.Max.X-r.Min.X), r.Max.Y-(q.Max.Y-r.Min.Y),
			r.Max.X-(q.Min.X-r.Min.X), r.Max.Y-(q.Min.Y-r.Min.Y))
	}
	s.DrawTexture(p.Value, mirror(value), black, flipped)
	s.DrawTexture(p.Suit, mirror(suit), black, flipped)

	big := r.Dx() / 2
	c := image.Pt(r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2)
	s.DrawTexture(p.Suit, image.Rect(c.X-big/2, c.Y-big/2, c.X+big/2, c.Y+big/2), black, nil)
}

// OnClose 实现 SubView 接口
func (v *OptionsView) OnClose() {
	if err := v.Commit(); err != nil {
		v.log.Error("failed to apply options", "err", err)
	}
}

func (v *OptionsView) subView() {}
