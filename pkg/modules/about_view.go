package modules

import (
	"image"

	"github.com/charmbracelet/log"

	"github.com/decker502/spider/pkg/components"
	"github.com/decker502/spider/pkg/config"
	"github.com/decker502/spider/pkg/input"
	"github.com/decker502/spider/pkg/logging"
	"github.com/decker502/spider/pkg/render"
	"github.com/decker502/spider/pkg/systems"
	"github.com/decker502/spider/pkg/utils"
)

// AboutView 显示版本和版权信息，试用模式下还提供升级提示
// 它的消息窗口嵌套在视图内，关闭后回到视图
type AboutView struct {
	env  *Env
	view image.Rectangle
	log  *log.Logger

	trial   bool
	labels  []components.Button
	buttons []components.Button
	version *components.TextButton
	upgrade *components.TextButton
	overlay *MessageWindow
}

// NewAboutView 按当前试用状态布局视图
func NewAboutView(env *Env, view image.Rectangle) *AboutView {
	v := &AboutView{
		env:  env,
		view: view,
		log:  logging.For("AboutView"),
	}
	v.initControls()
	return v
}

func (v *AboutView) isTrial() bool {
	return v.env.Session != nil && v.env.Session.IsTrial()
}

func (v *AboutView) initControls() {
	assets := &v.env.Assets.About
	v.trial = v.isTrial()
	v.labels = nil
	v.buttons = nil
	v.upgrade = nil

	x := v.view.Min.X + 40
	y := v.view.Min.Y + v.view.Dy()/10
	xSpacing := v.view.Dx() / 20
	ySpacing := int(float64(v.view.Dy()) * 0.09)

	v.labels = append(v.labels, components.NewTextButton(config.AboutTitle, assets.TitleFont).At(image.Pt(x, y)))

	rows := []struct{ label, value string }{
		{config.AboutVersionLabel, config.Version},
		{config.AboutCopyrightLabel, config.AboutCopyrightInfo},
		{config.AboutFontLabel, config.AboutFontInfo},
	}
	labelW := 0
	for _, r := range rows {
		labelW = max(labelW, render.MeasurePoint(assets.ItemFont, r.label).X)
	}
	xValue := x + labelW + xSpacing
	for i, r := range rows {
		ry := y + ySpacing*(i+2)
		v.labels = append(v.labels, components.NewTextButton(r.label, assets.ItemFont).At(image.Pt(x, ry)))
		value := components.NewTextButton(r.value, assets.ItemFont).At(image.Pt(xValue, ry))
		v.labels = append(v.labels, value)
		if i == 0 {
			v.version = value
		}
	}
	v.version.OnClick = func(components.Button) { v.copyVersion() }
	v.buttons = append(v.buttons, v.version)

	if !v.trial {
		return
	}
	width := float64(v.view.Dx() - 2*xSpacing)
	text := utils.BreakStringIntoLines(config.AboutUpgradeLabel, width, assets.ItemFont)
	v.upgrade = components.NewTextButton(text, assets.ItemFont)
	uy := v.view.Max.Y - v.upgrade.Size().Y - ySpacing
	v.upgrade.CenterIn(image.Rect(v.view.Min.X, uy, v.view.Max.X, uy))
	v.upgrade.OnClick = func(components.Button) { v.openUpgrade() }
	v.buttons = append(v.buttons, v.upgrade)

	trialLabel := components.NewTextButton(config.AboutTrialModeLabel, assets.TitleFont)
	ty := uy - trialLabel.Size().Y - ySpacing/2
	trialLabel.CenterIn(image.Rect(v.view.Min.X, ty, v.view.Max.X, ty))
	v.labels = append(v.labels, trialLabel, v.upgrade)
}

func (v *AboutView) copyVersion() {
	if err := v.env.copyText(config.Version); err != nil {
		v.log.Warn("failed to copy version", "err", err)
		return
	}
	v.overlay = NewMessageWindow(v.view, config.VersionCopied, v.env.Assets)
}

func (v *AboutView) openUpgrade() {
	v.env.launchMarketplace()
	v.overlay = NewMessageWindow(v.view, config.MarketplaceOpened, v.env.Assets)
}

// Overlay 返回打开的消息窗口，没有时返回 nil
func (v *AboutView) Overlay() *MessageWindow { return v.overlay }

// VersionButton 返回可点击的版本号
func (v *AboutView) VersionButton() *components.TextButton { return v.version }

// UpgradeButton 返回升级提示，非试用模式下为 nil
func (v *AboutView) UpgradeButton() *components.TextButton { return v.upgrade }

// HasOverlay 实现 SubView 接口
func (v *AboutView) HasOverlay() bool { return v.overlay != nil }

// CloseOverlay 实现 SubView 接口
func (v *AboutView) CloseOverlay() { v.overlay = nil }

// Update 实现 SubView 接口，打开的消息窗口接收所有触摸
func (v *AboutView) Update(frame input.Frame) {
	if v.overlay != nil {
		if !v.overlay.Update(frame) {
			v.overlay = nil
		}
		return
	}
	if v.trial != v.isTrial() {
		v.initControls()
	}
	for _, pt := range frame.Releases() {
		if systems.DispatchRelease(v.buttons, pt) && v.overlay != nil {
			return
		}
	}
}

// Render 实现 SubView 接口
func (v *AboutView) Render(s render.Surface, _ image.Rectangle) {
	s.BeginBatch()
	drawLabels(s, v.labels)
	s.EndBatch()
	if v.overlay != nil {
		v.overlay.Render(s)
	}
}

// OnClose 实现 SubView 接口，不持久化任何数据
func (v *AboutView) OnClose() {}

func (v *AboutView) subView() {}
