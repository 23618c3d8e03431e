package scenes

import (
	"image"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/decker502/spider/pkg/components"
	"github.com/decker502/spider/pkg/config"
	"github.com/decker502/spider/pkg/ecs"
	"github.com/decker502/spider/pkg/game"
	"github.com/decker502/spider/pkg/input"
	"github.com/decker502/spider/pkg/logging"
	"github.com/decker502/spider/pkg/modules"
	"github.com/decker502/spider/pkg/render"
	"github.com/decker502/spider/pkg/systems"
)

// suitCounts 三个花色按钮依次对应的花色数
var suitCounts = [3]int{1, 2, 4}

// MainMenuScene 是菜单导航状态机。任一时刻只显示
// 主菜单、子视图或试用窗口中的一个，子视图可以
// 带有自己的消息窗口。
//
// 输入优先级从高到低：打开的覆盖窗口（试用窗口或
// 子视图的消息窗口），然后是激活的子视图，最后是菜单按钮。
type MainMenuScene struct {
	env  *modules.Env
	view image.Rectangle
	now  systems.Clock
	log  *log.Logger

	entityManager *ecs.EntityManager
	animations    *systems.ButtonAnimationSystem

	// 按点击检测顺序排列的按钮
	buttons     []components.Button
	newGame     *components.TextButton
	suitButtons [3]*components.ImageButton
	resume      *components.TextButton
	options     *components.TextButton
	statistics  *components.TextButton
	about       *components.TextButton
	banner      *components.ImageButton
	bannerText  *components.TextButton

	spiderCard image.Rectangle

	subView     modules.SubView
	trialWindow *modules.MessageWindow

	startTime   time.Time
	currentTime time.Time
}

// NewMainMenuScene 构建菜单。是否存在可继续的存档在此时确定，
// 菜单显示期间不再重新检查。clock 为 nil 时使用 time.Now
func NewMainMenuScene(env *modules.Env, view image.Rectangle, now systems.Clock) *MainMenuScene {
	if now == nil {
		now = time.Now
	}
	m := &MainMenuScene{
		env:           env,
		view:          view,
		now:           now,
		log:           logging.For("MainMenu"),
		entityManager: ecs.NewEntityManager(),
	}
	m.animations = systems.NewButtonAnimationSystem(m.entityManager, now)

	trial := m.isTrial()
	if trial {
		if err := env.Statistics.Load(); err != nil {
			m.log.Warn("failed to load statistics", "err", err)
		}
	}
	m.layout(trial)

	m.startTime = now()
	m.currentTime = m.startTime
	return m
}

func (m *MainMenuScene) isTrial() bool {
	return m.env.Session != nil && m.env.Session.IsTrial()
}

func (m *MainMenuScene) layout(trial bool) {
	assets := &m.env.Assets.Menu
	w, h := m.view.Dx(), m.view.Dy()

	switched := config.ColorWhite
	if trial {
		switched = config.ColorDimGray
	}

	if assets.SpiderCard != nil {
		b := assets.SpiderCard.Bounds()
		aspect := float64(b.Dx()) / float64(b.Dy())
		margin := config.MenuSpiderCardMargin
		cardH := min(h-2*margin, int(float64(w/2-2*margin)/aspect))
		top := m.view.Min.Y + (h-cardH)/2
		m.spiderCard = image.Rect(m.view.Min.X+margin, top, m.view.Min.X+margin+int(float64(cardH)*aspect), top+cardH)
	}

	x := m.view.Min.X + w/2 - config.MenuColumnOffset
	y := m.view.Min.Y + int(float64(h)*config.MenuTopFraction)
	ySpacing := int(float64(h) * config.MenuRowFraction)
	xImgSpacing := int(float64(w) * config.MenuSuitGapFraction)
	row := func(n int) image.Point { return image.Pt(x, y+ySpacing*n) }

	m.newGame = components.NewTextButton(config.NewGame, assets.Font).AtLine(row(config.MenuRowNewGame))
	m.newGame.OnClick = func(components.Button) { m.onNewGame() }
	m.buttons = append(m.buttons, m.newGame)

	imgW := w/8 + config.MenuSuitImageExtra
	imgH := imgW
	if assets.OneSuit != nil {
		if b := assets.OneSuit.Bounds(); b.Dx() > 0 {
			imgH = imgW * b.Dy() / b.Dx()
		}
	}
	suitTop := m.newGame.Rect.Max.Y + config.MenuSuitImageTopGap
	for i, tex := range []render.Texture{assets.OneSuit, assets.TwoSuits, assets.FourSuits} {
		left := x + (imgW+xImgSpacing)*i
		b := components.NewImageButton(tex, image.Rect(left, suitTop, left+imgW, suitTop+imgH))
		b.Visible = false
		b.Enabled = false
		if i > 0 {
			b.Color = switched
		}
		suits := suitCounts[i]
		b.OnClick = func(components.Button) { m.onSuitSelected(suits) }
		m.suitButtons[i] = b
		m.buttons = append(m.buttons, b)
	}

	m.resume = components.NewTextButton(config.Resume, assets.Font).AtLine(row(config.MenuRowResume))
	if !m.env.Board.ResumeGameExists() {
		m.resume.Enabled = false
		m.resume.Color = config.ColorDisabled
	}
	m.resume.OnClick = func(components.Button) { m.onResume() }
	m.buttons = append(m.buttons, m.resume)

	m.options = components.NewTextButton(config.Options, assets.SubFont).AtLine(row(config.MenuRowOptions))
	m.options.OnClick = func(components.Button) { m.onOptions() }
	m.buttons = append(m.buttons, m.options)

	m.statistics = components.NewTextButton(config.Statistics, assets.SubFont).AtLine(row(config.MenuRowStatistics))
	m.statistics.Color = switched
	m.statistics.OnClick = func(components.Button) { m.onStatistics() }
	m.buttons = append(m.buttons, m.statistics)

	m.about = components.NewTextButton(config.About, assets.SubFont).AtLine(row(config.MenuRowAbout))
	m.about.OnClick = func(components.Button) { m.onAbout() }
	m.buttons = append(m.buttons, m.about)

	if !trial {
		return
	}
	size := int(float64(h) * config.MenuTrialBannerFraction)
	m.banner = components.NewImageButton(assets.TrialBanner,
		image.Rect(m.view.Max.X-size, m.view.Max.Y-size, m.view.Max.X, m.view.Max.Y))
	m.banner.OnClick = func(components.Button) { m.onTrialBanner() }
	m.buttons = append(m.buttons, m.banner)

	m.bannerText = components.NewTextButton(config.MenuTrialBanner, assets.SubFont)
	m.bannerText.Color = config.ColorBlack
	m.bannerText.Rotation = -math.Pi / 4
	textH := m.bannerText.Size().Y
	m.bannerText.At(image.Pt(m.banner.Rect.Min.X+3*textH/4, m.view.Max.Y-3*textH/4))
	m.buttons = append(m.buttons, m.bannerText)
}

// Buttons 按点击检测顺序返回菜单按钮
func (m *MainMenuScene) Buttons() []components.Button { return m.buttons }

// NewGameButton 返回"新游戏"按钮
func (m *MainMenuScene) NewGameButton() *components.TextButton { return m.newGame }

// SuitButton 返回单、双、四花色按钮（索引 0、1、2）
func (m *MainMenuScene) SuitButton(i int) *components.ImageButton { return m.suitButtons[i] }

// ResumeButton 返回"继续"按钮
func (m *MainMenuScene) ResumeButton() *components.TextButton { return m.resume }

// OptionsButton 返回"选项"按钮
func (m *MainMenuScene) OptionsButton() *components.TextButton { return m.options }

// StatisticsButton 返回"统计"按钮
func (m *MainMenuScene) StatisticsButton() *components.TextButton { return m.statistics }

// AboutButton 返回"关于"按钮
func (m *MainMenuScene) AboutButton() *components.TextButton { return m.about }

// TrialBanner 返回试用横幅，正式版为 nil
func (m *MainMenuScene) TrialBanner() *components.ImageButton { return m.banner }

// SubView 返回激活的子视图，没有时返回 nil
func (m *MainMenuScene) SubView() modules.SubView { return m.subView }

// TrialWindow 返回打开的试用窗口，没有时返回 nil
func (m *MainMenuScene) TrialWindow() *modules.MessageWindow { return m.trialWindow }

// ActiveAnimations 返回正在运行的按钮动画数量
func (m *MainMenuScene) ActiveAnimations() int { return m.animations.Active() }

// Update 实现 game.Scene 接口
func (m *MainMenuScene) Update(frame input.Frame) error {
	m.Tick(frame)
	return nil
}

// Tick 运行导航状态机的一帧
func (m *MainMenuScene) Tick(frame input.Frame) {
	if m.trialWindow != nil {
		if frame.Back {
			m.trialWindow = nil
			return
		}
		if !m.trialWindow.Update(frame) {
			m.trialWindow = nil
			m.checkTrialStatus()
		}
		return
	}

	if m.subView != nil {
		if m.subView.HasOverlay() {
			if frame.Back {
				m.subView.CloseOverlay()
				return
			}
			m.subView.Update(frame)
			return
		}
		if frame.Back {
			m.subView.OnClose()
			m.subView = nil
			return
		}
		m.subView.Update(frame)
		return
	}

	if frame.Back {
		m.log.Info("exit requested")
		m.env.Session.RequestExit()
		return
	}

	m.currentTime = m.now()
	state := m.env.Session.State()
	for _, pt := range frame.Releases() {
		systems.DispatchRelease(m.buttons, pt)
		if m.trialWindow != nil || m.subView != nil || m.env.Session.State() != state {
			break
		}
	}
	m.animations.Update()
}

// checkTrialStatus 在试用窗口关闭后重新读取试用标记
// 解锁后双花色和四花色按钮永久去掉灰色，
// 包括仍在淡入中的按钮
func (m *MainMenuScene) checkTrialStatus() {
	m.env.Session.RefreshTrialStatus()
	if m.env.Session.IsTrial() {
		return
	}
	m.animations.Recolor(m.suitButtons[1], config.ColorWhite)
	m.animations.Recolor(m.suitButtons[2], config.ColorWhite)
}

func (m *MainMenuScene) openTrialWindow(text string) {
	m.trialWindow = modules.NewTrialWindow(m.view, text, m.env)
}

// onNewGame 淡入仍然隐藏的花色按钮
// 已经显示或正在淡入的按钮不受影响
func (m *MainMenuScene) onNewGame() {
	for _, b := range m.suitButtons {
		if b.Visible {
			continue
		}
		at := b.Rect.Min
		m.animations.Start(b, at, at, 0, 1, config.ButtonAnimationDuration)
	}
}

func (m *MainMenuScene) onSuitSelected(suits int) {
	if suits != 1 && m.isTrial() {
		m.openTrialWindow(config.DisabledInTrial)
		return
	}
	m.env.Board.SetSuitCount(suits)
	m.env.Events().RegisterEvent(game.EventNewGame, suits)
	m.env.Session.ChangeGameState(game.StatePlaying, false)
}

func (m *MainMenuScene) onResume() {
	m.env.Events().RegisterEvent(game.EventResumeGame)
	m.env.Session.ChangeGameState(game.StatePlaying, true)
}

func (m *MainMenuScene) onOptions() {
	m.env.Events().RegisterEvent(game.EventViewOptions)
	m.subView = modules.NewOptionsView(m.env, m.view)
}

func (m *MainMenuScene) onStatistics() {
	m.env.Events().RegisterEvent(game.EventViewStatistics)
	if m.isTrial() {
		m.openTrialWindow(config.DisabledInTrial)
		return
	}
	m.subView = modules.NewStatisticsView(m.env, m.view)
}

func (m *MainMenuScene) onAbout() {
	m.env.Events().RegisterEvent(game.EventViewAbout)
	m.subView = modules.NewAboutView(m.env, m.view)
}

func (m *MainMenuScene) onTrialBanner() {
	m.openTrialWindow(config.MenuTrialBannerNav)
}

// backgroundOffset 返回滚动标题的水平位置
// 每个 BackgroundScrollPeriod 向左移动一个标题宽度并循环
func (m *MainMenuScene) backgroundOffset(width float64) float64 {
	elapsed := m.currentTime.Sub(m.startTime)
	period := config.BackgroundScrollPeriod
	frac := float64(elapsed%period) / float64(period)
	return -width * frac
}

// Draw 实现 game.Scene 接口
func (m *MainMenuScene) Draw(s render.Surface) {
	if m.subView != nil {
		m.subView.Render(s, m.view)
	} else {
		m.drawMenu(s)
	}
	if m.trialWindow != nil {
		m.trialWindow.Render(s)
	}
}

func (m *MainMenuScene) drawMenu(s render.Surface) {
	assets := &m.env.Assets.Menu
	s.BeginBatch()

	if font := assets.BackgroundFont; font != nil {
		tw, th := font.MeasureString(config.AppName)
		tw *= config.BackgroundTextScale
		th *= config.BackgroundTextScale
		x := m.backgroundOffset(tw)
		y := -(th - float64(m.view.Dy())) / 2
		opts := &render.TextOptions{Scale: config.BackgroundTextScale}
		pos := image.Pt(m.view.Min.X+int(x), m.view.Min.Y+int(y))
		s.DrawText(font, config.AppName, pos, config.ColorBackgroundText, opts)
		if x+tw < float64(m.view.Dx()) {
			s.DrawText(font, config.AppName, pos.Add(image.Pt(int(tw), 0)), config.ColorBackgroundText, opts)
		}
	}

	if assets.SpiderCard != nil {
		s.DrawTexture(assets.SpiderCard, m.spiderCard, config.ColorWhite, nil)
	}
	systems.DrawButtons(s, m.buttons)
	s.EndBatch()
}
