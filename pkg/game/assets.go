package game

import (
	"fmt"

	"github.com/decker502/spider/pkg/config"
	"github.com/decker502/spider/pkg/render"
)

// SuitNames 四种花色的纹理名称，按 Suit 顺序排列
var SuitNames = [4]string{"Spade", "Diamond", "Club", "Heart"}

// ValueNames 十三种点数的纹理名称，按 Value 顺序排列
var ValueNames = [13]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// 与配置无关的各组步数
const (
	cardGroupFixedSteps = 5 // 正面、背面、高亮端/中段、占位
	boardGroupSteps     = 3
	victoryGroupSteps   = 7
	menuGroupSteps      = 9
	statsGroupSteps     = 3 + len(SuitNames)
	optionsFontSteps    = 2
	themePreviewFields  = 6
	aboutGroupSteps     = 2
	messageGroupSteps   = 2
)

// CardAssets 当前主题包的纹理
type CardAssets struct {
	Theme           string
	Front           render.Texture
	Back            render.Texture
	HighlightEnd    render.Texture
	HighlightCenter render.Texture
	Placeholder     render.Texture
	Suits           [4]render.Texture
	Values          [13]render.Texture
}

// BoardAssets 牌桌装饰
type BoardAssets struct {
	Gradient render.Texture
	// Blank 程序生成的 1x1 白色纹理，用于遮罩和进度条
	Blank render.Texture
	Undo  render.Texture
}

// VictoryAssets 胜利庆祝动画使用的资源
type VictoryAssets struct {
	WinFont   render.Font
	AgainFont render.Font
	Rocket    render.Texture
	Puffs     [2]render.Texture
	Fireworks [2]render.Texture
}

// MenuAssets 主菜单装饰
type MenuAssets struct {
	SpiderCard      render.Texture
	Font            render.Font
	SubFont         render.Font
	TrialDetailFont render.Font
	BackgroundFont  render.Font
	OneSuit         render.Texture
	TwoSuits        render.Texture
	FourSuits       render.Texture
	// TrialBanner 非试用模式下为 nil
	TrialBanner render.Texture
}

// StatisticsAssets 统计视图使用的资源
type StatisticsAssets struct {
	TitleFont render.Font
	ItemFont  render.Font
	ResetFont render.Font
	Suits     [4]render.Texture
}

// ThemePreview 选项视图中展示的主题包子集
type ThemePreview struct {
	Front           render.Texture
	Value           render.Texture
	Suit            render.Texture
	Back            render.Texture
	HighlightCenter render.Texture
	HighlightEnd    render.Texture
}

// OptionsAssets 选项视图使用的资源
type OptionsAssets struct {
	TitleFont render.Font
	ItemFont  render.Font
	Themes    []ThemePreview
}

// AboutAssets 关于视图使用的资源
type AboutAssets struct {
	TitleFont render.Font
	ItemFont  render.Font
}

// MessageAssets 覆盖窗口使用的资源
type MessageAssets struct {
	Background render.Texture
	Font       render.Font
}

// Assets 持有所有已加载的资源。由加载场景构建一次，
// 然后传给每个视图；不从包级状态读取资源。
//
// ReloadTheme 在帧之间整体替换 Cards 和 Board，
// 已经拿到旧指针的帧仍会绘制一致的一套资源。
type Assets struct {
	ThemePacks []string
	Trial      bool

	Cards      *CardAssets
	Board      *BoardAssets
	Victory    VictoryAssets
	Menu       MenuAssets
	Statistics StatisticsAssets
	Options    OptionsAssets
	About      AboutAssets
	Message    MessageAssets
}

// NewAssets 为给定的主题包创建一个空的资源集
func NewAssets(themePacks []string, trial bool) *Assets {
	if len(themePacks) == 0 {
		themePacks = config.DefaultThemePacks
	}
	return &Assets{
		ThemePacks: append([]string(nil), themePacks...),
		Trial:      trial,
		Cards:      &CardAssets{},
		Board:      &BoardAssets{},
	}
}

func themePath(theme, name string) string {
	return "ThemePacks/" + theme + "/" + name + ".png"
}

func cardPath(theme, name string) string {
	return themePath(theme, "Card/"+name)
}

// stepper 按顺序加载资源，每加载一个就报告一次进度
// 第一次失败之后的调用都不做任何事，因此加载组可以
// 写成直线代码，最后只检查一次错误。
type stepper struct {
	l        Loader
	progress ProgressFunc
	err      error
}

func (s *stepper) texture(name string) render.Texture {
	if s.err != nil {
		return nil
	}
	tex, err := s.l.LoadTexture(name)
	if err != nil {
		s.err = err
		return nil
	}
	s.progress()
	return tex
}

func (s *stepper) font(id string) render.Font {
	if s.err != nil {
		return nil
	}
	f, err := s.l.LoadFont(id)
	if err != nil {
		s.err = err
		return nil
	}
	s.progress()
	return f
}

// step 为不会失败的工作报告进度
func (s *stepper) step() {
	if s.err == nil {
		s.progress()
	}
}

func loadCards(s *stepper, theme string) *CardAssets {
	c := &CardAssets{Theme: theme}
	c.Front = s.texture(cardPath(theme, "Card"))
	c.Back = s.texture(cardPath(theme, "CardBack_White"))
	c.HighlightEnd = s.texture(cardPath(theme, "Highlight_End"))
	c.HighlightCenter = s.texture(cardPath(theme, "Highlight_Center"))
	c.Placeholder = s.texture(cardPath(theme, "Placeholder"))
	for i, name := range SuitNames {
		c.Suits[i] = s.texture(cardPath(theme, name))
	}
	for i, name := range ValueNames {
		c.Values[i] = s.texture(cardPath(theme, name))
	}
	return c
}

func loadBoard(s *stepper, theme string) *BoardAssets {
	b := &BoardAssets{}
	b.Gradient = s.texture("Gradient.png")
	if s.err == nil {
		b.Blank = s.l.SolidTexture(config.ColorWhite)
	}
	s.step()
	b.Undo = s.texture(themePath(theme, "Undo"))
	return b
}

// CardGroup 加载当前主题的卡牌纹理
func (a *Assets) CardGroup(theme func() string) LoadGroup {
	return &funcGroup{
		name:  "cards",
		steps: cardGroupFixedSteps + len(SuitNames) + len(ValueNames),
		load: func(l Loader, progress ProgressFunc) error {
			s := &stepper{l: l, progress: progress}
			cards := loadCards(s, theme())
			if s.err != nil {
				return s.err
			}
			a.Cards = cards
			return nil
		},
	}
}

// BoardGroup 加载牌桌装饰，包括程序生成的空白纹理
func (a *Assets) BoardGroup(theme func() string) LoadGroup {
	return &funcGroup{
		name:  "board",
		steps: boardGroupSteps,
		load: func(l Loader, progress ProgressFunc) error {
			s := &stepper{l: l, progress: progress}
			board := loadBoard(s, theme())
			if s.err != nil {
				return s.err
			}
			a.Board = board
			return nil
		},
	}
}

// VictoryGroup 加载胜利庆祝资源
func (a *Assets) VictoryGroup() LoadGroup {
	return &funcGroup{
		name:  "victory",
		steps: victoryGroupSteps,
		load: func(l Loader, progress ProgressFunc) error {
			s := &stepper{l: l, progress: progress}
			v := VictoryAssets{}
			v.WinFont = s.font(FontWin)
			v.AgainFont = s.font(FontAgain)
			v.Rocket = s.texture("Win/Rocket.png")
			for i := range v.Puffs {
				v.Puffs[i] = s.texture(fmt.Sprintf("Win/Puff%d.png", i+1))
			}
			for i := range v.Fireworks {
				v.Fireworks[i] = s.texture(fmt.Sprintf("Win/Firework%d.png", i+1))
			}
			if s.err != nil {
				return s.err
			}
			a.Victory = v
			return nil
		},
	}
}

// MenuGroup 加载主菜单装饰。试用横幅这一步总会报告，
// 横幅本身只在试用模式下加载。
func (a *Assets) MenuGroup() LoadGroup {
	return &funcGroup{
		name:  "menu",
		steps: menuGroupSteps,
		load: func(l Loader, progress ProgressFunc) error {
			s := &stepper{l: l, progress: progress}
			m := MenuAssets{}
			m.SpiderCard = s.texture("Menu/SpiderCard.png")
			m.Font = s.font(FontMenu)
			m.SubFont = s.font(FontMenuSub)
			m.TrialDetailFont = s.font(FontMenuTrialDetail)
			m.BackgroundFont = s.font(FontMenuBackground)
			m.OneSuit = s.texture("Menu/OneSuit.png")
			m.TwoSuits = s.texture("Menu/TwoSuits.png")
			m.FourSuits = s.texture("Menu/FourSuits.png")
			if a.Trial {
				m.TrialBanner = s.texture("Menu/TrialBanner.png")
			} else {
				s.step()
			}
			if s.err != nil {
				return s.err
			}
			a.Menu = m
			return nil
		},
	}
}

// StatisticsGroup 加载统计视图资源
// 其花色图标总是来自第一个主题包
func (a *Assets) StatisticsGroup() LoadGroup {
	return &funcGroup{
		name:  "statistics",
		steps: statsGroupSteps,
		load: func(l Loader, progress ProgressFunc) error {
			s := &stepper{l: l, progress: progress}
			st := StatisticsAssets{}
			st.TitleFont = s.font(FontMenu)
			st.ItemFont = s.font(FontStatistics)
			st.ResetFont = s.font(FontMenuSub)
			for i, name := range SuitNames {
				st.Suits[i] = s.texture(cardPath(a.ThemePacks[0], name))
			}
			if s.err != nil {
				return s.err
			}
			a.Statistics = st
			return nil
		},
	}
}

// OptionsGroup 加载选项视图：两个字体，
// 以及每个主题包六张预览纹理
func (a *Assets) OptionsGroup() LoadGroup {
	return &funcGroup{
		name:  "options",
		steps: optionsFontSteps + len(a.ThemePacks)*themePreviewFields,
		load: func(l Loader, progress ProgressFunc) error {
			s := &stepper{l: l, progress: progress}
			o := OptionsAssets{}
			o.TitleFont = s.font(FontMenu)
			o.ItemFont = s.font(FontStatistics)
			for _, theme := range a.ThemePacks {
				o.Themes = append(o.Themes, ThemePreview{
					Front:           s.texture(cardPath(theme, "Card")),
					Value:           s.texture(cardPath(theme, "A")),
					Suit:            s.texture(cardPath(theme, "Spade")),
					Back:            s.texture(cardPath(theme, "CardBack_White")),
					HighlightCenter: s.texture(cardPath(theme, "Highlight_Center")),
					HighlightEnd:    s.texture(cardPath(theme, "Highlight_End")),
				})
			}
			if s.err != nil {
				return s.err
			}
			a.Options = o
			return nil
		},
	}
}

// AboutGroup 加载关于视图的字体
func (a *Assets) AboutGroup() LoadGroup {
	return &funcGroup{
		name:  "about",
		steps: aboutGroupSteps,
		load: func(l Loader, progress ProgressFunc) error {
			s := &stepper{l: l, progress: progress}
			ab := AboutAssets{}
			ab.TitleFont = s.font(FontMenu)
			ab.ItemFont = s.font(FontAbout)
			if s.err != nil {
				return s.err
			}
			a.About = ab
			return nil
		},
	}
}

// MessageGroup 加载覆盖窗口装饰
func (a *Assets) MessageGroup() LoadGroup {
	return &funcGroup{
		name:  "message",
		steps: messageGroupSteps,
		load: func(l Loader, progress ProgressFunc) error {
			s := &stepper{l: l, progress: progress}
			msg := MessageAssets{}
			msg.Background = s.texture("Menu/MessageWindow.png")
			msg.Font = s.font(FontMessage)
			if s.err != nil {
				return s.err
			}
			a.Message = msg
			return nil
		},
	}
}

// Plan 返回启动加载计划：先加载卡牌资源，然后是菜单
// 及其子视图，最后是覆盖窗口装饰。theme 在卡牌组和
// 牌桌组运行时才读取。
func (a *Assets) Plan(theme func() string) *LoadPlan {
	return NewLoadPlan(
		a.CardGroup(theme),
		a.BoardGroup(theme),
		a.VictoryGroup(),
		a.MenuGroup(),
		a.StatisticsGroup(),
		a.OptionsGroup(),
		a.AboutGroup(),
		a.MessageGroup(),
	)
}

// ReloadTheme 为 theme 重新加载主题相关的纹理（卡牌和牌桌），不报告进度
// 两组都加载成功后才替换旧资源；出错时保留之前的主题。
func (a *Assets) ReloadTheme(l Loader, theme string) error {
	s := &stepper{l: l, progress: func() {}}
	cards := loadCards(s, theme)
	board := loadBoard(s, theme)
	if s.err != nil {
		return fmt.Errorf("reload theme %s: %w", theme, s.err)
	}
	a.Cards = cards
	a.Board = board
	return nil
}
