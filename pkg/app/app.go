// Package app 将存储、资源集和场景组装成 ebiten.Game
//
// 桌面入口（main.go）根据命令行参数构建 Config 并调用 NewApp；
// 游戏用到的一切都从外部传入，因此测试可以用内存中的
// 假实现跑完整个场景流程。
package app

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/spider/pkg/config"
	"github.com/decker502/spider/pkg/game"
	"github.com/decker502/spider/pkg/input"
	"github.com/decker502/spider/pkg/logging"
	"github.com/decker502/spider/pkg/modules"
	"github.com/decker502/spider/pkg/render"
	"github.com/decker502/spider/pkg/scenes"
	"github.com/decker502/spider/pkg/systems"
	"github.com/decker502/spider/pkg/utils"
)

// Config 包含 NewApp 需要的全部参数
type Config struct {
	// Assets 资源管理器读取的资源根目录
	Assets fs.FS
	// Manifest YAML 资源清单（data/resources.yaml）
	Manifest []byte
	// Width 和 Height 逻辑屏幕尺寸，为 0 时使用 config 中的默认值
	Width, Height int

	// Props 持久化选项、统计和存档，为 nil 时只保存在内存中
	Props game.PropStore
	// License 决定是否为试用模式，为 nil 表示正式版
	License game.LicenseChecker
	// Analytics 接收使用事件，为 nil 时丢弃
	Analytics game.Analytics
	// Marketplace 打开商店页面，为 nil 时将 config.MarketplaceURL
	// 复制到剪贴板
	Marketplace modules.Marketplace

	// Loader 替换根据 Assets 构建的资源管理器
	Loader game.Loader
	// Input 替换 Ebitengine 输入源
	Input input.Source
	// Rand 用于新牌局洗牌，为 nil 时以时钟为种子
	Rand *rand.Rand
	// Now 替换 time.Now，用于动画和游戏时长
	Now systems.Clock
}

// App 即游戏本身：持有场景管理器，并在会话状态变化时切换场景
type App struct {
	scenes  *game.SceneManager
	session *game.Session
	env     *modules.Env
	input   input.Source
	view    image.Rectangle
	themes  *game.ResourceConfig
	rng     *rand.Rand
	now     systems.Clock

	// err 是状态监听器中发生的场景切换失败
	// 在下一次 Update 中返回
	err      error
	shutdown bool
	log      *log.Logger
}

// NewApp 解析资源清单、构建存储并启动加载场景
//
// 返回：
//   - *App: 可直接传给 ebiten.RunGame 的游戏
//   - error: 清单无效或加载场景无法启动时返回
func NewApp(cfg Config) (*App, error) {
	manifest, err := game.ParseResourceConfig(cfg.Manifest)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	width, height := cfg.Width, cfg.Height
	if width <= 0 || height <= 0 {
		width, height = config.GameWindowWidth, config.GameWindowHeight
	}

	loader := cfg.Loader
	if loader == nil {
		if cfg.Assets == nil {
			return nil, errors.New("app: no asset file system")
		}
		loader = game.NewResourceManager(cfg.Assets, manifest)
	}
	source := cfg.Input
	if source == nil {
		source = input.NewEbitenSource()
	}
	rng := cfg.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>32))
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	marketplace := cfg.Marketplace
	if marketplace == nil {
		marketplace = modules.NewMarketplace(config.MarketplaceURL)
	}

	a := &App{
		scenes:  game.NewSceneManager(),
		session: game.NewSession(cfg.License),
		input:   source,
		view:    image.Rect(0, 0, width, height),
		themes:  manifest,
		rng:     rng,
		now:     now,
		log:     logging.For("App"),
	}

	options := game.NewOptionsStore(cfg.Props)
	if err := options.Load(); err != nil {
		a.log.Warn("failed to load options, using defaults", "err", err)
	}
	a.env = &modules.Env{
		Assets:      game.NewAssets(manifest.ThemePacks, a.session.IsTrial()),
		Loader:      loader,
		Session:     a.session,
		Options:     options,
		Statistics:  game.NewStatisticsStore(cfg.Props),
		Board:       game.NewBoard(cfg.Props),
		Analytics:   cfg.Analytics,
		Marketplace: marketplace,
	}

	a.scenes.SetSceneFactory(a.newScene)
	a.session.SetListener(a.onStateChange)
	if err := a.scenes.Show(game.StateLoading, false); err != nil {
		return nil, err
	}
	a.log.Info("app created", "view", a.view.Size(), "trial", a.session.IsTrial(),
		"themes", manifest.ThemePacks)
	return a, nil
}

// theme 返回保存的主题包；保存的主题未安装时返回清单中的第一个主题
func (a *App) theme() string {
	saved := a.env.Options.ThemePack()
	if a.themes.ThemeIndex(saved) >= 0 {
		return saved
	}
	fallback := a.themes.ThemePacks[0]
	a.log.Warn("saved theme pack not installed", "theme", saved, "using", fallback)
	a.env.Options.SetThemePack(fallback)
	return fallback
}

func (a *App) newScene(state game.GameState, resume bool) (game.Scene, error) {
	switch state {
	case game.StateLoading:
		plan := a.env.Assets.Plan(a.theme)
		return scenes.NewLoadingScene(plan, a.env.Loader, render.BuiltinFace(), a.view, func() error {
			a.session.ChangeGameState(game.StateMenu, false)
			return a.err
		}), nil
	case game.StateMenu:
		return scenes.NewMainMenuScene(a.env, a.view, a.now), nil
	case game.StatePlaying:
		return scenes.NewTableScene(a.env, a.view, resume, a.rng, a.now), nil
	default:
		return nil, fmt.Errorf("no scene for state %s", state)
	}
}

func (a *App) onStateChange(state game.GameState, resume bool) {
	if err := a.scenes.Show(state, resume); err != nil {
		a.log.Error("scene switch failed", "state", state, "err", err)
		a.err = err
	}
}

// Session 返回共享的会话
func (a *App) Session() *game.Session { return a.session }

// Env 返回各场景共享的协作对象
func (a *App) Env() *modules.Env { return a.env }

// Scene 返回激活的场景
func (a *App) Scene() game.Scene { return a.scenes.GetCurrentScene() }

// Step 让激活的场景处理一帧输入
//
// 返回：
//   - ebiten.Termination: 收到退出请求并且激活场景已保存之后
//   - error: 加载失败或场景切换失败，会结束游戏循环
func (a *App) Step(frame input.Frame) error {
	if err := a.scenes.Update(frame); err != nil {
		return err
	}
	if a.err != nil {
		return a.err
	}
	if a.session.ExitRequested() {
		a.Shutdown()
		return ebiten.Termination
	}
	return nil
}

// Shutdown 保存激活的场景，之后的调用不做任何事
func (a *App) Shutdown() {
	if a.shutdown {
		return
	}
	a.shutdown = true
	if !a.scenes.SaveOnExit() {
		a.log.Error("saving on exit failed")
	}
	a.log.Info("shutdown")
}

// Update 实现 ebiten.Game 接口
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.Shutdown()
		return ebiten.Termination
	}
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	return a.Step(a.input.Poll())
}

// Draw 实现 ebiten.Game 接口
func (a *App) Draw(screen *ebiten.Image) {
	a.scenes.Draw(render.NewEbitenSurface(screen))
}

// DrawFinalScreen 实现 ebiten.FinalScreenDrawer 接口：
// 黑边保持黑色，缩放后的画面使用线性过滤
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 实现 ebiten.Game 接口。逻辑尺寸固定，
// 由 Ebitengine 缩放到窗口
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.view.Dx(), a.view.Dy()
}
