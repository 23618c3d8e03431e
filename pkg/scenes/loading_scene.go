package scenes

import (
	"image"

	"github.com/charmbracelet/log"

	"github.com/decker502/spider/pkg/config"
	"github.com/decker502/spider/pkg/game"
	"github.com/decker502/spider/pkg/input"
	"github.com/decker502/spider/pkg/logging"
	"github.com/decker502/spider/pkg/render"
)

// LoadingScene 每帧加载启动计划中的一个组，
// 使进度条在加载资源期间持续前进
type LoadingScene struct {
	plan   *game.LoadPlan
	loader game.Loader
	font   render.Font
	view   image.Rectangle

	next     int // 下一个要加载的组
	progress int // 已报告的步数
	total    int
	done     bool

	frame render.Texture
	fill  render.Texture

	// onComplete 在最后一组加载完成的那一帧执行一次
	onComplete func() error
	log        *log.Logger
}

// NewLoadingScene 创建加载场景
// font 用于绘制状态文字，不能来自计划本身
func NewLoadingScene(plan *game.LoadPlan, loader game.Loader, font render.Font, view image.Rectangle, onComplete func() error) *LoadingScene {
	return &LoadingScene{
		plan:       plan,
		loader:     loader,
		font:       font,
		view:       view,
		total:      plan.StepCount(),
		frame:      loader.SolidTexture(config.LoadingBarFrameColor),
		fill:       loader.SolidTexture(config.LoadingBarFillColor),
		onComplete: onComplete,
		log:        logging.For("LoadingScene"),
	}
}

// Progress 返回已报告和已声明的步数
func (s *LoadingScene) Progress() (done, total int) {
	return s.progress, s.total
}

// Done 判断所有组是否已加载
func (s *LoadingScene) Done() bool {
	return s.done
}

// Update 加载下一个组，加载错误会结束游戏循环
func (s *LoadingScene) Update(input.Frame) error {
	if s.done {
		return nil
	}
	if s.next < s.plan.Len() {
		name := s.plan.Groups()[s.next].Name()
		if err := s.plan.LoadGroup(s.next, s.loader, func() { s.progress++ }); err != nil {
			s.log.Error("loading failed", "group", name, "err", err)
			return err
		}
		s.log.Debug("group loaded", "group", name, "progress", s.progress, "total", s.total)
		s.next++
		return nil
	}

	s.done = true
	s.log.Info("loading complete", "steps", s.progress)
	if s.onComplete != nil {
		return s.onComplete()
	}
	return nil
}

// Draw 渲染进度条和状态文字
func (s *LoadingScene) Draw(surface render.Surface) {
	w := int(float64(s.view.Dx()) * config.LoadingBarWidthFraction)
	x := s.view.Min.X + (s.view.Dx()-w)/2
	y := s.view.Min.Y + (s.view.Dy()-config.LoadingBarHeight)/2
	bar := image.Rect(x, y, x+w, y+config.LoadingBarHeight)

	inner := bar.Inset(config.LoadingBarBorder)
	if s.total > 0 {
		inner.Max.X = inner.Min.X + inner.Dx()*min(s.progress, s.total)/s.total
	}

	surface.BeginBatch()
	surface.DrawTexture(s.frame, bar, config.ColorWhite, nil)
	if inner.Dx() > 0 {
		surface.DrawTexture(s.fill, inner, config.ColorWhite, nil)
	}
	if s.font != nil {
		size := render.MeasurePoint(s.font, config.LoadingText)
		pos := image.Pt(s.view.Min.X+(s.view.Dx()-size.X)/2, bar.Min.Y-config.LoadingTextGap-size.Y)
		surface.DrawText(s.font, config.LoadingText, pos, config.ColorWhite, nil)
	}
	surface.EndBatch()
}
