package systems

import (
	"image"
	"image/color"
	"time"

	"github.com/charmbracelet/log"

	"github.com/decker502/spider/pkg/components"
	"github.com/decker502/spider/pkg/ecs"
	"github.com/decker502/spider/pkg/logging"
	"github.com/decker502/spider/pkg/utils"
)

// Clock 返回当前的墙上时间
type Clock func() time.Time

// ButtonAnimationSystem 负责按钮的淡入和滑动
// 每个动画是一个带 ButtonAnimationComponent 的实体，动画结束前
// 由它接管按钮的矩形和颜色，结束后实体被销毁。
//
// 对仍在动画中的按钮再次调用 Start 会让两个动画同时写同一个按钮，
// 调用方不能这样做。
type ButtonAnimationSystem struct {
	entityManager *ecs.EntityManager
	now           Clock
	log           *log.Logger
}

// NewButtonAnimationSystem 创建系统，clock 为 nil 时使用 time.Now
func NewButtonAnimationSystem(em *ecs.EntityManager, now Clock) *ButtonAnimationSystem {
	if now == nil {
		now = time.Now
	}
	return &ButtonAnimationSystem{
		entityManager: em,
		now:           now,
		log:           logging.For("ButtonAnimation"),
	}
}

// Start 注册一个动画，并立即让按钮可见
// 按钮当前的颜色作为透明度缩放的基准色
func (s *ButtonAnimationSystem) Start(btn components.Button, from, to image.Point, fromOpacity, toOpacity float64, duration time.Duration) ecs.EntityID {
	base := btn.Base()
	start := s.now()

	anim := &components.ButtonAnimationComponent{
		Button:      btn,
		From:        from,
		To:          to,
		FromOpacity: fromOpacity,
		ToOpacity:   toOpacity,
		EndColor:    base.Color,
		Duration:    duration,
		StartTime:   start,
		EndTime:     start.Add(duration),
	}
	base.Visible = true

	id := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, id, anim)
	s.log.Debug("animation started", "entity", id, "from", from, "to", to, "duration", duration)
	return id
}

// Update 将所有动画推进到当前时间，并删除已完成的动画
// 返回本次调用中完成的动画数量
func (s *ButtonAnimationSystem) Update() int {
	now := s.now()
	finished := 0

	for _, id := range ecs.GetEntitiesWith1[*components.ButtonAnimationComponent](s.entityManager) {
		anim, ok := ecs.GetComponent[*components.ButtonAnimationComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if !advance(anim, now) {
			s.entityManager.DestroyEntity(id)
			finished++
		}
	}

	s.entityManager.RemoveMarkedEntities()
	return finished
}

// Recolor 修改按钮最终停留的颜色
// btn 上正在运行的动画保持透明度曲线并以 c 结束；空闲按钮立即变为 c
func (s *ButtonAnimationSystem) Recolor(btn components.Button, c color.RGBA) {
	base := btn.Base()
	running := false
	for _, id := range ecs.GetEntitiesWith1[*components.ButtonAnimationComponent](s.entityManager) {
		anim, ok := ecs.GetComponent[*components.ButtonAnimationComponent](s.entityManager, id)
		if !ok || anim.Button.Base() != base {
			continue
		}
		anim.EndColor = c
		running = true
	}
	if !running {
		base.Color = c
	}
}

// Active 返回正在运行的动画数量
func (s *ButtonAnimationSystem) Active() int {
	return len(ecs.GetEntitiesWith1[*components.ButtonAnimationComponent](s.entityManager))
}

// advance 将插值后的状态写入按钮，并返回动画是否仍在运行
// 已完成的动画会直接跳到结束状态，并让按钮变为可用
func advance(anim *components.ButtonAnimationComponent, now time.Time) bool {
	base := anim.Button.Base()
	size := base.Rect.Size()

	if anim.Finished(now) {
		base.Rect = image.Rectangle{Min: anim.To, Max: anim.To.Add(size)}
		base.Color = utils.ScaleColor(anim.EndColor, anim.ToOpacity)
		base.Enabled = true
		return false
	}

	t := anim.Progress(now)
	pos := utils.LerpPoint(anim.From, anim.To, t)
	base.Rect = image.Rectangle{Min: pos, Max: pos.Add(size)}
	base.Color = utils.ScaleColor(anim.EndColor, utils.Lerp(anim.FromOpacity, anim.ToOpacity, t))
	return true
}
