package modules

import (
	"fmt"
	"image"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/decker502/spider/pkg/components"
	"github.com/decker502/spider/pkg/config"
	"github.com/decker502/spider/pkg/game"
	"github.com/decker502/spider/pkg/input"
	"github.com/decker502/spider/pkg/logging"
	"github.com/decker502/spider/pkg/render"
)

// StatisticsView 显示各难度的游戏计数和重置按钮
type StatisticsView struct {
	noOverlay

	env    *Env
	view   image.Rectangle
	labels []components.Button
	reset  *components.TextButton
	log    *log.Logger
}

// NewStatisticsView 加载保存的统计数据并布局表格
func NewStatisticsView(env *Env, view image.Rectangle) *StatisticsView {
	v := &StatisticsView{
		env:  env,
		view: view,
		log:  logging.For("StatisticsView"),
	}
	if err := env.Statistics.Load(); err != nil {
		v.log.Warn("failed to load statistics", "err", err)
	}
	v.initControls()
	return v
}

// WinRate 将 won/total 格式化为截断的百分比，没有对局时为 0%
func WinRate(won, total int) string {
	if total == 0 {
		return "0%"
	}
	return strconv.Itoa(won*100/total) + "%"
}

// FormatPlayTime 将秒数格式化为 hh:mm:ss，
// 满一天时在前面加上整天数
func FormatPlayTime(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	days := seconds / 86400
	h := seconds / 3600 % 24
	m := seconds / 60 % 60
	s := seconds % 60
	if days > 0 {
		return fmt.Sprintf("%d.%02d:%02d:%02d", days, h, m, s)
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// initControls 根据当前计数器重建所有标签
func (v *StatisticsView) initControls() {
	assets := &v.env.Assets.Statistics
	stats := v.env.Statistics.Stats()
	v.labels = nil

	origin := v.view.Min
	x := origin.X + 10
	y := origin.Y + 10
	xSpacing := v.view.Dx() / 20
	ySpacing := min(v.view.Dy()/20, 10)
	xTable := origin.X + int(float64(v.view.Dx())*config.StatsTableStartFraction)
	col := v.view.Dx() / config.StatsTableColumnDivisor

	title := components.NewTextButton(config.Statistics, assets.TitleFont).At(image.Pt(x, y))
	v.labels = append(v.labels, title)
	y += max(title.Size().Y, col) + ySpacing - col

	icon := func(suit game.Suit, x, y int) {
		tex := assets.Suits[suit]
		v.labels = append(v.labels, components.NewCustomButton(
			image.Rect(x, y, x+col/2, y+col/2),
			func(b *components.CustomButton, s render.Surface) {
				s.DrawTexture(tex, b.Rect, config.ColorWhite, nil)
			},
		))
	}
	// 单花色
	icon(game.Spade, xTable+col/4, y+col/4)
	// 双花色
	icon(game.Spade, xTable+col, y+col/4)
	icon(game.Diamond, xTable+col+col/2, y+col/4)
	// 四花色
	icon(game.Spade, xTable+col*2, y)
	icon(game.Diamond, xTable+col*2+col/2, y)
	icon(game.Club, xTable+col*2, y+col/2)
	icon(game.Heart, xTable+col*2+col/2, y+col/2)
	y += col

	row := func(label string, cell func(d game.Difficulty) string) {
		l := components.NewTextButton(label, assets.ItemFont).At(image.Pt(x, y))
		v.labels = append(v.labels, l)
		for i, d := range []game.Difficulty{game.Easy, game.Medium, game.Hard} {
			info := components.NewTextButton(cell(d), assets.ItemFont)
			info.CenterIn(image.Rect(xTable+col*i, y, xTable+col*(i+1), y))
			v.labels = append(v.labels, info)
		}
		y += l.Size().Y + ySpacing
	}
	row(config.StatsTotalGames, func(d game.Difficulty) string {
		played, _ := stats.Games(d)
		return strconv.Itoa(played)
	})
	row(config.StatsGamesWon, func(d game.Difficulty) string {
		_, won := stats.Games(d)
		return strconv.Itoa(won)
	})
	row(config.StatsWinRate, func(d game.Difficulty) string {
		played, won := stats.Games(d)
		return WinRate(won, played)
	})
	y += ySpacing * 2

	total := components.NewTextButton(config.StatsTotalTimeLabel, assets.ItemFont).At(image.Pt(x, y))
	v.labels = append(v.labels, total)
	played := components.NewTextButton(FormatPlayTime(stats.TotalTimePlayed), assets.ItemFont)
	played.CenterIn(image.Rect(xTable, y, xTable+col*3, y))
	v.labels = append(v.labels, played)

	v.reset = components.NewTextButton(config.StatsResetButton, assets.ResetFont)
	size := v.reset.Size()
	v.reset.At(image.Pt(v.view.Max.X-size.X-xSpacing, v.view.Max.Y-size.Y-ySpacing))
	v.reset.OnClick = func(components.Button) { v.onReset() }
}

// Labels 返回当前的表格标签
func (v *StatisticsView) Labels() []components.Button {
	return v.labels
}

// ResetButton 返回重置按钮
func (v *StatisticsView) ResetButton() *components.TextButton {
	return v.reset
}

func (v *StatisticsView) onReset() {
	v.env.Statistics.Reset()
	if err := v.env.Statistics.Save(); err != nil {
		v.log.Error("failed to save statistics", "err", err)
	}
	v.initControls()
	v.env.Events().RegisterEvent(game.EventResetStatistics)
}

// Update 实现 SubView 接口
func (v *StatisticsView) Update(frame input.Frame) {
	for _, pt := range frame.Releases() {
		if v.reset.Contains(pt) {
			if v.reset.OnClick != nil {
				v.reset.OnClick(v.reset)
			}
			break
		}
	}
}

// Render 实现 SubView 接口
func (v *StatisticsView) Render(s render.Surface, _ image.Rectangle) {
	s.BeginBatch()
	drawLabels(s, v.labels)
	v.reset.Draw(s)
	s.EndBatch()
}

// OnClose 实现 SubView 接口，统计数据在变化时已保存
func (v *StatisticsView) OnClose() {}

func (v *StatisticsView) subView() {}
