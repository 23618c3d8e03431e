package scenes

import (
	"image"
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/decker502/spider/pkg/config"
	"github.com/decker502/spider/pkg/game"
	"github.com/decker502/spider/pkg/input"
	"github.com/decker502/spider/pkg/logging"
	"github.com/decker502/spider/pkg/modules"
	"github.com/decker502/spider/pkg/render"
	"github.com/decker502/spider/pkg/systems"
)

// 牌桌布局，相对于卡牌尺寸
const (
	// faceDownOverlap 背面朝上的牌被下一张压住后露出的部分
	faceDownOverlap = 8 // 卡牌高度 / n
	// faceUpOverlap 正面朝上的牌被下一张压住后露出的部分
	faceUpOverlap = 4
	// stockPileOffset 牌堆之间的间距
	stockPileOffset = 6 // 卡牌宽度 / n
)

var redSuit = color.RGBA{R: 200, A: 255}

// TableScene 显示一局已发好的牌。它开一局新牌或恢复存档，
// 按返回键时保存牌局以便继续，并回到菜单
type TableScene struct {
	env  *modules.Env
	view image.Rectangle
	now  systems.Clock
	log  *log.Logger

	deal    *game.Deal
	resumed bool
	started time.Time
}

// NewTableScene 用 rng 发牌；resume 为 true 且存在存档时恢复存档
// 新发的一局计为已玩一局。clock 为 nil 时使用 time.Now
func NewTableScene(env *modules.Env, view image.Rectangle, resume bool, rng *rand.Rand, now systems.Clock) *TableScene {
	if now == nil {
		now = time.Now
	}
	t := &TableScene{
		env:  env,
		view: view,
		now:  now,
		log:  logging.For("Table"),
	}
	if resume {
		t.deal = env.Board.LoadSaved()
		t.resumed = t.deal != nil
		if !t.resumed {
			t.log.Warn("no saved game to resume, dealing a new one")
		}
	}
	if t.deal == nil {
		t.deal = env.Board.Deal(rng)
		t.recordNewGame()
	}
	t.started = now()
	t.log.Info("table ready", "suits", t.deal.SuitCount, "resumed", t.resumed)
	return t
}

func (t *TableScene) recordNewGame() {
	stats := t.env.Statistics
	if err := stats.Load(); err != nil {
		t.log.Warn("failed to load statistics", "err", err)
	}
	stats.RecordGame(t.deal.SuitCount, false, 0)
	if err := stats.Save(); err != nil {
		t.log.Error("failed to save statistics", "err", err)
	}
}

// Deal 返回桌上的牌局
func (t *TableScene) Deal() *game.Deal { return t.deal }

// Resumed 判断牌局是否来自存档
func (t *TableScene) Resumed() bool { return t.resumed }

// Update 实现 game.Scene 接口，返回键保存并回到菜单
func (t *TableScene) Update(frame input.Frame) error {
	if !frame.Back {
		return nil
	}
	t.save()
	t.env.Session.ChangeGameState(game.StateMenu, false)
	return nil
}

// SaveOnExit 实现 game.Saveable 接口
func (t *TableScene) SaveOnExit() bool {
	return t.save()
}

// save 保存牌局，并累加从场景开始（或上次保存）以来的游戏时长
func (t *TableScene) save() bool {
	now := t.now()
	played := now.Sub(t.started)
	t.started = now
	t.deal.Elapsed += int64(played / time.Second)

	ok := true
	if err := t.env.Board.Save(t.deal); err != nil {
		t.log.Error("failed to save game", "err", err)
		ok = false
	}
	stats := t.env.Statistics
	if err := stats.Load(); err != nil {
		t.log.Warn("failed to load statistics", "err", err)
	}
	stats.AddTimePlayed(played)
	if err := stats.Save(); err != nil {
		t.log.Error("failed to save statistics", "err", err)
		ok = false
	}
	return ok
}

// cardSize 让十列牌加间距放进视图，并保持卡牌纹理的宽高比
func (t *TableScene) cardSize() image.Point {
	w := t.view.Dx() / (game.ColumnCount + 1)
	h := w * 3 / 2
	if cards := t.env.Assets.Cards; cards != nil && cards.Front != nil {
		if b := cards.Front.Bounds(); b.Dx() > 0 {
			h = w * b.Dy() / b.Dx()
		}
	}
	return image.Pt(w, h)
}

// ColumnRect 返回第 col 列第 i 张牌的绘制位置
func (t *TableScene) ColumnRect(col, i int) image.Rectangle {
	size := t.cardSize()
	gap := (t.view.Dx() - size.X*game.ColumnCount) / (game.ColumnCount + 1)
	x := t.view.Min.X + gap + (size.X+gap)*col
	y := t.view.Min.Y + gap
	for _, c := range t.deal.Columns[col][:i] {
		if c.Visible {
			y += size.Y / faceUpOverlap
		} else {
			y += size.Y / faceDownOverlap
		}
	}
	return image.Rect(x, y, x+size.X, y+size.Y)
}

// Draw 实现 game.Scene 接口
func (t *TableScene) Draw(s render.Surface) {
	cards := t.env.Assets.Cards
	board := t.env.Assets.Board
	back := t.env.Options.CardBackColor()

	s.BeginBatch()
	if board != nil && board.Gradient != nil {
		s.DrawTexture(board.Gradient, t.view, config.ColorWhite, nil)
	}

	for col, pile := range t.deal.Columns {
		if len(pile) == 0 {
			r := t.ColumnRect(col, 0)
			s.DrawTexture(cards.Placeholder, r, config.ColorWhite, nil)
			continue
		}
		for i, c := range pile {
			r := t.ColumnRect(col, i)
			if c.Visible {
				drawCardFace(s, cards, c, r)
			} else {
				s.DrawTexture(cards.Back, r, back, nil)
			}
		}
	}

	size := t.cardSize()
	piles := len(t.deal.Stock) / game.ColumnCount
	for i := range piles {
		x := t.view.Max.X - size.X - size.X/stockPileOffset*(piles-i)
		y := t.view.Max.Y - size.Y - size.Y/stockPileOffset
		s.DrawTexture(cards.Back, image.Rect(x, y, x+size.X, y+size.Y), back, nil)
	}

	if board != nil && board.Undo != nil {
		u := size.X / 2
		r := image.Rect(t.view.Min.X+u/2, t.view.Max.Y-u-u/2, t.view.Min.X+u+u/2, t.view.Max.Y-u/2)
		s.DrawTexture(board.Undo, r, config.ColorDisabled, nil)
	}
	s.EndBatch()
}

// drawCardFace 绘制卡牌正面，左上角是点数和花色，
// 中间是大花色
func drawCardFace(s render.Surface, cards *game.CardAssets, c *game.Card, r image.Rectangle) {
	tint := config.ColorBlack
	if c.Suit == game.Diamond || c.Suit == game.Heart {
		tint = redSuit
	}
	s.DrawTexture(cards.Front, r, config.ColorWhite, nil)

	corner := r.Dx() / 4
	pad := r.Dx() / 16
	value := image.Rect(r.Min.X+pad, r.Min.Y+pad, r.Min.X+pad+corner, r.Min.Y+pad+corner)
	s.DrawTexture(cards.Values[c.Value], value, tint, nil)
	s.DrawTexture(cards.Suits[c.Suit], value.Add(image.Pt(corner, 0)), tint, nil)

	big := r.Dx() / 2
	center := image.Pt(r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2)
	s.DrawTexture(cards.Suits[c.Suit], image.Rect(center.X-big/2, center.Y-big/2, center.X+big/2, center.Y+big/2), tint, nil)
}
