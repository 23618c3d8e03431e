package modules

import (
	"image"

	"github.com/decker502/spider/pkg/config"
	"github.com/decker502/spider/pkg/game"
	"github.com/decker502/spider/pkg/input"
	"github.com/decker502/spider/pkg/render"
	"github.com/decker502/spider/pkg/utils"
)

// MessageWindow 是模态文字面板，直到松开点落在面板上
// 或 DismissWhen 返回 true 才关闭。返回键由持有者处理，
// 持有者直接丢弃窗口，不执行 OnClick
type MessageWindow struct {
	view    image.Rectangle
	window  image.Rectangle
	textPos image.Point
	text    string
	assets  *game.Assets

	// OnClick 在点击面板时、窗口关闭前执行
	OnClick func()
	// DismissWhen 返回 true 时关闭窗口，不执行 OnClick
	DismissWhen func() bool
	// DismissEvery 两次调用 DismissWhen 之间的帧数
	// 第一次 Update 总会检查，0 或 1 表示每帧检查
	DismissEvery int

	frames int
}

// NewMessageWindow 将文字居中布局在 view 中，
// 按视图宽度的四分之三折行
func NewMessageWindow(view image.Rectangle, text string, assets *game.Assets) *MessageWindow {
	w := &MessageWindow{view: view, assets: assets}
	w.setText(text)
	return w
}

// NewTrialWindow 创建点击后跳转到商店的消息窗口
// 会话解锁后自动关闭
func NewTrialWindow(view image.Rectangle, text string, env *Env) *MessageWindow {
	w := NewMessageWindow(view, text, env.Assets)
	w.OnClick = env.launchMarketplace
	if env.Session != nil {
		w.DismissWhen = env.Session.Unlocked
		w.DismissEvery = config.TrialPollFrames
	}
	return w
}

func (w *MessageWindow) setText(text string) {
	font := w.assets.Message.Font
	maxWidth := float64(w.view.Dx()) * config.OverlayTextWidthFraction
	w.text = utils.BreakStringIntoLines(text, maxWidth, font)

	size := render.MeasurePoint(font, w.text)
	w.textPos = image.Pt(
		w.view.Min.X+(w.view.Dx()-size.X)/2,
		w.view.Min.Y+(w.view.Dy()-size.Y)/2,
	)
	pad := image.Pt(
		int(float64(size.X)*config.OverlayPaddingFraction),
		int(float64(size.Y)*config.OverlayPaddingFraction),
	)
	w.window = image.Rectangle{
		Min: w.textPos.Sub(pad),
		Max: w.textPos.Add(size).Add(pad),
	}
}

// Text 返回折行后的文字
func (w *MessageWindow) Text() string {
	return w.text
}

// Bounds 返回面板矩形，在其中点击会关闭窗口
func (w *MessageWindow) Bounds() image.Rectangle {
	return w.window
}

// Update 处理一帧输入，返回窗口是否仍然打开
func (w *MessageWindow) Update(frame input.Frame) bool {
	for _, pt := range frame.Releases() {
		if pt.In(w.window) {
			if w.OnClick != nil {
				w.OnClick()
			}
			return false
		}
	}
	poll := w.frames%max(w.DismissEvery, 1) == 0
	w.frames++
	if poll && w.DismissWhen != nil && w.DismissWhen() {
		return false
	}
	return true
}

// Render 绘制遮罩、面板和文字
func (w *MessageWindow) Render(s render.Surface) {
	scrim := utils.ScaleColor(config.ColorBlack, config.OverlayScrimOpacity)

	s.BeginBatch()
	if w.assets.Board != nil && w.assets.Board.Blank != nil {
		s.DrawTexture(w.assets.Board.Blank, w.view, scrim, nil)
	}
	s.DrawTexture(w.assets.Message.Background, w.window, config.ColorWhite, nil)
	s.DrawText(w.assets.Message.Font, w.text, w.textPos, config.ColorWhite, nil)
	s.EndBatch()
}
