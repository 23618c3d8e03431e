package input

import (
	"image"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// mouseTouchID 是鼠标左键对应的 Touch.ID
const mouseTouchID = -1

// EbitenSource 从 Ebitengine 收集触摸和鼠标左键输入
// 松开的触点不再报告位置，因此需要记住每个活动触点
// 最后已知的位置
type EbitenSource struct {
	lastTouch map[ebiten.TouchID]image.Point
}

// NewEbitenSource 创建一个没有跟踪任何触点的输入源
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{lastTouch: make(map[ebiten.TouchID]image.Point)}
}

// Poll 实现 Source 接口，每次 Update 必须且只能调用一次
func (s *EbitenSource) Poll() Frame {
	var f Frame

	justPressed := make(map[ebiten.TouchID]bool)
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		justPressed[id] = true
	}

	ids := ebiten.AppendTouchIDs(nil)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		x, y := ebiten.TouchPosition(id)
		pt := image.Pt(x, y)
		s.lastTouch[id] = pt
		state := TouchMoved
		if justPressed[id] {
			state = TouchPressed
		}
		f.Touches = append(f.Touches, Touch{ID: int(id), Position: pt, State: state})
	}

	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		pt, ok := s.lastTouch[id]
		if !ok {
			x, y := inpututil.TouchPositionInPreviousTick(id)
			pt = image.Pt(x, y)
		}
		delete(s.lastTouch, id)
		f.Touches = append(f.Touches, Touch{ID: int(id), Position: pt, State: TouchReleased})
	}

	x, y := ebiten.CursorPosition()
	cursor := image.Pt(x, y)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		f.Touches = append(f.Touches, Touch{ID: mouseTouchID, Position: cursor, State: TouchPressed})
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		f.Touches = append(f.Touches, Touch{ID: mouseTouchID, Position: cursor, State: TouchReleased})
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		f.Touches = append(f.Touches, Touch{ID: mouseTouchID, Position: cursor, State: TouchMoved})
	}

	f.Back = inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyBackspace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyBrowserBack)

	return f
}
