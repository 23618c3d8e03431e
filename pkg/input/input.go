// Package input 每帧采样一次触摸、鼠标和返回键输入
package input

import "image"

// TouchState 是一次触摸采样所处的阶段
type TouchState int

const (
	TouchPressed TouchState = iota
	TouchMoved
	TouchReleased
)

func (s TouchState) String() string {
	switch s {
	case TouchPressed:
		return "pressed"
	case TouchMoved:
		return "moved"
	case TouchReleased:
		return "released"
	default:
		return "unknown"
	}
}

// Touch 是一次采样到的触点
type Touch struct {
	ID       int
	Position image.Point
	State    TouchState
}

// Frame 是玩家在一帧内的全部操作
type Frame struct {
	Touches []Touch
	// Back 在平台返回操作触发的那一帧为 true
	Back bool
}

// Releases 按采样顺序返回本帧所有松开的触点位置
// 视图把一次松开当作一次点击
func (f Frame) Releases() []image.Point {
	var pts []image.Point
	for _, t := range f.Touches {
		if t.State == TouchReleased {
			pts = append(pts, t.Position)
		}
	}
	return pts
}

// Tap 构造只包含 (x, y) 处一次松开的帧
func Tap(x, y int) Frame {
	return Frame{Touches: []Touch{{Position: image.Pt(x, y), State: TouchReleased}}}
}

// BackFrame 构造只触发了返回操作的帧
func BackFrame() Frame {
	return Frame{Back: true}
}

// Source 每帧产生一个 Frame
type Source interface {
	Poll() Frame
}

// SourceFunc 将函数适配为 Source
type SourceFunc func() Frame

// Poll 实现 Source 接口
func (f SourceFunc) Poll() Frame { return f() }
