package game

// EventType 标识一个统计事件
type EventType int

const (
	EventNewGame EventType = iota
	EventResumeGame
	EventViewOptions
	EventViewStatistics
	EventViewAbout
	EventResetStatistics
)

func (e EventType) String() string {
	switch e {
	case EventNewGame:
		return "NewGame"
	case EventResumeGame:
		return "ResumeGame"
	case EventViewOptions:
		return "ViewOptions"
	case EventViewStatistics:
		return "ViewStatistics"
	case EventViewAbout:
		return "ViewAbout"
	case EventResetStatistics:
		return "ResetStatistics"
	default:
		return "Unknown"
	}
}

// Analytics 记录使用事件。对调用方来说记录永远不会失败，
// 由具体实现自行记录错误日志
type Analytics interface {
	RegisterEvent(kind EventType, params ...any)
}

// NopAnalytics 丢弃所有事件
type NopAnalytics struct{}

func (NopAnalytics) RegisterEvent(EventType, ...any) {}
