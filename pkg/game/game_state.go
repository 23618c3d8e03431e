package game

import (
	"github.com/charmbracelet/log"

	"github.com/decker502/spider/pkg/logging"
)

// GameState 应用的顶层状态
type GameState int

const (
	StateLoading GameState = iota
	StateMenu
	StatePlaying
)

func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// LicenseChecker 判断应用是否以试用版运行
type LicenseChecker interface {
	IsTrial() bool
}

// FixedLicense 返回固定结果的 LicenseChecker
type FixedLicense bool

func (f FixedLicense) IsTrial() bool { return bool(f) }

const (
	licenseObject   = "license"
	licenseProperty = "unlocked"
)

// StoredLicense 在保存解锁标记之前一直是试用版
type StoredLicense struct {
	Props PropStore
}

func (l StoredLicense) IsTrial() bool {
	var unlocked bool
	if _, err := loadProp(l.Props, licenseObject, licenseProperty, &unlocked); err != nil {
		return true
	}
	return !unlocked
}

// Unlock 保存解锁标记
func (l StoredLicense) Unlock() error {
	return saveProp(l.Props, licenseObject, licenseProperty, true)
}

// StateListener 在每次状态变化后被通知
type StateListener func(state GameState, resume bool)

// Session 跟踪应用状态和试用标记，代替进程级全局状态：
// 所有需要它的场景拿到的是同一个 Session
type Session struct {
	state    GameState
	resume   bool
	trial    bool
	exit     bool
	license  LicenseChecker
	listener StateListener
	log      *log.Logger
}

// NewSession 创建处于加载状态的会话
// 试用标记立即从 license 读取；license 为 nil 表示正式版
func NewSession(license LicenseChecker) *Session {
	s := &Session{
		state:   StateLoading,
		license: license,
		log:     logging.For("Session"),
	}
	s.RefreshTrialStatus()
	return s
}

// State 返回当前状态
func (s *Session) State() GameState {
	return s.state
}

// Resume 判断最近一次进入 Playing 是否要求继续游戏
func (s *Session) Resume() bool {
	return s.resume
}

// SetListener 设置状态变化监听器
func (s *Session) SetListener(l StateListener) {
	s.listener = l
}

// ChangeGameState 切换到 state，resume 只对 StatePlaying 有意义
func (s *Session) ChangeGameState(state GameState, resume bool) {
	s.log.Debug("state change", "from", s.state, "to", state, "resume", resume)
	s.state = state
	s.resume = resume && state == StatePlaying
	if s.listener != nil {
		s.listener(state, s.resume)
	}
}

// IsTrial 返回缓存的试用标记
func (s *Session) IsTrial() bool {
	return s.trial
}

// RefreshTrialStatus 从授权检查器重新读取试用标记
func (s *Session) RefreshTrialStatus() {
	if s.license == nil {
		s.trial = false
		return
	}
	was := s.trial
	s.trial = s.license.IsTrial()
	if was && !s.trial {
		s.log.Info("trial unlocked")
	}
}

// Unlocked 直接询问授权检查器试用是否已结束
// 与 RefreshTrialStatus 不同，它不修改缓存的标记
func (s *Session) Unlocked() bool {
	return s.license == nil || !s.license.IsTrial()
}

// RequestExit 请求应用在当前帧结束后退出
func (s *Session) RequestExit() {
	s.exit = true
}

// ExitRequested 判断是否调用过 RequestExit
func (s *Session) ExitRequested() bool {
	return s.exit
}
