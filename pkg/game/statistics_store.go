package game

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/decker502/spider/pkg/logging"
)

// Difficulty 由牌局的花色数决定
type Difficulty int

const (
	Easy   Difficulty = iota // 单花色
	Medium                   // 双花色
	Hard                     // 四花色
)

// DifficultyForSuits 将花色数映射为难度
func DifficultyForSuits(suits int) Difficulty {
	switch {
	case suits >= 4:
		return Hard
	case suits == 2:
		return Medium
	default:
		return Easy
	}
}

// Statistics 持久化的游戏计数器
type Statistics struct {
	EasyGames       int   `yaml:"easyGames"`
	MediumGames     int   `yaml:"mediumGames"`
	HardGames       int   `yaml:"hardGames"`
	EasyGamesWon    int   `yaml:"easyGamesWon"`
	MediumGamesWon  int   `yaml:"mediumGamesWon"`
	HardGamesWon    int   `yaml:"hardGamesWon"`
	TotalTimePlayed int64 `yaml:"totalTimePlayed"` // 秒
}

// Games 返回难度 d 的已玩局数和胜局数
func (s Statistics) Games(d Difficulty) (played, won int) {
	switch d {
	case Medium:
		return s.MediumGames, s.MediumGamesWon
	case Hard:
		return s.HardGames, s.HardGamesWon
	default:
		return s.EasyGames, s.EasyGamesWon
	}
}

const (
	statisticsObject   = "statistics"
	statisticsProperty = "global"
)

// StatisticsStore 在内存中保存统计数据，Save 时持久化
type StatisticsStore struct {
	props PropStore
	stats Statistics
	log   *log.Logger
}

// NewStatisticsStore 创建一个空的统计存储
// 视图显示时调用 Load，使数字反映最近结束的一局
func NewStatisticsStore(props PropStore) *StatisticsStore {
	return &StatisticsStore{
		props: props,
		log:   logging.For("Statistics"),
	}
}

// Load 用保存的数据替换内存中的计数器
// 没有保存数据时计数器为零
func (s *StatisticsStore) Load() error {
	var loaded Statistics
	if _, err := loadProp(s.props, statisticsObject, statisticsProperty, &loaded); err != nil {
		s.stats = Statistics{}
		return err
	}
	s.stats = loaded
	return nil
}

// Save 持久化内存中的计数器
func (s *StatisticsStore) Save() error {
	return saveProp(s.props, statisticsObject, statisticsProperty, s.stats)
}

// Reset 将内存中的所有计数器清零
func (s *StatisticsStore) Reset() {
	s.stats = Statistics{}
	s.log.Info("statistics reset")
}

// Stats 返回计数器的副本
func (s *StatisticsStore) Stats() Statistics {
	return s.stats
}

// RecordGame 记录一局已完成或放弃的游戏，并累加游戏时长
func (s *StatisticsStore) RecordGame(suits int, won bool, played time.Duration) {
	switch DifficultyForSuits(suits) {
	case Easy:
		s.stats.EasyGames++
		if won {
			s.stats.EasyGamesWon++
		}
	case Medium:
		s.stats.MediumGames++
		if won {
			s.stats.MediumGamesWon++
		}
	case Hard:
		s.stats.HardGames++
		if won {
			s.stats.HardGamesWon++
		}
	}
	s.AddTimePlayed(played)
}

// AddTimePlayed 累加整秒数的游戏时长
func (s *StatisticsStore) AddTimePlayed(d time.Duration) {
	if d > 0 {
		s.stats.TotalTimePlayed += int64(d / time.Second)
	}
}
