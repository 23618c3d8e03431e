package game

import (
	"math/rand/v2"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/decker502/spider/pkg/logging"
)

// 发牌布局
const (
	DeckSize    = 104
	ColumnCount = 10
	// DealtCards 开局摆在桌面上的牌数，其余的作为牌堆
	DealtCards = 54
)

// Deal 是一局牌的布局：十列牌和未发出的牌堆
type Deal struct {
	SuitCount int       `yaml:"suitCount"`
	Columns   [][]*Card `yaml:"columns"`
	Stock     []*Card   `yaml:"stock"`
	Elapsed   int64     `yaml:"elapsed"` // 游戏时长（秒）
}

const (
	boardObject       = "board"
	boardSuitProperty = "suitCount"
	boardDealProperty = "deal"
)

type savedDeal struct {
	Present bool  `yaml:"present"`
	Deal    *Deal `yaml:"deal,omitempty"`
}

// Board 保存选择的花色数和存档
type Board struct {
	props     PropStore
	suitCount int
	saved     *Deal
	log       *log.Logger
}

// NewBoard 创建牌局并加载持久化的花色数和存档
// 加载失败会记录日志，并得到一个全新的牌局
func NewBoard(props PropStore) *Board {
	b := &Board{
		props:     props,
		suitCount: 1,
		log:       logging.For("Board"),
	}
	var suits int
	if ok, err := loadProp(props, boardObject, boardSuitProperty, &suits); err != nil {
		b.log.Warn("failed to load suit count", "err", err)
	} else if ok && validSuitCount(suits) {
		b.suitCount = suits
	}
	var saved savedDeal
	if _, err := loadProp(props, boardObject, boardDealProperty, &saved); err != nil {
		b.log.Warn("failed to load saved game", "err", err)
	} else if saved.Present && saved.Deal != nil {
		b.saved = saved.Deal
	}
	return b
}

func validSuitCount(n int) bool {
	return n == 1 || n == 2 || n == 4
}

// SuitCount 返回下一局使用的花色数
func (b *Board) SuitCount() int {
	return b.suitCount
}

// SetSuitCount 选择并持久化花色数
// 只接受 1、2、4，其他值被忽略
func (b *Board) SetSuitCount(n int) {
	if !validSuitCount(n) {
		b.log.Warn("ignoring invalid suit count", "suits", n)
		return
	}
	b.suitCount = n
	if err := saveProp(b.props, boardObject, boardSuitProperty, n); err != nil {
		b.log.Error("failed to save suit count", "err", err)
	}
}

// ResumeGameExists 判断是否存在可以继续的存档
func (b *Board) ResumeGameExists() bool {
	return b.saved != nil
}

// NewDeck 为 suits（1、2 或 4）种花色生成洗好的 104 张牌
func NewDeck(suits int, rng *rand.Rand) []*Card {
	if !validSuitCount(suits) {
		suits = 1
	}
	deck := make([]*Card, 0, DeckSize)
	for len(deck) < DeckSize {
		for s := 0; s < suits && len(deck) < DeckSize; s++ {
			for v := Ace; v <= King; v++ {
				deck = append(deck, NewCard(Suit(s), v, rng))
			}
		}
	}
	sort.SliceStable(deck, func(i, j int) bool {
		return deck[i].ShuffleKey < deck[j].ShuffleKey
	})
	return deck
}

// Deal 用当前花色数开一局新牌：前四列各六张，
// 其余各五张，每列最后一张正面朝上
func (b *Board) Deal(rng *rand.Rand) *Deal {
	deck := NewDeck(b.suitCount, rng)
	d := &Deal{
		SuitCount: b.suitCount,
		Columns:   make([][]*Card, ColumnCount),
	}
	next := 0
	for i := range d.Columns {
		n := DealtCards / ColumnCount
		if i < DealtCards%ColumnCount {
			n++
		}
		d.Columns[i] = deck[next : next+n : next+n]
		next += n
		d.Columns[i][n-1].Reveal()
	}
	d.Stock = deck[next:]
	return d
}

// Save 保存 d 以便之后继续
func (b *Board) Save(d *Deal) error {
	b.saved = d
	return saveProp(b.props, boardObject, boardDealProperty, savedDeal{Present: true, Deal: d})
}

// LoadSaved 返回保存的牌局，没有时返回 nil
func (b *Board) LoadSaved() *Deal {
	return b.saved
}

// Clear 删除保存的牌局
func (b *Board) Clear() error {
	b.saved = nil
	return saveProp(b.props, boardObject, boardDealProperty, savedDeal{})
}
