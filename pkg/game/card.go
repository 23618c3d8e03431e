package game

import "math/rand/v2"

// Suit 卡牌花色
type Suit int

const (
	Spade Suit = iota
	Diamond
	Club
	Heart
)

func (s Suit) String() string {
	if s < Spade || s > Heart {
		return "Suit(?)"
	}
	return SuitNames[s]
}

// Value 卡牌点数，A 最小
type Value int

const (
	Ace Value = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

func (v Value) String() string {
	if v < Ace || v > King {
		return "Value(?)"
	}
	return ValueNames[v]
}

// Card 一张扑克牌。花色和点数不会改变；
// Visible 只会从 false 变为 true
type Card struct {
	Suit       Suit    `yaml:"suit"`
	Value      Value   `yaml:"value"`
	Visible    bool    `yaml:"visible"`
	ShuffleKey float64 `yaml:"-"` // 洗牌排序键，只采样一次
}

// NewCard 创建一张背面朝上的牌，洗牌键从 rng 采样
func NewCard(suit Suit, value Value, rng *rand.Rand) *Card {
	return &Card{
		Suit:       suit,
		Value:      value,
		ShuffleKey: rng.Float64(),
	}
}

// CopyCard 复制花色、点数和可见性，不复制洗牌键
func CopyCard(c *Card) *Card {
	return &Card{
		Suit:    c.Suit,
		Value:   c.Value,
		Visible: c.Visible,
	}
}

// Reveal 将牌翻为正面朝上
func (c *Card) Reveal() {
	c.Visible = true
}
