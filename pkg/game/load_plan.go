package game

import (
	"errors"
	"fmt"
)

// ErrStepCountMismatch 在加载组报告的进度步数与声明不一致时返回
// 进度条按声明的总数驱动，不一致会让进度条一直错误。
var ErrStepCountMismatch = errors.New("load step count mismatch")

// ProgressFunc 在每个资源加载完成后立即调用一次
type ProgressFunc func()

// LoadGroup 是一起加载的一组资源
type LoadGroup interface {
	Name() string
	// StepCount 返回 Load 会调用 progress 的次数，不能执行 I/O
	StepCount() int
	// Load 按声明顺序加载所有资源，每个资源调用一次 progress
	// 第一次失败会中止整个组
	Load(l Loader, progress ProgressFunc) error
}

// funcGroup 由固定步数和加载函数构成的 LoadGroup
type funcGroup struct {
	name  string
	steps int
	load  func(l Loader, progress ProgressFunc) error
}

func (g *funcGroup) Name() string   { return g.name }
func (g *funcGroup) StepCount() int { return g.steps }

func (g *funcGroup) Load(l Loader, progress ProgressFunc) error {
	return g.load(l, progress)
}

// LoadPlan 启动时按顺序加载的加载组列表
type LoadPlan struct {
	groups []LoadGroup
}

// NewLoadPlan 创建按给定顺序加载各组的计划
func NewLoadPlan(groups ...LoadGroup) *LoadPlan {
	return &LoadPlan{groups: groups}
}

// Len 返回组数
func (p *LoadPlan) Len() int {
	return len(p.groups)
}

// Groups 按加载顺序返回各组
func (p *LoadPlan) Groups() []LoadGroup {
	return p.groups
}

// StepCount 返回所有组声明步数之和
// 在加载任何资源之前即可得知
func (p *LoadPlan) StepCount() int {
	total := 0
	for _, g := range p.groups {
		total += g.StepCount()
	}
	return total
}

// LoadGroup 加载第 i 个组，progress 可以为 nil（静默加载）
//
// 返回：
//   - error: 组的加载错误；如果组报告的步数与声明不一致，
//     返回 ErrStepCountMismatch
func (p *LoadPlan) LoadGroup(i int, l Loader, progress ProgressFunc) error {
	g := p.groups[i]
	return loadCounted(g, l, progress)
}

// LoadAll 按顺序加载所有组，遇到第一个错误即停止
func (p *LoadPlan) LoadAll(l Loader, progress ProgressFunc) error {
	for i := range p.groups {
		if err := p.LoadGroup(i, l, progress); err != nil {
			return err
		}
	}
	return nil
}

func loadCounted(g LoadGroup, l Loader, progress ProgressFunc) error {
	calls := 0
	err := g.Load(l, func() {
		calls++
		if progress != nil {
			progress()
		}
	})
	if err != nil {
		return fmt.Errorf("load group %s: %w", g.Name(), err)
	}
	if calls != g.StepCount() {
		return fmt.Errorf("load group %s: declared %d steps, reported %d: %w",
			g.Name(), g.StepCount(), calls, ErrStepCountMismatch)
	}
	return nil
}
