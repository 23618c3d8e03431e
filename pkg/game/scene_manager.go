package game

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/decker502/spider/pkg/input"
	"github.com/decker502/spider/pkg/logging"
	"github.com/decker502/spider/pkg/render"
)

// SceneFactory 为应用状态创建场景
// 管理器借此构建场景，而不需要导入 scenes 包
type SceneFactory func(state GameState, resume bool) (Scene, error)

// SceneManager 控制当前激活的场景
// 只有激活场景的 Update 和 Draw 会运行
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
	log          *log.Logger
}

// NewSceneManager 创建一个没有激活场景的管理器
// 使用 SwitchTo 设置第一个场景
func NewSceneManager() *SceneManager {
	return &SceneManager{log: logging.For("SceneManager")}
}

// SetSceneFactory 设置 Show 使用的工厂
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 从下一帧起激活 scene
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回激活的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Show 为 state 构建并激活场景
func (sm *SceneManager) Show(state GameState, resume bool) error {
	if sm.sceneFactory == nil {
		return fmt.Errorf("scene manager: no scene factory for %s", state)
	}
	scene, err := sm.sceneFactory(state, resume)
	if err != nil {
		return fmt.Errorf("scene manager: create %s scene: %w", state, err)
	}
	sm.log.Debug("switching scene", "state", state, "resume", resume)
	sm.SwitchTo(scene)
	return nil
}

// Update 运行激活的场景，没有场景时不做任何事
func (sm *SceneManager) Update(frame input.Frame) error {
	if sm.currentScene == nil {
		return nil
	}
	return sm.currentScene.Update(frame)
}

// Draw 渲染激活的场景，没有场景时不做任何事
func (sm *SceneManager) Draw(s render.Surface) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(s)
	}
}

// SaveOnExit 当激活场景实现了 Saveable 时转发调用
func (sm *SceneManager) SaveOnExit() bool {
	if saveable, ok := sm.currentScene.(Saveable); ok {
		return saveable.SaveOnExit()
	}
	return true
}
