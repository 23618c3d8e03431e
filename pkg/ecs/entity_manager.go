// Package ecs 提供一个轻量的实体/组件存储。系统按组件类型查询实体，
// 删除是延迟的：DestroyEntity 只做标记，系统遍历结束后由
// RemoveMarkedEntities 统一删除被标记的实体。
package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是实体的唯一标识符，0 保留为无效ID
type EntityID uint64

// EntityManager 管理所有实体和组件
type EntityManager struct {
	nextID            uint64
	components        map[EntityID]map[reflect.Type]any
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个空的 EntityManager，第一个实体的ID为1
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1,
		components: make(map[EntityID]map[reflect.Type]any),
	}
}

// CreateEntity 创建一个不带组件的新实体并返回其ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// DestroyEntity 标记实体待删除（不立即删除）
// 在 RemoveMarkedEntities 运行之前，实体仍可被查询
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// RemoveMarkedEntities 删除所有被 DestroyEntity 标记的实体
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// GetComponent 按类型查找组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	compMap, ok := em.components[id]
	if !ok {
		return nil, false
	}
	comp, ok := compMap[componentType]
	return comp, ok
}

// GetEntitiesWith 按ID升序返回同时拥有所有指定组件类型的实体
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)
	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// TypeOf 返回 T 对应的组件键
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// AddComponent 以 T 为键为实体添加组件
// 同类型组件再次添加会覆盖旧组件；未知实体ID会被忽略
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	if compMap, ok := em.components[id]; ok {
		compMap[TypeOf[T]()] = component
	}
}

// GetComponent 是 EntityManager.GetComponent 的泛型版本
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, TypeOf[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	return typed, ok
}

// GetEntitiesWith1 按ID升序返回拥有 T 组件的实体
func GetEntitiesWith1[T any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(TypeOf[T]())
}
