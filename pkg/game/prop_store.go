package game

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// PropStore 是持久化用到的 *gdata.Manager 子集
// PropStore 为 nil 时存储进入降级模式：数据只保存在内存中
type PropStore interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

// loadProp 将一个 YAML 属性解码到 out
//
// 返回：
//   - bool: 属性是否存在
//   - error: 属性存在但无法读取或解码时返回
func loadProp(ps PropStore, object, prop string, out any) (bool, error) {
	if ps == nil || !ps.ObjectPropExists(object, prop) {
		return false, nil
	}
	data, err := ps.LoadObjectProp(object, prop)
	if err != nil {
		return true, fmt.Errorf("failed to load %s/%s: %w", object, prop, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return true, fmt.Errorf("failed to unmarshal %s/%s: %w", object, prop, err)
	}
	return true, nil
}

// saveProp 将 v 编码为 YAML 保存，降级模式下不做任何事
func saveProp(ps PropStore, object, prop string, v any) error {
	if ps == nil {
		return nil
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s/%s: %w", object, prop, err)
	}
	if err := ps.SaveObjectProp(object, prop, data); err != nil {
		return fmt.Errorf("failed to save %s/%s: %w", object, prop, err)
	}
	return nil
}
