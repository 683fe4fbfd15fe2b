package entities

import (
	"github.com/zooyer/dxf3d/core"
)

// Entity 是一切几何实体的接口。
// 解码器按标签推送驱动：每读到一组标签就调用一次 Apply。
type Entity interface {
	Apply(tag core.Tag)
	Type() string
	Layer() string
	BBox() core.BBox
}

// BaseEntity 存放所有实体通用的属性（如 Layer, Color, Handle）
type BaseEntity struct {
	TypeName  string
	LayerName string
	Handle    string
	Color     int // ACI 颜色号，组码 62，0 表示未指定
}

func (b *BaseEntity) Type() string { return b.TypeName }

func (b *BaseEntity) Layer() string { return b.LayerName }

// applyBase 处理各实体通用的组码，处理过则返回 true
func (b *BaseEntity) applyBase(tag core.Tag) bool {
	switch tag.Code {
	case 5:
		b.Handle = tag.AsString()
	case 8:
		b.LayerName = tag.AsString()
	case 62:
		b.Color = tag.AsInt()
	default:
		return false
	}
	return true
}

// EntityFactory 定义了如何创建一个空白实体
type EntityFactory func() Entity

var registry = map[string]EntityFactory{}

// Register 允许以后动态扩展新的实体类型
func Register(typeName string, factory EntityFactory) {
	registry[typeName] = factory
}

// Create 根据实体名称生产对应的结构体。
// 未注册的类型返回 Generic 占位实体：照常吃掉标签、不产生几何，
// 保证未知实体不会破坏解析（向前兼容）。
func Create(typeName string) Entity {
	if factory, ok := registry[typeName]; ok {
		return factory()
	}
	return &Generic{BaseEntity: BaseEntity{TypeName: typeName}}
}

// Generic 未知类型实体的占位记录，只保留类型名和图层
type Generic struct {
	BaseEntity
}

func (g *Generic) Apply(tag core.Tag) {
	g.applyBase(tag)
}

func (g *Generic) BBox() core.BBox {
	return core.EmptyBBox()
}
