package entities

import (
	"strings"

	"github.com/zooyer/dxf3d/core"
)

type Insert struct {
	BaseEntity
	BlockName      string
	InsertionPoint core.Point
	Scale          core.Point
	Rotation       float64 // 绕 Z 轴，度
}

func init() {
	Register("INSERT", func() Entity {
		return &Insert{
			BaseEntity: BaseEntity{TypeName: "INSERT"},
			Scale:      core.Point{X: 1, Y: 1, Z: 1}, // 默认缩放为 1
		}
	})
}

func (i *Insert) Apply(t core.Tag) {
	if i.applyBase(t) {
		return
	}
	switch t.Code {
	case 2:
		// 与块定义名统一转大写，查表时不再关心大小写
		i.BlockName = strings.ToUpper(t.AsString())
	case 10:
		i.InsertionPoint.X = t.AsFloat()
	case 20:
		i.InsertionPoint.Y = t.AsFloat()
	case 30:
		i.InsertionPoint.Z = t.AsFloat()
	case 41:
		i.Scale.X = t.AsFloat()
	case 42:
		i.Scale.Y = t.AsFloat()
	case 43:
		i.Scale.Z = t.AsFloat()
	case 50:
		i.Rotation = t.AsFloat()
	}
}

// BBox 只有结合块定义才能算出真实范围，这里退化为插入点，
// 世界坐标范围见 utils.EntityBBox。
func (i *Insert) BBox() core.BBox {
	return core.BBox{Min: i.InsertionPoint, Max: i.InsertionPoint}
}
