package entities

import (
	"github.com/zooyer/dxf3d/core"
)

type Circle struct {
	BaseEntity
	Center core.Point
	Radius float64
}

func init() {
	Register("CIRCLE", func() Entity { return &Circle{BaseEntity: BaseEntity{TypeName: "CIRCLE"}} })
}

func (c *Circle) Apply(t core.Tag) {
	if c.applyBase(t) {
		return
	}
	switch t.Code {
	case 10:
		c.Center.X = t.AsFloat()
	case 20:
		c.Center.Y = t.AsFloat()
	case 30:
		c.Center.Z = t.AsFloat()
	case 40:
		c.Radius = t.AsFloat()
	}
}

func (c *Circle) BBox() core.BBox {
	box := core.EmptyBBox()
	box.Expand(core.Point{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius, Z: c.Center.Z})
	box.Expand(core.Point{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Radius, Z: c.Center.Z})
	return box
}
