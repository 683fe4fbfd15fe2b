package entities

import (
	"github.com/zooyer/dxf3d/core"
)

type Arc struct {
	BaseEntity
	Center     core.Point
	Radius     float64
	StartAngle float64 // 组码 50，度
	EndAngle   float64 // 组码 51，度
}

func init() {
	Register("ARC", func() Entity { return &Arc{BaseEntity: BaseEntity{TypeName: "ARC"}} })
}

func (a *Arc) Apply(t core.Tag) {
	if a.applyBase(t) {
		return
	}
	switch t.Code {
	case 10:
		a.Center.X = t.AsFloat()
	case 20:
		a.Center.Y = t.AsFloat()
	case 30:
		a.Center.Z = t.AsFloat()
	case 40:
		a.Radius = t.AsFloat()
	case 50:
		a.StartAngle = t.AsFloat()
	case 51:
		a.EndAngle = t.AsFloat()
	}
}

// Sweep 返回起止角（度），终角小于起角时按 AutoCAD 惯例加一圈
func (a *Arc) Sweep() (start, end float64) {
	start, end = a.StartAngle, a.EndAngle
	if end <= start {
		end += 360
	}
	return
}

// BBox 粗略取整圆范围，够显示和选取用
func (a *Arc) BBox() core.BBox {
	box := core.EmptyBBox()
	box.Expand(core.Point{X: a.Center.X - a.Radius, Y: a.Center.Y - a.Radius, Z: a.Center.Z})
	box.Expand(core.Point{X: a.Center.X + a.Radius, Y: a.Center.Y + a.Radius, Z: a.Center.Z})
	return box
}
