package entities

import (
	"github.com/zooyer/dxf3d/core"
)

// Spline 只保留控制点做插值近似，度数/节点矢量/权重（组码 71/40/41）
// 不参与求值，精确 NURBS 不在保真范围内。
type Spline struct {
	BaseEntity
	ControlPoints []core.Point
	Closed        bool // 组码 70 低位
}

func init() {
	Register("SPLINE", func() Entity { return &Spline{BaseEntity: BaseEntity{TypeName: "SPLINE"}} })
}

func (s *Spline) Apply(t core.Tag) {
	if s.applyBase(t) {
		return
	}
	switch t.Code {
	case 10:
		// 组码 10 开启新控制点，20/30 补上 Y/Z
		s.ControlPoints = append(s.ControlPoints, core.Point{X: t.AsFloat()})
	case 20:
		if n := len(s.ControlPoints); n > 0 {
			s.ControlPoints[n-1].Y = t.AsFloat()
		}
	case 30:
		if n := len(s.ControlPoints); n > 0 {
			s.ControlPoints[n-1].Z = t.AsFloat()
		}
	case 70:
		s.Closed = t.AsInt()&1 != 0
	}
}

func (s *Spline) BBox() core.BBox {
	box := core.EmptyBBox()
	for _, p := range s.ControlPoints {
		box.Expand(p)
	}
	return box
}
