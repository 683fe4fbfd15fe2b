package entities

import (
	"github.com/zooyer/dxf3d/core"
)

type LWPolyline struct {
	BaseEntity
	Vertices  []core.Point
	Elevation float64 // 组码 38，整条多段线共用一个标高
	Closed    bool    // 组码 70 低位
}

func init() {
	Register("LWPOLYLINE", func() Entity { return &LWPolyline{BaseEntity: BaseEntity{TypeName: "LWPOLYLINE"}} })
}

func (l *LWPolyline) Apply(t core.Tag) {
	if l.applyBase(t) {
		return
	}
	switch t.Code {
	case 10:
		// 组码 10 开启新顶点，20 补上 Y
		l.Vertices = append(l.Vertices, core.Point{X: t.AsFloat()})
	case 20:
		if n := len(l.Vertices); n > 0 {
			l.Vertices[n-1].Y = t.AsFloat()
		}
	case 38:
		l.Elevation = t.AsFloat()
	case 70:
		l.Closed = t.AsInt()&1 != 0
	}
}

// Points 返回带标高的顶点序列，闭合时首点补到末尾
func (l *LWPolyline) Points() []core.Point {
	pts := make([]core.Point, 0, len(l.Vertices)+1)
	for _, v := range l.Vertices {
		pts = append(pts, core.Point{X: v.X, Y: v.Y, Z: l.Elevation})
	}
	if l.Closed && len(pts) > 2 {
		pts = append(pts, pts[0])
	}
	return pts
}

func (l *LWPolyline) BBox() core.BBox {
	box := core.EmptyBBox()
	for _, v := range l.Vertices {
		box.Expand(core.Point{X: v.X, Y: v.Y, Z: l.Elevation})
	}
	return box
}
