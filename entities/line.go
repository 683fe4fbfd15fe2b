package entities

import (
	"github.com/zooyer/dxf3d/core"
)

type Line struct {
	BaseEntity
	Start, End core.Point
}

func init() {
	Register("LINE", func() Entity { return &Line{BaseEntity: BaseEntity{TypeName: "LINE"}} })
}

func (l *Line) Apply(t core.Tag) {
	if l.applyBase(t) {
		return
	}
	switch t.Code {
	case 10:
		l.Start.X = t.AsFloat()
	case 20:
		l.Start.Y = t.AsFloat()
	case 30:
		l.Start.Z = t.AsFloat()
	case 11:
		l.End.X = t.AsFloat()
	case 21:
		l.End.Y = t.AsFloat()
	case 31:
		l.End.Z = t.AsFloat()
	}
}

func (l *Line) BBox() core.BBox {
	box := core.EmptyBBox()
	box.Expand(l.Start)
	box.Expand(l.End)
	return box
}
