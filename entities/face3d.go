package entities

import (
	"github.com/zooyer/golib/xmath"

	"github.com/zooyer/dxf3d/core"
)

// Face3D 对应 DXF 的 3DFACE：四个角点；第四点与第三点重合时按
// DXF 惯例退化为三角形。
type Face3D struct {
	BaseEntity
	P1, P2, P3, P4 core.Point
}

func init() {
	Register("3DFACE", func() Entity { return &Face3D{BaseEntity: BaseEntity{TypeName: "3DFACE"}} })
}

func (f *Face3D) Apply(t core.Tag) {
	if f.applyBase(t) {
		return
	}
	switch t.Code {
	case 10:
		f.P1.X = t.AsFloat()
	case 20:
		f.P1.Y = t.AsFloat()
	case 30:
		f.P1.Z = t.AsFloat()
	case 11:
		f.P2.X = t.AsFloat()
	case 21:
		f.P2.Y = t.AsFloat()
	case 31:
		f.P2.Z = t.AsFloat()
	case 12:
		f.P3.X = t.AsFloat()
	case 22:
		f.P3.Y = t.AsFloat()
	case 32:
		f.P3.Z = t.AsFloat()
	case 13:
		f.P4.X = t.AsFloat()
	case 23:
		f.P4.Y = t.AsFloat()
	case 33:
		f.P4.Z = t.AsFloat()
	}
}

// IsTriangle 判断第四点是否与第三点重合（退化为三角形）
func (f *Face3D) IsTriangle() bool {
	const epsilon = 1e-9
	return xmath.Equal(f.P3.X, f.P4.X, epsilon) &&
		xmath.Equal(f.P3.Y, f.P4.Y, epsilon) &&
		xmath.Equal(f.P3.Z, f.P4.Z, epsilon)
}

func (f *Face3D) BBox() core.BBox {
	box := core.EmptyBBox()
	box.Expand(f.P1)
	box.Expand(f.P2)
	box.Expand(f.P3)
	box.Expand(f.P4)
	return box
}
