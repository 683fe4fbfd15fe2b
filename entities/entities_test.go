package entities

import (
	"testing"

	"github.com/zooyer/dxf3d/core"
)

// apply 按 (code, value) 顺序喂标签
func apply(e Entity, pairs ...any) {
	for i := 0; i+1 < len(pairs); i += 2 {
		e.Apply(core.Tag{Code: pairs[i].(int), Value: pairs[i+1].(string)})
	}
}

func TestCreate_Registry(t *testing.T) {
	for name, want := range map[string]string{
		"LINE":       "*entities.Line",
		"LWPOLYLINE": "*entities.LWPolyline",
		"CIRCLE":     "*entities.Circle",
		"ARC":        "*entities.Arc",
		"SPLINE":     "*entities.Spline",
		"3DFACE":     "*entities.Face3D",
		"INSERT":     "*entities.Insert",
	} {
		entity := Create(name)
		if entity.Type() != name {
			t.Errorf("%s 类型名不符: %s", name, entity.Type())
		}
		if got := typeName(entity); got != want {
			t.Errorf("%s 期望 %s, 得到 %s", name, want, got)
		}
	}
}

func typeName(e Entity) string {
	switch e.(type) {
	case *Line:
		return "*entities.Line"
	case *LWPolyline:
		return "*entities.LWPolyline"
	case *Circle:
		return "*entities.Circle"
	case *Arc:
		return "*entities.Arc"
	case *Spline:
		return "*entities.Spline"
	case *Face3D:
		return "*entities.Face3D"
	case *Insert:
		return "*entities.Insert"
	}
	return "*entities.Generic"
}

func TestCreate_Unknown(t *testing.T) {
	entity := Create("MTEXT")
	if _, ok := entity.(*Generic); !ok {
		t.Fatalf("未知类型应返回通用占位: %T", entity)
	}
	apply(entity, 8, "NOTES", 1, "hello")
	if entity.Layer() != "NOTES" {
		t.Errorf("通用占位应处理基础组码: %s", entity.Layer())
	}
	if !entity.BBox().IsEmpty() {
		t.Error("通用占位不应产生包围盒")
	}
}

func TestBaseEntity_Common(t *testing.T) {
	line := Create("LINE")
	apply(line, 5, "2A", 8, "WALL", 62, "3")

	base := line.(*Line).BaseEntity
	if base.Handle != "2A" || base.LayerName != "WALL" || base.Color != 3 {
		t.Errorf("基础属性不符: %+v", base)
	}
}

func TestLWPolyline_Vertices(t *testing.T) {
	entity := Create("LWPOLYLINE")
	apply(entity,
		10, "0", 20, "0",
		10, "10", 20, "0",
		10, "10", 20, "5",
		38, "2.5",
		70, "1",
	)

	poly := entity.(*LWPolyline)
	if len(poly.Vertices) != 3 {
		t.Fatalf("顶点数不符: %d", len(poly.Vertices))
	}
	if !poly.Closed {
		t.Error("组码 70 低位应标记闭合")
	}

	pts := poly.Points()
	if len(pts) != 4 {
		t.Fatalf("闭合折线应补回首点: %d", len(pts))
	}
	if pts[0] != pts[3] {
		t.Errorf("末点应等于首点: %+v %+v", pts[0], pts[3])
	}
	for _, p := range pts {
		if p.Z != 2.5 {
			t.Fatalf("标高未套用: %+v", p)
		}
	}
}

func TestLWPolyline_OpenTwoPoints(t *testing.T) {
	// 不足三点即使标了闭合也不补点
	entity := Create("LWPOLYLINE")
	apply(entity, 10, "0", 20, "0", 10, "1", 20, "1", 70, "1")

	if pts := entity.(*LWPolyline).Points(); len(pts) != 2 {
		t.Errorf("两点折线不应补闭合点: %d", len(pts))
	}
}

func TestArc_Sweep(t *testing.T) {
	entity := Create("ARC")
	apply(entity, 10, "0", 20, "0", 40, "5", 50, "270", 51, "90")

	start, end := entity.(*Arc).Sweep()
	if start != 270 || end != 450 {
		t.Errorf("跨零圆弧应加一圈: %v %v", start, end)
	}

	apply(entity, 50, "30", 51, "120")
	if start, end = entity.(*Arc).Sweep(); start != 30 || end != 120 {
		t.Errorf("普通圆弧不应改角: %v %v", start, end)
	}
}

func TestSpline_ControlPoints(t *testing.T) {
	entity := Create("SPLINE")
	apply(entity,
		71, "3", // 度数忽略
		10, "0", 20, "0", 30, "0",
		10, "5", 20, "10", 30, "1",
		10, "10", 20, "0", 30, "2",
	)

	spline := entity.(*Spline)
	if len(spline.ControlPoints) != 3 {
		t.Fatalf("控制点数不符: %d", len(spline.ControlPoints))
	}
	if spline.ControlPoints[1] != (core.Point{X: 5, Y: 10, Z: 1}) {
		t.Errorf("控制点坐标不符: %+v", spline.ControlPoints[1])
	}
}

func TestFace3D_IsTriangle(t *testing.T) {
	entity := Create("3DFACE")
	apply(entity,
		10, "0", 20, "0", 30, "0",
		11, "1", 21, "0", 31, "0",
		12, "1", 22, "1", 32, "0",
		13, "1", 23, "1", 33, "0", // 与第三点重合
	)
	if !entity.(*Face3D).IsTriangle() {
		t.Error("第四点重合应判为三角形")
	}

	apply(entity, 13, "0", 23, "1", 33, "0")
	if entity.(*Face3D).IsTriangle() {
		t.Error("第四点独立应判为四边形")
	}
}

func TestInsert_Defaults(t *testing.T) {
	entity := Create("INSERT")
	ins := entity.(*Insert)
	if ins.Scale != (core.Point{X: 1, Y: 1, Z: 1}) {
		t.Errorf("缺省缩放应为 1: %+v", ins.Scale)
	}

	apply(entity, 2, "door", 10, "7", 20, "8", 41, "2", 42, "3", 50, "45")
	if ins.BlockName != "DOOR" {
		t.Errorf("被引块名应统一大写: %s", ins.BlockName)
	}
	if ins.Scale.X != 2 || ins.Scale.Y != 3 || ins.Scale.Z != 1 {
		t.Errorf("缩放不符: %+v", ins.Scale)
	}
	if ins.Rotation != 45 {
		t.Errorf("旋转角不符: %v", ins.Rotation)
	}
}
