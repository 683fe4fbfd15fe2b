package scene

import (
	"cogentcore.org/core/math32"
)

// TessellateArc 把圆/圆弧离散成折线。start/end 为度，
// segments 段产出 segments+1 个点；整圆（扫 360°）首尾两点重合。
func TessellateArc(center math32.Vector3, radius float32, start, end float32, segments int) []math32.Vector3 {
	if segments < 1 || radius <= 0 {
		return nil
	}
	points := make([]math32.Vector3, 0, segments+1)
	for i := 0; i <= segments; i++ {
		angle := math32.DegToRad(start + (end-start)*float32(i)/float32(segments))
		points = append(points, math32.Vec3(
			center.X+radius*math32.Cos(angle),
			center.Y+radius*math32.Sin(angle),
			center.Z,
		))
	}
	return points
}

// CatmullRom 过全部控制点的 Catmull-Rom 插值，采样成 segments 段。
// 刻意的近似：不做 NURBS 求值，度数和节点矢量不参与。
func CatmullRom(points []math32.Vector3, segments int) []math32.Vector3 {
	n := len(points)
	if n == 0 || segments < 1 {
		return nil
	}
	if n == 1 {
		return []math32.Vector3{points[0]}
	}
	if n == 2 {
		// 两个控制点退化为直线段
		out := make([]math32.Vector3, 0, segments+1)
		for i := 0; i <= segments; i++ {
			t := float32(i) / float32(segments)
			out = append(out, math32.Vec3(
				points[0].X+(points[1].X-points[0].X)*t,
				points[0].Y+(points[1].Y-points[0].Y)*t,
				points[0].Z+(points[1].Z-points[0].Z)*t,
			))
		}
		return out
	}

	spans := n - 1
	out := make([]math32.Vector3, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float32(i) / float32(segments) * float32(spans)
		span := int(t)
		if span >= spans {
			span = spans - 1
		}
		out = append(out, sampleSpan(points, span, t-float32(span)))
	}
	return out
}

// sampleSpan 在第 span 段上取参数 u (0..1) 处的插值点。
// 端点段把缺失的邻点按端点外推补齐。
func sampleSpan(points []math32.Vector3, span int, u float32) math32.Vector3 {
	n := len(points)
	p1 := points[span]
	p2 := points[span+1]

	var p0, p3 math32.Vector3
	if span > 0 {
		p0 = points[span-1]
	} else {
		p0 = extrapolate(p2, p1)
	}
	if span+2 < n {
		p3 = points[span+2]
	} else {
		p3 = extrapolate(p1, p2)
	}

	return math32.Vec3(
		catmull(p0.X, p1.X, p2.X, p3.X, u),
		catmull(p0.Y, p1.Y, p2.Y, p3.Y, u),
		catmull(p0.Z, p1.Z, p2.Z, p3.Z, u),
	)
}

// extrapolate 沿 a→b 方向把 b 再推出去一步
func extrapolate(a, b math32.Vector3) math32.Vector3 {
	return math32.Vec3(2*b.X-a.X, 2*b.Y-a.Y, 2*b.Z-a.Z)
}

// catmull 一维 Catmull-Rom 基函数（张力 0.5），u=0 取 p1，u=1 取 p2
func catmull(p0, p1, p2, p3, u float32) float32 {
	v0 := (p2 - p0) * 0.5
	v1 := (p3 - p1) * 0.5
	u2 := u * u
	u3 := u2 * u
	return (2*p1-2*p2+v0+v1)*u3 + (-3*p1+3*p2-2*v0-v1)*u2 + v0*u + p1
}
