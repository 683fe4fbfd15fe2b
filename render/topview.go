// Package render 把场景图拍平成二维俯视图，供快速预览。
// 交互式三维显示是上层渲染器的事，这里只做一张静态 PNG。
package render

import (
	"errors"
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/gogpu/gg"

	"github.com/zooyer/dxf3d/scene"
)

// ErrNothingToRender 场景里没有任何可见几何
var ErrNothingToRender = errors.New("render: nothing to render")

// flatPath 拍平后的一条世界坐标折线/三角形轮廓
type flatPath struct {
	points []math32.Vector3
	color  color.RGBA
	fill   bool
}

// SaveTopView 自顶向下正交投影渲染场景并写出 PNG。
// 几何按包围盒自动缩放居中，margin 为四周留白像素。
func SaveTopView(root *scene.Group, width, height int, filename string) error {
	paths := flatten(root, nil)
	if len(paths) == 0 {
		return ErrNothingToRender
	}

	// 世界范围（只看 XY）
	box := math32.B3Empty()
	for _, p := range paths {
		for _, pt := range p.points {
			box.ExpandByPoint(pt)
		}
	}

	const margin = 16.0
	size := box.Size()
	sx := (float64(width) - 2*margin) / max(float64(size.X), 1e-6)
	sy := (float64(height) - 2*margin) / max(float64(size.Y), 1e-6)
	s := min(sx, sy)
	center := box.Center()

	ctx := gg.NewContext(width, height)
	defer func() { _ = ctx.Close() }()
	ctx.ClearWithColor(gg.Black)
	ctx.SetLineWidth(1)

	// 世界坐标 → 画布：居中缩放，Y 轴翻转
	toCanvas := func(p math32.Vector3) (x, y float64) {
		x = float64(width)/2 + (float64(p.X)-float64(center.X))*s
		y = float64(height)/2 - (float64(p.Y)-float64(center.Y))*s
		return
	}

	for _, path := range paths {
		if len(path.points) < 2 {
			continue
		}
		ctx.SetColor(path.color)
		x, y := toCanvas(path.points[0])
		ctx.MoveTo(x, y)
		for _, pt := range path.points[1:] {
			x, y = toCanvas(pt)
			ctx.LineTo(x, y)
		}
		if path.fill {
			ctx.ClosePath()
			if err := ctx.Fill(); err != nil {
				return err
			}
			continue
		}
		if err := ctx.Stroke(); err != nil {
			return err
		}
	}

	return ctx.SavePNG(filename)
}

// flatten 深度优先下沉，把各级位姿累乘进世界矩阵，收集可见图元
func flatten(node scene.Node, parent *math32.Matrix4) []flatPath {
	if !node.Visible() {
		return nil
	}

	switch n := node.(type) {
	case *scene.Group:
		world := worldMatrix(&n.Pose, parent)
		var paths []flatPath
		for _, child := range n.Children {
			paths = append(paths, flatten(child, world)...)
		}
		return paths

	case *scene.Lines:
		world := worldMatrix(&n.Pose, parent)
		return []flatPath{{
			points: transformAll(n.Points, world),
			color:  n.Mat.Color,
		}}

	case *scene.Mesh:
		world := worldMatrix(&n.Pose, parent)
		points := transformAll(n.Vertex, world)
		var paths []flatPath
		for i := 0; i+2 < len(points); i += 3 {
			paths = append(paths, flatPath{
				points: []math32.Vector3{points[i], points[i+1], points[i+2]},
				color:  n.Mat.Color,
				fill:   true,
			})
		}
		return paths
	}

	return nil
}

func worldMatrix(pose *scene.Pose, parent *math32.Matrix4) *math32.Matrix4 {
	local := pose.Matrix()
	if parent == nil {
		return &local
	}
	var world math32.Matrix4
	world.MulMatrices(parent, &local)
	return &world
}

func transformAll(points []math32.Vector3, m *math32.Matrix4) []math32.Vector3 {
	out := make([]math32.Vector3, 0, len(points))
	for _, p := range points {
		v := math32.Vector4{X: p.X, Y: p.Y, Z: p.Z, W: 1}.MulMatrix4(m)
		out = append(out, math32.Vec3(v.X, v.Y, v.Z))
	}
	return out
}
