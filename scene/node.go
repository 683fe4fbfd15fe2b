// Package scene 把 dxf3d 的实体模型物化为可渲染的场景图：
// 文件 → 图层 → 图元（线/网格）或块实例组的三层结构。
// 构建结果不可变引用、可变属性：下游通过节点上的 setter 改
// 可见性/颜色/位姿，构建器自身绝不回写共享状态。
package scene

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Material 图元的渲染外观，Color 的 alpha 不用，整体透明度走 Opacity
type Material struct {
	Color   color.RGBA
	Opacity float32 // 0 全透明 .. 1 不透明
}

// Pose 节点的局部变换：平移、各轴独立缩放、绕 Z 轴旋转。
// DXF 的二维块插入不带 X/Y 倾斜，只有 Z 旋转。
type Pose struct {
	Pos       math32.Vector3
	Scale     math32.Vector3
	RotationZ float32 // 度
}

func (p *Pose) Defaults() {
	p.Scale.Set(1, 1, 1)
}

// Matrix 位姿对应的 4x4 变换矩阵（缩放 → 旋转 → 平移）
func (p *Pose) Matrix() math32.Matrix4 {
	var m math32.Matrix4
	quat := math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), math32.DegToRad(p.RotationZ))
	m.SetTransform(p.Pos, quat, p.Scale)
	return m
}

// Node 场景图节点的公共操作面
type Node interface {
	Name() string
	Visible() bool
	// SetVisible 作用于自身；组节点会级联到全部后代
	SetVisible(visible bool)
	// SetColor / SetOpacity 作用于自身材质；组节点级联
	SetColor(c color.RGBA)
	SetOpacity(opacity float32)
	// BBox 返回经过自身位姿变换后的包围盒
	BBox() math32.Box3
}

// NodeBase 所有节点的公共字段
type NodeBase struct {
	Nm   string
	Vis  bool
	Pose Pose
}

func (nb *NodeBase) Name() string            { return nb.Nm }
func (nb *NodeBase) Visible() bool           { return nb.Vis }
func (nb *NodeBase) SetVisible(visible bool) { nb.Vis = visible }

// Group 汇集子节点，自身没有几何，但持有作用于全部后代的变换
type Group struct {
	NodeBase
	Children []Node
}

func NewGroup(name string) *Group {
	g := &Group{NodeBase: NodeBase{Nm: name, Vis: true}}
	g.Pose.Defaults()
	return g
}

func (g *Group) Add(n Node) {
	g.Children = append(g.Children, n)
}

// SetVisible 级联到全部后代，对应图层/文件级的显示开关
func (g *Group) SetVisible(visible bool) {
	g.Vis = visible
	for _, child := range g.Children {
		child.SetVisible(visible)
	}
}

func (g *Group) SetColor(c color.RGBA) {
	for _, child := range g.Children {
		child.SetColor(c)
	}
}

func (g *Group) SetOpacity(opacity float32) {
	for _, child := range g.Children {
		child.SetOpacity(opacity)
	}
}

// BBox 聚合全部子节点的包围盒，再过自身位姿
func (g *Group) BBox() math32.Box3 {
	box := math32.B3Empty()
	for _, child := range g.Children {
		cb := child.BBox()
		if cb.IsEmpty() {
			continue
		}
		box.ExpandByBox(cb)
	}
	if box.IsEmpty() {
		return box
	}
	m := g.Pose.Matrix()
	return box.MulMatrix4(&m)
}

// Lines 折线图元：相邻点依次连成线段
type Lines struct {
	NodeBase
	Points []math32.Vector3
	Mat    Material
}

func NewLines(name string, points []math32.Vector3, mat Material) *Lines {
	l := &Lines{NodeBase: NodeBase{Nm: name, Vis: true}, Points: points, Mat: mat}
	l.Pose.Defaults()
	return l
}

func (l *Lines) SetColor(c color.RGBA)      { l.Mat.Color = c }
func (l *Lines) SetOpacity(opacity float32) { l.Mat.Opacity = opacity }

func (l *Lines) BBox() math32.Box3 {
	box := math32.B3Empty()
	for _, p := range l.Points {
		box.ExpandByPoint(p)
	}
	if box.IsEmpty() {
		return box
	}
	m := l.Pose.Matrix()
	return box.MulMatrix4(&m)
}

// Mesh 三角网格图元，顶点三个一组（非索引），法线构建后重算
type Mesh struct {
	NodeBase
	Vertex []math32.Vector3
	Norm   []math32.Vector3
	Mat    Material
}

func NewMesh(name string, vertex []math32.Vector3, mat Material) *Mesh {
	m := &Mesh{NodeBase: NodeBase{Nm: name, Vis: true}, Vertex: vertex, Mat: mat}
	m.Pose.Defaults()
	m.ComputeNormals()
	return m
}

func (m *Mesh) SetColor(c color.RGBA)      { m.Mat.Color = c }
func (m *Mesh) SetOpacity(opacity float32) { m.Mat.Opacity = opacity }

// ComputeNormals 按三角形重算顶点法线，保证着色正确
func (m *Mesh) ComputeNormals() {
	m.Norm = make([]math32.Vector3, len(m.Vertex))
	for i := 0; i+2 < len(m.Vertex); i += 3 {
		n := math32.Normal(m.Vertex[i], m.Vertex[i+1], m.Vertex[i+2])
		m.Norm[i], m.Norm[i+1], m.Norm[i+2] = n, n, n
	}
}

func (m *Mesh) BBox() math32.Box3 {
	box := math32.B3Empty()
	for _, p := range m.Vertex {
		box.ExpandByPoint(p)
	}
	if box.IsEmpty() {
		return box
	}
	mat := m.Pose.Matrix()
	return box.MulMatrix4(&mat)
}
