package scene

import (
	"image/color"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"

	"github.com/zooyer/dxf3d"
	"github.com/zooyer/dxf3d/core"
	"github.com/zooyer/dxf3d/entities"
)

// Options 构建选项，零值可用，Defaults 补齐
type Options struct {
	Name        string     // 根组名，一般填文件名
	Color       color.RGBA // 文件显示色，零值取白色
	Wireframe   bool       // 面实体只画轮廓不铺网格
	LayerColors bool       // 用图层表的 ACI 颜色覆盖文件色
	Layers      []string   // 选择性导入：非空时只物化列出的图层
	MaxDepth    int        // INSERT 嵌套上限，防自引用块
	CircleSegs  int        // 圆/圆弧离散段数
	SplineSegs  int        // 样条采样段数
}

func (o *Options) Defaults() {
	if o.Name == "" {
		o.Name = "dxf"
	}
	if o.Color == (color.RGBA{}) {
		o.Color = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = 8
	}
	if o.CircleSegs <= 0 {
		o.CircleSegs = 32
	}
	if o.SplineSegs <= 0 {
		o.SplineSegs = 50
	}
}

// LayerSummary 单个图层的摘要，给上层做图层面板/选择性导入
type LayerSummary struct {
	Name     string
	Entities int  // 该图层的模型空间实体数（含未产出几何的）
	Visible  bool // 默认可见性，冻结图层为 false
}

// Result 一份图纸构建出的场景：文件 → 图层 → 图元/块实例组
type Result struct {
	Root        *Group
	Color       color.RGBA
	EntityCount int
	Layers      []LayerSummary
	Diags       []dxf3d.Diagnostic
}

// Empty 判断是否一个图元都没产出（"无可显示对象"，区别于解析失败）。
// 空块的实例组不算几何，一路找到线/网格叶子才算数。
func (r *Result) Empty() bool {
	return !hasGeometry(r.Root)
}

func hasGeometry(g *Group) bool {
	for _, child := range g.Children {
		if sub, ok := child.(*Group); ok {
			if hasGeometry(sub) {
				return true
			}
			continue
		}
		return true
	}
	return false
}

// Parse 解析一份 DXF 文本并构建场景，displayColor 为命名色或 #hex
func Parse(text, displayColor string) (*Result, error) {
	var opts Options
	if c, ok := ParseColor(displayColor); ok {
		opts.Color = c
	}
	return Load(strings.NewReader(text), &opts)
}

// Load 从 reader 解析并构建
func Load(r io.Reader, opts *Options) (*Result, error) {
	doc, err := dxf3d.Load(r)
	if err != nil {
		return nil, err
	}
	return Build(doc, opts), nil
}

// Build 把实体模型物化为场景图。纯函数：不持有也不回写任何共享
// 状态，同一文档重复构建得到相互独立的结果。构建永不失败，
// 残缺实体跳过并记入诊断。
func Build(doc *dxf3d.Document, opts *Options) *Result {
	var o Options
	if opts != nil {
		o = *opts
	}
	o.Defaults()

	b := &builder{doc: doc, opts: &o}

	var (
		root   = NewGroup(o.Name)
		groups = make(map[string]*Group)
		counts = make(map[string]int)
		order  []string
	)

	for _, entity := range doc.Entities {
		layer := entity.Layer()
		if layer == "" {
			layer = "0" // DXF 的默认图层
		}
		if _, ok := counts[layer]; !ok {
			order = append(order, layer)
		}
		counts[layer]++

		if !o.wantLayer(layer) {
			continue
		}

		group, ok := groups[layer]
		if !ok {
			group = NewGroup(layer)
			group.SetVisible(b.layerVisible(layer))
			groups[layer] = group
			root.Add(group)
		}

		if node := b.entity(entity, b.material(layer), 0); node != nil {
			group.Add(node)
		}
	}

	result := &Result{
		Root:        root,
		Color:       o.Color,
		EntityCount: len(doc.Entities),
		Layers:      make([]LayerSummary, 0, len(order)),
	}
	for _, layer := range order {
		result.Layers = append(result.Layers, LayerSummary{
			Name:     layer,
			Entities: counts[layer],
			Visible:  b.layerVisible(layer),
		})
	}

	result.Diags = append(result.Diags, doc.Diags...)
	result.Diags = append(result.Diags, b.diags...)
	return result
}

type builder struct {
	doc   *dxf3d.Document
	opts  *Options
	diags []dxf3d.Diagnostic
	seq   int
}

func (o *Options) wantLayer(layer string) bool {
	if len(o.Layers) == 0 {
		return true
	}
	for _, name := range o.Layers {
		if name == layer {
			return true
		}
	}
	return false
}

func (b *builder) layerVisible(layer string) bool {
	if def, ok := b.doc.Layers[layer]; ok {
		return !def.Frozen
	}
	return true
}

func (b *builder) material(layer string) Material {
	mat := Material{Color: b.opts.Color, Opacity: 1}
	if b.opts.LayerColors {
		if def, ok := b.doc.Layers[layer]; ok {
			if c, ok := ACIColor(def.Color); ok {
				mat.Color = c
			}
		}
	}
	return mat
}

func (b *builder) name(prefix string) string {
	b.seq++
	return prefix + "." + strconv.Itoa(b.seq)
}

func (b *builder) skip(kind dxf3d.DiagKind, message string) Node {
	b.diags = append(b.diags, dxf3d.Diagnostic{Kind: kind, Message: message})
	dxf3d.Logger().Debug("跳过实体", "reason", kind.String(), "detail", message)
	return nil
}

// entity 单个实体 → 场景节点，产不出几何时返回 nil。
// 每种实体一个分支，字段齐不齐在各自分支里说了算。
func (b *builder) entity(entity entities.Entity, mat Material, depth int) Node {
	switch e := entity.(type) {
	case *entities.Line:
		return NewLines(b.name("LINE"), []math32.Vector3{vec3(e.Start), vec3(e.End)}, mat)

	case *entities.LWPolyline:
		points := e.Points()
		if len(points) < 2 {
			return b.skip(dxf3d.DiagSkippedEntity, "LWPOLYLINE 顶点不足")
		}
		return NewLines(b.name("LWPOLYLINE"), vec3s(points), mat)

	case *entities.Circle:
		if e.Radius <= 0 {
			return b.skip(dxf3d.DiagSkippedEntity, "CIRCLE 半径无效")
		}
		points := TessellateArc(vec3(e.Center), float32(e.Radius), 0, 360, b.opts.CircleSegs)
		return NewLines(b.name("CIRCLE"), points, mat)

	case *entities.Arc:
		if e.Radius <= 0 {
			return b.skip(dxf3d.DiagSkippedEntity, "ARC 半径无效")
		}
		start, end := e.Sweep()
		points := TessellateArc(vec3(e.Center), float32(e.Radius), float32(start), float32(end), b.opts.CircleSegs)
		return NewLines(b.name("ARC"), points, mat)

	case *entities.Spline:
		if len(e.ControlPoints) < 2 {
			return b.skip(dxf3d.DiagSkippedEntity, "SPLINE 控制点不足")
		}
		control := e.ControlPoints
		if e.Closed {
			control = append(append([]core.Point{}, control...), control[0])
		}
		points := CatmullRom(vec3s(control), b.opts.SplineSegs)
		return NewLines(b.name("SPLINE"), points, mat)

	case *entities.Face3D:
		return b.face(e, mat)

	case *entities.Insert:
		return b.insert(e, mat, depth)

	default:
		// 未注册类型照常入档，但产不出几何（向前兼容）
		return b.skip(dxf3d.DiagUnknownEntity, "不支持的实体类型 "+entity.Type())
	}
}

// face 3DFACE：第四点与第三点重合出一个三角形，否则两个三角形铺满四边形
func (b *builder) face(e *entities.Face3D, mat Material) Node {
	p1, p2, p3, p4 := vec3(e.P1), vec3(e.P2), vec3(e.P3), vec3(e.P4)

	if b.opts.Wireframe {
		outline := []math32.Vector3{p1, p2, p3}
		if !e.IsTriangle() {
			outline = append(outline, p4)
		}
		outline = append(outline, p1)
		return NewLines(b.name("3DFACE"), outline, mat)
	}

	var vertex []math32.Vector3
	if e.IsTriangle() {
		vertex = []math32.Vector3{p1, p2, p3}
	} else {
		vertex = []math32.Vector3{p1, p2, p3, p1, p3, p4}
	}
	return NewMesh(b.name("3DFACE"), vertex, mat)
}

// insert 递归物化被引块，整组套上插入点的位姿。
// 深度越界静默截断：畸形的自引用块不能拖死调用方。
func (b *builder) insert(e *entities.Insert, mat Material, depth int) Node {
	if depth >= b.opts.MaxDepth {
		return b.skip(dxf3d.DiagDepthExceeded, "块嵌套超过 "+strconv.Itoa(b.opts.MaxDepth)+" 层: "+e.BlockName)
	}

	block, ok := b.doc.Blocks[e.BlockName]
	if !ok {
		return b.skip(dxf3d.DiagMissingBlock, "INSERT 引用了未定义的块 "+e.BlockName)
	}

	group := NewGroup(b.name("INSERT." + block.Name))
	group.Pose.Pos = vec3(e.InsertionPoint)
	group.Pose.Scale.Set(float32(e.Scale.X), float32(e.Scale.Y), float32(e.Scale.Z))
	group.Pose.RotationZ = float32(e.Rotation)

	for _, sub := range block.Entities {
		if node := b.entity(sub, mat, depth+1); node != nil {
			group.Add(node)
		}
	}
	return group
}

func vec3(p core.Point) math32.Vector3 {
	return math32.Vec3(float32(p.X), float32(p.Y), float32(p.Z))
}

func vec3s(points []core.Point) []math32.Vector3 {
	out := make([]math32.Vector3, 0, len(points))
	for _, p := range points {
		out = append(out, vec3(p))
	}
	return out
}
