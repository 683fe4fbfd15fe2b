package utils

import (
	"math"

	"github.com/zooyer/dxf3d"
	"github.com/zooyer/dxf3d/core"
	"github.com/zooyer/dxf3d/entities"
)

// maxInsertDepth 与 scene 包的默认深度上限一致，防自引用块转圈
const maxInsertDepth = 8

// TransformBBox 执行矩阵变换：将局部坐标变换到插入点所在的世界坐标
func TransformBBox(local core.BBox, ins *entities.Insert) core.BBox {
	corners := []core.Point{
		{X: local.Min.X, Y: local.Min.Y, Z: local.Min.Z},
		{X: local.Max.X, Y: local.Min.Y, Z: local.Min.Z},
		{X: local.Max.X, Y: local.Max.Y, Z: local.Min.Z},
		{X: local.Min.X, Y: local.Max.Y, Z: local.Min.Z},
		{X: local.Min.X, Y: local.Min.Y, Z: local.Max.Z},
		{X: local.Max.X, Y: local.Min.Y, Z: local.Max.Z},
		{X: local.Max.X, Y: local.Max.Y, Z: local.Max.Z},
		{X: local.Min.X, Y: local.Max.Y, Z: local.Max.Z},
	}

	world := core.EmptyBBox()
	for _, p := range corners {
		world.Expand(TransformPoint(p, ins))
	}

	return world
}

// MergeBoxes 合并重叠的矩形
func MergeBoxes(boxes []core.BBox, gap float64) []core.BBox {
	if len(boxes) < 2 {
		return boxes
	}

	for {
		changed := false
		var merged []core.BBox
		visited := make([]bool, len(boxes))
		for i := 0; i < len(boxes); i++ {
			if visited[i] {
				continue
			}
			curr := boxes[i]
			visited[i] = true
			for j := i + 1; j < len(boxes); j++ {
				if !visited[j] && !IsSeparate(curr, boxes[j], gap) {
					curr.Min.X = math.Min(curr.Min.X, boxes[j].Min.X)
					curr.Min.Y = math.Min(curr.Min.Y, boxes[j].Min.Y)
					curr.Max.X = math.Max(curr.Max.X, boxes[j].Max.X)
					curr.Max.Y = math.Max(curr.Max.Y, boxes[j].Max.Y)
					visited[j], changed = true, true
				}
			}
			merged = append(merged, curr)
		}
		boxes = merged
		if !changed {
			break
		}
	}

	return boxes
}

// IsSeparate 判断两个 BBox 是否完全分离
func IsSeparate(a, b core.BBox, gap float64) bool {
	return a.Max.X+gap < b.Min.X || a.Min.X-gap > b.Max.X ||
		a.Max.Y+gap < b.Min.Y || a.Min.Y-gap > b.Max.Y
}

// InBox 判断点是否落在盒内（只看 XY）
func InBox(box core.BBox, point core.Point) bool {
	return point.X >= box.Min.X && point.X <= box.Max.X &&
		point.Y >= box.Min.Y && point.Y <= box.Max.Y
}

// EntityBBox 计算实体的世界坐标包围盒。
// INSERT 结合块定义递归展开，深度越界与找不到块都退化为插入点。
func EntityBBox(doc *dxf3d.Document, entity entities.Entity) core.BBox {
	return entityBBox(doc, entity, 0)
}

func entityBBox(doc *dxf3d.Document, entity entities.Entity, depth int) core.BBox {
	ins, ok := entity.(*entities.Insert)
	if !ok {
		return entity.BBox()
	}

	if depth >= maxInsertDepth {
		return core.BBox{Min: ins.InsertionPoint, Max: ins.InsertionPoint}
	}

	block, exists := doc.Blocks[ins.BlockName]
	if !exists || len(block.Entities) == 0 {
		return core.BBox{Min: ins.InsertionPoint, Max: ins.InsertionPoint}
	}

	local := core.EmptyBBox()
	for _, sub := range block.Entities {
		local.Merge(entityBBox(doc, sub, depth+1))
	}
	if local.IsEmpty() {
		return core.BBox{Min: ins.InsertionPoint, Max: ins.InsertionPoint}
	}

	return TransformBBox(local, ins)
}

// DocumentBBox 全部模型空间实体的世界坐标包围盒
func DocumentBBox(doc *dxf3d.Document) core.BBox {
	box := core.EmptyBBox()
	for _, entity := range doc.Entities {
		box.Merge(EntityBBox(doc, entity))
	}
	return box
}
