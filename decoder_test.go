package dxf3d

import (
	"testing"

	"github.com/zooyer/dxf3d/core"
	"github.com/zooyer/dxf3d/entities"
)

// feed 按 (code, value) 顺序喂标签，免去构造完整文件
func feed(d *Decoder, pairs ...any) {
	for i := 0; i+1 < len(pairs); i += 2 {
		d.Feed(core.Tag{Code: pairs[i].(int), Value: pairs[i+1].(string)})
	}
}

func TestDecoder_ModelSpace(t *testing.T) {
	d := NewDecoder()
	feed(d,
		0, "SECTION",
		2, "ENTITIES",
		0, "LINE",
		8, "WALL",
		10, "1.0", 20, "2.0", 30, "3.0",
		11, "4.0", 21, "5.0", 31, "6.0",
		0, "ENDSEC",
	)
	doc := d.Close()

	if len(doc.Entities) != 1 {
		t.Fatalf("期望 1 个实体, 得到 %d", len(doc.Entities))
	}
	line, ok := doc.Entities[0].(*entities.Line)
	if !ok {
		t.Fatalf("期望 LINE, 得到 %T", doc.Entities[0])
	}
	if line.Layer() != "WALL" {
		t.Errorf("图层不符: %s", line.Layer())
	}
	if line.Start != (core.Point{X: 1, Y: 2, Z: 3}) || line.End != (core.Point{X: 4, Y: 5, Z: 6}) {
		t.Errorf("坐标不符: %+v %+v", line.Start, line.End)
	}
}

func TestDecoder_FinalFlush(t *testing.T) {
	// 流结束等价于最后一次提交
	d := NewDecoder()
	feed(d,
		0, "SECTION",
		2, "ENTITIES",
		0, "LINE",
		10, "1", 20, "1",
	)
	doc := d.Close()

	if len(doc.Entities) != 1 {
		t.Fatalf("末尾实体未被冲出: %d", len(doc.Entities))
	}
}

func TestDecoder_SectionScoping(t *testing.T) {
	// ENDSEC 之后、下一个 SECTION 之前的实体不进模型空间
	d := NewDecoder()
	feed(d,
		0, "SECTION",
		2, "ENTITIES",
		0, "LINE",
		10, "0", 20, "0",
		0, "ENDSEC",
		0, "CIRCLE", // 游离在段落外
		40, "5",
	)
	doc := d.Close()

	if len(doc.Entities) != 1 {
		t.Fatalf("段落外的实体混进了模型空间: %d", len(doc.Entities))
	}
	if doc.Entities[0].Type() != "LINE" {
		t.Errorf("期望 LINE, 得到 %s", doc.Entities[0].Type())
	}
}

func TestDecoder_BlockClosure(t *testing.T) {
	d := NewDecoder()
	feed(d,
		0, "SECTION",
		2, "BLOCKS",
		0, "BLOCK",
		2, "DOOR",
		0, "LINE",
		10, "0", 20, "0", 11, "1", 21, "0",
		0, "ENDBLK",
		0, "ENDSEC",
	)
	doc := d.Close()

	block, ok := doc.Blocks["DOOR"]
	if !ok {
		t.Fatal("块 DOOR 未注册")
	}
	if len(block.Entities) != 1 || block.Entities[0].Type() != "LINE" {
		t.Errorf("块内容不符: %+v", block.Entities)
	}
	if len(doc.Entities) != 0 {
		t.Errorf("块内实体不应进模型空间: %d", len(doc.Entities))
	}
}

func TestDecoder_UnterminatedBlock(t *testing.T) {
	// 没等到 ENDBLK 的块定义不可用
	d := NewDecoder()
	feed(d,
		0, "SECTION",
		2, "BLOCKS",
		0, "BLOCK",
		2, "DOOR",
		0, "LINE",
		10, "0", 20, "0",
	)
	doc := d.Close()

	if len(doc.Blocks) != 0 {
		t.Errorf("未闭合的块不应注册: %+v", doc.Blocks)
	}
}

func TestDecoder_StaleBlockDropped(t *testing.T) {
	// 残缺的 BLOCK 直接撞上 SECTION：残留块必须作废，
	// 否则后面 INSERT 的组码 2 会被它吞成块名
	d := NewDecoder()
	feed(d,
		0, "SECTION",
		2, "BLOCKS",
		0, "BLOCK",
		0, "SECTION",
		2, "ENTITIES",
		0, "INSERT",
		2, "DOOR",
		10, "1", 20, "2",
		0, "ENDSEC",
	)
	doc := d.Close()

	if len(doc.Blocks) != 0 {
		t.Errorf("残留块不应注册: %+v", doc.Blocks)
	}
	ins, ok := doc.Entities[0].(*entities.Insert)
	if !ok {
		t.Fatalf("期望 INSERT, 得到 %T", doc.Entities[0])
	}
	if ins.BlockName != "DOOR" {
		t.Errorf("被引块名被残留块吞掉: %q", ins.BlockName)
	}
}

func TestDecoder_InsertBlockName(t *testing.T) {
	// INSERT 的组码 2 是被引块名，统一大写
	d := NewDecoder()
	feed(d,
		0, "SECTION",
		2, "ENTITIES",
		0, "INSERT",
		2, "door",
		10, "100", 20, "200",
		50, "90",
	)
	doc := d.Close()

	ins, ok := doc.Entities[0].(*entities.Insert)
	if !ok {
		t.Fatalf("期望 INSERT, 得到 %T", doc.Entities[0])
	}
	if ins.BlockName != "DOOR" {
		t.Errorf("被引块名不符: %s", ins.BlockName)
	}
	if ins.Scale != (core.Point{X: 1, Y: 1, Z: 1}) {
		t.Errorf("缺省缩放应为 1: %+v", ins.Scale)
	}
	if ins.Rotation != 90 {
		t.Errorf("旋转角不符: %v", ins.Rotation)
	}
}

func TestDecoder_UnknownSectionSkipped(t *testing.T) {
	// HEADER 等不支持的段原地跳过，不影响后面的 ENTITIES
	d := NewDecoder()
	feed(d,
		0, "SECTION",
		2, "HEADER",
		9, "$ACADVER",
		1, "AC1027",
		0, "ENDSEC",
		0, "SECTION",
		2, "ENTITIES",
		0, "LINE",
		10, "0", 20, "0",
		0, "ENDSEC",
	)
	doc := d.Close()

	if len(doc.Entities) != 1 {
		t.Fatalf("期望 1 个实体, 得到 %d", len(doc.Entities))
	}
}

func TestDecoder_UnknownEntityCaptured(t *testing.T) {
	// 未注册的实体类型照常入档（向前兼容），渲染层再决定产不产几何
	d := NewDecoder()
	feed(d,
		0, "SECTION",
		2, "ENTITIES",
		0, "MTEXT",
		8, "NOTES",
		1, "hello",
		0, "ENDSEC",
	)
	doc := d.Close()

	if len(doc.Entities) != 1 {
		t.Fatalf("未知实体应被通用记录: %d", len(doc.Entities))
	}
	if doc.Entities[0].Type() != "MTEXT" || doc.Entities[0].Layer() != "NOTES" {
		t.Errorf("通用记录字段不符: %s %s", doc.Entities[0].Type(), doc.Entities[0].Layer())
	}
}

func TestDecoder_DanglingEndblk(t *testing.T) {
	// 没有 BLOCK 配对的 ENDBLK 不应崩溃，也不应产出任何块
	d := NewDecoder()
	feed(d,
		0, "SECTION",
		2, "BLOCKS",
		0, "ENDBLK",
		0, "ENDSEC",
	)
	doc := d.Close()

	if len(doc.Blocks) != 0 {
		t.Errorf("不应产出块: %+v", doc.Blocks)
	}
}

func TestDecoder_LayerTable(t *testing.T) {
	d := NewDecoder()
	feed(d,
		0, "SECTION",
		2, "TABLES",
		0, "TABLE",
		2, "LAYER",
		0, "LAYER",
		2, "WALL",
		62, "1",
		70, "0",
		0, "LAYER",
		2, "HIDDEN",
		62, "5",
		70, "1", // 冻结
		0, "ENDTAB",
		0, "ENDSEC",
	)
	doc := d.Close()

	wall, ok := doc.Layers["WALL"]
	if !ok || wall.Color != 1 || wall.Frozen {
		t.Errorf("WALL 图层不符: %+v", wall)
	}
	hidden, ok := doc.Layers["HIDDEN"]
	if !ok || !hidden.Frozen {
		t.Errorf("HIDDEN 图层应为冻结: %+v", hidden)
	}
}
