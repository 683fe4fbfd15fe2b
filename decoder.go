package dxf3d

import (
	"strings"

	"github.com/zooyer/dxf3d/core"
	"github.com/zooyer/dxf3d/entities"
)

// decodeState 解码器所在的段落
type decodeState int

const (
	stateIdle     decodeState = iota // 不在任何已识别的段落里
	stateEntities                    // ENTITIES 段
	stateBlocks                      // BLOCKS 段
	stateTables                      // TABLES 段（只认 LAYER 表）
)

func (s decodeState) String() string {
	switch s {
	case stateEntities:
		return "ENTITIES"
	case stateBlocks:
		return "BLOCKS"
	case stateTables:
		return "TABLES"
	}
	return "IDLE"
}

// Decoder 段落/实体状态机：逐个吃进标签，归档实体与块定义。
// 状态全部在字段上，单独喂标签即可测试，不依赖完整文件。
// 解码永不失败：认不出的结构只是产不出结果。
type Decoder struct {
	doc    *Document
	state  decodeState
	block  *Block          // BLOCK/ENDBLK 之间非空
	entity entities.Entity // 累积中的实体

	// TABLES 子状态
	table      string    // 当前表名（大写）
	awaitTable bool      // 刚读到 TABLE，等组码 2 给表名
	layer      *LayerDef // 累积中的图层定义
}

func NewDecoder() *Decoder {
	return &Decoder{
		doc: &Document{
			Entities: make([]entities.Entity, 0, 1024),
			Blocks:   make(map[string]*Block),
			Layers:   make(map[string]*LayerDef),
		},
	}
}

// Feed 处理一组标签，完成一次状态转移
func (d *Decoder) Feed(tag core.Tag) {
	switch tag.Code {
	case 0:
		d.feedZero(strings.ToUpper(tag.AsString()))
	case 2:
		d.feedName(tag)
	default:
		if d.state == stateTables {
			d.feedTable(tag)
			return
		}
		if d.entity != nil {
			d.entity.Apply(tag)
		}
	}
}

// feedZero 组码 0：段落与实体的分界
func (d *Decoder) feedZero(value string) {
	switch value {
	case "SECTION":
		d.commit()
		d.dropBlock()
		d.state = stateIdle
	case "ENDSEC":
		d.commit()
		d.dropBlock()
		d.commitLayer()
		d.table, d.awaitTable = "", false
		d.state = stateIdle
	case "BLOCK":
		d.commit()
		d.block = &Block{Entities: make([]entities.Entity, 0, 16)}
	case "ENDBLK":
		d.commit()
		if d.block != nil && d.block.Name != "" {
			d.doc.Blocks[d.block.Name] = d.block
		}
		d.block = nil
	default:
		if d.state == stateTables {
			d.feedTableZero(value)
			return
		}
		// 只有 ENTITIES 段和打开的块体接收实体
		if d.state == stateEntities || (d.state == stateBlocks && d.block != nil) {
			d.commit()
			d.entity = entities.Create(value)
		}
	}
}

// dropBlock 作废没等到 ENDBLK 的块定义。段落边界必须清掉它，
// 否则残留的无名块会把后续的组码 2 吞成自己的块名。
func (d *Decoder) dropBlock() {
	if d.block != nil {
		Logger().Debug("未闭合的块定义被丢弃", "block", d.block.Name)
		d.block = nil
	}
}

// feedName 组码 2：段名、块名或 INSERT 的被引块名
func (d *Decoder) feedName(tag core.Tag) {
	name := strings.ToUpper(tag.AsString())
	switch {
	case d.state == stateIdle:
		switch name {
		case "ENTITIES":
			d.state = stateEntities
		case "BLOCKS":
			d.state = stateBlocks
		case "TABLES":
			d.state = stateTables
		default:
			// HEADER/OBJECTS 等不支持的段，原地跳过
		}
	case d.state == stateTables:
		d.feedTable(tag)
	case d.block != nil && d.block.Name == "":
		d.block.Name = name
	case d.entity != nil:
		d.entity.Apply(tag)
	}
}

// commit 把累积中的实体归档：ENTITIES 段进模型空间，
// 已具名的块体进块缓冲，其余丢弃。
func (d *Decoder) commit() {
	if d.entity == nil {
		return
	}
	entity := d.entity
	d.entity = nil

	switch {
	case d.state == stateBlocks && d.block != nil && d.block.Name != "":
		d.block.Entities = append(d.block.Entities, entity)
	case d.state == stateEntities:
		d.doc.Entities = append(d.doc.Entities, entity)
	default:
		d.doc.Diags = append(d.doc.Diags, Diagnostic{
			Kind:    DiagDiscardedEntity,
			Message: "实体 " + entity.Type() + " 出现在 " + d.state.String() + " 上下文，无处归档",
		})
		Logger().Debug("丢弃无处归档的实体", "type", entity.Type(), "state", d.state.String())
	}
}

// feedTableZero TABLES 段里的组码 0
func (d *Decoder) feedTableZero(value string) {
	switch value {
	case "TABLE":
		d.commitLayer()
		d.table, d.awaitTable = "", true
	case "ENDTAB":
		d.commitLayer()
		d.table, d.awaitTable = "", false
	case "LAYER":
		if d.table == "LAYER" {
			d.commitLayer()
			d.layer = &LayerDef{Color: 7} // ACI 默认白/黑
		}
	default:
		// DIMSTYLE、LTYPE 等其他表不解码
		d.commitLayer()
	}
}

// feedTable TABLES 段里组码 0 之外的标签
func (d *Decoder) feedTable(tag core.Tag) {
	switch tag.Code {
	case 2:
		if d.awaitTable {
			d.table, d.awaitTable = strings.ToUpper(tag.AsString()), false
			return
		}
		if d.layer != nil {
			d.layer.Name = tag.AsString()
		}
	case 62:
		if d.layer != nil {
			d.layer.Color = tag.AsInt()
		}
	case 70:
		if d.layer != nil {
			d.layer.Frozen = tag.AsInt()&1 != 0
		}
	}
}

func (d *Decoder) commitLayer() {
	if d.layer != nil && d.layer.Name != "" {
		d.doc.Layers[d.layer.Name] = d.layer
	}
	d.layer = nil
}

// Close 冲掉最后一个累积中的实体，返回文档。流结束等价于一次最终提交。
func (d *Decoder) Close() *Document {
	d.commit()
	d.commitLayer()
	d.block = nil
	d.state = stateIdle
	return d.doc
}
