// Package dxf3d 把 ASCII DXF 图纸解析为实体模型，供 scene 包
// 组装成可渲染的三维场景图。
//
// 解析链路单向单遍：core.Scanner 产出标签流 → Decoder 状态机
// 归档实体与块定义 → scene.Build 递归物化几何。坏数据一律降级
// 跳过（见 Diagnostic），只有空输入和二进制 DXF 两类致命错误。
package dxf3d

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/zooyer/dxf3d/core"
	"github.com/zooyer/dxf3d/entities"
)

// 仅有的两类致命错误，其余问题都降级为 Diagnostic
var (
	ErrEmpty  = errors.New("dxf3d: empty input")
	ErrBinary = errors.New("dxf3d: binary dxf not supported")
)

// BinarySentinel 二进制 DXF 的文件头标记，出现即拒绝解析
const BinarySentinel = "AutoCAD Binary DXF"

// Block 一份具名的块定义：可复用的实体模板，自身不渲染，只被 INSERT 引用
type Block struct {
	Name     string
	Entities []entities.Entity
}

// LayerDef TABLES 段 LAYER 表里的图层定义
type LayerDef struct {
	Name   string
	Color  int  // ACI 颜色号，组码 62
	Frozen bool // 组码 70 低位，冻结图层默认不可见
}

// Document 一份图纸解析后的实体模型
type Document struct {
	Entities []entities.Entity   // 模型空间（ENTITIES 段）
	Blocks   map[string]*Block   // 块定义，键为大写块名
	Layers   map[string]*LayerDef // 图层表（TABLES/LAYER）
	Diags    []Diagnostic        // 解析过程中的降级记录
}

// Open 打开并解析一份 DXF 文件
func Open(filename string) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return Load(file)
}

// Load 解析一份 DXF 文本。空白输入和二进制 DXF 在读标签之前拒绝，
// 其余内容尽力解析，永不半途中断。
func Load(reader io.Reader) (doc *Document, err error) {
	br := bufio.NewReader(reader)

	// 先吃掉空白前导再判定：空行本就不参与配对，
	// 任意长的空白开头不能把合法文件误判成空文件
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			return nil, ErrEmpty
		}
		if err != nil {
			return nil, err
		}
		if c != ' ' && c != '\t' && c != '\r' && c != '\n' {
			if err = br.UnreadByte(); err != nil {
				return nil, err
			}
			break
		}
	}

	head, err := br.Peek(len(BinarySentinel))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if strings.HasPrefix(string(head), BinarySentinel) {
		return nil, ErrBinary
	}

	var (
		scanner = core.NewScanner(br)
		decoder = NewDecoder()
	)

	for scanner.Next() {
		decoder.Feed(scanner.LastTag)
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}

	doc = decoder.Close()
	for _, line := range scanner.Skipped() {
		doc.Diags = append(doc.Diags, Diagnostic{
			Kind:    DiagBadTag,
			Message: "跳过无法配对的标签行: line " + strconv.Itoa(line),
		})
	}

	return doc, nil
}
