package dxf3d

import "fmt"

// DiagKind 诊断类别：宽容解析丢掉了什么
type DiagKind int

const (
	// DiagBadTag 词法层丢弃的标签对（组码行不是数字、末尾残缺）
	DiagBadTag DiagKind = iota
	// DiagDiscardedEntity 在不认识的段落里读到的实体，提交时没有去处
	DiagDiscardedEntity
	// DiagUnknownEntity 未注册的实体类型，保留记录但不会产生几何
	DiagUnknownEntity
	// DiagMissingBlock INSERT 引用了不存在的块定义
	DiagMissingBlock
	// DiagDepthExceeded 块嵌套超过深度上限，更深的几何被截断
	DiagDepthExceeded
	// DiagSkippedEntity 构建几何时因字段残缺被跳过的实体
	DiagSkippedEntity
)

func (k DiagKind) String() string {
	switch k {
	case DiagBadTag:
		return "bad-tag"
	case DiagDiscardedEntity:
		return "discarded-entity"
	case DiagUnknownEntity:
		return "unknown-entity"
	case DiagMissingBlock:
		return "missing-block"
	case DiagDepthExceeded:
		return "depth-exceeded"
	case DiagSkippedEntity:
		return "skipped-entity"
	}
	return "unknown"
}

// Diagnostic 一条降级记录。宽容解析是刻意的产品决策：
// 坏数据跳过而不报错，但跳过了什么要让调用方看得见、测得到。
type Diagnostic struct {
	Kind    DiagKind
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] %s", d.Kind, d.Message)
}
