package core

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"
)

// Scanner 将 DXF 文本切分为 (组码, 值) 标签对。
// 行尾兼容 \n、\r\n、\r 三种写法；空行直接跳过，不影响配对。
// 组码行不是整数时，整对丢弃（容错手工编辑过的图纸），记录行号后继续。
type Scanner struct {
	scanner *bufio.Scanner
	LastTag Tag
	line    int
	skipped []int
}

func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Split(splitLines)
	s.Buffer(make([]byte, 0, 4096), 1<<20)
	return &Scanner{scanner: s}
}

// splitLines 兼容三种行尾的 bufio.SplitFunc
func splitLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// \r 结尾：可能是 \r\n，需要多看一个字节
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil // 再读一点
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// nextLine 返回下一个非空行（两端裁剪空白），ok=false 表示流结束
func (s *Scanner) nextLine() (line string, ok bool) {
	for s.scanner.Scan() {
		s.line++
		if line = strings.TrimSpace(s.scanner.Text()); line != "" {
			return line, true
		}
	}
	return "", false
}

// Next 读取下一组标签对，成功后结果在 LastTag 中
func (s *Scanner) Next() bool {
	for {
		code, ok := s.nextLine()
		if !ok {
			return false
		}
		codeLine := s.line

		value, ok := s.nextLine()
		if !ok {
			// 末尾残缺的组码行，丢弃
			s.skipped = append(s.skipped, codeLine)
			return false
		}

		n, err := strconv.Atoi(code)
		if err != nil {
			// 整对丢弃，继续向后
			s.skipped = append(s.skipped, codeLine)
			continue
		}

		s.LastTag = Tag{Code: n, Value: value}
		return true
	}
}

// Line 返回当前读到的行号（从 1 开始）
func (s *Scanner) Line() int {
	return s.line
}

// Skipped 返回被丢弃的标签对所在的组码行号
func (s *Scanner) Skipped() []int {
	return s.skipped
}

func (s *Scanner) Err() error {
	return s.scanner.Err()
}
