package scene

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor 解析显示颜色：支持 colornames 里的命名色（"red"）和
// "#RGB"/"#RRGGBB" 十六进制。认不出时返回 ok=false，调用方自选兜底。
func ParseColor(s string) (c color.RGBA, ok bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return color.RGBA{}, false
	}

	if c, ok = colornames.Map[s]; ok {
		return c, true
	}

	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, false
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}

// aciPalette AutoCAD Color Index 常用色段。1-9 是标准色，
// 250-255 是灰阶；中间的色轮段用不到就不铺全表。
var aciPalette = map[int]color.RGBA{
	1: {R: 0xff, A: 0xff},                   // red
	2: {R: 0xff, G: 0xff, A: 0xff},          // yellow
	3: {G: 0xff, A: 0xff},                   // green
	4: {G: 0xff, B: 0xff, A: 0xff},          // cyan
	5: {B: 0xff, A: 0xff},                   // blue
	6: {R: 0xff, B: 0xff, A: 0xff},          // magenta
	7: {R: 0xff, G: 0xff, B: 0xff, A: 0xff}, // white/black
	8: {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	9: {R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff},

	250: {R: 0x33, G: 0x33, B: 0x33, A: 0xff},
	251: {R: 0x5b, G: 0x5b, B: 0x5b, A: 0xff},
	252: {R: 0x84, G: 0x84, B: 0x84, A: 0xff},
	253: {R: 0xad, G: 0xad, B: 0xad, A: 0xff},
	254: {R: 0xd6, G: 0xd6, B: 0xd6, A: 0xff},
	255: {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// ACIColor 把 AutoCAD 颜色号映射为 RGBA，表外的颜色号返回 ok=false
func ACIColor(index int) (c color.RGBA, ok bool) {
	c, ok = aciPalette[index]
	return
}
