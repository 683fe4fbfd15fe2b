package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/zooyer/golib/xos"

	"github.com/zooyer/dxf3d"
	"github.com/zooyer/dxf3d/render"
	"github.com/zooyer/dxf3d/scene"
	"github.com/zooyer/dxf3d/utils"
)

// 多文件加载时按顺序循环取色
var palette = []color.RGBA{
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, // white
	{R: 0x4f, G: 0xc3, B: 0xf7, A: 0xff}, // light blue
	{R: 0xff, G: 0xb7, B: 0x4d, A: 0xff}, // orange
	{R: 0x81, G: 0xc7, B: 0x84, A: 0xff}, // green
	{R: 0xe5, G: 0x73, B: 0x73, A: 0xff}, // red
	{R: 0xba, G: 0x68, B: 0xc8, A: 0xff}, // purple
}

func renderBool(b bool) string {
	if b {
		return "✅"
	}

	return "❌"
}

func init() {
	if len(os.Args) >= 2 {
		return
	}

	// 没有拖入文件就弹文件选择框
	files, err := zenity.SelectFileMultiple(
		zenity.Title("选择 DXF 图纸"),
		zenity.FileFilters{
			{Name: "DXF 图纸", Patterns: []string{"*.dxf"}, CaseFold: true},
		},
	)
	if err != nil || len(files) == 0 {
		fmt.Println("请把 DXF 文件拖入该程序上执行！")
		xos.PauseExit()
		os.Exit(1)
	}

	os.Args = append(os.Args, files...)
}

func main() {
	defer xos.PauseExit()

	const header = "文件,图层,实体数,默认可见\n"
	var report = strings.TrimSuffix(os.Args[1], filepath.Ext(os.Args[1])) + "_图层清单.csv"
	_ = os.WriteFile(report, []byte(header), 0644)
	fmt.Println("写入文件:", report)
	fmt.Println()

	var failed int

	// 一份文件解析失败不影响批次里的其他文件
	for i, filename := range os.Args[1:] {
		fmt.Printf("[%02d] %s\n", i+1, filepath.Base(filename))

		doc, err := dxf3d.Open(filename)
		if err != nil {
			failed++
			switch {
			case errors.Is(err, dxf3d.ErrBinary):
				fmt.Println("     解析失败: 二进制 DXF 不支持，请用 CAD 另存为 ASCII 格式")
			case errors.Is(err, dxf3d.ErrEmpty):
				fmt.Println("     解析失败: 文件内容为空")
			default:
				fmt.Println("     解析失败:", err)
			}
			continue
		}

		result := scene.Build(doc, &scene.Options{
			Name:  filepath.Base(filename),
			Color: palette[i%len(palette)],
		})

		box := utils.DocumentBBox(doc)
		fmt.Printf("     实体: %d | 块定义: %d | 图层: %d | 降级: %d\n",
			result.EntityCount, len(doc.Blocks), len(result.Layers), len(result.Diags),
		)
		if !box.IsEmpty() {
			fmt.Printf("     范围: RECTANG %.2f,%.2f %.2f,%.2f\n",
				box.Min.X, box.Min.Y, box.Max.X, box.Max.Y,
			)
		}

		for _, layer := range result.Layers {
			fmt.Printf("     [图层] %-16s | 实体 %4d | 可见 %s\n",
				layer.Name, layer.Entities, renderBool(layer.Visible),
			)

			line := fmt.Sprintf("%s,%s,%d,%s\n",
				filepath.Base(filename), layer.Name, layer.Entities, renderBool(layer.Visible),
			)
			if err = xos.AppendFile(report, []byte(line), 0644); err != nil {
				panic(err)
			}
		}

		// 区分"无可显示对象"和解析失败
		if result.Empty() {
			fmt.Println("     无可显示对象（文件可解析，但没有产出任何几何）")
			fmt.Println()
			continue
		}

		// 顺手出一张俯视图
		preview := strings.TrimSuffix(filename, filepath.Ext(filename)) + ".png"
		if err = render.SaveTopView(result.Root, 1024, 1024, preview); err != nil {
			fmt.Println("     俯视图渲染失败:", err)
		} else {
			fmt.Println("     俯视图:", filepath.Base(preview))
		}
		fmt.Println()
	}

	fmt.Printf("完成: %d 个文件, %d 个失败\n", len(os.Args)-1, failed)
}
