// Package main 文本控件光标演示程序
//
// 用法:
//
//	go run . [-verbose] [-config data/cursor.yaml] [-hover-icon pointer]
//
// 快捷键:
//   - F2: 打开/关闭光标插件（关闭后光标完全由外部控制，设置会持久化）
//   - Ctrl+方向键: 平移镜头
//   - 点击文本控件后可以输入文字
package main

import (
	"flag"
	"log"

	"github.com/decker502/texthover/pkg/app"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "data/cursor.yaml", "光标配置文件路径")
	hoverIcon  = flag.String("hover-icon", "", "悬停文本控件时的光标形状（保存到用户设置），如 text/pointer/crosshair")
)

func main() {
	flag.Parse()

	a, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		HoverIcon:  *hoverIcon,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	width, height := a.Layout(0, 0)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Text Hover Cursor Demo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
