package events

import "github.com/decker502/texthover/pkg/ecs"

// TextHoverIn 鼠标指针进入文本控件时发出
// 可用于自定义光标控制
type TextHoverIn struct{}

// TextHoverOut 鼠标指针离开文本控件时发出
// 可用于自定义光标控制
type TextHoverOut struct{}

// TextChanged 文本控件内容发生变化时发出
type TextChanged struct {
	Entity ecs.EntityID // 内容变化的文本控件
	Text   string       // 变化后的完整文本
}

// MouseMotion 鼠标指针在本 tick 内发生移动
type MouseMotion struct {
	DX, DY float64 // 相对上一 tick 的位移（窗口坐标）
}
