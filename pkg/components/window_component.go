package components

import "github.com/hajimehoshi/ebiten/v2"

// WindowComponent 显示表面（窗口）状态
//
// 指针位置由 WindowSystem 每帧写入；CursorVisible 只由 CursorSystem 修改，
// 再由 CursorApplySystem 同步到平台层
type WindowComponent struct {
	Width, Height int // 逻辑屏幕尺寸（像素）

	// 指针位置（窗口坐标）。HasCursor 为 false 表示指针不在窗口内
	CursorX, CursorY float64
	HasCursor        bool

	// CursorVisible 系统指针是否可见
	CursorVisible bool
}

// PrimaryWindowComponent 标记主窗口
type PrimaryWindowComponent struct{}

// CursorIconComponent 自定义光标图标标记
// 挂在主窗口实体上时表示指针悬停在文本控件上，应显示 Shape
type CursorIconComponent struct {
	Shape ebiten.CursorShapeType
}
