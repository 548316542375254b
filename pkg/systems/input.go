package systems

import (
	"github.com/decker502/texthover/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerInput 窗口指针输入接口
// 用于依赖注入，支持测试时 mock
type PointerInput interface {
	CursorPosition() (int, int)
	IsFocused() bool
}

// MouseButtonInput 鼠标按键输入接口
type MouseButtonInput interface {
	// AppendJustPressedMouseButtons 追加本帧刚按下的鼠标按键
	AppendJustPressedMouseButtons(buttons []ebiten.MouseButton) []ebiten.MouseButton
	// IsPointerPressed 主按键（左键或触摸）是否处于按下状态
	IsPointerPressed() bool
}

// KeyboardInput 键盘输入接口
type KeyboardInput interface {
	AppendInputChars(runes []rune) []rune
	IsKeyRepeating(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
}

// EbitenInput Ebitengine 默认实现，同时满足上述三个接口
type EbitenInput struct{}

// NewEbitenInput 创建 Ebitengine 输入源
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

// CursorPosition 返回指针位置（触摸优先）
func (e *EbitenInput) CursorPosition() (int, int) {
	return utils.GetPointerPosition()
}

// IsFocused 窗口是否拥有输入焦点
func (e *EbitenInput) IsFocused() bool {
	return ebiten.IsFocused()
}

// AppendJustPressedMouseButtons 追加本帧刚按下的鼠标按键
func (e *EbitenInput) AppendJustPressedMouseButtons(buttons []ebiten.MouseButton) []ebiten.MouseButton {
	return utils.AppendJustPressedMouseButtons(buttons)
}

// IsPointerPressed 主按键是否按下
func (e *EbitenInput) IsPointerPressed() bool {
	return utils.IsPointerPressed()
}

// AppendInputChars 追加本帧输入的字符
func (e *EbitenInput) AppendInputChars(runes []rune) []rune {
	return utils.AppendInputChars(runes)
}

// IsKeyRepeating 按键本帧是否触发（支持按住连续触发）
func (e *EbitenInput) IsKeyRepeating(key ebiten.Key) bool {
	return utils.IsKeyRepeating(key)
}

// IsKeyJustPressed 按键是否本帧刚按下
func (e *EbitenInput) IsKeyJustPressed(key ebiten.Key) bool {
	return utils.IsKeyJustPressed(key)
}
