package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	// 检查触摸
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}

	// 返回鼠标位置
	return ebiten.CursorPosition()
}

// IsPointerPressed 检查是否有指针按下（鼠标左键或触摸）
func IsPointerPressed() bool {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// AppendJustPressedMouseButtons 追加本帧刚按下的所有鼠标按键
// 刚开始的触摸按鼠标左键处理
func AppendJustPressedMouseButtons(buttons []ebiten.MouseButton) []ebiten.MouseButton {
	for b := ebiten.MouseButton0; b <= ebiten.MouseButtonMax; b++ {
		if inpututil.IsMouseButtonJustPressed(b) {
			buttons = append(buttons, b)
		}
	}
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 &&
		!inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		buttons = append(buttons, ebiten.MouseButtonLeft)
	}
	return buttons
}

// AppendInputChars 追加本帧输入的字符
func AppendInputChars(runes []rune) []rune {
	return ebiten.AppendInputChars(runes)
}

// IsKeyRepeating 判断按键在本帧是否应当触发（首帧立即触发，按住 30 帧后每 3 帧触发一次）
func IsKeyRepeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= 30 && d%3 == 0)
}

// IsKeyJustPressed 判断按键是否在本帧刚按下
func IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
