package components

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// TestUIState_String tests the readable names used in logs.
func TestUIState_String(t *testing.T) {
	tests := []struct {
		state UIState
		want  string
	}{
		{UINormal, "normal"},
		{UIHovered, "hovered"},
		{UIClicked, "clicked"},
		{UIDisabled, "disabled"},
		{UIState(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestInteractionComponent_ZeroValue tests that a new node starts idle without a pending change.
func TestInteractionComponent_ZeroValue(t *testing.T) {
	var c InteractionComponent
	if c.State != UINormal || c.Changed {
		t.Errorf("zero value = %+v, want normal and unchanged", c)
	}
}

// TestSpriteComponent_Size 测试命中检测尺寸的决定顺序
func TestSpriteComponent_Size(t *testing.T) {
	img := ebiten.NewImage(30, 12)

	tests := []struct {
		name         string
		sprite       SpriteComponent
		wantW, wantH float64
	}{
		{"自定义尺寸优先", SpriteComponent{Image: img, CustomWidth: 100, CustomHeight: 40}, 100, 40},
		{"使用图像尺寸", SpriteComponent{Image: img}, 30, 12},
		{"自定义尺寸不完整时使用图像", SpriteComponent{Image: img, CustomWidth: 100}, 30, 12},
		{"没有图像退化为 1x1", SpriteComponent{}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.sprite.Size()
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Size() = (%.0f, %.0f), want (%.0f, %.0f)", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
