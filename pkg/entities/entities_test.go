package entities

import (
	"image"
	"testing"

	"github.com/decker502/texthover/pkg/components"
	"github.com/decker502/texthover/pkg/ecs"
)

// TestNewPrimaryWindowEntity 测试主窗口实体
func TestNewPrimaryWindowEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewPrimaryWindowEntity(em, 640, 480)

	window, ok := ecs.GetComponent[*components.WindowComponent](em, id)
	if !ok {
		t.Fatal("missing WindowComponent")
	}
	if window.Width != 640 || window.Height != 480 || !window.CursorVisible {
		t.Errorf("window = %+v, want 640x480 visible", window)
	}
	if !ecs.HasComponent[*components.PrimaryWindowComponent](em, id) {
		t.Error("missing PrimaryWindowComponent")
	}
	if ecs.HasComponent[*components.CursorIconComponent](em, id) {
		t.Error("new window should not carry a cursor icon")
	}
}

// TestNewCameraEntity 测试镜头实体
func TestNewCameraEntity(t *testing.T) {
	tests := []struct {
		name        string
		opts        CameraOptions
		wantZoom    float64
		wantPrimary bool
	}{
		{"默认缩放", CameraOptions{Viewport: image.Rect(0, 0, 100, 100)}, 1, false},
		{"主镜头", CameraOptions{Viewport: image.Rect(0, 0, 100, 100), Zoom: 2, Primary: true, CenterX: 5, CenterY: 6}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id := NewCameraEntity(em, tt.opts)

			cam, ok := ecs.GetComponent[*components.CameraComponent](em, id)
			if !ok {
				t.Fatal("missing CameraComponent")
			}
			if cam.Zoom != tt.wantZoom || !cam.IsActive {
				t.Errorf("camera = %+v, want zoom %.0f active", cam, tt.wantZoom)
			}
			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			if pos.X != tt.opts.CenterX || pos.Y != tt.opts.CenterY {
				t.Errorf("position = (%.0f, %.0f), want (%.0f, %.0f)", pos.X, pos.Y, tt.opts.CenterX, tt.opts.CenterY)
			}
			if got := ecs.HasComponent[*components.PrimaryCameraComponent](em, id); got != tt.wantPrimary {
				t.Errorf("primary = %v, want %v", got, tt.wantPrimary)
			}
		})
	}
}

// TestNewScreenCameraEntity 测试与窗口重合的镜头
func TestNewScreenCameraEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewScreenCameraEntity(em, 800, 600)

	cam, _ := ecs.GetComponent[*components.CameraComponent](em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if cam.Viewport != image.Rect(0, 0, 800, 600) {
		t.Errorf("viewport = %v, want full window", cam.Viewport)
	}
	if pos.X != 400 || pos.Y != 300 {
		t.Errorf("center = (%.0f, %.0f), want (400, 300)", pos.X, pos.Y)
	}
}

// TestNewSpriteTextWidget 测试精灵文本控件
func TestNewSpriteTextWidget(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewSpriteTextWidget(em, SpriteTextWidgetOptions{
		CenterX: 10,
		CenterY: 20,
		Width:   100,
		Height:  30,
		Text:    "abc",
	})

	input, ok := ecs.GetComponent[*components.TextInputComponent](em, id)
	if !ok {
		t.Fatal("missing TextInputComponent")
	}
	if input.Text != "abc" || input.CaretPosition != 3 || input.MaxLength != defaultMaxLength {
		t.Errorf("text input = %+v", input)
	}

	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if w, h := sprite.Size(); w != 100 || h != 30 {
		t.Errorf("size = %.0fx%.0f, want 100x30", w, h)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 10 || pos.Y != 20 {
		t.Errorf("position = (%.0f, %.0f), want (10, 20)", pos.X, pos.Y)
	}
}

// TestNewUITextWidget 测试 UI 文本控件由节点和文本实体两部分组成
func TestNewUITextWidget(t *testing.T) {
	em := ecs.NewEntityManager()
	nodeID, textID := NewUITextWidget(em, UITextWidgetOptions{X: 1, Y: 2, Width: 3, Height: 4, MaxLength: 8})

	if !ecs.HasComponent[*components.TextInputComponent](em, textID) {
		t.Error("text entity should carry TextInputComponent")
	}
	if ecs.HasComponent[*components.TextInputComponent](em, nodeID) {
		t.Error("node entity should not carry TextInputComponent")
	}

	source, ok := ecs.GetComponent[*components.TextSourceComponent](em, nodeID)
	if !ok || source.Target != textID {
		t.Errorf("TextSourceComponent = %+v, want target %d", source, textID)
	}
	interaction, _ := ecs.GetComponent[*components.InteractionComponent](em, nodeID)
	if interaction.State != components.UINormal || interaction.Changed {
		t.Errorf("interaction = %+v, want normal unchanged", interaction)
	}
	input, _ := ecs.GetComponent[*components.TextInputComponent](em, textID)
	if input.MaxLength != 8 {
		t.Errorf("MaxLength = %d, want 8", input.MaxLength)
	}
}
