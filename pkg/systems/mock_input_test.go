package systems

import (
	"image"

	"github.com/decker502/texthover/pkg/components"
	"github.com/decker502/texthover/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// mockInput 可控的输入源，同时实现 PointerInput / MouseButtonInput / KeyboardInput
type mockInput struct {
	x, y     int
	focused  bool
	pressed  bool
	buttons  []ebiten.MouseButton
	chars    []rune
	repeat   map[ebiten.Key]bool
	justDown map[ebiten.Key]bool
}

func newMockInput() *mockInput {
	return &mockInput{
		focused:  true,
		repeat:   make(map[ebiten.Key]bool),
		justDown: make(map[ebiten.Key]bool),
	}
}

func (m *mockInput) CursorPosition() (int, int) { return m.x, m.y }
func (m *mockInput) IsFocused() bool            { return m.focused }
func (m *mockInput) IsPointerPressed() bool     { return m.pressed }

func (m *mockInput) AppendJustPressedMouseButtons(buttons []ebiten.MouseButton) []ebiten.MouseButton {
	return append(buttons, m.buttons...)
}

func (m *mockInput) AppendInputChars(runes []rune) []rune {
	return append(runes, m.chars...)
}

func (m *mockInput) IsKeyRepeating(key ebiten.Key) bool   { return m.repeat[key] }
func (m *mockInput) IsKeyJustPressed(key ebiten.Key) bool { return m.justDown[key] }

// reset 清除单帧输入（按键、字符），保留指针位置
func (m *mockInput) reset() {
	m.buttons = nil
	m.chars = nil
	m.repeat = make(map[ebiten.Key]bool)
	m.justDown = make(map[ebiten.Key]bool)
}

// mockCursorDriver 记录平台光标调用
type mockCursorDriver struct {
	shapes []ebiten.CursorShapeType
	modes  []ebiten.CursorModeType
}

func (d *mockCursorDriver) SetCursorShape(shape ebiten.CursorShapeType) {
	d.shapes = append(d.shapes, shape)
}

func (d *mockCursorDriver) SetCursorMode(mode ebiten.CursorModeType) {
	d.modes = append(d.modes, mode)
}

// 测试用场景：200x200 窗口，镜头视口与窗口重合，镜头中心在世界原点
// 因此 窗口坐标 (100+dx, 100+dy) 对应 世界坐标 (dx, dy)
const (
	testWindowSize = 200
	testOrigin     = 100
)

func createTestWindow(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.WindowComponent{
		Width:         testWindowSize,
		Height:        testWindowSize,
		CursorVisible: true,
	})
	ecs.AddComponent(em, id, &components.PrimaryWindowComponent{})
	return id
}

func createTestCamera(em *ecs.EntityManager, primary bool) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.CameraComponent{
		Viewport: image.Rect(0, 0, testWindowSize, testWindowSize),
		Zoom:     1,
		IsActive: true,
	})
	ecs.AddComponent(em, id, &components.PositionComponent{})
	if primary {
		ecs.AddComponent(em, id, &components.PrimaryCameraComponent{})
	}
	return id
}

// createTestSpriteWidget 创建中心在 (cx, cy)、半宽高为 half 的精灵文本控件
func createTestSpriteWidget(em *ecs.EntityManager, cx, cy, half float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TextInputComponent{})
	ecs.AddComponent(em, id, &components.SpriteComponent{CustomWidth: half * 2, CustomHeight: half * 2})
	ecs.AddComponent(em, id, &components.PositionComponent{X: cx, Y: cy})
	return id
}

// pointAt 把窗口指针放到世界坐标 (wx, wy) 对应的位置
func pointAt(em *ecs.EntityManager, wx, wy float64) {
	_, window, _ := PrimaryWindow(em)
	window.CursorX = testOrigin + wx
	window.CursorY = testOrigin + wy
	window.HasCursor = true
}
