package cursor

import (
	"image"
	"reflect"
	"testing"

	"github.com/decker502/texthover/pkg/components"
	"github.com/decker502/texthover/pkg/config"
	"github.com/decker502/texthover/pkg/ecs"
	"github.com/decker502/texthover/pkg/events"
	"github.com/decker502/texthover/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type mockMouse struct {
	buttons []ebiten.MouseButton
}

func (m *mockMouse) AppendJustPressedMouseButtons(buttons []ebiten.MouseButton) []ebiten.MouseButton {
	return append(buttons, m.buttons...)
}

func (m *mockMouse) IsPointerPressed() bool { return false }

type mockDriver struct {
	shapes []ebiten.CursorShapeType
	modes  []ebiten.CursorModeType
}

func (d *mockDriver) SetCursorShape(shape ebiten.CursorShapeType) { d.shapes = append(d.shapes, shape) }
func (d *mockDriver) SetCursorMode(mode ebiten.CursorModeType)    { d.modes = append(d.modes, mode) }

// testWorld 100x100 窗口，镜头中心在世界原点，一个中心在原点、20x20 的精灵文本控件
type testWorld struct {
	em       *ecs.EntityManager
	bus      *events.Bus
	schedule *systems.Schedule
	plugin   *Plugin
	driver   *mockDriver
	windowID ecs.EntityID
	window   *components.WindowComponent
}

func newTestWorld(t *testing.T, cfg *config.CursorConfig) *testWorld {
	t.Helper()
	em := ecs.NewEntityManager()
	bus := events.NewBus()

	windowID := em.CreateEntity()
	window := &components.WindowComponent{Width: 100, Height: 100, CursorVisible: true}
	ecs.AddComponent(em, windowID, window)
	ecs.AddComponent(em, windowID, &components.PrimaryWindowComponent{})

	cameraID := em.CreateEntity()
	ecs.AddComponent(em, cameraID, &components.CameraComponent{Viewport: image.Rect(0, 0, 100, 100), Zoom: 1, IsActive: true})
	ecs.AddComponent(em, cameraID, &components.PositionComponent{})

	widget := em.CreateEntity()
	ecs.AddComponent(em, widget, &components.TextInputComponent{})
	ecs.AddComponent(em, widget, &components.SpriteComponent{CustomWidth: 20, CustomHeight: 20})
	ecs.AddComponent(em, widget, &components.PositionComponent{})

	schedule := systems.NewSchedule()
	schedule.AddStage("input")
	schedule.AddStage("platform")
	schedule.AddStage("cleanup", systems.SystemFunc(func(float64) { bus.Update() }))

	driver := &mockDriver{}
	plugin := NewPlugin(em, bus, cfg, &mockMouse{}, driver)
	if err := plugin.Build(schedule, "platform"); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	return &testWorld{
		em:       em,
		bus:      bus,
		schedule: schedule,
		plugin:   plugin,
		driver:   driver,
		windowID: windowID,
		window:   window,
	}
}

// pointAt 把指针放到世界坐标 (wx, wy)
func (w *testWorld) pointAt(wx, wy float64) {
	w.window.CursorX = 50 + wx
	w.window.CursorY = 50 + wy
	w.window.HasCursor = true
}

func (w *testWorld) hasIcon() bool {
	return ecs.HasComponent[*components.CursorIconComponent](w.em, w.windowID)
}

// TestPlugin_Build 测试阶段插入顺序
func TestPlugin_Build(t *testing.T) {
	w := newTestWorld(t, config.DefaultCursorConfig())

	want := []string{"input", StageHover, StageChange, StageApply, "platform", "cleanup"}
	if got := w.schedule.StageNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("StageNames() = %v, want %v", got, want)
	}
}

// TestPlugin_BuildUnknownStage 测试插入到不存在的阶段时返回错误
func TestPlugin_BuildUnknownStage(t *testing.T) {
	em := ecs.NewEntityManager()
	bus := events.NewBus()
	plugin := NewPlugin(em, bus, config.DefaultCursorConfig(), &mockMouse{}, &mockDriver{})

	if err := plugin.Build(systems.NewSchedule(), "platform"); err == nil {
		t.Error("expected error for missing stage")
	}
}

// TestPlugin_HoverSameTick 测试同一 tick 内悬停检测的事件被光标系统处理
func TestPlugin_HoverSameTick(t *testing.T) {
	w := newTestWorld(t, config.DefaultCursorConfig())

	w.pointAt(5, 5)
	w.schedule.Run(1.0 / 60)
	if !w.hasIcon() {
		t.Fatal("expected icon attached in the same tick as hover")
	}
	icon, _ := ecs.GetComponent[*components.CursorIconComponent](w.em, w.windowID)
	if icon.Shape != ebiten.CursorShapeText {
		t.Errorf("icon shape = %v, want text", icon.Shape)
	}
	if n := len(w.driver.shapes); n == 0 || w.driver.shapes[n-1] != ebiten.CursorShapeText {
		t.Errorf("driver shapes = %v, want last text", w.driver.shapes)
	}

	// 停留不改变
	w.schedule.Run(1.0 / 60)
	if !w.hasIcon() {
		t.Fatal("icon should stay attached")
	}

	w.pointAt(20, 20)
	w.schedule.Run(1.0 / 60)
	if w.hasIcon() {
		t.Fatal("expected icon removed after leaving")
	}
	if n := len(w.driver.shapes); w.driver.shapes[n-1] != ebiten.CursorShapeDefault {
		t.Errorf("driver shapes = %v, want last default", w.driver.shapes)
	}
}

// TestPlugin_Disabled 测试关闭插件后三个系统都不运行
func TestPlugin_Disabled(t *testing.T) {
	cfg := config.DefaultCursorConfig()
	cfg.Disabled = true
	w := newTestWorld(t, cfg)

	if w.plugin.Enabled() {
		t.Fatal("plugin should start disabled")
	}

	w.pointAt(0, 0)
	w.bus.TextChanged.Send(events.TextChanged{})
	w.schedule.Run(1.0 / 60)

	if w.hasIcon() {
		t.Error("disabled plugin attached icon")
	}
	if !w.window.CursorVisible {
		t.Error("disabled plugin changed visibility")
	}
	if len(w.driver.shapes) != 0 || len(w.driver.modes) != 0 {
		t.Errorf("disabled plugin touched platform cursor: shapes=%v modes=%v", w.driver.shapes, w.driver.modes)
	}
	if w.plugin.SpriteHover().Hovered() {
		t.Error("disabled plugin ran hover detection")
	}
}

// TestPlugin_SetDisabled 测试运行时打开/关闭
func TestPlugin_SetDisabled(t *testing.T) {
	w := newTestWorld(t, config.DefaultCursorConfig())

	w.schedule.Run(1.0 / 60)
	applied := len(w.driver.modes)

	w.plugin.SetDisabled(true)
	if !w.plugin.Context().Disabled {
		t.Fatal("Context().Disabled should be true")
	}
	w.pointAt(0, 0)
	w.schedule.Run(1.0 / 60)
	if w.hasIcon() {
		t.Fatal("icon attached while disabled")
	}

	// 重新打开后立即重新同步平台光标，并检测到当前悬停
	w.plugin.SetDisabled(false)
	w.schedule.Run(1.0 / 60)
	if !w.hasIcon() {
		t.Error("expected hover detected after re-enable")
	}
	if len(w.driver.modes) != applied+1 {
		t.Errorf("modes applied %d times, want %d", len(w.driver.modes), applied+1)
	}
}

// TestPlugin_SetHoverShape 测试修改悬停图标
func TestPlugin_SetHoverShape(t *testing.T) {
	cfg := config.DefaultCursorConfig()
	cfg.HoverIcon = "pointer"
	w := newTestWorld(t, cfg)

	w.pointAt(0, 0)
	w.schedule.Run(1.0 / 60)
	icon, _ := ecs.GetComponent[*components.CursorIconComponent](w.em, w.windowID)
	if icon == nil || icon.Shape != ebiten.CursorShapePointer {
		t.Fatalf("icon = %+v, want pointer", icon)
	}

	w.plugin.SetHoverShape(ebiten.CursorShapeCrosshair)
	w.pointAt(30, 30)
	w.schedule.Run(1.0 / 60)
	w.pointAt(0, 0)
	w.schedule.Run(1.0 / 60)

	icon, _ = ecs.GetComponent[*components.CursorIconComponent](w.em, w.windowID)
	if icon == nil || icon.Shape != ebiten.CursorShapeCrosshair {
		t.Errorf("icon = %+v, want crosshair", icon)
	}
}

// TestPlugin_ContentChangeAndMotion 测试文本变化隐藏指针、移动恢复
func TestPlugin_ContentChangeAndMotion(t *testing.T) {
	w := newTestWorld(t, config.DefaultCursorConfig())

	w.bus.TextChanged.Send(events.TextChanged{})
	w.schedule.Run(1.0 / 60)
	if w.window.CursorVisible {
		t.Fatal("expected hidden cursor after text change")
	}
	if n := len(w.driver.modes); w.driver.modes[n-1] != ebiten.CursorModeHidden {
		t.Errorf("driver modes = %v, want last hidden", w.driver.modes)
	}

	w.bus.MouseMotion.Send(events.MouseMotion{DX: 1})
	w.schedule.Run(1.0 / 60)
	if !w.window.CursorVisible {
		t.Error("expected visible cursor after motion")
	}
}
