package systems

import (
	"github.com/decker502/texthover/pkg/components"
	"github.com/decker502/texthover/pkg/ecs"
	"github.com/decker502/texthover/pkg/events"
	"github.com/hajimehoshi/ebiten/v2"
)

// CursorSystem 根据悬停事件和输入活动决定主窗口的光标图标与可见性
//
// 规则（按顺序执行，后面的规则可以覆盖前面的结果）：
//  1. 没有主窗口：不做任何修改
//  2. 本 tick 有 TextHoverIn（只看最近一个）且窗口未挂 CursorIconComponent：挂上
//  3. 否则若有任意 TextHoverOut：移除 CursorIconComponent
//  4. 有任意 TextChanged：隐藏指针
//  5. 有鼠标按键刚按下或有 MouseMotion：显示指针（覆盖规则 4）
//
// 事件在检查窗口之前读取，保证窗口暂时缺失时旧事件不会延迟生效。
type CursorSystem struct {
	entityManager *ecs.EntityManager
	mouseInput    MouseButtonInput
	hoverShape    ebiten.CursorShapeType

	hoverIn     *events.Reader[events.TextHoverIn]
	hoverOut    *events.Reader[events.TextHoverOut]
	textChanged *events.Reader[events.TextChanged]
	mouseMotion *events.Reader[events.MouseMotion]

	pressed []ebiten.MouseButton // 复用的缓冲区
}

// NewCursorSystem 创建光标状态系统
//
// hoverShape 是挂载 CursorIconComponent 时使用的图标，调用方负责传入确定的值
// （默认配置为 ebiten.CursorShapeText）
func NewCursorSystem(em *ecs.EntityManager, bus *events.Bus, input MouseButtonInput, hoverShape ebiten.CursorShapeType) *CursorSystem {
	return &CursorSystem{
		entityManager: em,
		mouseInput:    input,
		hoverShape:    hoverShape,
		hoverIn:       bus.HoverIn.Reader(),
		hoverOut:      bus.HoverOut.Reader(),
		textChanged:   bus.TextChanged.Reader(),
		mouseMotion:   bus.MouseMotion.Reader(),
	}
}

// SetHoverShape 修改悬停图标（对之后挂载的标记生效）
func (s *CursorSystem) SetHoverShape(shape ebiten.CursorShapeType) {
	s.hoverShape = shape
}

// HoverShape 返回当前悬停图标
func (s *CursorSystem) HoverShape() ebiten.CursorShapeType {
	return s.hoverShape
}

// Update 调和光标状态
func (s *CursorSystem) Update(deltaTime float64) {
	_, hoverIn := s.hoverIn.Last()
	hoverOut := s.hoverOut.Any()
	textChanged := s.textChanged.Any()
	moved := s.mouseMotion.Any()
	s.pressed = s.mouseInput.AppendJustPressedMouseButtons(s.pressed[:0])

	windowID, window, ok := PrimaryWindow(s.entityManager)
	if !ok {
		return
	}

	if hoverIn {
		if !ecs.HasComponent[*components.CursorIconComponent](s.entityManager, windowID) {
			ecs.AddComponent(s.entityManager, windowID, &components.CursorIconComponent{Shape: s.hoverShape})
		}
	} else if hoverOut {
		ecs.RemoveComponent[*components.CursorIconComponent](s.entityManager, windowID)
	}

	if textChanged {
		window.CursorVisible = false
	}

	if len(s.pressed) > 0 || moved {
		window.CursorVisible = true
	}
}
