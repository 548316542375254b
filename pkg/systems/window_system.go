package systems

import (
	"github.com/decker502/texthover/pkg/components"
	"github.com/decker502/texthover/pkg/ecs"
	"github.com/decker502/texthover/pkg/events"
)

// PrimaryWindow 查询主窗口
// 存在多个主窗口时取 ID 最小的一个
func PrimaryWindow(em *ecs.EntityManager) (ecs.EntityID, *components.WindowComponent, bool) {
	ids := ecs.GetEntitiesWith2[*components.WindowComponent, *components.PrimaryWindowComponent](em)
	if len(ids) == 0 {
		return ecs.InvalidEntity, nil, false
	}
	window, ok := ecs.GetComponent[*components.WindowComponent](em, ids[0])
	if !ok {
		return ecs.InvalidEntity, nil, false
	}
	return ids[0], window, true
}

// WindowSystem 窗口指针系统
//
// 职责：
//   - 把平台指针位置写入主窗口的 WindowComponent（指针在窗口外或窗口失焦时 HasCursor=false）
//   - 指针位置相对上一帧变化时发送 MouseMotion 事件
type WindowSystem struct {
	entityManager *ecs.EntityManager
	bus           *events.Bus
	input         PointerInput

	lastX, lastY float64
	hasLast      bool
}

// NewWindowSystem 创建窗口指针系统
func NewWindowSystem(em *ecs.EntityManager, bus *events.Bus, input PointerInput) *WindowSystem {
	return &WindowSystem{
		entityManager: em,
		bus:           bus,
		input:         input,
	}
}

// Update 同步指针状态
func (s *WindowSystem) Update(deltaTime float64) {
	ix, iy := s.input.CursorPosition()
	x, y := float64(ix), float64(iy)

	if s.hasLast && (x != s.lastX || y != s.lastY) {
		s.bus.MouseMotion.Send(events.MouseMotion{DX: x - s.lastX, DY: y - s.lastY})
	}
	s.lastX, s.lastY = x, y
	s.hasLast = true

	_, window, ok := PrimaryWindow(s.entityManager)
	if !ok {
		return
	}

	window.CursorX, window.CursorY = x, y
	window.HasCursor = s.input.IsFocused() &&
		x >= 0 && y >= 0 &&
		x < float64(window.Width) && y < float64(window.Height)
}
