package systems

import (
	"github.com/decker502/texthover/pkg/components"
	"github.com/decker502/texthover/pkg/ecs"
	"github.com/decker502/texthover/pkg/events"
)

// UIHoverSystem 把 UI 文本控件的交互状态变化转换为悬停事件
//
//   - UINormal  → TextHoverOut（无条件）
//   - UIHovered → TextHoverIn（仅当 TextSourceComponent 指向的实体确实是文本控件）
//   - 其他状态   → 不发送
//
// 纯响应式，不跨 tick 保存状态；同一 tick 内多个节点变化会各自发送事件。
type UIHoverSystem struct {
	entityManager *ecs.EntityManager
	bus           *events.Bus
}

// NewUIHoverSystem 创建 UI 悬停转发系统
func NewUIHoverSystem(em *ecs.EntityManager, bus *events.Bus) *UIHoverSystem {
	return &UIHoverSystem{
		entityManager: em,
		bus:           bus,
	}
}

// Update 处理本 tick 变化过的交互状态
func (s *UIHoverSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.InteractionComponent, *components.TextSourceComponent](s.entityManager)

	for _, entityID := range entities {
		interaction, _ := ecs.GetComponent[*components.InteractionComponent](s.entityManager, entityID)
		if !interaction.Changed {
			continue
		}

		switch interaction.State {
		case components.UINormal:
			s.bus.HoverOut.Send(events.TextHoverOut{})
		case components.UIHovered:
			source, _ := ecs.GetComponent[*components.TextSourceComponent](s.entityManager, entityID)
			if ecs.HasComponent[*components.TextInputComponent](s.entityManager, source.Target) {
				s.bus.HoverIn.Send(events.TextHoverIn{})
			}
		}
	}
}
