package systems

import (
	"github.com/decker502/texthover/pkg/components"
	"github.com/decker502/texthover/pkg/ecs"
	"github.com/decker502/texthover/pkg/utils"
)

// UIInteractionSystem UI 交互系统
// 负责根据指针位置和按键状态计算每个 UI 节点的交互状态
//
// 职责：
//   - 指针在节点内 → UIHovered，按下时 → UIClicked，离开 → UINormal
//   - Enabled 为 false 的节点固定为 UIDisabled
//   - 状态发生变化时设置 InteractionComponent.Changed（tick 结束时由 ClearInteractionChanges 清除）
//
// 注意：光标形状不在此处设置，由 CursorSystem 统一管理
type UIInteractionSystem struct {
	entityManager *ecs.EntityManager
	mouseInput    MouseButtonInput
}

// NewUIInteractionSystem 创建 UI 交互系统
func NewUIInteractionSystem(em *ecs.EntityManager, input MouseButtonInput) *UIInteractionSystem {
	return &UIInteractionSystem{
		entityManager: em,
		mouseInput:    input,
	}
}

// Update 更新所有 UI 节点的交互状态
func (s *UIInteractionSystem) Update(deltaTime float64) {
	var mouseX, mouseY float64
	hasCursor := false
	if _, window, ok := PrimaryWindow(s.entityManager); ok && window.HasCursor {
		mouseX, mouseY = window.CursorX, window.CursorY
		hasCursor = true
	}
	pressed := s.mouseInput.IsPointerPressed()

	entities := ecs.GetEntitiesWith2[*components.UINodeComponent, *components.InteractionComponent](s.entityManager)
	for _, entityID := range entities {
		node, _ := ecs.GetComponent[*components.UINodeComponent](s.entityManager, entityID)
		interaction, _ := ecs.GetComponent[*components.InteractionComponent](s.entityManager, entityID)

		newState := components.UINormal
		switch {
		case !node.Enabled:
			newState = components.UIDisabled
		case hasCursor && !isHidden(s.entityManager, entityID) &&
			utils.IsInsideRect(mouseX, mouseY, node.X, node.Y, node.Width, node.Height):
			if pressed {
				newState = components.UIClicked
			} else {
				newState = components.UIHovered
			}
		}

		if interaction.State != newState {
			interaction.State = newState
			interaction.Changed = true
		}
	}
}

// ClearInteractionChanges 清除本 tick 的交互变化标记（在 tick 末尾调用）
func ClearInteractionChanges(em *ecs.EntityManager) {
	for _, entityID := range ecs.GetEntitiesWith1[*components.InteractionComponent](em) {
		interaction, _ := ecs.GetComponent[*components.InteractionComponent](em, entityID)
		interaction.Changed = false
	}
}

// isHidden 实体是否被显式隐藏
func isHidden(em *ecs.EntityManager, entityID ecs.EntityID) bool {
	visibility, ok := ecs.GetComponent[*components.VisibilityComponent](em, entityID)
	return ok && visibility.Visibility == components.VisibilityHidden
}
