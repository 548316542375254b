package entities

import (
	"github.com/decker502/texthover/pkg/components"
	"github.com/decker502/texthover/pkg/ecs"
)

// NewPrimaryWindowEntity 创建主窗口实体
// 初始状态：指针可见、未挂自定义光标图标
func NewPrimaryWindowEntity(em *ecs.EntityManager, width, height int) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.WindowComponent{
		Width:         width,
		Height:        height,
		CursorVisible: true,
	})
	ecs.AddComponent(em, id, &components.PrimaryWindowComponent{})
	return id
}
