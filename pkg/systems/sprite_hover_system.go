package systems

import (
	"log"

	"github.com/decker502/texthover/pkg/components"
	"github.com/decker502/texthover/pkg/ecs"
	"github.com/decker502/texthover/pkg/events"
	"github.com/decker502/texthover/pkg/utils"
)

// SpriteHoverSystem 精灵文本控件悬停检测系统
//
// 每个 tick 把主窗口的指针位置经激活镜头投影到世界坐标，
// 与所有可见精灵文本控件的包围盒做严格命中检测（边界不算命中）。
// 悬停状态与上一 tick 不同时发送一次 TextHoverIn / TextHoverOut。
//
// 主窗口或镜头缺失时本 tick 不做检测，也不修改 lastHovered，
// 因此前置条件短暂缺失不会产生多余的离开事件。
type SpriteHoverSystem struct {
	entityManager *ecs.EntityManager
	bus           *events.Bus
	multiCamera   bool

	hovered       bool
	lastHovered   bool
	hoveredEntity ecs.EntityID

	cameraMissing bool // 仅用于日志去重
}

// NewSpriteHoverSystem 创建精灵悬停检测系统
func NewSpriteHoverSystem(em *ecs.EntityManager, bus *events.Bus, multiCamera bool) *SpriteHoverSystem {
	return &SpriteHoverSystem{
		entityManager: em,
		bus:           bus,
		multiCamera:   multiCamera,
	}
}

// Update 执行命中检测并在状态切换时发送事件
func (s *SpriteHoverSystem) Update(deltaTime float64) {
	s.hovered = false
	s.hoveredEntity = ecs.InvalidEntity

	_, window, ok := PrimaryWindow(s.entityManager)
	if !ok {
		return
	}

	_, cam, camPos, ok := SelectActiveCamera(s.entityManager, s.multiCamera)
	if !ok {
		if !s.cameraMissing {
			log.Printf("[SpriteHoverSystem] No single active camera, skipping hover detection")
			s.cameraMissing = true
		}
		return
	}
	s.cameraMissing = false

	// 投影失败（指针不在窗口/视口内、镜头退化）时所有控件都视为未命中
	var worldX, worldY float64
	projected := false
	if window.HasCursor {
		var err error
		worldX, worldY, err = utils.ViewportToWorld(cam, camPos, window.CursorX, window.CursorY)
		projected = err == nil
	}

	entities := ecs.GetEntitiesWith3[
		*components.TextInputComponent,
		*components.SpriteComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, entityID := range entities {
		if isHidden(s.entityManager, entityID) {
			continue
		}
		if !projected {
			continue
		}

		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		width, height := sprite.Size()
		if utils.IsStrictlyInsideCentered(worldX, worldY, pos.X, pos.Y, width/2, height/2) {
			s.hovered = true
			// ID 越大越晚创建，视为绘制在上层
			s.hoveredEntity = entityID
		}
	}

	if s.lastHovered != s.hovered {
		if s.hovered {
			s.bus.HoverIn.Send(events.TextHoverIn{})
		} else {
			s.bus.HoverOut.Send(events.TextHoverOut{})
		}
	}

	s.lastHovered = s.hovered
}

// Hovered 本 tick 指针是否悬停在任一精灵文本控件上
func (s *SpriteHoverSystem) Hovered() bool {
	return s.hovered
}

// HoveredEntity 本 tick 命中的最上层精灵文本控件
func (s *SpriteHoverSystem) HoveredEntity() (ecs.EntityID, bool) {
	return s.hoveredEntity, s.hoveredEntity != ecs.InvalidEntity
}
