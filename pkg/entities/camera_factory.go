package entities

import (
	"image"

	"github.com/decker502/texthover/pkg/components"
	"github.com/decker502/texthover/pkg/ecs"
)

// CameraOptions 镜头创建参数
type CameraOptions struct {
	Viewport image.Rectangle // 窗口坐标中的视口
	CenterX  float64         // 视口中心对应的世界坐标
	CenterY  float64
	Zoom     float64 // 0 视为 1
	Primary  bool    // 多镜头模式下的拾取镜头
}

// NewCameraEntity 创建激活的镜头实体
func NewCameraEntity(em *ecs.EntityManager, opts CameraOptions) ecs.EntityID {
	zoom := opts.Zoom
	if zoom == 0 {
		zoom = 1
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.CameraComponent{
		Viewport: opts.Viewport,
		Zoom:     zoom,
		IsActive: true,
		TargetX:  opts.CenterX,
		TargetY:  opts.CenterY,
	})
	ecs.AddComponent(em, id, &components.PositionComponent{
		X: opts.CenterX,
		Y: opts.CenterY,
	})
	if opts.Primary {
		ecs.AddComponent(em, id, &components.PrimaryCameraComponent{})
	}
	return id
}

// NewScreenCameraEntity 创建与窗口重合的镜头（世界坐标 == 窗口坐标）
func NewScreenCameraEntity(em *ecs.EntityManager, width, height int) ecs.EntityID {
	return NewCameraEntity(em, CameraOptions{
		Viewport: image.Rect(0, 0, width, height),
		CenterX:  float64(width) / 2,
		CenterY:  float64(height) / 2,
		Zoom:     1,
	})
}
