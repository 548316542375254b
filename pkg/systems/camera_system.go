package systems

import (
	"math"

	"github.com/decker502/texthover/pkg/components"
	"github.com/decker502/texthover/pkg/ecs"
)

// SelectActiveCamera 镜头选择策略
//
// 单镜头模式：所有 IsActive 的镜头中必须恰好有一个。
// 多镜头模式：只考虑带 PrimaryCameraComponent 的激活镜头，同样必须恰好有一个。
// 候选为 0 个或多于 1 个时返回 false，由调用方跳过本帧的拾取。
func SelectActiveCamera(em *ecs.EntityManager, multiCamera bool) (ecs.EntityID, *components.CameraComponent, *components.PositionComponent, bool) {
	var ids []ecs.EntityID
	if multiCamera {
		ids = ecs.GetEntitiesWith3[*components.CameraComponent, *components.PositionComponent, *components.PrimaryCameraComponent](em)
	} else {
		ids = ecs.GetEntitiesWith2[*components.CameraComponent, *components.PositionComponent](em)
	}

	found := ecs.InvalidEntity
	var cam *components.CameraComponent
	var pos *components.PositionComponent
	for _, id := range ids {
		c, _ := ecs.GetComponent[*components.CameraComponent](em, id)
		if !c.IsActive {
			continue
		}
		if found != ecs.InvalidEntity {
			return ecs.InvalidEntity, nil, nil, false
		}
		found = id
		cam = c
		pos, _ = ecs.GetComponent[*components.PositionComponent](em, id)
	}

	if found == ecs.InvalidEntity {
		return ecs.InvalidEntity, nil, nil, false
	}
	return found, cam, pos, true
}

// CameraSystem 管理镜头平移动画。
// 负责将选中的镜头从当前位置匀速移动到目标位置。
type CameraSystem struct {
	entityManager *ecs.EntityManager
	multiCamera   bool
}

// NewCameraSystem 创建镜头控制系统。
func NewCameraSystem(em *ecs.EntityManager, multiCamera bool) *CameraSystem {
	return &CameraSystem{
		entityManager: em,
		multiCamera:   multiCamera,
	}
}

// Update 更新镜头系统，处理镜头移动动画。
func (cs *CameraSystem) Update(dt float64) {
	_, cam, pos, ok := SelectActiveCamera(cs.entityManager, cs.multiCamera)
	if !ok || !cam.IsAnimating {
		return
	}

	dx := cam.TargetX - pos.X
	dy := cam.TargetY - pos.Y
	distance := math.Hypot(dx, dy)

	step := cam.AnimationSpeed * dt
	// 本帧可到达目标（或速度非法）时直接落位
	if distance <= step || step <= 0 {
		pos.X = cam.TargetX
		pos.Y = cam.TargetY
		cam.IsAnimating = false
		return
	}

	pos.X += dx / distance * step
	pos.Y += dy / distance * step
}

// MoveTo 移动镜头到目标位置。
// 参数:
//   - targetX, targetY: 目标位置（世界坐标，视口中心）
//   - speed: 移动速度（世界单位/秒）
func (cs *CameraSystem) MoveTo(targetX, targetY, speed float64) {
	_, cam, _, ok := SelectActiveCamera(cs.entityManager, cs.multiCamera)
	if !ok {
		return
	}

	cam.TargetX = targetX
	cam.TargetY = targetY
	cam.AnimationSpeed = speed
	cam.IsAnimating = true
}

// MoveBy 以当前目标为基准平移镜头。
func (cs *CameraSystem) MoveBy(dx, dy, speed float64) {
	_, cam, pos, ok := SelectActiveCamera(cs.entityManager, cs.multiCamera)
	if !ok {
		return
	}

	baseX, baseY := pos.X, pos.Y
	if cam.IsAnimating {
		baseX, baseY = cam.TargetX, cam.TargetY
	}
	cs.MoveTo(baseX+dx, baseY+dy, speed)
}

// StopAnimation 停止镜头动画，立即设置到目标位置。
func (cs *CameraSystem) StopAnimation() {
	_, cam, pos, ok := SelectActiveCamera(cs.entityManager, cs.multiCamera)
	if !ok {
		return
	}

	cam.IsAnimating = false
	pos.X = cam.TargetX
	pos.Y = cam.TargetY
}

// IsAnimating 返回镜头是否正在动画中。
func (cs *CameraSystem) IsAnimating() bool {
	_, cam, _, ok := SelectActiveCamera(cs.entityManager, cs.multiCamera)
	if !ok {
		return false
	}
	return cam.IsAnimating
}
