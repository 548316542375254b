package systems

import (
	"log"

	"github.com/decker502/texthover/pkg/components"
	"github.com/decker502/texthover/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// CursorDriver 平台光标控制接口
// 用于依赖注入，支持测试时 mock
type CursorDriver interface {
	SetCursorShape(shape ebiten.CursorShapeType)
	SetCursorMode(mode ebiten.CursorModeType)
}

// EbitenCursorDriver Ebitengine 默认实现
type EbitenCursorDriver struct{}

// SetCursorShape 设置系统光标形状
func (EbitenCursorDriver) SetCursorShape(shape ebiten.CursorShapeType) {
	ebiten.SetCursorShape(shape)
}

// SetCursorMode 设置系统光标模式
func (EbitenCursorDriver) SetCursorMode(mode ebiten.CursorModeType) {
	ebiten.SetCursorMode(mode)
}

// CursorApplySystem 把主窗口上的光标状态同步到平台
//
// 只在形状或模式与上次应用的值不同时调用 driver，避免每帧重复设置
type CursorApplySystem struct {
	entityManager *ecs.EntityManager
	driver        CursorDriver

	applied   bool
	lastShape ebiten.CursorShapeType
	lastMode  ebiten.CursorModeType
}

// NewCursorApplySystem 创建光标同步系统
func NewCursorApplySystem(em *ecs.EntityManager, driver CursorDriver) *CursorApplySystem {
	return &CursorApplySystem{
		entityManager: em,
		driver:        driver,
	}
}

// Update 同步光标形状与可见性
func (s *CursorApplySystem) Update(deltaTime float64) {
	windowID, window, ok := PrimaryWindow(s.entityManager)
	if !ok {
		return
	}

	shape := ebiten.CursorShapeDefault
	if icon, hasIcon := ecs.GetComponent[*components.CursorIconComponent](s.entityManager, windowID); hasIcon {
		shape = icon.Shape
	}

	mode := ebiten.CursorModeHidden
	if window.CursorVisible {
		mode = ebiten.CursorModeVisible
	}

	if !s.applied || shape != s.lastShape {
		s.driver.SetCursorShape(shape)
		s.lastShape = shape
	}
	if !s.applied || mode != s.lastMode {
		s.driver.SetCursorMode(mode)
		s.lastMode = mode
		log.Printf("[CursorApplySystem] cursor visible=%v shape=%v", window.CursorVisible, shape)
	}
	s.applied = true
}

// Reset 下一次 Update 时强制重新应用（外部接管光标后交还控制时使用）
func (s *CursorApplySystem) Reset() {
	s.applied = false
}
