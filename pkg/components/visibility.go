package components

// Visibility 实体可见性
type Visibility int

const (
	// VisibilityInherited 跟随父级（本模块没有层级，等同于可见）
	VisibilityInherited Visibility = iota
	// VisibilityVisible 显式可见
	VisibilityVisible
	// VisibilityHidden 隐藏：不绘制，也不参与悬停检测
	VisibilityHidden
)

// VisibilityComponent 可见性组件
// 没有此组件的实体视为可见
type VisibilityComponent struct {
	Visibility Visibility
}
