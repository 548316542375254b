package components

// PositionComponent 实体的世界坐标
// 对精灵文本控件而言，X/Y 是包围盒中心（与 SpriteHoverSystem 的命中检测约定一致）；
// 对镜头实体而言，X/Y 是视口中心对应的世界坐标
type PositionComponent struct {
	X float64
	Y float64
}
