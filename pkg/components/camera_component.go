package components

import "image"

// CameraComponent 镜头组件
//
// 镜头的世界位置来自同一实体上的 PositionComponent（视口中心对应的世界坐标）。
// Viewport 是镜头在窗口上的渲染区域（窗口坐标），Zoom 为缩放倍率（屏幕像素/世界单位）。
// 同时保留平滑移动所需的动画状态（CameraSystem 使用）。
type CameraComponent struct {
	// Viewport 窗口坐标中的视口矩形
	Viewport image.Rectangle

	// Zoom 缩放倍率，必须大于 0
	Zoom float64

	// IsActive 是否参与渲染与拾取
	IsActive bool

	// TargetX/TargetY 平移动画目标（世界坐标）
	TargetX float64
	TargetY float64

	// AnimationSpeed 动画速度（世界单位/秒）
	AnimationSpeed float64

	// IsAnimating 是否正在动画中
	IsAnimating bool
}

// PrimaryCameraComponent 多镜头模式下标记用于指针拾取的镜头
type PrimaryCameraComponent struct{}
