// Package utils 提供通用工具函数
//
// coordinates.go 提供窗口坐标与世界坐标之间的转换，以及命中检测用的矩形判断。
//
// # 坐标系统概述
//
//   - **窗口坐标**：相对于游戏窗口左上角，Y 轴向下
//   - **视口坐标**：相对于镜头视口左上角
//   - **世界坐标**：Y 轴向下；镜头 PositionComponent 表示视口中心对应的世界坐标
//
// # 核心转换公式
//
//	worldX = cameraX + (windowX - viewport.Min.X - viewportWidth/2) / zoom
//	worldY = cameraY + (windowY - viewport.Min.Y - viewportHeight/2) / zoom
//
// # 错误处理
//
// 转换失败时返回哨兵错误，调用者可使用 errors.Is 区分：
//
//	wx, wy, err := utils.ViewportToWorld(cam, camPos, x, y)
//	if err != nil {
//	    // ErrOutsideViewport 或 ErrDegenerateCamera：视为未命中
//	    return
//	}
package utils

import (
	"errors"

	"github.com/decker502/texthover/pkg/components"
)

// ErrOutsideViewport 指针位置不在镜头视口内
var ErrOutsideViewport = errors.New("position is outside the camera viewport")

// ErrDegenerateCamera 镜头参数无法进行投影（空视口或缩放 <= 0）
var ErrDegenerateCamera = errors.New("camera has an empty viewport or non-positive zoom")

// ViewportToWorld 将窗口坐标投影到世界坐标
//
// 参数:
//   - cam: 镜头组件（视口与缩放）
//   - camPos: 镜头的世界位置（视口中心）
//   - windowX, windowY: 窗口坐标
//
// 返回:
//   - worldX, worldY: 世界坐标
//   - err: ErrDegenerateCamera / ErrOutsideViewport
func ViewportToWorld(
	cam *components.CameraComponent,
	camPos *components.PositionComponent,
	windowX, windowY float64,
) (worldX, worldY float64, err error) {
	if cam == nil || camPos == nil || cam.Zoom <= 0 || cam.Viewport.Empty() {
		return 0, 0, ErrDegenerateCamera
	}

	minX := float64(cam.Viewport.Min.X)
	minY := float64(cam.Viewport.Min.Y)
	maxX := float64(cam.Viewport.Max.X)
	maxY := float64(cam.Viewport.Max.Y)
	if windowX < minX || windowX >= maxX || windowY < minY || windowY >= maxY {
		return 0, 0, ErrOutsideViewport
	}

	halfW := (maxX - minX) / 2
	halfH := (maxY - minY) / 2
	worldX = camPos.X + (windowX-minX-halfW)/cam.Zoom
	worldY = camPos.Y + (windowY-minY-halfH)/cam.Zoom
	return worldX, worldY, nil
}

// WorldToViewport 将世界坐标转换为窗口坐标（ViewportToWorld 的逆运算，不做视口裁剪）
func WorldToViewport(
	cam *components.CameraComponent,
	camPos *components.PositionComponent,
	worldX, worldY float64,
) (windowX, windowY float64, err error) {
	if cam == nil || camPos == nil || cam.Zoom <= 0 || cam.Viewport.Empty() {
		return 0, 0, ErrDegenerateCamera
	}

	minX := float64(cam.Viewport.Min.X)
	minY := float64(cam.Viewport.Min.Y)
	halfW := float64(cam.Viewport.Dx()) / 2
	halfH := float64(cam.Viewport.Dy()) / 2
	windowX = (worldX-camPos.X)*cam.Zoom + minX + halfW
	windowY = (worldY-camPos.Y)*cam.Zoom + minY + halfH
	return windowX, windowY, nil
}

// IsStrictlyInsideCentered 判断点是否严格位于以 (centerX, centerY) 为中心的矩形内
// 边界上的点不算命中
func IsStrictlyInsideCentered(x, y, centerX, centerY, halfW, halfH float64) bool {
	return centerX-halfW < x && x < centerX+halfW &&
		centerY-halfH < y && y < centerY+halfH
}

// IsInsideRect 判断点是否位于左上角锚定的矩形内（包含边界，用于 UI 节点）
func IsInsideRect(x, y, rectX, rectY, width, height float64) bool {
	return x >= rectX &&
		x <= rectX+width &&
		y >= rectY &&
		y <= rectY+height
}
