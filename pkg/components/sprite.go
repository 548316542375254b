package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)以及命中检测尺寸
//
// 尺寸决定规则（与命中检测一致）：
//  1. CustomWidth/CustomHeight 均大于 0 时使用自定义尺寸
//  2. 否则使用 Image 的尺寸
//  3. 都没有时退化为 1x1
type SpriteComponent struct {
	Image        *ebiten.Image
	CustomWidth  float64 // 自定义宽度（世界单位），0 表示未设置
	CustomHeight float64 // 自定义高度（世界单位），0 表示未设置
}

// Size 返回精灵用于绘制和命中检测的尺寸
func (s *SpriteComponent) Size() (width, height float64) {
	if s.CustomWidth > 0 && s.CustomHeight > 0 {
		return s.CustomWidth, s.CustomHeight
	}
	if s.Image != nil {
		bounds := s.Image.Bounds()
		return float64(bounds.Dx()), float64(bounds.Dy())
	}
	return 1, 1
}
