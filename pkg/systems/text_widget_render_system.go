package systems

import (
	"image/color"

	"github.com/decker502/texthover/pkg/components"
	"github.com/decker502/texthover/pkg/ecs"
	"github.com/decker502/texthover/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	widgetBackground = color.RGBA{R: 250, G: 250, B: 245, A: 255}
	widgetBorder     = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	widgetHover      = color.RGBA{R: 70, G: 130, B: 220, A: 255}
	widgetFocus      = color.RGBA{R: 230, G: 160, B: 40, A: 255}
	widgetText       = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	widgetHint       = color.RGBA{R: 150, G: 150, B: 150, A: 255}
)

// TextWidgetRenderSystem 文本控件渲染系统
// 绘制精灵文本控件（经镜头投影）和 UI 文本控件（屏幕坐标），包括边框、文本和插入符
type TextWidgetRenderSystem struct {
	entityManager *ecs.EntityManager
	font          *text.GoTextFace
	multiCamera   bool
}

// NewTextWidgetRenderSystem 创建文本控件渲染系统
func NewTextWidgetRenderSystem(em *ecs.EntityManager, font *text.GoTextFace, multiCamera bool) *TextWidgetRenderSystem {
	return &TextWidgetRenderSystem{
		entityManager: em,
		font:          font,
		multiCamera:   multiCamera,
	}
}

// Draw 绘制所有文本控件
func (s *TextWidgetRenderSystem) Draw(screen *ebiten.Image, hoveredSprite ecs.EntityID) {
	s.drawSprites(screen, hoveredSprite)
	s.drawUINodes(screen)
}

// drawSprites 绘制精灵文本控件
func (s *TextWidgetRenderSystem) drawSprites(screen *ebiten.Image, hoveredSprite ecs.EntityID) {
	_, cam, camPos, ok := SelectActiveCamera(s.entityManager, s.multiCamera)
	if !ok {
		return
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
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		width, height := sprite.Size()
		left, top, err := utils.WorldToViewport(cam, camPos, pos.X-width/2, pos.Y-height/2)
		if err != nil {
			continue
		}
		screenW := width * cam.Zoom
		screenH := height * cam.Zoom

		if sprite.Image != nil {
			op := &ebiten.DrawImageOptions{}
			bounds := sprite.Image.Bounds()
			op.GeoM.Scale(screenW/float64(bounds.Dx()), screenH/float64(bounds.Dy()))
			op.GeoM.Translate(left, top)
			screen.DrawImage(sprite.Image, op)
		} else {
			vector.DrawFilledRect(screen, float32(left), float32(top), float32(screenW), float32(screenH), widgetBackground, true)
		}

		border := widgetBorder
		if entityID == hoveredSprite {
			border = widgetHover
		}
		s.drawBox(screen, input, left, top, screenW, screenH, border)
	}
}

// drawUINodes 绘制 UI 文本控件
func (s *TextWidgetRenderSystem) drawUINodes(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith3[
		*components.UINodeComponent,
		*components.InteractionComponent,
		*components.TextSourceComponent,
	](s.entityManager)

	for _, entityID := range entities {
		if isHidden(s.entityManager, entityID) {
			continue
		}
		node, _ := ecs.GetComponent[*components.UINodeComponent](s.entityManager, entityID)
		interaction, _ := ecs.GetComponent[*components.InteractionComponent](s.entityManager, entityID)
		source, _ := ecs.GetComponent[*components.TextSourceComponent](s.entityManager, entityID)
		input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, source.Target)
		if !ok {
			continue
		}

		vector.DrawFilledRect(screen, float32(node.X), float32(node.Y), float32(node.Width), float32(node.Height), widgetBackground, true)

		border := widgetBorder
		if interaction.State == components.UIHovered || interaction.State == components.UIClicked {
			border = widgetHover
		}
		s.drawBox(screen, input, node.X, node.Y, node.Width, node.Height, border)
	}
}

// drawBox 绘制边框、文本与插入符
func (s *TextWidgetRenderSystem) drawBox(screen *ebiten.Image, input *components.TextInputComponent, x, y, width, height float64, border color.RGBA) {
	if input.IsFocused {
		border = widgetFocus
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 2, border, true)

	if s.font == nil {
		return
	}

	textX := x + input.PaddingLeft
	textY := y + height/2
	maxWidth := width - input.PaddingLeft*2

	if input.Text == "" && !input.IsFocused {
		s.drawText(screen, input.Placeholder, textX, textY, widgetHint)
		return
	}

	visible, skipped := utils.VisibleTail(input.Text, s.font, maxWidth)
	s.drawText(screen, visible, textX, textY, widgetText)

	if input.IsFocused && input.CaretVisible {
		caretIndex := input.CaretPosition - skipped
		if caretIndex < 0 {
			caretIndex = 0
		}
		runes := []rune(visible)
		if caretIndex > len(runes) {
			caretIndex = len(runes)
		}
		caretX := textX + utils.MeasureTextWidth(string(runes[:caretIndex]), s.font)
		lineH := s.font.Size
		vector.StrokeLine(screen, float32(caretX), float32(textY-lineH/2), float32(caretX), float32(textY+lineH/2), 1, widgetText, true)
	}
}

// drawText 以垂直居中方式绘制文本
func (s *TextWidgetRenderSystem) drawText(screen *ebiten.Image, str string, x, centerY float64, clr color.Color) {
	if str == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, centerY)
	op.PrimaryAlign = text.AlignStart
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, s.font, op)
}
