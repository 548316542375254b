package entities

import (
	"github.com/decker502/texthover/pkg/components"
	"github.com/decker502/texthover/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// 文本控件默认参数
const (
	defaultTextPadding = 8.0
	defaultMaxLength   = 64
)

// SpriteTextWidgetOptions 精灵文本控件参数
type SpriteTextWidgetOptions struct {
	CenterX, CenterY float64       // 包围盒中心（世界坐标）
	Width, Height    float64       // 自定义尺寸（世界单位），0 时使用 Image 尺寸
	Image            *ebiten.Image // 可选背景图
	Text             string
	Placeholder      string
	MaxLength        int // 0 使用默认值
}

// NewSpriteTextWidget 创建在世界空间中渲染的文本控件
func NewSpriteTextWidget(em *ecs.EntityManager, opts SpriteTextWidgetOptions) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, newTextInput(opts.Text, opts.Placeholder, opts.MaxLength))
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Image:        opts.Image,
		CustomWidth:  opts.Width,
		CustomHeight: opts.Height,
	})
	ecs.AddComponent(em, id, &components.PositionComponent{X: opts.CenterX, Y: opts.CenterY})
	ecs.AddComponent(em, id, &components.VisibilityComponent{Visibility: components.VisibilityInherited})
	return id
}

// UITextWidgetOptions UI 文本控件参数
type UITextWidgetOptions struct {
	X, Y          float64 // 左上角（窗口坐标）
	Width, Height float64
	Text          string
	Placeholder   string
	MaxLength     int
}

// NewUITextWidget 创建 UI 文本控件
//
// 返回:
//   - nodeID: UI 节点实体（带交互状态，引用文本实体）
//   - textID: 文本控件实体（带 TextInputComponent）
func NewUITextWidget(em *ecs.EntityManager, opts UITextWidgetOptions) (nodeID, textID ecs.EntityID) {
	textID = em.CreateEntity()
	ecs.AddComponent(em, textID, newTextInput(opts.Text, opts.Placeholder, opts.MaxLength))

	nodeID = em.CreateEntity()
	ecs.AddComponent(em, nodeID, &components.UINodeComponent{
		X:       opts.X,
		Y:       opts.Y,
		Width:   opts.Width,
		Height:  opts.Height,
		Enabled: true,
	})
	ecs.AddComponent(em, nodeID, &components.InteractionComponent{State: components.UINormal})
	ecs.AddComponent(em, nodeID, &components.TextSourceComponent{Target: textID})
	return nodeID, textID
}

// newTextInput 创建文本输入组件
func newTextInput(text, placeholder string, maxLength int) *components.TextInputComponent {
	if maxLength == 0 {
		maxLength = defaultMaxLength
	}
	return &components.TextInputComponent{
		Text:          text,
		CaretPosition: len([]rune(text)),
		MaxLength:     maxLength,
		Placeholder:   placeholder,
		PaddingLeft:   defaultTextPadding,
	}
}
