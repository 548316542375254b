package systems

import (
	"log"
	"unicode"

	"github.com/decker502/texthover/pkg/components"
	"github.com/decker502/texthover/pkg/ecs"
	"github.com/decker502/texthover/pkg/events"
	"github.com/hajimehoshi/ebiten/v2"
)

// caretBlinkInterval 插入符闪烁间隔（秒）
const caretBlinkInterval = 0.5

// TextInputSystem 文本输入系统
// 处理文本控件的焦点、键盘输入、插入符闪烁等逻辑，
// 文本内容每次变化都会发送 TextChanged 事件
type TextInputSystem struct {
	entityManager *ecs.EntityManager
	bus           *events.Bus
	keyboard      KeyboardInput

	runes []rune // 复用的字符缓冲区
}

// NewTextInputSystem 创建文本输入系统
func NewTextInputSystem(em *ecs.EntityManager, bus *events.Bus, keyboard KeyboardInput) *TextInputSystem {
	return &TextInputSystem{
		entityManager: em,
		bus:           bus,
		keyboard:      keyboard,
	}
}

// Focus 让指定文本控件获得焦点，其他控件失去焦点
// 传入 ecs.InvalidEntity 时清除所有焦点
func (s *TextInputSystem) Focus(target ecs.EntityID) {
	for _, entityID := range ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		focused := entityID == target
		if focused && !input.IsFocused {
			input.CaretBlinkTimer = 0
			input.CaretVisible = true
			input.CaretPosition = len([]rune(input.Text))
		}
		input.IsFocused = focused
	}
}

// Update 更新文本输入系统
func (s *TextInputSystem) Update(deltaTime float64) {
	s.focusClickedUI()

	entities := ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager)
	for _, entityID := range entities {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)

		// 只处理获得焦点的输入框
		if !input.IsFocused {
			input.CaretVisible = false
			continue
		}

		s.updateCaretBlink(input, deltaTime)

		before := input.Text
		s.handleKeyboardInput(input)
		if input.Text != before {
			s.bus.TextChanged.Send(events.TextChanged{Entity: entityID, Text: input.Text})
		}
	}
}

// focusClickedUI 本 tick 被按下的 UI 节点把焦点交给它引用的文本控件
func (s *TextInputSystem) focusClickedUI() {
	nodes := ecs.GetEntitiesWith2[*components.InteractionComponent, *components.TextSourceComponent](s.entityManager)
	for _, entityID := range nodes {
		interaction, _ := ecs.GetComponent[*components.InteractionComponent](s.entityManager, entityID)
		if !interaction.Changed || interaction.State != components.UIClicked {
			continue
		}
		source, _ := ecs.GetComponent[*components.TextSourceComponent](s.entityManager, entityID)
		if ecs.HasComponent[*components.TextInputComponent](s.entityManager, source.Target) {
			s.Focus(source.Target)
		}
	}
}

// updateCaretBlink 更新插入符闪烁状态
func (s *TextInputSystem) updateCaretBlink(input *components.TextInputComponent, deltaTime float64) {
	input.CaretBlinkTimer += deltaTime
	if input.CaretBlinkTimer >= caretBlinkInterval {
		input.CaretBlinkTimer = 0
		input.CaretVisible = !input.CaretVisible
	}
}

// handleKeyboardInput 处理键盘输入
func (s *TextInputSystem) handleKeyboardInput(input *components.TextInputComponent) {
	s.clampCaret(input)

	// 1. 文本字符输入
	s.runes = s.keyboard.AppendInputChars(s.runes[:0])
	if len(s.runes) > 0 {
		s.insertText(input, s.runes)
		s.resetCaret(input)
	}

	// 2. 退格键（删除插入符前的字符），支持按住连续删除
	if s.keyboard.IsKeyRepeating(ebiten.KeyBackspace) {
		s.deleteCharBefore(input)
		s.resetCaret(input)
	}

	// 3. 删除键（删除插入符后的字符）
	if s.keyboard.IsKeyRepeating(ebiten.KeyDelete) {
		s.deleteCharAfter(input)
		s.resetCaret(input)
	}

	// 4. 左右箭头移动插入符
	if s.keyboard.IsKeyRepeating(ebiten.KeyArrowLeft) && input.CaretPosition > 0 {
		input.CaretPosition--
		s.resetCaret(input)
	}
	if s.keyboard.IsKeyRepeating(ebiten.KeyArrowRight) && input.CaretPosition < len([]rune(input.Text)) {
		input.CaretPosition++
		s.resetCaret(input)
	}

	// 5. Home / End
	if s.keyboard.IsKeyJustPressed(ebiten.KeyHome) {
		input.CaretPosition = 0
		s.resetCaret(input)
	}
	if s.keyboard.IsKeyJustPressed(ebiten.KeyEnd) {
		input.CaretPosition = len([]rune(input.Text))
		s.resetCaret(input)
	}
}

// resetCaret 输入时插入符应立即可见
func (s *TextInputSystem) resetCaret(input *components.TextInputComponent) {
	input.CaretBlinkTimer = 0
	input.CaretVisible = true
}

// clampCaret 文本被外部修改后修正插入符位置
func (s *TextInputSystem) clampCaret(input *components.TextInputComponent) {
	n := len([]rune(input.Text))
	if input.CaretPosition > n {
		input.CaretPosition = n
	}
	if input.CaretPosition < 0 {
		input.CaretPosition = 0
	}
}

// insertText 在插入符位置插入文本（过滤不可打印字符）
func (s *TextInputSystem) insertText(input *components.TextInputComponent, text []rune) {
	filtered := make([]rune, 0, len(text))
	for _, r := range text {
		if unicode.IsPrint(r) {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		return
	}

	runes := []rune(input.Text)
	if input.MaxLength > 0 && len(runes)+len(filtered) > input.MaxLength {
		log.Printf("[TextInputSystem] 达到最大长度限制 (%d 字符)", input.MaxLength)
		return
	}

	result := make([]rune, 0, len(runes)+len(filtered))
	result = append(result, runes[:input.CaretPosition]...)
	result = append(result, filtered...)
	result = append(result, runes[input.CaretPosition:]...)

	input.Text = string(result)
	input.CaretPosition += len(filtered)
}

// deleteCharBefore 删除插入符前的字符（退格）
func (s *TextInputSystem) deleteCharBefore(input *components.TextInputComponent) {
	if input.CaretPosition == 0 {
		return // 插入符在开头，无法删除
	}

	runes := []rune(input.Text)
	input.Text = string(append(runes[:input.CaretPosition-1], runes[input.CaretPosition:]...))
	input.CaretPosition--
}

// deleteCharAfter 删除插入符后的字符（Delete键）
func (s *TextInputSystem) deleteCharAfter(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	if input.CaretPosition >= len(runes) {
		return // 插入符在结尾，无法删除
	}

	input.Text = string(append(runes[:input.CaretPosition], runes[input.CaretPosition+1:]...))
}
