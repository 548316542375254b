package components

// TextInputComponent 可编辑文本控件组件
// 拥有此组件的实体即"文本控件"：精灵文本控件额外带 SpriteComponent + PositionComponent，
// UI 文本控件由带 TextSourceComponent 的 UI 节点引用
type TextInputComponent struct {
	// 输入框文本
	Text string // 当前输入的文本

	// 光标状态（文本插入符，与鼠标指针无关）
	CaretVisible    bool    // 插入符是否可见（闪烁效果）
	CaretBlinkTimer float64 // 插入符闪烁计时器（秒）
	CaretPosition   int     // 插入符位置（字符索引）

	// 输入限制
	MaxLength   int    // 最大字符数（0 = 无限制）
	Placeholder string // 占位符文本（输入框为空时显示）

	// 焦点状态
	IsFocused bool // 是否获得焦点（接收键盘输入）

	// 内边距
	PaddingLeft float64 // 左内边距（像素）
}
