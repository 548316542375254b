package events

// Bus 汇总本模块使用的全部事件队列
// 由 App 持有并注入到各个系统；tick 结束时调用 Update 统一交换缓冲区
type Bus struct {
	HoverIn     *Queue[TextHoverIn]
	HoverOut    *Queue[TextHoverOut]
	TextChanged *Queue[TextChanged]
	MouseMotion *Queue[MouseMotion]
}

// NewBus 创建事件总线
func NewBus() *Bus {
	return &Bus{
		HoverIn:     NewQueue[TextHoverIn](),
		HoverOut:    NewQueue[TextHoverOut](),
		TextChanged: NewQueue[TextChanged](),
		MouseMotion: NewQueue[MouseMotion](),
	}
}

// Update 交换所有队列的缓冲区（每个 tick 结束时调用）
func (b *Bus) Update() {
	b.HoverIn.Update()
	b.HoverOut.Update()
	b.TextChanged.Update()
	b.MouseMotion.Update()
}
