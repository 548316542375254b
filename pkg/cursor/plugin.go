// Package cursor 把文本控件悬停检测与光标状态调和组装成可插拔的调度阶段
//
// 阶段顺序（严格串行）：
//
//	cursor.hover  : SpriteHoverSystem, UIHoverSystem   （生产 TextHoverIn / TextHoverOut）
//	cursor.change : CursorSystem                       （消费事件，修改主窗口光标状态）
//	cursor.apply  : CursorApplySystem                  （把窗口光标状态同步到平台）
//
// Context.Disabled 为 true 时三个阶段全部跳过，光标完全交由外部控制。
package cursor

import (
	"log"

	"github.com/decker502/texthover/pkg/config"
	"github.com/decker502/texthover/pkg/ecs"
	"github.com/decker502/texthover/pkg/events"
	"github.com/decker502/texthover/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// 阶段名称
const (
	StageHover  = "cursor.hover"
	StageChange = "cursor.change"
	StageApply  = "cursor.apply"
)

// Context 插件共享状态，由调度器在每个 tick 开始时检查一次
type Context struct {
	// Disabled 为 true 时插件不做任何事情（直到重新设为 false）
	Disabled bool
}

// Plugin 光标插件
type Plugin struct {
	ctx *Context

	spriteHover *systems.SpriteHoverSystem
	uiHover     *systems.UIHoverSystem
	cursor      *systems.CursorSystem
	apply       *systems.CursorApplySystem
}

// NewPlugin 创建光标插件
//
// 参数:
//   - em: 实体管理器
//   - bus: 事件总线（悬停事件在此发布，其他系统也可以订阅）
//   - cfg: 光标配置（悬停图标、多镜头模式、初始开关）
//   - mouse: 鼠标按键输入
//   - driver: 平台光标控制
func NewPlugin(
	em *ecs.EntityManager,
	bus *events.Bus,
	cfg *config.CursorConfig,
	mouse systems.MouseButtonInput,
	driver systems.CursorDriver,
) *Plugin {
	return &Plugin{
		ctx:         &Context{Disabled: cfg.Disabled},
		spriteHover: systems.NewSpriteHoverSystem(em, bus, cfg.MultiCamera),
		uiHover:     systems.NewUIHoverSystem(em, bus),
		cursor:      systems.NewCursorSystem(em, bus, mouse, cfg.HoverShape()),
		apply:       systems.NewCursorApplySystem(em, driver),
	}
}

// Build 把插件阶段插入到调度表中名为 before 的阶段之前
func (p *Plugin) Build(schedule *systems.Schedule, before string) error {
	stages := []*systems.Stage{
		{Name: StageHover, Systems: []systems.System{p.spriteHover, p.uiHover}, RunIf: p.Enabled},
		{Name: StageChange, Systems: []systems.System{p.cursor}, RunIf: p.Enabled},
		{Name: StageApply, Systems: []systems.System{p.apply}, RunIf: p.Enabled},
	}
	for _, stage := range stages {
		if err := schedule.InsertStageBefore(before, stage); err != nil {
			return err
		}
	}
	return nil
}

// Enabled 阶段运行条件
func (p *Plugin) Enabled() bool {
	return !p.ctx.Disabled
}

// Context 返回插件共享状态
func (p *Plugin) Context() *Context {
	return p.ctx
}

// SetDisabled 打开/关闭插件
// 重新打开时强制下一个 tick 重新同步平台光标
func (p *Plugin) SetDisabled(disabled bool) {
	if p.ctx.Disabled == disabled {
		return
	}
	p.ctx.Disabled = disabled
	if !disabled {
		p.apply.Reset()
	}
	log.Printf("[CursorPlugin] disabled=%v", disabled)
}

// SetHoverShape 修改悬停光标图标
func (p *Plugin) SetHoverShape(shape ebiten.CursorShapeType) {
	p.cursor.SetHoverShape(shape)
}

// SpriteHover 返回精灵悬停检测系统（用于查询当前命中的控件）
func (p *Plugin) SpriteHover() *systems.SpriteHoverSystem {
	return p.spriteHover
}
