// Package app 提供文本控件光标演示程序的核心包装器
//
// App 实现 ebiten.Game 接口，负责：
//   - 加载光标配置与持久化设置
//   - 创建主窗口、镜头和演示用文本控件
//   - 按固定阶段顺序执行系统：input → cursor.* → cleanup
package app

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/decker502/texthover/pkg/config"
	"github.com/decker502/texthover/pkg/cursor"
	"github.com/decker502/texthover/pkg/ecs"
	"github.com/decker502/texthover/pkg/entities"
	"github.com/decker502/texthover/pkg/events"
	"github.com/decker502/texthover/pkg/game"
	"github.com/decker502/texthover/pkg/systems"
	"github.com/decker502/texthover/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/quasilyte/gdata/v2"
)

// appName gdata 存储使用的应用名
const appName = "texthover"

// 调度阶段名称
const (
	StageInput   = "input"
	StageCleanup = "cleanup"
)

// 镜头平移参数
const (
	cameraPanStep  = 40.0  // 每次按键平移的世界单位
	cameraPanSpeed = 400.0 // 世界单位/秒
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 光标配置文件路径，文件不存在时使用默认配置
	ConfigPath string
	// HoverIcon 非空时修改并保存悬停光标形状
	HoverIcon string
}

// Input App 需要的全部输入能力
type Input interface {
	systems.PointerInput
	systems.MouseButtonInput
	systems.KeyboardInput
}

// App 是演示程序的核心包装器，实现 ebiten.Game 接口
type App struct {
	entityManager *ecs.EntityManager
	bus           *events.Bus
	schedule      *systems.Schedule
	plugin        *cursor.Plugin
	settings      *game.SettingsManager
	cursorConfig  *config.CursorConfig
	input         Input

	textInputSystem *systems.TextInputSystem
	cameraSystem    *systems.CameraSystem
	renderSystem    *systems.TextWidgetRenderSystem

	windowEntity ecs.EntityID

	modifierPressed func() bool
	buttons         []ebiten.MouseButton
}

// NewApp 创建并初始化应用（使用 Ebitengine 输入与光标）
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	cursorConfig := loadCursorConfig(cfg.ConfigPath)
	if utils.IsMobile() && !cursorConfig.Disabled {
		// 触屏没有悬停指针，光标插件没有意义
		log.Printf("[App] Touch device detected, cursor plugin disabled")
		cursorConfig.Disabled = true
	}

	// 初始化跨平台存储；失败时降级为仅内存设置
	if err := utils.EnsureSettingsDir(appName); err != nil {
		log.Printf("[App] %v", err)
	}
	gdataManager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[App] gdata unavailable, settings will not persist: %v", err)
		gdataManager = nil
	}
	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置管理器初始化失败: %w", err)
	}
	if cfg.HoverIcon != "" {
		if err := settings.SetHoverIcon(cfg.HoverIcon); err != nil {
			return nil, fmt.Errorf("悬停光标设置无效: %w", err)
		}
		if err := settings.Save(); err != nil {
			log.Printf("[App] Failed to save settings: %v", err)
		}
	}

	font, err := utils.LoadDefaultFontFace(18)
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	return newApp(cursorConfig, settings, systems.NewEbitenInput(), systems.EbitenCursorDriver{}, font), nil
}

// loadCursorConfig 加载配置文件，失败时使用默认配置
func loadCursorConfig(path string) *config.CursorConfig {
	if path == "" {
		return config.DefaultCursorConfig()
	}
	cfg, err := config.LoadCursorConfig(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("[Config] %s not found, using defaults", path)
		} else {
			log.Printf("[Config] %v (using defaults)", err)
		}
		return config.DefaultCursorConfig()
	}
	log.Printf("[Config] Loaded cursor config from %s", path)
	return cfg
}

// newApp 组装实体与调度表（输入与平台光标可注入，便于测试）
func newApp(
	cursorConfig *config.CursorConfig,
	settings *game.SettingsManager,
	input Input,
	driver systems.CursorDriver,
	font *text.GoTextFace,
) *App {
	merged := settings.Apply(cursorConfig)

	em := ecs.NewEntityManager()
	bus := events.NewBus()

	a := &App{
		entityManager: em,
		bus:           bus,
		schedule:      systems.NewSchedule(),
		settings:      settings,
		cursorConfig:  merged,
		input:         input,
	}
	a.modifierPressed = func() bool {
		return ebiten.IsKeyPressed(ebiten.KeyControl)
	}

	a.windowEntity = entities.NewPrimaryWindowEntity(em, merged.WindowWidth, merged.WindowHeight)
	entities.NewCameraEntity(em, entities.CameraOptions{
		Viewport: image.Rect(0, 0, merged.WindowWidth, merged.WindowHeight),
		Zoom:     1,
		Primary:  true,
	})
	spawnDemoWidgets(em)

	a.textInputSystem = systems.NewTextInputSystem(em, bus, input)
	a.cameraSystem = systems.NewCameraSystem(em, merged.MultiCamera)
	a.renderSystem = systems.NewTextWidgetRenderSystem(em, font, merged.MultiCamera)
	a.plugin = cursor.NewPlugin(em, bus, merged, input, driver)

	a.schedule.AddStage(StageInput,
		systems.NewWindowSystem(em, bus, input),
		systems.NewUIInteractionSystem(em, input),
		a.textInputSystem,
		a.cameraSystem,
	)
	a.schedule.AddStage(StageCleanup,
		systems.SystemFunc(func(float64) { systems.ClearInteractionChanges(em) }),
		systems.SystemFunc(func(float64) { bus.Update() }),
		systems.SystemFunc(func(float64) { em.RemoveMarkedEntities() }),
	)
	if err := a.plugin.Build(a.schedule, StageCleanup); err != nil {
		// 阶段名是常量，只有编程错误才会走到这里
		panic(err)
	}

	log.Printf("[App] Schedule: %v", a.schedule.StageNames())
	return a
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	a.handleHotkeys()
	a.Tick(1.0 / 60.0)
	return nil
}

// Tick 执行一次完整调度
func (a *App) Tick(deltaTime float64) {
	a.schedule.Run(deltaTime)
}

// handleHotkeys 处理演示程序的快捷键
//   - F2: 打开/关闭光标插件（持久化）
//   - Ctrl+方向键: 平移镜头
//   - 左键点击精灵文本控件: 获得焦点
func (a *App) handleHotkeys() {
	if a.input.IsKeyJustPressed(ebiten.KeyF2) {
		a.SetCursorPluginDisabled(!a.plugin.Context().Disabled)
	}

	if a.modifierPressed() {
		switch {
		case a.input.IsKeyJustPressed(ebiten.KeyArrowLeft):
			a.cameraSystem.MoveBy(-cameraPanStep, 0, cameraPanSpeed)
		case a.input.IsKeyJustPressed(ebiten.KeyArrowRight):
			a.cameraSystem.MoveBy(cameraPanStep, 0, cameraPanSpeed)
		case a.input.IsKeyJustPressed(ebiten.KeyArrowUp):
			a.cameraSystem.MoveBy(0, -cameraPanStep, cameraPanSpeed)
		case a.input.IsKeyJustPressed(ebiten.KeyArrowDown):
			a.cameraSystem.MoveBy(0, cameraPanStep, cameraPanSpeed)
		}
	}

	a.buttons = a.input.AppendJustPressedMouseButtons(a.buttons[:0])
	for _, button := range a.buttons {
		if button != ebiten.MouseButtonLeft {
			continue
		}
		if target, ok := a.plugin.SpriteHover().HoveredEntity(); ok {
			a.textInputSystem.Focus(target)
		}
		break
	}
}

// spawnDemoWidgets 创建演示用文本控件
// 精灵控件位于世界坐标原点附近（镜头中心），UI 控件固定在窗口顶部
func spawnDemoWidgets(em *ecs.EntityManager) {
	entities.NewSpriteTextWidget(em, entities.SpriteTextWidgetOptions{
		CenterX:     0,
		CenterY:     -60,
		Width:       320,
		Height:      40,
		Placeholder: "world-space text",
	})
	entities.NewSpriteTextWidget(em, entities.SpriteTextWidgetOptions{
		CenterX:   0,
		CenterY:   60,
		Width:     240,
		Height:    40,
		Text:      "hello",
		MaxLength: 32,
	})
	entities.NewUITextWidget(em, entities.UITextWidgetOptions{
		X:           20,
		Y:           40,
		Width:       360,
		Height:      36,
		Placeholder: "ui text",
	})
}

// SetCursorPluginDisabled 打开/关闭光标插件并保存设置
func (a *App) SetCursorPluginDisabled(disabled bool) {
	a.plugin.SetDisabled(disabled)
	a.settings.SetPluginDisabled(disabled)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Failed to save settings: %v", err)
	}
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 225, G: 230, B: 235, A: 255})

	hovered, _ := a.plugin.SpriteHover().HoveredEntity()
	a.renderSystem.Draw(screen, hovered)

	status := "on"
	if a.plugin.Context().Disabled {
		status = "off (external control)"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("cursor plugin: %s  [F2] toggle  [Ctrl+Arrows] pan camera", status), 8, 8)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cursorConfig.WindowWidth, a.cursorConfig.WindowHeight
}

// EntityManager 返回实体管理器
func (a *App) EntityManager() *ecs.EntityManager {
	return a.entityManager
}

// Bus 返回事件总线（外部系统可订阅 TextHoverIn / TextHoverOut）
func (a *App) Bus() *events.Bus {
	return a.bus
}

// Plugin 返回光标插件
func (a *App) Plugin() *cursor.Plugin {
	return a.plugin
}

// WindowEntity 返回主窗口实体
func (a *App) WindowEntity() ecs.EntityID {
	return a.windowEntity
}
