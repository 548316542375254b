package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// 窗口逻辑尺寸
const (
	GameWindowWidth  = 800
	GameWindowHeight = 600
)

// DefaultHoverIcon 悬停在文本控件上时挂载的默认光标图标（I 形文本光标）
const DefaultHoverIcon = "text"

// ErrUnknownCursorShape 光标形状名称无法识别
var ErrUnknownCursorShape = errors.New("unknown cursor shape")

// cursorShapes 配置文件中的光标形状名称 -> ebiten 光标形状
var cursorShapes = map[string]ebiten.CursorShapeType{
	"default":     ebiten.CursorShapeDefault,
	"text":        ebiten.CursorShapeText,
	"crosshair":   ebiten.CursorShapeCrosshair,
	"pointer":     ebiten.CursorShapePointer,
	"ew-resize":   ebiten.CursorShapeEWResize,
	"ns-resize":   ebiten.CursorShapeNSResize,
	"nesw-resize": ebiten.CursorShapeNESWResize,
	"nwse-resize": ebiten.CursorShapeNWSEResize,
	"move":        ebiten.CursorShapeMove,
	"not-allowed": ebiten.CursorShapeNotAllowed,
}

// CursorConfig 鼠标光标插件配置
//
// 配置文件位置: data/cursor.yaml
type CursorConfig struct {
	// HoverIcon 悬停文本控件时的光标形状名称（如 "text", "pointer"）
	HoverIcon string `yaml:"hoverIcon"`

	// MultiCamera 多镜头模式：只使用带 PrimaryCameraComponent 的镜头做指针拾取
	MultiCamera bool `yaml:"multiCamera"`

	// Disabled 启动时即关闭光标插件，由外部自行控制光标
	Disabled bool `yaml:"disabled"`

	// WindowWidth/WindowHeight 窗口逻辑尺寸（像素）
	WindowWidth  int `yaml:"windowWidth"`
	WindowHeight int `yaml:"windowHeight"`
}

// DefaultCursorConfig 返回默认配置
func DefaultCursorConfig() *CursorConfig {
	return &CursorConfig{
		HoverIcon:    DefaultHoverIcon,
		MultiCamera:  false,
		Disabled:     false,
		WindowWidth:  GameWindowWidth,
		WindowHeight: GameWindowHeight,
	}
}

// LoadCursorConfig 加载光标插件配置
//
// 从指定路径加载 YAML 格式的配置文件，未填写的字段使用默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/cursor.yaml"）
//
// 返回:
//   - *CursorConfig: 加载成功后的配置结构
//   - error: 读取、解析或校验失败时返回错误
func LoadCursorConfig(path string) (*CursorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cursor config: %w", err)
	}

	config := DefaultCursorConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse cursor config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cursor config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
func (c *CursorConfig) Validate() error {
	if _, err := ParseCursorShape(c.HoverIcon); err != nil {
		return err
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	return nil
}

// HoverShape 返回悬停光标形状
// 配置无效时回退到 ebiten.CursorShapeText，保证挂载的光标标记总是有确定的值
func (c *CursorConfig) HoverShape() ebiten.CursorShapeType {
	shape, err := ParseCursorShape(c.HoverIcon)
	if err != nil {
		return ebiten.CursorShapeText
	}
	return shape
}

// ParseCursorShape 将形状名称解析为 ebiten 光标形状（大小写不敏感，空字符串视为默认图标）
func ParseCursorShape(name string) (ebiten.CursorShapeType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultHoverIcon
	}
	shape, ok := cursorShapes[key]
	if !ok {
		return ebiten.CursorShapeDefault, fmt.Errorf("%w: %q (known: %s)", ErrUnknownCursorShape, name, strings.Join(CursorShapeNames(), ", "))
	}
	return shape, nil
}

// CursorShapeNames 返回所有可用的形状名称（已排序）
func CursorShapeNames() []string {
	names := make([]string, 0, len(cursorShapes))
	for name := range cursorShapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
