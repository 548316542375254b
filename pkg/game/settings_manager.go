package game

import (
	"fmt"
	"log"

	"github.com/decker502/texthover/pkg/config"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// CursorSettings 用户可修改并持久化的光标设置
// 覆盖 data/cursor.yaml 中的对应项
type CursorSettings struct {
	// PluginDisabled 关闭光标插件，由外部接管光标控制
	PluginDisabled bool `yaml:"pluginDisabled"`

	// HoverIcon 悬停光标形状名称，空字符串表示沿用配置文件
	HoverIcon string `yaml:"hoverIcon"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *CursorSettings {
	return &CursorSettings{
		PluginDisabled: false,
		HoverIcon:      "",
	}
}

// SettingsManager 设置管理器
// 负责光标设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager  // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *CursorSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "cursor"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留给未来的初始化错误；加载失败只记录日志并使用默认设置
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded CursorSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	// 存档里的图标名称无效时丢弃该项，避免挂载未定义的光标
	if loaded.HoverIcon != "" {
		if _, err := config.ParseCursorShape(loaded.HoverIcon); err != nil {
			log.Printf("[SettingsManager] Ignoring saved hover icon: %v", err)
			loaded.HoverIcon = ""
		}
	}

	sm.settings = &loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *CursorSettings {
	return sm.settings
}

// SetPluginDisabled 设置光标插件开关
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetPluginDisabled(disabled bool) {
	sm.settings.PluginDisabled = disabled
}

// SetHoverIcon 设置悬停光标形状名称
// 名称无效时返回错误且不修改设置
func (sm *SettingsManager) SetHoverIcon(name string) error {
	if name != "" {
		if _, err := config.ParseCursorShape(name); err != nil {
			return err
		}
	}
	sm.settings.HoverIcon = name
	return nil
}

// Apply 将设置覆盖到配置上，返回新的配置副本
func (sm *SettingsManager) Apply(cfg *config.CursorConfig) *config.CursorConfig {
	merged := *cfg
	if sm.settings.PluginDisabled {
		merged.Disabled = true
	}
	if sm.settings.HoverIcon != "" {
		merged.HoverIcon = sm.settings.HoverIcon
	}
	return &merged
}
