//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureSettingsDir 在打开 gdata 之前确保 Android 应用数据目录可写
//
// gdata 在 Android 上把数据放在 /data/data/{package}/ 下但不会创建子目录，
// 包名从 /proc/self/cmdline 读取，读取失败时退回 appName。
func EnsureSettingsDir(appName string) error {
	pkg := appName
	if data, err := os.ReadFile("/proc/self/cmdline"); err == nil {
		if name := strings.Trim(strings.ReplaceAll(string(data), "\x00", ""), "\n"); name != "" {
			pkg = name
		}
	}

	dir := filepath.Join("/data/data", pkg, "saves")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create settings dir %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, []byte{0}, 0644); err != nil {
		return fmt.Errorf("settings dir %s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}
