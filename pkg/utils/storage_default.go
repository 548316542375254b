//go:build !android

package utils

// EnsureSettingsDir 非 Android 平台由 gdata 自行创建目录
func EnsureSettingsDir(appName string) error {
	return nil
}
