//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设置为 "1" 时桌面端按触屏设备处理（本地调试用）
const MobileEmulateEnv = "TEXTHOVER_MOBILE_EMULATE"

// IsMobile 是否运行在触屏设备上
// 触屏设备没有悬停指针，也没有系统鼠标光标
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
