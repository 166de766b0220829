package components

import "image/color"

// ToastComponent 屏幕底部的短暂提示消息（“已保存”、成就解锁等）
// 配合 LifetimeComponent 使用，过期后自动销毁
type ToastComponent struct {
	Message string
	Color   color.RGBA
}
